// Package config provides YAML-based game configuration loading and
// difficulty presets for the shape quiz.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/shapeclick/internal/core"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// QuizConfig contains all configuration for the shape quiz.
type QuizConfig struct {
	Gameplay QuizGameplay `yaml:"gameplay"`
	Shapes   QuizShapes   `yaml:"shapes"`
	Layout   QuizLayout   `yaml:"layout"`
}

// QuizGameplay defines scoring and timing.
type QuizGameplay struct {
	WinScore       int `yaml:"win_score"`
	MaxTimeSeconds int `yaml:"max_time_seconds"`
	TickRate       int `yaml:"tick_rate"`   // Ticks per second of game clock
	PauseTicks     int `yaml:"pause_ticks"` // Pause after each answer
}

// QuizShapes defines shape sizes in view units.
type QuizShapes struct {
	SmallSize int `yaml:"small_size"`
	LargeSize int `yaml:"large_size"`
}

// QuizLayout positions everything in the logical view.
// The origin is bottom-left and y grows upward.
type QuizLayout struct {
	ViewWidth       int `yaml:"view_width"`
	ViewHeight      int `yaml:"view_height"`
	RowStartX       int `yaml:"row_start_x"`
	RowSpacing      int `yaml:"row_spacing"`
	RowY            int `yaml:"row_y"`
	HintOffsetY     int `yaml:"hint_offset_y"`
	DecoyY          int `yaml:"decoy_y"`
	PromptY         int `yaml:"prompt_y"`
	ClueY           int `yaml:"clue_y"`
	FeedbackY       int `yaml:"feedback_y"`
	FeedbackOffsetX int `yaml:"feedback_offset_x"`
	FeedbackSize    int `yaml:"feedback_size"` // Text size hint for feedback labels
}

// MaxTicks returns the countdown length in ticks.
func (c QuizConfig) MaxTicks() int {
	return c.Gameplay.MaxTimeSeconds * c.Gameplay.TickRate
}

// RowBounds returns the area covered by the row of small shapes.
func (c QuizConfig) RowBounds() core.Rect {
	const n = 3
	w := (n-1)*c.Layout.RowSpacing + c.Shapes.SmallSize
	return core.NewRect(c.Layout.RowStartX, c.Layout.RowY, w, c.Shapes.SmallSize)
}

// DecoyBounds returns where the enlarged decoy is placed.
func (c QuizConfig) DecoyBounds() core.Rect {
	size := c.Shapes.LargeSize
	return core.NewRect(c.Layout.ViewWidth/2-size/2, c.Layout.DecoyY, size, size)
}

// Validate checks that the configuration can drive a game.
func (c QuizConfig) Validate() error {
	checks := []struct {
		name  string
		value int
	}{
		{"gameplay.win_score", c.Gameplay.WinScore},
		{"gameplay.max_time_seconds", c.Gameplay.MaxTimeSeconds},
		{"gameplay.tick_rate", c.Gameplay.TickRate},
		{"gameplay.pause_ticks", c.Gameplay.PauseTicks},
		{"shapes.small_size", c.Shapes.SmallSize},
		{"shapes.large_size", c.Shapes.LargeSize},
		{"layout.view_width", c.Layout.ViewWidth},
		{"layout.view_height", c.Layout.ViewHeight},
	}
	for _, chk := range checks {
		if chk.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalid, chk.name, chk.value)
		}
	}
	if c.Layout.RowSpacing < c.Shapes.SmallSize {
		return fmt.Errorf("%w: layout.row_spacing %d overlaps shapes of size %d",
			ErrInvalid, c.Layout.RowSpacing, c.Shapes.SmallSize)
	}
	if c.RowBounds().Intersects(c.DecoyBounds()) {
		return fmt.Errorf("%w: layout.decoy_y %d overlaps the shape row", ErrInvalid, c.Layout.DecoyY)
	}
	return nil
}
