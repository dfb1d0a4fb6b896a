package quiz

import (
	"fmt"

	"github.com/vovakirdan/shapeclick/internal/core"
)

// Overlay is the game-over panel drawn over the whole view.
type Overlay struct {
	Message string
	Prompt  string
	Fill    core.RGB
	Alpha   uint8
	Text    core.RGB
}

// Frame is the read-only render payload for one tick.
// All slices are copies; renderers may keep them.
type Frame struct {
	Status      Status
	Score       int
	WinScore    int
	SecondsLeft int
	ViewWidth   int
	ViewHeight  int

	HUD    []Label
	Shapes []Shape
	Labels []Label
	Hints  []Hint

	Overlay *Overlay // Set only once the game has ended
}

// Frame exports what the renderer should draw for the current state.
func (s *Session) Frame() Frame {
	layout := s.cfg.Layout
	f := Frame{
		Status:      s.status,
		Score:       s.score,
		WinScore:    s.cfg.Gameplay.WinScore,
		SecondsLeft: s.countdown / s.cfg.Gameplay.TickRate,
		ViewWidth:   layout.ViewWidth,
		ViewHeight:  layout.ViewHeight,
	}

	f.HUD = []Label{
		{
			Text:  fmt.Sprintf("Time remaining: %d seconds", f.SecondsLeft),
			Pos:   core.Point{X: 10, Y: layout.ViewHeight - 10},
			Color: core.White,
		},
		{
			Text:  fmt.Sprintf("Score: %d / %d", f.Score, f.WinScore),
			Pos:   core.Point{X: 10, Y: layout.ViewHeight - 30},
			Color: core.White,
		},
	}

	if r := s.round.Clone(); r != nil {
		f.Shapes = r.Shapes
		f.Labels = r.Labels
		f.Hints = r.Hints
	}

	switch s.status {
	case StatusGameWon:
		f.Overlay = gameOverOverlay("Yay! You won the game!")
	case StatusGameLost:
		f.Overlay = gameOverOverlay("Oh no! You lost the game!")
	}
	return f
}

func gameOverOverlay(message string) *Overlay {
	return &Overlay{
		Message: message,
		Prompt:  "Click to play again",
		Fill:    core.RGB{R: 255, G: 0, B: 0},
		Alpha:   205,
		Text:    core.White,
	}
}
