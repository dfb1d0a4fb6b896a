package quiz

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/shapeclick/internal/config"
	"github.com/vovakirdan/shapeclick/internal/core"
	"github.com/vovakirdan/shapeclick/internal/palette"
)

// choices is how many small shapes a round shows.
const choices = 3

// Configuration errors. All of them wrap ErrConfig.
var (
	ErrConfig          = errors.New("quiz: configuration error")
	ErrNotEnoughColors = fmt.Errorf("%w: not enough distinct colours", ErrConfig)
	ErrNotEnoughShapes = fmt.Errorf("%w: not enough distinct shape kinds", ErrConfig)
)

// TextMeasurer reports the rendered width of text in view units.
// Layout depends on it; the renderer owns the font metrics.
type TextMeasurer interface {
	MeasureText(text string, size int) (int, error)
}

// MeasureFunc adapts a function to TextMeasurer.
type MeasureFunc func(text string, size int) (int, error)

// MeasureText implements TextMeasurer.
func (f MeasureFunc) MeasureText(text string, size int) (int, error) {
	return f(text, size)
}

// Shuffler produces uniform permutations. *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// shuffled returns a shuffled copy of items, leaving items untouched.
func shuffled[T any](items []T, rng Shuffler) []T {
	out := append([]T(nil), items...)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// Generator builds rounds from the colour catalog and shape kinds.
type Generator struct {
	colors  []palette.Color
	kinds   []ShapeKind
	shapes  config.QuizShapes
	layout  config.QuizLayout
	decoy   core.Rect
	measure TextMeasurer
	rng     Shuffler
}

// NewGenerator validates the catalogs and returns a generator.
// Duplicate entries are dropped; fewer than three distinct colours or
// kinds is a configuration error.
func NewGenerator(cfg config.QuizConfig, colors []palette.Color, kinds []ShapeKind, measure TextMeasurer, rng Shuffler) (*Generator, error) {
	if measure == nil {
		return nil, fmt.Errorf("%w: no text measurer", ErrConfig)
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: no random source", ErrConfig)
	}

	uniqueColors := distinct(colors, func(c palette.Color) string { return c.Name })
	if len(uniqueColors) < choices {
		return nil, fmt.Errorf("%w: need %d, got %d", ErrNotEnoughColors, choices, len(uniqueColors))
	}
	uniqueKinds := distinct(kinds, func(k ShapeKind) string { return string(k) })
	if len(uniqueKinds) < choices {
		return nil, fmt.Errorf("%w: need %d, got %d", ErrNotEnoughShapes, choices, len(uniqueKinds))
	}

	return &Generator{
		colors:  uniqueColors,
		kinds:   uniqueKinds,
		shapes:  cfg.Shapes,
		layout:  cfg.Layout,
		decoy:   cfg.DecoyBounds(),
		measure: measure,
		rng:     rng,
	}, nil
}

// distinct keeps the first occurrence of each key, preserving order.
func distinct[T any](items []T, key func(T) string) []T {
	seen := make(map[string]bool, len(items))
	out := make([]T, 0, len(items))
	for _, it := range items {
		k := key(it)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, it)
	}
	return out
}

// Generate builds a new round: three small shapes in a row, the first of
// which (after shuffling) is the answer, plus an enlarged copy of the
// second placed in the decoy slot.
func (g *Generator) Generate() (*Round, error) {
	colors := shuffled(g.colors, g.rng)
	kinds := shuffled(g.kinds, g.rng)

	small := make([]Shape, choices)
	hints := make([]Hint, choices)
	size := g.shapes.SmallSize
	for i := range choices {
		c := colors[i]
		bounds := core.NewRect(g.layout.RowStartX+i*g.layout.RowSpacing, g.layout.RowY, size, size)
		small[i] = Shape{
			Kind:   kinds[i],
			Color:  c,
			Bounds: bounds,
			Abbrev: c.Abbrev(),
		}

		w, err := g.measure.MeasureText(c.Title(), 0)
		if err != nil {
			return nil, fmt.Errorf("quiz: measure hint %q: %w", c.Title(), err)
		}
		hints[i] = Hint{
			Text:   c.Title(),
			Abbrev: c.Abbrev(),
			Pos:    core.Point{X: bounds.X + size/2 - w/2, Y: bounds.Y - g.layout.HintOffsetY},
		}
	}

	shapes := shuffled(small, g.rng)
	shapes[0].Correct = true

	mislead := shapes[1]
	decoy := Shape{
		Kind:   mislead.Kind,
		Color:  mislead.Color,
		Bounds: g.decoy,
		Abbrev: mislead.Abbrev,
		Decoy:  true,
	}
	shapes = append(shapes, decoy)

	round := &Round{
		Shapes: shapes,
		Clue:   shapes[0].Describe(),
		Hints:  hints,
	}

	textColor := palette.HighContrast(decoy.Color.RGB)
	for _, line := range []struct {
		text string
		y    int
	}{
		{"Click the", g.layout.PromptY},
		{round.Clue, g.layout.ClueY},
	} {
		w, err := g.measure.MeasureText(line.text, 0)
		if err != nil {
			return nil, fmt.Errorf("quiz: measure label %q: %w", line.text, err)
		}
		round.Labels = append(round.Labels, Label{
			Text:  line.text,
			Pos:   core.Point{X: g.layout.ViewWidth/2 - w/2, Y: line.y},
			Color: textColor,
		})
	}

	return round, nil
}
