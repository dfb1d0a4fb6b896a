package quiz

import (
	"github.com/vovakirdan/shapeclick/internal/core"
)

// Label is a positioned line of text. Pos is the top-left of the text.
type Label struct {
	Text  string
	Pos   core.Point
	Color core.RGB
	Size  int // Text size hint; 0 is the renderer's normal size
}

// Hint is the colour-blind overlay shown under a small shape.
type Hint struct {
	Text   string // Capitalised colour name
	Abbrev string
	Pos    core.Point
}

// Round holds one challenge: three small shapes followed by the decoy.
type Round struct {
	Shapes []Shape
	Clue   string
	Labels []Label
	Hints  []Hint
}

// CorrectIndex returns the index of the correct shape, or -1.
func (r *Round) CorrectIndex() int {
	for i, s := range r.Shapes {
		if s.Correct {
			return i
		}
	}
	return -1
}

// Correct returns the shape the clue describes.
func (r *Round) Correct() (Shape, bool) {
	i := r.CorrectIndex()
	if i < 0 {
		return Shape{}, false
	}
	return r.Shapes[i], true
}

// Decoy returns the enlarged distractor.
func (r *Round) Decoy() (Shape, bool) {
	for _, s := range r.Shapes {
		if s.Decoy {
			return s, true
		}
	}
	return Shape{}, false
}

// Clone returns a deep copy of the round.
func (r *Round) Clone() *Round {
	if r == nil {
		return nil
	}
	return &Round{
		Shapes: append([]Shape(nil), r.Shapes...),
		Clue:   r.Clue,
		Labels: append([]Label(nil), r.Labels...),
		Hints:  append([]Hint(nil), r.Hints...),
	}
}
