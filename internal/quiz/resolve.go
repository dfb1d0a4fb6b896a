package quiz

import "github.com/vovakirdan/shapeclick/internal/core"

// Outcome classifies a click.
type Outcome int

const (
	NoHit Outcome = iota
	Correct
	Incorrect
)

// String implements fmt.Stringer.
func (o Outcome) String() string {
	switch o {
	case NoHit:
		return "no_hit"
	case Correct:
		return "correct"
	case Incorrect:
		return "incorrect"
	default:
		return "unknown"
	}
}

// HitResult describes what a click landed on.
type HitResult struct {
	Outcome Outcome
	Index   int // Index into Round.Shapes, -1 on NoHit
	Shape   Shape
}

// Resolve tests the click against each displayed shape's bounding box in
// display order. The first containing shape wins.
func Resolve(click core.Point, r *Round) HitResult {
	if r != nil {
		for i, s := range r.Shapes {
			if !s.Bounds.Contains(click) {
				continue
			}
			outcome := Incorrect
			if s.Correct {
				outcome = Correct
			}
			return HitResult{Outcome: outcome, Index: i, Shape: s}
		}
	}
	return HitResult{Outcome: NoHit, Index: -1}
}
