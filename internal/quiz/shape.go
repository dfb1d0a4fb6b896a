package quiz

import (
	"github.com/vovakirdan/shapeclick/internal/core"
	"github.com/vovakirdan/shapeclick/internal/palette"
)

// ShapeKind identifies one of the geometric shapes a round can ask for.
type ShapeKind string

const (
	KindSquare   ShapeKind = "square"
	KindCircle   ShapeKind = "circle"
	KindHexagon  ShapeKind = "hexagon"
	KindDiamond  ShapeKind = "diamond"
	KindTriangle ShapeKind = "triangle"
	KindOctagon  ShapeKind = "octagon"
	KindEllipse  ShapeKind = "ellipse"
)

// AllKinds returns every shape kind in a fixed order.
func AllKinds() []ShapeKind {
	return []ShapeKind{
		KindSquare,
		KindCircle,
		KindHexagon,
		KindDiamond,
		KindTriangle,
		KindOctagon,
		KindEllipse,
	}
}

// String implements fmt.Stringer.
func (k ShapeKind) String() string {
	return string(k)
}

// Shape is a coloured shape placed in the view.
type Shape struct {
	Kind    ShapeKind
	Color   palette.Color
	Bounds  core.Rect
	Abbrev  string // Colour-blind hint letters, e.g. "Bk"
	Correct bool   // The shape described by the clue
	Decoy   bool   // The enlarged distractor
}

// Describe returns "<color> <kind>", the wording used by clues.
func (s Shape) Describe() string {
	return s.Color.Name + " " + string(s.Kind)
}
