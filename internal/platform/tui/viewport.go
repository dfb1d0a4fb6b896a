package tui

import "github.com/vovakirdan/shapeclick/internal/core"

// Viewport maps the quiz's logical view (origin bottom-left, y up) onto a
// grid of terminal cells (origin top-left, y down).
type Viewport struct {
	ViewW, ViewH int
	Cols, Rows   int
}

// NewViewport returns a viewport for a view of viewW x viewH logical units
// shown on cols x rows cells.
func NewViewport(viewW, viewH, cols, rows int) Viewport {
	return Viewport{ViewW: viewW, ViewH: viewH, Cols: cols, Rows: rows}
}

// Valid reports whether both sides have a non-zero area.
func (v Viewport) Valid() bool {
	return v.ViewW > 0 && v.ViewH > 0 && v.Cols > 0 && v.Rows > 0
}

// ToCell returns the cell containing a logical point.
func (v Viewport) ToCell(p core.Point) (col, row int) {
	col = p.X * v.Cols / v.ViewW
	row = (v.ViewH - 1 - p.Y) * v.Rows / v.ViewH
	return col, row
}

// CellCenter returns the logical point at the centre of a cell. Clicks are
// reported here, and shapes are drawn on the cells whose centre they
// contain, so what the player sees is what gets hit.
func (v Viewport) CellCenter(col, row int) core.Point {
	x := (2*col + 1) * v.ViewW / (2 * v.Cols)
	y := v.ViewH - 1 - (2*row+1)*v.ViewH/(2*v.Rows)
	return core.Point{
		X: core.Clamp(x, 0, v.ViewW-1),
		Y: core.Clamp(y, 0, v.ViewH-1),
	}
}

// Click converts a mouse position to a logical click. Positions outside
// the grid are rejected.
func (v Viewport) Click(col, row int) (core.Point, bool) {
	if !v.Valid() || col < 0 || row < 0 || col >= v.Cols || row >= v.Rows {
		return core.Point{}, false
	}
	return v.CellCenter(col, row), true
}

// CellSpan returns the half-open cell ranges that can hold part of r.
func (v Viewport) CellSpan(r core.Rect) (col0, col1, row0, row1 int) {
	col0 = max(r.X*v.Cols/v.ViewW, 0)
	col1 = min(r.Right()*v.Cols/v.ViewW+1, v.Cols)
	row0 = max((v.ViewH-r.Top())*v.Rows/v.ViewH, 0)
	row1 = min((v.ViewH-r.Y)*v.Rows/v.ViewH+1, v.Rows)
	return col0, col1, row0, row1
}
