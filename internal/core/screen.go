package core

import (
	"strings"
)

// Cell is a single character position on the screen.
type Cell struct {
	Rune    rune
	FG      RGB
	BG      RGB
	Colored bool // FG is only meaningful when set
	Filled  bool // BG is only meaningful when set
}

// Screen is a 2D character buffer for rendering game graphics.
// It decouples game rendering from the terminal, allowing the renderer to
// draw runes while the platform handles actual display.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  max(width, 0),
		height: max(height, 0),
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions, preserving content where possible.
func (s *Screen) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == s.width && height == s.height {
		return
	}

	oldCells := s.cells
	oldW, oldH := s.width, s.height

	s.width = width
	s.height = height
	s.allocate()
	s.Clear()

	copyW := min(oldW, width)
	copyH := min(oldH, height)
	for y := 0; y < copyH; y++ {
		copy(s.cells[y][:copyW], oldCells[y][:copyW])
	}
}

// Clear fills the entire screen with uncoloured spaces.
func (s *Screen) Clear() {
	s.Fill(' ')
}

// Fill fills the entire screen with the given rune and no colour.
func (s *Screen) Fill(r rune) {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: r}
		}
	}
}

// InBounds reports whether (x, y) is a valid cell position.
func (s *Screen) InBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// Set places an uncoloured rune at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	if !s.InBounds(x, y) {
		return
	}
	s.cells[y][x] = Cell{Rune: r}
}

// SetColored places a rune with a foreground colour at the given position.
// The cell keeps its background.
func (s *Screen) SetColored(x, y int, r rune, fg RGB) {
	if !s.InBounds(x, y) {
		return
	}
	c := &s.cells[y][x]
	c.Rune, c.FG, c.Colored = r, fg, true
}

// Paint sets the background of a cell and blanks its rune.
func (s *Screen) Paint(x, y int, bg RGB) {
	if !s.InBounds(x, y) {
		return
	}
	s.cells[y][x] = Cell{Rune: ' ', BG: bg, Filled: true}
}

// FillBackground paints every cell with bg.
func (s *Screen) FillBackground(bg RGB) {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: ' ', BG: bg, Filled: true}
		}
	}
}

// Tint blends over into every cell's colours with the given alpha,
// keeping runes. Unfilled cells are treated as black.
func (s *Screen) Tint(over RGB, alpha uint8) {
	for y := range s.cells {
		for x := range s.cells[y] {
			c := &s.cells[y][x]
			c.BG = c.BG.Blend(over, alpha)
			c.Filled = true
			if c.Colored {
				c.FG = c.FG.Blend(over, alpha)
			}
		}
	}
}

// GetCell returns the full cell at the given position.
func (s *Screen) GetCell(x, y int) Cell {
	if !s.InBounds(x, y) {
		return Cell{Rune: ' '}
	}
	return s.cells[y][x]
}

// DrawTextColored writes a coloured string horizontally starting at (x, y).
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawTextColored(x, y int, text string, fg RGB) {
	i := 0
	for _, r := range text {
		s.SetColored(x+i, y, r, fg)
		i++
	}
}

// DrawTextCentered draws coloured text centered horizontally at the given y position.
func (s *Screen) DrawTextCentered(y int, text string, fg RGB) {
	x := (s.width - len([]rune(text))) / 2
	s.DrawTextColored(x, y, text, fg)
}

// DrawBox draws a box outline using box-drawing characters in fg.
// Cells keep their background.
func (s *Screen) DrawBox(x, y, w, h int, fg RGB) {
	right, bottom := x+w-1, y+h-1

	s.SetColored(x, y, '┌', fg)
	s.SetColored(right, y, '┐', fg)
	s.SetColored(x, bottom, '└', fg)
	s.SetColored(right, bottom, '┘', fg)

	for cx := x + 1; cx < right; cx++ {
		s.SetColored(cx, y, '─', fg)
		s.SetColored(cx, bottom, '─', fg)
	}
	for cy := y + 1; cy < bottom; cy++ {
		s.SetColored(x, cy, '│', fg)
		s.SetColored(right, cy, '│', fg)
	}
}

// String converts the screen buffer to a plain string without colours.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(s.Row(y))
	}
	return sb.String()
}

// Row returns a copy of the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}
