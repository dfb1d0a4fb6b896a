package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/shapeclick/internal/core"
	"github.com/vovakirdan/shapeclick/internal/palette"
	"github.com/vovakirdan/shapeclick/internal/quiz"
)

// boardColor is the backdrop behind the shapes. Mid-dark so that both the
// black and the white shapes stand out.
var boardColor = core.Gray

// Draw rasterises a quiz frame onto the screen.
func Draw(s *core.Screen, f quiz.Frame) {
	s.FillBackground(boardColor)

	vp := NewViewport(f.ViewWidth, f.ViewHeight, s.Width(), s.Height())
	if !vp.Valid() {
		return
	}

	// Reverse order so the shape that wins a click is the one on top.
	for i := len(f.Shapes) - 1; i >= 0; i-- {
		drawShape(s, vp, f.Shapes[i])
	}
	for _, h := range f.Hints {
		drawText(s, vp, h.Pos, h.Text, core.White)
	}
	for _, l := range f.Labels {
		drawText(s, vp, l.Pos, l.Text, l.Color)
	}
	for _, l := range f.HUD {
		drawText(s, vp, l.Pos, l.Text, l.Color)
	}
	if f.Overlay != nil {
		drawOverlay(s, *f.Overlay)
	}
}

func drawShape(s *core.Screen, vp Viewport, sh quiz.Shape) {
	b := sh.Bounds
	if b.W <= 0 || b.H <= 0 {
		return
	}
	col0, col1, row0, row1 := vp.CellSpan(b)
	for row := row0; row < row1; row++ {
		for col := col0; col < col1; col++ {
			p := vp.CellCenter(col, row)
			if !b.Contains(p) {
				continue
			}
			u := (float64(p.X-b.X) + 0.5) / float64(b.W)
			v := (float64(p.Y-b.Y) + 0.5) / float64(b.H)
			if inMask(sh.Kind, u, v) {
				s.Paint(col, row, sh.Color.RGB)
			}
		}
	}

	col, row := vp.ToCell(b.Center())
	n := len([]rune(sh.Abbrev))
	s.DrawTextColored(col-n/2, row, sh.Abbrev, palette.HighContrast(sh.Color.RGB))
}

// inMask reports whether the normalised point (u, v) in [0,1)x[0,1),
// v growing upward, lies inside the outline of kind.
func inMask(kind quiz.ShapeKind, u, v float64) bool {
	dx, dy := math.Abs(u-0.5), math.Abs(v-0.5)
	switch kind {
	case quiz.KindCircle:
		return dx*dx+dy*dy <= 0.25
	case quiz.KindEllipse:
		return dx*dx/0.25+dy*dy/0.1225 <= 1
	case quiz.KindDiamond:
		return dx+dy <= 0.5
	case quiz.KindTriangle:
		return dx <= (1-v)/2
	case quiz.KindHexagon:
		return dx+dy/2 <= 0.5
	case quiz.KindOctagon:
		return dx+dy <= 0.75
	default:
		return true
	}
}

// drawText writes text whose top-left corner sits at a logical point.
func drawText(s *core.Screen, vp Viewport, pos core.Point, text string, fg core.RGB) {
	col, row := vp.ToCell(pos)
	s.DrawTextColored(col, row, text, fg)
}

func drawOverlay(s *core.Screen, o quiz.Overlay) {
	s.Tint(o.Fill, o.Alpha)

	mid := s.Height() / 2
	w := max(lipgloss.Width(o.Message), lipgloss.Width(o.Prompt)) + 4
	s.DrawBox((s.Width()-w)/2, mid-2, w, 5, o.Text)
	s.DrawTextCentered(mid-1, o.Message, o.Text)
	s.DrawTextCentered(mid+1, o.Prompt, o.Text)
}

type styleKey struct {
	fg, bg          core.RGB
	colored, filled bool
}

// Styler turns screens into ANSI strings through one lipgloss renderer,
// so each SSH session gets escapes for its own terminal.
type Styler struct {
	renderer *lipgloss.Renderer
	styles   map[styleKey]lipgloss.Style
}

// NewStyler returns a styler for r, or for the default renderer if r is nil.
func NewStyler(r *lipgloss.Renderer) *Styler {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Styler{renderer: r, styles: make(map[styleKey]lipgloss.Style)}
}

func (st *Styler) style(k styleKey) lipgloss.Style {
	if style, ok := st.styles[k]; ok {
		return style
	}
	style := st.renderer.NewStyle()
	if k.colored {
		style = style.Foreground(lipgloss.Color(k.fg.Hex()))
	}
	if k.filled {
		style = style.Background(lipgloss.Color(k.bg.Hex()))
	}
	st.styles[k] = style
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colours to minimize ANSI escape sequences.
func (st *Styler) RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := keyOf(s.GetCell(x, y))

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if keyOf(cell) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(st.style(start).Render(run.String()))
		}
	}
	return sb.String()
}

func keyOf(c core.Cell) styleKey {
	k := styleKey{colored: c.Colored, filled: c.Filled}
	if c.Colored {
		k.fg = c.FG
	}
	if c.Filled {
		k.bg = c.BG
	}
	return k
}
