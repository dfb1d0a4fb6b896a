package tui

import (
	"errors"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/shapeclick/internal/core"
)

// ErrMeasureUnavailable is returned while the board has no width, so text
// cannot be converted to logical units.
var ErrMeasureUnavailable = errors.New("tui: text measurement unavailable")

// Measurer measures text in logical view units by its cell width on the
// board. A terminal has a single font size, so the size argument is ignored.
type Measurer struct {
	viewW  int
	screen *core.Screen
}

// NewMeasurer returns a measurer that tracks the size of screen.
func NewMeasurer(viewW int, screen *core.Screen) Measurer {
	return Measurer{viewW: viewW, screen: screen}
}

// MeasureText implements quiz.TextMeasurer.
func (m Measurer) MeasureText(text string, _ int) (int, error) {
	if m.screen == nil || m.screen.Width() == 0 || m.viewW <= 0 {
		return 0, ErrMeasureUnavailable
	}
	return lipgloss.Width(text) * m.viewW / m.screen.Width(), nil
}
