// Package palette holds the fixed catalog of named colours used by the quiz
// and the contrast rule that picks legible text over them.
package palette

import (
	"strings"

	"github.com/vovakirdan/shapeclick/internal/core"
)

// Color is a named RGB colour. Values are immutable; the catalog hands out copies.
type Color struct {
	Name string
	RGB  core.RGB
}

// catalog is ordered so that seeded shuffles are reproducible.
var catalog = []Color{
	{Name: "black", RGB: core.RGB{R: 0, G: 0, B: 0}},
	{Name: "red", RGB: core.RGB{R: 255, G: 0, B: 0}},
	{Name: "green", RGB: core.RGB{R: 0, G: 255, B: 0}},
	{Name: "blue", RGB: core.RGB{R: 0, G: 0, B: 255}},
	{Name: "yellow", RGB: core.RGB{R: 255, G: 255, B: 0}},
	{Name: "orange", RGB: core.RGB{R: 255, G: 127, B: 0}},
	{Name: "purple", RGB: core.RGB{R: 127, G: 0, B: 127}},
	{Name: "white", RGB: core.RGB{R: 255, G: 255, B: 255}},
}

// Catalog returns a copy of all colours in catalog order.
func Catalog() []Color {
	out := make([]Color, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup finds a catalog colour by name (case-insensitive).
func Lookup(name string) (Color, bool) {
	for _, c := range catalog {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return Color{}, false
}

// HighContrast picks black or white, whichever reads better over c.
// Uses the luminance approximation v = (r*1.5 + g*1.5 + b) / 3.
func HighContrast(c core.RGB) core.RGB {
	v := (float64(c.R)*1.5 + float64(c.G)*1.5 + float64(c.B)) / 3
	if v > 127 {
		return core.Black
	}
	return core.White
}

// Capitalize upper-cases the first letter and lower-cases the rest.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(strings.ToLower(s))
	r[0] = []rune(strings.ToUpper(string(r[0])))[0]
	return string(r)
}

// Abbrev returns the colour-blind hint letters for a colour name:
// its first and last characters, capitalised ("black" -> "Bk").
func Abbrev(name string) string {
	r := []rune(name)
	if len(r) == 0 {
		return ""
	}
	return Capitalize(string(r[0]) + string(r[len(r)-1]))
}

// Abbrev returns the hint letters for this colour.
func (c Color) Abbrev() string {
	return Abbrev(c.Name)
}

// Title returns the capitalised colour name shown under each shape.
func (c Color) Title() string {
	return Capitalize(c.Name)
}

// Contrast returns the legible text colour over this colour.
func (c Color) Contrast() core.RGB {
	return HighContrast(c.RGB)
}
