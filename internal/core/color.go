package core

import "fmt"

// RGB is a 24-bit colour with 0-255 channels.
type RGB struct {
	R, G, B uint8
}

// Predefined colours used by overlays and text.
var (
	Black = RGB{0, 0, 0}
	White = RGB{255, 255, 255}
	Gray  = RGB{64, 64, 64}
)

// Hex returns the colour as a "#rrggbb" string.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c RGB) String() string {
	return fmt.Sprintf("(%d, %d, %d)", c.R, c.G, c.B)
}

// Blend draws over on top of c with the given opacity (255 is opaque).
func (c RGB) Blend(over RGB, alpha uint8) RGB {
	mix := func(under, top uint8) uint8 {
		return uint8((int(top)*int(alpha) + int(under)*(255-int(alpha)) + 127) / 255)
	}
	return RGB{R: mix(c.R, over.R), G: mix(c.G, over.G), B: mix(c.B, over.B)}
}
