package render

import "image/color"

// Color is an opaque RGB colour with components in [0, 1].
type Color struct {
	R, G, B float32
}

var (
	Black = Color{}
	Green = Color{G: 1}
	Red   = Color{R: 1}
)

// RGBA converts the colour to 8-bit channels with full alpha.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: to8(c.R), G: to8(c.G), B: to8(c.B), A: 0xff}
}

func to8(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 0xff
	}
	return uint8(v*255 + 0.5)
}
