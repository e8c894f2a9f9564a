package domain

import "fmt"

// Color is an opaque RGB color.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// DefaultColor is shown for an entry until its dominant color is known.
var DefaultColor = Color{R: 0xFF, G: 0xFF, B: 0xFF}

// ARGB packs the color with full alpha into a signed 32-bit integer, the form
// used in navigation routes.
func (c Color) ARGB() int32 {
	return int32(uint32(0xFF)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B))
}

// ColorFromARGB drops the alpha channel of a packed ARGB value.
func ColorFromARGB(argb int32) Color {
	v := uint32(argb)
	return Color{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}
}

func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c Color) String() string {
	return c.Hex()
}
