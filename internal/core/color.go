package core

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an opaque 24-bit RGB color used for both terminal cells and
// window pixels.
type Color struct {
	R, G, B uint8
}

// Predefined colors for game elements.
var (
	ColorNone   = Color{}
	ColorBlack  = Color{0, 0, 0}
	ColorWhite  = Color{255, 255, 255}
	ColorYellow = Color{255, 255, 0}
	ColorDark   = Color{0x33, 0x33, 0x33}
)

// ParseHex parses "#rrggbb" (or "#rgb") into a Color.
func ParseHex(s string) (Color, error) {
	if len(s) == 4 && s[0] == '#' {
		s = string([]byte{'#', s[1], s[1], s[2], s[2], s[3], s[3]})
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("core: invalid color %q: %w", s, err)
	}
	return FromColorful(c), nil
}

// MustParseHex is ParseHex for compile-time constants.
func MustParseHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// HSL converts hue in degrees, saturation and lightness in [0, 1] to a Color.
func HSL(h, s, l float64) Color {
	return FromColorful(colorful.Hsl(h, s, l))
}

// FromColorful converts a go-colorful color, clamping out-of-gamut values.
func FromColorful(c colorful.Color) Color {
	r, g, b := c.Clamped().RGB255()
	return Color{R: r, G: g, B: b}
}

// Colorful returns the go-colorful representation of c.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// Blend linearly interpolates between c and other; t=0 gives c, t=1 gives other.
func (c Color) Blend(other Color, t float64) Color {
	return FromColorful(c.Colorful().BlendRgb(other.Colorful(), ClampF(t, 0, 1)))
}

// Hex returns the "#rrggbb" form used by lipgloss.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// RGBA implements image/color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	return r, g, b, 0xffff
}
