// Package color converts colors between hex, RGB and HSL notation and
// generates random palettes. Every function is pure apart from the seeded
// Generator; malformed input is reported with a boolean, never an error.
package color

import (
	"fmt"
	"strconv"
	"strings"
)

// RGB is a color in 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// HSL is a color in hue (0-360 degrees), saturation and lightness
// (0-100 percent), each rounded to the nearest integer.
type HSL struct {
	H, S, L int
}

// Color bundles the three representations of one value. It has no identity
// and is recomputed whenever the input changes.
type Color struct {
	Hex string // as entered, normalized to "#rrggbb"
	RGB RGB
	HSL HSL
}

// ParseHex parses a 6-digit hex color with an optional leading '#'.
// Case is ignored. Wrong length or non-hex characters return ok=false.
func ParseHex(s string) (RGB, bool) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return RGB{}, false
	}
	var ch [3]uint8
	for i := range ch {
		v, err := strconv.ParseUint(s[i*2:i*2+2], 16, 8)
		if err != nil {
			return RGB{}, false
		}
		ch[i] = uint8(v)
	}
	return RGB{R: ch[0], G: ch[1], B: ch[2]}, true
}

// FromHex parses s and derives the RGB and HSL forms.
func FromHex(s string) (Color, bool) {
	rgb, ok := ParseHex(s)
	if !ok {
		return Color{}, false
	}
	return FromRGB(rgb), true
}

// FromRGB derives the hex and HSL forms of rgb.
func FromRGB(rgb RGB) Color {
	return Color{
		Hex: rgb.Hex(),
		RGB: rgb,
		HSL: RGBToHSL(rgb.R, rgb.G, rgb.B),
	}
}

// Hex encodes c as lowercase "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String renders c in CSS functional notation, e.g. "rgb(102, 126, 234)".
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// String renders c in CSS functional notation, e.g. "hsl(229, 76%, 66%)".
func (c HSL) String() string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", c.H, c.S, c.L)
}

// HexUpper returns the hex form in upper case, as shown in the hex field.
func (c Color) HexUpper() string {
	return strings.ToUpper(c.Hex)
}
