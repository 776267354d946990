package color

// Adjust adds delta to each channel of hex independently, clamping to
// [0,255], and returns the result as "#rrggbb". It is used to derive the
// second stop of a two-tone gradient from one base color.
func Adjust(hex string, delta int) (string, bool) {
	rgb, ok := ParseHex(hex)
	if !ok {
		return "", false
	}
	return RGB{
		R: clampChannel(int(rgb.R) + delta),
		G: clampChannel(int(rgb.G) + delta),
		B: clampChannel(int(rgb.B) + delta),
	}.Hex(), true
}

// MustAdjust is Adjust for colors already known to be valid; malformed
// input is returned unchanged.
func MustAdjust(hex string, delta int) string {
	out, ok := Adjust(hex, delta)
	if !ok {
		return hex
	}
	return out
}

// Contrast picks black or white text for a label drawn on top of c.
func Contrast(c RGB) RGB {
	if RGBToHSL(c.R, c.G, c.B).L > 55 {
		return RGB{}
	}
	return RGB{R: 255, G: 255, B: 255}
}

func clampChannel(v int) uint8 {
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	}
	return uint8(v)
}
