package color

import "math"

// RGBToHSL converts 8-bit channels to HSL. Achromatic colors (all channels
// equal) have hue and saturation 0. Ties on the maximal channel resolve in
// red, green, blue order.
func RGBToHSL(r, g, b uint8) HSL {
	rn := float64(r) / 255
	gn := float64(g) / 255
	bn := float64(b) / 255

	max := math.Max(rn, math.Max(gn, bn))
	min := math.Min(rn, math.Min(gn, bn))
	l := (max + min) / 2

	var h, s float64
	if max != min {
		d := max - min
		if l > 0.5 {
			s = d / (2 - max - min)
		} else {
			s = d / (max + min)
		}

		// Each branch yields a sector in [0,6).
		switch max {
		case rn:
			h = (gn - bn) / d
			if gn < bn {
				h += 6
			}
		case gn:
			h = (bn-rn)/d + 2
		default:
			h = (rn-gn)/d + 4
		}
		h /= 6
	}

	return HSL{
		H: int(math.Round(h * 360)),
		S: int(math.Round(s * 100)),
		L: int(math.Round(l * 100)),
	}
}
