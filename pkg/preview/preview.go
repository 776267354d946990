// Package preview draws images in the terminal with Unicode half blocks
// and 24-bit color. Each cell shows two vertical pixels: the top one as
// the foreground of U+2580 and the bottom one as the background.
package preview

import (
	"fmt"
	"image"
	"strings"
)

// Render converts img to a half-block string, one line per two pixel rows.
// Fully transparent pixel pairs render as plain spaces.
func Render(img image.Image) string {
	if img == nil {
		return ""
	}
	nrgba := toNRGBA(img)
	bounds := nrgba.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return ""
	}

	var b strings.Builder
	b.Grow(w * (h/2 + 1) * 30)

	for y := 0; y < h; y += 2 {
		if y > 0 {
			b.WriteString("\x1b[0m\n")
		}
		for x := 0; x < w; x++ {
			top := nrgba.NRGBAAt(bounds.Min.X+x, bounds.Min.Y+y)
			var bot = top
			bot.A = 0
			if y+1 < h {
				bot = nrgba.NRGBAAt(bounds.Min.X+x, bounds.Min.Y+y+1)
			}

			switch {
			case top.A == 0 && bot.A == 0:
				b.WriteString("\x1b[0m ")
			case top.A == 0:
				fmt.Fprintf(&b, "\x1b[38;2;%d;%d;%dm\x1b[49m▄", bot.R, bot.G, bot.B)
			case bot.A == 0:
				fmt.Fprintf(&b, "\x1b[38;2;%d;%d;%dm\x1b[49m▀", top.R, top.G, top.B)
			default:
				fmt.Fprintf(&b, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀",
					top.R, top.G, top.B, bot.R, bot.G, bot.B)
			}
		}
	}

	b.WriteString("\x1b[0m")
	return b.String()
}

// RenderFit scales img to fit cols x rows cells and renders it.
func RenderFit(img image.Image, cols, rows int) string {
	return Render(Fit(img, cols, rows))
}

func toNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok {
		return n
	}
	b := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			out.Set(x, y, img.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return out
}
