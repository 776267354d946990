package preview

import (
	"image"
	"math"

	xdraw "golang.org/x/image/draw"
)

// Fit scales img down to at most cols x rows cells, two pixels per cell
// row, keeping its aspect ratio. Images that already fit are returned
// unchanged; nothing is upscaled.
func Fit(img image.Image, cols, rows int) image.Image {
	if img == nil {
		return nil
	}
	if cols <= 0 {
		cols = 1
	}
	if rows <= 0 {
		rows = 1
	}
	maxW, maxH := cols, rows*2

	bounds := img.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()
	if srcW <= 0 || srcH <= 0 {
		return img
	}
	if srcW <= maxW && srcH <= maxH {
		return img
	}

	scale := math.Min(float64(maxW)/float64(srcW), float64(maxH)/float64(srcH))
	dstW := max(1, int(math.Round(float64(srcW)*scale)))
	dstH := max(1, int(math.Round(float64(srcH)*scale)))

	dst := image.NewNRGBA(image.Rect(0, 0, dstW, dstH))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, xdraw.Over, nil)
	return dst
}
