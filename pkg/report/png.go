package report

import (
	"fmt"
	"image"
	stdcolor "image/color"
	"os"

	"github.com/disintegration/imaging"
	"github.com/muesli/termenv"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"gitlab.com/tinyland/lab/spinhue/pkg/color"
	"gitlab.com/tinyland/lab/spinhue/pkg/preview"
)

// Palette image geometry in pixels.
const (
	SwatchPixelsW = 120
	SwatchPixelsH = 120
	labelMargin   = 8
)

// RenderPalette draws colors as a row of square swatches, each labelled
// with its uppercase hex value in a contrasting color. Malformed colors are
// skipped.
func RenderPalette(colors []string) (*image.NRGBA, error) {
	var valid []color.Color
	for _, hex := range colors {
		if c, ok := color.FromHex(hex); ok {
			valid = append(valid, c)
		}
	}
	if len(valid) == 0 {
		return nil, fmt.Errorf("report: palette has no valid colors")
	}

	canvas := imaging.New(SwatchPixelsW*len(valid), SwatchPixelsH, stdcolor.NRGBA{A: 255})
	for i, c := range valid {
		swatch := imaging.New(SwatchPixelsW, SwatchPixelsH, toNRGBA(c.RGB))
		drawLabel(swatch, c.HexUpper(), toNRGBA(color.Contrast(c.RGB)))
		canvas = imaging.Paste(canvas, swatch, image.Pt(i*SwatchPixelsW, 0))
	}
	return canvas, nil
}

// WritePalettePNG renders colors and writes them to path as PNG.
func WritePalettePNG(path string, colors []string) error {
	img, err := RenderPalette(colors)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: create %s: %w", path, err)
	}
	if err := imaging.Encode(f, img, imaging.PNG); err != nil {
		f.Close()
		return fmt.Errorf("report: encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("report: close %s: %w", path, err)
	}
	return nil
}

// PalettePreview prints the palette image as half blocks scaled to the
// report width. Profiles without true color print nothing.
func (r *Reporter) PalettePreview(colors []string, rows int) error {
	if r.out.Profile != termenv.TrueColor {
		return nil
	}
	img, err := RenderPalette(colors)
	if err != nil {
		return err
	}
	cols := r.width
	if cols <= 0 {
		cols = 80
	}
	fmt.Fprintln(r.out, preview.RenderFit(img, cols, rows))
	return nil
}

// drawLabel writes text in the bottom-left corner of img.
func drawLabel(img *image.NRGBA, text string, c stdcolor.NRGBA) {
	face := basicfont.Face7x13
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(labelMargin, img.Bounds().Dy()-labelMargin),
	}
	d.DrawString(text)
}

func toNRGBA(c color.RGB) stdcolor.NRGBA {
	return stdcolor.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}
}
