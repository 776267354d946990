// Package report renders spinhue's headless output: color conversions,
// palettes, the record catalog and the consent state. Swatches are drawn
// with termenv and degrade to plain text on non-color outputs.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"gitlab.com/tinyland/lab/spinhue/pkg/catalog"
	"gitlab.com/tinyland/lab/spinhue/pkg/color"
	"gitlab.com/tinyland/lab/spinhue/pkg/components"
	"gitlab.com/tinyland/lab/spinhue/pkg/consent"
	"gitlab.com/tinyland/lab/spinhue/pkg/player"
)

// swatchWidth is the number of cells of a color chip.
const swatchWidth = 10

// Reporter writes reports to one output.
type Reporter struct {
	out   *termenv.Output
	width int
}

// New returns a Reporter writing to w with the given color profile. Lines
// are truncated to width cells; width <= 0 disables truncation.
func New(w io.Writer, profile termenv.Profile, width int) *Reporter {
	return &Reporter{
		out:   termenv.NewOutput(w, termenv.WithProfile(profile)),
		width: width,
	}
}

// Convert prints hex in all three notations next to a swatch. Malformed
// input is an error so the CLI can exit non-zero.
func (r *Reporter) Convert(hex string) error {
	c, ok := color.FromHex(hex)
	if !ok {
		return fmt.Errorf("report: invalid color %q", hex)
	}
	r.swatchLine(c.Hex, c.HexUpper())
	r.line("  hex  " + c.HexUpper())
	r.line("  rgb  " + c.RGB.String())
	r.line("  hsl  " + c.HSL.String())
	return nil
}

// Adjust prints hex shifted by delta on every channel.
func (r *Reporter) Adjust(hex string, delta int) error {
	adjusted, ok := color.Adjust(hex, delta)
	if !ok {
		return fmt.Errorf("report: invalid color %q", hex)
	}
	c, _ := color.FromHex(adjusted)
	r.swatchLine(c.Hex, fmt.Sprintf("%s %+d -> %s", strings.ToUpper(hex), delta, c.HexUpper()))
	r.line("  rgb  " + c.RGB.String())
	r.line("  hsl  " + c.HSL.String())
	return nil
}

// Palette prints one swatch line per color.
func (r *Reporter) Palette(colors []string) {
	for i, hex := range colors {
		c, ok := color.FromHex(hex)
		if !ok {
			continue
		}
		r.swatchLine(c.Hex, fmt.Sprintf("%d  %s  %s  %s", i+1, c.HexUpper(), c.RGB, c.HSL))
	}
}

// Records prints the catalog, one record per line.
func (r *Reporter) Records(records []catalog.Record) {
	for i, rec := range records {
		label := fmt.Sprintf("%d  %-28s %-18s %6s",
			i+1, rec.Title, rec.Artist, player.FormatTime(rec.Duration))
		r.swatchLine(rec.Color1, label)
	}
}

// Consent prints the stored consent choice.
func (r *Reporter) Consent(c consent.Choice) {
	r.line("consent: " + c.String())
}

// swatchLine prints a color chip followed by label.
func (r *Reporter) swatchLine(hex, label string) {
	rgb, ok := color.ParseHex(hex)
	if !ok {
		r.line(label)
		return
	}
	chip := r.out.String(strings.Repeat(" ", swatchWidth)).
		Background(r.out.Color(rgb.Hex()))
	if r.out.Profile == termenv.Ascii {
		chip = r.out.String(components.PadRight("["+rgb.Hex()+"]", swatchWidth))
	}
	r.line(chip.String() + " " + label)
}

// line writes s truncated to the configured width.
func (r *Reporter) line(s string) {
	if r.width > 0 {
		s = components.TruncateWithTail(s, r.width, "…")
	}
	fmt.Fprintln(r.out, s)
}
