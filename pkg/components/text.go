// Package components provides ANSI-aware text helpers and the small
// rendering primitives shared by the spinhue widgets: color swatches and
// the spinning disc glyph.
package components

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// VisibleLen returns the visible width of s in terminal cells. ANSI escape
// sequences are ignored and wide characters count as 2.
func VisibleLen(s string) int {
	return ansi.StringWidth(s)
}

// Truncate cuts s to at most maxWidth visible cells, preserving any escape
// sequences before the cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return ansi.Truncate(s, maxWidth, "")
}

// TruncateWithTail truncates s to maxWidth cells, ending in tail when
// anything was cut. The tail counts toward maxWidth.
func TruncateWithTail(s string, maxWidth int, tail string) string {
	if maxWidth <= 0 {
		return ""
	}
	return ansi.Truncate(s, maxWidth, tail)
}

// PadRight pads s with trailing spaces to width. Wider strings are
// returned unchanged.
func PadRight(s string, width int) string {
	vis := VisibleLen(s)
	if vis >= width {
		return s
	}
	return s + strings.Repeat(" ", width-vis)
}

// PadCenter centers s within width; odd padding goes on the right.
func PadCenter(s string, width int) string {
	vis := VisibleLen(s)
	if vis >= width {
		return s
	}
	total := width - vis
	left := total / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", total-left)
}

// FitLine truncates or right-pads a single line to exactly width cells.
func FitLine(line string, width int) string {
	if width <= 0 {
		return ""
	}
	if VisibleLen(line) > width {
		return TruncateWithTail(line, width, "…")
	}
	return PadRight(line, width)
}

// FitBlock fits a multi-line block into width x height cells, truncating
// long lines, dropping surplus lines and padding short ones.
func FitBlock(block string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	var lines []string
	if block != "" {
		lines = strings.Split(block, "\n")
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	out := make([]string, height)
	for i := range out {
		if i < len(lines) {
			out[i] = FitLine(lines[i], width)
		} else {
			out[i] = strings.Repeat(" ", width)
		}
	}
	return strings.Join(out, "\n")
}
