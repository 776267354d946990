package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/spinhue/pkg/color"
)

// Swatch renders a solid block of hex filled with spaces, width x height
// cells. A non-empty label is centered on the middle row in a contrasting
// foreground. Malformed hex renders an empty block of the same size.
func Swatch(hex string, width, height int, label string) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	rgb, ok := color.ParseHex(hex)
	if !ok {
		return FitBlock("", width, height)
	}
	fg := color.Contrast(rgb)
	style := lipgloss.NewStyle().
		Background(lipgloss.Color(rgb.Hex())).
		Foreground(lipgloss.Color(fg.Hex()))

	blank := strings.Repeat(" ", width)
	rows := make([]string, height)
	for i := range rows {
		text := blank
		if label != "" && i == height/2 {
			text = PadCenter(TruncateWithTail(label, width, "…"), width)
		}
		rows[i] = style.Render(text)
	}
	return strings.Join(rows, "\n")
}

// Chip renders a short colored label such as a record title on its primary
// color.
func Chip(hex, label string) string {
	rgb, ok := color.ParseHex(hex)
	if !ok {
		return label
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(rgb.Hex())).
		Foreground(lipgloss.Color(color.Contrast(rgb).Hex())).
		Padding(0, 1).
		Render(label)
}
