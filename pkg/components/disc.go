package components

import "github.com/charmbracelet/lipgloss"

// discFrames are the rotation steps of the record glyph.
var discFrames = [...]string{"◐", "◓", "◑", "◒"}

// DiscFrame returns the disc glyph for a playback position. A playing disc
// advances one frame per elapsed second; a stopped or paused disc shows
// the frame it stopped on.
func DiscFrame(elapsed int) string {
	if elapsed < 0 {
		elapsed = 0
	}
	return discFrames[elapsed%len(discFrames)]
}

// Disc renders a small record: the rotating glyph in the record's primary
// color between label ring brackets in the secondary color.
func Disc(elapsed int, color1, color2 string) string {
	ring := lipgloss.NewStyle().Foreground(lipgloss.Color(color2))
	center := lipgloss.NewStyle().Foreground(lipgloss.Color(color1)).Bold(true)
	return ring.Render("(") + center.Render(DiscFrame(elapsed)) + ring.Render(")")
}
