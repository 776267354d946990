package theme

import "github.com/charmbracelet/lipgloss"

// Styles are the lipgloss styles derived from a Theme.
type Styles struct {
	Panel      lipgloss.Style
	PanelFocus lipgloss.Style
	Title      lipgloss.Style
	Text       lipgloss.Style
	Dim        lipgloss.Style
	Label      lipgloss.Style
	Button     lipgloss.Style
	Flash      lipgloss.Style
	Card       lipgloss.Style
	CardActive lipgloss.Style
	StatusBar  lipgloss.Style
	HelpKey    lipgloss.Style
	HelpDesc   lipgloss.Style
	Banner     lipgloss.Style

	// Track is the hex color of the empty part of progress bars.
	Track string
}

// NewStyles builds the styles for t.
func NewStyles(t Theme) Styles {
	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(t.Border)).
		Padding(0, 1)

	card := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(t.Border)).
		Padding(0, 1)

	return Styles{
		Panel:      panel,
		PanelFocus: panel.BorderForeground(lipgloss.Color(t.BorderFocus)),
		Title:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.Title)),
		Text:       lipgloss.NewStyle().Foreground(lipgloss.Color(t.Foreground)),
		Dim:        lipgloss.NewStyle().Foreground(lipgloss.Color(t.Dim)),
		Label:      lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent)).Width(5),
		Button: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.ButtonFG)).
			Background(lipgloss.Color(t.ButtonBG)).
			Padding(0, 1),
		Flash: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.ButtonFG)).
			Background(lipgloss.Color(t.Flash)).
			Padding(0, 1),
		Card:       card,
		CardActive: card.Border(lipgloss.ThickBorder()).BorderForeground(lipgloss.Color(t.Active)),
		StatusBar:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Dim)),
		HelpKey:    lipgloss.NewStyle().Foreground(lipgloss.Color(t.HelpKey)),
		HelpDesc:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.HelpDesc)),
		Banner: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color(t.Accent)).
			Padding(0, 2),
		Track: t.Track,
	}
}
