package widgets

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/spinhue/pkg/app"
	"gitlab.com/tinyland/lab/spinhue/pkg/components"
	"gitlab.com/tinyland/lab/spinhue/pkg/consent"
	"gitlab.com/tinyland/lab/spinhue/pkg/theme"
)

const (
	zoneAccept  = "consent-accept"
	zoneDecline = "consent-decline"
)

// consentText is the banner message.
const consentText = "spinhue stores one preference on this machine. Allow it?"

// ConsentBanner asks the user to accept or decline the stored preference.
// It only reports the answer as an app.ConsentEvent; the root model
// persists it.
type ConsentBanner struct {
	visible bool
	accept  key.Binding
	decline key.Binding
	styles  theme.Styles
	zones   Zones
}

// NewConsentBanner returns a banner that is visible when show is true.
func NewConsentBanner(show bool, keys app.KeyMap, styles theme.Styles, zones Zones) *ConsentBanner {
	return &ConsentBanner{
		visible: show,
		accept:  keys.Accept,
		decline: keys.Decline,
		styles:  styles,
		zones:   zones,
	}
}

// Visible reports whether the banner is showing.
func (b *ConsentBanner) Visible() bool { return b.visible }

// Hide closes the banner.
func (b *ConsentBanner) Hide() { b.visible = false }

// HandleKey answers on y or n. It reports whether the key was consumed.
func (b *ConsentBanner) HandleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if !b.visible {
		return nil, false
	}
	switch {
	case key.Matches(msg, b.accept):
		return b.answer(consent.Accepted), true
	case key.Matches(msg, b.decline):
		return b.answer(consent.Declined), true
	}
	return nil, false
}

// HandleMouse answers on a click on either button.
func (b *ConsentBanner) HandleMouse(msg tea.MouseMsg) (tea.Cmd, bool) {
	if !b.visible || !isLeftPress(msg) {
		return nil, false
	}
	switch {
	case b.zones.Hit(zoneAccept, msg):
		return b.answer(consent.Accepted), true
	case b.zones.Hit(zoneDecline, msg):
		return b.answer(consent.Declined), true
	}
	return nil, false
}

func (b *ConsentBanner) answer(c consent.Choice) tea.Cmd {
	b.visible = false
	return func() tea.Msg {
		return app.ConsentEvent{Choice: c}
	}
}

// View renders the banner at width, or "" when hidden.
func (b *ConsentBanner) View(width int) string {
	if !b.visible || width <= 0 {
		return ""
	}
	buttons := b.zones.Mark(zoneAccept, b.styles.Button.Render("y Accept")) + " " +
		b.zones.Mark(zoneDecline, b.styles.Button.Render("n Decline"))
	inner := width - 6
	if inner < 1 {
		inner = 1
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		components.FitLine(b.styles.Text.Render(consentText), inner),
		buttons,
	)
	return b.styles.Banner.Width(width - 2).Render(body)
}
