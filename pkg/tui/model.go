// Package tui implements the root bubbletea model of spinhue. It owns the
// layout, focus, help overlay, consent banner and the routing of keyboard
// and mouse input to the widgets.
package tui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"gitlab.com/tinyland/lab/spinhue/pkg/app"
	"gitlab.com/tinyland/lab/spinhue/pkg/consent"
	"gitlab.com/tinyland/lab/spinhue/pkg/theme"
	"gitlab.com/tinyland/lab/spinhue/pkg/widgets"
)

// Options configures New.
type Options struct {
	// Widgets in focus order; the first starts focused.
	Widgets []app.Widget
	// Transport receives the global play/pause, prev and next keys.
	Transport app.Transport
	// Consent, when set, decides whether the consent banner is shown and
	// persists the answer.
	Consent *consent.Manager
	Theme   theme.Theme
	Zones   *zone.Manager
	Logger  *slog.Logger
}

// Model is the root bubbletea model.
type Model struct {
	widgets   []app.Widget
	transport app.Transport
	focus     app.Focus
	keys      app.KeyMap
	help      help.Model

	consent *consent.Manager
	banner  *widgets.ConsentBanner

	showHelp bool
	zoomed   bool
	status   string

	width  int
	height int
	ready  bool

	styles theme.Styles
	zones  *zone.Manager
	logger *slog.Logger
}

// New creates the root model. The consent flag is read once here.
func New(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	ids := make([]string, len(opts.Widgets))
	for i, w := range opts.Widgets {
		ids[i] = w.ID()
	}

	styles := theme.NewStyles(opts.Theme)
	keys := app.DefaultKeyMap()

	h := help.New()
	h.Styles.ShortKey = styles.HelpKey
	h.Styles.ShortDesc = styles.HelpDesc
	h.Styles.FullKey = styles.HelpKey
	h.Styles.FullDesc = styles.HelpDesc

	showBanner := opts.Consent != nil && opts.Consent.ShouldPrompt()

	return Model{
		widgets:   opts.Widgets,
		transport: opts.Transport,
		focus:     app.NewFocus(ids...),
		keys:      keys,
		help:      h,
		consent:   opts.Consent,
		banner:    widgets.NewConsentBanner(showBanner, keys, styles, widgets.NewZones(opts.Zones)),
		styles:    styles,
		zones:     opts.Zones,
		logger:    logger,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Width returns the terminal width.
func (m Model) Width() int { return m.width }

// Height returns the terminal height.
func (m Model) Height() int { return m.height }

// Ready reports whether the terminal size is known.
func (m Model) Ready() bool { return m.ready }

// FocusedID returns the id of the focused widget.
func (m Model) FocusedID() string { return m.focus.Current() }

// ShowingHelp reports whether the help overlay is open.
func (m Model) ShowingHelp() bool { return m.showHelp }

// Zoomed reports whether the focused widget fills the screen.
func (m Model) Zoomed() bool { return m.zoomed }

// BannerVisible reports whether the consent banner is showing.
func (m Model) BannerVisible() bool { return m.banner.Visible() }

// Status returns the status bar message.
func (m Model) Status() string { return m.status }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case app.ConsentEvent:
		m.recordConsent(msg.Choice)
		return m, nil

	case app.StatusEvent:
		m.status = msg.Text
		return m, nil
	}

	// Everything else (ticks, flash expiry, cursor blink) goes to every
	// widget; each ignores what is not addressed to it.
	cmds := make([]tea.Cmd, 0, len(m.widgets))
	for _, w := range m.widgets {
		cmds = append(cmds, w.Update(msg))
	}
	return m, tea.Batch(cmds...)
}

// handleKey routes a key press. A capturing widget gets every key except
// ctrl+c; otherwise the banner, the help overlay and the global bindings
// come before the focused widget.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	focused := m.focused()
	if c, ok := focused.(app.InputCapturer); ok && c.Capturing() {
		return m, focused.HandleKey(msg)
	}

	if cmd, ok := m.banner.HandleKey(msg); ok {
		return m, cmd
	}

	if m.showHelp {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help), msg.Type == tea.KeyEsc:
			m.showHelp = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	case key.Matches(msg, m.keys.FocusNext):
		m.focus.Forward()
	case key.Matches(msg, m.keys.FocusPrev):
		m.focus.Backward()
	case key.Matches(msg, m.keys.Zoom):
		m.zoomed = !m.zoomed
	case key.Matches(msg, m.keys.PlayPause) && m.transport != nil:
		return m, m.transport.TogglePlay()
	case key.Matches(msg, m.keys.Prev) && m.transport != nil:
		return m, m.transport.Prev()
	case key.Matches(msg, m.keys.Next) && m.transport != nil:
		return m, m.transport.Next()
	case focused != nil:
		return m, focused.HandleKey(msg)
	}
	return m, nil
}

// handleMouse gives the banner first refusal, focuses the clicked panel and
// then lets every visible widget test its own zones.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if cmd, ok := m.banner.HandleMouse(msg); ok {
		return m, cmd
	}
	if m.showHelp {
		return m, nil
	}

	visible := m.visible()
	if msg.Action == tea.MouseActionPress && m.zones != nil {
		for _, w := range visible {
			if m.zones.Get(panelZone(w)).InBounds(msg) {
				m.focus.Set(w.ID())
			}
		}
	}

	cmds := make([]tea.Cmd, 0, len(visible))
	for _, w := range visible {
		cmds = append(cmds, w.HandleMouse(msg))
	}
	return m, tea.Batch(cmds...)
}

// recordConsent persists the banner answer. A failed write is logged and
// the banner stays closed for this session.
func (m *Model) recordConsent(c consent.Choice) {
	m.banner.Hide()
	if m.consent == nil {
		return
	}
	if err := m.consent.Set(c); err != nil {
		m.logger.Error("failed to save consent", "error", err)
		m.status = "Preference not saved"
		return
	}
	m.status = "Preference saved: " + c.String()
}

// focused returns the focused widget, or nil.
func (m Model) focused() app.Widget {
	id := m.focus.Current()
	for _, w := range m.widgets {
		if w.ID() == id {
			return w
		}
	}
	return nil
}

// visible returns the widgets on screen: all of them, or only the focused
// one while zoomed.
func (m Model) visible() []app.Widget {
	if m.zoomed {
		if w := m.focused(); w != nil {
			return []app.Widget{w}
		}
	}
	return m.widgets
}

// bindings returns the global bindings followed by the focused widget's.
func (m Model) bindings() [][]key.Binding {
	groups := m.keys.FullHelp()
	if hp, ok := m.focused().(app.HelpProvider); ok {
		groups = append(groups, hp.Bindings())
	}
	return groups
}
