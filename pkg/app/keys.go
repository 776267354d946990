package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the global bindings. Widget-specific bindings live with the
// widgets and are merged into the help view by the root model.
type KeyMap struct {
	PlayPause key.Binding
	Prev      key.Binding
	Next      key.Binding
	FocusNext key.Binding
	FocusPrev key.Binding
	Zoom      key.Binding
	Help      key.Binding
	Quit      key.Binding
	Accept    key.Binding
	Decline   key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		PlayPause: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "play/pause")),
		Prev:      key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "prev record")),
		Next:      key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next record")),
		FocusNext: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "focus")),
		FocusPrev: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "focus back")),
		Zoom:      key.NewBinding(key.WithKeys("z"), key.WithHelp("z", "zoom panel")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Accept:    key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "accept")),
		Decline:   key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "decline")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PlayPause, k.Prev, k.Next, k.FocusNext, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PlayPause, k.Prev, k.Next},
		{k.FocusNext, k.FocusPrev, k.Zoom, k.Help, k.Quit},
	}
}
