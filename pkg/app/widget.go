package app

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Widget is a self-contained panel of the TUI. The root model owns layout,
// focus and routing; widgets own their state and rendering.
type Widget interface {
	// ID returns a stable identifier, also used as the focus key.
	ID() string
	// Title is shown in the panel border.
	Title() string
	// Update receives every non-input message (ticks, flashes, resizes).
	Update(msg tea.Msg) tea.Cmd
	// View renders the widget into width x height cells.
	View(width, height int) string
	// MinSize returns the smallest usable dimensions.
	MinSize() (int, int)
	// HandleKey receives key presses while the widget has focus.
	HandleKey(msg tea.KeyMsg) tea.Cmd
	// HandleMouse receives mouse events anywhere on screen; widgets test
	// their own zones.
	HandleMouse(msg tea.MouseMsg) tea.Cmd
}

// InputCapturer is implemented by widgets that can own the keyboard, such
// as while a text field is being edited. Global bindings are suspended
// while Capturing returns true.
type InputCapturer interface {
	Capturing() bool
}

// HelpProvider is implemented by widgets with their own key bindings. The
// root model lists them in the help overlay while the widget has focus.
type HelpProvider interface {
	Bindings() []key.Binding
}

// Transport is the playback surface driven by the global keys, whichever
// widget has focus.
type Transport interface {
	TogglePlay() tea.Cmd
	Next() tea.Cmd
	Prev() tea.Cmd
}
