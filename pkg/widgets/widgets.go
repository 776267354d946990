// Package widgets provides the concrete panels of the spinhue TUI. Each
// panel implements app.Widget and receives input and timed events from the
// root model's update loop.
package widgets

import (
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

// Zones namespaces a widget's clickable regions inside a shared
// bubblezone manager. A nil manager disables mouse support.
type Zones struct {
	m      *zone.Manager
	prefix string
}

// NewZones returns Zones with a unique prefix on m.
func NewZones(m *zone.Manager) Zones {
	if m == nil {
		return Zones{}
	}
	return Zones{m: m, prefix: m.NewPrefix()}
}

// Mark wraps s so the region it occupies can be hit-tested as id.
func (z Zones) Mark(id, s string) string {
	if z.m == nil {
		return s
	}
	return z.m.Mark(z.prefix+id, s)
}

// Get returns the zone for id, or nil when unknown.
func (z Zones) Get(id string) *zone.ZoneInfo {
	if z.m == nil {
		return nil
	}
	info := z.m.Get(z.prefix + id)
	if info == nil || info.IsZero() {
		return nil
	}
	return info
}

// Hit reports whether msg falls inside zone id.
func (z Zones) Hit(id string, msg tea.MouseMsg) bool {
	info := z.Get(id)
	return info != nil && info.InBounds(msg)
}

// isLeftPress reports whether msg is a left-button press.
func isLeftPress(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft
}
