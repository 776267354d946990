// Package consent persists the user's answer to the consent banner. The
// flag is read once at startup to decide whether the banner is shown.
package consent

import (
	"fmt"
	"log/slog"

	"gitlab.com/tinyland/lab/spinhue/pkg/store"
)

// Key is the store key holding the choice.
const Key = "consent"

// Choice is the persisted answer.
type Choice string

const (
	// Unset means the user has not answered yet.
	Unset Choice = ""
	// Accepted means the user accepted.
	Accepted Choice = "accepted"
	// Declined means the user declined.
	Declined Choice = "declined"
)

// ParseChoice maps a stored or user-supplied value to a Choice. Anything
// other than "accepted" or "declined" is Unset.
func ParseChoice(s string) Choice {
	switch Choice(s) {
	case Accepted, Declined:
		return Choice(s)
	}
	return Unset
}

// String returns the stored form, or "unset".
func (c Choice) String() string {
	if c == Unset {
		return "unset"
	}
	return string(c)
}

// Manager reads and writes the choice in a Store.
type Manager struct {
	store  *store.Store
	logger *slog.Logger
}

// NewManager returns a Manager backed by s. A nil logger uses
// slog.Default().
func NewManager(s *store.Store, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{store: s, logger: logger}
}

// Load returns the persisted choice. Missing or unrecognized values read as
// Unset.
func (m *Manager) Load() Choice {
	raw, ok := store.GetTyped[string](m.store, Key)
	if !ok {
		return Unset
	}
	c := ParseChoice(raw)
	if c == Unset {
		m.logger.Debug("ignoring unrecognized consent value", "value", raw)
	}
	return c
}

// ShouldPrompt reports whether the banner must be shown.
func (m *Manager) ShouldPrompt() bool {
	return m.Load() == Unset
}

// Set persists c. Setting Unset is the same as Reset.
func (m *Manager) Set(c Choice) error {
	if c == Unset {
		return m.Reset()
	}
	if err := store.PutTyped(m.store, Key, string(c)); err != nil {
		return fmt.Errorf("consent: save %s: %w", c, err)
	}
	m.logger.Info("consent recorded", "choice", c.String())
	return nil
}

// Reset forgets the choice so the banner is shown again.
func (m *Manager) Reset() error {
	if err := m.store.Delete(Key); err != nil {
		return fmt.Errorf("consent: reset: %w", err)
	}
	return nil
}
