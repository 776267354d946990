package clipboard

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/spinhue/pkg/app"
)

// CopiedLabel replaces a control's label while its flash is active.
const CopiedLabel = "Copied!"

// DefaultFlashDuration is how long CopiedLabel stays up.
const DefaultFlashDuration = 1500 * time.Millisecond

// Flash tracks which controls are showing CopiedLabel.
type Flash struct {
	duration time.Duration
	seq      uint64
	active   map[string]uint64
}

// NewFlash returns a Flash whose labels last d (DefaultFlashDuration when
// d <= 0).
func NewFlash(d time.Duration) *Flash {
	if d <= 0 {
		d = DefaultFlashDuration
	}
	return &Flash{duration: d, active: make(map[string]uint64)}
}

// Trigger shows CopiedLabel on target and returns the Cmd that expires it.
func (f *Flash) Trigger(target string) tea.Cmd {
	f.seq++
	f.active[target] = f.seq
	return app.FlashExpireCmd(target, f.seq, f.duration)
}

// Expire handles a FlashExpiredEvent. It reverts target only when id is the
// latest trigger for it and reports whether anything changed.
func (f *Flash) Expire(ev app.FlashExpiredEvent) bool {
	if id, ok := f.active[ev.Target]; ok && id == ev.ID {
		delete(f.active, ev.Target)
		return true
	}
	return false
}

// Active reports whether target is showing CopiedLabel.
func (f *Flash) Active(target string) bool {
	_, ok := f.active[target]
	return ok
}

// Label returns CopiedLabel while target is flashing, otherwise normal.
func (f *Flash) Label(target, normal string) string {
	if f.Active(target) {
		return CopiedLabel
	}
	return normal
}

// Clear drops the flash on each target. Pending expiry events for them
// become no-ops.
func (f *Flash) Clear(targets ...string) {
	for _, t := range targets {
		delete(f.active, t)
	}
}
