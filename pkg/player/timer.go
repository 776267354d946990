package player

// Timer is a cancellable handle for the periodic playback tick. The tick
// itself is scheduled by the caller (a bubbletea command in the TUI); the
// handle only decides which scheduled tick is still live. Every Start or
// Stop bumps the generation, so at most one generation is ever accepted.
type Timer struct {
	gen    uint64
	active bool
}

// Start cancels any running timer and starts a new one, returning its
// generation.
func (t *Timer) Start() uint64 {
	t.gen++
	t.active = true
	return t.gen
}

// Stop cancels the running timer, if any.
func (t *Timer) Stop() {
	if !t.active {
		return
	}
	t.gen++
	t.active = false
}

// Active reports whether a timer is running.
func (t *Timer) Active() bool {
	return t.active
}

// Generation returns the generation of the most recent Start or Stop.
func (t *Timer) Generation() uint64 {
	return t.gen
}

// Accept reports whether a tick scheduled for gen belongs to the running
// timer.
func (t *Timer) Accept(gen uint64) bool {
	return t.active && gen == t.gen
}
