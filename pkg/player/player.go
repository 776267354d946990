// Package player implements the turntable's playback state machine: record
// selection, play/pause, wraparound navigation, the one-second progress tick
// and seeking. It has no rendering or timing dependencies so every
// transition can be driven directly in tests.
package player

import (
	"math"

	"gitlab.com/tinyland/lab/spinhue/pkg/catalog"
)

// Status is the coarse playback state.
type Status int

const (
	// StatusStopped means no record is selected.
	StatusStopped Status = iota
	// StatusPaused means a record is selected but progress is frozen.
	StatusPaused
	// StatusPlaying means a record is selected and the tick advances it.
	StatusPlaying
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusStopped:
		return "Stopped"
	case StatusPaused:
		return "Paused"
	case StatusPlaying:
		return "Playing"
	default:
		return "Unknown"
	}
}

// noSelection is the index value when nothing is selected.
const noSelection = -1

// Player owns all mutable playback state. It is not safe for concurrent
// use; callers serialize access (the TUI update loop does).
type Player struct {
	records []catalog.Record
	index   int
	playing bool
	elapsed int
	timer   Timer
}

// New returns a stopped player over records. The slice is copied.
func New(records []catalog.Record) *Player {
	return &Player{
		records: append([]catalog.Record(nil), records...),
		index:   noSelection,
	}
}

// Records returns the collection.
func (p *Player) Records() []catalog.Record {
	return p.records
}

// Len returns the number of records.
func (p *Player) Len() int {
	return len(p.records)
}

// Index returns the selected record index, or -1 when stopped.
func (p *Player) Index() int {
	return p.index
}

// Current returns the selected record.
func (p *Player) Current() (catalog.Record, bool) {
	if p.index == noSelection {
		return catalog.Record{}, false
	}
	return p.records[p.index], true
}

// Playing reports whether playback is advancing.
func (p *Player) Playing() bool {
	return p.playing
}

// Elapsed returns the elapsed seconds on the selected record.
func (p *Player) Elapsed() int {
	return p.elapsed
}

// Status returns the current state.
func (p *Player) Status() Status {
	switch {
	case p.index == noSelection:
		return StatusStopped
	case p.playing:
		return StatusPlaying
	default:
		return StatusPaused
	}
}

// Timer exposes the tick handle so the caller can schedule the live
// generation.
func (p *Player) Timer() *Timer {
	return &p.timer
}

// Select makes record i current, rewinds it to 0 and starts playback,
// replacing any running timer. Out-of-range indices are ignored and
// reported with false.
func (p *Player) Select(i int) bool {
	if i < 0 || i >= len(p.records) {
		return false
	}
	p.index = i
	p.elapsed = 0
	p.playing = true
	p.timer.Start()
	return true
}

// TogglePlay flips between playing and paused. With nothing selected it
// selects the first record.
func (p *Player) TogglePlay() {
	if p.index == noSelection {
		p.Select(0)
		return
	}
	if p.playing {
		p.playing = false
		p.timer.Stop()
		return
	}
	p.playing = true
	p.timer.Start()
}

// Next selects the following record, wrapping to the first after the last.
// With nothing selected it selects the first record.
func (p *Player) Next() {
	n := len(p.records)
	if n == 0 {
		return
	}
	if p.index == noSelection {
		p.Select(0)
		return
	}
	p.Select((p.index + 1) % n)
}

// Prev selects the preceding record, wrapping to the last before the first.
// With nothing selected it selects the last record.
func (p *Player) Prev() {
	n := len(p.records)
	if n == 0 {
		return
	}
	if p.index == noSelection {
		p.Select(n - 1)
		return
	}
	p.Select((p.index - 1 + n) % n)
}

// Tick advances playback by one second if gen is the live timer generation.
// Reaching the record's duration moves on to the next record. It reports
// whether the tick was accepted; stale ticks from cancelled timers are
// dropped.
func (p *Player) Tick(gen uint64) bool {
	if !p.playing || !p.timer.Accept(gen) {
		return false
	}
	rec, ok := p.Current()
	if !ok {
		return false
	}
	p.elapsed++
	if p.elapsed >= rec.Duration {
		p.Next()
	}
	return true
}

// Seek jumps to fraction of the selected record, clamped to [0,1]. It does
// nothing when no record is selected.
func (p *Player) Seek(fraction float64) {
	rec, ok := p.Current()
	if !ok {
		return
	}
	p.elapsed = int(math.Floor(ClampFraction(fraction) * float64(rec.Duration)))
}

// SeekBy moves the playhead by a signed fraction of the record.
func (p *Player) SeekBy(delta float64) {
	rec, ok := p.Current()
	if !ok {
		return
	}
	// Half a second keeps Seek's floor from losing a second to rounding.
	p.Seek(p.Progress() + delta + 0.5/float64(rec.Duration))
}

// Progress returns elapsed/duration in [0,1], or 0 when stopped.
func (p *Player) Progress() float64 {
	rec, ok := p.Current()
	if !ok || rec.Duration <= 0 {
		return 0
	}
	return float64(p.elapsed) / float64(rec.Duration)
}

// Percent returns Progress as a percentage.
func (p *Player) Percent() float64 {
	return p.Progress() * 100
}

// ClampFraction limits f to [0,1]. NaN maps to 0.
func ClampFraction(f float64) float64 {
	switch {
	case math.IsNaN(f), f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}
