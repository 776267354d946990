package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultTickInterval is the playback tick period.
const DefaultTickInterval = time.Second

// PlaybackTickCmd returns a Cmd that delivers one PlaybackTickEvent for
// timer generation gen after d. It fires once; the receiver re-arms it.
func PlaybackTickCmd(gen uint64, d time.Duration) tea.Cmd {
	if d <= 0 {
		d = DefaultTickInterval
	}
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return PlaybackTickEvent{Gen: gen, Time: t}
	})
}

// FlashExpireCmd returns a Cmd that delivers a FlashExpiredEvent after d.
func FlashExpireCmd(target string, id uint64, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return FlashExpiredEvent{Target: target, ID: id}
	})
}

// StatusCmd returns a Cmd that delivers a StatusEvent immediately.
func StatusCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return StatusEvent{Text: text}
	}
}
