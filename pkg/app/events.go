// Package app provides the bubbletea building blocks shared by spinhue's
// widgets: the event types that flow through the update loop, the widget
// interface, the key map and the commands that schedule timed events.
package app

import (
	"time"

	"gitlab.com/tinyland/lab/spinhue/pkg/consent"
)

// PlaybackTickEvent is the one-second playback tick. Gen identifies the
// timer that scheduled it; the player drops ticks from cancelled timers.
type PlaybackTickEvent struct {
	Gen  uint64
	Time time.Time
}

// FlashExpiredEvent ends the transient "Copied!" feedback on Target. ID
// ties it to the copy that started it so a later copy is not cut short.
type FlashExpiredEvent struct {
	Target string
	ID     uint64
}

// ConsentEvent reports the user's answer to the consent banner.
type ConsentEvent struct {
	Choice consent.Choice
}

// StatusEvent sets a short message in the status bar.
type StatusEvent struct {
	Text string
}
