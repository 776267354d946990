// Package clipboard copies text to the system clipboard through the
// terminal (OSC 52) and tracks the transient "Copied!" feedback shown on the
// control that triggered the copy.
package clipboard

import (
	"io"
	"log/slog"
	"os"

	"github.com/aymanbagabas/go-osc52/v2"
	tea "github.com/charmbracelet/bubbletea"
)

// Writer puts text on the clipboard.
type Writer interface {
	Copy(text string) error
}

// OSC52 writes OSC 52 sequences to a terminal. Inside tmux or GNU screen
// the sequence is wrapped in the multiplexer's passthrough.
type OSC52 struct {
	out    io.Writer
	getenv func(string) string
}

// NewOSC52 returns a Writer that emits sequences on out.
func NewOSC52(out io.Writer) *OSC52 {
	return &OSC52{out: out, getenv: os.Getenv}
}

// Copy implements Writer.
func (c *OSC52) Copy(text string) error {
	seq := osc52.New(text)
	switch {
	case c.getenv("TMUX") != "":
		seq = seq.Tmux()
	case c.getenv("STY") != "":
		seq = seq.Screen()
	}
	_, err := seq.WriteTo(c.out)
	return err
}

// CopyCmd copies text off the update loop. Failures are logged and
// otherwise ignored.
func CopyCmd(w Writer, text string, logger *slog.Logger) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		if err := w.Copy(text); err != nil && logger != nil {
			logger.Debug("clipboard write failed", "error", err)
		}
		return nil
	}
}
