// Package terminal inspects the terminal spinhue writes to: whether it is a
// TTY, its size, its color profile and whether a multiplexer sits in
// between.
package terminal

import (
	"os"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Capabilities summarizes the terminal attached to one file.
type Capabilities struct {
	TTY     bool            // file is an interactive terminal
	Size    Size            // terminal dimensions
	Profile termenv.Profile // color profile; Ascii when not a TTY or NO_COLOR is set
	SSH     bool            // running over SSH
	Tmux    bool            // inside tmux
	Screen  bool            // inside GNU screen
}

// Mux reports whether a terminal multiplexer is in between.
func (c Capabilities) Mux() bool {
	return c.Tmux || c.Screen
}

var (
	cached     Capabilities
	detectOnce sync.Once
	mu         sync.Mutex // guards ForceRefresh
)

// DetectCapabilities inspects stdout once and caches the result.
func DetectCapabilities() Capabilities {
	mu.Lock()
	defer mu.Unlock()
	detectOnce.Do(func() {
		cached = Detect(os.Stdout)
	})
	return cached
}

// ForceRefresh re-inspects stdout, replacing the cached value.
func ForceRefresh() Capabilities {
	mu.Lock()
	defer mu.Unlock()
	detectOnce = sync.Once{}
	cached = Detect(os.Stdout)
	return cached
}

// Detect inspects f without caching.
func Detect(f *os.File) Capabilities {
	fd := f.Fd()
	tty := IsTerminal(fd)

	profile := termenv.Ascii
	if tty {
		profile = termenv.NewOutput(f).EnvColorProfile()
	}

	return Capabilities{
		TTY:     tty,
		Size:    GetSizeFromFd(fd),
		Profile: profile,
		SSH:     isSSH(),
		Tmux:    os.Getenv("TMUX") != "",
		Screen:  os.Getenv("STY") != "",
	}
}

// IsTerminal reports whether fd is a terminal, including Cygwin and MSYS
// pseudo terminals.
func IsTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// isSSH reports whether the current session is running over SSH.
func isSSH() bool {
	return os.Getenv("SSH_TTY") != "" ||
		os.Getenv("SSH_CONNECTION") != "" ||
		os.Getenv("SSH_CLIENT") != ""
}
