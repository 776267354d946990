package terminal

import (
	"os"
	"strconv"

	"github.com/charmbracelet/x/term"
)

// Size is the terminal dimensions in character cells.
type Size struct {
	Cols int
	Rows int
}

// GetSize returns the current terminal dimensions. It tries stdout, then
// stderr, then the COLUMNS/LINES environment variables, and finally falls
// back to 80x24.
func GetSize() Size {
	for _, f := range []*os.File{os.Stdout, os.Stderr} {
		if s, ok := sizeFromFd(f.Fd()); ok {
			return s
		}
	}
	return sizeFromEnv()
}

// GetSizeFromFd returns the size of the terminal on fd, falling back to the
// environment and then 80x24.
func GetSizeFromFd(fd uintptr) Size {
	if s, ok := sizeFromFd(fd); ok {
		return s
	}
	return sizeFromEnv()
}

func sizeFromFd(fd uintptr) (Size, bool) {
	w, h, err := term.GetSize(fd)
	if err != nil || w <= 0 || h <= 0 {
		return Size{}, false
	}
	return Size{Cols: w, Rows: h}, true
}

// sizeFromEnv reads COLUMNS/LINES, defaulting to 80x24.
func sizeFromEnv() Size {
	return Size{
		Cols: envInt("COLUMNS", 80),
		Rows: envInt("LINES", 24),
	}
}

// envInt reads a positive integer from the named environment variable,
// returning fallback when it is unset or invalid.
func envInt(name string, fallback int) int {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
