// Package theme holds the named color themes of the spinhue TUI and turns
// them into lipgloss styles.
package theme

import (
	"sort"
	"strings"
	"sync"
)

// Theme defines the chrome colors. Record and swatch colors come from the
// data itself and are not themed.
type Theme struct {
	Name string

	// Base colors
	Foreground string // hex color e.g. "#d4d4d4"
	Dim        string // de-emphasized text
	Accent     string // highlights

	// Panels
	Border      string // unfocused panel border
	BorderFocus string // focused panel border
	Title       string // panel title text

	// Controls
	Active   string // active record card and playing disc label
	ButtonFG string
	ButtonBG string
	Flash    string // "Copied!" feedback
	Track    string // empty part of the progress bar

	// Help
	HelpKey  string
	HelpDesc string
}

var (
	mu       sync.RWMutex
	registry = map[string]Theme{}
)

func init() {
	registerBuiltins()
}

// Get returns a named theme, falling back to "default" if not found.
func Get(name string) Theme {
	mu.RLock()
	defer mu.RUnlock()
	if t, ok := registry[strings.ToLower(name)]; ok {
		return t
	}
	return registry["default"]
}

// Has reports whether name is registered.
func Has(name string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := registry[strings.ToLower(name)]
	return ok
}

// Names returns all available theme names sorted alphabetically.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Register adds or replaces a theme under its lowercase name.
func Register(t Theme) {
	mu.Lock()
	defer mu.Unlock()
	registry[strings.ToLower(t.Name)] = t
}
