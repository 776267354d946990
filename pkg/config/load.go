package config

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/sethvargo/go-envconfig"

	"gitlab.com/tinyland/lab/spinhue/pkg/app"
	"gitlab.com/tinyland/lab/spinhue/pkg/clipboard"
	"gitlab.com/tinyland/lab/spinhue/pkg/color"
)

// DefaultInitialColor is the color shown when nothing else is configured.
const DefaultInitialColor = "#667eea"

// DefaultGradientDelta darkens a record's base color for the second
// gradient stop.
const DefaultGradientDelta = -20

// Load reads configuration from the standard config path.
// Search order:
//  1. $XDG_CONFIG_HOME/spinhue/config.toml
//  2. ~/.config/spinhue/config.toml
//
// If no file exists, returns DefaultConfig() with environment overrides.
func Load() (*Config, error) {
	for _, p := range configSearchPaths() {
		if _, err := os.Stat(p); err == nil {
			return LoadFromFile(p)
		}
	}
	cfg := DefaultConfig()
	if err := applyEnvOverrides(cfg, envconfig.OsLookuper()); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromFile reads configuration from a specific file path. A missing
// file yields the defaults.
func LoadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			if err := applyEnvOverrides(cfg, envconfig.OsLookuper()); err != nil {
				return nil, err
			}
			return cfg, nil
		}
		return nil, err
	}
	defer f.Close()
	return LoadFromReader(f)
}

// LoadFromReader reads configuration from an io.Reader.
func LoadFromReader(r io.Reader) (*Config, error) {
	return loadFromReader(r, envconfig.OsLookuper())
}

func loadFromReader(r io.Reader, l envconfig.Lookuper) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.NewDecoder(r).Decode(cfg); err != nil {
		return nil, err
	}
	if err := applyEnvOverrides(cfg, l); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()

	return &Config{
		General: GeneralConfig{
			LogLevel: "info",
			LogFile:  filepath.Join(xdgCacheHome(home), "spinhue", "spinhue.log"),
			DataDir:  filepath.Join(xdgDataHome(home), "spinhue"),
		},
		Theme: ThemeConfig{
			Name: "default",
		},
		Color: ColorConfig{
			Initial:     DefaultInitialColor,
			PaletteSize: color.DefaultPaletteSize,
			Flash:       Duration{clipboard.DefaultFlashDuration},
		},
		Player: PlayerConfig{
			Tick:          Duration{app.DefaultTickInterval},
			GradientDelta: DefaultGradientDelta,
		},
	}
}

// SlogLevel maps general.log_level to a slog.Level, defaulting to Info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.General.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// TickInterval returns player.tick, falling back to the default period.
func (c *Config) TickInterval() time.Duration {
	if c.Player.Tick.Duration <= 0 {
		return app.DefaultTickInterval
	}
	return c.Player.Tick.Duration
}

// envOverrides lists the environment variables that take precedence over
// the file. Empty values leave the file setting alone.
type envOverrides struct {
	Theme        string `env:"SPINHUE_THEME"`
	LogLevel     string `env:"SPINHUE_LOG_LEVEL"`
	Catalog      string `env:"SPINHUE_CATALOG"`
	InitialColor string `env:"SPINHUE_INITIAL_COLOR"`
	DataDir      string `env:"SPINHUE_DATA_DIR"`
}

// applyEnvOverrides reads envOverrides through l and applies the set ones.
func applyEnvOverrides(cfg *Config, l envconfig.Lookuper) error {
	var env envOverrides
	if err := envconfig.ProcessWith(context.Background(), &env, l); err != nil {
		return err
	}
	if env.Theme != "" {
		cfg.Theme.Name = env.Theme
	}
	if env.LogLevel != "" {
		cfg.General.LogLevel = env.LogLevel
	}
	if env.Catalog != "" {
		cfg.Player.Catalog = env.Catalog
	}
	if env.InitialColor != "" {
		cfg.Color.Initial = env.InitialColor
	}
	if env.DataDir != "" {
		cfg.General.DataDir = env.DataDir
	}
	return nil
}

// configSearchPaths returns the ordered list of config file paths to try.
func configSearchPaths() []string {
	home, _ := os.UserHomeDir()
	var paths []string

	xdg := xdgConfigHome(home)
	paths = append(paths, filepath.Join(xdg, "spinhue", "config.toml"))

	// If XDG_CONFIG_HOME was explicitly set, also try the fallback default.
	defaultXDG := filepath.Join(home, ".config")
	if xdg != defaultXDG {
		paths = append(paths, filepath.Join(defaultXDG, "spinhue", "config.toml"))
	}

	return paths
}

// xdgConfigHome returns XDG_CONFIG_HOME or ~/.config as fallback.
func xdgConfigHome(home string) string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	return filepath.Join(home, ".config")
}

// xdgCacheHome returns XDG_CACHE_HOME or ~/.cache as fallback.
func xdgCacheHome(home string) string {
	if v := os.Getenv("XDG_CACHE_HOME"); v != "" {
		return v
	}
	return filepath.Join(home, ".cache")
}

// xdgDataHome returns XDG_DATA_HOME or ~/.local/share as fallback.
func xdgDataHome(home string) string {
	if v := os.Getenv("XDG_DATA_HOME"); v != "" {
		return v
	}
	return filepath.Join(home, ".local", "share")
}
