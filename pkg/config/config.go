// Package config provides TOML-based configuration for spinhue.
package config

import (
	"errors"
	"fmt"
	"strings"

	"gitlab.com/tinyland/lab/spinhue/pkg/color"
)

// MaxPaletteSize bounds color.palette_size.
const MaxPaletteSize = 12

// Config is the full configuration file.
type Config struct {
	General GeneralConfig `toml:"general"`
	Theme   ThemeConfig   `toml:"theme"`
	Color   ColorConfig   `toml:"color"`
	Player  PlayerConfig  `toml:"player"`
}

// GeneralConfig holds logging and storage settings.
type GeneralConfig struct {
	LogLevel string `toml:"log_level"` // debug, info, warn, error
	LogFile  string `toml:"log_file"`
	DataDir  string `toml:"data_dir"` // where the consent flag is kept
}

// ThemeConfig selects the color theme.
type ThemeConfig struct {
	Name string `toml:"name"`
	File string `toml:"file"` // optional TOML theme, overrides Name
}

// ColorConfig configures the color tool.
type ColorConfig struct {
	Initial     string   `toml:"initial"`      // color shown at startup
	PaletteSize int      `toml:"palette_size"` // swatches per palette
	Flash       Duration `toml:"flash"`        // "Copied!" feedback duration
}

// PlayerConfig configures the turntable.
type PlayerConfig struct {
	Tick          Duration `toml:"tick"`           // progress tick period
	Catalog       string   `toml:"catalog"`        // optional YAML/TOML record file
	GradientDelta int      `toml:"gradient_delta"` // second gradient stop offset
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error

	switch strings.ToLower(c.General.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Errorf("general.log_level: unknown level %q", c.General.LogLevel))
	}
	if _, ok := color.ParseHex(c.Color.Initial); !ok {
		errs = append(errs, fmt.Errorf("color.initial: %q is not a 6-digit hex color", c.Color.Initial))
	}
	if c.Color.PaletteSize < 1 || c.Color.PaletteSize > MaxPaletteSize {
		errs = append(errs, fmt.Errorf("color.palette_size: %d outside 1..%d", c.Color.PaletteSize, MaxPaletteSize))
	}
	if c.Color.Flash.Duration <= 0 {
		errs = append(errs, errors.New("color.flash: must be positive"))
	}
	if c.Player.Tick.Duration <= 0 {
		errs = append(errs, errors.New("player.tick: must be positive"))
	}
	if c.Player.GradientDelta < -255 || c.Player.GradientDelta > 255 {
		errs = append(errs, fmt.Errorf("player.gradient_delta: %d outside -255..255", c.Player.GradientDelta))
	}

	return errors.Join(errs...)
}
