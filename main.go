// spinhue is a terminal color picker and virtual LP player.
//
// With no mode flag it launches the interactive TUI: a hex color converter
// with a random palette next to a turntable of records whose progress bar
// is drawn in each record's colors. The headless flags print conversions,
// palettes and the record catalog instead.
//
// Usage:
//
//	spinhue [flags]
//
// Flags:
//
//	-config string       Path to configuration file (default: ~/.config/spinhue/config.toml)
//	-theme string        Theme name (default, gruvbox, nord, dracula)
//	-catalog string      YAML or TOML record catalog
//	-convert string      Print a hex color as hex, RGB and HSL and exit
//	-adjust int          Shift every channel of -convert by N
//	-palette             Print a random palette and exit
//	-palette-size int    Colors per palette
//	-palette-png string  Write the palette to a PNG file
//	-preview             Draw the palette as an image (true-color terminals)
//	-seed uint           Palette seed (0 = random)
//	-records             Print the record catalog and exit
//	-consent string      accept, decline, reset or show the stored consent
//	-verbose             Enable verbose logging
//	-version             Print version and exit
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"gitlab.com/tinyland/lab/spinhue/pkg/app"
	"gitlab.com/tinyland/lab/spinhue/pkg/catalog"
	"gitlab.com/tinyland/lab/spinhue/pkg/clipboard"
	"gitlab.com/tinyland/lab/spinhue/pkg/color"
	"gitlab.com/tinyland/lab/spinhue/pkg/config"
	"gitlab.com/tinyland/lab/spinhue/pkg/consent"
	"gitlab.com/tinyland/lab/spinhue/pkg/report"
	"gitlab.com/tinyland/lab/spinhue/pkg/store"
	"gitlab.com/tinyland/lab/spinhue/pkg/terminal"
	"gitlab.com/tinyland/lab/spinhue/pkg/theme"
	"gitlab.com/tinyland/lab/spinhue/pkg/tui"
	"gitlab.com/tinyland/lab/spinhue/pkg/widgets"
)

var (
	version = "0.1.0"
	commit  = "dev"
	date    = "unknown"
)

// previewRows is the height of the -preview palette image in cells.
const previewRows = 6

// flags holds the parsed command line.
type flags struct {
	configPath  string
	themeName   string
	catalogPath string
	convert     string
	adjust      int
	palette     bool
	paletteSize int
	palettePNG  string
	preview     bool
	seed        uint64
	records     bool
	consent     string
	verbose     bool
	showVersion bool
}

// headless reports whether a mode flag replaces the TUI.
func (f flags) headless() bool {
	return f.convert != "" || f.palette || f.palettePNG != "" || f.preview || f.records || f.consent != ""
}

func parseFlags(fs *flag.FlagSet, args []string) (flags, error) {
	var f flags
	fs.StringVar(&f.configPath, "config", "", "Path to configuration file")
	fs.StringVar(&f.themeName, "theme", "", "Theme name ("+strings.Join(theme.Names(), ", ")+")")
	fs.StringVar(&f.catalogPath, "catalog", "", "YAML or TOML record catalog")
	fs.StringVar(&f.convert, "convert", "", "Print a hex color as hex, RGB and HSL and exit")
	fs.IntVar(&f.adjust, "adjust", 0, "Shift every channel of -convert by N")
	fs.BoolVar(&f.palette, "palette", false, "Print a random palette and exit")
	fs.IntVar(&f.paletteSize, "palette-size", 0, "Colors per palette (0 = configured size)")
	fs.StringVar(&f.palettePNG, "palette-png", "", "Write the palette to a PNG file")
	fs.BoolVar(&f.preview, "preview", false, "Draw the palette as an image (true-color terminals)")
	fs.Uint64Var(&f.seed, "seed", 0, "Palette seed (0 = random)")
	fs.BoolVar(&f.records, "records", false, "Print the record catalog and exit")
	fs.StringVar(&f.consent, "consent", "", "accept, decline, reset or show the stored consent")
	fs.BoolVar(&f.verbose, "verbose", false, "Enable verbose logging")
	fs.BoolVar(&f.showVersion, "version", false, "Print version and exit")
	if err := fs.Parse(args); err != nil {
		return f, err
	}
	if f.paletteSize < 0 || f.paletteSize > config.MaxPaletteSize {
		return f, fmt.Errorf("-palette-size: %d outside 0..%d", f.paletteSize, config.MaxPaletteSize)
	}
	switch f.consent {
	case "", "accept", "decline", "reset", "show":
	default:
		return f, fmt.Errorf("-consent: unknown action %q (accept, decline, reset, show)", f.consent)
	}
	return f, nil
}

func main() {
	f, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	if f.showVersion {
		fmt.Printf("spinhue %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	cfg, err := loadConfig(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// The terminal belongs to bubbletea in TUI mode, so logs go to a file.
	logLevel := cfg.SlogLevel()
	if f.verbose {
		logLevel = slog.LevelDebug
	}
	logOut := io.Writer(os.Stderr)
	if !f.headless() {
		logFile, err := openLogFile(cfg.General.LogFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer logFile.Close()
		logOut = logFile
	}
	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Info("received shutdown signal")
		cancel()
	}()

	if f.headless() {
		if err := runHeadless(f, cfg, os.Stdout, logger); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := runTUI(ctx, cfg, logger); err != nil {
		logger.Error("TUI error", "error", err)
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// loadConfig resolves, loads and validates the configuration, then applies
// the flag overrides.
func loadConfig(f flags) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if f.configPath != "" {
		cfg, err = config.LoadFromFile(f.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if f.themeName != "" {
		cfg.Theme.Name = f.themeName
		cfg.Theme.File = ""
	}
	if f.catalogPath != "" {
		cfg.Player.Catalog = f.catalogPath
	}
	if f.paletteSize > 0 {
		cfg.Color.PaletteSize = f.paletteSize
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// loadTheme returns the configured theme. A theme file is registered so
// it can also be selected by name.
func loadTheme(cfg *config.Config, logger *slog.Logger) (theme.Theme, error) {
	if cfg.Theme.File != "" {
		t, err := theme.LoadFile(cfg.Theme.File)
		if err != nil {
			return theme.Theme{}, err
		}
		theme.Register(t)
		logger.Debug("loaded theme file", "path", cfg.Theme.File, "name", t.Name)
		return t, nil
	}
	if !theme.Has(cfg.Theme.Name) {
		logger.Warn("unknown theme, using default", "theme", cfg.Theme.Name)
	}
	return theme.Get(cfg.Theme.Name), nil
}

// loadCatalog returns the configured records, or the built-in eight.
func loadCatalog(cfg *config.Config) ([]catalog.Record, error) {
	if cfg.Player.Catalog == "" {
		return catalog.Default(), nil
	}
	return catalog.LoadFile(cfg.Player.Catalog)
}

// openConsent opens the data directory store backing the consent flag.
func openConsent(cfg *config.Config, logger *slog.Logger) (*consent.Manager, error) {
	s, err := store.Open(cfg.General.DataDir)
	if err != nil {
		return nil, err
	}
	return consent.NewManager(s, logger), nil
}

// runTUI builds the widgets and runs the bubbletea program until quit or
// ctx is cancelled.
func runTUI(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	th, err := loadTheme(cfg, logger)
	if err != nil {
		return err
	}
	records, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	// A broken data directory only costs the persisted answer.
	cm, err := openConsent(cfg, logger)
	if err != nil {
		logger.Warn("consent store unavailable", "dir", cfg.General.DataDir, "error", err)
		cm = nil
	}

	zm := zone.New()
	defer zm.Close()
	zones := widgets.NewZones(zm)
	styles := theme.NewStyles(th)

	colorTool := widgets.NewColorTool(widgets.ColorToolOptions{
		Initial:       cfg.Color.Initial,
		PaletteSize:   cfg.Color.PaletteSize,
		Generator:     color.NewGenerator(0),
		Clipboard:     clipboard.NewOSC52(os.Stdout),
		FlashDuration: cfg.Color.Flash.Duration,
		Styles:        styles,
		Zones:         zones,
		Logger:        logger,
	})
	turntable := widgets.NewTurntable(widgets.TurntableOptions{
		Records:       records,
		Interval:      cfg.TickInterval(),
		GradientDelta: cfg.Player.GradientDelta,
		Styles:        styles,
		Zones:         zones,
	})

	model := tui.New(tui.Options{
		Widgets:   []app.Widget{colorTool, turntable},
		Transport: turntable,
		Consent:   cm,
		Theme:     th,
		Zones:     zm,
		Logger:    logger,
	})

	caps := terminal.DetectCapabilities()
	logger.Info("starting spinhue",
		"version", version,
		"theme", th.Name,
		"records", len(records),
		"cols", caps.Size.Cols,
		"rows", caps.Size.Rows,
		"mux", caps.Mux(),
	)

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}

// runHeadless prints the requested reports to out.
func runHeadless(f flags, cfg *config.Config, out io.Writer, logger *slog.Logger) error {
	caps := terminal.DetectCapabilities()
	r := report.New(out, caps.Profile, caps.Size.Cols)

	if f.convert != "" {
		if f.adjust != 0 {
			if err := r.Adjust(f.convert, f.adjust); err != nil {
				return err
			}
		} else if err := r.Convert(f.convert); err != nil {
			return err
		}
	}

	if f.palette || f.palettePNG != "" || f.preview {
		colors := color.NewGenerator(f.seed).Palette(cfg.Color.PaletteSize)
		if f.palette {
			r.Palette(colors)
		}
		if f.preview {
			if err := r.PalettePreview(colors, previewRows); err != nil {
				return err
			}
		}
		if f.palettePNG != "" {
			if err := report.WritePalettePNG(f.palettePNG, colors); err != nil {
				return err
			}
			logger.Info("wrote palette", "path", f.palettePNG, "colors", len(colors))
		}
	}

	if f.records {
		records, err := loadCatalog(cfg)
		if err != nil {
			return err
		}
		r.Records(records)
	}

	if f.consent != "" {
		cm, err := openConsent(cfg, logger)
		if err != nil {
			return err
		}
		switch f.consent {
		case "accept":
			err = cm.Set(consent.Accepted)
		case "decline":
			err = cm.Set(consent.Declined)
		case "reset":
			err = cm.Reset()
		}
		if err != nil {
			return err
		}
		r.Consent(cm.Load())
	}
	return nil
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
}
