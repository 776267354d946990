package widgets

import (
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/spinhue/pkg/app"
	"gitlab.com/tinyland/lab/spinhue/pkg/clipboard"
	"gitlab.com/tinyland/lab/spinhue/pkg/color"
	"gitlab.com/tinyland/lab/spinhue/pkg/components"
	"gitlab.com/tinyland/lab/spinhue/pkg/theme"
)

// Copy targets, also used as zone ids.
const (
	targetHex = "copy-hex"
	targetRGB = "copy-rgb"
	targetHSL = "copy-hsl"
	zoneRegen = "regen"
	zoneInput = "hex-field"
)

// swatchTarget names palette swatch i.
func swatchTarget(i int) string {
	return "swatch-" + strconv.Itoa(i)
}

// ColorToolKeys are the bindings active while the Color Tool has focus.
type ColorToolKeys struct {
	Edit       key.Binding
	Finish     key.Binding
	CopyHex    key.Binding
	CopyRGB    key.Binding
	CopyHSL    key.Binding
	Regenerate key.Binding
	Swatch     key.Binding
}

// DefaultColorToolKeys returns the standard Color Tool bindings.
func DefaultColorToolKeys() ColorToolKeys {
	return ColorToolKeys{
		Edit:       key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit hex")),
		Finish:     key.NewBinding(key.WithKeys("enter", "esc"), key.WithHelp("enter", "done")),
		CopyHex:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "copy hex")),
		CopyRGB:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "copy rgb")),
		CopyHSL:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "copy hsl")),
		Regenerate: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "new palette")),
		Swatch:     key.NewBinding(key.WithKeys("1", "2", "3", "4", "5"), key.WithHelp("1-5", "copy swatch")),
	}
}

// ColorToolOptions configures NewColorTool.
type ColorToolOptions struct {
	Initial       string
	PaletteSize   int
	Generator     *color.Generator
	Clipboard     clipboard.Writer
	FlashDuration time.Duration
	Styles        theme.Styles
	Zones         Zones
	Logger        *slog.Logger
}

// ColorTool converts a hex input into RGB and HSL, shows a swatch and a
// random palette, and copies any of them to the clipboard.
type ColorTool struct {
	input    textinput.Model
	editing  bool
	hexField string      // uppercased raw input
	current  color.Color // last valid color

	gen         *color.Generator
	palette     []string
	paletteSize int

	clip   clipboard.Writer
	flash  *clipboard.Flash
	keys   ColorToolKeys
	styles theme.Styles
	zones  Zones
	logger *slog.Logger
}

// NewColorTool returns a Color Tool showing opts.Initial and a fresh
// palette.
func NewColorTool(opts ColorToolOptions) *ColorTool {
	if opts.Generator == nil {
		opts.Generator = color.NewGenerator(0)
	}
	if opts.PaletteSize <= 0 {
		opts.PaletteSize = color.DefaultPaletteSize
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "#667eea"
	ti.CharLimit = 7
	ti.Width = 8

	w := &ColorTool{
		input:       ti,
		gen:         opts.Generator,
		paletteSize: opts.PaletteSize,
		clip:        opts.Clipboard,
		flash:       clipboard.NewFlash(opts.FlashDuration),
		keys:        DefaultColorToolKeys(),
		styles:      opts.Styles,
		zones:       opts.Zones,
		logger:      opts.Logger,
	}
	initial := opts.Initial
	if _, ok := color.ParseHex(initial); !ok {
		initial = "#667eea"
	}
	w.input.SetValue(initial)
	w.SetInput(initial)
	w.Regenerate()
	return w
}

// ID returns the widget's unique identifier.
func (w *ColorTool) ID() string { return "color" }

// Title returns the widget's display title.
func (w *ColorTool) Title() string { return "Color Tool" }

// MinSize returns the minimum width and height for the widget.
func (w *ColorTool) MinSize() (int, int) { return 34, 12 }

// Capturing reports whether the hex field owns the keyboard.
func (w *ColorTool) Capturing() bool { return w.editing }

// Bindings returns the keys shown in the help overlay.
func (w *ColorTool) Bindings() []key.Binding {
	if w.editing {
		return []key.Binding{w.keys.Finish}
	}
	return []key.Binding{w.keys.Edit, w.keys.CopyHex, w.keys.CopyRGB, w.keys.CopyHSL, w.keys.Regenerate, w.keys.Swatch}
}

// Current returns the last valid color.
func (w *ColorTool) Current() color.Color { return w.current }

// HexField returns the text shown in the hex field.
func (w *ColorTool) HexField() string { return w.hexField }

// Palette returns the current palette.
func (w *ColorTool) Palette() []string { return w.palette }

// SetInput applies a new hex input. The hex field always shows the
// uppercased input; the swatch and the RGB and HSL fields only follow
// valid input.
func (w *ColorTool) SetInput(s string) {
	w.hexField = strings.ToUpper(s)
	if c, ok := color.FromHex(s); ok {
		w.current = c
	}
}

// Regenerate replaces the palette with fresh random colors. Copied labels
// on the old swatches are dropped.
func (w *ColorTool) Regenerate() {
	targets := make([]string, len(w.palette))
	for i := range w.palette {
		targets[i] = swatchTarget(i)
	}
	if len(targets) > 0 {
		w.flash.Clear(targets...)
	}
	w.palette = w.gen.Palette(w.paletteSize)
}

// regenerate is Regenerate as a user action, reported in the status bar.
func (w *ColorTool) regenerate() tea.Cmd {
	w.Regenerate()
	return app.StatusCmd("New palette")
}

// Copy copies the value behind target and flashes it.
func (w *ColorTool) Copy(target string) tea.Cmd {
	text, ok := w.copyText(target)
	if !ok {
		return nil
	}
	return tea.Batch(
		clipboard.CopyCmd(w.clip, text, w.logger),
		w.flash.Trigger(target),
	)
}

// copyText resolves target to the text it copies. The hex button copies
// the field as shown, even while it holds malformed input.
func (w *ColorTool) copyText(target string) (string, bool) {
	switch target {
	case targetHex:
		return w.hexField, w.hexField != ""
	case targetRGB:
		return w.current.RGB.String(), true
	case targetHSL:
		return w.current.HSL.String(), true
	}
	for i, hex := range w.palette {
		if target == swatchTarget(i) {
			return strings.ToUpper(hex), true
		}
	}
	return "", false
}

// Flashing reports whether target is showing the copied label.
func (w *ColorTool) Flashing(target string) bool {
	return w.flash.Active(target)
}

// Update handles flash expiry and cursor blinks.
func (w *ColorTool) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case app.FlashExpiredEvent:
		w.flash.Expire(msg)
		return nil
	}
	if w.editing {
		var cmd tea.Cmd
		w.input, cmd = w.input.Update(msg)
		return cmd
	}
	return nil
}

// HandleKey processes key events when this widget has focus.
func (w *ColorTool) HandleKey(msg tea.KeyMsg) tea.Cmd {
	if w.editing {
		if key.Matches(msg, w.keys.Finish) {
			w.stopEditing()
			return nil
		}
		var cmd tea.Cmd
		w.input, cmd = w.input.Update(msg)
		w.SetInput(w.input.Value())
		return cmd
	}

	switch {
	case key.Matches(msg, w.keys.Edit):
		return w.startEditing()
	case key.Matches(msg, w.keys.CopyHex):
		return w.Copy(targetHex)
	case key.Matches(msg, w.keys.CopyRGB):
		return w.Copy(targetRGB)
	case key.Matches(msg, w.keys.CopyHSL):
		return w.Copy(targetHSL)
	case key.Matches(msg, w.keys.Regenerate):
		return w.regenerate()
	case key.Matches(msg, w.keys.Swatch):
		i, err := strconv.Atoi(msg.String())
		if err != nil {
			return nil
		}
		return w.Copy(swatchTarget(i - 1))
	}
	return nil
}

func (w *ColorTool) startEditing() tea.Cmd {
	w.editing = true
	w.input.CursorEnd()
	return w.input.Focus()
}

func (w *ColorTool) stopEditing() {
	w.editing = false
	w.input.Blur()
}

// HandleMouse handles clicks on the copy buttons, palette swatches, the
// regenerate button and the hex field.
func (w *ColorTool) HandleMouse(msg tea.MouseMsg) tea.Cmd {
	if !isLeftPress(msg) {
		return nil
	}
	for _, target := range []string{targetHex, targetRGB, targetHSL} {
		if w.zones.Hit(target, msg) {
			return w.Copy(target)
		}
	}
	for i := range w.palette {
		if w.zones.Hit(swatchTarget(i), msg) {
			return w.Copy(swatchTarget(i))
		}
	}
	switch {
	case w.zones.Hit(zoneRegen, msg):
		return w.regenerate()
	case w.zones.Hit(zoneInput, msg):
		if !w.editing {
			return w.startEditing()
		}
	case w.editing:
		w.stopEditing()
	}
	return nil
}

// View renders the widget content into the given width x height area.
func (w *ColorTool) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	var lines []string
	lines = append(lines, components.Swatch(w.current.Hex, width, 3, ""))
	lines = append(lines, "")

	hexValue := w.hexField
	if w.editing {
		hexValue = w.input.View()
	}
	lines = append(lines,
		w.fieldRow("Hex", w.zones.Mark(zoneInput, hexValue), targetHex, width),
		w.fieldRow("RGB", w.current.RGB.String(), targetRGB, width),
		w.fieldRow("HSL", w.current.HSL.String(), targetHSL, width),
		"",
	)

	header := w.styles.Title.Render("Palette") + " " +
		w.zones.Mark(zoneRegen, w.styles.Button.Render("p regenerate"))
	lines = append(lines, components.FitLine(header, width))
	lines = append(lines, w.paletteView(width))

	return components.FitBlock(strings.Join(lines, "\n"), width, height)
}

// fieldRow renders a labelled value with its copy button right-aligned.
func (w *ColorTool) fieldRow(label, value, target string, width int) string {
	btnStyle := w.styles.Button
	if w.flash.Active(target) {
		btnStyle = w.styles.Flash
	}
	btn := w.zones.Mark(target, btnStyle.Render(w.flash.Label(target, "Copy")))
	left := w.styles.Label.Render(label) + w.styles.Text.Render(value)

	gap := width - components.VisibleLen(left) - components.VisibleLen(btn)
	if gap < 1 {
		return components.FitLine(left, width)
	}
	return left + strings.Repeat(" ", gap) + btn
}

// paletteView renders the swatches side by side, each labelled with its
// hex value or the copied label.
func (w *ColorTool) paletteView(width int) string {
	n := len(w.palette)
	if n == 0 {
		return ""
	}
	sw := (width - (n - 1)) / n
	if sw < 1 {
		sw = 1
	}
	cells := make([]string, 0, 2*n-1)
	for i, hex := range w.palette {
		if i > 0 {
			cells = append(cells, " ")
		}
		label := strings.ToUpper(hex)
		if w.flash.Active(swatchTarget(i)) {
			label = clipboard.CopiedLabel
		}
		cells = append(cells, w.zones.Mark(swatchTarget(i), components.Swatch(hex, sw, 3, label)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}
