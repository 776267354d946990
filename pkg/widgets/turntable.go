package widgets

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/spinhue/pkg/app"
	"gitlab.com/tinyland/lab/spinhue/pkg/catalog"
	"gitlab.com/tinyland/lab/spinhue/pkg/color"
	"gitlab.com/tinyland/lab/spinhue/pkg/components"
	"gitlab.com/tinyland/lab/spinhue/pkg/player"
	"gitlab.com/tinyland/lab/spinhue/pkg/theme"
)

// Zone ids for the transport controls and progress bar.
const (
	zonePrev = "prev"
	zonePlay = "play"
	zoneNext = "next"
	zoneBar  = "bar"
)

// cardWidth is the inner width of a record card.
const cardWidth = 22

// seekStep is the fraction moved by the seek keys.
const seekStep = 0.10

// DefaultGradientDelta darkens a record's primary color to get the second
// stop of its progress gradient.
const DefaultGradientDelta = -20

func cardZone(i int) string {
	return "card-" + strconv.Itoa(i)
}

// TurntableKeys are the bindings active while the Turntable has focus.
type TurntableKeys struct {
	Select      key.Binding
	SeekBack    key.Binding
	SeekForward key.Binding
}

// DefaultTurntableKeys returns the standard Turntable bindings.
func DefaultTurntableKeys() TurntableKeys {
	return TurntableKeys{
		Select:      key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "select record")),
		SeekBack:    key.NewBinding(key.WithKeys("["), key.WithHelp("[", "seek -10%")),
		SeekForward: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "seek +10%")),
	}
}

// TurntableOptions configures NewTurntable.
type TurntableOptions struct {
	Records       []catalog.Record
	Interval      time.Duration
	GradientDelta int
	Styles        theme.Styles
	Zones         Zones
}

// Turntable is the virtual LP player: a grid of record cards, a spinning
// disc, transport buttons and a seekable progress bar.
type Turntable struct {
	player   *player.Player
	interval time.Duration
	delta    int
	bar      progress.Model
	barFor   int // record index bar was built for
	dragging bool

	keys   TurntableKeys
	styles theme.Styles
	zones  Zones
}

// NewTurntable returns a stopped Turntable over opts.Records.
func NewTurntable(opts TurntableOptions) *Turntable {
	if opts.Interval <= 0 {
		opts.Interval = app.DefaultTickInterval
	}
	if opts.GradientDelta == 0 {
		opts.GradientDelta = DefaultGradientDelta
	}
	return &Turntable{
		player:   player.New(opts.Records),
		interval: opts.Interval,
		delta:    opts.GradientDelta,
		barFor:   -1,
		keys:     DefaultTurntableKeys(),
		styles:   opts.Styles,
		zones:    opts.Zones,
	}
}

// ID returns the widget's unique identifier.
func (w *Turntable) ID() string { return "turntable" }

// Title returns the widget's display title.
func (w *Turntable) Title() string { return "Turntable" }

// MinSize returns the minimum width and height for the widget.
func (w *Turntable) MinSize() (int, int) { return 40, 14 }

// Player exposes the playback state.
func (w *Turntable) Player() *player.Player { return w.player }

// Bindings returns the keys shown in the help overlay.
func (w *Turntable) Bindings() []key.Binding {
	return []key.Binding{w.keys.Select, w.keys.SeekBack, w.keys.SeekForward}
}

// schedule arms a tick for the live timer generation when it differs from
// before. Every transition goes through it so at most one tick is in
// flight.
func (w *Turntable) schedule(before uint64) tea.Cmd {
	t := w.player.Timer()
	if !t.Active() || t.Generation() == before {
		return nil
	}
	return app.PlaybackTickCmd(t.Generation(), w.interval)
}

// Select selects record i and starts playing it.
func (w *Turntable) Select(i int) tea.Cmd {
	before := w.player.Timer().Generation()
	w.player.Select(i)
	return w.schedule(before)
}

// TogglePlay plays or pauses.
func (w *Turntable) TogglePlay() tea.Cmd {
	before := w.player.Timer().Generation()
	w.player.TogglePlay()
	return w.schedule(before)
}

// Next moves to the following record.
func (w *Turntable) Next() tea.Cmd {
	before := w.player.Timer().Generation()
	w.player.Next()
	return w.schedule(before)
}

// Prev moves to the preceding record.
func (w *Turntable) Prev() tea.Cmd {
	before := w.player.Timer().Generation()
	w.player.Prev()
	return w.schedule(before)
}

// Seek jumps to a fraction of the current record.
func (w *Turntable) Seek(fraction float64) {
	w.player.Seek(fraction)
}

// Update handles playback ticks.
func (w *Turntable) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(app.PlaybackTickEvent); ok {
		if !w.player.Tick(msg.Gen) {
			return nil
		}
		// The accepted tick is spent. Arm the next one for whatever
		// generation is live now, which changes if the record advanced.
		t := w.player.Timer()
		if !t.Active() {
			return nil
		}
		return app.PlaybackTickCmd(t.Generation(), w.interval)
	}
	return nil
}

// HandleKey processes key events when this widget has focus.
func (w *Turntable) HandleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, w.keys.Select):
		i, err := strconv.Atoi(msg.String())
		if err != nil {
			return nil
		}
		return w.Select(i - 1)
	case key.Matches(msg, w.keys.SeekBack):
		w.player.SeekBy(-seekStep)
	case key.Matches(msg, w.keys.SeekForward):
		w.player.SeekBy(seekStep)
	}
	return nil
}

// HandleMouse handles clicks on record cards and transport buttons and
// press-and-drag seeking on the progress bar.
func (w *Turntable) HandleMouse(msg tea.MouseMsg) tea.Cmd {
	switch msg.Action {
	case tea.MouseActionRelease:
		w.dragging = false
		return nil
	case tea.MouseActionMotion:
		if w.dragging {
			w.seekFromMouse(msg)
		}
		return nil
	}
	if !isLeftPress(msg) {
		return nil
	}

	switch {
	case w.zones.Hit(zoneBar, msg):
		w.dragging = true
		w.seekFromMouse(msg)
		return nil
	case w.zones.Hit(zonePrev, msg):
		return w.Prev()
	case w.zones.Hit(zonePlay, msg):
		return w.TogglePlay()
	case w.zones.Hit(zoneNext, msg):
		return w.Next()
	}
	for i := 0; i < w.player.Len(); i++ {
		if w.zones.Hit(cardZone(i), msg) {
			return w.Select(i)
		}
	}
	return nil
}

// seekFromMouse maps the pointer column onto the progress bar.
func (w *Turntable) seekFromMouse(msg tea.MouseMsg) {
	info := w.zones.Get(zoneBar)
	if info == nil {
		return
	}
	w.player.Seek(SeekFraction(msg.X, info.StartX, info.EndX-info.StartX+1))
}

// SeekFraction converts column x on a bar starting at start and spanning
// width cells into a playback fraction clamped to [0,1].
func SeekFraction(x, start, width int) float64 {
	if width <= 0 {
		return 0
	}
	return player.ClampFraction(float64(x-start) / float64(width))
}

// GradientStops returns the two progress bar colors for rec.
func (w *Turntable) GradientStops(rec catalog.Record) (string, string) {
	return rec.Color1, color.MustAdjust(rec.Color1, w.delta)
}

// View renders the widget content into the given width x height area.
func (w *Turntable) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	var lines []string
	lines = append(lines, w.nowPlayingView(width)...)
	lines = append(lines, "", w.transportView(), "")
	lines = append(lines, w.gridView(width))

	return components.FitBlock(strings.Join(lines, "\n"), width, height)
}

// nowPlayingView renders the disc, title, progress bar and time.
func (w *Turntable) nowPlayingView(width int) []string {
	rec, ok := w.player.Current()
	if !ok {
		return []string{
			w.styles.Dim.Render("( ) Nothing playing"),
			w.styles.Dim.Render("Pick a record or press space"),
			"",
			w.styles.Dim.Render(player.FormatTime(0) + " / " + player.FormatTime(0)),
		}
	}

	disc := components.Disc(w.player.Elapsed(), rec.Color1, rec.Color2)
	status := w.styles.Dim.Render(w.player.Status().String())
	if w.player.Playing() {
		status = lipgloss.NewStyle().Foreground(lipgloss.Color(rec.Color1)).Render(status)
	}
	title := disc + " " + w.styles.Title.Render(rec.Title) + "  " + status
	artist := "    " + w.styles.Text.Render(rec.Artist)

	barWidth := width
	if barWidth < 4 {
		barWidth = 4
	}
	w.ensureBar(rec)
	w.bar.Width = barWidth
	bar := w.zones.Mark(zoneBar, w.bar.ViewAs(w.player.Progress()))

	clock := fmt.Sprintf("%s / %s",
		player.FormatTime(w.player.Elapsed()),
		player.FormatTime(rec.Duration))

	return []string{title, artist, bar, w.styles.Dim.Render(clock)}
}

// ensureBar rebuilds the progress bar when the record changes.
func (w *Turntable) ensureBar(rec catalog.Record) {
	if w.barFor == w.player.Index() {
		return
	}
	a, b := w.GradientStops(rec)
	w.bar = progress.New(
		progress.WithGradient(a, b),
		progress.WithoutPercentage(),
	)
	if w.styles.Track != "" {
		w.bar.EmptyColor = w.styles.Track
	}
	w.barFor = w.player.Index()
}

// transportView renders the prev, play/pause and next buttons.
func (w *Turntable) transportView() string {
	play := "▶ Play"
	if w.player.Playing() {
		play = "⏸ Pause"
	}
	btn := w.styles.Button
	return strings.Join([]string{
		w.zones.Mark(zonePrev, btn.Render("⏮ Prev")),
		w.zones.Mark(zonePlay, btn.Render(play)),
		w.zones.Mark(zoneNext, btn.Render("Next ⏭")),
	}, " ")
}

// gridView lays the record cards out in as many columns as fit.
func (w *Turntable) gridView(width int) string {
	records := w.player.Records()
	if len(records) == 0 {
		return w.styles.Dim.Render("No records")
	}
	cols := width / (cardWidth + 2)
	if cols < 1 {
		cols = 1
	}

	var rows []string
	for start := 0; start < len(records); start += cols {
		end := start + cols
		if end > len(records) {
			end = len(records)
		}
		cards := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			cards = append(cards, w.zones.Mark(cardZone(i), w.cardView(i, records[i])))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// cardView renders one record card; the selected one is highlighted.
func (w *Turntable) cardView(i int, rec catalog.Record) string {
	style := w.styles.Card
	if i == w.player.Index() {
		style = w.styles.CardActive
	}
	inner := cardWidth - 2
	title := components.Chip(rec.Color1, components.TruncateWithTail(rec.Title, inner-2, "…"))
	body := strings.Join([]string{
		fmt.Sprintf("%d %s", i+1, title),
		w.styles.Dim.Render(components.TruncateWithTail(rec.Artist, inner, "…")),
		w.styles.Dim.Render(player.FormatTime(rec.Duration)),
	}, "\n")
	return style.Width(cardWidth).Render(body)
}
