package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"gitlab.com/tinyland/lab/spinhue/pkg/app"
	"gitlab.com/tinyland/lab/spinhue/pkg/catalog"
	"gitlab.com/tinyland/lab/spinhue/pkg/color"
	"gitlab.com/tinyland/lab/spinhue/pkg/consent"
	"gitlab.com/tinyland/lab/spinhue/pkg/store"
	"gitlab.com/tinyland/lab/spinhue/pkg/theme"
	"gitlab.com/tinyland/lab/spinhue/pkg/widgets"
)

// mockWidget implements app.Widget with minimal stubs for testing.
type mockWidget struct {
	id         string
	title      string
	minW, minH int
	capturing  bool
	lastKey    tea.KeyMsg
	keyCalled  bool
	updates    int
	mouseCalls int
}

func newMockWidget(id, title string) *mockWidget {
	return &mockWidget{id: id, title: title, minW: 20, minH: 5}
}

func (w *mockWidget) ID() string    { return w.id }
func (w *mockWidget) Title() string { return w.title }

func (w *mockWidget) Update(_ tea.Msg) tea.Cmd {
	w.updates++
	return nil
}

func (w *mockWidget) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	return w.id + " body"
}

func (w *mockWidget) MinSize() (int, int) { return w.minW, w.minH }

func (w *mockWidget) HandleKey(msg tea.KeyMsg) tea.Cmd {
	w.lastKey = msg
	w.keyCalled = true
	return nil
}

func (w *mockWidget) HandleMouse(_ tea.MouseMsg) tea.Cmd {
	w.mouseCalls++
	return nil
}

func (w *mockWidget) Capturing() bool { return w.capturing }

func (w *mockWidget) Bindings() []key.Binding {
	return []key.Binding{key.NewBinding(key.WithKeys("k"), key.WithHelp("k", w.id+" action"))}
}

// mockTransport counts global playback keys.
type mockTransport struct {
	toggles, nexts, prevs int
}

func (t *mockTransport) TogglePlay() tea.Cmd { t.toggles++; return nil }
func (t *mockTransport) Next() tea.Cmd       { t.nexts++; return nil }
func (t *mockTransport) Prev() tea.Cmd       { t.prevs++; return nil }

// helper to send a message through Update and return the updated Model.
func tuiUpdate(m Model, msg tea.Msg) (Model, tea.Cmd) {
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

// helper to create a Model with two mock widgets and a transport.
func newTestTuiModel() (Model, []*mockWidget, *mockTransport) {
	w1 := newMockWidget("color", "Color Tool")
	w2 := newMockWidget("turntable", "Turntable")
	tr := &mockTransport{}
	m := New(Options{
		Widgets:   []app.Widget{w1, w2},
		Transport: tr,
		Theme:     theme.Get("default"),
	})
	return m, []*mockWidget{w1, w2}, tr
}

func newTestConsent(t *testing.T) *consent.Manager {
	t.Helper()
	s, err := store.Open(t.TempDir())
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	return consent.NewManager(s, nil)
}

func TestNewCreatesCorrectInitialState(t *testing.T) {
	m, _, _ := newTestTuiModel()
	if m.FocusedID() != "color" {
		t.Errorf("focused = %q, want color", m.FocusedID())
	}
	if m.Ready() || m.ShowingHelp() || m.Zoomed() {
		t.Error("expected not ready, no help, not zoomed")
	}
	if m.BannerVisible() {
		t.Error("banner should be hidden without a consent manager")
	}
	if m.Init() != nil {
		t.Error("Init should return nil")
	}
}

func TestWindowSizeMsgSetsReady(t *testing.T) {
	m, _, _ := newTestTuiModel()
	m, _ = tuiUpdate(m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.Width() != 120 || m.Height() != 40 {
		t.Errorf("size = %dx%d, want 120x40", m.Width(), m.Height())
	}
	if !m.Ready() {
		t.Error("expected ready after WindowSizeMsg")
	}
}

func TestTabCyclesFocus(t *testing.T) {
	m, _, _ := newTestTuiModel()
	m, _ = tuiUpdate(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.FocusedID() != "turntable" {
		t.Errorf("after tab = %q", m.FocusedID())
	}
	m, _ = tuiUpdate(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.FocusedID() != "color" {
		t.Errorf("tab should wrap, got %q", m.FocusedID())
	}
	m, _ = tuiUpdate(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.FocusedID() != "turntable" {
		t.Errorf("shift+tab = %q", m.FocusedID())
	}
}

func TestGlobalPlaybackKeys(t *testing.T) {
	m, ws, tr := newTestTuiModel()
	m, _ = tuiUpdate(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m, _ = tuiUpdate(m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = tuiUpdate(m, tea.KeyMsg{Type: tea.KeyLeft})
	_, _ = tuiUpdate(m, tea.KeyMsg{Type: tea.KeyLeft})
	if tr.toggles != 1 || tr.nexts != 1 || tr.prevs != 2 {
		t.Errorf("transport = %+v", *tr)
	}
	if ws[0].keyCalled {
		t.Error("global keys should not reach the focused widget")
	}
}

func TestCapturingWidgetGetsGlobalKeys(t *testing.T) {
	m, ws, tr := newTestTuiModel()
	ws[0].capturing = true

	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeySpace, Runes: []rune{' '}},
		{Type: tea.KeyRight},
		runes("q"),
		runes("?"),
		{Type: tea.KeyTab},
	} {
		var cmd tea.Cmd
		m, cmd = tuiUpdate(m, msg)
		if isQuit(cmd) {
			t.Fatalf("%q should not quit while capturing", msg.String())
		}
		if ws[0].lastKey.String() != msg.String() {
			t.Errorf("widget got %q, want %q", ws[0].lastKey.String(), msg.String())
		}
	}
	if tr.toggles != 0 || tr.nexts != 0 {
		t.Error("transport should not move while capturing")
	}
	if m.ShowingHelp() || m.FocusedID() != "color" {
		t.Error("help/focus changed while capturing")
	}
}

func TestCtrlCAlwaysQuits(t *testing.T) {
	m, ws, _ := newTestTuiModel()
	ws[0].capturing = true
	_, cmd := tuiUpdate(m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !isQuit(cmd) {
		t.Error("ctrl+c should quit")
	}
}

func TestQQuits(t *testing.T) {
	m, _, _ := newTestTuiModel()
	_, cmd := tuiUpdate(m, runes("q"))
	if !isQuit(cmd) {
		t.Error("q should quit")
	}
}

func TestQuestionMarkTogglesHelp(t *testing.T) {
	m, ws, _ := newTestTuiModel()
	m, _ = tuiUpdate(m, runes("?"))
	if !m.ShowingHelp() {
		t.Fatal("? should open help")
	}
	m, _ = tuiUpdate(m, runes("x"))
	if ws[0].keyCalled {
		t.Error("keys should not reach widgets while help is open")
	}
	m, _ = tuiUpdate(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.ShowingHelp() {
		t.Error("esc should close help")
	}
}

func TestOtherKeysGoToFocusedWidget(t *testing.T) {
	m, ws, _ := newTestTuiModel()
	m, _ = tuiUpdate(m, tea.KeyMsg{Type: tea.KeyTab})
	_, _ = tuiUpdate(m, runes("3"))
	if !ws[1].keyCalled || ws[1].lastKey.String() != "3" {
		t.Error("turntable should receive 3")
	}
	if ws[0].keyCalled {
		t.Error("unfocused widget received a key")
	}
}

func TestZoomShowsOnlyFocusedWidget(t *testing.T) {
	m, _, _ := newTestTuiModel()
	m, _ = tuiUpdate(m, tea.WindowSizeMsg{Width: 100, Height: 30})
	m, _ = tuiUpdate(m, runes("z"))
	if !m.Zoomed() {
		t.Fatal("z should zoom")
	}
	out := ansi.Strip(m.View())
	if !strings.Contains(out, "color body") || strings.Contains(out, "turntable body") {
		t.Errorf("zoomed view should show only the focused widget:\n%s", out)
	}
}

func TestNonInputMessagesBroadcast(t *testing.T) {
	m, ws, _ := newTestTuiModel()
	_, _ = tuiUpdate(m, app.PlaybackTickEvent{Gen: 1})
	for _, w := range ws {
		if w.updates != 1 {
			t.Errorf("%s got %d updates, want 1", w.id, w.updates)
		}
	}
}

func TestMouseReachesVisibleWidgets(t *testing.T) {
	m, ws, _ := newTestTuiModel()
	msg := tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	_, _ = tuiUpdate(m, msg)
	for _, w := range ws {
		if w.mouseCalls != 1 {
			t.Errorf("%s got %d mouse events", w.id, w.mouseCalls)
		}
	}
}

func TestStatusEventSetsStatus(t *testing.T) {
	m, _, _ := newTestTuiModel()
	m, _ = tuiUpdate(m, app.StatusEvent{Text: "hello"})
	m, _ = tuiUpdate(m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.Status() != "hello" {
		t.Errorf("status = %q", m.Status())
	}
	if !strings.Contains(ansi.Strip(m.View()), "hello") {
		t.Error("status bar should show the message")
	}
}

func TestViewBeforeWindowSizeMsg(t *testing.T) {
	m, _, _ := newTestTuiModel()
	if out := m.View(); out != "Initializing..." {
		t.Errorf("View before size = %q", out)
	}
}

func TestViewSideBySideWhenWide(t *testing.T) {
	m, _, _ := newTestTuiModel()
	m, _ = tuiUpdate(m, tea.WindowSizeMsg{Width: 100, Height: 20})
	out := ansi.Strip(m.View())
	lines := strings.Split(out, "\n")
	if len(lines) != 20 {
		t.Errorf("view has %d lines, want 20", len(lines))
	}
	found := false
	for _, l := range lines {
		if strings.Contains(l, "Color Tool") && strings.Contains(l, "Turntable") {
			found = true
		}
	}
	if !found {
		t.Error("wide terminal should place panels side by side")
	}
}

func TestViewStackedWhenNarrow(t *testing.T) {
	m, _, _ := newTestTuiModel()
	m, _ = tuiUpdate(m, tea.WindowSizeMsg{Width: 40, Height: 30})
	out := ansi.Strip(m.View())
	for _, l := range strings.Split(out, "\n") {
		if strings.Contains(l, "Color Tool") && strings.Contains(l, "Turntable") {
			t.Fatal("narrow terminal should stack panels")
		}
		if w := ansi.StringWidth(l); w > 40 {
			t.Errorf("line width %d exceeds 40: %q", w, l)
		}
	}
	if !strings.Contains(out, "Color Tool") || !strings.Contains(out, "Turntable") {
		t.Error("both panels should be visible")
	}
}

func TestHelpViewListsWidgetBindings(t *testing.T) {
	m, _, _ := newTestTuiModel()
	m, _ = tuiUpdate(m, tea.WindowSizeMsg{Width: 120, Height: 40})
	m, _ = tuiUpdate(m, runes("?"))
	out := ansi.Strip(m.View())
	if !strings.Contains(out, "color action") {
		t.Error("help should list the focused widget's bindings")
	}
	if !strings.Contains(out, "play/pause") {
		t.Error("help should list global bindings")
	}
}

func TestTuiSplit(t *testing.T) {
	got := tuiSplit(100, []int{30, 70})
	if got[0] != 30 || got[1] != 70 {
		t.Errorf("tuiSplit = %v", got)
	}
	got = tuiSplit(101, []int{1, 1})
	if got[0]+got[1] != 101 {
		t.Errorf("tuiSplit should use the full width, got %v", got)
	}
	if out := tuiSplit(10, []int{0, 0}); out[0] != 0 || out[1] != 0 {
		t.Errorf("zero mins = %v", out)
	}
}

// --- Consent banner ---

func TestConsentBannerShownWhenUnset(t *testing.T) {
	mgr := newTestConsent(t)
	m := New(Options{
		Widgets: []app.Widget{newMockWidget("color", "Color Tool")},
		Consent: mgr,
		Theme:   theme.Get("default"),
	})
	if !m.BannerVisible() {
		t.Fatal("banner should show when consent is unset")
	}

	m, cmd := tuiUpdate(m, runes("y"))
	if cmd == nil {
		t.Fatal("y should produce a consent event")
	}
	m, _ = tuiUpdate(m, cmd())
	if m.BannerVisible() {
		t.Error("banner should close after answering")
	}
	if got := mgr.Load(); got != consent.Accepted {
		t.Errorf("stored choice = %q, want accepted", got)
	}
	if !strings.Contains(m.Status(), "accepted") {
		t.Errorf("status = %q", m.Status())
	}
}

func TestConsentBannerHiddenWhenAnswered(t *testing.T) {
	mgr := newTestConsent(t)
	if err := mgr.Set(consent.Declined); err != nil {
		t.Fatalf("Set: %v", err)
	}
	m := New(Options{Consent: mgr, Theme: theme.Get("default")})
	if m.BannerVisible() {
		t.Error("banner should stay hidden once answered")
	}
}

// --- Integration with the real widgets ---

func TestRealWidgetsSpaceStartsPlayback(t *testing.T) {
	styles := theme.NewStyles(theme.Get("default"))
	ct := widgets.NewColorTool(widgets.ColorToolOptions{
		Generator: color.NewGenerator(3),
		Styles:    styles,
	})
	tt := widgets.NewTurntable(widgets.TurntableOptions{
		Records: catalog.Default(),
		Styles:  styles,
	})
	m := New(Options{
		Widgets:   []app.Widget{ct, tt},
		Transport: tt,
		Theme:     theme.Get("default"),
	})
	m, _ = tuiUpdate(m, tea.WindowSizeMsg{Width: 140, Height: 40})

	m, cmd := tuiUpdate(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if cmd == nil {
		t.Fatal("space should schedule a playback tick")
	}
	if tt.Player().Index() != 0 || !tt.Player().Playing() {
		t.Error("space should start the first record")
	}

	m, _ = tuiUpdate(m, app.PlaybackTickEvent{Gen: tt.Player().Timer().Generation()})
	if tt.Player().Elapsed() != 1 {
		t.Errorf("elapsed = %d, want 1", tt.Player().Elapsed())
	}

	out := ansi.Strip(m.View())
	for _, want := range []string{"#667EEA", "Kind of Blue", "0:01 / 45:57"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestRealWidgetsEditingSuspendsGlobalKeys(t *testing.T) {
	ct := widgets.NewColorTool(widgets.ColorToolOptions{Generator: color.NewGenerator(3)})
	tt := widgets.NewTurntable(widgets.TurntableOptions{Records: catalog.Default()})
	m := New(Options{Widgets: []app.Widget{ct, tt}, Transport: tt})

	m, _ = tuiUpdate(m, runes("e"))
	if !ct.Capturing() {
		t.Fatal("e should start editing")
	}
	m, _ = tuiUpdate(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if tt.Player().Playing() {
		t.Error("space while editing should not start playback")
	}
	m, _ = tuiUpdate(m, tea.KeyMsg{Type: tea.KeyEsc})
	_, _ = tuiUpdate(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if !tt.Player().Playing() {
		t.Error("space after editing should start playback")
	}
}
