package tui

import (
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/spinhue/pkg/app"
	"gitlab.com/tinyland/lab/spinhue/pkg/components"
)

// panelChrome is the width taken by a panel's border and padding, and
// the height taken by its border.
const (
	panelChromeW = 4
	panelChromeH = 2
)

func panelZone(w app.Widget) string {
	return "panel-" + w.ID()
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var parts []string
	if banner := m.banner.View(m.width); banner != "" {
		parts = append(parts, banner)
	}
	used := 1 // status bar
	for _, p := range parts {
		used += lipgloss.Height(p)
	}
	bodyH := m.height - used
	if bodyH < 1 {
		bodyH = 1
	}

	if m.showHelp {
		parts = append(parts, m.renderHelp(m.width, bodyH))
	} else {
		parts = append(parts, m.renderBody(m.width, bodyH))
	}
	parts = append(parts, m.renderStatusBar(m.width))

	out := lipgloss.JoinVertical(lipgloss.Left, parts...)
	if m.zones != nil {
		out = m.zones.Scan(out)
	}
	return out
}

// renderBody lays the visible widgets side by side when their minimum
// widths fit, otherwise stacks them.
func (m Model) renderBody(width, height int) string {
	visible := m.visible()
	if len(visible) == 0 {
		return components.FitBlock("", width, height)
	}

	minW := make([]int, len(visible))
	minH := make([]int, len(visible))
	for i, w := range visible {
		minW[i], minH[i] = w.MinSize()
		minW[i] += panelChromeW
		minH[i] += panelChromeH
	}

	focused := m.focus.Current()
	panels := make([]string, len(visible))
	if tuiSum(minW) <= width {
		widths := tuiSplit(width, minW)
		for i, w := range visible {
			panels[i] = m.renderPanel(w, widths[i], height, w.ID() == focused)
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, panels...)
	}

	heights := tuiSplit(height, minH)
	for i, w := range visible {
		panels[i] = m.renderPanel(w, width, heights[i], w.ID() == focused)
	}
	return lipgloss.JoinVertical(lipgloss.Left, panels...)
}

// renderPanel draws w inside a bordered panel of exactly width x height
// cells with its title on the first line.
func (m Model) renderPanel(w app.Widget, width, height int, focused bool) string {
	innerW := width - panelChromeW
	innerH := height - panelChromeH
	if innerW < 1 || innerH < 1 {
		return components.FitBlock("", width, height)
	}

	style := m.styles.Panel
	title := m.styles.Dim.Render(w.Title())
	if focused {
		style = m.styles.PanelFocus
		title = m.styles.Title.Render(w.Title())
	}

	content := title
	if innerH > 1 {
		content += "\n" + w.View(innerW, innerH-1)
	}
	body := style.Render(components.FitBlock(content, innerW, innerH))
	if m.zones != nil {
		body = m.zones.Mark(panelZone(w), body)
	}
	return body
}

// renderStatusBar renders the key hints and the latest status message on
// one line of exactly width cells.
func (m Model) renderStatusBar(width int) string {
	if width <= 0 {
		return ""
	}
	hints := m.help.ShortHelpView(m.keys.ShortHelp())
	if m.status != "" {
		hints = m.styles.Text.Render(m.status) + m.styles.Dim.Render("  |  ") + hints
	}
	return m.styles.StatusBar.Render(components.FitLine(hints, width))
}

// renderHelp renders the full key reference centered in the body area.
func (m Model) renderHelp(width, height int) string {
	content := m.styles.Title.Render("Keys") + "\n\n" + m.help.FullHelpView(m.bindings())
	box := m.styles.Banner.Render(content)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

// tuiSplit divides total between parts in proportion to their minimums,
// giving the rounding remainder to the last part.
func tuiSplit(total int, mins []int) []int {
	out := make([]int, len(mins))
	sum := tuiSum(mins)
	if sum <= 0 {
		return out
	}
	rest := total
	for i, v := range mins {
		if i == len(mins)-1 {
			out[i] = rest
			break
		}
		out[i] = total * v / sum
		rest -= out[i]
	}
	return out
}

func tuiSum(v []int) int {
	n := 0
	for _, x := range v {
		n += x
	}
	return n
}
