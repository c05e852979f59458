package editor

import (
	"image"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"lifemap/pkg/tealayout"
)

const backlogWidth = 30

// panelBG is slightly lighter than the canvas for visible distinction.
var panelBG = c("#101e16")

var (
	panelTitleStyle = lipgloss.NewStyle().
			Foreground(c("#00ffc8")).
			Background(panelBG).
			Bold(true)

	panelDimStyle = lipgloss.NewStyle().
			Foreground(c("#336655")).
			Background(panelBG)

	panelTextStyle = lipgloss.NewStyle().
			Foreground(c("#00d4a0")).
			Background(panelBG)

	panelCursorStyle = lipgloss.NewStyle().
				Foreground(c("#00ffee")).
				Background(c("#13291d")).
				Bold(true)

	panelLineStyle = lipgloss.NewStyle().
			Background(panelBG)
)

// padLine right-pads a styled line to the given visible width.
func padLine(s string, width int) string {
	pad := width - lipgloss.Width(s)
	if pad > 0 {
		s += panelLineStyle.Render(strings.Repeat(" ", pad))
	}
	return s
}

// buildBacklogLayers renders the unplaced-sessions panel plus its
// separator column.
func (m Model) buildBacklogLayers(rect image.Rectangle) []*lipgloss.Layer {
	w := rect.Dx()
	h := rect.Dy()
	if w <= 0 || h <= 0 {
		return nil
	}

	items := m.unmapped()

	var lines []string
	lines = append(lines, panelTitleStyle.Render(" BACKLOG"))
	lines = append(lines, panelDimStyle.Render(strings.Repeat("─", w-1)))

	if len(items) == 0 {
		lines = append(lines, panelDimStyle.Render("  (all sessions placed)"))
	} else {
		for i, it := range items {
			if len(lines) >= h-1 {
				lines = append(lines, panelDimStyle.Render("  …"))
				break
			}
			prefix := "  "
			style := panelTextStyle
			if i == m.backlogIdx {
				prefix = "▸ "
				style = panelCursorStyle
			}
			lines = append(lines, style.Render(prefix+truncate(it.Title, w-3)))
		}
	}
	if len(items) > 0 && len(lines) < h {
		lines = append(lines, "")
		lines = append(lines, panelDimStyle.Render("  [j/k] move  [enter] place"))
	}

	for len(lines) < h {
		lines = append(lines, "")
	}
	lines = lines[:h]
	for i, l := range lines {
		lines[i] = padLine(l, w)
	}

	sepStyle := lipgloss.NewStyle().Foreground(c("#1a4a3a")).Background(colorBG)
	return []*lipgloss.Layer{
		lipgloss.NewLayer(strings.Join(lines, "\n")).
			X(rect.Min.X).Y(rect.Min.Y).Z(1).ID("backlog"),
		tealayout.VerticalSeparator(rect.Max.X-1, rect.Min.Y, h, sepStyle),
	}
}

// backlogItemRow is the panel row of the first backlog item.
const backlogItemRow = 2

// handleBacklogMouse maps clicks in the panel onto the item list: one
// click moves the cursor, a double-click places the item on the board.
func (m Model) handleBacklogMouse(msg tea.MouseMsg, cell image.Point) (tea.Model, tea.Cmd) {
	click, ok := msg.(tea.MouseClickMsg)
	if !ok || click.Mouse().Button != tea.MouseLeft {
		return m, nil
	}

	idx := cell.Y - m.backlogRect().Min.Y - backlogItemRow
	if idx < 0 || idx >= len(m.unmapped()) {
		return m, nil
	}

	if m.isDoubleClick(cell) && idx == m.backlogIdx {
		return m.placeBacklogItem(idx), nil
	}
	m.backlogIdx = idx
	return m, nil
}

// placeBacklogItem adds a node for the backlog item at idx, linked
// from the root.
func (m Model) placeBacklogItem(idx int) Model {
	items := m.unmapped()
	if idx < 0 || idx >= len(items) {
		return m
	}
	next, id := m.doc.AddNodeForEntity(items[idx])
	if m.applyMutation(next) {
		m.selection = []string{id}
		m.status = "placed " + items[idx].Title
	}
	if m.backlogIdx >= len(items)-1 && m.backlogIdx > 0 {
		m.backlogIdx--
	}
	return m
}
