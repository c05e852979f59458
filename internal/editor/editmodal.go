package editor

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"lifemap/pkg/tealayout"
)

// openEditModal opens the label/color/icon modal for the selected node.
func (m Model) openEditModal() (tea.Model, tea.Cmd) {
	if len(m.selection) != 1 {
		return m, nil
	}
	node := m.doc.Node(m.selection[0])
	if node == nil {
		return m, nil
	}

	m.editOpen = true
	m.editNodeID = node.ID
	m.editFocus = 0

	m.editLabel = textinput.New()
	m.editLabel.Prompt = ""
	m.editLabel.CharLimit = 40
	m.editLabel.SetValue(node.Label)

	m.editColor = textinput.New()
	m.editColor.Prompt = ""
	m.editColor.CharLimit = 7
	m.editColor.Placeholder = "#00d4a0"
	m.editColor.SetValue(node.Color)

	m.editIcon = textinput.New()
	m.editIcon.Prompt = ""
	m.editIcon.CharLimit = 4
	m.editIcon.Placeholder = "◆"
	m.editIcon.SetValue(node.Icon)

	cmd := m.editLabel.Focus()
	return m, cmd
}

// handleEditKeys processes keys while the modal is open.
func (m Model) handleEditKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "escape":
		m.editOpen = false
		return m, nil

	case "enter":
		next := m.doc.RelabelNode(m.editNodeID, strings.TrimSpace(m.editLabel.Value()))
		next = next.RecolorNode(m.editNodeID, strings.TrimSpace(m.editColor.Value()))
		next = next.SetIcon(m.editNodeID, strings.TrimSpace(m.editIcon.Value()))
		if m.applyMutation(next) {
			m.status = "node updated"
		}
		m.editOpen = false
		return m, nil

	case "tab":
		return m.cycleEditFocus(1)
	case "shift+tab":
		return m.cycleEditFocus(-1)

	default:
		var cmd tea.Cmd
		switch m.editFocus {
		case 0:
			m.editLabel, cmd = m.editLabel.Update(msg)
		case 1:
			m.editColor, cmd = m.editColor.Update(msg)
		case 2:
			m.editIcon, cmd = m.editIcon.Update(msg)
		}
		return m, cmd
	}
}

// cycleEditFocus moves focus between the three modal fields.
func (m Model) cycleEditFocus(dir int) (tea.Model, tea.Cmd) {
	m.editLabel.Blur()
	m.editColor.Blur()
	m.editIcon.Blur()
	m.editFocus = (m.editFocus + dir + 3) % 3
	var cmd tea.Cmd
	switch m.editFocus {
	case 0:
		cmd = m.editLabel.Focus()
	case 1:
		cmd = m.editColor.Focus()
	case 2:
		cmd = m.editIcon.Focus()
	}
	return m, cmd
}

// buildEditModalLayer renders the modal as a centered high-Z layer.
func (m Model) buildEditModalLayer() *lipgloss.Layer {
	titleStyle := lipgloss.NewStyle().
		Foreground(c("#00ffc8")).
		Background(chromeBG).
		Bold(true)

	labelStyle := lipgloss.NewStyle().
		Foreground(c("#ddaa44")).
		Background(chromeBG)

	hintStyle := lipgloss.NewStyle().
		Foreground(c("#336655")).
		Background(chromeBG).
		Italic(true)

	focus := func(i int) string {
		if m.editFocus == i {
			return "▸ "
		}
		return "  "
	}

	lines := []string{
		titleStyle.Render("  EDIT NODE"),
		"",
		labelStyle.Render(focus(0) + "Label:"),
		"  " + m.editLabel.View(),
		"",
		labelStyle.Render(focus(1) + "Color (hex, empty = default):"),
		"  " + m.editColor.View(),
		"",
		labelStyle.Render(focus(2) + "Icon:"),
		"  " + m.editIcon.View(),
		"",
		hintStyle.Render("  [tab] switch  [enter] save  [esc] cancel"),
	}

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(c("#00d4a0")).
		Background(chromeBG).
		Width(46).
		Padding(1, 2)

	return tealayout.ModalLayer(strings.Join(lines, "\n"), m.width, m.height, boxStyle)
}
