package editor

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"lifemap/pkg/tealayout"
)

// View implements tea.Model.
func (m Model) View() tea.View {
	if m.width == 0 || m.height == 0 {
		return tea.NewView("")
	}

	b := tealayout.NewBuilder(m.width, m.height).
		TopFixed("toolbar", 1).
		BottomFixed("footer", 1)
	if m.showBacklog {
		b = b.LeftFixed("backlog", backlogWidth)
	}
	layout := b.Remaining("canvas").Build()

	canvasRegion := layout.Get("canvas")

	var layers []*lipgloss.Layer

	layers = append(layers,
		tealayout.FillLayer(layout.Get("toolbar"), tbStyle, "toolbar-bg", 0),
		tealayout.FillLayer(canvasRegion, bgStyle, "canvas-bg", 0),
		tealayout.FillLayer(layout.Get("footer"), ftStyle, "footer-bg", 0),
	)

	tbContent := " LIFEMAP  │  drag=move  shift+drag=select  ◉=link  2·click=add  │  [e]dit [d]elete [u]ndo [b]acklog [w]rite [q]uit"
	layers = append(layers, tealayout.ToolbarLayer(tbContent, m.width, tbStyle))
	layers = append(layers, tealayout.FooterLayer(m.footerText(), m.width, m.height-1, ftStyle))

	layers = append(layers, m.buildCanvasLayer(canvasRegion.Rect))
	layers = append(layers, m.buildNodeLayers(canvasRegion.Rect)...)

	if m.showBacklog {
		layers = append(layers, m.buildBacklogLayers(layout.Get("backlog").Rect)...)
	}

	if m.editOpen {
		layers = append(layers, m.buildEditModalLayer())
	}

	comp := lipgloss.NewCompositor(layers...)
	canvas := lipgloss.NewCanvas(m.width, m.height)
	canvas.Compose(comp)

	v := tea.NewView(canvas.Render())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeAllMotion
	return v
}
