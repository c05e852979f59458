package tealayout

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// ToolbarLayer renders a full-width toolbar at the top of the screen.
func ToolbarLayer(content string, width int, style lipgloss.Style) *lipgloss.Layer {
	rendered := style.Width(width).Render(content)
	return lipgloss.NewLayer(rendered).X(0).Y(0).Z(0).ID("toolbar")
}

// FooterLayer renders a full-width footer at row y.
func FooterLayer(content string, width, y int, style lipgloss.Style) *lipgloss.Layer {
	rendered := style.Width(width).Render(content)
	return lipgloss.NewLayer(rendered).X(0).Y(y).Z(0).ID("footer")
}

// VerticalSeparator renders a column of │ characters.
func VerticalSeparator(x, y, height int, style lipgloss.Style) *lipgloss.Layer {
	lines := make([]string, height)
	for i := range lines {
		lines[i] = "│"
	}
	rendered := style.Render(strings.Join(lines, "\n"))
	return lipgloss.NewLayer(rendered).X(x).Y(y).Z(1).ID("separator")
}

// ModalLayer centers content (wrapped in boxStyle) on the terminal at
// a high Z so it covers everything else.
func ModalLayer(content string, termW, termH int, boxStyle lipgloss.Style) *lipgloss.Layer {
	rendered := boxStyle.Render(content)
	w := lipgloss.Width(rendered)
	h := lipgloss.Height(rendered)
	cx := max((termW-w)/2, 0)
	cy := max((termH-h)/2, 0)
	return lipgloss.NewLayer(rendered).X(cx).Y(cy).Z(100).ID("modal")
}

// FillLayer fills a region with the style's background.
func FillLayer(r Region, style lipgloss.Style, id string, z int) *lipgloss.Layer {
	w := r.Rect.Dx()
	h := r.Rect.Dy()
	if w <= 0 || h <= 0 {
		return lipgloss.NewLayer("").X(r.Rect.Min.X).Y(r.Rect.Min.Y).Z(z).ID(id)
	}
	line := strings.Repeat(" ", w)
	lines := make([]string, h)
	for i := range lines {
		lines[i] = line
	}
	rendered := style.Render(strings.Join(lines, "\n"))
	return lipgloss.NewLayer(rendered).X(r.Rect.Min.X).Y(r.Rect.Min.Y).Z(z).ID(id)
}
