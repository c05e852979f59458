package editor

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"lifemap/pkg/board"
)

// c is shorthand for lipgloss.Color.
func c(hex string) color.Color { return lipgloss.Color(hex) }

// Color palette — CRT green terminal aesthetic.
var (
	colorBG  = c("#080e0b")
	chromeBG = c("#0a1510")

	// Node kind colors
	kindColors = map[board.Kind]struct{ border, text color.Color }{
		board.KindRoot:     {border: c("#ffcc00"), text: c("#ffee66")},
		board.KindCategory: {border: c("#00ccee"), text: c("#66ffee")},
		board.KindLeaf:     {border: c("#00d4a0"), text: c("#00ffc8")},
	}

	selBorder = c("#00ffee")
	selText   = c("#00ffee")
	selBG     = c("#0a1a15")

	toolbarColor = c("#00ffc8")
	footerColor  = c("#666666")
)

var (
	tbStyle = lipgloss.NewStyle().
		Background(chromeBG).
		Foreground(toolbarColor).
		Bold(true)

	ftStyle = lipgloss.NewStyle().
		Foreground(footerColor)

	bgStyle = lipgloss.NewStyle().
		Background(colorBG)
)

// borderForKind returns the border style for a node kind.
func borderForKind(k board.Kind) lipgloss.Border {
	switch k {
	case board.KindRoot:
		return lipgloss.DoubleBorder()
	case board.KindCategory:
		return lipgloss.RoundedBorder()
	default:
		return lipgloss.NormalBorder()
	}
}

// nodeColor resolves a node's border color: an explicit per-node color
// wins over the kind default.
func nodeColor(n *board.Node) (border, text color.Color) {
	info := kindColors[n.Kind]
	border, text = info.border, info.text
	if n.Color != "" {
		border = c(n.Color)
		text = c(n.Color)
	}
	return border, text
}
