package editor

import (
	"fmt"
	"image"

	"charm.land/lipgloss/v2"

	"lifemap/pkg/board"
	"lifemap/pkg/cellbuf"
	"lifemap/pkg/drawutil"
	"lifemap/pkg/geom"
)

// cellbuf style keys for the canvas background layer.
const (
	styleBG      cellbuf.StyleKey = 0
	styleGrid    cellbuf.StyleKey = 1
	styleLink    cellbuf.StyleKey = 2
	styleLinkWip cellbuf.StyleKey = 3
	styleGuide   cellbuf.StyleKey = 4
	styleMarquee cellbuf.StyleKey = 5
)

// bufStyles maps cellbuf StyleKeys to lipgloss styles for rendering.
var bufStyles = map[cellbuf.StyleKey]lipgloss.Style{
	styleBG:      lipgloss.NewStyle().Foreground(c("#1a3a2a")).Background(colorBG),
	styleGrid:    lipgloss.NewStyle().Foreground(c("#0e2e20")).Background(colorBG),
	styleLink:    lipgloss.NewStyle().Foreground(c("#00d4a0")).Background(colorBG),
	styleLinkWip: lipgloss.NewStyle().Foreground(c("#ffcc00")).Background(colorBG),
	styleGuide:   lipgloss.NewStyle().Foreground(c("#cc66ff")).Background(colorBG),
	styleMarquee: lipgloss.NewStyle().Foreground(c("#00ffee")).Background(colorBG),
}

// gridSpacing converts a canvas-unit grid interval to screen cells at
// the given zoom, never collapsing below one cell.
func gridSpacing(canvasUnits int, zoom float64) int {
	s := int(float64(canvasUnits) * zoom)
	if s < 1 {
		s = 1
	}
	return s
}

// linkEndpoints returns the screen-space anchor points of a link:
// source right-edge center to target left-edge center.
func linkEndpoints(src, dst *board.Node, vp geom.Viewport) (geom.Point, geom.Point) {
	sb, db := src.Bounds(), dst.Bounds()
	p1 := geom.CanvasToScreen(geom.Pt(sb.Right, sb.CenterY()), vp)
	p2 := geom.CanvasToScreen(geom.Pt(db.Left, db.CenterY()), vp)
	return p1, p2
}

// buildCanvasLayer renders grid, links, snap guides and the box-select
// marquee into a cellbuf and returns it as the Z=0 canvas layer.
func (m Model) buildCanvasLayer(region image.Rectangle) *lipgloss.Layer {
	w := region.Dx()
	h := region.Dy()
	if w <= 0 || h <= 0 {
		return lipgloss.NewLayer("").X(region.Min.X).Y(region.Min.Y).Z(0).ID("canvas")
	}

	vp := m.doc.Viewport
	buf := cellbuf.New(w, h, styleBG)

	// Grid lines sit on canvas coordinates, so the screen spacing
	// stretches with the zoom just like nodes and links do.
	drawutil.DrawGrid(buf, int(vp.Pan.X), int(vp.Pan.Y),
		gridSpacing(8, vp.Zoom), gridSpacing(4, vp.Zoom), styleGrid)

	for _, e := range m.doc.Edges() {
		src := m.doc.Node(e.Source)
		dst := m.doc.Node(e.Target)
		if src == nil || dst == nil {
			continue
		}
		p1, p2 := linkEndpoints(src, dst, vp)
		pts := drawutil.CubicPoints(geom.Link(p1, p2))
		drawutil.DrawArrowPolyline(buf, pts, styleLink, styleLink)
	}

	// In-flight link preview, dashed from the source handle to the
	// cursor.
	if m.gesture.kind == gestureDrawLink {
		if src := m.doc.Node(m.gesture.nodeID); src != nil {
			sb := src.Bounds()
			p1 := geom.CanvasToScreen(geom.Pt(sb.Right, sb.CenterY()), vp)
			p2 := geom.CanvasToScreen(m.gesture.current, vp)
			pts := drawutil.CubicPoints(geom.Link(p1, p2))
			drawutil.DrawDashedPolyline(buf, pts, styleLinkWip)
		}
	}

	// Snap guides during a drag.
	if m.snap.X != nil {
		s := geom.CanvasToScreen(geom.Pt(m.snap.X.Line, 0), vp)
		drawutil.DrawVGuide(buf, int(s.X), styleGuide)
	}
	if m.snap.Y != nil {
		s := geom.CanvasToScreen(geom.Pt(0, m.snap.Y.Line), vp)
		drawutil.DrawHGuide(buf, int(s.Y), styleGuide)
	}

	if m.gesture.kind == gestureBoxSelect {
		r := boxRect(m.gesture.anchor, m.gesture.current)
		tl := geom.CanvasToScreen(geom.Pt(r.Left, r.Top), vp)
		br := geom.CanvasToScreen(geom.Pt(r.Right, r.Bottom), vp)
		drawutil.DrawRectOutline(buf, image.Rect(int(tl.X), int(tl.Y), int(br.X), int(br.Y)), styleMarquee)
	}

	return lipgloss.NewLayer(buf.Render(bufStyles)).
		X(region.Min.X).Y(region.Min.Y).Z(0).ID("canvas")
}

// buildNodeLayers creates a Layer per visible node, scaled by the
// viewport zoom.
func (m Model) buildNodeLayers(region image.Rectangle) []*lipgloss.Layer {
	vp := m.doc.Viewport
	var layers []*lipgloss.Layer

	for _, n := range m.doc.Nodes() {
		sp := geom.CanvasToScreen(n.Pos(), vp)
		sx := int(sp.X) + region.Min.X
		sy := int(sp.Y) + region.Min.Y
		bw := int(n.Size().X * vp.Zoom)
		bh := int(n.Size().Y * vp.Zoom)

		if !image.Rect(sx, sy, sx+bw, sy+bh).Overlaps(region) {
			continue
		}

		bc, tc := nodeColor(n)
		bg := colorBG
		if m.selected(n.ID) {
			bc, tc, bg = selBorder, selText, selBG
		}

		label := n.Label
		if n.Icon != "" {
			label = n.Icon + " " + label
		}

		textStyle := lipgloss.NewStyle().Foreground(tc).Background(bg).Bold(true)

		var rendered string
		if bh < 3 || bw < 6 {
			// Too small for a border at this zoom; compact form.
			rendered = textStyle.Render(truncate(label, max(bw, 2)))
		} else {
			boxStyle := lipgloss.NewStyle().
				Border(borderForKind(n.Kind)).
				BorderForeground(bc).
				Background(bg).
				Width(bw - 2).
				AlignHorizontal(lipgloss.Center)
			rendered = boxStyle.Render(textStyle.Render(truncate(label, bw-4)))
		}

		layers = append(layers, lipgloss.NewLayer(rendered).
			X(sx).Y(sy).Z(2).ID("node-"+n.ID))

		// Link handle on the right border, hidden in compact form.
		if bh >= 3 && bw >= 6 {
			handle := lipgloss.NewStyle().Foreground(bc).Background(bg).Render("◉")
			layers = append(layers, lipgloss.NewLayer(handle).
				X(sx+bw-1).Y(sy+bh/2).Z(3).ID("handle-"+n.ID))
		}
	}

	return layers
}

func truncate(s string, maxLen int) string {
	if maxLen < 0 {
		maxLen = 0
	}
	r := []rune(s)
	if len(r) > maxLen {
		r = r[:maxLen]
	}
	return string(r)
}

// footerText summarizes the editor state for the footer line.
func (m Model) footerText() string {
	sel := "none"
	if len(m.selection) == 1 {
		if n := m.doc.Node(m.selection[0]); n != nil {
			sel = n.ID + ":" + n.Label
		}
	} else if len(m.selection) > 1 {
		sel = fmt.Sprintf("%d nodes", len(m.selection))
	}
	mark := " "
	if m.dirty {
		mark = "*"
	}
	return fmt.Sprintf(
		" %sMouse: (%d,%d)  Zoom: %d%%  Sel: %s  Nodes: %d  │ %s",
		mark, m.mouseX, m.mouseY, int(m.doc.Viewport.Zoom*100), sel,
		len(m.doc.Nodes()), m.status,
	)
}
