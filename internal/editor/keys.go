package editor

import (
	"image"

	tea "charm.land/bubbletea/v2"

	"lifemap/pkg/geom"
)

const panStep = 3

// handleKeys processes keyboard input outside the edit modal.
func (m Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit

	// Viewport panning. Arrow direction moves the view, so the pan
	// offset moves the opposite way.
	case "up":
		return m.panBy(0, panStep), nil
	case "down":
		return m.panBy(0, -panStep), nil
	case "left":
		return m.panBy(panStep, 0), nil
	case "right":
		return m.panBy(-panStep, 0), nil

	// Keyboard zoom, anchored at the canvas center.
	case "+", "=":
		return m.zoomAround(m.canvasCenter(), zoomStep), nil
	case "-", "_":
		return m.zoomAround(m.canvasCenter(), 1/zoomStep), nil

	case "d", "delete", "backspace":
		return m.deleteSelection(), nil

	case "x":
		return m.disconnectSelection(), nil

	case "u", "ctrl+z":
		if doc, ok := m.hist.Undo(); ok {
			// History restores the document, never the camera.
			doc.Viewport = m.doc.Viewport
			m.doc = doc
			m.selection = nil
			m.dirty = true
			m.status = "undo"
		}
		return m, nil

	case "ctrl+y", "ctrl+r":
		if doc, ok := m.hist.Redo(); ok {
			doc.Viewport = m.doc.Viewport
			m.doc = doc
			m.selection = nil
			m.dirty = true
			m.status = "redo"
		}
		return m, nil

	case "ctrl+s", "w":
		m.status = "saving…"
		return m, saveCmd(m.boardPath, m.doc)

	case "e":
		return m.openEditModal()

	case "b":
		m.showBacklog = !m.showBacklog
		m.backlogIdx = 0
		return m, nil

	case "j":
		if m.showBacklog && m.backlogIdx < len(m.unmapped())-1 {
			m.backlogIdx++
		}
		return m, nil
	case "k":
		if m.showBacklog && m.backlogIdx > 0 {
			m.backlogIdx--
		}
		return m, nil
	case "enter":
		if m.showBacklog {
			return m.placeBacklogItem(m.backlogIdx), nil
		}
		return m, nil

	case "esc", "escape":
		if m.gesture.kind != gestureIdle {
			return m.cancelGesture(), nil
		}
		m.selection = nil
		return m, nil
	}

	return m, nil
}

// panBy shifts the viewport by a screen-cell delta.
func (m Model) panBy(dx, dy float64) Model {
	m.doc = m.doc.Clone()
	m.doc.Viewport.Pan = m.doc.Viewport.Pan.Add(geom.Pt(dx, dy))
	return m
}

// deleteSelection removes every selected node as one undo step.
func (m Model) deleteSelection() Model {
	if len(m.selection) == 0 {
		return m
	}
	next := m.doc
	for _, id := range m.selection {
		next = next.DeleteNode(id)
	}
	if m.applyMutation(next) {
		m.status = "deleted"
	}
	m.selection = nil
	return m
}

// disconnectSelection removes every edge whose endpoints are both
// selected, in either direction, as one undo step.
func (m Model) disconnectSelection() Model {
	if len(m.selection) < 2 {
		return m
	}
	sel := make(map[string]bool, len(m.selection))
	for _, id := range m.selection {
		sel[id] = true
	}
	next := m.doc
	for _, e := range m.doc.Edges() {
		if sel[e.Source] && sel[e.Target] {
			next = next.DisconnectEdge(e.ID)
		}
	}
	if m.applyMutation(next) {
		m.status = "disconnected"
	}
	return m
}

// canvasCenter returns the canvas region's center in region-local
// screen cells.
func (m Model) canvasCenter() geom.Point {
	r := m.canvasRect()
	return geom.Pt(float64(r.Dx())/2, float64(r.Dy())/2)
}

// canvasRect computes the canvas region in absolute terminal cells.
// Must match the layout in View.
func (m Model) canvasRect() image.Rectangle {
	left := 0
	if m.showBacklog {
		left = backlogWidth
	}
	return image.Rect(left, 1, m.width, m.height-1)
}

// backlogRect is the backlog panel region, empty when hidden.
func (m Model) backlogRect() image.Rectangle {
	if !m.showBacklog {
		return image.Rectangle{}
	}
	return image.Rect(0, 1, backlogWidth, m.height-1)
}
