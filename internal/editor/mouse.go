package editor

import (
	"image"
	"time"

	tea "charm.land/bubbletea/v2"

	"lifemap/pkg/board"
	"lifemap/pkg/geom"
)

// handleMouse translates bubbletea mouse messages into pointer events
// for the gesture machine, plus the two behaviors that need more than
// the machine provides: double-click-to-add and wheel zoom.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	mouse := msg.Mouse()
	m.mouseX = mouse.X
	m.mouseY = mouse.Y

	canvasRect := m.canvasRect()
	cell := image.Pt(mouse.X, mouse.Y)
	if !cell.In(canvasRect) {
		// Leaving the region mid-gesture behaves like a release at the
		// last known position, keeping the machine from wedging.
		if _, isRelease := msg.(tea.MouseReleaseMsg); isRelease && m.gesture.kind != gestureIdle {
			m = m.applyPointer(pointerEvent{kind: pointerUp, screen: m.regionLocal(cell), button: buttonPrimary})
		}
		if cell.In(m.backlogRect()) {
			return m.handleBacklogMouse(msg, cell)
		}
		return m, nil
	}

	screen := m.regionLocal(cell)
	shift := mouse.Mod&tea.ModShift != 0
	ctrl := mouse.Mod&tea.ModCtrl != 0

	switch msg.(type) {
	case tea.MouseClickMsg:
		switch mouse.Button {
		case tea.MouseLeft:
			if m.isDoubleClick(cell) {
				return m.addNodeAtScreen(screen), nil
			}
			m = m.applyPointer(pointerEvent{kind: pointerDown, screen: screen, button: buttonPrimary, shift: shift, ctrl: ctrl})
		case tea.MouseMiddle:
			m = m.applyPointer(pointerEvent{kind: pointerDown, screen: screen, button: buttonMiddle})
		}

	case tea.MouseMotionMsg:
		m = m.applyPointer(pointerEvent{kind: pointerMove, screen: screen, button: buttonNone, shift: shift, ctrl: ctrl})

	case tea.MouseReleaseMsg:
		m = m.applyPointer(pointerEvent{kind: pointerUp, screen: screen, button: buttonPrimary})

	case tea.MouseWheelMsg:
		switch mouse.Button {
		case tea.MouseWheelUp:
			m = m.zoomAround(screen, zoomStep)
		case tea.MouseWheelDown:
			m = m.zoomAround(screen, 1/zoomStep)
		}
	}

	return m, nil
}

// regionLocal converts an absolute terminal cell to canvas-region
// coordinates.
func (m Model) regionLocal(cell image.Point) geom.Point {
	r := m.canvasRect()
	return geom.Pt(float64(cell.X-r.Min.X), float64(cell.Y-r.Min.Y))
}

// isDoubleClick tracks click timing; two primary clicks on the same
// cell within the window count as one double-click.
func (m *Model) isDoubleClick(cell image.Point) bool {
	now := time.Now()
	double := cell == m.lastClickCell && now.Sub(m.lastClickAt) <= doubleClickWindow
	m.lastClickAt = now
	m.lastClickCell = cell
	if double {
		// Consume, so a triple-click doesn't add two nodes.
		m.lastClickAt = time.Time{}
	}
	return double
}

// addNodeAtScreen adds a leaf centered on the given screen position.
// The interaction state stays idle.
func (m Model) addNodeAtScreen(screen geom.Point) Model {
	canvasPt := geom.ScreenToCanvas(screen, m.doc.Viewport)
	if m.doc.HitTest(canvasPt) != nil {
		return m
	}
	leaf := board.Node{Kind: board.KindLeaf}
	size := leaf.Size()
	leaf.X = canvasPt.X - size.X/2
	leaf.Y = canvasPt.Y - size.Y/2
	next, id := m.doc.AddNode(leaf)
	m.applyMutation(next)
	m.selection = []string{id}
	m.status = "node added"
	return m
}

const zoomStep = 1.25

// zoomAround scales the viewport, keeping the canvas point under the
// cursor fixed on screen.
func (m Model) zoomAround(screen geom.Point, factor float64) Model {
	vp := m.doc.Viewport
	zoom := vp.Zoom * factor
	if zoom < m.cfg.ZoomMin {
		zoom = m.cfg.ZoomMin
	}
	if zoom > m.cfg.ZoomMax {
		zoom = m.cfg.ZoomMax
	}
	if zoom == vp.Zoom {
		return m
	}
	anchor := geom.ScreenToCanvas(screen, vp)
	vp.Zoom = zoom
	// Solve pan so that anchor maps back to the same screen point.
	vp.Pan = screen.Sub(anchor.Mul(zoom))
	m.doc = m.doc.Clone()
	m.doc.Viewport = vp
	return m
}
