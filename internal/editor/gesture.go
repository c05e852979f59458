package editor

import (
	"lifemap/pkg/align"
	"lifemap/pkg/geom"
)

// gestureKind tags the single active gesture. Every pointer-move
// branch in this file switches on the tag and nothing else.
type gestureKind int

const (
	gestureIdle gestureKind = iota
	gesturePan
	gestureDragNode
	gestureDrawLink
	gestureBoxSelect
)

// gesture is the interaction state. Exactly one gesture is active at
// any time; a second button-down while one is in flight is ignored
// until the first resolves.
type gesture struct {
	kind       gestureKind
	anchor     geom.Point // pan: last pointer screen pos; boxSelect: canvas anchor
	current    geom.Point // drawLink cursor / boxSelect corner, canvas space
	nodeID     string     // dragged node or link source
	grabOffset geom.Point // pointer-to-node offset at drag start, canvas space
}

// pointerButton abstracts the mouse button so gesture logic stays free
// of bubbletea types.
type pointerButton int

const (
	buttonNone pointerButton = iota
	buttonPrimary
	buttonMiddle
)

type pointerKind int

const (
	pointerDown pointerKind = iota
	pointerMove
	pointerUp
)

// pointerEvent is a pointer sample in canvas-region-local screen
// cells, already clipped to the canvas region by the caller.
type pointerEvent struct {
	kind   pointerKind
	screen geom.Point
	button pointerButton
	shift  bool
	ctrl   bool
}

// applyPointer advances the gesture machine by one event and returns
// the updated model. It is pure given the model: no clock, no I/O.
func (m Model) applyPointer(ev pointerEvent) Model {
	switch ev.kind {
	case pointerDown:
		return m.pointerDown(ev)
	case pointerMove:
		return m.pointerMove(ev)
	case pointerUp:
		return m.pointerUp(ev)
	}
	return m
}

func (m Model) pointerDown(ev pointerEvent) Model {
	if m.gesture.kind != gestureIdle {
		return m // single-gesture invariant
	}
	canvasPt := geom.ScreenToCanvas(ev.screen, m.doc.Viewport)

	if ev.button == buttonMiddle || (ev.button == buttonPrimary && ev.ctrl) {
		m.gesture = gesture{kind: gesturePan, anchor: ev.screen}
		return m
	}
	if ev.button != buttonPrimary {
		return m
	}

	// The link handle wins over the node body where they overlap.
	for i := len(m.doc.Nodes()) - 1; i >= 0; i-- {
		n := m.doc.Nodes()[i]
		if geom.HandleBounds(n).Contains(canvasPt) {
			m.gesture = gesture{kind: gestureDrawLink, nodeID: n.ID, current: canvasPt}
			return m
		}
	}

	if n := m.doc.HitTest(canvasPt); n != nil {
		m.selection = []string{n.ID}
		m.gesture = gesture{
			kind:       gestureDragNode,
			nodeID:     n.ID,
			grabOffset: canvasPt.Sub(n.Pos()),
		}
		return m
	}

	if ev.shift {
		m.gesture = gesture{kind: gestureBoxSelect, anchor: canvasPt, current: canvasPt}
		return m
	}

	m.selection = nil
	m.gesture = gesture{kind: gesturePan, anchor: ev.screen}
	return m
}

func (m Model) pointerMove(ev pointerEvent) Model {
	switch m.gesture.kind {
	case gesturePan:
		delta := ev.screen.Sub(m.gesture.anchor)
		m.doc = m.doc.Clone()
		m.doc.Viewport.Pan = m.doc.Viewport.Pan.Add(delta)
		// Re-anchor so deltas accumulate correctly at high event rates.
		m.gesture.anchor = ev.screen

	case gestureDragNode:
		n := m.doc.Node(m.gesture.nodeID)
		if n == nil {
			m.gesture = gesture{kind: gestureIdle}
			return m
		}
		canvasPt := geom.ScreenToCanvas(ev.screen, m.doc.Viewport)
		tentative := canvasPt.Sub(m.gesture.grabOffset)
		res := align.Snap(tentative, n.Size(), m.snapTargets(n.ID), m.cfg.SnapThreshold)
		m.doc = m.doc.MoveNode(n.ID, res.Pos)
		m.snap = res

	case gestureDrawLink:
		m.gesture.current = geom.ScreenToCanvas(ev.screen, m.doc.Viewport)

	case gestureBoxSelect:
		m.gesture.current = geom.ScreenToCanvas(ev.screen, m.doc.Viewport)
		m.selection = nil
		for _, n := range m.doc.NodesInRect(boxRect(m.gesture.anchor, m.gesture.current)) {
			m.selection = append(m.selection, n.ID)
		}
	}
	return m
}

func (m Model) pointerUp(ev pointerEvent) Model {
	switch m.gesture.kind {
	case gestureDragNode:
		// The drag's one and only checkpoint, capturing the final
		// position.
		m.checkpoint()
		m.dirty = true
		m.snap = align.Result{}

	case gestureDrawLink:
		canvasPt := geom.ScreenToCanvas(ev.screen, m.doc.Viewport)
		if target := m.doc.HitTest(canvasPt); target != nil && target.ID != m.gesture.nodeID {
			if next := m.doc.Connect(m.gesture.nodeID, target.ID); next != m.doc {
				m.doc = next
				m.checkpoint()
				m.dirty = true
			}
		}
		// Released over background or the source itself: discard.
	}
	// A pointer-up with no pending gesture falls through as a no-op;
	// lost pointer capture can deliver these out of order.
	m.gesture = gesture{kind: gestureIdle}
	return m
}

// cancelGesture handles Escape: any in-flight gesture is dropped
// without mutating the document. A drag keeps the positions applied so
// far — dragging has no rollback, releasing anywhere commits — so the
// drag path checkpoints like a normal release.
func (m Model) cancelGesture() Model {
	if m.gesture.kind == gestureDragNode {
		m.checkpoint()
		m.dirty = true
	}
	m.snap = align.Result{}
	m.gesture = gesture{kind: gestureIdle}
	return m
}

// snapTargets collects every node except the one being dragged.
func (m Model) snapTargets(exclude string) []align.Target {
	nodes := m.doc.Nodes()
	targets := make([]align.Target, 0, len(nodes)-1)
	for _, n := range nodes {
		if n.ID == exclude {
			continue
		}
		targets = append(targets, align.Target{ID: n.ID, Bounds: n.Bounds()})
	}
	return targets
}

// boxRect normalizes two drag corners into a canvas rectangle.
func boxRect(a, b geom.Point) geom.Rect {
	r := geom.Rect{Left: a.X, Top: a.Y, Right: b.X, Bottom: b.Y}
	if r.Left > r.Right {
		r.Left, r.Right = r.Right, r.Left
	}
	if r.Top > r.Bottom {
		r.Top, r.Bottom = r.Bottom, r.Top
	}
	return r
}
