package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifemap/internal/config"
	"lifemap/pkg/board"
	"lifemap/pkg/geom"
)

// testModel builds an editor over a two-node board at zoom 1 and zero
// pan, so canvas and screen coordinates coincide.
func testModel(t *testing.T) (Model, string, string) {
	t.Helper()
	doc := board.New()
	doc, a := doc.AddNode(board.Node{X: 10, Y: 10, Label: "a", Kind: board.KindRoot})
	doc, b := doc.AddNode(board.Node{X: 60, Y: 10, Label: "b"})
	m := New(doc, Options{Config: config.Default().Editor})
	return m, a, b
}

func down(p geom.Point, opts ...func(*pointerEvent)) pointerEvent {
	ev := pointerEvent{kind: pointerDown, screen: p, button: buttonPrimary}
	for _, o := range opts {
		o(&ev)
	}
	return ev
}

func move(p geom.Point) pointerEvent {
	return pointerEvent{kind: pointerMove, screen: p}
}

func up(p geom.Point) pointerEvent {
	return pointerEvent{kind: pointerUp, screen: p, button: buttonPrimary}
}

func withShift(ev *pointerEvent)  { ev.shift = true }
func withCtrl(ev *pointerEvent)   { ev.ctrl = true }
func withMiddle(ev *pointerEvent) { ev.button = buttonMiddle }

func TestPressOnNodeStartsDrag(t *testing.T) {
	m, a, _ := testModel(t)

	m = m.applyPointer(down(geom.Pt(12, 11)))
	assert.Equal(t, gestureDragNode, m.gesture.kind)
	assert.Equal(t, a, m.gesture.nodeID)
	assert.Equal(t, []string{a}, m.selection)
}

func TestPressOnBackgroundPansAndClearsSelection(t *testing.T) {
	m, a, _ := testModel(t)
	m.selection = []string{a}

	m = m.applyPointer(down(geom.Pt(200, 40)))
	assert.Equal(t, gesturePan, m.gesture.kind)
	assert.Nil(t, m.selection)
}

func TestMiddleAndCtrlPressPanEvenOverNode(t *testing.T) {
	m, _, _ := testModel(t)

	panned := m.applyPointer(down(geom.Pt(12, 11), withMiddle))
	assert.Equal(t, gesturePan, panned.gesture.kind)

	panned = m.applyPointer(down(geom.Pt(12, 11), withCtrl))
	assert.Equal(t, gesturePan, panned.gesture.kind)
}

func TestPanMovesViewport(t *testing.T) {
	m, _, _ := testModel(t)

	m = m.applyPointer(down(geom.Pt(200, 40)))
	m = m.applyPointer(move(geom.Pt(205, 43)))
	assert.Equal(t, geom.Pt(5, 3), m.doc.Viewport.Pan)

	// Deltas accumulate from the re-anchored position.
	m = m.applyPointer(move(geom.Pt(207, 43)))
	assert.Equal(t, geom.Pt(7, 3), m.doc.Viewport.Pan)
}

func TestSingleGestureInvariant(t *testing.T) {
	m, a, _ := testModel(t)

	m = m.applyPointer(down(geom.Pt(12, 11)))
	require.Equal(t, gestureDragNode, m.gesture.kind)

	// A second press while dragging is ignored.
	m = m.applyPointer(down(geom.Pt(200, 40)))
	assert.Equal(t, gestureDragNode, m.gesture.kind)
	assert.Equal(t, a, m.gesture.nodeID)
}

func TestDragMovesNodeAndCheckpointsOnce(t *testing.T) {
	m, a, _ := testModel(t)
	before := m.hist.Len()

	m = m.applyPointer(down(geom.Pt(12, 11)))
	m = m.applyPointer(move(geom.Pt(12, 30)))
	m = m.applyPointer(move(geom.Pt(12, 40)))
	assert.Equal(t, before, m.hist.Len(), "no checkpoint mid-drag")

	m = m.applyPointer(up(geom.Pt(12, 40)))
	assert.Equal(t, gestureIdle, m.gesture.kind)
	assert.Equal(t, before+1, m.hist.Len(), "exactly one checkpoint per drag")
	assert.True(t, m.dirty)

	n := m.doc.Node(a)
	require.NotNil(t, n)
	assert.InDelta(t, 39, n.Y, 0.01)
}

func TestDragKeepsGrabOffset(t *testing.T) {
	m, a, _ := testModel(t)

	// Grab 2 cells into the node; after the move the node origin stays
	// 2 cells left and 1 below the pointer.
	m = m.applyPointer(down(geom.Pt(12, 11)))
	m = m.applyPointer(move(geom.Pt(30, 31)))
	n := m.doc.Node(a)
	require.NotNil(t, n)
	assert.InDelta(t, 28, n.X, 0.01)
	assert.InDelta(t, 30, n.Y, 0.01)
}

func TestDragSnapsToNeighborEdge(t *testing.T) {
	m, a, b := testModel(t)
	_ = b // b sits at (60,10); dragging a near its top edge snaps

	m = m.applyPointer(down(geom.Pt(10, 10)))
	m = m.applyPointer(move(geom.Pt(10, 13))) // tentative Y=13, within threshold of 10
	require.NotNil(t, m.snap.Y)
	n := m.doc.Node(a)
	require.NotNil(t, n)
	assert.InDelta(t, 10, n.Y, 0.01)
}

func TestHandlePressStartsLinkDraw(t *testing.T) {
	m, a, _ := testModel(t)

	// a spans X 10..34 (root is 24 wide); the handle sits on the right
	// border at the vertical center.
	m = m.applyPointer(down(geom.Pt(34, 11)))
	assert.Equal(t, gestureDrawLink, m.gesture.kind)
	assert.Equal(t, a, m.gesture.nodeID)
}

func TestLinkReleasedOnTargetConnects(t *testing.T) {
	m, a, b := testModel(t)
	before := m.hist.Len()

	m = m.applyPointer(down(geom.Pt(34, 11)))
	m = m.applyPointer(move(geom.Pt(62, 11)))
	m = m.applyPointer(up(geom.Pt(62, 11)))

	assert.Equal(t, gestureIdle, m.gesture.kind)
	assert.True(t, m.doc.HasEdge(a, b))
	assert.Equal(t, before+1, m.hist.Len())
}

func TestLinkReleasedOnBackgroundDiscards(t *testing.T) {
	m, _, _ := testModel(t)
	before := m.hist.Len()

	m = m.applyPointer(down(geom.Pt(34, 11)))
	m = m.applyPointer(up(geom.Pt(200, 40)))

	assert.Equal(t, gestureIdle, m.gesture.kind)
	assert.Empty(t, m.doc.Edges())
	assert.Equal(t, before, m.hist.Len(), "discarded link must not checkpoint")
}

func TestDuplicateLinkIsNoOp(t *testing.T) {
	m, a, b := testModel(t)
	m.doc = m.doc.Connect(a, b)
	before := m.hist.Len()

	m = m.applyPointer(down(geom.Pt(34, 11)))
	m = m.applyPointer(up(geom.Pt(62, 11)))

	assert.Len(t, m.doc.Edges(), 1)
	assert.Equal(t, before, m.hist.Len(), "duplicate link must not checkpoint")
}

func TestShiftDragBoxSelects(t *testing.T) {
	m, a, b := testModel(t)

	m = m.applyPointer(down(geom.Pt(200, 40), withShift))
	require.Equal(t, gestureBoxSelect, m.gesture.kind)

	// Sweep back over both nodes.
	m = m.applyPointer(move(geom.Pt(5, 5)))
	assert.ElementsMatch(t, []string{a, b}, m.selection)

	// Shrink so only b remains inside the box.
	m = m.applyPointer(move(geom.Pt(40, 5)))
	assert.Equal(t, []string{b}, m.selection)

	m = m.applyPointer(up(geom.Pt(40, 5)))
	assert.Equal(t, gestureIdle, m.gesture.kind)
	assert.Equal(t, []string{b}, m.selection)
}

func TestEscapeCancelsBoxSelect(t *testing.T) {
	m, _, _ := testModel(t)
	before := m.hist.Len()

	m = m.applyPointer(down(geom.Pt(200, 40), withShift))
	m = m.applyPointer(move(geom.Pt(5, 5)))
	m = m.cancelGesture()

	assert.Equal(t, gestureIdle, m.gesture.kind)
	assert.Equal(t, before, m.hist.Len())
}

func TestEscapeDuringDragCommits(t *testing.T) {
	m, a, _ := testModel(t)
	before := m.hist.Len()

	m = m.applyPointer(down(geom.Pt(12, 11)))
	m = m.applyPointer(move(geom.Pt(12, 30)))
	m = m.cancelGesture()

	assert.Equal(t, gestureIdle, m.gesture.kind)
	assert.Equal(t, before+1, m.hist.Len())
	n := m.doc.Node(a)
	require.NotNil(t, n)
	assert.InDelta(t, 29, n.Y, 0.01)
}

func TestStrayReleaseIsNoOp(t *testing.T) {
	m, _, _ := testModel(t)
	before := m.hist.Len()

	m = m.applyPointer(up(geom.Pt(12, 11)))
	assert.Equal(t, gestureIdle, m.gesture.kind)
	assert.Equal(t, before, m.hist.Len())
	assert.False(t, m.dirty)
}

func TestDeleteSelectionIsOneUndoStep(t *testing.T) {
	m, a, b := testModel(t)
	m.doc = m.doc.Connect(a, b)
	m.selection = []string{b}
	before := m.hist.Len()

	m = m.deleteSelection()
	assert.Nil(t, m.doc.Node(b))
	assert.Empty(t, m.doc.Edges())
	assert.Equal(t, before+1, m.hist.Len())

	doc, ok := m.hist.Undo()
	require.True(t, ok)
	assert.NotNil(t, doc.Node(b))
}

func TestDisconnectSelectionRemovesEdgesBetweenSelected(t *testing.T) {
	m, a, b := testModel(t)
	m.doc, _ = m.doc.AddNode(board.Node{X: 100, Y: 40, Label: "c"})
	c := m.doc.Nodes()[2].ID
	m.doc = m.doc.Connect(a, b)
	m.doc = m.doc.Connect(a, c)
	m.selection = []string{a, b}
	before := m.hist.Len()

	m = m.disconnectSelection()
	assert.False(t, m.doc.HasEdge(a, b))
	assert.True(t, m.doc.HasEdge(a, c), "edges to unselected nodes survive")
	assert.Equal(t, before+1, m.hist.Len())

	// Nothing between the selected pair: no-op, no checkpoint.
	m = m.disconnectSelection()
	assert.Equal(t, before+1, m.hist.Len())
}
