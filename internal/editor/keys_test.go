package editor

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifemap/pkg/geom"
)

func keyPress(code rune) tea.KeyMsg {
	return tea.KeyPressMsg{Code: code, Text: string(code)}
}

func ctrlKey(code rune) tea.KeyMsg {
	return tea.KeyPressMsg{Code: code, Mod: tea.ModCtrl}
}

func TestUndoKeepsViewport(t *testing.T) {
	m, _, _ := testModel(t)
	m = m.addNodeAtScreen(geom.Pt(120, 30)) // checkpoint taken at pan (0,0)
	require.Len(t, m.doc.Nodes(), 3)

	m = m.panBy(25, 7)
	require.Equal(t, geom.Pt(25, 7), m.doc.Viewport.Pan)

	res, _ := m.handleKeys(keyPress('u'))
	m = res.(Model)

	assert.Len(t, m.doc.Nodes(), 2, "undo should drop the added node")
	assert.Equal(t, geom.Pt(25, 7), m.doc.Viewport.Pan,
		"undo must not move the viewport")
}

func TestRedoKeepsViewport(t *testing.T) {
	m, _, _ := testModel(t)
	m = m.addNodeAtScreen(geom.Pt(120, 30))

	res, _ := m.handleKeys(keyPress('u'))
	m = res.(Model)
	require.Len(t, m.doc.Nodes(), 2)

	m = m.panBy(-10, 4)
	res, _ = m.handleKeys(ctrlKey('y'))
	m = res.(Model)

	assert.Len(t, m.doc.Nodes(), 3, "redo should restore the added node")
	assert.Equal(t, geom.Pt(-10, 4), m.doc.Viewport.Pan,
		"redo must not move the viewport")
}

func TestUndoKeepsZoom(t *testing.T) {
	m, _, _ := testModel(t)
	m = m.addNodeAtScreen(geom.Pt(120, 30))
	m = m.zoomAround(geom.Pt(0, 0), zoomStep)
	require.InDelta(t, zoomStep, m.doc.Viewport.Zoom, 0.001)

	res, _ := m.handleKeys(keyPress('u'))
	m = res.(Model)

	assert.InDelta(t, zoomStep, m.doc.Viewport.Zoom, 0.001,
		"undo must not reset the zoom")
}
