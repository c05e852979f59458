package history

import (
	"fmt"
	"testing"

	"lifemap/pkg/board"
)

// docWithNodes builds a document with n leaves, so snapshots are
// distinguishable by node count.
func docWithNodes(n int) *board.Document {
	d := board.New()
	for i := 0; i < n; i++ {
		d, _ = d.AddNode(board.Node{X: float64(i) * 20, Label: fmt.Sprintf("node %d", i)})
	}
	return d
}

// ── Undo/redo walk ──

func TestUndoRedoWalk(t *testing.T) {
	s := New(DefaultCapacity)
	s.Checkpoint(docWithNodes(0))
	s.Checkpoint(docWithNodes(1))
	s.Checkpoint(docWithNodes(2))

	d, ok := s.Undo()
	if !ok || len(d.Nodes()) != 1 {
		t.Fatalf("first undo: expected 1 node, ok=%v", ok)
	}
	d, ok = s.Undo()
	if !ok || len(d.Nodes()) != 0 {
		t.Fatalf("second undo: expected empty document, ok=%v", ok)
	}
	if _, ok = s.Undo(); ok {
		t.Error("undo at the bottom must be a no-op")
	}

	d, ok = s.Redo()
	if !ok || len(d.Nodes()) != 1 {
		t.Fatalf("redo: expected 1 node, ok=%v", ok)
	}
	d, ok = s.Redo()
	if !ok || len(d.Nodes()) != 2 {
		t.Fatalf("second redo: expected 2 nodes, ok=%v", ok)
	}
	if _, ok = s.Redo(); ok {
		t.Error("redo at the top must be a no-op")
	}
}

func TestCheckpointTruncatesRedo(t *testing.T) {
	s := New(DefaultCapacity)
	s.Checkpoint(docWithNodes(0))
	s.Checkpoint(docWithNodes(1))
	s.Checkpoint(docWithNodes(2))
	s.Undo()
	s.Undo()
	s.Checkpoint(docWithNodes(5))

	if s.CanRedo() {
		t.Error("checkpoint after undo must discard redo states")
	}
	if s.Len() != 2 {
		t.Errorf("expected 2 entries, got %d", s.Len())
	}
	d, _ := s.Undo()
	if len(d.Nodes()) != 0 {
		t.Error("undo should reach the original bottom state")
	}
}

// ── Capacity ──

func TestCapacityEviction(t *testing.T) {
	const capacity = 5
	const extra = 3

	s := New(capacity)
	for i := 0; i < capacity+extra; i++ {
		s.Checkpoint(docWithNodes(i))
	}

	if s.Len() != capacity {
		t.Fatalf("expected %d entries, got %d", capacity, s.Len())
	}

	// Undo must succeed exactly capacity-1 times, bottoming out at the
	// oldest surviving state.
	undos := 0
	var last *board.Document
	for {
		d, ok := s.Undo()
		if !ok {
			break
		}
		last = d
		undos++
	}
	if undos != capacity-1 {
		t.Errorf("expected %d undos, got %d", capacity-1, undos)
	}
	if len(last.Nodes()) != extra {
		t.Errorf("oldest surviving snapshot should have %d nodes, got %d", extra, len(last.Nodes()))
	}
}

// ── Snapshot isolation ──

func TestSnapshotsAreIsolated(t *testing.T) {
	s := New(DefaultCapacity)
	d := docWithNodes(1)
	s.Checkpoint(d)

	// Mutating the live document (even through the clone-on-write API)
	// must not change what the stack returns.
	id := d.Nodes()[0].ID
	_ = d.RelabelNode(id, "changed")

	s.Checkpoint(docWithNodes(2))
	got, _ := s.Undo()
	if got.Nodes()[0].Label != "node 0" {
		t.Errorf("snapshot leaked a later mutation: %q", got.Nodes()[0].Label)
	}
}

func TestMinimumCapacity(t *testing.T) {
	s := New(0)
	s.Checkpoint(docWithNodes(0))
	s.Checkpoint(docWithNodes(1))
	if !s.CanUndo() {
		t.Error("a stack must always keep enough states for one undo")
	}
}
