// Package history keeps a bounded stack of board snapshots with a
// cursor for undo/redo. Checkpoints are taken only at the end of
// discrete actions — one per drag gesture, never per pointer-move —
// so the stack holds meaningful states, not animation frames.
package history

import "lifemap/pkg/board"

// DefaultCapacity is the number of snapshots kept when no capacity is
// configured.
const DefaultCapacity = 50

// Stack is a bounded undo/redo stack. Not safe for concurrent use;
// the editor drives it from the single event loop.
type Stack struct {
	entries []*board.Document
	cursor  int // index of the current state; -1 when empty
	cap     int
}

// New returns an empty stack. Capacities below 2 are raised to 2 so
// undo is always possible once two states exist.
func New(capacity int) *Stack {
	if capacity < 2 {
		capacity = 2
	}
	return &Stack{cursor: -1, cap: capacity}
}

// Checkpoint records doc as the new current state. Any redo states
// above the cursor are discarded first. When the stack is full the
// oldest entry is evicted, which makes that state permanently
// unreachable by undo.
func (s *Stack) Checkpoint(doc *board.Document) {
	s.entries = s.entries[:s.cursor+1]
	s.entries = append(s.entries, doc.Clone())
	s.cursor++
	if len(s.entries) > s.cap {
		s.entries = s.entries[1:]
		s.cursor--
	}
}

// Undo steps the cursor back and returns that state, or (nil, false)
// at the bottom of the stack.
func (s *Stack) Undo() (*board.Document, bool) {
	if s.cursor <= 0 {
		return nil, false
	}
	s.cursor--
	return s.entries[s.cursor].Clone(), true
}

// Redo steps the cursor forward and returns that state, or
// (nil, false) at the top.
func (s *Stack) Redo() (*board.Document, bool) {
	if s.cursor >= len(s.entries)-1 {
		return nil, false
	}
	s.cursor++
	return s.entries[s.cursor].Clone(), true
}

// CanUndo reports whether Undo would succeed.
func (s *Stack) CanUndo() bool { return s.cursor > 0 }

// CanRedo reports whether Redo would succeed.
func (s *Stack) CanRedo() bool { return s.cursor < len(s.entries)-1 }

// Len returns the number of stored snapshots.
func (s *Stack) Len() int { return len(s.entries) }

// Cursor returns the current cursor index.
func (s *Stack) Cursor() int { return s.cursor }
