// Package editor is the board editor TUI: a bubbletea model wiring the
// gesture state machine, the board document, the undo/redo stack, and
// the backlog of unplaced sessions into one canvas.
package editor

import (
	"image"
	"time"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"lifemap/internal/config"
	"lifemap/internal/persist"
	"lifemap/internal/session"
	"lifemap/pkg/align"
	"lifemap/pkg/board"
	"lifemap/pkg/history"
)

// doubleClickWindow bounds how far apart two clicks on the same cell
// may be and still count as a double-click.
const doubleClickWindow = 400 * time.Millisecond

// Model is the editor state. All mutation happens in Update; View
// derives layers from this struct and owns nothing.
type Model struct {
	width, height  int
	mouseX, mouseY int

	cfg       config.EditorConfig
	boardPath string

	doc  *board.Document
	hist *history.Stack

	gesture   gesture
	snap      align.Result
	selection []string

	// Backlog panel state. sessions is the full session list; the
	// panel shows doc.Unmapped(sessions).
	store       *session.Store
	sessions    []board.Entity
	showBacklog bool
	backlogIdx  int

	watcher *persist.Watcher

	// Relabel/recolor/icon modal.
	editOpen   bool
	editNodeID string
	editLabel  textinput.Model
	editColor  textinput.Model
	editIcon   textinput.Model
	editFocus  int // 0=label, 1=color, 2=icon

	status string
	dirty  bool

	lastClickAt   time.Time
	lastClickCell image.Point
}

// Options carries the editor's collaborators. Store and Watcher may be
// nil (the backlog panel stays empty, external edits go unnoticed).
type Options struct {
	Config    config.EditorConfig
	BoardPath string
	Store     *session.Store
	Watcher   *persist.Watcher
}

// New builds the editor around an already-loaded document.
func New(doc *board.Document, opts Options) Model {
	m := Model{
		cfg:       opts.Config,
		boardPath: opts.BoardPath,
		doc:       doc,
		hist:      history.New(opts.Config.HistoryCapacity),
		store:     opts.Store,
		watcher:   opts.Watcher,
		status:    "ready",
	}
	// The opening state is the undo floor.
	m.hist.Checkpoint(m.doc)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	if m.store != nil {
		cmds = append(cmds, loadSessionsCmd(m.store))
	}
	if m.watcher != nil {
		cmds = append(cmds, watchCmd(m.watcher))
	}
	return tea.Batch(cmds...)
}

// Doc exposes the current document, mainly for tests.
func (m Model) Doc() *board.Document { return m.doc }

// checkpoint records the current document on the undo stack.
func (m *Model) checkpoint() {
	m.hist.Checkpoint(m.doc)
}

// applyMutation swaps in a mutated document and checkpoints, unless
// the operation was a no-op (same pointer back).
func (m *Model) applyMutation(next *board.Document) bool {
	if next == m.doc {
		return false
	}
	m.doc = next
	m.checkpoint()
	m.dirty = true
	return true
}

// selected reports whether the node id is in the current selection.
func (m Model) selected(id string) bool {
	for _, s := range m.selection {
		if s == id {
			return true
		}
	}
	return false
}

// unmapped returns the backlog: sessions with no node on the board.
func (m Model) unmapped() []board.Entity {
	return m.doc.Unmapped(m.sessions)
}
