package editor

import (
	"context"
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"

	"lifemap/internal/persist"
	"lifemap/internal/session"
	"lifemap/pkg/board"
)

// sessionsMsg delivers the session list for the backlog panel.
type sessionsMsg struct {
	entities []board.Entity
	err      error
}

// boardChangedMsg signals an external change to the board file.
type boardChangedMsg struct{}

// savedMsg reports the outcome of a save.
type savedMsg struct{ err error }

func loadSessionsCmd(store *session.Store) tea.Cmd {
	return func() tea.Msg {
		ents, err := store.Entities(context.Background())
		return sessionsMsg{entities: ents, err: err}
	}
}

func watchCmd(w *persist.Watcher) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-w.Events(); !ok {
			return nil
		}
		return boardChangedMsg{}
	}
}

func saveCmd(path string, doc *board.Document) tea.Cmd {
	return func() tea.Msg {
		return savedMsg{err: persist.Save(path, doc)}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.editOpen {
			return m.handleEditKeys(msg)
		}
		return m.handleKeys(msg)

	case tea.MouseMsg:
		if m.editOpen {
			return m, nil
		}
		return m.handleMouse(msg)

	case sessionsMsg:
		if msg.err != nil {
			slog.Error("loading sessions failed", "error", msg.err)
			m.status = "backlog unavailable"
			return m, nil
		}
		m.sessions = msg.entities
		return m, nil

	case boardChangedMsg:
		// External edit. An unsaved in-editor state wins; otherwise
		// reload from disk and rebase the history on it.
		var cmd tea.Cmd
		if m.watcher != nil {
			cmd = watchCmd(m.watcher)
		}
		if m.dirty {
			m.status = "board changed on disk (unsaved edits kept)"
			return m, cmd
		}
		doc, err := persist.Load(m.boardPath)
		if err != nil {
			slog.Error("reloading board failed", "error", err)
			m.status = "reload failed"
			return m, cmd
		}
		doc.Viewport = m.doc.Viewport
		m.doc = doc
		m.checkpoint()
		m.selection = nil
		m.gesture = gesture{kind: gestureIdle}
		m.status = "reloaded from disk"
		return m, cmd

	case savedMsg:
		if msg.err != nil {
			slog.Error("saving board failed", "error", msg.err, "path", m.boardPath)
			m.status = fmt.Sprintf("save failed: %v", msg.err)
			return m, nil
		}
		m.dirty = false
		m.status = "saved"
		return m, nil
	}

	return m, nil
}
