// Package session stores focus-session records in a local SQLite
// database. The editor never touches this package's persistence
// directly; it reads sessions as board.Entity values for the backlog
// panel.
package session

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"lifemap/pkg/board"
)

// Session is one recorded focus session.
type Session struct {
	ID        string
	Title     string
	StartedAt time.Time
	Minutes   int
	Tag       string
}

// Entity converts the session to the board's external-record shape.
func (s Session) Entity() board.Entity {
	return board.Entity{ID: s.ID, Title: s.Title}
}

// Store wraps the sessions database.
type Store struct {
	db   *sql.DB
	path string
}

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	title      TEXT    NOT NULL,
	started_at INTEGER NOT NULL,
	minutes    INTEGER NOT NULL DEFAULT 0,
	tag        TEXT    NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_sessions_started_at ON sessions(started_at);
`

// Open opens (creating if needed) the database at path and applies the
// schema.
func Open(ctx context.Context, path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create session db dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open session db: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate session db: %w", err)
	}
	slog.Debug("session store opened", "path", path)
	return &Store{db: db, path: path}, nil
}

// Close releases the database handle.
func (s *Store) Close() error { return s.db.Close() }

// Add inserts a session and returns its assigned id.
func (s *Store) Add(ctx context.Context, sess Session) (string, error) {
	if sess.StartedAt.IsZero() {
		sess.StartedAt = time.Now()
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO sessions (title, started_at, minutes, tag) VALUES (?, ?, ?, ?)`,
		sess.Title, sess.StartedAt.Unix(), sess.Minutes, sess.Tag)
	if err != nil {
		return "", fmt.Errorf("insert session: %w", err)
	}
	rowID, err := res.LastInsertId()
	if err != nil {
		return "", fmt.Errorf("session id: %w", err)
	}
	return fmt.Sprintf("s%d", rowID), nil
}

// List returns all sessions, newest first.
func (s *Store) List(ctx context.Context) ([]Session, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, started_at, minutes, tag FROM sessions ORDER BY started_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var out []Session
	for rows.Next() {
		var (
			rowID   int64
			sess    Session
			started int64
		)
		if err := rows.Scan(&rowID, &sess.Title, &started, &sess.Minutes, &sess.Tag); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		sess.ID = fmt.Sprintf("s%d", rowID)
		sess.StartedAt = time.Unix(started, 0)
		out = append(out, sess)
	}
	return out, rows.Err()
}

// Entities returns all sessions as board entities, newest first.
func (s *Store) Entities(ctx context.Context) ([]board.Entity, error) {
	sessions, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]board.Entity, len(sessions))
	for i, sess := range sessions {
		out[i] = sess.Entity()
	}
	return out, nil
}
