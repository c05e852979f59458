// Package persist reads and writes the board document on disk and
// watches it for external changes. Writes are atomic (temp file +
// rename) so a failed save never truncates the previous document.
package persist

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"lifemap/pkg/board"
)

// Load reads the board document at path. A missing file yields the
// default starter board, not an error.
func Load(path string) (*board.Document, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		slog.Info("no board file, starting from the default board", "path", path)
		return board.Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read board: %w", err)
	}
	doc, err := board.Import(data)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return doc, nil
}

// Save writes the document to path atomically.
func Save(path string, doc *board.Document) error {
	data, err := doc.Export()
	if err != nil {
		return fmt.Errorf("export board: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create board dir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".board-*.json")
	if err != nil {
		return fmt.Errorf("create temp board file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write board: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close board file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace board file: %w", err)
	}
	slog.Debug("board saved", "path", path, "bytes", len(data))
	return nil
}
