package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"lifemap/internal/config"
	"lifemap/internal/editor"
	"lifemap/internal/persist"
	"lifemap/internal/session"
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the board editor",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		closeLog, err := setupLogging()
		if err != nil {
			return err
		}
		defer closeLog()

		doc, err := persist.Load(cfg.Paths.Board)
		if err != nil {
			return fmt.Errorf("load board: %w", err)
		}

		store, err := session.Open(context.Background(), cfg.Paths.SessionDB)
		if err != nil {
			return fmt.Errorf("open session store: %w", err)
		}
		defer store.Close()

		// The watcher needs the board's directory to exist; save once
		// up front so a first run creates it.
		if _, err := os.Stat(cfg.Paths.Board); os.IsNotExist(err) {
			if err := persist.Save(cfg.Paths.Board, doc); err != nil {
				return fmt.Errorf("init board: %w", err)
			}
		}
		watcher, err := persist.Watch(cfg.Paths.Board)
		if err != nil {
			slog.Warn("board watcher unavailable", "error", err)
			watcher = nil
		} else {
			defer watcher.Close()
		}

		m := editor.New(doc, editor.Options{
			Config:    cfg.Editor,
			BoardPath: cfg.Paths.Board,
			Store:     store,
			Watcher:   watcher,
		})
		_, err = tea.NewProgram(m).Run()
		return err
	},
}

// setupLogging sends slog to a file in the state directory; the
// terminal belongs to the editor.
func setupLogging() (func(), error) {
	dir := config.StateDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(dir, "lifemap.log"),
		os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(f, nil)))
	return func() { f.Close() }, nil
}
