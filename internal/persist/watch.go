package persist

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounce collapses the bursts of events editors and atomic renames
// produce into a single reload signal.
const debounce = 200 * time.Millisecond

// Watcher signals when the board file changes on disk outside the
// editor, so an open editor can offer a reload. The file's directory
// is watched rather than the file itself: atomic saves replace the
// inode, which would silently detach a direct file watch.
type Watcher struct {
	fsw    *fsnotify.Watcher
	path   string
	events chan struct{}
	done   chan struct{}
}

// Watch starts watching the board file at path.
func Watch(path string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}

	w := &Watcher{
		fsw:    fsw,
		path:   filepath.Clean(path),
		events: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Events delivers one signal per burst of changes to the board file.
func (w *Watcher) Events() <-chan struct{} { return w.events }

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fsw.Close()
}

func (w *Watcher) loop() {
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-w.done:
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) && !ev.Op.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounce)
				fire = timer.C
			} else {
				timer.Reset(debounce)
			}

		case <-fire:
			timer = nil
			fire = nil
			select {
			case w.events <- struct{}{}:
			default: // a signal is already pending
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			slog.Warn("board watcher error", "error", err)
		}
	}
}
