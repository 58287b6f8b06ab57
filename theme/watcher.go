package theme

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/MikeBiancalana/bullet/internal/logger"
	"github.com/fsnotify/fsnotify"
)

// Watcher watches a theme file and delivers reloaded themes as the file
// changes. Writes are debounced, since editors often produce several
// events per save. A write that fails to parse is logged and skipped; the
// previously delivered theme stays in effect.
type Watcher struct {
	watcher       *fsnotify.Watcher
	path          string
	themes        chan *Theme
	done          chan struct{}
	debounceTimer *time.Timer
}

// Watch starts watching the theme file at path.
//
// The file's directory is watched rather than the file itself, so
// rename-and-replace saves keep working.
func Watch(path string) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	w := &Watcher{
		watcher: fsWatcher,
		path:    filepath.Clean(path),
		themes:  make(chan *Theme, 1),
		done:    make(chan struct{}),
	}

	if err := fsWatcher.Add(filepath.Dir(w.path)); err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("failed to watch theme directory: %w", err)
	}

	go w.watch()
	return w, nil
}

// Themes returns the channel on which reloaded themes are delivered.
func (w *Watcher) Themes() <-chan *Theme {
	return w.themes
}

// Stop stops the watcher and closes the themes channel.
func (w *Watcher) Stop() {
	close(w.done)
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.watcher.Close()
	close(w.themes)
}

func (w *Watcher) watch() {
	const debounceDelay = 100 * time.Millisecond

	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if w.debounceTimer != nil {
				w.debounceTimer.Stop()
			}
			w.debounceTimer = time.AfterFunc(debounceDelay, w.reload)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("theme watcher error", "error", err)
		}
	}
}

func (w *Watcher) reload() {
	t, err := Load(w.path)
	if err != nil {
		logger.Warn("skipping unparseable theme", "path", w.path, "error", err)
		return
	}

	// Replace any undelivered theme with the fresh one.
	select {
	case <-w.themes:
	default:
	}
	select {
	case w.themes <- t:
	case <-w.done:
	}
}
