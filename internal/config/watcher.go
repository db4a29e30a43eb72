package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bnema/tvmenu/internal/logging"
)

const defaultDebounce = 200 * time.Millisecond

// Watcher reports changes to config files and entry directories.
// It is used by "tvmenu check --watch"; a running menu never reloads.
type Watcher struct {
	watcher  *fsnotify.Watcher
	debounce time.Duration
	watched  []string
}

// NewWatcher watches every existing path. Files are watched through their parent
// directory so editors that replace files on save are still seen.
func NewWatcher(paths []string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	w := &Watcher{watcher: fw, debounce: defaultDebounce}

	seen := make(map[string]bool)
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			continue
		}
		dir := p
		if !info.IsDir() {
			dir = filepath.Dir(p)
		}
		if seen[dir] {
			continue
		}
		seen[dir] = true
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		w.watched = append(w.watched, dir)
	}
	return w, nil
}

// Watched returns the directories being watched.
func (w *Watcher) Watched() []string {
	return w.watched
}

// Run calls onChange once per burst of filesystem events until ctx is done.
func (w *Watcher) Run(ctx context.Context, onChange func()) error {
	log := logging.FromContext(ctx)
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil
		case e, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if e.Op == fsnotify.Chmod {
				continue
			}
			log.Debug().Str("op", e.Op.String()).Str("file", e.Name).Msg("fsnotify change detected")
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Msg("watcher error")
		case <-fire:
			fire = nil
			onChange()
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
