// Package watch observes the files that back the association list (the
// LaunchServices preferences plist and the extension registry) and fires a
// callback when either changes, so the CLI can refresh its view without
// polling on a fixed interval.
package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher debounces filesystem events on a set of files and invokes a
// callback once per burst of changes.
type Watcher struct {
	paths    []string
	debounce time.Duration
	watcher  *fsnotify.Watcher
}

// New creates a Watcher over the given files. The files do not need to
// exist yet; their parent directories are watched so creation is seen.
func New(debounce time.Duration, paths ...string) (*Watcher, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("no paths to watch")
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}

	return &Watcher{
		paths:    paths,
		debounce: debounce,
		watcher:  fw,
	}, nil
}

// Run watches until the context is cancelled. onChange is called after each
// debounced burst of events on any watched file; onError is called for
// watcher errors and may be nil. Run blocks.
func (w *Watcher) Run(ctx context.Context, onChange func(), onError func(error)) error {
	defer w.watcher.Close()

	if err := w.addTargets(); err != nil {
		return err
	}

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher closed")
			}
			if !w.relevant(event) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				fire = timer.C
			} else {
				if !timer.Stop() {
					<-timer.C
				}
				timer.Reset(w.debounce)
			}
		case <-fire:
			timer = nil
			fire = nil
			onChange()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher closed")
			}
			if onError != nil {
				onError(err)
			}
		}
	}
}

// addTargets registers each watched file's parent directory. Watching the
// directory rather than the file survives atomic replace-on-save, which is
// how both cfprefsd and the registry write.
func (w *Watcher) addTargets() error {
	seen := make(map[string]bool)
	for _, p := range w.paths {
		dir := filepath.Dir(p)
		if seen[dir] {
			continue
		}
		seen[dir] = true

		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating watch directory: %w", err)
		}
		if err := w.watcher.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
	}
	return nil
}

// relevant reports whether an event touches one of the watched files.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
		return false
	}
	for _, p := range w.paths {
		if event.Name == p {
			return true
		}
	}
	return false
}
