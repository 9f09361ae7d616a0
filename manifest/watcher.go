package manifest

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/teranos/stencil/config"
	"github.com/teranos/stencil/errors"
	"github.com/teranos/stencil/logger"
)

// Watcher watches a directory for manifest changes and reports each changed
// file once its events have settled.
type Watcher struct {
	dir            string
	watcher        *fsnotify.Watcher
	debouncePeriod time.Duration

	mu     sync.Mutex
	timers map[string]*time.Timer
	done   chan struct{}
}

// NewWatcher starts watching dir. A debounce of 0 reports every event.
func NewWatcher(dir string, debounce time.Duration) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}

	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, errors.Wrapf(err, "failed to watch manifest directory %s", dir)
	}

	return &Watcher{
		dir:            dir,
		watcher:        fw,
		debouncePeriod: debounce,
		timers:         make(map[string]*time.Timer),
		done:           make(chan struct{}),
	}, nil
}

// Run delivers changed manifest paths to onChange until ctx is done. onChange
// always runs on the calling goroutine, one path at a time. Run may be
// called once per Watcher.
func (w *Watcher) Run(ctx context.Context, onChange func(path string)) error {
	log := logger.ChildLogger(logger.ComponentLogger("manifest.watch"), logger.FieldPath, w.dir)
	fired := make(chan string)
	defer w.stopTimers()
	defer close(w.done)

	for {
		select {
		case <-ctx.Done():
			return nil

		case path := <-fired:
			onChange(path)

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if !IsManifestFile(event.Name) {
				continue
			}

			log.Debugw("Manifest change detected",
				logger.FieldManifest, event.Name,
				logger.FieldOperation, event.Op.String())
			w.schedule(ctx, event.Name, fired)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			log.Warnw("Manifest watcher error", logger.FieldError, err)
		}
	}
}

// schedule restarts the debounce timer for path. A timer firing after Run
// has returned drops its path.
func (w *Watcher) schedule(ctx context.Context, path string, fired chan<- string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if t, ok := w.timers[path]; ok {
		t.Stop()
	}

	var timer *time.Timer
	timer = time.AfterFunc(w.debouncePeriod, func() {
		select {
		case fired <- path:
		case <-ctx.Done():
		case <-w.done:
		}

		w.mu.Lock()
		if w.timers[path] == timer {
			delete(w.timers, path)
		}
		w.mu.Unlock()
	})
	w.timers[path] = timer
}

func (w *Watcher) stopTimers() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for path, t := range w.timers {
		t.Stop()
		delete(w.timers, path)
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

// IsManifestFile reports whether path looks like a manifest: a .toml, .yaml
// or .yml file that is not hidden, an editor backup or the project config.
func IsManifestFile(path string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") || strings.HasSuffix(base, "~") || base == config.ProjectFileName {
		return false
	}
	_, err := DetectFormat(base)
	return err == nil
}
