// Package app provides the main application structure and coordination.
package app

import (
	"errors"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/dshills/picoterm/internal/renderer/backend"
)

// ErrWatcherClosed is returned when using a closed watcher.
var ErrWatcherClosed = errors.New("watcher closed")

// Poster queues events for the event loop. backend.Backend satisfies it.
type Poster interface {
	PostEvent(event backend.Event) error
}

// ChangeDetector tells external writes from the editor's own saves.
// filestore.Store satisfies it.
type ChangeDetector interface {
	Changed(path string) (bool, error)
	Acknowledge(path string) error
}

// DiskChange is the payload of the interrupt event posted when the open
// file changes on disk.
type DiskChange struct {
	Path string
}

// DiskWatcher watches the open file and posts a DiskChange interrupt when
// another program writes it. The parent directory is watched so files
// replaced by rename are still seen.
type DiskWatcher struct {
	mu sync.Mutex

	watcher *fsnotify.Watcher
	poster  Poster
	store   ChangeDetector
	logger  *Logger

	path string // as opened, reported in DiskChange
	abs  string // absolute form, matched against fsnotify names
	dir  string // watched directory

	closed   bool
	closeCh  chan struct{}
	closedWg sync.WaitGroup
}

// NewDiskWatcher creates a watcher posting to poster. Nothing is watched
// until Watch is called.
func NewDiskWatcher(poster Poster, store ChangeDetector, logger *Logger) (*DiskWatcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, NewOperationError("watch", "", err)
	}
	if logger == nil {
		logger = NullLogger
	}

	w := &DiskWatcher{
		watcher: fsw,
		poster:  poster,
		store:   store,
		logger:  logger.WithComponent("watcher"),
		closeCh: make(chan struct{}),
	}

	w.closedWg.Add(1)
	go w.processLoop()

	return w, nil
}

// Watch switches the watcher to path. Watching the file already watched
// only updates the reported path.
func (w *DiskWatcher) Watch(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return NewOperationError("watch", path, err)
	}
	dir := filepath.Dir(abs)

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWatcherClosed
	}
	if abs == w.abs {
		w.path = path
		return nil
	}

	if dir != w.dir {
		if w.dir != "" {
			_ = w.watcher.Remove(w.dir)
			w.dir = ""
		}
		if err := w.watcher.Add(dir); err != nil {
			return NewOperationError("watch", path, err)
		}
		w.dir = dir
	}

	w.path = path
	w.abs = abs
	w.logger.Debug("watching %s", abs)
	return nil
}

// Path returns the watched file as passed to Watch.
func (w *DiskWatcher) Path() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.path
}

// Close stops the watcher.
func (w *DiskWatcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.closeCh)
	w.mu.Unlock()

	w.closedWg.Wait()
	return w.watcher.Close()
}

// processLoop handles incoming fsnotify events.
func (w *DiskWatcher) processLoop() {
	defer w.closedWg.Done()

	for {
		select {
		case <-w.closeCh:
			return

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleFSEvent(ev)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("fsnotify: %v", err)
		}
	}
}

// handleFSEvent posts a DiskChange for writes to the watched file that
// the store did not make itself.
func (w *DiskWatcher) handleFSEvent(ev fsnotify.Event) {
	if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) {
		return
	}

	w.mu.Lock()
	path, abs := w.path, w.abs
	w.mu.Unlock()

	if abs == "" || filepath.Clean(ev.Name) != abs {
		return
	}

	changed, err := w.store.Changed(path)
	if err != nil {
		w.logger.Debug("change check %s: %v", path, err)
		return
	}
	if !changed {
		return
	}
	if err := w.store.Acknowledge(path); err != nil {
		w.logger.Debug("acknowledge %s: %v", path, err)
	}

	if err := w.poster.PostEvent(backend.Event{Type: backend.EventInterrupt, Data: DiskChange{Path: path}}); err != nil {
		w.logger.Warn("post disk change for %s: %v", path, err)
	}
}
