// ABOUTME: Polling mtime watcher used to hot-reload roster files
// ABOUTME: Poll is synchronous so an event loop can drive it from its own ticks

package config

import (
	"os"
	"sync"
	"time"
)

// Watcher reports when any of a fixed set of files is created, modified or
// removed. It is safe for concurrent use.
type Watcher struct {
	mu     sync.Mutex
	paths  []string
	mtimes map[string]time.Time
}

// NewWatcher records the current state of paths; the first Poll reports
// changes relative to it.
func NewWatcher(paths []string) *Watcher {
	w := &Watcher{
		paths:  append([]string(nil), paths...),
		mtimes: make(map[string]time.Time, len(paths)),
	}
	w.snapshotLocked()
	return w
}

// Paths returns the watched files.
func (w *Watcher) Paths() []string {
	return append([]string(nil), w.paths...)
}

// Poll reports whether anything changed since the previous Poll.
func (w *Watcher) Poll() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.changedLocked() {
		return false
	}
	w.snapshotLocked()
	return true
}

func (w *Watcher) changedLocked() bool {
	for _, path := range w.paths {
		info, err := os.Stat(path)
		prev, existed := w.mtimes[path]
		if err != nil {
			if existed {
				return true
			}
			continue
		}
		if !existed || !info.ModTime().Equal(prev) {
			return true
		}
	}
	return false
}

func (w *Watcher) snapshotLocked() {
	for _, path := range w.paths {
		info, err := os.Stat(path)
		if err != nil {
			delete(w.mtimes, path)
			continue
		}
		w.mtimes[path] = info.ModTime()
	}
}
