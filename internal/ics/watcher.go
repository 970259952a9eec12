package ics

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads the events file when it changes on disk. Editors often
// produce bursts of writes, so changes are debounced before onChange
// fires.
type Watcher struct {
	watcher  *fsnotify.Watcher
	path     string
	onChange func(string)
	mu       sync.Mutex
	pending  *time.Timer
	done     chan struct{}
}

// NewWatcher watches path and calls onChange (with the watched path) after
// each settled write.
func NewWatcher(path string, onChange func(string)) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(absPath); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		watcher:  fsw,
		path:     absPath,
		onChange: onChange,
		done:     make(chan struct{}),
	}

	go w.watch()
	return w, nil
}

func (w *Watcher) watch() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			w.mu.Lock()
			if w.pending != nil {
				w.pending.Stop()
			}
			w.pending = time.AfterFunc(100*time.Millisecond, func() {
				if w.onChange != nil {
					w.onChange(w.path)
				}
			})
			w.mu.Unlock()

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Keep watching; a transient error should not stop reloads

		case <-w.done:
			return
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	w.mu.Lock()
	if w.pending != nil {
		w.pending.Stop()
	}
	w.mu.Unlock()
	return w.watcher.Close()
}
