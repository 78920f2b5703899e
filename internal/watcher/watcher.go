// Package watcher reports changes to a single file made by other programs.
package watcher

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/bethropolis/glyphpaint/internal/logger"
	"github.com/fsnotify/fsnotify"
)

// ErrClosed is returned by operations on a closed Watcher.
var ErrClosed = errors.New("watcher is closed")

// EventType represents the kind of change seen.
type EventType string

const (
	EventCreate EventType = "create"
	EventModify EventType = "modify"
	EventDelete EventType = "delete"
	EventRename EventType = "rename"
)

// Event is delivered to the callback after the debounce delay.
type Event struct {
	Path string
	Type EventType
}

// Watcher watches one file. It watches the containing directory, so editors
// and savers that replace the file by renaming over it are still seen.
type Watcher struct {
	path     string
	name     string
	debounce time.Duration
	callback func(Event)
	watcher  *fsnotify.Watcher
	done     chan struct{}
	wg       sync.WaitGroup

	mu      sync.Mutex
	started bool
	closed  bool
	timer   *time.Timer
}

// New creates a Watcher for path. The callback runs on its own goroutine
// once no further events have arrived for debounce.
func New(path string, debounce time.Duration, callback func(Event)) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch path %s: %w", path, err)
	}
	return &Watcher{
		path:     abs,
		name:     filepath.Base(abs),
		debounce: debounce,
		callback: callback,
		watcher:  fw,
		done:     make(chan struct{}),
	}, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string { return w.path }

// Start starts delivering events.
func (w *Watcher) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrClosed
	}
	if w.started {
		return fmt.Errorf("watcher already started")
	}
	w.started = true

	w.wg.Add(1)
	go w.watch()
	logger.DebugTagf("watcher", "Watcher: watching %s", w.path)
	return nil
}

// Close stops watching. Pending debounced events are dropped.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	close(w.done)
	w.mu.Unlock()

	err := w.watcher.Close()
	w.wg.Wait()
	return err
}

func (w *Watcher) watch() {
	defer w.wg.Done()
	for {
		select {
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(ev)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Warnf("Watcher: %s: %v", w.path, err)

		case <-w.done:
			return
		}
	}
}

func (w *Watcher) handleEvent(ev fsnotify.Event) {
	if filepath.Base(ev.Name) != w.name {
		return
	}

	var typ EventType
	switch {
	case ev.Has(fsnotify.Create):
		typ = EventCreate
	case ev.Has(fsnotify.Write):
		typ = EventModify
	case ev.Has(fsnotify.Remove):
		typ = EventDelete
	case ev.Has(fsnotify.Rename):
		typ = EventRename
	default:
		return
	}
	w.debounceEvent(Event{Path: w.path, Type: typ})
}

// debounceEvent restarts the delay; only the latest event is delivered.
func (w *Watcher) debounceEvent(e Event) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		if w.closed {
			w.mu.Unlock()
			return
		}
		w.timer = nil
		w.mu.Unlock()

		logger.DebugTagf("watcher", "Watcher: %s %s", e.Type, e.Path)
		w.callback(e)
	})
}
