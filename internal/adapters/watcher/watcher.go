package watcher

import (
	"context"
	"fmt"
	"iter"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.stellium.dev/stellium/internal/core/ports"
)

var _ ports.Watcher = (*Watcher)(nil)

const eventChannelBuffer = 16

// Watcher reports changes to a single configuration file using fsnotify.
// It watches the file's parent directory rather than the file itself, so
// editors that save by rename-and-replace keep being observed, and it
// debounces the save burst into one event.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	target    string
	debouncer *Debouncer
	flushed   chan string
	events    chan ports.WatchEvent
}

// NewWatcher creates a new configuration file watcher.
func NewWatcher() (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		fsWatcher: fsWatcher,
		flushed:   make(chan string, 1),
		events:    make(chan ports.WatchEvent, eventChannelBuffer),
	}, nil
}

// Start begins watching the directory containing the given file.
func (w *Watcher) Start(ctx context.Context, path string) error {
	target, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	w.target = target
	w.debouncer = NewDebouncer(DefaultDebounceWindow, w.enqueue)

	if err := w.fsWatcher.Add(filepath.Dir(target)); err != nil {
		return err
	}

	go w.processEvents(ctx)

	return nil
}

// Stop stops the watcher and releases all resources.
func (w *Watcher) Stop() error {
	return w.fsWatcher.Close()
}

// Events returns an iterator of debounced change events. The iterator
// ends when the watcher stops or its context is canceled.
func (w *Watcher) Events() iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for event := range w.events {
			if !yield(event) {
				return
			}
		}
	}
}

// enqueue is the debouncer callback. It hands coalesced paths to the
// event loop without blocking: with a delivery already pending, another
// is redundant because every event names the same file.
func (w *Watcher) enqueue(paths []string) {
	for _, path := range paths {
		select {
		case w.flushed <- path:
		default:
		}
	}
}

// processEvents filters raw fsnotify events down to the target file and
// forwards debounced changes. It is the only writer of w.events, so the
// channel closes exactly once, here.
func (w *Watcher) processEvents(ctx context.Context) {
	defer close(w.events)

	for {
		select {
		case <-ctx.Done():
			return
		case path := <-w.flushed:
			select {
			case w.events <- ports.WatchEvent{Path: path}:
			case <-ctx.Done():
				return
			}
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if w.relevant(event) {
				w.debouncer.Add(w.target)
			}
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			fmt.Fprintf(os.Stderr, "watcher: file system error: %v\n", err)
		}
	}
}

// relevant reports whether an event concerns the watched file. Remove
// and rename count: a vanished configuration changes the effective
// defaults just as an edit does.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.target {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0
}
