// Package watcher reports external changes to a single file.
//
// The watcher monitors the file's parent directory rather than the file
// itself: editors and build tools often replace files wholesale (write
// to a temporary name, rename over the original), which silently drops
// an inode watch on the file while a directory watch survives.
//
// Events are delivered on a buffered channel. The editor's main loop
// drains it without blocking once per iteration via Poll; the watcher
// never touches editor state itself.
package watcher

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Op identifies the kind of change observed on the watched file.
type Op uint8

const (
	// OpWrite indicates the file was written to.
	OpWrite Op = 1 << iota
	// OpCreate indicates the file was created, including rename-over.
	OpCreate
	// OpRemove indicates the file was removed.
	OpRemove
	// OpRename indicates the file was renamed away.
	OpRename
)

// String returns a human-readable representation of the operation.
func (op Op) String() string {
	switch op {
	case OpWrite:
		return "WRITE"
	case OpCreate:
		return "CREATE"
	case OpRemove:
		return "REMOVE"
	case OpRename:
		return "RENAME"
	default:
		return "UNKNOWN"
	}
}

// Has returns true if the operation includes the given op.
func (op Op) Has(o Op) bool {
	return op&o == o
}

// Event is a change observed on the watched file.
type Event struct {
	// Path is the absolute path of the watched file.
	Path string

	// Op is the operation that occurred.
	Op Op

	// Timestamp is when the event was observed.
	Timestamp time.Time
}

// Watcher watches one file for external changes.
type Watcher struct {
	fsw    *fsnotify.Watcher
	target string

	events chan Event
	errs   chan error

	done      chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// New starts watching the file at path. The file itself need not exist
// yet; its directory must.
func New(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		fsw:    fsw,
		target: abs,
		events: make(chan Event, 16),
		errs:   make(chan error, 4),
		done:   make(chan struct{}),
	}
	w.wg.Add(1)
	go w.forward()
	return w, nil
}

// Target returns the absolute path being watched.
func (w *Watcher) Target() string {
	return w.target
}

// Events returns the event channel. It is closed by Close.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Errors returns the channel of watcher errors. It is closed by Close.
func (w *Watcher) Errors() <-chan error {
	return w.errs
}

// Poll returns the next pending event without blocking. It reports false
// when no event is pending or the watcher is closed.
func (w *Watcher) Poll() (Event, bool) {
	select {
	case ev, ok := <-w.events:
		if !ok {
			return Event{}, false
		}
		return ev, true
	default:
		return Event{}, false
	}
}

// Close stops the watcher and closes its channels. Further calls are
// no-ops.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.fsw.Close()
		w.wg.Wait()
		close(w.events)
		close(w.errs)
	})
	return err
}

// forward filters raw directory events down to the target path.
func (w *Watcher) forward() {
	defer w.wg.Done()

	for {
		select {
		case <-w.done:
			return

		case fsEvent, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handle(fsEvent)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			select {
			case w.errs <- err:
			default:
			}
		}
	}
}

func (w *Watcher) handle(fsEvent fsnotify.Event) {
	if filepath.Clean(fsEvent.Name) != w.target {
		return
	}
	op := convertOp(fsEvent.Op)
	if op == 0 {
		return
	}

	ev := Event{Path: w.target, Op: op, Timestamp: time.Now()}
	select {
	case w.events <- ev:
	default:
		// Queue full. Any queued event already triggers the same
		// on-disk recheck, so later ones coalesce into it.
	}
}

// convertOp maps fsnotify operations onto watcher ops, dropping chmod.
func convertOp(fsOp fsnotify.Op) Op {
	var op Op
	if fsOp.Has(fsnotify.Write) {
		op |= OpWrite
	}
	if fsOp.Has(fsnotify.Create) {
		op |= OpCreate
	}
	if fsOp.Has(fsnotify.Remove) {
		op |= OpRemove
	}
	if fsOp.Has(fsnotify.Rename) {
		op |= OpRename
	}
	return op
}
