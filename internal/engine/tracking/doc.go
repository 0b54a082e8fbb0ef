// Package tracking records which buffer rows are stale and turns them into
// the minimal render diff.
//
// Edit operations mark rows as they mutate the buffer: a single row for an
// in-line edit, a range to the end of the buffer for a split or join (every
// following row's screen position shifts), and a full redraw when the
// viewport scrolls. Once per event loop iteration the diff is drained:
//
//	updates := tracker.Flush(view, lines)
//	// render updates, tracker is now empty
//
// [Tracker.Flush] is the single read/clear cycle: it emits one [Update] per
// stale row inside the viewport, drops rows that scrolled out of view, and
// clears the tracker. There are no partial clears and no concurrent
// producers.
//
// # Thread Safety
//
// Tracker is not synchronized. It is written and drained from the editor's
// single event loop.
package tracking
