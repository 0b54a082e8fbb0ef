package tracking

import "sort"

// Update is one renderable difference: a stale row, where it sits on
// screen, and what it should now show. Line is the absolute line index.
type Update struct {
	ScreenRow int
	Line      int
	Content   string
}

// View is the window the tracker filters against when producing updates.
// It is satisfied by the engine viewport.
type View interface {
	// VisibleRange returns the inclusive absolute row range the window
	// shows for a buffer of lineCount lines.
	VisibleRange(lineCount int) (start, end int)

	// ScreenRow converts an absolute row to a window-relative row, -1 if
	// not visible.
	ScreenRow(row int) int
}

// Lines supplies row content for updates. It is satisfied by the engine
// buffer.
type Lines interface {
	LineCount() int
	Line(row int) string
}

// Tracker records which absolute rows are stale since the last render. A
// full-redraw flag covers viewport shifts, where every visible row's screen
// offset changed regardless of content.
//
// Tracker is not synchronized; it is written by edit operations and drained
// once per event loop iteration.
type Tracker struct {
	rows       map[int]struct{}
	fullRedraw bool
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{
		rows: make(map[int]struct{}, 16),
	}
}

// MarkRow marks a single absolute row stale.
func (t *Tracker) MarkRow(row int) {
	if t.fullRedraw || row < 0 {
		return
	}
	t.rows[row] = struct{}{}
}

// MarkRange marks the inclusive absolute row range [start, end] stale.
func (t *Tracker) MarkRange(start, end int) {
	if t.fullRedraw {
		return
	}
	if start < 0 {
		start = 0
	}
	for row := start; row <= end; row++ {
		t.rows[row] = struct{}{}
	}
}

// MarkFullRedraw marks every visible row stale. Used when the viewport
// shifts and when the screen geometry changes. Individual marks are
// subsumed and dropped.
func (t *Tracker) MarkFullRedraw() {
	t.fullRedraw = true
	clear(t.rows)
}

// IsDirty returns true if anything needs redrawing.
func (t *Tracker) IsDirty() bool {
	return t.fullRedraw || len(t.rows) > 0
}

// NeedsFullRedraw returns true if every visible row is stale.
func (t *Tracker) NeedsFullRedraw() bool {
	return t.fullRedraw
}

// IsRowDirty returns true if the given absolute row needs redrawing.
func (t *Tracker) IsRowDirty(row int) bool {
	if t.fullRedraw {
		return true
	}
	_, ok := t.rows[row]
	return ok
}

// DirtyRows returns the explicitly marked rows in ascending order. The
// full-redraw flag is separate state; when it is set the marked set is
// empty.
func (t *Tracker) DirtyRows() []int {
	rows := make([]int, 0, len(t.rows))
	for row := range t.rows {
		rows = append(rows, row)
	}
	sort.Ints(rows)
	return rows
}

// Clear forgets all dirty state.
func (t *Tracker) Clear() {
	t.fullRedraw = false
	clear(t.rows)
}

// Flush produces the render diff and clears the tracker: one update per
// stale row currently inside the view, in screen order. Rows that scrolled
// out of the window are dropped, not rendered. Under a full redraw every
// visible row is emitted.
//
// This is the single read/clear cycle per loop iteration; the returned
// slice is the renderer's to consume.
func (t *Tracker) Flush(view View, lines Lines) []Update {
	defer t.Clear()

	start, end := view.VisibleRange(lines.LineCount())

	if t.fullRedraw {
		updates := make([]Update, 0, end-start+1)
		for row := start; row <= end; row++ {
			updates = append(updates, Update{
				ScreenRow: view.ScreenRow(row),
				Line:      row,
				Content:   lines.Line(row),
			})
		}
		return updates
	}

	updates := make([]Update, 0, len(t.rows))
	for _, row := range t.DirtyRows() {
		if row < start || row > end {
			continue
		}
		updates = append(updates, Update{
			ScreenRow: view.ScreenRow(row),
			Line:      row,
			Content:   lines.Line(row),
		})
	}
	return updates
}
