// Package viewport provides the paged window onto the buffer: which
// consecutive lines are visible and how absolute rows map to screen rows.
package viewport

// Viewport is the window of at most pageSize consecutive lines currently
// visible. It keeps the cursor row inside the window and the window inside
// the buffer:
//
//	firstRow <= cursorRow < firstRow+pageSize
//	firstRow in [0, max(0, lineCount-pageSize)]
//
// The second invariant keeps the window from hanging past the end of short
// buffers. Viewport is not synchronized; it belongs to the editor's event
// loop.
type Viewport struct {
	firstRow int
	pageSize int
}

// New creates a viewport showing pageSize lines from the top of the buffer.
// The caller validates the page size; values below 1 are clamped to 1.
func New(pageSize int) *Viewport {
	if pageSize < 1 {
		pageSize = 1
	}
	return &Viewport{pageSize: pageSize}
}

// FirstRow returns the first visible absolute row.
func (v *Viewport) FirstRow() int {
	return v.firstRow
}

// PageSize returns the number of lines the window can show.
func (v *Viewport) PageSize() int {
	return v.pageSize
}

// Contains returns true if the absolute row is inside the window.
func (v *Viewport) Contains(row int) bool {
	return row >= v.firstRow && row < v.firstRow+v.pageSize
}

// ScreenRow converts an absolute row to a window-relative screen row.
// Returns -1 for rows outside the window.
func (v *Viewport) ScreenRow(row int) int {
	if !v.Contains(row) {
		return -1
	}
	return row - v.firstRow
}

// VisibleRange returns the inclusive range of absolute rows the window
// shows for a buffer of lineCount lines. The end is clamped to the last
// line, so the range may be shorter than the page.
func (v *Viewport) VisibleRange(lineCount int) (start, end int) {
	start = v.firstRow
	end = v.firstRow + v.pageSize - 1
	if last := lineCount - 1; end > last {
		end = last
	}
	if end < start {
		end = start
	}
	return start, end
}

// EnsureVisible scrolls the window the minimal distance that brings row
// inside it, then clamps the window to the buffer. Returns true if the
// window moved; a move means every visible row's screen offset changed and
// the whole window must be redrawn.
func (v *Viewport) EnsureVisible(row, lineCount int) bool {
	old := v.firstRow

	if row < v.firstRow {
		v.firstRow = row
	} else if row >= v.firstRow+v.pageSize {
		v.firstRow = row - v.pageSize + 1
	}

	v.clamp(lineCount)
	return v.firstRow != old
}

// Resize changes the page size, clamping values below 1 to 1. The caller
// re-establishes the cursor invariant with EnsureVisible afterward.
func (v *Viewport) Resize(pageSize int) {
	if pageSize < 1 {
		pageSize = 1
	}
	v.pageSize = pageSize
}

// clamp keeps firstRow inside [0, max(0, lineCount-pageSize)].
func (v *Viewport) clamp(lineCount int) {
	maxFirst := lineCount - v.pageSize
	if maxFirst < 0 {
		maxFirst = 0
	}
	if v.firstRow > maxFirst {
		v.firstRow = maxFirst
	}
	if v.firstRow < 0 {
		v.firstRow = 0
	}
}
