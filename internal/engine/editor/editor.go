package editor

import (
	"github.com/avray/skiff/internal/engine/action"
	"github.com/avray/skiff/internal/engine/buffer"
	"github.com/avray/skiff/internal/engine/cursor"
	"github.com/avray/skiff/internal/engine/tracking"
	"github.com/avray/skiff/internal/engine/viewport"
)

// Editor is the buffer engine: the line store, cursor, viewport, and change
// tracker mutated as one unit, one action at a time. It holds no I/O and no
// process-wide state; everything it touches is owned by it.
type Editor struct {
	buf      *buffer.Buffer
	cur      cursor.Cursor
	view     *viewport.Viewport
	dirty    *tracking.Tracker
	modified bool
}

// Option is a functional option for configuring an Editor.
type Option func(*Editor)

// WithLineEnding sets the buffer's line ending style.
func WithLineEnding(le buffer.LineEnding) Option {
	return func(e *Editor) {
		e.buf.SetLineEnding(le)
	}
}

// New creates an editor over pre-split lines with a fixed page size. The
// caller validates pageSize > 0 before construction. The cursor starts at
// the origin, the viewport at the top, and the first flush redraws the
// whole window.
func New(lines []string, pageSize int, opts ...Option) *Editor {
	e := &Editor{
		buf:   buffer.FromLines(lines),
		cur:   cursor.New(),
		view:  viewport.New(pageSize),
		dirty: tracking.NewTracker(),
	}
	e.dirty.MarkFullRedraw()

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Initialize replaces the document wholesale: cursor to the origin,
// viewport to the top, every visible row stale. The modified flag resets.
func (e *Editor) Initialize(lines []string) {
	e.buf.SetLines(lines)
	e.cur = cursor.New()
	e.view.EnsureVisible(0, e.buf.LineCount())
	e.dirty.MarkFullRedraw()
	e.modified = false
}

// Apply runs exactly one operation against the engine state and records
// what went stale. Boundary conditions clamp or no-op; Apply never fails.
//
// Save and Quit reach the engine as no-ops: the outer loop owns file I/O
// and shutdown, the engine owns only buffer state.
func (e *Editor) Apply(act action.Action) {
	switch act.Op {
	case action.MoveLeft:
		e.cur = e.cur.Left(e.buf)
	case action.MoveRight:
		e.cur = e.cur.Right(e.buf)
	case action.MoveUp:
		e.cur = e.cur.Up(e.buf)
	case action.MoveDown:
		e.cur = e.cur.Down(e.buf)
	case action.MoveLineStart:
		e.cur = e.cur.LineStart()
	case action.MoveLineEnd:
		e.cur = e.cur.LineEnd(e.buf)
	case action.MovePageUp:
		e.cur = e.cur.PageUp(e.buf, e.view.PageSize())
	case action.MovePageDown:
		e.cur = e.cur.PageDown(e.buf, e.view.PageSize())

	case action.InsertRune:
		e.insertRune(act.Rune)
	case action.DeleteBackward:
		e.deleteBackward()
	case action.DeleteForward:
		e.deleteForward()
	case action.NewLine:
		e.splitLine()

	case action.Save, action.Quit, action.Ignore:
		return
	default:
		return
	}

	e.scrollToCursor()
}

// insertRune inserts at the cursor and advances one column. Only the
// cursor's line changes.
func (e *Editor) insertRune(r rune) {
	pos := e.cur.Position()
	e.buf.InsertRune(pos.Row, pos.Col, r)
	e.cur = e.cur.MoveTo(pos.Row, pos.Col+1, e.buf)
	e.dirty.MarkRow(pos.Row)
	e.modified = true
}

// splitLine breaks the cursor's line in two: the prefix keeps the row, the
// suffix becomes the next line, and the cursor lands at its start. Every
// row from the split to the end of the buffer shifts, so the whole range
// goes stale.
func (e *Editor) splitLine() {
	pos := e.cur.Position()
	e.buf.SplitLine(pos.Row, pos.Col)
	e.cur = e.cur.MoveTo(pos.Row+1, 0, e.buf)
	e.dirty.MarkRange(pos.Row, e.buf.LineCount()-1)
	e.modified = true
}

// deleteBackward removes the rune before the cursor. At column 0 it joins
// the line into the previous one, placing the cursor at the old join
// point; at the very start of the document it does nothing.
func (e *Editor) deleteBackward() {
	pos := e.cur.Position()

	if pos.Col > 0 {
		e.buf.DeleteRune(pos.Row, pos.Col-1)
		e.cur = e.cur.MoveTo(pos.Row, pos.Col-1, e.buf)
		e.dirty.MarkRow(pos.Row)
		e.modified = true
		return
	}

	if pos.Row == 0 {
		return
	}

	prevLen := e.buf.LineLen(pos.Row - 1)
	e.buf.JoinLines(pos.Row - 1)
	e.cur = e.cur.MoveTo(pos.Row-1, prevLen, e.buf)
	e.dirty.MarkRange(pos.Row-1, e.buf.LineCount()-1)
	e.modified = true
}

// deleteForward removes the rune under the cursor. At the end of a line it
// joins the next line into this one; at the end of the document it does
// nothing. The cursor stays put either way.
func (e *Editor) deleteForward() {
	pos := e.cur.Position()

	if pos.Col < e.buf.LineLen(pos.Row) {
		e.buf.DeleteRune(pos.Row, pos.Col)
		e.dirty.MarkRow(pos.Row)
		e.modified = true
		return
	}

	if pos.Row >= e.buf.LineCount()-1 {
		return
	}

	e.buf.JoinLines(pos.Row)
	e.dirty.MarkRange(pos.Row, e.buf.LineCount()-1)
	e.modified = true
}

// scrollToCursor re-establishes the viewport invariant. A scroll changes
// every visible row's screen offset, so the whole window goes stale.
func (e *Editor) scrollToCursor() {
	if e.view.EnsureVisible(e.cur.Row(), e.buf.LineCount()) {
		e.dirty.MarkFullRedraw()
	}
}

// Flush drains the render diff: one update per stale row inside the
// viewport, then a clean tracker. Called once per loop iteration.
func (e *Editor) Flush() []tracking.Update {
	return e.dirty.Flush(e.view, e.buf)
}

// Resize changes the page size, keeps the cursor visible, and forces a
// full redraw.
func (e *Editor) Resize(pageSize int) {
	e.view.Resize(pageSize)
	e.view.EnsureVisible(e.cur.Row(), e.buf.LineCount())
	e.dirty.MarkFullRedraw()
}

// Read accessors. The buffer, viewport, and tracker never escape; these
// are the only windows into engine state.

// Cursor returns the current cursor.
func (e *Editor) Cursor() cursor.Cursor {
	return e.cur
}

// LineCount returns the number of lines in the document.
func (e *Editor) LineCount() int {
	return e.buf.LineCount()
}

// Line returns the text of one line.
func (e *Editor) Line(row int) string {
	return e.buf.Line(row)
}

// Lines returns a copy of the whole document for the save path. The engine
// is never mutated while this read is used; the loop is strictly
// turn-based.
func (e *Editor) Lines() []string {
	return e.buf.Lines()
}

// LineEnding returns the document's line ending style.
func (e *Editor) LineEnding() buffer.LineEnding {
	return e.buf.LineEnding()
}

// FirstVisibleRow returns the first absolute row in the viewport.
func (e *Editor) FirstVisibleRow() int {
	return e.view.FirstRow()
}

// PageSize returns the viewport height in lines.
func (e *Editor) PageSize() int {
	return e.view.PageSize()
}

// VisibleRange returns the inclusive absolute row range currently shown.
func (e *Editor) VisibleRange() (start, end int) {
	return e.view.VisibleRange(e.buf.LineCount())
}

// ScreenRow converts an absolute row to a window-relative row, -1 if not
// visible.
func (e *Editor) ScreenRow(row int) int {
	return e.view.ScreenRow(row)
}

// CursorScreenRow returns the cursor's window-relative row. The viewport
// invariant keeps the cursor visible, so this is never -1 in a stable
// state.
func (e *Editor) CursorScreenRow() int {
	return e.view.ScreenRow(e.cur.Row())
}

// Modified returns true if the document changed since load or last save.
func (e *Editor) Modified() bool {
	return e.modified
}

// MarkSaved clears the modified flag after a successful save.
func (e *Editor) MarkSaved() {
	e.modified = false
}
