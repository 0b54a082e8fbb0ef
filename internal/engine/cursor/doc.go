// Package cursor provides the insertion point for text editing.
//
// The cursor package handles:
//
//   - (row, col) positioning with the Position type
//   - Boundary-clamped movement: arrows, line start/end, page jumps
//   - Desired-column tracking across vertical movement
//
// Movement never fails and never leaves the buffer: moving left at the
// start of a line wraps to the end of the previous line, moving right at
// the end wraps to the start of the next, and vertical moves clamp at the
// first and last lines.
//
// Desired Column:
//
// Vertical movement remembers the column the user is steering toward. The
// effective column on each line is min(desired, line length), so moving
// through a short line and onward to a longer one restores the original
// column. Horizontal moves and edits reset the desired column to wherever
// they place the cursor.
//
// Basic usage:
//
//	buf := buffer.FromLines([]string{"hello", "hi", "world"})
//	c := cursor.At(0, 4, buf)
//
//	c = c.Down(buf)  // (1,2): clamped to the short line
//	c = c.Down(buf)  // (2,4): desired column restored
//
// Thread Safety:
//
// Cursor and Position are immutable value types and safe to copy freely.
// Movement reads line geometry from the buffer, so calls must follow the
// editor's single event loop discipline.
package cursor
