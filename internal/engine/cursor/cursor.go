package cursor

import "fmt"

// Lines is the line geometry cursor movement clamps against. It is
// satisfied by the engine buffer.
type Lines interface {
	// LineCount returns the number of lines, always at least 1.
	LineCount() int

	// LineLen returns the rune length of a line.
	LineLen(row int) int
}

// Position is a (row, col) location in the buffer. Row indexes lines from
// 0; col indexes runes within the line and may equal the line length.
type Position struct {
	Row int
	Col int
}

// String returns a string representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Cursor is the insertion point plus the remembered desired column.
// Cursor is an immutable value type: every movement returns a new cursor.
//
// The desired column is the horizontal position vertical movement steers
// toward. Horizontal moves and edits set it to the new column; vertical
// moves preserve it, clamping only the effective column to the target
// line's length. Moving up through a short line and onward to a long one
// restores the original column.
type Cursor struct {
	row     int
	col     int
	desired int
}

// New creates a cursor at the origin.
func New() Cursor {
	return Cursor{}
}

// At creates a cursor at (row, col), clamped to the buffer. The desired
// column is set to the clamped column.
func At(row, col int, lines Lines) Cursor {
	return Cursor{}.MoveTo(row, col, lines)
}

// Row returns the cursor's row.
func (c Cursor) Row() int {
	return c.row
}

// Col returns the cursor's column.
func (c Cursor) Col() int {
	return c.col
}

// Position returns the cursor's position.
func (c Cursor) Position() Position {
	return Position{Row: c.row, Col: c.col}
}

// DesiredCol returns the remembered column vertical movement steers toward.
func (c Cursor) DesiredCol() int {
	return c.desired
}

// MoveTo returns a cursor at (row, col), clamped to the buffer, with the
// desired column set to the clamped column. Edit operations use it to place
// the cursor after a mutation.
func (c Cursor) MoveTo(row, col int, lines Lines) Cursor {
	row = clampRow(row, lines)
	col = clampCol(col, lines.LineLen(row))
	return Cursor{row: row, col: col, desired: col}
}

// Left moves one column left, or to the end of the previous line at column
// 0. At (0,0) it returns the cursor unchanged.
func (c Cursor) Left(lines Lines) Cursor {
	if c.col > 0 {
		return Cursor{row: c.row, col: c.col - 1, desired: c.col - 1}
	}
	if c.row > 0 {
		col := lines.LineLen(c.row - 1)
		return Cursor{row: c.row - 1, col: col, desired: col}
	}
	return c
}

// Right moves one column right, or to the start of the next line at the end
// of a line. At the end of the last line it returns the cursor unchanged.
func (c Cursor) Right(lines Lines) Cursor {
	if c.col < lines.LineLen(c.row) {
		return Cursor{row: c.row, col: c.col + 1, desired: c.col + 1}
	}
	if c.row < lines.LineCount()-1 {
		return Cursor{row: c.row + 1, col: 0, desired: 0}
	}
	return c
}

// Up moves one row up, clamped to the first line. The column becomes
// min(desired, target line length); the desired column is preserved.
func (c Cursor) Up(lines Lines) Cursor {
	return c.vertical(-1, lines)
}

// Down moves one row down, clamped to the last line. The column becomes
// min(desired, target line length); the desired column is preserved.
func (c Cursor) Down(lines Lines) Cursor {
	return c.vertical(1, lines)
}

// PageUp moves page rows up with the same column rule as Up. Pages smaller
// than one row move one row.
func (c Cursor) PageUp(lines Lines, page int) Cursor {
	if page < 1 {
		page = 1
	}
	return c.vertical(-page, lines)
}

// PageDown moves page rows down with the same column rule as Down. Pages
// smaller than one row move one row.
func (c Cursor) PageDown(lines Lines, page int) Cursor {
	if page < 1 {
		page = 1
	}
	return c.vertical(page, lines)
}

// LineStart moves to column 0.
func (c Cursor) LineStart() Cursor {
	return Cursor{row: c.row, col: 0, desired: 0}
}

// LineEnd moves past the last rune of the current line.
func (c Cursor) LineEnd(lines Lines) Cursor {
	col := lines.LineLen(c.row)
	return Cursor{row: c.row, col: col, desired: col}
}

// Clamp returns a cursor whose position is valid for the buffer. The
// desired column is preserved.
func (c Cursor) Clamp(lines Lines) Cursor {
	row := clampRow(c.row, lines)
	col := clampCol(c.col, lines.LineLen(row))
	return Cursor{row: row, col: col, desired: c.desired}
}

// String returns a string representation of the cursor.
func (c Cursor) String() string {
	return fmt.Sprintf("Cursor(%d,%d)", c.row, c.col)
}

// vertical moves by delta rows, clamps the row, and applies the desired
// column rule.
func (c Cursor) vertical(delta int, lines Lines) Cursor {
	row := clampRow(c.row+delta, lines)
	col := c.desired
	if max := lines.LineLen(row); col > max {
		col = max
	}
	return Cursor{row: row, col: col, desired: c.desired}
}

func clampRow(row int, lines Lines) int {
	if row < 0 {
		return 0
	}
	if last := lines.LineCount() - 1; row > last {
		return last
	}
	return row
}

func clampCol(col, lineLen int) int {
	if col < 0 {
		return 0
	}
	if col > lineLen {
		return lineLen
	}
	return col
}
