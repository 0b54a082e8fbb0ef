package buffer

import (
	"runtime"
	"strings"
)

// LineEnding specifies the line ending style.
type LineEnding uint8

const (
	LineEndingLF   LineEnding = iota // Unix: \n
	LineEndingCRLF                   // Windows: \r\n
	LineEndingCR                     // Old Mac: \r
)

// String returns a display label for the line ending.
func (le LineEnding) String() string {
	switch le {
	case LineEndingLF:
		return "LF"
	case LineEndingCRLF:
		return "CRLF"
	case LineEndingCR:
		return "CR"
	default:
		return "LF"
	}
}

// Sequence returns the actual line ending characters.
func (le LineEnding) Sequence() string {
	switch le {
	case LineEndingLF:
		return "\n"
	case LineEndingCRLF:
		return "\r\n"
	case LineEndingCR:
		return "\r"
	default:
		return "\n"
	}
}

// Buffer is an ordered, mutable sequence of text lines. It is the ground
// truth of document content: cursor columns address runes within a line,
// rows address lines within the buffer.
//
// A Buffer is never empty. An empty document is a single empty line, and
// every mutation preserves that invariant.
//
// Buffer is not safe for concurrent use. The editor mutates it from a
// single event loop; see the package documentation.
type Buffer struct {
	lines      [][]rune
	lineEnding LineEnding
}

// New creates a buffer containing a single empty line.
func New(opts ...Option) *Buffer {
	b := &Buffer{
		lines:      [][]rune{{}},
		lineEnding: LineEndingLF,
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// FromLines creates a buffer from pre-split lines. The input must already be
// free of line ending characters; the buffer never reinterprets them. An
// empty input produces a single empty line.
func FromLines(lines []string, opts ...Option) *Buffer {
	b := New(opts...)
	b.SetLines(lines)
	return b
}

// Read Operations

// LineCount returns the number of lines. It is always at least 1.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// Line returns the text of a line. Out-of-range rows are clamped.
func (b *Buffer) Line(row int) string {
	return string(b.lines[b.clampRow(row)])
}

// LineLen returns the length of a line in runes. Out-of-range rows are
// clamped.
func (b *Buffer) LineLen(row int) int {
	return len(b.lines[b.clampRow(row)])
}

// Lines returns a copy of every line in order. This is the save path read;
// it has no side effects and the returned slice is independent of the
// buffer.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	for i, l := range b.lines {
		out[i] = string(l)
	}
	return out
}

// Content returns the full buffer content joined with the buffer's line
// ending sequence, without a trailing separator.
func (b *Buffer) Content() string {
	return strings.Join(b.Lines(), b.lineEnding.Sequence())
}

// IsEmpty returns true if the buffer holds exactly one empty line.
func (b *Buffer) IsEmpty() bool {
	return len(b.lines) == 1 && len(b.lines[0]) == 0
}

// Write Operations

// SetLines replaces the buffer content wholesale. A nil or empty input
// becomes a single empty line.
func (b *Buffer) SetLines(lines []string) {
	if len(lines) == 0 {
		b.lines = [][]rune{{}}
		return
	}
	b.lines = make([][]rune, len(lines))
	for i, l := range lines {
		b.lines[i] = []rune(l)
	}
}

// InsertRune inserts r at (row, col) and shifts the rest of the line right.
// Out-of-range positions are clamped.
func (b *Buffer) InsertRune(row, col int, r rune) {
	row = b.clampRow(row)
	line := b.lines[row]
	col = clampCol(col, len(line))

	line = append(line, 0)
	copy(line[col+1:], line[col:])
	line[col] = r
	b.lines[row] = line
}

// DeleteRune removes the rune at (row, col). A delete on an empty line is a
// no-op; out-of-range positions are clamped.
func (b *Buffer) DeleteRune(row, col int) {
	row = b.clampRow(row)
	line := b.lines[row]
	if len(line) == 0 {
		return
	}
	if col < 0 {
		col = 0
	}
	if col > len(line)-1 {
		col = len(line) - 1
	}
	b.lines[row] = append(line[:col], line[col+1:]...)
}

// SplitLine splits the line at (row, col) in two: the prefix keeps row, the
// suffix becomes a new line at row+1, and every subsequent line shifts down
// by one. Out-of-range positions are clamped.
func (b *Buffer) SplitLine(row, col int) {
	row = b.clampRow(row)
	line := b.lines[row]
	col = clampCol(col, len(line))

	suffix := make([]rune, len(line)-col)
	copy(suffix, line[col:])

	b.lines[row] = line[:col]
	b.lines = append(b.lines, nil)
	copy(b.lines[row+2:], b.lines[row+1:])
	b.lines[row+1] = suffix
}

// JoinLines appends line row+1 to the end of line row and removes it,
// shifting every subsequent line up by one. A join on the last line is a
// no-op.
func (b *Buffer) JoinLines(row int) {
	row = b.clampRow(row)
	if row >= len(b.lines)-1 {
		return
	}
	b.lines[row] = append(b.lines[row], b.lines[row+1]...)
	b.lines = append(b.lines[:row+1], b.lines[row+2:]...)
}

// Buffer State

// LineEnding returns the buffer's line ending style. Lines never contain
// ending characters; the style is carried for the save path and the status
// line.
func (b *Buffer) LineEnding() LineEnding {
	return b.lineEnding
}

// SetLineEnding sets the buffer's line ending style.
func (b *Buffer) SetLineEnding(le LineEnding) {
	b.lineEnding = le
}

// DefaultLineEnding returns the platform line ending: CRLF on Windows, LF
// everywhere else.
func DefaultLineEnding() LineEnding {
	if runtime.GOOS == "windows" {
		return LineEndingCRLF
	}
	return LineEndingLF
}

// clampRow clamps row into [0, LineCount-1].
func (b *Buffer) clampRow(row int) int {
	if row < 0 {
		return 0
	}
	if row > len(b.lines)-1 {
		return len(b.lines) - 1
	}
	return row
}

// clampCol clamps col into [0, lineLen]. The cursor may legally sit one
// past the last rune.
func clampCol(col, lineLen int) int {
	if col < 0 {
		return 0
	}
	if col > lineLen {
		return lineLen
	}
	return col
}
