// Package statusline renders the header and status bars that frame the
// text area.
package statusline

import (
	"fmt"

	"github.com/avray/skiff/internal/renderer/backend"
	"github.com/avray/skiff/internal/renderer/core"
)

// Status carries everything the bars display for one frame.
type Status struct {
	// Path is the file being edited, empty for an unnamed buffer.
	Path string

	// Modified indicates unsaved changes.
	Modified bool

	// Row and Col are the 0-based cursor position; displayed 1-based.
	Row, Col int

	// LineCount is the buffer length in lines.
	LineCount int

	// Encoding is the display label for the file encoding, e.g. "UTF-8".
	Encoding string

	// LineEnding is the display label for the line ending, e.g. "LF".
	LineEnding string

	// Message is a transient notice that replaces the left side of the
	// status bar when non-empty.
	Message string
}

// StatusLine renders the top header bar and the bottom status bar.
type StatusLine struct {
	barStyle    core.Style
	headerStyle core.Style
}

// New creates a status line with the default styles.
func New() *StatusLine {
	return &StatusLine{
		barStyle:    core.DefaultStyle().Reverse(),
		headerStyle: core.DefaultStyle().Reverse().Bold(),
	}
}

// RenderHeader draws the header bar at the given screen row.
func (s *StatusLine) RenderHeader(b backend.Backend, row, width int, st Status) {
	name := st.Path
	if name == "" {
		name = "[No Name]"
	}
	if st.Modified {
		name += " [+]"
	}
	drawBar(b, row, width, " skiff  "+name, "", s.headerStyle)
}

// Render draws the status bar at the given screen row.
func (s *StatusLine) Render(b backend.Backend, row, width int, st Status) {
	left := " " + st.Message
	if st.Message == "" {
		name := st.Path
		if name == "" {
			name = "[No Name]"
		}
		left = " " + name
		if st.Modified {
			left += " [+]"
		}
	}

	right := fmt.Sprintf("%d:%d  %d lines", st.Row+1, st.Col+1, st.LineCount)
	if st.Encoding != "" {
		right += "  " + st.Encoding
	}
	if st.LineEnding != "" {
		right += "  " + st.LineEnding
	}
	right += " "

	drawBar(b, row, width, left, right, s.barStyle)
}

// drawBar fills a full-width bar with left- and right-aligned text. The
// right side wins when they collide.
func drawBar(b backend.Backend, row, width int, left, right string, style core.Style) {
	b.Fill(core.RectFromSize(row, 0, 1, width), core.NewStyledCell(' ', style))

	x := 0
	for _, c := range core.CellsFromString(left, style) {
		if x >= width {
			break
		}
		b.SetCell(x, row, c)
		x++
	}

	rightCells := core.CellsFromString(right, style)
	start := width - len(rightCells)
	if start < 0 {
		start = 0
	}
	for i, c := range rightCells {
		if start+i >= width {
			break
		}
		b.SetCell(start+i, row, c)
	}
}
