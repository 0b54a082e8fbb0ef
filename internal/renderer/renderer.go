package renderer

import (
	"github.com/avray/skiff/internal/engine/cursor"
	"github.com/avray/skiff/internal/engine/tracking"
	"github.com/avray/skiff/internal/renderer/backend"
	"github.com/avray/skiff/internal/renderer/core"
	"github.com/avray/skiff/internal/renderer/gutter"
	"github.com/avray/skiff/internal/renderer/statusline"
)

// Screen rows reserved above and below the text area.
const (
	headerRows = 1
	statusRows = 1
)

// ContentSource provides read access to buffer content. The editor
// satisfies it directly.
type ContentSource interface {
	// Line returns the text content of a line (0-indexed).
	Line(row int) string

	// LineCount returns the total number of lines in the buffer.
	LineCount() int
}

// Frame is one redraw request: the dirty rows plus everything the
// chrome and cursor need.
type Frame struct {
	// Updates are the dirty screen rows with their new content.
	Updates []tracking.Update

	// FirstRow is the first visible buffer row.
	FirstRow int

	// ViewRows is the viewport height in rows. Zero means the full
	// text area. Screen rows past the viewport are drawn empty.
	ViewRows int

	// Cursor is the buffer position of the cursor.
	Cursor cursor.Position

	// Status carries the header and status bar content.
	Status statusline.Status
}

// Options configures the renderer.
type Options struct {
	// TabWidth is the number of columns per tab stop.
	TabWidth int

	// Gutter configures the line number margin.
	Gutter gutter.Config
}

// DefaultOptions returns the default renderer configuration.
func DefaultOptions() Options {
	return Options{
		TabWidth: 4,
		Gutter:   gutter.DefaultConfig(),
	}
}

// Renderer composes the text area, gutter, and chrome onto a backend.
// It is driven from the main loop goroutine.
type Renderer struct {
	backend backend.Backend
	gutter  *gutter.Gutter
	status  *statusline.StatusLine
	opts    Options

	width  int
	height int

	textStyle   core.Style
	gutterStyle core.Style

	// lastMargin detects gutter width changes, which shift the whole
	// text area and force a full repaint.
	lastMargin int
	forceFull  bool
}

// New creates a renderer drawing to the given backend.
func New(b backend.Backend, opts Options) *Renderer {
	if opts.TabWidth < 1 {
		opts.TabWidth = 1
	}
	width, height := b.Size()
	return &Renderer{
		backend:     b,
		gutter:      gutter.New(opts.Gutter),
		status:      statusline.New(),
		opts:        opts,
		width:       width,
		height:      height,
		textStyle:   core.DefaultStyle(),
		gutterStyle: core.DefaultStyle().Dim(),
		lastMargin:  -1,
	}
}

// TextRows returns the number of screen rows available for text.
func (r *Renderer) TextRows() int {
	rows := r.height - headerRows - statusRows
	if rows < 1 {
		rows = 1
	}
	return rows
}

// Resize records new terminal dimensions and forces a full repaint on
// the next Render.
func (r *Renderer) Resize(width, height int) {
	r.width = width
	r.height = height
	r.forceFull = true
}

// Render draws one frame. Only the rows named in f.Updates are
// repainted unless the gutter width or terminal size changed, in which
// case the whole text area is redrawn from src.
func (r *Renderer) Render(src ContentSource, f Frame) {
	lineCount := src.LineCount()
	r.gutter.SetLineCount(lineCount)
	margin := r.gutter.Width()

	// A page size pinned in config decouples the viewport from the
	// window: rows past the viewport stay empty, and updates for rows
	// past the window have no screen cell.
	view := f.ViewRows
	if view <= 0 || view > r.TextRows() {
		view = r.TextRows()
	}

	if r.forceFull || margin != r.lastMargin {
		r.backend.Clear()
		for sr := 0; sr < r.TextRows(); sr++ {
			row := f.FirstRow + sr
			if sr < view && row < lineCount {
				r.drawLine(sr, row, src.Line(row))
			} else {
				r.drawEmptyRow(sr)
			}
		}
		r.forceFull = false
	} else {
		for _, u := range f.Updates {
			if u.ScreenRow >= view {
				continue
			}
			r.drawLine(u.ScreenRow, u.Line, u.Content)
		}
		for sr := 0; sr < r.TextRows(); sr++ {
			if sr >= view || f.FirstRow+sr >= lineCount {
				r.drawEmptyRow(sr)
			}
		}
	}
	r.lastMargin = margin

	r.status.RenderHeader(r.backend, 0, r.width, f.Status)
	r.status.Render(r.backend, r.height-1, r.width, f.Status)

	r.positionCursor(src, f, margin)
	r.backend.Show()
}

// drawLine paints one buffer line at the given text-area row.
func (r *Renderer) drawLine(screenRow, bufRow int, content string) {
	y := screenRow + headerRows
	r.clearRow(y)

	x := 0
	for _, c := range core.CellsFromString(r.gutter.Format(bufRow), r.gutterStyle) {
		if x >= r.width {
			return
		}
		r.backend.SetCell(x, y, c)
		x++
	}

	for _, c := range ExpandLine(content, r.opts.TabWidth, r.textStyle) {
		if x >= r.width {
			break
		}
		r.backend.SetCell(x, y, c)
		x++
	}
}

// drawEmptyRow paints a text-area row past the end of the buffer.
func (r *Renderer) drawEmptyRow(screenRow int) {
	y := screenRow + headerRows
	r.clearRow(y)

	x := 0
	for _, c := range core.CellsFromString(r.gutter.FormatEmpty(), r.gutterStyle) {
		if x >= r.width {
			return
		}
		r.backend.SetCell(x, y, c)
		x++
	}
}

func (r *Renderer) clearRow(y int) {
	r.backend.Fill(core.RectFromSize(y, 0, 1, r.width), core.EmptyCell())
}

// positionCursor maps the buffer cursor to its screen cell, accounting
// for the gutter margin and tab expansion.
func (r *Renderer) positionCursor(src ContentSource, f Frame, margin int) {
	screenRow := f.Cursor.Row - f.FirstRow
	if screenRow < 0 || screenRow >= r.TextRows() {
		r.backend.HideCursor()
		return
	}

	x := margin + DisplayCol(src.Line(f.Cursor.Row), f.Cursor.Col, r.opts.TabWidth)
	if x >= r.width {
		x = r.width - 1
	}
	r.backend.ShowCursor(x, screenRow+headerRows)
}
