// Package backend provides the terminal abstraction for the renderer.
// The real implementation drives a tcell screen; Null is an in-memory
// double for tests.
package backend

import (
	"strings"

	"github.com/avray/skiff/internal/input/key"
	"github.com/avray/skiff/internal/renderer/core"
)

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventResize
)

// Event represents a terminal event.
type Event struct {
	Type EventType

	// Key holds the decoded key press for EventKey.
	Key key.Event

	// Width and Height hold the new dimensions for EventResize.
	Width, Height int
}

// Backend defines the interface for terminal/display backends. All
// methods are called from the main loop goroutine.
type Backend interface {
	// Init initializes the backend for use.
	// Must be called before any other methods.
	Init() error

	// Shutdown releases backend resources and restores terminal state.
	Shutdown()

	// Size returns the current terminal dimensions.
	Size() (width, height int)

	// SetCell sets a single cell at the given position.
	// Positions outside the terminal are silently ignored.
	SetCell(x, y int, cell core.Cell)

	// GetCell returns the cell at the given position.
	// Returns an empty cell for positions outside the terminal.
	GetCell(x, y int) core.Cell

	// Fill fills a rectangular region with the given cell.
	Fill(rect core.ScreenRect, cell core.Cell)

	// Clear clears the entire screen with the default style.
	Clear()

	// Show synchronizes the internal buffer with the actual display.
	Show()

	// ShowCursor positions and displays the cursor.
	ShowCursor(x, y int)

	// HideCursor hides the cursor.
	HideCursor()

	// PollEvent waits for and returns the next terminal event.
	// This is a blocking call.
	PollEvent() Event

	// PostEvent posts a synthetic event to the event queue.
	PostEvent(event Event)
}

// Null is an in-memory backend for tests. It records cells and cursor
// state and serves posted events from a queue.
type Null struct {
	width, height int
	cells         [][]core.Cell
	cursorX       int
	cursorY       int
	cursorVisible bool
	shut          bool
	events        chan Event
}

// NewNull creates a null backend with the given dimensions.
func NewNull(width, height int) *Null {
	return &Null{
		width:  width,
		height: height,
		events: make(chan Event, 100),
	}
}

func (b *Null) Init() error {
	b.cells = newGrid(b.width, b.height)
	return nil
}

func (b *Null) Shutdown() {
	b.shut = true
}

func (b *Null) Size() (int, int) {
	return b.width, b.height
}

func (b *Null) SetCell(x, y int, cell core.Cell) {
	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		b.cells[y][x] = cell
	}
}

func (b *Null) GetCell(x, y int) core.Cell {
	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		return b.cells[y][x]
	}
	return core.EmptyCell()
}

func (b *Null) Fill(rect core.ScreenRect, cell core.Cell) {
	for y := rect.Top; y < rect.Bottom && y < b.height; y++ {
		for x := rect.Left; x < rect.Right && x < b.width; x++ {
			if x >= 0 && y >= 0 {
				b.cells[y][x] = cell
			}
		}
	}
}

func (b *Null) Clear() {
	empty := core.EmptyCell()
	for y := range b.cells {
		for x := range b.cells[y] {
			b.cells[y][x] = empty
		}
	}
}

func (b *Null) Show() {}

func (b *Null) ShowCursor(x, y int) {
	b.cursorX = x
	b.cursorY = y
	b.cursorVisible = true
}

func (b *Null) HideCursor() {
	b.cursorVisible = false
}

func (b *Null) PollEvent() Event {
	return <-b.events
}

func (b *Null) PostEvent(event Event) {
	select {
	case b.events <- event:
	default:
		// Queue full: drop, tests never block.
	}
}

// PostKey is a test helper that posts a key press.
func (b *Null) PostKey(ev key.Event) {
	b.PostEvent(Event{Type: EventKey, Key: ev})
}

// Resize simulates a terminal resize and posts the matching event.
func (b *Null) Resize(width, height int) {
	b.width = width
	b.height = height
	b.cells = newGrid(width, height)
	b.PostEvent(Event{Type: EventResize, Width: width, Height: height})
}

// CursorPosition returns the current cursor position for assertions.
func (b *Null) CursorPosition() (x, y int, visible bool) {
	return b.cursorX, b.cursorY, b.cursorVisible
}

// IsShutdown reports whether Shutdown has been called.
func (b *Null) IsShutdown() bool {
	return b.shut
}

// RowString returns the text of screen row y with trailing spaces
// trimmed, for assertions.
func (b *Null) RowString(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	var sb strings.Builder
	for x := 0; x < b.width; x++ {
		c := b.cells[y][x]
		if c.IsContinuation() {
			continue
		}
		if c.Rune == 0 {
			sb.WriteRune(' ')
			continue
		}
		sb.WriteRune(c.Rune)
	}
	return strings.TrimRight(sb.String(), " ")
}

func newGrid(width, height int) [][]core.Cell {
	cells := make([][]core.Cell, height)
	for i := range cells {
		cells[i] = make([]core.Cell, width)
		for j := range cells[i] {
			cells[i][j] = core.EmptyCell()
		}
	}
	return cells
}
