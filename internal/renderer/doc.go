// Package renderer composes the editor display: a header bar, the text
// area with its line number gutter, and a status bar.
//
// The renderer is update-driven. Each frame it repaints only the dirty
// rows delivered by the change tracker, rows that fell past the end of
// the buffer, and the chrome. A gutter width change or terminal resize
// forces a full repaint since those shift the whole text area.
//
// Layout (terminal height h):
//
//	row 0       header bar
//	rows 1..h-2 text area
//	row h-1     status bar
//
// Tabs expand to the configured tab width and East Asian wide runes
// occupy two cells; cursor positioning uses the same rules, so the
// terminal cursor always lands on the glyph the buffer cursor points
// at.
//
// # Thread Safety
//
// The renderer is driven from the main loop goroutine and performs no
// locking.
package renderer
