// Package buffer provides the ordered line store that holds document
// content. It is the ground truth the cursor, viewport, and renderer all
// read from.
//
// The buffer package provides:
//
//   - An always-non-empty sequence of lines (an empty document is one
//     empty line)
//   - Rune-addressed per-line mutation: insert, delete, split, join
//   - Wholesale replacement and a side-effect-free full read for the
//     save path
//   - Line ending style tracking and detection for load and save
//
// Basic usage:
//
//	buf := buffer.FromLines([]string{"abc", "def"})
//
//	buf.InsertRune(0, 3, '!')  // "abc!", "def"
//	buf.SplitLine(0, 1)        // "a", "bc!", "def"
//	buf.JoinLines(1)           // "a", "bc!def"
//
// Positions are (row, col) pairs: row indexes lines from 0, col indexes
// runes within a line and may equal the line length (one past the last
// rune). Out-of-range positions are clamped, never rejected; no buffer
// operation fails.
//
// Thread Safety:
//
// Buffer is not synchronized. The editor applies exactly one operation per
// key event from a single event loop, so the buffer is never read and
// written concurrently. Callers that need a stable view across multiple
// reads (the save path) rely on that turn-based contract rather than
// locking.
package buffer
