// Package key provides key event types and chord parsing for the input
// system.
//
// This package defines the fundamental types for representing keyboard
// input:
//
//   - Key: Identifies a keyboard key (special keys, function keys, or runes)
//   - Modifier: Represents modifier keys (Ctrl, Alt, Shift, Meta)
//   - Event: A single key press with modifiers and timestamp
//
// # Chord Specifications
//
// Chords are written as hyphen-joined modifier prefixes followed by a
// key name or character:
//
//   - Simple keys: "a", "1", "Enter", "Escape", "Space"
//   - With modifiers: "C-s", "A-Left", "C-A-Delete"
//
// Event.String produces the same notation, so any displayed chord can be
// parsed back with Parse.
package key
