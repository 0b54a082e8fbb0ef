// Package keymap classifies key events into editor actions.
//
// Every key press resolves to exactly one action. Resolution checks the
// bound chords first, then falls back to self-insert for printable
// characters, and finally to the ignore action. There is no modal state:
// the same event always resolves the same way.
//
// # Usage
//
//	km := keymap.NewDefault()
//	km.Bind("C-d", "cursor.page-down") // user override
//
//	act := km.Resolve(ev)
//	if !act.IsIgnore() {
//	    // dispatch act
//	}
//
// Chord specs use the notation of the key package: "C-s", "A-Left",
// "Enter", "x".
package keymap
