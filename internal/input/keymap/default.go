package keymap

import "github.com/avray/skiff/internal/engine/action"

// Binding associates a chord spec with a named action.
type Binding struct {
	Keys   string
	Action string
}

// DefaultBindings returns the stock bindings table.
func DefaultBindings() []Binding {
	return []Binding{
		// Movement
		{Keys: "Left", Action: "cursor.left"},
		{Keys: "Right", Action: "cursor.right"},
		{Keys: "Up", Action: "cursor.up"},
		{Keys: "Down", Action: "cursor.down"},
		{Keys: "Home", Action: "cursor.line-start"},
		{Keys: "End", Action: "cursor.line-end"},
		{Keys: "PageUp", Action: "cursor.page-up"},
		{Keys: "PageDown", Action: "cursor.page-down"},

		// Editing
		{Keys: "Backspace", Action: "edit.delete-backward"},
		{Keys: "Delete", Action: "edit.delete-forward"},
		{Keys: "Enter", Action: "edit.newline"},

		// File and session
		{Keys: "C-s", Action: "file.save"},
		{Keys: "C-q", Action: "editor.quit"},
	}
}

// NewDefault returns a keymap with the stock bindings applied.
func NewDefault() *Keymap {
	km := New()
	for _, b := range DefaultBindings() {
		if err := km.Bind(b.Keys, b.Action); err != nil {
			panic("invalid default binding " + b.Keys + ": " + err.Error())
		}
	}
	// Tab inserts a literal tab character rather than mapping to a named
	// action, so it carries its payload here.
	if err := km.BindAction("Tab", action.Insert('\t')); err != nil {
		panic("invalid default binding Tab: " + err.Error())
	}
	return km
}
