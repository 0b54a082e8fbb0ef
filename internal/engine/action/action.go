// Package action defines the closed set of semantic operations a key press
// can classify into. The engine consumes actions, never key codes: the
// input layer maps whatever the platform delivers onto this vocabulary and
// the editor reacts to nothing else.
package action

import "fmt"

// Op identifies one editor operation.
type Op uint8

const (
	// Ignore is the zero value: no state change, no redraw.
	Ignore Op = iota

	MoveLeft
	MoveRight
	MoveUp
	MoveDown
	MoveLineStart
	MoveLineEnd
	MovePageUp
	MovePageDown

	InsertRune
	DeleteBackward
	DeleteForward
	NewLine

	Save
	Quit
)

// String returns the canonical action name used by keymap bindings.
func (op Op) String() string {
	switch op {
	case MoveLeft:
		return "cursor.left"
	case MoveRight:
		return "cursor.right"
	case MoveUp:
		return "cursor.up"
	case MoveDown:
		return "cursor.down"
	case MoveLineStart:
		return "cursor.line-start"
	case MoveLineEnd:
		return "cursor.line-end"
	case MovePageUp:
		return "cursor.page-up"
	case MovePageDown:
		return "cursor.page-down"
	case InsertRune:
		return "edit.insert"
	case DeleteBackward:
		return "edit.delete-backward"
	case DeleteForward:
		return "edit.delete-forward"
	case NewLine:
		return "edit.newline"
	case Save:
		return "file.save"
	case Quit:
		return "editor.quit"
	default:
		return "ignore"
	}
}

var opNames = map[string]Op{
	"cursor.left":          MoveLeft,
	"cursor.right":         MoveRight,
	"cursor.up":            MoveUp,
	"cursor.down":          MoveDown,
	"cursor.line-start":    MoveLineStart,
	"cursor.line-end":      MoveLineEnd,
	"cursor.page-up":       MovePageUp,
	"cursor.page-down":     MovePageDown,
	"edit.insert":          InsertRune,
	"edit.delete-backward": DeleteBackward,
	"edit.delete-forward":  DeleteForward,
	"edit.newline":         NewLine,
	"file.save":            Save,
	"editor.quit":          Quit,
	"ignore":               Ignore,
}

// FromName returns the operation for a canonical action name.
func FromName(name string) (Op, bool) {
	op, ok := opNames[name]
	return op, ok
}

// Names returns every bindable action name.
func Names() []string {
	names := make([]string, 0, len(opNames))
	for name := range opNames {
		names = append(names, name)
	}
	return names
}

// Action is one classified key press: an operation plus its payload. Only
// InsertRune carries a payload. The zero value is Ignore.
type Action struct {
	Op   Op
	Rune rune
}

// Insert returns an InsertRune action carrying r.
func Insert(r rune) Action {
	return Action{Op: InsertRune, Rune: r}
}

// Of returns a payload-free action for op.
func Of(op Op) Action {
	return Action{Op: op}
}

// IsIgnore returns true for the do-nothing action.
func (a Action) IsIgnore() bool {
	return a.Op == Ignore
}

// String returns a readable form for logging.
func (a Action) String() string {
	if a.Op == InsertRune {
		return fmt.Sprintf("%s(%q)", a.Op, a.Rune)
	}
	return a.Op.String()
}
