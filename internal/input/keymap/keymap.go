package keymap

import (
	"fmt"

	"github.com/avray/skiff/internal/engine/action"
	"github.com/avray/skiff/internal/input/key"
)

// chord is the comparable lookup form of a key event.
type chord struct {
	key  key.Key
	r    rune
	mods key.Modifier
}

// chordOf normalizes an event for lookup. Shift is dropped from rune
// events since the rune already carries case.
func chordOf(ev key.Event) chord {
	mods := ev.Modifiers
	if ev.Key == key.KeyRune {
		mods = mods.Without(key.ModShift)
	}
	return chord{key: ev.Key, r: ev.Rune, mods: mods}
}

// Keymap resolves key events to editor actions.
//
// Resolution has three tiers: bound chords win, unbound printable
// characters insert themselves, and everything else is ignored. The
// zero-allocation lookup keeps the hot path cheap.
type Keymap struct {
	bindings map[chord]action.Action
}

// New returns an empty keymap with only the fallback classification.
func New() *Keymap {
	return &Keymap{
		bindings: make(map[chord]action.Action),
	}
}

// Bind associates a chord spec with a named action. It replaces any
// existing binding for the chord.
func (km *Keymap) Bind(spec, actionName string) error {
	op, ok := action.FromName(actionName)
	if !ok {
		return fmt.Errorf("bind %q: unknown action %q", spec, actionName)
	}
	return km.BindAction(spec, action.Of(op))
}

// BindAction associates a chord spec with a concrete action, payload
// included. Used for bindings that insert a fixed character.
func (km *Keymap) BindAction(spec string, act action.Action) error {
	ev, err := key.Parse(spec)
	if err != nil {
		return fmt.Errorf("bind %q: %w", spec, err)
	}
	km.bindings[chordOf(ev)] = act
	return nil
}

// Unbind removes the binding for a chord spec. Removing an unbound chord
// is not an error.
func (km *Keymap) Unbind(spec string) error {
	ev, err := key.Parse(spec)
	if err != nil {
		return fmt.Errorf("unbind %q: %w", spec, err)
	}
	delete(km.bindings, chordOf(ev))
	return nil
}

// Len returns the number of bound chords.
func (km *Keymap) Len() int {
	return len(km.bindings)
}

// Resolve classifies one key event into an editor action.
//
// A chord bound to edit.insert without a payload inserts the rune of the
// triggering event, so a character key can be rebound while keeping its
// self-insert behavior.
func (km *Keymap) Resolve(ev key.Event) action.Action {
	if act, ok := km.bindings[chordOf(ev)]; ok {
		if act.Op == action.InsertRune && act.Rune == 0 {
			if !ev.IsRune() {
				return action.Of(action.Ignore)
			}
			return action.Insert(ev.Rune)
		}
		return act
	}

	if ev.IsChar() && !ev.IsModified() {
		return action.Insert(ev.Rune)
	}

	return action.Of(action.Ignore)
}
