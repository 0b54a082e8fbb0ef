// Package editor composes the buffer engine: line store, cursor, viewport,
// and change tracker mutated as one logical unit, exactly one operation per
// key event.
//
// The engine consumes classified actions (package action), never key
// codes. [Editor.Apply] is the whole dispatch surface: a closed operation
// table from (state, action) to (state, stale rows).
//
//	ed := editor.New([]string{"abc", "def"}, pageSize)
//
//	ed.Apply(action.Of(action.MoveRight))
//	ed.Apply(action.Insert('x'))
//	ed.Apply(action.Of(action.NewLine))
//
//	for _, u := range ed.Flush() {
//	    // draw u.Content at u.ScreenRow
//	}
//
// Operations clamp at document boundaries instead of failing: backspace at
// the origin, delete at the end, and arrows at the edges are no-ops. No
// engine method returns an error.
//
// Dirty tracking follows one rule: mark exactly what changed on screen. An
// in-line edit marks its row. A split or join marks from the edit point to
// the end of the buffer, because every following row's screen position
// shifts. A viewport scroll marks the whole window, because every visible
// row's offset changed even where content did not.
//
// # Thread Safety
//
// The engine is single-threaded by contract: the outer loop blocks on one
// key event, applies one action to completion, drains one flush, and only
// then waits again. Nothing here locks, and nothing here may be shared
// across goroutines. The save path reads Lines() between operations under
// the same discipline.
package editor
