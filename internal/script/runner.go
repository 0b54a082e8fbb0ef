package script

import (
	"fmt"
	"os"

	lua "github.com/yuin/gopher-lua"

	"github.com/avray/skiff/internal/config"
)

// LogFunc receives messages from skiff.log.
type LogFunc func(msg string)

// Runner holds a sandboxed Lua state wired to a configuration.
type Runner struct {
	state *lua.LState
	cfg   *config.Config
	logf  LogFunc
}

// New creates a runner whose skiff module mutates cfg. logf may be nil
// to discard skiff.log output.
func New(cfg *config.Config, logf LogFunc) *Runner {
	L := lua.NewState(lua.Options{
		SkipOpenLibs: true,
	})
	openSafeLibraries(L)

	r := &Runner{state: L, cfg: cfg, logf: logf}
	r.registerModule()
	return r
}

// openSafeLibraries opens only safe Lua standard libraries. io, os,
// debug, and package stay closed. dofile and loadfile reach the file
// system through the base library, so they are dropped too.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	L.SetGlobal("dofile", lua.LNil)
	L.SetGlobal("loadfile", lua.LNil)
}

// registerModule installs the skiff table.
func (r *Runner) registerModule() {
	funcs := map[string]lua.LGFunction{
		"set":  r.luaSet,
		"bind": r.luaBind,
		"log":  r.luaLog,
	}
	mod := r.state.SetFuncs(r.state.NewTable(), funcs)
	r.state.SetGlobal("skiff", mod)
}

// RunFile executes the rc file at path. A missing file or empty path is
// not an error.
func (r *Runner) RunFile(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return r.do(func() error {
		return r.state.DoFile(path)
	})
}

// RunString executes a chunk of Lua source.
func (r *Runner) RunString(code string) error {
	return r.do(func() error {
		return r.state.DoString(code)
	})
}

// Close releases the Lua state.
func (r *Runner) Close() {
	r.state.Close()
}

// do executes a chunk with panic recovery.
func (r *Runner) do(fn func() error) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("lua panic: %v", rec)
		}
	}()
	return fn()
}

// luaSet implements skiff.set(name, value).
func (r *Runner) luaSet(L *lua.LState) int {
	name := L.CheckString(1)

	var value any
	switch v := L.Get(2).(type) {
	case lua.LBool:
		value = bool(v)
	case lua.LNumber:
		value = float64(v)
	case lua.LString:
		value = string(v)
	default:
		L.ArgError(2, "expected boolean, number, or string")
		return 0
	}

	if err := r.cfg.Set(name, value); err != nil {
		L.RaiseError("set: %v", err)
	}
	return 0
}

// luaBind implements skiff.bind(chord, action).
func (r *Runner) luaBind(L *lua.LState) int {
	chord := L.CheckString(1)
	actionName := L.CheckString(2)

	if err := r.cfg.SetKey(chord, actionName); err != nil {
		L.RaiseError("bind %q: %v", chord, err)
	}
	return 0
}

// luaLog implements skiff.log(msg).
func (r *Runner) luaLog(L *lua.LState) int {
	msg := L.CheckString(1)
	if r.logf != nil {
		r.logf(msg)
	}
	return 0
}
