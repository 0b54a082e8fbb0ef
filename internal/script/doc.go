// Package script runs the user's init.lua against the configuration.
//
// The interpreter is sandboxed: only the base, table, string, and math
// libraries are opened. io, os, debug, and package are absent, so rc
// scripts cannot touch the file system or spawn processes.
//
// Scripts drive the editor through the skiff module:
//
//	skiff.set("page_size", 20)
//	skiff.set("show_line_numbers", false)
//	skiff.bind("C-x", "editor.quit")
//	skiff.log("init.lua loaded")
//
// Script errors are returned to the caller, which reports them and
// carries on with the configuration built so far. The rc file runs
// before the terminal is initialized, so print() output is visible.
package script
