// Package config defines editor configuration and its TOML file format.
//
// Configuration is layered. Defaults come first, then the optional TOML
// file, then the Lua rc script, then command-line flags. Each layer only
// touches the values it names.
//
// The file format:
//
//	[editor]
//	page_size = 0        # 0 = size from the terminal
//	tab_width = 4
//
//	[gutter]
//	show_line_numbers = true
//	line_number_width = 0    # 0 = size from the line count
//
//	[keys]
//	"C-x" = "editor.quit"
//
//	[log]
//	file = "/tmp/skiff.log"
//	level = "debug"
//
// Load returns the defaults when the file is absent, so a fresh install
// needs no configuration at all.
package config
