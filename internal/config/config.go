package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/avray/skiff/internal/engine/action"
	"github.com/avray/skiff/internal/input/key"
)

// EditorConfig holds core editing settings.
type EditorConfig struct {
	// PageSize is the number of text rows. 0 sizes the page from the
	// terminal height.
	PageSize int `toml:"page_size"`

	// TabWidth is the tab stop distance in columns.
	TabWidth int `toml:"tab_width"`
}

// GutterConfig holds line-number margin settings.
type GutterConfig struct {
	// ShowLineNumbers toggles the line-number margin.
	ShowLineNumbers bool `toml:"show_line_numbers"`

	// LineNumberWidth pins the number column width in digits. 0 sizes
	// it from the line count.
	LineNumberWidth int `toml:"line_number_width"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	// File is the log destination path. Empty disables logging.
	File string `toml:"file"`

	// Level is the minimum level to record: debug, info, warn, error.
	Level string `toml:"level"`
}

// Config is the full editor configuration. Values are layered: defaults,
// then the TOML file, then the rc script, then command-line flags.
type Config struct {
	Editor EditorConfig `toml:"editor"`
	Gutter GutterConfig `toml:"gutter"`

	// Keys maps key chords to action names, overriding the default
	// bindings. Example: "C-x" = "editor.quit".
	Keys map[string]string `toml:"keys"`

	Log LogConfig `toml:"log"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Editor: EditorConfig{
			PageSize: 0,
			TabWidth: 4,
		},
		Gutter: GutterConfig{
			ShowLineNumbers: true,
			LineNumberWidth: 0,
		},
		Keys: map[string]string{},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads the TOML file at path over the defaults and validates the
// result. A missing file is not an error; the defaults stand. An empty
// path skips the file entirely.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, newParseError(path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges and the keymap overrides. The final
// effective page size is checked separately once the terminal size is
// known.
func (c *Config) Validate() error {
	if c.Editor.PageSize < 0 {
		return fmt.Errorf("editor.page_size must be >= 0, got %d", c.Editor.PageSize)
	}
	if c.Editor.TabWidth < 1 {
		return fmt.Errorf("editor.tab_width must be >= 1, got %d", c.Editor.TabWidth)
	}
	if c.Gutter.LineNumberWidth < 0 {
		return fmt.Errorf("gutter.line_number_width must be >= 0, got %d", c.Gutter.LineNumberWidth)
	}
	for chord, name := range c.Keys {
		if _, err := key.Parse(chord); err != nil {
			return fmt.Errorf("keys: %w", err)
		}
		if _, ok := action.FromName(name); !ok {
			return fmt.Errorf("keys %q: unknown action %q", chord, name)
		}
	}
	return nil
}

// Set updates a single option by name, coercing the value. The rc
// script layer feeds skiff.set(name, value) through here.
func (c *Config) Set(name string, value any) error {
	switch name {
	case "page_size":
		n, err := toInt(value)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		c.Editor.PageSize = n
	case "tab_width":
		n, err := toInt(value)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		c.Editor.TabWidth = n
	case "show_line_numbers":
		b, err := toBool(value)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		c.Gutter.ShowLineNumbers = b
	case "line_number_width":
		n, err := toInt(value)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		c.Gutter.LineNumberWidth = n
	default:
		return fmt.Errorf("unknown option %q", name)
	}
	return nil
}

// SetKey records a keymap override after validating chord and action
// name. The rc script layer feeds skiff.bind(chord, action) through
// here.
func (c *Config) SetKey(chord, actionName string) error {
	if _, err := key.Parse(chord); err != nil {
		return err
	}
	if _, ok := action.FromName(actionName); !ok {
		return fmt.Errorf("unknown action %q", actionName)
	}
	if c.Keys == nil {
		c.Keys = map[string]string{}
	}
	c.Keys[chord] = actionName
	return nil
}

// UserConfigDir returns the per-user configuration directory:
// $XDG_CONFIG_HOME/skiff, or ~/.config/skiff.
func UserConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "skiff")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "skiff")
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return filepath.Join(UserConfigDir(), "config.toml")
}

// DefaultRCPath returns the default rc script location.
func DefaultRCPath() string {
	return filepath.Join(UserConfigDir(), "init.lua")
}

// toInt accepts the integer representations the TOML and Lua layers
// produce.
func toInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		if n != float64(int(n)) {
			return 0, fmt.Errorf("expected integer, got %v", n)
		}
		return int(n), nil
	default:
		return 0, fmt.Errorf("expected integer, got %T", v)
	}
}

func toBool(v any) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("expected boolean, got %T", v)
	}
	return b, nil
}
