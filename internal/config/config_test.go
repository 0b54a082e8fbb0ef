package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile error = %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Editor.PageSize != 0 {
		t.Errorf("default page_size = %d, want 0 (auto)", cfg.Editor.PageSize)
	}
	if cfg.Editor.TabWidth != 4 {
		t.Errorf("default tab_width = %d, want 4", cfg.Editor.TabWidth)
	}
	if !cfg.Gutter.ShowLineNumbers {
		t.Error("default show_line_numbers = false, want true")
	}
	if cfg.Gutter.LineNumberWidth != 0 {
		t.Errorf("default line_number_width = %d, want 0 (auto)", cfg.Gutter.LineNumberWidth)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("default log level = %q, want %q", cfg.Log.Level, "info")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[editor]
page_size = 20
tab_width = 8

[gutter]
show_line_numbers = false

[keys]
"C-x" = "editor.quit"
"F2" = "file.save"

[log]
file = "/tmp/skiff.log"
level = "debug"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}

	if cfg.Editor.PageSize != 20 {
		t.Errorf("page_size = %d, want 20", cfg.Editor.PageSize)
	}
	if cfg.Editor.TabWidth != 8 {
		t.Errorf("tab_width = %d, want 8", cfg.Editor.TabWidth)
	}
	if cfg.Gutter.ShowLineNumbers {
		t.Error("show_line_numbers = true, want false")
	}
	if got := cfg.Keys["C-x"]; got != "editor.quit" {
		t.Errorf("keys C-x = %q, want %q", got, "editor.quit")
	}
	if got := cfg.Keys["F2"]; got != "file.save" {
		t.Errorf("keys F2 = %q, want %q", got, "file.save")
	}
	if cfg.Log.File != "/tmp/skiff.log" {
		t.Errorf("log file = %q, want /tmp/skiff.log", cfg.Log.File)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level = %q, want debug", cfg.Log.Level)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
[editor]
page_size = 10
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}
	if cfg.Editor.PageSize != 10 {
		t.Errorf("page_size = %d, want 10", cfg.Editor.PageSize)
	}
	if cfg.Editor.TabWidth != 4 {
		t.Errorf("tab_width = %d, want default 4", cfg.Editor.TabWidth)
	}
	if !cfg.Gutter.ShowLineNumbers {
		t.Error("show_line_numbers should keep default true")
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load of missing file error = %v", err)
	}
	if cfg.Editor.TabWidth != 4 {
		t.Errorf("missing file should yield defaults, tab_width = %d", cfg.Editor.TabWidth)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}
	if cfg.Editor.TabWidth != 4 {
		t.Errorf("empty path should yield defaults, tab_width = %d", cfg.Editor.TabWidth)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := writeConfig(t, "[editor\npage_size = 1\n")

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load of malformed TOML should fail")
	}
	if !strings.Contains(err.Error(), "parse error") {
		t.Errorf("error = %v, want parse error mention", err)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"negative page size", "[editor]\npage_size = -1\n"},
		{"zero tab width", "[editor]\ntab_width = 0\n"},
		{"negative gutter width", "[gutter]\nline_number_width = -2\n"},
		{"unknown action", "[keys]\n\"C-x\" = \"editor.explode\"\n"},
		{"bad chord", "[keys]\n\"Q-x\" = \"editor.quit\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			if _, err := Load(path); err == nil {
				t.Errorf("Load should reject %s", tt.name)
			}
		})
	}
}

func TestSet(t *testing.T) {
	cfg := Default()

	if err := cfg.Set("page_size", 15); err != nil {
		t.Fatalf("Set page_size error = %v", err)
	}
	if cfg.Editor.PageSize != 15 {
		t.Errorf("page_size = %d, want 15", cfg.Editor.PageSize)
	}

	// Lua numbers arrive as float64.
	if err := cfg.Set("tab_width", float64(2)); err != nil {
		t.Fatalf("Set tab_width error = %v", err)
	}
	if cfg.Editor.TabWidth != 2 {
		t.Errorf("tab_width = %d, want 2", cfg.Editor.TabWidth)
	}

	if err := cfg.Set("show_line_numbers", false); err != nil {
		t.Fatalf("Set show_line_numbers error = %v", err)
	}
	if cfg.Gutter.ShowLineNumbers {
		t.Error("show_line_numbers = true, want false")
	}

	if err := cfg.Set("line_number_width", int64(6)); err != nil {
		t.Fatalf("Set line_number_width error = %v", err)
	}
	if cfg.Gutter.LineNumberWidth != 6 {
		t.Errorf("line_number_width = %d, want 6", cfg.Gutter.LineNumberWidth)
	}
}

func TestSetErrors(t *testing.T) {
	cfg := Default()

	if err := cfg.Set("no_such_option", 1); err == nil {
		t.Error("Set should reject unknown option names")
	}
	if err := cfg.Set("page_size", "twenty"); err == nil {
		t.Error("Set should reject non-numeric page_size")
	}
	if err := cfg.Set("page_size", 1.5); err == nil {
		t.Error("Set should reject fractional page_size")
	}
	if err := cfg.Set("show_line_numbers", 1); err == nil {
		t.Error("Set should reject non-boolean show_line_numbers")
	}
}

func TestSetKey(t *testing.T) {
	cfg := Default()

	if err := cfg.SetKey("C-d", "edit.delete-forward"); err != nil {
		t.Fatalf("SetKey error = %v", err)
	}
	if got := cfg.Keys["C-d"]; got != "edit.delete-forward" {
		t.Errorf("keys C-d = %q, want edit.delete-forward", got)
	}

	if err := cfg.SetKey("C-d", "editor.quit"); err != nil {
		t.Fatalf("SetKey rebind error = %v", err)
	}
	if got := cfg.Keys["C-d"]; got != "editor.quit" {
		t.Errorf("rebound keys C-d = %q, want editor.quit", got)
	}
}

func TestSetKeyErrors(t *testing.T) {
	cfg := Default()

	if err := cfg.SetKey("", "editor.quit"); err == nil {
		t.Error("SetKey should reject an empty chord")
	}
	if err := cfg.SetKey("C-x", "no.such.action"); err == nil {
		t.Error("SetKey should reject unknown action names")
	}
}

func TestSetKeyOnNilMap(t *testing.T) {
	cfg := &Config{}
	if err := cfg.SetKey("C-x", "editor.quit"); err != nil {
		t.Fatalf("SetKey error = %v", err)
	}
	if got := cfg.Keys["C-x"]; got != "editor.quit" {
		t.Errorf("keys C-x = %q, want editor.quit", got)
	}
}

func TestUserConfigDirRespectsXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-test")

	if got := UserConfigDir(); got != "/tmp/xdg-test/skiff" {
		t.Errorf("UserConfigDir = %q, want /tmp/xdg-test/skiff", got)
	}
	if got := DefaultPath(); got != "/tmp/xdg-test/skiff/config.toml" {
		t.Errorf("DefaultPath = %q, want /tmp/xdg-test/skiff/config.toml", got)
	}
	if got := DefaultRCPath(); got != "/tmp/xdg-test/skiff/init.lua" {
		t.Errorf("DefaultRCPath = %q, want /tmp/xdg-test/skiff/init.lua", got)
	}
}
