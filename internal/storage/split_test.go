package storage

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/avray/skiff/internal/engine/buffer"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"empty", "", []string{""}},
		{"single line", "hello", []string{"hello"}},
		{"lf", "a\nb", []string{"a", "b"}},
		{"crlf", "a\r\nb", []string{"a", "b"}},
		{"cr", "a\rb", []string{"a", "b"}},
		{"mixed", "a\r\nb\nc\rd", []string{"a", "b", "c", "d"}},
		{"trailing lf", "a\n", []string{"a", ""}},
		{"trailing crlf", "a\r\n", []string{"a", ""}},
		{"lone lf", "\n", []string{"", ""}},
		{"lone crlf", "\r\n", []string{"", ""}},
		{"blank middle line", "a\n\nb", []string{"a", "", "b"}},
		{"cr lf as two breaks", "a\n\rb", []string{"a", "", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitLines(tt.content)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("SplitLines(%q) mismatch (-want +got):\n%s", tt.content, diff)
			}
		})
	}
}

func TestJoinLines(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		le    buffer.LineEnding
		want  string
	}{
		{"single line gains separator", []string{"a"}, buffer.LineEndingLF, "a\n"},
		{"two lines", []string{"a", "b"}, buffer.LineEndingLF, "a\nb\n"},
		{"final empty line keeps one separator", []string{"a", ""}, buffer.LineEndingLF, "a\n"},
		{"empty document", []string{""}, buffer.LineEndingLF, "\n"},
		{"crlf", []string{"a", "b"}, buffer.LineEndingCRLF, "a\r\nb\r\n"},
		{"cr", []string{"a", "b"}, buffer.LineEndingCR, "a\rb\r"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := JoinLines(tt.lines, tt.le); got != tt.want {
				t.Errorf("JoinLines(%v, %v) = %q, want %q", tt.lines, tt.le, got, tt.want)
			}
		})
	}
}

func TestSplitJoinStable(t *testing.T) {
	// A file with a trailing separator survives a load/save cycle
	// byte for byte.
	content := "alpha\nbeta\n\ngamma\n"
	lines := SplitLines(content)
	if got := JoinLines(lines, buffer.LineEndingLF); got != content {
		t.Errorf("JoinLines(SplitLines(%q)) = %q, want unchanged", content, got)
	}
}
