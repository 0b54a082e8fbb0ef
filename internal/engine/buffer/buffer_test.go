package buffer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNew(t *testing.T) {
	b := New()

	if !b.IsEmpty() {
		t.Error("new buffer should be empty")
	}

	if b.LineCount() != 1 {
		t.Errorf("expected 1 line, got %d", b.LineCount())
	}

	if b.Line(0) != "" {
		t.Errorf("expected empty line, got %q", b.Line(0))
	}
}

func TestFromLines(t *testing.T) {
	lines := []string{"abc", "def", "ghi"}
	b := FromLines(lines)

	if b.LineCount() != 3 {
		t.Errorf("expected 3 lines, got %d", b.LineCount())
	}

	if diff := cmp.Diff(lines, b.Lines()); diff != "" {
		t.Errorf("Lines() mismatch (-want +got):\n%s", diff)
	}
}

func TestFromLinesEmpty(t *testing.T) {
	b := FromLines(nil)

	if b.LineCount() != 1 {
		t.Errorf("expected 1 line, got %d", b.LineCount())
	}

	if !b.IsEmpty() {
		t.Error("buffer from empty input should be one empty line")
	}
}

func TestSetLines(t *testing.T) {
	b := FromLines([]string{"old"})

	b.SetLines([]string{"new", "content"})
	if diff := cmp.Diff([]string{"new", "content"}, b.Lines()); diff != "" {
		t.Errorf("Lines() mismatch (-want +got):\n%s", diff)
	}

	b.SetLines(nil)
	if !b.IsEmpty() {
		t.Error("SetLines(nil) should leave one empty line")
	}
}

func TestLinesIndependent(t *testing.T) {
	b := FromLines([]string{"abc"})

	lines := b.Lines()
	lines[0] = "mutated"

	if b.Line(0) != "abc" {
		t.Errorf("buffer changed through Lines() copy: %q", b.Line(0))
	}
}

func TestInsertRune(t *testing.T) {
	b := FromLines([]string{"abc", "def"})

	b.InsertRune(0, 1, 'X')

	if b.Line(0) != "aXbc" {
		t.Errorf("expected %q, got %q", "aXbc", b.Line(0))
	}

	if b.Line(1) != "def" {
		t.Errorf("other line changed: %q", b.Line(1))
	}
}

func TestInsertRuneAtEnds(t *testing.T) {
	b := FromLines([]string{"bc"})

	b.InsertRune(0, 0, 'a')
	if b.Line(0) != "abc" {
		t.Errorf("expected %q, got %q", "abc", b.Line(0))
	}

	b.InsertRune(0, 3, 'd')
	if b.Line(0) != "abcd" {
		t.Errorf("expected %q, got %q", "abcd", b.Line(0))
	}
}

func TestInsertRuneClamped(t *testing.T) {
	b := FromLines([]string{"ab"})

	b.InsertRune(0, 100, 'c')
	if b.Line(0) != "abc" {
		t.Errorf("expected clamp to end, got %q", b.Line(0))
	}

	b.InsertRune(-5, -5, 'z')
	if b.Line(0) != "zabc" {
		t.Errorf("expected clamp to start, got %q", b.Line(0))
	}
}

func TestInsertRuneWide(t *testing.T) {
	b := FromLines([]string{"héllo"})

	// Columns address runes, not bytes.
	b.InsertRune(0, 2, 'X')

	if b.Line(0) != "héXllo" {
		t.Errorf("expected %q, got %q", "héXllo", b.Line(0))
	}

	if b.LineLen(0) != 6 {
		t.Errorf("expected rune length 6, got %d", b.LineLen(0))
	}
}

func TestDeleteRune(t *testing.T) {
	b := FromLines([]string{"abc"})

	b.DeleteRune(0, 1)

	if b.Line(0) != "ac" {
		t.Errorf("expected %q, got %q", "ac", b.Line(0))
	}
}

func TestDeleteRuneEmptyLine(t *testing.T) {
	b := New()

	b.DeleteRune(0, 0)

	if b.LineCount() != 1 || b.Line(0) != "" {
		t.Error("delete on empty line should be a no-op")
	}
}

func TestDeleteRuneClamped(t *testing.T) {
	b := FromLines([]string{"abc"})

	b.DeleteRune(0, 100)
	if b.Line(0) != "ab" {
		t.Errorf("expected clamp to last rune, got %q", b.Line(0))
	}
}

func TestSplitLine(t *testing.T) {
	b := FromLines([]string{"abc"})

	b.SplitLine(0, 1)

	want := []string{"a", "bc"}
	if diff := cmp.Diff(want, b.Lines()); diff != "" {
		t.Errorf("Lines() mismatch (-want +got):\n%s", diff)
	}
}

func TestSplitLineShiftsFollowing(t *testing.T) {
	b := FromLines([]string{"abc", "def", "ghi"})

	b.SplitLine(1, 2)

	want := []string{"abc", "de", "f", "ghi"}
	if diff := cmp.Diff(want, b.Lines()); diff != "" {
		t.Errorf("Lines() mismatch (-want +got):\n%s", diff)
	}
}

func TestSplitLineAtEnds(t *testing.T) {
	b := FromLines([]string{"abc"})

	b.SplitLine(0, 0)
	want := []string{"", "abc"}
	if diff := cmp.Diff(want, b.Lines()); diff != "" {
		t.Errorf("split at start mismatch (-want +got):\n%s", diff)
	}

	b.SplitLine(1, 3)
	want = []string{"", "abc", ""}
	if diff := cmp.Diff(want, b.Lines()); diff != "" {
		t.Errorf("split at end mismatch (-want +got):\n%s", diff)
	}
}

func TestJoinLines(t *testing.T) {
	b := FromLines([]string{"abc", "def"})

	b.JoinLines(0)

	want := []string{"abcdef"}
	if diff := cmp.Diff(want, b.Lines()); diff != "" {
		t.Errorf("Lines() mismatch (-want +got):\n%s", diff)
	}
}

func TestJoinLinesLastLine(t *testing.T) {
	b := FromLines([]string{"abc", "def"})

	b.JoinLines(1)

	want := []string{"abc", "def"}
	if diff := cmp.Diff(want, b.Lines()); diff != "" {
		t.Errorf("join on last line should be a no-op (-want +got):\n%s", diff)
	}
}

func TestSplitThenJoinRoundTrip(t *testing.T) {
	tests := []struct {
		line string
		col  int
	}{
		{"hello world", 0},
		{"hello world", 5},
		{"hello world", 11},
		{"", 0},
		{"héllo wörld", 3},
	}

	for _, tt := range tests {
		b := FromLines([]string{tt.line})
		b.SplitLine(0, tt.col)
		b.JoinLines(0)

		if b.LineCount() != 1 || b.Line(0) != tt.line {
			t.Errorf("split(%q, %d) then join = %v, want original line",
				tt.line, tt.col, b.Lines())
		}
	}
}

func TestContent(t *testing.T) {
	b := FromLines([]string{"a", "b"}, WithCRLF())

	if b.Content() != "a\r\nb" {
		t.Errorf("expected %q, got %q", "a\r\nb", b.Content())
	}
}

func TestLineClamped(t *testing.T) {
	b := FromLines([]string{"abc", "def"})

	if b.Line(100) != "def" {
		t.Errorf("expected clamp to last line, got %q", b.Line(100))
	}

	if b.Line(-1) != "abc" {
		t.Errorf("expected clamp to first line, got %q", b.Line(-1))
	}
}

func TestLineEndingStrings(t *testing.T) {
	tests := []struct {
		le       LineEnding
		str      string
		sequence string
	}{
		{LineEndingLF, "LF", "\n"},
		{LineEndingCRLF, "CRLF", "\r\n"},
		{LineEndingCR, "CR", "\r"},
	}

	for _, tt := range tests {
		if got := tt.le.String(); got != tt.str {
			t.Errorf("String() = %q, want %q", got, tt.str)
		}
		if got := tt.le.Sequence(); got != tt.sequence {
			t.Errorf("Sequence() = %q, want %q", got, tt.sequence)
		}
	}
}

func TestDetectLineEnding(t *testing.T) {
	tests := []struct {
		text     string
		expected LineEnding
	}{
		{"unix\nstyle\n", LineEndingLF},
		{"windows\r\nstyle\r\n", LineEndingCRLF},
		{"old mac\rstyle\r", LineEndingCR},
		{"mixed\r\nmore\nlines", LineEndingCRLF}, // CRLF wins ties
		{"mostly\nunix\nhere\r\n", LineEndingLF},
	}

	for _, tt := range tests {
		got := DetectLineEnding(tt.text)
		if got != tt.expected {
			t.Errorf("DetectLineEnding(%q) = %v, want %v", tt.text, got, tt.expected)
		}
	}
}

func TestDetectLineEndingNone(t *testing.T) {
	if got := DetectLineEnding("no newlines"); got != DefaultLineEnding() {
		t.Errorf("DetectLineEnding with no endings = %v, want platform default %v",
			got, DefaultLineEnding())
	}
}

func TestWithLineEndingOptions(t *testing.T) {
	if New(WithLF()).LineEnding() != LineEndingLF {
		t.Error("WithLF not applied")
	}
	if New(WithCRLF()).LineEnding() != LineEndingCRLF {
		t.Error("WithCRLF not applied")
	}
	if New(WithCR()).LineEnding() != LineEndingCR {
		t.Error("WithCR not applied")
	}
	if New(WithDetectedLineEnding("a\r\nb")).LineEnding() != LineEndingCRLF {
		t.Error("WithDetectedLineEnding not applied")
	}
}
