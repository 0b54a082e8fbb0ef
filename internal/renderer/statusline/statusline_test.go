package statusline

import (
	"strings"
	"testing"

	"github.com/avray/skiff/internal/renderer/backend"
)

func newBackend(t *testing.T, w, h int) *backend.Null {
	t.Helper()
	b := backend.NewNull(w, h)
	if err := b.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	return b
}

func TestRenderShowsFileAndPosition(t *testing.T) {
	b := newBackend(t, 60, 2)
	s := New()

	s.Render(b, 1, 60, Status{
		Path:       "notes.txt",
		Row:        4,
		Col:        2,
		LineCount:  120,
		Encoding:   "UTF-8",
		LineEnding: "LF",
	})

	row := b.RowString(1)
	if !strings.HasPrefix(row, " notes.txt") {
		t.Errorf("row = %q, want notes.txt on the left", row)
	}
	if !strings.Contains(row, "5:3") {
		t.Errorf("row = %q, want 1-based position 5:3", row)
	}
	if !strings.Contains(row, "120 lines") {
		t.Errorf("row = %q, want line count", row)
	}
	if !strings.Contains(row, "UTF-8") || !strings.Contains(row, "LF") {
		t.Errorf("row = %q, want encoding and line ending labels", row)
	}
}

func TestRenderModifiedMarker(t *testing.T) {
	b := newBackend(t, 60, 1)
	s := New()

	s.Render(b, 0, 60, Status{Path: "a.txt", Modified: true, LineCount: 1})

	if row := b.RowString(0); !strings.Contains(row, "a.txt [+]") {
		t.Errorf("row = %q, want modified marker", row)
	}
}

func TestRenderUnnamedBuffer(t *testing.T) {
	b := newBackend(t, 60, 1)
	s := New()

	s.Render(b, 0, 60, Status{LineCount: 1})

	if row := b.RowString(0); !strings.Contains(row, "[No Name]") {
		t.Errorf("row = %q, want [No Name]", row)
	}
}

func TestRenderMessageReplacesLeftSide(t *testing.T) {
	b := newBackend(t, 60, 1)
	s := New()

	s.Render(b, 0, 60, Status{
		Path:      "a.txt",
		LineCount: 3,
		Message:   "unsaved changes, press C-q again to quit",
	})

	row := b.RowString(0)
	if !strings.Contains(row, "unsaved changes") {
		t.Errorf("row = %q, want the message", row)
	}
	if strings.Contains(row, "a.txt") {
		t.Errorf("row = %q, message should replace the file name", row)
	}
	if !strings.Contains(row, "1:1") {
		t.Errorf("row = %q, position should survive a message", row)
	}
}

func TestRenderHeader(t *testing.T) {
	b := newBackend(t, 40, 1)
	s := New()

	s.RenderHeader(b, 0, 40, Status{Path: "doc.md", Modified: true})

	row := b.RowString(0)
	if !strings.Contains(row, "skiff") {
		t.Errorf("header = %q, want program name", row)
	}
	if !strings.Contains(row, "doc.md [+]") {
		t.Errorf("header = %q, want file name with marker", row)
	}
}

func TestBarsFillFullWidth(t *testing.T) {
	b := newBackend(t, 20, 1)
	s := New()

	s.Render(b, 0, 20, Status{Path: "x", LineCount: 1})

	// Every cell carries the bar style, not just the text.
	for x := 0; x < 20; x++ {
		if got := b.GetCell(x, 0).Style; !got.Equals(s.barStyle) {
			t.Fatalf("cell %d style = %v, want bar style", x, got)
		}
	}
}

func TestNarrowWidthDoesNotPanic(t *testing.T) {
	b := newBackend(t, 8, 1)
	s := New()

	s.Render(b, 0, 8, Status{
		Path:       "very-long-file-name.txt",
		Row:        999,
		Col:        999,
		LineCount:  100000,
		Encoding:   "UTF-8",
		LineEnding: "CRLF",
	})
	// The right side wins the collision; just ensure we stayed in bounds.
	if got := b.RowString(0); got == "" {
		t.Error("expected some content on a narrow bar")
	}
}
