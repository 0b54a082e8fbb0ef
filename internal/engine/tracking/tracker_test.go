package tracking

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/avray/skiff/internal/engine/buffer"
	"github.com/avray/skiff/internal/engine/viewport"
)

func TestMarkRow(t *testing.T) {
	tr := NewTracker()

	if tr.IsDirty() {
		t.Error("new tracker should be clean")
	}

	tr.MarkRow(3)
	tr.MarkRow(1)
	tr.MarkRow(3) // duplicate

	if !tr.IsDirty() {
		t.Error("tracker should be dirty after marks")
	}

	if diff := cmp.Diff([]int{1, 3}, tr.DirtyRows()); diff != "" {
		t.Errorf("DirtyRows mismatch (-want +got):\n%s", diff)
	}
}

func TestMarkRowNegative(t *testing.T) {
	tr := NewTracker()

	tr.MarkRow(-1)

	if tr.IsDirty() {
		t.Error("negative rows should be ignored")
	}
}

func TestMarkRange(t *testing.T) {
	tr := NewTracker()

	tr.MarkRange(2, 5)

	if diff := cmp.Diff([]int{2, 3, 4, 5}, tr.DirtyRows()); diff != "" {
		t.Errorf("DirtyRows mismatch (-want +got):\n%s", diff)
	}

	if !tr.IsRowDirty(4) {
		t.Error("row 4 should be dirty")
	}

	if tr.IsRowDirty(6) {
		t.Error("row 6 should be clean")
	}
}

func TestMarkFullRedraw(t *testing.T) {
	tr := NewTracker()

	tr.MarkRow(1)
	tr.MarkFullRedraw()

	if !tr.NeedsFullRedraw() {
		t.Error("full redraw flag should be set")
	}

	if len(tr.DirtyRows()) != 0 {
		t.Error("full redraw should subsume explicit marks")
	}

	// Marks after a full redraw are dropped, but everything stays dirty.
	tr.MarkRow(2)
	if len(tr.DirtyRows()) != 0 {
		t.Error("marks during full redraw should be dropped")
	}

	if !tr.IsRowDirty(99) {
		t.Error("every row is dirty under full redraw")
	}
}

func TestClear(t *testing.T) {
	tr := NewTracker()

	tr.MarkRow(1)
	tr.MarkFullRedraw()
	tr.Clear()

	if tr.IsDirty() || tr.NeedsFullRedraw() {
		t.Error("tracker should be clean after Clear")
	}
}

func TestFlushFiltersToView(t *testing.T) {
	buf := buffer.FromLines([]string{"a", "b", "c", "d", "e"})
	vp := viewport.New(2)
	vp.EnsureVisible(3, buf.LineCount()) // window [2,3]

	tr := NewTracker()
	tr.MarkRow(0) // scrolled out: dropped
	tr.MarkRow(2)
	tr.MarkRow(3)
	tr.MarkRow(4) // below window: dropped

	want := []Update{
		{ScreenRow: 0, Line: 2, Content: "c"},
		{ScreenRow: 1, Line: 3, Content: "d"},
	}

	got := tr.Flush(vp, buf)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Flush mismatch (-want +got):\n%s", diff)
	}

	if tr.IsDirty() {
		t.Error("tracker should be clean after Flush")
	}
}

func TestFlushFullRedraw(t *testing.T) {
	buf := buffer.FromLines([]string{"a", "b", "c"})
	vp := viewport.New(2)

	tr := NewTracker()
	tr.MarkFullRedraw()

	want := []Update{
		{ScreenRow: 0, Line: 0, Content: "a"},
		{ScreenRow: 1, Line: 1, Content: "b"},
	}

	got := tr.Flush(vp, buf)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Flush mismatch (-want +got):\n%s", diff)
	}

	if tr.NeedsFullRedraw() {
		t.Error("full redraw flag should clear after Flush")
	}
}

func TestFlushShortBuffer(t *testing.T) {
	// A page larger than the buffer emits only real rows.
	buf := buffer.FromLines([]string{"only"})
	vp := viewport.New(10)

	tr := NewTracker()
	tr.MarkFullRedraw()

	got := tr.Flush(vp, buf)
	want := []Update{{ScreenRow: 0, Line: 0, Content: "only"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Flush mismatch (-want +got):\n%s", diff)
	}
}

func TestFlushEmpty(t *testing.T) {
	buf := buffer.FromLines([]string{"a"})
	vp := viewport.New(2)

	tr := NewTracker()

	if got := tr.Flush(vp, buf); len(got) != 0 {
		t.Errorf("clean tracker should flush nothing, got %v", got)
	}
}
