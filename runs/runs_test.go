package runs

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func base() Attributes {
	return Attributes{AttrFont: NewFont("Helvetica", 12)}
}

func countRuns(t *Text) int {
	cnt := 0
	t.EachRun(func(from, to int, attrs Attributes) error {
		cnt++
		return nil
	})
	return cnt
}

func TestNewCoversWholeText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext")
	defer teardown()
	//
	text := New("Hello World", base())
	if text.Len() != 11 {
		t.Errorf("expected length 11, got %d", text.Len())
	}
	if cnt := countRuns(text); cnt != 1 {
		t.Errorf("expected a fresh text to have 1 run, has %d", cnt)
	}
	if text.String() != "Hello World" {
		t.Errorf("text content changed: '%s'", text.String())
	}
}

func TestLenCountsCodeUnits(t *testing.T) {
	text := New("a🤖b", base())
	if text.Len() != 4 {
		t.Errorf("expected 4 code units, got %d", text.Len())
	}
	if text.String() != "a🤖b" {
		t.Errorf("text content changed: '%s'", text.String())
	}
}

func TestSetAttributeSplitsRuns(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext")
	defer teardown()
	//
	text := New("Hello World", base())
	text.SetAttribute(AttrUnderline, true, 6, 11)
	if cnt := countRuns(text); cnt != 2 {
		t.Errorf("expected 2 runs after attribute write, has %d", cnt)
	}
	if text.AttributesAt(5).Flag(AttrUnderline) {
		t.Errorf("expected position 5 to stay plain")
	}
	if !text.AttributesAt(6).Flag(AttrUnderline) {
		t.Errorf("expected position 6 to be underlined")
	}
}

func TestSetAttributeCoalesces(t *testing.T) {
	text := New("Hello World", base())
	text.SetAttribute(AttrUnderline, true, 0, 5)
	text.SetAttribute(AttrUnderline, true, 5, 11)
	if cnt := countRuns(text); cnt != 1 {
		t.Errorf("expected equal neighbour runs to coalesce, has %d runs", cnt)
	}
}

func TestRemoveAttributeRestoresRun(t *testing.T) {
	text := New("Hello World", base())
	text.SetAttribute(AttrStrikethrough, true, 2, 7)
	text.RemoveAttribute(AttrStrikethrough, 2, 7)
	if cnt := countRuns(text); cnt != 1 {
		t.Errorf("expected removal to restore a single run, has %d", cnt)
	}
}

func TestInvalidRangesAreNoOps(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext")
	defer teardown()
	//
	text := New("Hello", base())
	text.SetAttribute(AttrUnderline, true, -1, 3)
	text.SetAttribute(AttrUnderline, true, 2, 9)
	text.SetAttribute(AttrUnderline, true, 4, 2)
	text.Replace(3, 99, "x", nil)
	if cnt := countRuns(text); cnt != 1 {
		t.Errorf("expected text to be untouched, has %d runs", cnt)
	}
	if text.String() != "Hello" {
		t.Errorf("expected text content to be untouched, got '%s'", text.String())
	}
}

func TestAttributesAtBounds(t *testing.T) {
	text := New("Hello", base())
	if text.AttributesAt(-1) != nil {
		t.Errorf("expected nil attributes before the text")
	}
	if text.AttributesAt(5) != nil {
		t.Errorf("expected nil attributes at end of text")
	}
	if text.AttributesAt(4) == nil {
		t.Errorf("expected attributes at last position")
	}
}

func TestReplaceInsertsWithExplicitAttributes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext")
	defer teardown()
	//
	text := New("abcdef", base())
	attrs := base()
	attrs[AttrUnderline] = true
	text.Replace(3, 3, "XY", attrs)
	if text.String() != "abcXYdef" {
		t.Errorf("unexpected content after insert: '%s'", text.String())
	}
	if !text.AttributesAt(3).Flag(AttrUnderline) || !text.AttributesAt(4).Flag(AttrUnderline) {
		t.Errorf("expected inserted text to carry the explicit attributes")
	}
	if text.AttributesAt(2).Flag(AttrUnderline) || text.AttributesAt(5).Flag(AttrUnderline) {
		t.Errorf("expected surrounding text to stay plain")
	}
}

func TestReplaceInheritsLeftContext(t *testing.T) {
	text := New("abcdef", base())
	text.SetAttribute(AttrUnderline, true, 0, 3)
	text.Replace(3, 3, "XY", nil)
	if !text.AttributesAt(3).Flag(AttrUnderline) {
		t.Errorf("expected insertion to inherit formatting from the left")
	}
}

func TestReplaceDeletesAndShifts(t *testing.T) {
	text := New("Hello World", base())
	text.SetAttribute(AttrUnderline, true, 6, 11)
	text.Replace(0, 6, "", nil)
	if text.String() != "World" {
		t.Errorf("unexpected content after delete: '%s'", text.String())
	}
	if !text.AttributesAt(0).Flag(AttrUnderline) {
		t.Errorf("expected shifted run to keep its attributes")
	}
}

func TestReplaceIntoVoidTextUsesBase(t *testing.T) {
	text := New("", base())
	text.Replace(0, 0, "hi", nil)
	if text.String() != "hi" {
		t.Errorf("unexpected content: '%s'", text.String())
	}
	f, ok := text.AttributesAt(0).Font()
	if !ok || f.Family != "Helvetica" {
		t.Errorf("expected inserted text to carry base attributes")
	}
}

func TestEachRunInRangeClips(t *testing.T) {
	text := New("Hello World", base())
	text.SetAttribute(AttrUnderline, true, 4, 8)
	var bounds [][2]int
	text.EachRunInRange(2, 10, func(from, to int, attrs Attributes) error {
		bounds = append(bounds, [2]int{from, to})
		return nil
	})
	expected := [][2]int{{2, 4}, {4, 8}, {8, 10}}
	if len(bounds) != len(expected) {
		t.Fatalf("expected 3 clipped runs, got %v", bounds)
	}
	for i, b := range bounds {
		if b != expected[i] {
			t.Errorf("run %d: expected bounds %v, got %v", i, expected[i], b)
		}
	}
}
