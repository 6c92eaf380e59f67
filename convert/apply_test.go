package convert

import (
	"reflect"
	"testing"

	"github.com/go-text/typesetting/font"
	"github.com/npillmayer/richtext"
	"github.com/npillmayer/richtext/runs"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func baseFont() runs.Font {
	return runs.NewFont("Helvetica", 12)
}

func TestApplyBoldToPlainRange(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext")
	defer teardown()
	//
	text := runs.New("Hello World", base())
	ApplyStyle(text, 0, 5, richtext.Style{Bold: true}, baseFont())
	doc := FromRuns(text)
	expected := []richtext.Span{{Start: 0, End: 5, Attributes: richtext.Style{Bold: true}}}
	if !reflect.DeepEqual(doc.Spans, expected) {
		t.Errorf("expected exactly one bold span 0…5, got %v", doc.Spans)
	}
}

func TestApplyUnboldRemovesSpan(t *testing.T) {
	text := runs.New("Hello World", base())
	ApplyStyle(text, 2, 9, richtext.Style{Bold: true}, baseFont())
	ApplyStyle(text, 2, 9, richtext.Style{}, baseFont())
	doc := FromRuns(text)
	if len(doc.Spans) != 0 {
		t.Errorf("expected unbolding to leave no span, got %v", doc.Spans)
	}
}

func TestApplyPreservesSubRunFonts(t *testing.T) {
	text := runs.New("Hello World", base())
	// give part of the range a different face
	text.SetAttribute(runs.AttrFont, runs.NewFont("Courier", 10), 3, 7)
	ApplyStyle(text, 0, 11, richtext.Style{Bold: true}, baseFont())
	f, _ := text.AttributesAt(4).Font()
	if f.Family != "Courier" || f.Size != 10 {
		t.Errorf("expected the sub-run's family and size to survive, got %v", f)
	}
	if !f.IsBold() {
		t.Errorf("expected the sub-run to turn bold")
	}
	f, _ = text.AttributesAt(0).Font()
	if f.Family != "Helvetica" || !f.IsBold() {
		t.Errorf("expected the surrounding font to turn bold in place, got %v", f)
	}
}

func TestApplyInvalidRangeIsNoOp(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext")
	defer teardown()
	//
	text := runs.New("Hello", base())
	ApplyStyle(text, -2, 3, richtext.Style{Bold: true}, baseFont())
	ApplyStyle(text, 2, 42, richtext.Style{Bold: true}, baseFont())
	ApplyStyle(text, 4, 1, richtext.Style{Bold: true}, baseFont())
	if len(FromRuns(text).Spans) != 0 {
		t.Errorf("expected invalid ranges to leave the text untouched")
	}
}

func TestBoldItalicFallsBackToBold(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext")
	defer teardown()
	//
	// a synthesizer without a bold-italic face
	cv := New(runs.TraitSynthesizer{
		Lookup: func(family string, aspect font.Aspect) bool {
			return !(aspect.Weight >= font.WeightBold && aspect.Style == font.StyleItalic)
		},
	})
	text := runs.New("Hello", base())
	cv.ApplyStyle(text, 0, 5, richtext.Style{Bold: true, Italic: true}, baseFont())
	sty := cv.StylesAt(text, 0)
	if !sty.Bold || sty.Italic {
		t.Errorf("expected fallback to bold-only, got %v", sty)
	}
}

func TestStylesAtEndOfText(t *testing.T) {
	text := runs.New("Hello", base())
	ApplyStyle(text, 0, 5, richtext.Style{Underline: true}, baseFont())
	if sty := StylesAt(text, 5); sty.HasFormatting() {
		t.Errorf("expected the plain style past the last character, got %v", sty)
	}
	if sty := StylesAt(text, -1); sty.HasFormatting() {
		t.Errorf("expected the plain style before the text, got %v", sty)
	}
}

func TestStylesOfSelectionFirstCharacterRule(t *testing.T) {
	text := runs.New("Hello World", base())
	ApplyStyle(text, 0, 5, richtext.Style{Bold: true}, baseFont())
	// selection spans bold and plain text; the first character decides
	sty := StylesOfSelection(text, 0, 11)
	if !sty.Bold {
		t.Errorf("expected the first character's style, got %v", sty)
	}
	sty = StylesOfSelection(text, 5, 11)
	if sty.HasFormatting() {
		t.Errorf("expected the plain style for a selection starting plain, got %v", sty)
	}
}

func TestTypingStyleAndAttributes(t *testing.T) {
	cv := New(nil)
	attrs := cv.TypingAttributes(richtext.Style{Italic: true}, base(), baseFont())
	if sty := cv.TypingStyle(attrs); !sty.Equals(richtext.Style{Italic: true}) {
		t.Errorf("expected typing attributes to derive back to italic, got %v", sty)
	}
	attrs = cv.TypingAttributes(richtext.Style{}, attrs, baseFont())
	if sty := cv.TypingStyle(attrs); sty.HasFormatting() {
		t.Errorf("expected resetting the typing style to derive plain, got %v", sty)
	}
}

func TestInsertWithTypingStyle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext")
	defer teardown()
	//
	cv := New(nil)
	text := runs.New("abcdef", base())
	typing := cv.TypingAttributes(richtext.Style{Italic: true}, text.AttributesAt(2), baseFont())
	text.Replace(3, 3, "XY", typing)
	doc := cv.FromRuns(text)
	if doc.Text != "abcXYdef" {
		t.Fatalf("unexpected text after insert: '%s'", doc.Text)
	}
	expected := []richtext.Span{{Start: 3, End: 5, Attributes: richtext.Style{Italic: true}}}
	if !reflect.DeepEqual(doc.Spans, expected) {
		t.Errorf("expected an italic span exactly over the insertion, got %v", doc.Spans)
	}
}
