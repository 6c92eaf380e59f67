package richtext

import (
	"reflect"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSpanValidity(t *testing.T) {
	cases := []struct {
		spn   Span
		valid bool
	}{
		{Span{Start: 0, End: 5}, true},
		{Span{Start: 3, End: 4}, true},
		{Span{Start: 5, End: 5}, false}, // empty range
		{Span{Start: 5, End: 3}, false}, // inverted
		{Span{Start: -1, End: 3}, false},
	}
	for _, c := range cases {
		if c.spn.IsValid() != c.valid {
			t.Errorf("span %d…%d: expected valid=%v", c.spn.Start, c.spn.End, c.valid)
		}
	}
	if (Span{Start: 2, End: 9}).Length() != 7 {
		t.Errorf("expected span 2…9 to have length 7")
	}
	if (Span{Start: 9, End: 2}).Length() != 0 {
		t.Errorf("expected invalid span to have length 0")
	}
}

func TestDocumentValidate(t *testing.T) {
	doc := Document{
		Text:  "Hello",
		Spans: []Span{{Start: 0, End: 5, Attributes: Style{Bold: true}}},
	}
	if !doc.Validate() {
		t.Errorf("expected in-bounds document to validate")
	}
	doc.Spans = append(doc.Spans, Span{Start: 3, End: 10, Attributes: Style{Italic: true}})
	if doc.Validate() {
		t.Errorf("expected out-of-bounds span to fail validation")
	}
}

func TestDocumentLengthCountsCodeUnits(t *testing.T) {
	// "🤖" is outside the BMP and counts as a surrogate pair
	doc := Document{Text: "a🤖b"}
	if doc.Length() != 4 {
		t.Errorf("expected length 4 in UTF-16 code units, got %d", doc.Length())
	}
}

func TestMergeAdjacentIdenticalStyles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext")
	defer teardown()
	//
	bold := Style{Bold: true}
	spans := []Span{
		{Start: 0, End: 5, Attributes: bold},
		{Start: 5, End: 10, Attributes: bold},
	}
	merged := MergeAdjacent(spans)
	expected := []Span{{Start: 0, End: 10, Attributes: bold}}
	if !reflect.DeepEqual(merged, expected) {
		t.Errorf("expected adjacent bold spans to merge into 0…10, got %v", merged)
	}
}

func TestMergeAdjacentDifferingStyles(t *testing.T) {
	spans := []Span{
		{Start: 0, End: 5, Attributes: Style{Bold: true}},
		{Start: 5, End: 10, Attributes: Style{Italic: true}},
	}
	merged := MergeAdjacent(spans)
	if len(merged) != 2 {
		t.Errorf("expected differing neighbour spans to stay apart, got %v", merged)
	}
}

func TestNormalizeSortsAndDrops(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext")
	defer teardown()
	//
	bold := Style{Bold: true}
	spans := []Span{
		{Start: 7, End: 9, Attributes: bold},
		{Start: 0, End: 3, Attributes: bold},
		{Start: 4, End: 4, Attributes: bold},    // invalid, dropped
		{Start: 3, End: 7, Attributes: Style{}}, // plain, dropped
	}
	normalized := Normalize(spans)
	expected := []Span{
		{Start: 0, End: 3, Attributes: bold},
		{Start: 7, End: 9, Attributes: bold},
	}
	if !reflect.DeepEqual(normalized, expected) {
		t.Errorf("unexpected normalization result: %v", normalized)
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	spans := []Span{
		{Start: 2, End: 4, Attributes: Style{Italic: true}},
		{Start: 4, End: 8, Attributes: Style{Italic: true}},
		{Start: 9, End: 12, Attributes: Style{Bold: true}},
	}
	once := Normalize(spans)
	twice := Normalize(once)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("normalize is not idempotent: %v != %v", once, twice)
	}
}
