package richtext

import "sort"

// --- Span --------------------------------------------------------------

// Span tags a half-open range [Start,End) of a text with a Style.
// Positions are UTF-16 code-unit offsets.
type Span struct {
	Start      int   `json:"start"`
	End        int   `json:"end"`
	Attributes Style `json:"attributes"`
}

// IsValid is true iff the span denotes a non-empty range with a
// non-negative start. A span with End ≤ Start is invalid; producers must
// drop it rather than coerce it.
func (spn Span) IsValid() bool {
	return spn.Start >= 0 && spn.End > spn.Start
}

// Length returns the length of the span in code units, 0 for invalid spans.
func (spn Span) Length() int {
	if !spn.IsValid() {
		return 0
	}
	return spn.End - spn.Start
}

// --- Document ----------------------------------------------------------

// Document is the abstract rich-text model: plain text plus a sequence of
// formatting spans. A freshly constructed document carries no invariant —
// spans may be unsorted, overlapping or out of the text's bounds.
// Normalize establishes the invariants explicitly.
type Document struct {
	Text  string `json:"text"`
	Spans []Span `json:"spans"`
}

// Length returns the document text's length in UTF-16 code units.
func (doc Document) Length() int {
	return UTF16Length(doc.Text)
}

// Validate is a pre-flight check for producers: true iff every span is
// valid and lies within the text's bounds. The conversion routines do not
// require validated documents; they clip rather than reject.
func (doc Document) Validate() bool {
	length := doc.Length()
	for _, spn := range doc.Spans {
		if !spn.IsValid() || spn.End > length {
			return false
		}
	}
	return true
}

// Normalized returns a copy of the document with a normalized span set.
func (doc Document) Normalized() Document {
	return Document{
		Text:  doc.Text,
		Spans: Normalize(doc.Spans),
	}
}

// --- Normalization -----------------------------------------------------

// Normalize establishes the span invariants for a span sequence: invalid
// and formatting-free spans are dropped, the rest is sorted by start
// position and adjacent spans with identical styles are merged.
//
// Normalize does not resolve overlaps; for that see the converter package.
func Normalize(spans []Span) []Span {
	sorted := make([]Span, 0, len(spans))
	for _, spn := range spans {
		if !spn.IsValid() {
			tracer().Debugf("spans: dropping invalid span %d…%d", spn.Start, spn.End)
			continue
		}
		if !spn.Attributes.HasFormatting() {
			continue // absence of a span already means "plain"
		}
		sorted = append(sorted, spn)
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start < sorted[j].Start
		}
		return sorted[i].End < sorted[j].End
	})
	return MergeAdjacent(sorted)
}

// MergeAdjacent walks a sorted span sequence left to right and merges
// every pair of neighbours where the first span ends exactly where the
// second starts and both carry the same style. The merge is linear and
// idempotent: merging an already merged sequence is a no-op.
func MergeAdjacent(spans []Span) []Span {
	if len(spans) <= 1 {
		return spans
	}
	merged := make([]Span, 0, len(spans))
	cur := spans[0]
	for _, next := range spans[1:] {
		if cur.End == next.Start && cur.Attributes.Equals(next.Attributes) {
			cur.End = next.End
			continue
		}
		merged = append(merged, cur)
		cur = next
	}
	merged = append(merged, cur)
	return merged
}
