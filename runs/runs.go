package runs

import (
	"sort"
	"unicode/utf16"
)

// --- Attributed text ---------------------------------------------------

// Text is an attributed text: a sequence of UTF-16 code units covered by
// a flat, sorted, disjoint sequence of attribute runs. The run sequence is
// kept canonical: neighbouring runs never carry equal attribute sets, so
// enumerating runs always yields maximal contiguous attribute-equal ranges.
//
// Text is not safe for concurrent use; callers serialize access.
type Text struct {
	content  []uint16
	base     Attributes // attributes for text inserted into a void text
	segments []segment  // sorted, disjoint, covering [0,len(content))
}

type segment struct {
	start, end int
	attrs      Attributes
}

// New creates an attributed text with the base attributes applied over
// the whole of it.
func New(text string, base Attributes) *Text {
	t := &Text{
		content: utf16.Encode([]rune(text)),
		base:    base.Clone(),
	}
	if len(t.content) > 0 {
		t.segments = []segment{{start: 0, end: len(t.content), attrs: base.Clone()}}
	}
	return t
}

// Len returns the length of the text in UTF-16 code units.
func (t *Text) Len() int {
	return len(t.content)
}

// String returns the text content, without attributes.
func (t *Text) String() string {
	return string(utf16.Decode(t.content))
}

// Slice returns the text of [from,to). Bounds are silently clipped to
// valid text positions.
func (t *Text) Slice(from, to int) string {
	if from < 0 {
		from = 0
	}
	if to > len(t.content) {
		to = len(t.content)
	}
	if to <= from {
		return ""
	}
	return string(utf16.Decode(t.content[from:to]))
}

// Base returns a copy of the base attributes the text was created with.
func (t *Text) Base() Attributes {
	return t.base.Clone()
}

// --- Reading -----------------------------------------------------------

// AttributesAt returns the attribute set at a single position, or nil if
// the position lies outside of [0,Len).
//
// The returned set is the text's own; callers must not mutate it.
func (t *Text) AttributesAt(pos int) Attributes {
	if pos < 0 || pos >= len(t.content) {
		return nil
	}
	return t.segments[t.segmentIndex(pos)].attrs
}

// EachRun applies f to every maximal contiguous attribute-equal run, in
// text order. Iteration stops at the first error, which is passed on.
func (t *Text) EachRun(f func(from, to int, attrs Attributes) error) error {
	for _, seg := range t.segments {
		if err := f(seg.start, seg.end, seg.attrs); err != nil {
			return err
		}
	}
	return nil
}

// EachRunInRange applies f to every run intersecting [from,to), with run
// bounds clipped to the range. Bounds outside the text are clipped.
func (t *Text) EachRunInRange(from, to int, f func(from, to int, attrs Attributes) error) error {
	if from < 0 {
		from = 0
	}
	if to > len(t.content) {
		to = len(t.content)
	}
	for _, seg := range t.segments {
		if seg.end <= from {
			continue
		}
		if seg.start >= to {
			break
		}
		a, b := max(seg.start, from), min(seg.end, to)
		if a < b {
			if err := f(a, b, seg.attrs); err != nil {
				return err
			}
		}
	}
	return nil
}

// --- Mutation ----------------------------------------------------------

// SetAttribute writes a single attribute over [from,to). Requests with an
// invalid range are no-ops; no attribute state is touched.
func (t *Text) SetAttribute(key Key, value interface{}, from, to int) {
	if !t.validRange(from, to) {
		tracer().Infof("runs: ignoring attribute write over invalid range %d…%d", from, to)
		return
	}
	if from == to {
		return
	}
	t.splitAt(from)
	t.splitAt(to)
	for i := range t.segments {
		seg := &t.segments[i]
		if seg.start >= from && seg.end <= to {
			seg.attrs = seg.attrs.Clone()
			seg.attrs[key] = value
		}
	}
	t.coalesce()
}

// RemoveAttribute removes a single attribute over [from,to). Requests
// with an invalid range are no-ops.
func (t *Text) RemoveAttribute(key Key, from, to int) {
	if !t.validRange(from, to) {
		tracer().Infof("runs: ignoring attribute removal over invalid range %d…%d", from, to)
		return
	}
	if from == to {
		return
	}
	t.splitAt(from)
	t.splitAt(to)
	for i := range t.segments {
		seg := &t.segments[i]
		if seg.start >= from && seg.end <= to {
			seg.attrs = seg.attrs.Clone()
			delete(seg.attrs, key)
		}
	}
	t.coalesce()
}

// Replace replaces the text of [from,to) with s. If attrs is non-nil the
// inserted text carries exactly these attributes; a nil attrs inherits the
// attributes left of the insertion point, the way a text view continues
// formatting while typing. Requests with an invalid range are no-ops.
func (t *Text) Replace(from, to int, s string, attrs Attributes) {
	if !t.validRange(from, to) {
		tracer().Infof("runs: ignoring replace over invalid range %d…%d", from, to)
		return
	}
	ins := utf16.Encode([]rune(s))
	if len(ins) == 0 && from == to {
		return
	}
	if attrs == nil {
		attrs = t.attributesForInsertion(from)
	} else {
		attrs = attrs.Clone()
	}
	delta := len(ins) - (to - from)
	content := make([]uint16, 0, len(t.content)+delta)
	content = append(content, t.content[:from]...)
	content = append(content, ins...)
	content = append(content, t.content[to:]...)
	t.splitAt(from)
	t.splitAt(to)
	segs := make([]segment, 0, len(t.segments)+1)
	for _, seg := range t.segments {
		if seg.end <= from {
			segs = append(segs, seg)
		}
	}
	if len(ins) > 0 {
		segs = append(segs, segment{start: from, end: from + len(ins), attrs: attrs})
	}
	for _, seg := range t.segments {
		if seg.start >= to {
			segs = append(segs, segment{start: seg.start + delta, end: seg.end + delta, attrs: seg.attrs})
		}
	}
	t.content = content
	t.segments = segs
	t.coalesce()
}

// attributesForInsertion inherits the attributes of the character left of
// the insertion point, falling back to the first run and finally to the
// base attributes for a void text.
func (t *Text) attributesForInsertion(pos int) Attributes {
	if pos > 0 && pos-1 < len(t.content) {
		return t.segments[t.segmentIndex(pos-1)].attrs.Clone()
	}
	if len(t.segments) > 0 {
		return t.segments[0].attrs.Clone()
	}
	return t.base.Clone()
}

// --- Segment bookkeeping -----------------------------------------------

func (t *Text) validRange(from, to int) bool {
	return from >= 0 && from <= to && to <= len(t.content)
}

// segmentIndex returns the index of the segment containing pos.
// pos must lie within [0,Len).
func (t *Text) segmentIndex(pos int) int {
	return sort.Search(len(t.segments), func(i int) bool {
		return t.segments[i].end > pos
	})
}

// splitAt establishes a segment boundary at pos, if there is none yet.
func (t *Text) splitAt(pos int) {
	if pos <= 0 || pos >= len(t.content) {
		return
	}
	i := t.segmentIndex(pos)
	seg := t.segments[i]
	if seg.start == pos {
		return
	}
	left := segment{start: seg.start, end: pos, attrs: seg.attrs}
	right := segment{start: pos, end: seg.end, attrs: seg.attrs.Clone()}
	rest := append([]segment{left, right}, t.segments[i+1:]...)
	t.segments = append(t.segments[:i], rest...)
}

// coalesce re-establishes the canonical form: no empty segments, no
// neighbouring segments with equal attribute sets.
func (t *Text) coalesce() {
	out := make([]segment, 0, len(t.segments))
	for _, seg := range t.segments {
		if seg.start >= seg.end {
			continue
		}
		if n := len(out); n > 0 && out[n-1].end == seg.start && out[n-1].attrs.Equals(seg.attrs) {
			out[n-1].end = seg.end
			continue
		}
		out = append(out, seg)
	}
	t.segments = out
}
