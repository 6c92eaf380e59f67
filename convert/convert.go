package convert

import (
	"github.com/npillmayer/richtext"
	"github.com/npillmayer/richtext/runs"
)

// --- Converter ---------------------------------------------------------

// Converter translates between richtext.Document and runs.Text. The zero
// value is not usable; create converters with New.
type Converter struct {
	synth runs.Synthesizer
}

// New creates a converter. A nil synth falls back to plain trait
// synthesis, which never fails.
func New(synth runs.Synthesizer) *Converter {
	if synth == nil {
		synth = runs.TraitSynthesizer{}
	}
	return &Converter{synth: synth}
}

var defaultConverter = New(nil)

// --- Expansion: Document → runs ----------------------------------------

// ToRuns expands a document onto a fresh attributed text, with the base
// attributes covering unstyled text. Spans are applied in document order;
// where spans overlap, attribute writes of later spans win. A span whose
// range does not fit within the text is skipped whole — no partial
// clipping, no error.
//
// The resulting text content always equals doc.Text verbatim.
func (cv *Converter) ToRuns(doc richtext.Document, base runs.Attributes) *runs.Text {
	text := runs.New(doc.Text, base)
	length := text.Len()
	baseFont, _ := base.Font()
	for _, spn := range doc.Spans {
		if !spn.IsValid() || spn.Start+spn.Length() > length {
			tracer().Infof("convert: skipping out-of-range span %d…%d", spn.Start, spn.End)
			continue
		}
		cv.ApplyStyle(text, spn.Start, spn.End, spn.Attributes, baseFont)
	}
	return text
}

// ToRuns expands a document using the default converter.
func ToRuns(doc richtext.Document, base runs.Attributes) *runs.Text {
	return defaultConverter.ToRuns(doc, base)
}

// --- Extraction: runs → Document ---------------------------------------

// FromRuns extracts the abstract document from an attributed text. Runs
// whose derived style carries no formatting produce no span, keeping the
// document sparse; the returned span set is sorted, non-overlapping and
// merged, i.e. minimal for the text's run partition.
func (cv *Converter) FromRuns(text *runs.Text) richtext.Document {
	if text.Len() == 0 {
		return richtext.Document{Text: "", Spans: []richtext.Span{}}
	}
	var spans []richtext.Span
	text.EachRun(func(from, to int, attrs runs.Attributes) error {
		sty := StyleOf(attrs)
		if sty.HasFormatting() {
			spans = append(spans, richtext.Span{Start: from, End: to, Attributes: sty})
		}
		return nil
	})
	return richtext.Document{
		Text:  text.String(),
		Spans: richtext.Normalize(spans),
	}
}

// FromRuns extracts a document using the default converter.
func FromRuns(text *runs.Text) richtext.Document {
	return defaultConverter.FromRuns(text)
}

// --- Style derivation --------------------------------------------------

// StyleOf derives the style a native attribute set represents: bold and
// italic from the font's weight and slant, underline and strikethrough
// from the presence of their attribute keys. A nil attribute set derives
// the plain style.
func StyleOf(attrs runs.Attributes) richtext.Style {
	var sty richtext.Style
	if f, ok := attrs.Font(); ok {
		sty.Bold = f.IsBold()
		sty.Italic = f.IsItalic()
	}
	sty.Underline = attrs.Flag(runs.AttrUnderline)
	sty.Strikethrough = attrs.Flag(runs.AttrStrikethrough)
	return sty
}
