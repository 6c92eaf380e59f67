package convert

import (
	"github.com/npillmayer/richtext"
	"github.com/npillmayer/richtext/runs"
)

// --- Range-style application -------------------------------------------

// ApplyStyle applies a style over [from,to) of an attributed text, in
// place. Requests with an invalid range are no-ops; text content is never
// touched.
//
// Bold and italic are realized by re-deriving a font for every existing
// font sub-run inside the range, so family and size of each sub-run are
// preserved. Underline and strikethrough are blanket attribute writes
// over the whole range.
func (cv *Converter) ApplyStyle(text *runs.Text, from, to int, sty richtext.Style, base runs.Font) {
	if from < 0 || to < from || to > text.Len() {
		tracer().Infof("convert: ignoring style over invalid range %d…%d", from, to)
		return
	}
	if from == to {
		return
	}
	type fontRun struct {
		from, to int
		font     runs.Font
	}
	var fontRuns []fontRun // collected first; writing while enumerating would shift runs
	text.EachRunInRange(from, to, func(a, b int, attrs runs.Attributes) error {
		f, ok := attrs.Font()
		if !ok {
			f = base
		}
		fontRuns = append(fontRuns, fontRun{from: a, to: b, font: f})
		return nil
	})
	for _, fr := range fontRuns {
		text.SetAttribute(runs.AttrFont, cv.synthesize(fr.font, sty.Bold, sty.Italic), fr.from, fr.to)
	}
	if sty.Underline {
		text.SetAttribute(runs.AttrUnderline, true, from, to)
	} else {
		text.RemoveAttribute(runs.AttrUnderline, from, to)
	}
	if sty.Strikethrough {
		text.SetAttribute(runs.AttrStrikethrough, true, from, to)
	} else {
		text.RemoveAttribute(runs.AttrStrikethrough, from, to)
	}
}

// ApplyStyle applies a style using the default converter.
func ApplyStyle(text *runs.Text, from, to int, sty richtext.Style, base runs.Font) {
	defaultConverter.ApplyStyle(text, from, to, sty, base)
}

// synthesize derives a font variant with the requested traits. When the
// combined bold-italic face cannot be synthesized, bold takes precedence
// over italic; if that fails too, the font is kept unchanged.
func (cv *Converter) synthesize(f runs.Font, bold, italic bool) runs.Font {
	variant, err := cv.synth.Synthesize(f, bold, italic)
	if err == nil {
		return variant
	}
	if bold && italic {
		if variant, err = cv.synth.Synthesize(f, true, false); err == nil {
			return variant
		}
	}
	tracer().Infof("convert: font synthesis failed for family %s, keeping font", f.Family)
	return f
}

// --- Active-style lookup -----------------------------------------------

// StylesAt returns the style at a single text position. Positions outside
// of [0,Len) read as the plain style, never as a fault.
func (cv *Converter) StylesAt(text *runs.Text, pos int) richtext.Style {
	if pos < 0 || pos >= text.Len() {
		return richtext.Style{}
	}
	return StyleOf(text.AttributesAt(pos))
}

// StylesAt looks up a position's style using the default converter.
func StylesAt(text *runs.Text, pos int) richtext.Style {
	return defaultConverter.StylesAt(text, pos)
}

// StylesOfSelection returns the style considered active for a selection.
// The style of the selection's first character stands in for the whole
// selection, even when the selection spans mixed formatting. Toolbars fed
// by this may over-report on mixed selections; switching to an
// intersection over all characters would change observable behavior and
// is a product decision, not a local fix.
func (cv *Converter) StylesOfSelection(text *runs.Text, from, to int) richtext.Style {
	return cv.StylesAt(text, from)
}

// StylesOfSelection looks up a selection's style using the default converter.
func StylesOfSelection(text *runs.Text, from, to int) richtext.Style {
	return defaultConverter.StylesOfSelection(text, from, to)
}

// TypingStyle derives the style of the attribute set pending for text
// typed at an empty-selection caret. The derivation is the same as for
// existing text, but operates on the pending set — there may not be any
// text at the caret's position yet.
func (cv *Converter) TypingStyle(attrs runs.Attributes) richtext.Style {
	return StyleOf(attrs)
}

// TypingAttributes derives the attribute set that makes text typed at a
// caret carry the given style. current is the attribute set that would
// apply without the style change (may be nil); base supplies the font
// when current carries none.
func (cv *Converter) TypingAttributes(sty richtext.Style, current runs.Attributes, base runs.Font) runs.Attributes {
	attrs := current.Clone()
	f, ok := attrs.Font()
	if !ok {
		f = base
	}
	attrs[runs.AttrFont] = cv.synthesize(f, sty.Bold, sty.Italic)
	if sty.Underline {
		attrs[runs.AttrUnderline] = true
	} else {
		delete(attrs, runs.AttrUnderline)
	}
	if sty.Strikethrough {
		attrs[runs.AttrStrikethrough] = true
	} else {
		delete(attrs, runs.AttrStrikethrough)
	}
	return attrs
}
