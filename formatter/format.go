package formatter

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/npillmayer/richtext"
	"github.com/npillmayer/richtext/convert"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax11"
	"github.com/npillmayer/uax/uax14"
)

// Config represents a set of configuration parameters for formatting.
type Config struct {
	LineWidth int
	Context   *uax11.Context
}

// Format is an interface for formatting drivers, given an io.Writer.
type Format interface {
	Preamble(io.Writer)
	Postamble(io.Writer)
	StyledText(string, richtext.Style, io.Writer)
	Newline(io.Writer)
}

// Output formats a document using a given formatter.
//
// Neither of the arguments may be nil. However, it is safe to have
// config.Context set to nil. In this case, uax11.LatinContext is used.
// Overlapping spans of the document are resolved before output.
func Output(doc richtext.Document, out io.Writer, config *Config, format Format) error {
	if config == nil || format == nil {
		return errors.New("illegal argument: nil")
	} else if config.Context == nil {
		config.Context = uax11.LatinContext
	}
	spans := convert.ResolveOverlaps(doc.Spans, doc.Length())
	breaks := firstFit(doc.Text, config.LineWidth, config.Context)
	format.Preamble(out)
	prev := 0 // byte position of the current line's start
	for i, pos := range breaks {
		line := doc.Text[prev:pos]
		lineStart := richtext.UTF16Length(doc.Text[:prev])
		tracer().Infof("[%3d] \"%s\"", i, line)
		eachFragment(line, lineStart, spans, func(frag string, sty richtext.Style) {
			format.StyledText(frag, sty, out)
		})
		format.Newline(out)
		prev = pos
	}
	format.Postamble(out)
	return nil
}

// eachFragment cuts a line into fragments of constant style and applies f
// to each, in text order. lineStart is the line's offset within the
// overall text, in code units; spans must be sorted and disjoint.
func eachFragment(line string, lineStart int, spans []richtext.Span,
	f func(frag string, sty richtext.Style)) {
	//
	lineEnd := lineStart + richtext.UTF16Length(line)
	cur := lineStart
	for cur < lineEnd {
		sty, next := styleAt(spans, cur, lineEnd)
		f(slice16(line, cur-lineStart, next-lineStart), sty)
		cur = next
	}
}

// styleAt returns the style at code-unit position pos together with the
// position where it stops applying, capped at end.
func styleAt(spans []richtext.Span, pos, end int) (richtext.Style, int) {
	for _, spn := range spans {
		if pos < spn.Start {
			return richtext.Style{}, min(spn.Start, end)
		}
		if pos < spn.End {
			return spn.Attributes, min(spn.End, end)
		}
	}
	return richtext.Style{}, end
}

// slice16 cuts [from,to) in UTF-16 code units out of a string.
func slice16(s string, from, to int) string {
	var b strings.Builder
	pos := 0
	for _, r := range s {
		if pos >= to {
			break
		}
		if pos >= from {
			b.WriteRune(r)
		}
		if r > 0xffff {
			pos += 2
		} else {
			pos++
		}
	}
	return b.String()
}

// --- Line breaking -----------------------------------------------------
/*
Wikipedia:

	1. |  SpaceLeft := LineWidth
	2. |  for each Word in Text
	3. |      if (Width(Word) + SpaceWidth) > SpaceLeft
	4. |           insert line break before Word in Text
	5. |           SpaceLeft := LineWidth - Width(Word)
	6. |      else
	7. |           SpaceLeft := SpaceLeft - (Width(Word) + SpaceWidth)
*/
func firstFit(text string, linewidth int, context *uax11.Context) []int {
	//
	linewrap := uax14.NewLineWrap()
	segmenter := segment.NewSegmenter(linewrap)
	spaceleft := linewidth
	segmenter.Init(bufio.NewReader(strings.NewReader(text)))
	breaks := make([]int, 0, 20)
	prevpos := 0
	linestart := true
	for segmenter.Next() {
		frag := string(segmenter.Bytes())
		gstr := grapheme.StringFromString(frag)
		fraglen := uax11.StringWidth(gstr, context)
		if fraglen >= spaceleft {
			if linestart { // fragment is too long for a line
				pos := prevpos + len(frag)
				breaks = append(breaks, pos)
				tracer().Debugf("formatter: break @ %d", pos)
				spaceleft = linewidth
			} else { // fragment overshoots line
				breaks = append(breaks, prevpos)
				tracer().Debugf("formatter: break @ %d", prevpos)
				spaceleft = linewidth - fraglen
			}
		} else { // no break, just append the fragment to the current line
			spaceleft -= fraglen
			linestart = false
		}
		prevpos += len(frag)
	}
	if spaceleft < linewidth { // we have a partial line to consume
		breaks = append(breaks, len(text))
		tracer().Debugf("formatter: break @ %d", len(text))
	}
	return breaks
}
