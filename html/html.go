/*
Package html converts between rich-text documents and HTML inline markup.

Only the inline formatting elements the document model can express are
interpreted: <b>/<strong> for bold, <i>/<em> for italic, <u> for
underline, and <s>/<del>/<strike> for strikethrough. Nested elements
combine their flags. All other markup contributes its textual content
only, comparable to

	document.getElementById("myNode").innerText

in JavaScript, except that CSS styling cannot be respected.

# Status

Work in progress.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package html

import (
	"io"
	"strings"

	"github.com/npillmayer/richtext"
	"github.com/npillmayer/richtext/convert"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
)

// tracer writes to trace with key 'richtext'
func tracer() tracing.Trace {
	return tracing.Select("richtext")
}

// --- HTML → Document ---------------------------------------------------

// FromHTML creates a document from the textual content of an HTML
// fragment. The fragment should reflect the content of a paragraph-like
// element. Span offsets are UTF-16 code units into the collected text.
func FromHTML(input io.Reader) (richtext.Document, error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return richtext.Document{}, err
	}
	c := &collector{}
	for _, n := range nodes {
		c.collect(n, richtext.Style{})
	}
	return richtext.Document{
		Text:  c.text.String(),
		Spans: richtext.Normalize(c.spans),
	}, nil
}

type collector struct {
	text  strings.Builder
	pos   int // collected length in code units
	spans []richtext.Span
}

func (c *collector) collect(n *html.Node, sty richtext.Style) {
	if n.Type == html.ElementNode {
		sty = styleFromTag(sty, n.Data)
	} else if n.Type == html.TextNode {
		tracer().Debugf("html: collect text = %s (%v)", n.Data, sty)
		c.append(n.Data, sty)
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		c.collect(child, sty)
	}
}

func (c *collector) append(s string, sty richtext.Style) {
	if s == "" {
		return
	}
	c.text.WriteString(s)
	length := richtext.UTF16Length(s)
	if sty.HasFormatting() {
		c.spans = append(c.spans, richtext.Span{
			Start:      c.pos,
			End:        c.pos + length,
			Attributes: sty,
		})
	}
	c.pos += length
}

// styleFromTag combines the flag an inline element stands for into an
// inherited style. Unknown elements inherit unchanged.
func styleFromTag(sty richtext.Style, tag string) richtext.Style {
	switch tag {
	case "b", "strong":
		sty.Bold = true
	case "i", "em":
		sty.Italic = true
	case "u":
		sty.Underline = true
	case "s", "del", "strike":
		sty.Strikethrough = true
	}
	return sty
}

// --- Document → HTML ---------------------------------------------------

// Write emits a document as minimal HTML inline markup. Overlapping spans
// are resolved first (later span wins), so each piece of text is wrapped
// in at most one tag per flag. Text content is escaped.
func Write(doc richtext.Document, w io.Writer) error {
	spans := convert.ResolveOverlaps(doc.Spans, doc.Length())
	cursor := 0
	for _, spn := range spans {
		if err := writeEscaped(w, slice16(doc.Text, cursor, spn.Start)); err != nil {
			return err
		}
		if err := writeTagged(w, slice16(doc.Text, spn.Start, spn.End), spn.Attributes); err != nil {
			return err
		}
		cursor = spn.End
	}
	return writeEscaped(w, slice16(doc.Text, cursor, doc.Length()))
}

var flagTags = []struct {
	flag richtext.StyleFlag
	tag  string
}{
	{richtext.FlagBold, "b"},
	{richtext.FlagItalic, "i"},
	{richtext.FlagUnderline, "u"},
	{richtext.FlagStrikethrough, "s"},
}

func writeTagged(w io.Writer, s string, sty richtext.Style) error {
	for _, ft := range flagTags {
		if sty.Has(ft.flag) {
			if _, err := io.WriteString(w, "<"+ft.tag+">"); err != nil {
				return err
			}
		}
	}
	if err := writeEscaped(w, s); err != nil {
		return err
	}
	for i := len(flagTags) - 1; i >= 0; i-- {
		if sty.Has(flagTags[i].flag) {
			if _, err := io.WriteString(w, "</"+flagTags[i].tag+">"); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeEscaped(w io.Writer, s string) error {
	if s == "" {
		return nil
	}
	_, err := io.WriteString(w, html.EscapeString(s))
	return err
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
