package formatter

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/npillmayer/richtext"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// ConsoleFixedWidth is a type for outputting formatted text to a console
// with a fixed width font. Styles are visualized with ANSI display
// attributes: bold, italic, underline and crossed-out, as far as the
// terminal supports them.
type ConsoleFixedWidth struct {
	colors map[richtext.Style]*color.Color // derived colors, cached per style
}

// NewConsoleFixedWidthFormat creates a new formatter. It is to be used
// for consoles with a fixed width font.
func NewConsoleFixedWidthFormat() *ConsoleFixedWidth {
	return &ConsoleFixedWidth{
		colors: make(map[richtext.Style]*color.Color),
	}
}

// Print outputs a document to stdout.
//
// If parameter config is nil, a heuristic will create a config from the
// current terminal's properties (if stdout is interactive).
// Config.Context will also be created based on heuristics from the user
// environment.
func (fw *ConsoleFixedWidth) Print(doc richtext.Document, config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
		config.Context = uax11.ContextFromEnvironment()
	}
	return Output(doc, os.Stdout, config, fw)
}

// StyledText is called by the formatting driver to output a sequence of
// uniformly styled text. It uses ANSI display attributes to visualize
// styles. (Part of interface Format)
func (fw *ConsoleFixedWidth) StyledText(s string, sty richtext.Style, w io.Writer) {
	if !sty.HasFormatting() {
		w.Write([]byte(s))
		return
	}
	c, ok := fw.colors[sty]
	if !ok {
		c = colorFor(sty)
		fw.colors[sty] = c
	}
	c.Fprint(w, s)
}

// colorFor translates a style's flags to ANSI display attributes.
func colorFor(sty richtext.Style) *color.Color {
	attrs := make([]color.Attribute, 0, 4)
	if sty.Bold {
		attrs = append(attrs, color.Bold)
	}
	if sty.Italic {
		attrs = append(attrs, color.Italic)
	}
	if sty.Underline {
		attrs = append(attrs, color.Underline)
	}
	if sty.Strikethrough {
		attrs = append(attrs, color.CrossedOut)
	}
	return color.New(attrs...)
}

// Preamble is called by the output driver before a document will be
// formatted. (Part of interface Format)
func (fw *ConsoleFixedWidth) Preamble(w io.Writer) {}

// Postamble will be called after a document has been formatted.
// (Part of interface Format)
func (fw *ConsoleFixedWidth) Postamble(w io.Writer) {}

// Newline will be called at the end of every formatted line of text.
// (Part of interface Format)
func (fw *ConsoleFixedWidth) Newline(w io.Writer) {
	w.Write([]byte{'\n'})
}

// --- Config for terminals ----------------------------------------------

// ConfigFromTerminal is a simple helper for creating a formatting Config.
// It checks wether stdout is a terminal, and if so it reads the
// terminal's width and sets the Config.LineWidth parameter accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{}
	if term.IsTerminal(0) {
		w, _, err := term.GetSize(0)
		if err != nil {
			config.LineWidth = 65
		} else {
			if w > 65 {
				config.LineWidth = w - 10
			} else if w > 30 {
				config.LineWidth = w - 5
			} else if w > 10 {
				config.LineWidth = w
			} else {
				config.LineWidth = 10
			}
		}
	} else {
		config.LineWidth = 65
	}
	tracer().P("format", "console").Infof("setting line length to %d en", config.LineWidth)
	return config
}
