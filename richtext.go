/*
Package richtext bridges a platform-agnostic rich-text model and a
run-oriented attributed text representation.

The model side is deliberately small: a Document is plain text plus a set
of formatting Spans, where each Span tags a half-open range of the text
with a Style. Styles are four boolean flags (bold, italic, underline,
strikethrough). A Document carries no invariant about its spans — they may
arrive unsorted, overlapping or out of bounds; normalization is an explicit
operation performed at the conversion boundary.

All positions and lengths throughout this module are measured in UTF-16
code units, not in bytes and not in runes. This matches the "character"
counting of the text views this model is exchanged with; a rune above
the basic multilingual plane counts as two units.

# Status

Work in progress.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package richtext

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'richtext'
func tracer() tracing.Trace {
	return tracing.Select("richtext")
}

// Error is an error type for the richtext module.
type Error string

func (e Error) Error() string {
	return string(e)
}

// ErrIndexOutOfBounds is flagged whenever a text position is greater than
// the length of the text it refers to.
const ErrIndexOutOfBounds = Error("index out of bounds")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = Error("illegal arguments")

// UTF16Length returns the length of s in UTF-16 code units. This is the
// unit every span position in this module is measured in.
func UTF16Length(s string) int {
	n := 0
	for _, r := range s {
		if r > 0xffff {
			n += 2
		} else {
			n++
		}
	}
	return n
}
