/*
Package runs implements the run-oriented attributed text which backs a
native text-editing view.

A runs.Text is a fixed piece of text covered by a flat, sorted, disjoint
sequence of attribute runs. It exposes the narrow capability surface the
conversion layer relies on: enumerate maximal contiguous attribute-equal
runs, read the attribute set at a position, and write or remove a named
attribute over a range. Mutations keep the run sequence canonical, i.e.
neighbouring runs never carry equal attribute sets.

Positions are UTF-16 code-unit offsets, matching the character counting
of native text views. The text content itself is stored as code units.

# Status

Work in progress.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package runs

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'richtext'
func tracer() tracing.Trace {
	return tracing.Select("richtext")
}
