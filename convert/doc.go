/*
Package convert is the conversion engine between the abstract rich-text
model and the run-oriented attributed text backing a native editing view.

The two directions are deliberately asymmetric. Expansion (ToRuns) is
defensive: a document's spans may be unsorted, overlapping or out of
bounds, and expansion applies them in document order, skipping whole any
span that does not fit the text — later spans win where they overlap.
Extraction (FromRuns) is the only place the span invariants are
established: it enumerates maximal attribute-equal runs, derives styles,
drops plain runs and returns a sorted, merged, minimal span set. Expanding
an extracted document reproduces attribute-equivalent runs.

Per the contract of the layer this package sits under, no operation in
this package fails: malformed input is dropped or defaulted, invalid
ranges become no-ops, and impossible font-trait synthesis degrades to the
nearest representable variant.

# Status

Work in progress.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package convert

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'richtext'
func tracer() tracing.Trace {
	return tracing.Select("richtext")
}
