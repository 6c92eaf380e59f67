/*
Package editor provides the host-facing editing session over an
attributed text.

A Session owns the run-oriented text which is the single source of truth
while editing is live; documents are transient and constructed at the
boundary on every read and write. The session tracks a selection and the
pending typing style for an empty-selection caret, and broadcasts change
events to subscribers.

Programmatic mutations suppress change notification with a scoped guard
that is released on every exit path; only the outermost mutation emits an
event, and reads never do. This keeps a host from re-entering the session
from within its own change handler.

Sessions are single-threaded: no internal synchronization is performed,
callers serialize access on their UI sequencing thread.

# Status

Work in progress.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package editor

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'richtext'
func tracer() tracing.Trace {
	return tracing.Select("richtext")
}
