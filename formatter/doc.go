/*
Package formatter outputs rich-text documents to line-oriented devices.

Formatting drivers implement interface Format; the package ships a driver
for consoles with fixed width fonts which visualizes styles with ANSI
attributes. Line breaking follows the Unicode line breaking algorithm
(UAX#14) with East-Asian-aware width reckoning (UAX#11).

# Status

Work in progress.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package formatter

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'richtext'
func tracer() tracing.Trace {
	return tracing.Select("richtext")
}
