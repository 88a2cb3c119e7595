/*
Package selection models the selected range of a plain-text input field.

Styling is applied to a selection, not to a whole field. A Field holds the
field's value together with the selection's start and end offsets. Offsets
count code points, not bytes, because styled glyphs are outside the Basic
Multilingual Plane and a byte-based cursor would land in the middle of them.

A styled character may consist of a glyph followed by a combining line mark.
SnapToGraphemes widens a selection to grapheme cluster boundaries (UAX #29),
so that restyling a selection never separates a glyph from its mark.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package selection

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'unistyle'
func tracer() tracing.Trace {
	return tracing.Select("unistyle")
}
