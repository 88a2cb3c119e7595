/*
Package glyph holds the static tables which map Latin letters and digits to
styled code points of the Unicode block “Mathematical Alphanumeric Symbols”
(U+1D400–U+1D7FF), together with the combining marks used for lines and a
folding table for accented Latin letters.

Styled glyphs are not a font feature. They are distinct code points which
happen to look like bold, italic or typewriter letters, and they survive any
plain-text channel. Unicode does not encode styled accented letters; an
accented letter is therefore folded to its base letter before lookup.

All tables are built once during package initialization and are never
mutated afterwards. They may be shared freely between goroutines.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package glyph

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'unistyle'
func tracer() tracing.Trace {
	return tracing.Select("unistyle")
}
