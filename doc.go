/*
Package unistyle applies reversible visual styles to plain text by replacing
characters with styled Unicode code points.

# Styled Text without Markup

Many text channels (social media posts, chat messages, commit logs, form
fields) accept plain text only. Unicode, however, encodes a couple of
letter-like alphabets in the block “Mathematical Alphanumeric Symbols”,
intended for mathematical notation. Substituting a Latin letter by its
counterpart from one of these alphabets makes it appear bold or italic in
any renderer which has a font for the block. Combining marks appended to a
character draw a line below or through it.

Package unistyle offers four such styles:

	bold            𝐇𝐞𝐥𝐥𝐨
	italic          𝘏𝘦𝘭𝘭𝘰
	underline       𝙷̲𝚎̲𝚕̲𝚕̲𝚘̲
	strikethrough   H̶e̶l̶l̶o̶

The mapping is reversible: Decode turns any styled text back into plain
text. Characters without a styled counterpart (punctuation, non-Latin
scripts, emoji) pass through unchanged. Accented letters degrade to the
unaccented styled glyph, as Unicode has no styled accented letters.

# API

The engine consists of pure functions without shared mutable state:

	Encode(text, style)    // style a plain string
	Decode(text)           // remove all styles
	Detect(text)           // which styles are present?
	Apply(request)         // toggle, apply or replace a style

Apply implements the composition policy used for toolbar buttons: asking
for a style already present removes all styling, asking for a style on
plain text applies it, and asking for a different style replaces the
current one. At most one style is active at any time.

None of the functions returns an error. Malformed input and unknown style
identifiers result in the input text being returned unchanged.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2025, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package unistyle

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'unistyle'
func tracer() tracing.Trace {
	return tracing.Select("unistyle")
}
