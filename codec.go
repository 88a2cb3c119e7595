package unistyle

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/unistyle/glyph"
)

// Lookup returns the styled glyph for a base character r. Bold and italic
// use their own tables, underline uses the monospace table. Strikethrough
// has no glyph table, it draws with a combining mark only.
// Lookup tries r first, then its accent-folded form.
func Lookup(style Style, r rune) (rune, bool) {
	t := tableFor(style)
	if t == nil {
		return 0, false
	}
	return t.LookupFolded(r)
}

func tableFor(style Style) *glyph.Table {
	switch style {
	case Bold:
		return glyph.Bold
	case Italic:
		return glyph.Italic
	case Underline:
		return glyph.Monospace
	}
	return nil
}

// Encode styles a plain text. Input is processed code point by code point;
// characters without a styled counterpart are kept as they are, so nothing
// is ever dropped. An unknown style leaves text unchanged.
//
// Encode does not remove styles already present in text. Clients wanting
// exactly one style should use Apply.
func Encode(text string, style Style) string {
	if text == "" || !style.Valid() {
		return text
	}
	var b strings.Builder
	b.Grow(len(text) * 3)
	eachRune(text, func(r rune, raw string) {
		switch style {
		case Bold, Italic:
			if g, ok := Lookup(style, r); ok {
				b.WriteRune(g)
				return
			}
			b.WriteString(raw)
		case Underline:
			if g, ok := Lookup(style, r); ok {
				b.WriteRune(g)
				b.WriteRune(glyph.UnderlineMark)
				return
			}
			b.WriteString(raw)
			if !unicode.IsSpace(r) {
				b.WriteRune(glyph.UnderlineMark)
			}
		case Strikethrough:
			b.WriteString(raw)
			if !unicode.IsSpace(r) {
				b.WriteRune(glyph.StrikeMark)
			}
		}
	})
	return b.String()
}

// Decode removes every style from text: line marks are dropped and styled
// glyphs are replaced by their base characters. There is no selective
// removal of a single style.
func Decode(text string) string {
	if text == "" {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	eachRune(text, func(r rune, raw string) {
		if glyph.IsMark(r) {
			return
		}
		if base, ok := glyph.Reverse.Base(r); ok {
			b.WriteRune(base)
			return
		}
		b.WriteString(raw)
	})
	return b.String()
}

// eachRune calls f for every code point of s, together with its original
// bytes. Invalid UTF-8 is handed over byte by byte as utf8.RuneError, so
// callers copying raw never alter malformed input.
func eachRune(s string, f func(r rune, raw string)) {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		f(r, s[i:i+size])
		i += size
	}
}
