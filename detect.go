package unistyle

import (
	"strings"
	"unicode"

	"github.com/npillmayer/unistyle/glyph"
)

// Detect returns the set of styles present in text. Each style is tested
// independently; a style counts as present if at least one character carries
// it, therefore partially styled text is reported as styled.
//
// Underline is present if text contains the underline mark or, failing
// that, any monospace glyph. The second test is a heuristic: text holding
// monospace glyphs from some other source is reported as underlined, too.
func Detect(text string) Set {
	var set Set
	if text == "" {
		return set
	}
	if containsAny(text, glyph.Bold.Ranges()) {
		set = set.Add(Bold)
	}
	if containsAny(text, glyph.Italic.Ranges()) {
		set = set.Add(Italic)
	}
	if strings.ContainsRune(text, glyph.UnderlineMark) {
		set = set.Add(Underline)
	} else if containsAny(text, glyph.Monospace.Ranges()) {
		set = set.Add(Underline)
	}
	if strings.ContainsRune(text, glyph.StrikeMark) {
		set = set.Add(Strikethrough)
	}
	return set
}

// DetectStyles is like Detect, but returns the styles as a slice in
// canonical order.
func DetectStyles(text string) []Style {
	return Detect(text).Styles()
}

// IsStyled reports whether text carries any style at all.
func IsStyled(text string) bool {
	return !Detect(text).IsEmpty()
}

func containsAny(text string, ranges *unicode.RangeTable) bool {
	return strings.IndexFunc(text, func(r rune) bool {
		return unicode.Is(ranges, r)
	}) >= 0
}
