package glyph

import "strings"

// accentFold is the closed set of precomposed Latin letters which are folded
// to an unaccented base letter before glyph lookup. Æ and Ø have no canonical
// decomposition; they are folded by appearance.
var accentFold = map[rune]rune{
	'À': 'A', 'Á': 'A', 'Â': 'A', 'Ã': 'A', 'Ä': 'A', 'Å': 'A', 'Æ': 'A',
	'Ç': 'C',
	'È': 'E', 'É': 'E', 'Ê': 'E', 'Ë': 'E',
	'Ì': 'I', 'Í': 'I', 'Î': 'I', 'Ï': 'I',
	'Ñ': 'N',
	'Ò': 'O', 'Ó': 'O', 'Ô': 'O', 'Õ': 'O', 'Ö': 'O', 'Ø': 'O',
	'Ù': 'U', 'Ú': 'U', 'Û': 'U', 'Ü': 'U',
	'Ý': 'Y', 'Ÿ': 'Y',

	'à': 'a', 'á': 'a', 'â': 'a', 'ã': 'a', 'ä': 'a', 'å': 'a', 'æ': 'a',
	'ç': 'c',
	'è': 'e', 'é': 'e', 'ê': 'e', 'ë': 'e',
	'ì': 'i', 'í': 'i', 'î': 'i', 'ï': 'i',
	'ñ': 'n',
	'ò': 'o', 'ó': 'o', 'ô': 'o', 'õ': 'o', 'ö': 'o', 'ø': 'o',
	'ù': 'u', 'ú': 'u', 'û': 'u', 'ü': 'u',
	'ý': 'y', 'ÿ': 'y',
}

// Fold returns the unaccented base letter of r. Characters outside of the
// folding table are returned unchanged.
func Fold(r rune) rune {
	if f, ok := accentFold[r]; ok {
		return f
	}
	return r
}

// IsFoldable reports whether r is an accented letter known to Fold.
func IsFoldable(r rune) bool {
	_, ok := accentFold[r]
	return ok
}

// FoldString replaces every accented letter of s by its base letter.
func FoldString(s string) string {
	return strings.Map(Fold, s)
}
