package unistyle

import (
	"fmt"
	"strings"
)

// Style is one of the text styles realized by Unicode substitution.
// The zero value Plain stands for “no style”; it is also the result of
// parsing an unknown style identifier.
type Style uint8

// The closed set of styles.
const (
	Plain Style = 0
	Bold  Style = 1 << (iota - 1)
	Italic
	Underline
	Strikethrough
)

// AllStyles lists the known styles in canonical order.
var AllStyles = []Style{Bold, Italic, Underline, Strikethrough}

var styleNames = map[Style]string{
	Plain:         "plain",
	Bold:          "bold",
	Italic:        "italic",
	Underline:     "underline",
	Strikethrough: "strikethrough",
}

// ParseStyle returns the style for an identifier like "bold" (case is
// ignored). Unknown identifiers yield Plain and false.
func ParseStyle(id string) (Style, bool) {
	id = strings.ToLower(strings.TrimSpace(id))
	for _, s := range AllStyles {
		if styleNames[s] == id {
			return s, true
		}
	}
	return Plain, false
}

// Valid reports whether s is one of the four known styles.
func (s Style) Valid() bool {
	switch s {
	case Bold, Italic, Underline, Strikethrough:
		return true
	}
	return false
}

func (s Style) String() string {
	if name, ok := styleNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Style(%d)", uint8(s))
}

// --- Style Sets ------------------------------------------------------------

// Set is an unordered collection of styles, as reported by Detect.
type Set uint8

// SetOf creates a set from a list of styles. Unknown styles are ignored.
func SetOf(styles ...Style) Set {
	var set Set
	for _, s := range styles {
		set = set.Add(s)
	}
	return set
}

// Add returns set with style s added.
func (set Set) Add(s Style) Set {
	if !s.Valid() {
		return set
	}
	return set | Set(s)
}

// Minus returns set with style s removed.
func (set Set) Minus(s Style) Set {
	return set &^ Set(s)
}

// Contains reports whether s is a member of set.
func (set Set) Contains(s Style) bool {
	return s.Valid() && set&Set(s) != 0
}

// IsEmpty is true for a set without any style.
func (set Set) IsEmpty() bool {
	return set == 0
}

// Len returns the number of styles in set.
func (set Set) Len() int {
	n := 0
	for _, s := range AllStyles {
		if set.Contains(s) {
			n++
		}
	}
	return n
}

// Styles returns the members of set in canonical order
// (bold, italic, underline, strikethrough).
func (set Set) Styles() []Style {
	styles := make([]Style, 0, 4)
	for _, s := range AllStyles {
		if set.Contains(s) {
			styles = append(styles, s)
		}
	}
	return styles
}

// Strings returns the identifiers of the members of set in canonical order.
func (set Set) Strings() []string {
	ids := make([]string, 0, 4)
	for _, s := range set.Styles() {
		ids = append(ids, s.String())
	}
	return ids
}

func (set Set) String() string {
	return "[" + strings.Join(set.Strings(), " ") + "]"
}
