package glyph

import (
	"cmp"
	"fmt"
	"slices"
	"unicode"
)

// --- Glyph Tables ----------------------------------------------------------

// Table is an immutable, injective mapping from base characters
// (A–Z, a–z and possibly 0–9) to styled Unicode characters.
type Table struct {
	name    string
	forward map[rune]rune
	ranges  *unicode.RangeTable
}

// span maps the contiguous base characters [from…to] onto a contiguous
// run of styled code points starting at target.
type span struct {
	from, to rune
	target   rune
}

// Bold maps to “Mathematical Bold” letters and digits.
var Bold = mustTable("bold",
	span{'A', 'Z', 0x1D400},
	span{'a', 'z', 0x1D41A},
	span{'0', '9', 0x1D7CE},
)

// Italic maps to “Mathematical Sans-Serif Italic” letters. Digits have no
// italic form. The serif italic block has a hole at U+1D455 (small h), the
// sans-serif block has none.
var Italic = mustTable("italic",
	span{'A', 'Z', 0x1D608},
	span{'a', 'z', 0x1D622},
)

// Monospace maps to “Mathematical Monospace” letters and digits. It is the
// base glyph set of the underline style.
var Monospace = mustTable("monospace",
	span{'A', 'Z', 0x1D670},
	span{'a', 'z', 0x1D68A},
	span{'0', '9', 0x1D7F6},
)

// Tables lists every glyph table, in the order they are merged into Reverse.
var Tables = []*Table{Bold, Italic, Monospace}

func mustTable(name string, spans ...span) *Table {
	t, err := newTable(name, spans...)
	if err != nil {
		panic(err)
	}
	return t
}

func newTable(name string, spans ...span) (*Table, error) {
	t := &Table{
		name:    name,
		forward: make(map[rune]rune),
		ranges:  &unicode.RangeTable{},
	}
	seen := make(map[rune]rune)
	for _, s := range spans {
		if s.to < s.from {
			return nil, fmt.Errorf("glyph table %s: empty span %q…%q", name, s.from, s.to)
		}
		for r := s.from; r <= s.to; r++ {
			g := s.target + (r - s.from)
			if other, ok := seen[g]; ok {
				return nil, CollisionError{Glyph: g, Base: other, Other: r, Tables: [2]string{name, name}}
			}
			seen[g] = r
			t.forward[r] = g
		}
		t.ranges.R32 = append(t.ranges.R32, unicode.Range32{
			Lo:     uint32(s.target),
			Hi:     uint32(s.target + (s.to - s.from)),
			Stride: 1,
		})
	}
	sortRanges(t.ranges.R32)
	return t, nil
}

// Name returns the identifying name of a table, e.g. "bold".
func (t *Table) Name() string {
	return t.name
}

// Len returns the number of base characters covered by t.
func (t *Table) Len() int {
	return len(t.forward)
}

// Lookup returns the styled glyph for r, if t covers r.
func (t *Table) Lookup(r rune) (rune, bool) {
	g, ok := t.forward[r]
	return g, ok
}

// LookupFolded tries r first, then its accent-folded base letter.
// Accented letters thus degrade to the unaccented styled glyph.
func (t *Table) LookupFolded(r rune) (rune, bool) {
	if g, ok := t.forward[r]; ok {
		return g, true
	}
	if f := Fold(r); f != r {
		g, ok := t.forward[f]
		return g, ok
	}
	return 0, false
}

// Contains reports whether r is one of the styled glyphs of t.
func (t *Table) Contains(r rune) bool {
	return unicode.Is(t.ranges, r)
}

// Ranges returns the code point ranges of the styled glyphs of t.
// Clients must not modify the returned table.
func (t *Table) Ranges() *unicode.RangeTable {
	return t.ranges
}

// Each calls f for every (base, glyph) pair of t, in no particular order.
func (t *Table) Each(f func(base, glyph rune)) {
	for r, g := range t.forward {
		f(r, g)
	}
}

func (t *Table) String() string {
	return fmt.Sprintf("glyph.Table(%s, %d entries)", t.name, len(t.forward))
}

func sortRanges(rr []unicode.Range32) {
	slices.SortFunc(rr, func(a, b unicode.Range32) int {
		return cmp.Compare(a.Lo, b.Lo)
	})
}

// --- Combining Marks -------------------------------------------------------

// Combining marks appended after a character to draw a line.
const (
	UnderlineMark rune = '\u0332' // COMBINING LOW LINE
	StrikeMark    rune = '\u0336' // COMBINING LONG STROKE OVERLAY
)

// IsMark reports whether r is one of the line-drawing combining marks.
func IsMark(r rune) bool {
	return r == UnderlineMark || r == StrikeMark
}
