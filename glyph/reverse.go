package glyph

import "fmt"

// Inverse maps styled glyphs back to their base characters. It is the
// union of the inverted glyph tables.
type Inverse map[rune]rune

// CollisionError is returned by Invert whenever two tables (or two entries of
// one table) map different base characters onto the same glyph. Decoding
// would be ambiguous for such a glyph.
type CollisionError struct {
	Glyph  rune
	Base   rune
	Other  rune
	Tables [2]string
}

func (e CollisionError) Error() string {
	return fmt.Sprintf("glyph collision: %U is %q in table %s and %q in table %s",
		e.Glyph, e.Base, e.Tables[0], e.Other, e.Tables[1])
}

// Reverse is the inverse of all glyph tables. It is checked for collisions
// during package initialization.
var Reverse = mustInvert(Tables...)

// Invert builds the reverse mapping of a set of tables. The styled domains of
// the tables have to be disjoint, otherwise a CollisionError is returned.
func Invert(tables ...*Table) (Inverse, error) {
	inv := make(Inverse)
	owner := make(map[rune]string)
	for _, t := range tables {
		if t == nil {
			continue
		}
		for r, g := range t.forward {
			if b, ok := inv[g]; ok {
				return nil, CollisionError{
					Glyph:  g,
					Base:   b,
					Other:  r,
					Tables: [2]string{owner[g], t.name},
				}
			}
			inv[g] = r
			owner[g] = t.name
		}
	}
	return inv, nil
}

func mustInvert(tables ...*Table) Inverse {
	inv, err := Invert(tables...)
	if err != nil {
		tracer().Errorf("glyph tables are not disjoint: %v", err)
		panic(err)
	}
	return inv
}

// Base returns the base character of a styled glyph.
func (inv Inverse) Base(g rune) (rune, bool) {
	r, ok := inv[g]
	return r, ok
}
