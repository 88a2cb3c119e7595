package selection

import (
	"fmt"
	"sync"
	"unicode/utf8"

	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

// Field is the value of a plain-text input field together with a selected
// range [Start…End). Offsets count code points. If Start equals End, the
// selection is collapsed to a cursor position.
type Field struct {
	Value      string
	Start, End int
}

// NewField creates a field for value and a selection. Offsets are put in order
// and clamped to the length of value.
func NewField(value string, start, end int) Field {
	if start > end {
		start, end = end, start
	}
	n := utf8.RuneCountInString(value)
	return Field{
		Value: value,
		Start: clamp(start, n),
		End:   clamp(end, n),
	}
}

func clamp(pos, n int) int {
	if pos < 0 {
		return 0
	}
	if pos > n {
		return n
	}
	return pos
}

// IsCollapsed is true if the selection is a cursor position only.
func (f Field) IsCollapsed() bool {
	return f.Start == f.End
}

// Selected returns the selected text.
func (f Field) Selected() string {
	_, sel, _ := f.split()
	return sel
}

// Replace replaces the selected text by text. The selection of the resulting
// field is collapsed to a cursor position right after the inserted text.
func (f Field) Replace(text string) Field {
	f = NewField(f.Value, f.Start, f.End)
	before, _, after := f.split()
	cursor := f.Start + utf8.RuneCountInString(text)
	tracer().Debugf("selection: replace [%d…%d) by %d code points", f.Start, f.End, cursor-f.Start)
	return Field{
		Value: before + text + after,
		Start: cursor,
		End:   cursor,
	}
}

// ReplaceKeep replaces the selected text by text and keeps the inserted text
// selected.
func (f Field) ReplaceKeep(text string) Field {
	f = NewField(f.Value, f.Start, f.End)
	g := f.Replace(text)
	g.Start = f.Start
	return g
}

// split returns the text before the selection, the selected text and the text
// after the selection. f need not be normalized.
func (f Field) split() (string, string, string) {
	f = NewField(f.Value, f.Start, f.End)
	from, to := byteOffset(f.Value, f.Start), byteOffset(f.Value, f.End)
	return f.Value[:from], f.Value[from:to], f.Value[to:]
}

// byteOffset returns the byte position of the code point with index pos.
func byteOffset(s string, pos int) int {
	i := 0
	for b := range s {
		if i == pos {
			return b
		}
		i++
	}
	return len(s)
}

func (f Field) String() string {
	return fmt.Sprintf("%q[%d…%d]", f.Value, f.Start, f.End)
}

// --- Grapheme clusters -----------------------------------------------------

var setupGraphemes sync.Once

func graphemeString(s string) grapheme.String {
	setupGraphemes.Do(func() {
		grapheme.SetupGraphemeClasses()
	})
	return grapheme.StringFromString(s)
}

// SnapToGraphemes widens the selection of f to the nearest grapheme cluster
// boundaries: Start moves to the start of the cluster it points into, End to
// the end of the cluster it points into. A collapsed selection inside a
// cluster is moved to the start of the cluster.
func (f Field) SnapToGraphemes() Field {
	f = NewField(f.Value, f.Start, f.End)
	if f.Value == "" {
		return f
	}
	gstr := graphemeString(f.Value)
	start, end := f.Start, f.End
	pos := 0
	for i := 0; i < gstr.Len(); i++ {
		n := utf8.RuneCountInString(gstr.Nth(i))
		if pos < f.Start && f.Start < pos+n {
			start = pos
		}
		if pos < f.End && f.End < pos+n {
			end = pos + n
		}
		pos += n
	}
	if f.IsCollapsed() {
		end = start
	}
	if start != f.Start || end != f.End {
		tracer().Debugf("selection: snapped [%d…%d) to [%d…%d)", f.Start, f.End, start, end)
	}
	return Field{Value: f.Value, Start: start, End: end}
}

// Width returns the display width of s on a fixed-width output device,
// measured in “en”s. Combining marks do not add to the width.
func Width(s string) int {
	if s == "" {
		return 0
	}
	return uax11.StringWidth(graphemeString(s), uax11.LatinContext)
}
