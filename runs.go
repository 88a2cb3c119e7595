package unistyle

import (
	"iter"
	"unicode"

	"github.com/npillmayer/unistyle/glyph"
)

// --- Style Runs ------------------------------------------------------------

// Run is a maximal section of text carrying a single style. Position and
// Length count code points.
type Run struct {
	Style    Style
	Text     string
	Position int
	Length   int
}

// cell is a base character together with its trailing line marks.
type cell struct {
	text    string
	style   Style
	neutral bool // unmarked whitespace
	runes   int
}

// Runs splits text into style runs. Every character is classified together
// with the line marks following it: a strike mark makes it strikethrough, an
// underline mark or a monospace glyph makes it underlined, bold and italic
// glyphs make it bold or italic, anything else is plain. Unmarked whitespace
// joins the surrounding run if the characters on both sides share a style.
//
// Runs reports a single style per character. Text produced by Apply carries
// at most one style, so no information is lost for such text.
func Runs(text string) []Run {
	cells := classify(text)
	resolveNeutrals(cells)
	var runs []Run
	pos := 0
	for _, c := range cells {
		if n := len(runs); n > 0 && runs[n-1].Style == c.style {
			runs[n-1].Text += c.text
			runs[n-1].Length += c.runes
		} else {
			runs = append(runs, Run{
				Style:    c.style,
				Text:     c.text,
				Position: pos,
				Length:   c.runes,
			})
		}
		pos += c.runes
	}
	return runs
}

// RangeRuns returns an iterator over the style runs of text.
func RangeRuns(text string) iter.Seq[Run] {
	return func(yield func(Run) bool) {
		for _, r := range Runs(text) {
			if !yield(r) {
				return
			}
		}
	}
}

func classify(text string) []cell {
	var cells []cell
	var cur *cell
	eachRune(text, func(r rune, raw string) {
		if glyph.IsMark(r) && cur != nil {
			cur.text += raw
			cur.runes++
			switch {
			case r == glyph.StrikeMark:
				cur.style = Strikethrough
			case cur.style != Strikethrough:
				cur.style = Underline
			}
			cur.neutral = false
			return
		}
		cells = append(cells, cell{
			text:    raw,
			style:   glyphStyle(r),
			neutral: unicode.IsSpace(r),
			runes:   1,
		})
		cur = &cells[len(cells)-1]
	})
	return cells
}

func glyphStyle(r rune) Style {
	switch {
	case glyph.Bold.Contains(r):
		return Bold
	case glyph.Italic.Contains(r):
		return Italic
	case glyph.Monospace.Contains(r):
		return Underline
	}
	return Plain
}

// resolveNeutrals assigns a style to unmarked whitespace: the style of the
// enclosing characters if they agree, plain otherwise.
func resolveNeutrals(cells []cell) {
	for i := 0; i < len(cells); {
		if !cells[i].neutral {
			i++
			continue
		}
		j := i
		for j < len(cells) && cells[j].neutral {
			j++
		}
		style := Plain
		if i > 0 && j < len(cells) && cells[i-1].style == cells[j].style {
			style = cells[i-1].style
		}
		for k := i; k < j; k++ {
			cells[k].style = style
		}
		i = j
	}
}

// --- Run Iterator ----------------------------------------------------------

// RunIterator is a “pull”-interface to the style runs of a text.
// For a “push”-interface please refer to RangeRuns.
type RunIterator struct {
	runs []Run
	inx  int
}

// IterateRuns creates an iterator over the style runs of text.
func IterateRuns(text string) *RunIterator {
	return &RunIterator{runs: Runs(text)}
}

// Next moves to the next run. It returns false if there are no more runs.
func (it *RunIterator) Next() bool {
	if it.inx >= len(it.runs) {
		return false
	}
	it.inx++
	return true
}

// Run returns the run at the current iterator position.
func (it *RunIterator) Run() Run {
	if it.inx == 0 {
		return Run{}
	}
	return it.runs[it.inx-1]
}

// Plain returns the current run with all styling removed.
func (it *RunIterator) Plain() string {
	return Decode(it.Run().Text)
}

func (r Run) String() string {
	return r.Style.String() + ":" + Decode(r.Text)
}
