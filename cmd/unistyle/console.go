package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/npillmayer/unistyle"
	"github.com/npillmayer/unistyle/selection"
	"golang.org/x/term"
)

// console writes to a fixed-width output device, visualizing styles by color
// if the device is a terminal.
type console struct {
	w         io.Writer
	colors    map[unistyle.Style]*color.Color
	linewidth int // in fixed width ‘en’s
}

func newConsole(w io.Writer) *console {
	c := &console{
		w:         w,
		colors:    makeDefaultPalette(),
		linewidth: 65,
	}
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		for _, col := range c.colors {
			col.DisableColor()
		}
		return c
	}
	c.linewidth = lineWidth(int(f.Fd()))
	return c
}

func makeDefaultPalette() map[unistyle.Style]*color.Color {
	return map[unistyle.Style]*color.Color{
		unistyle.Plain:         color.New(color.FgBlue),
		unistyle.Bold:          color.New(color.FgRed, color.Bold),
		unistyle.Italic:        color.New(color.FgMagenta, color.Italic),
		unistyle.Underline:     color.New(color.FgGreen, color.Underline),
		unistyle.Strikethrough: color.New(color.FgYellow, color.CrossedOut),
	}
}

// lineWidth reads the terminal's width and subtracts a margin.
func lineWidth(fd int) int {
	w, _, err := term.GetSize(fd)
	switch {
	case err != nil:
		return 65
	case w > 65:
		return w - 10
	case w > 30:
		return w - 5
	case w > 10:
		return w
	}
	return 10
}

// styled outputs s in the color for style.
func (c *console) styled(s string, style unistyle.Style) {
	if col, ok := c.colors[style]; ok {
		col.Fprint(c.w, s)
		return
	}
	io.WriteString(c.w, s)
}

func (c *console) printStyles(styles []unistyle.Style) {
	if len(styles) == 0 {
		c.styled(unistyle.Plain.String(), unistyle.Plain)
	}
	for i, s := range styles {
		if i > 0 {
			io.WriteString(c.w, " ")
		}
		c.styled(s.String(), s)
	}
	io.WriteString(c.w, "\n")
}

// --- Run table -------------------------------------------------------------

var runHeader = []string{"POS", "LEN", "WIDTH", "STYLE", "TEXT"}

// printRuns outputs a table of the style runs of text. The text column
// shows the plain characters of a run and is truncated to fit the line.
func (c *console) printRuns(text string) {
	const cols = "%5s %5s %5s  "
	stylew := runewidth.StringWidth("strikethrough")
	textw := c.linewidth - 19 - stylew - 2
	if textw < 10 {
		textw = 10
	}
	fmt.Fprintf(c.w, cols, runHeader[0], runHeader[1], runHeader[2])
	fmt.Fprintf(c.w, "%s  %s\n", runewidth.FillRight(runHeader[3], stylew), runHeader[4])
	for run := range unistyle.RangeRuns(text) {
		fmt.Fprintf(c.w, cols, fmt.Sprint(run.Position), fmt.Sprint(run.Length),
			fmt.Sprint(selection.Width(run.Text)))
		c.styled(runewidth.FillRight(run.Style.String(), stylew), run.Style)
		fmt.Fprintf(c.w, "  %q\n", runewidth.Truncate(unistyle.Decode(run.Text), textw, "…"))
	}
}
