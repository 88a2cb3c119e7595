/*
Package markup converts between HTML inline markup and Unicode-styled text.

Unicode-styled text carries its styling in the characters themselves. An
HTML fragment like

	<p>My <b>first</b> paragraph.</p>

is therefore turned into a plain string in which the word “first” consists
of bold glyphs. The reverse direction splits styled text into style runs and
wraps every non-plain run into an inline element.

Styled text carries at most one style per character. Nested inline elements
are resolved by the innermost styling element.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package markup

import (
	"io"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/unistyle"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer writes to trace with key 'unistyle'
func tracer() tracing.Trace {
	return tracing.Select("unistyle")
}

// MarkupError is the type for errors of package markup.
type MarkupError string

func (e MarkupError) Error() string {
	return string(e)
}

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = MarkupError("illegal arguments")

var htmlStyles = map[string]unistyle.Style{
	"b":      unistyle.Bold,
	"strong": unistyle.Bold,
	"i":      unistyle.Italic,
	"em":     unistyle.Italic,
	"u":      unistyle.Underline,
	"ins":    unistyle.Underline,
	"s":      unistyle.Strikethrough,
	"strike": unistyle.Strikethrough,
	"del":    unistyle.Strikethrough,
}

var htmlTags = map[unistyle.Style]atom.Atom{
	unistyle.Bold:          atom.B,
	unistyle.Italic:        atom.I,
	unistyle.Underline:     atom.U,
	unistyle.Strikethrough: atom.S,
}

// StyleFromHTMLName returns the style for an inline HTML element name, or
// unistyle.Plain if the element does not style text.
func StyleFromHTMLName(tag string) unistyle.Style {
	return htmlStyles[strings.ToLower(tag)]
}

// --- HTML to styled text ---------------------------------------------------

// InnerText creates a Unicode-styled string for the textual content of an HTML
// element and all its descendents. It resembles the text produced by
//
//	document.getElementById("myNode").innerText
//
// in JavaScript, except that InnerText cannot respect CSS styling.
// Styling is limited to inline elements like
//
//	<strong> … </strong>
//	<i> … </i>
//
// etc. Line breaks are kept, and block elements (p, div, li and headings) start
// on a new line.
func InnerText(n *html.Node) (string, error) {
	if n == nil {
		return "", ErrIllegalArguments
	}
	c := &collector{}
	c.collect(n, unistyle.Plain)
	return c.b.String(), nil
}

// FromHTML creates a Unicode-styled string from the textual content of an HTML
// fragment. The HTML fragment should reflect the content of a paragraph-like
// element.
func FromHTML(input io.Reader) (string, error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return "", err
	}
	c := &collector{}
	for _, n := range nodes {
		c.collect(n, unistyle.Plain)
	}
	return c.b.String(), nil
}

type collector struct {
	b       strings.Builder
	newline bool // a block boundary is pending
}

func (c *collector) collect(n *html.Node, style unistyle.Style) {
	switch n.Type {
	case html.ElementNode:
		switch n.DataAtom {
		case atom.Script, atom.Style, atom.Head:
			return
		case atom.Br:
			c.b.WriteByte('\n')
			c.newline = false
			return
		case atom.P, atom.Div, atom.Li, atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
			c.newline = true
			defer func() { c.newline = true }()
		}
		if st := StyleFromHTMLName(n.Data); st != unistyle.Plain {
			style = st
		}
		tracer().Debugf("markup: collect text of <%s> as %v", n.Data, style)
	case html.TextNode:
		c.text(n.Data, style)
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		c.collect(ch, style)
	}
}

func (c *collector) text(s string, style unistyle.Style) {
	if s == "" {
		return
	}
	if c.newline {
		if c.b.Len() > 0 && !strings.HasSuffix(c.b.String(), "\n") {
			c.b.WriteByte('\n')
		}
		c.newline = false
	}
	c.b.WriteString(unistyle.Encode(s, style))
}

// --- Styled text to HTML ---------------------------------------------------

// ToHTML creates HTML inline markup for Unicode-styled text. Every style run is
// decoded to plain characters; runs with a style are wrapped into one of the
// elements <b>, <i>, <u> and <s>. Text is escaped as necessary.
func ToHTML(text string) (string, error) {
	var b strings.Builder
	for _, n := range Nodes(text) {
		if err := html.Render(&b, n); err != nil {
			return "", err
		}
	}
	return b.String(), nil
}

// Nodes creates a list of HTML nodes for Unicode-styled text, one node per
// style run. The nodes are suitable for html.Render or for insertion into
// an existing document tree.
func Nodes(text string) []*html.Node {
	var nodes []*html.Node
	for run := range unistyle.RangeRuns(text) {
		txt := &html.Node{Type: html.TextNode, Data: unistyle.Decode(run.Text)}
		tag, ok := htmlTags[run.Style]
		if !ok {
			nodes = append(nodes, txt)
			continue
		}
		elem := &html.Node{Type: html.ElementNode, DataAtom: tag, Data: tag.String()}
		elem.AppendChild(txt)
		nodes = append(nodes, elem)
	}
	return nodes
}
