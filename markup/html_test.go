package markup

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/unistyle"
	"golang.org/x/net/html"
)

func TestStyleFromHTMLName(t *testing.T) {
	for tag, style := range map[string]unistyle.Style{
		"b": unistyle.Bold, "STRONG": unistyle.Bold,
		"i": unistyle.Italic, "em": unistyle.Italic,
		"u": unistyle.Underline, "ins": unistyle.Underline,
		"s": unistyle.Strikethrough, "strike": unistyle.Strikethrough, "del": unistyle.Strikethrough,
		"span": unistyle.Plain, "p": unistyle.Plain,
	} {
		if st := StyleFromHTMLName(tag); st != style {
			t.Errorf("expected <%s> to map to %v, have %v", tag, style, st)
		}
	}
}

func TestHTMLFromTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unistyle")
	defer teardown()
	//
	r := strings.NewReader(`<!DOCTYPE html><html><body><h1>My First Heading</h1><p>My <b>first</b> paragraph.</p></body></html>`)
	doc, err := html.Parse(r)
	if err != nil {
		t.Fatal(err.Error())
	}
	text, err := InnerText(doc)
	if err != nil {
		t.Fatal(err.Error())
	}
	t.Logf("text = '%s'", text)
	if text != "My First Heading\nMy 𝐟𝐢𝐫𝐬𝐭 paragraph." {
		t.Errorf("unexpected inner text %q", text)
	}
	if _, err = InnerText(nil); !errors.Is(err, ErrIllegalArguments) {
		t.Errorf("expected error for nil node, have %v", err)
	}
}

func TestHTMLParse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unistyle")
	defer teardown()
	//
	for _, x := range []struct {
		html, text string
	}{
		{`<p>My <b>first</b> paragraph.</p>`, "My 𝐟𝐢𝐫𝐬𝐭 paragraph."},
		{`<b>bold <i>italic</i></b>`, "𝐛𝐨𝐥𝐝 𝘪𝘵𝘢𝘭𝘪𝘤"},
		{`<p>one</p><p>two</p>`, "one\ntwo"},
		{`line<br>break`, "line\nbreak"},
		{`<u>a b</u>`, unistyle.Encode("a b", unistyle.Underline)},
		{`<del>gone</del>`, unistyle.Encode("gone", unistyle.Strikethrough)},
		{`<script>alert(1)</script>ok`, "ok"},
		{`a &lt; b`, "a < b"},
	} {
		text, err := FromHTML(strings.NewReader(x.html))
		if err != nil {
			t.Fatal(err.Error())
		}
		if text != x.text {
			t.Errorf("expected %s to yield %q, have %q", x.html, x.text, text)
		}
	}
}

func TestToHTML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unistyle")
	defer teardown()
	//
	for _, x := range []struct {
		text, html string
	}{
		{unistyle.Encode("Hello", unistyle.Bold), "<b>Hello</b>"},
		{"My 𝐟𝐢𝐫𝐬𝐭 paragraph.", "My <b>first</b> paragraph."},
		{unistyle.Encode("a b", unistyle.Underline), "<u>a b</u>"},
		{unistyle.Encode("gone", unistyle.Strikethrough), "<s>gone</s>"},
		{"a<b & c", "a&lt;b &amp; c"},
		{"", ""},
	} {
		h, err := ToHTML(x.text)
		if err != nil {
			t.Fatal(err.Error())
		}
		if h != x.html {
			t.Errorf("expected ToHTML(%q) = %q, have %q", x.text, x.html, h)
		}
	}
}

func TestHTMLRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unistyle")
	defer teardown()
	//
	for _, text := range []string{
		"My 𝐟𝐢𝐫𝐬𝐭 paragraph.",
		unistyle.Encode("Hello", unistyle.Italic) + " world",
		"plain " + unistyle.Encode("struck out", unistyle.Strikethrough),
	} {
		h, err := ToHTML(text)
		if err != nil {
			t.Fatal(err.Error())
		}
		back, err := FromHTML(strings.NewReader(h))
		if err != nil {
			t.Fatal(err.Error())
		}
		if back != text {
			t.Errorf("expected round trip of %q via %q, have %q", text, h, back)
		}
	}
}
