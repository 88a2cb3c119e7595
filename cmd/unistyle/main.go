/*
Unistyle applies Unicode text styles on the command line.

Usage:

	unistyle [flags] [text ...]

Text is taken from the arguments or, if there are none, from stdin.
Exactly one of the following modes may be selected:

	-style S     apply style S (bold, italic, underline, strikethrough)
	-plain       remove all styling
	-detect      print the styles present in the text
	-runs        print a table of the text's style runs
	-html        convert styled text to HTML inline markup
	-from-html   convert HTML inline markup to styled text

Further flags:

	-config F    read formatter configuration from TOML file F
	-trace L     set trace level (error, info, debug)

Applying a style which is already present removes it (toggle). Applying
a different style replaces the present one.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/unistyle"
	"github.com/npillmayer/unistyle/formatter"
	"github.com/npillmayer/unistyle/markup"
	"github.com/npillmayer/unistyle/selection"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// errUsage is flagged for invalid combinations of flags.
var errUsage = errors.New("usage")

type options struct {
	style    string
	plain    bool
	detect   bool
	runs     bool
	toHTML   bool
	fromHTML bool
	config   string
	trace    string
}

// run executes the command and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("unistyle", flag.ContinueOnError)
	fs.SetOutput(stderr)
	opts := options{}
	fs.StringVar(&opts.style, "style", "", "apply style (bold, italic, underline, strikethrough)")
	fs.BoolVar(&opts.plain, "plain", false, "remove all styling")
	fs.BoolVar(&opts.detect, "detect", false, "print the styles present in the text")
	fs.BoolVar(&opts.runs, "runs", false, "print the style runs of the text")
	fs.BoolVar(&opts.toHTML, "html", false, "convert styled text to HTML")
	fs.BoolVar(&opts.fromHTML, "from-html", false, "convert HTML to styled text")
	fs.StringVar(&opts.config, "config", "", "formatter configuration file (TOML)")
	fs.StringVar(&opts.trace, "trace", "error", "trace level (error, info, debug)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	setupTracing(opts.trace, stderr)
	text, err := input(fs.Args(), stdin)
	if err != nil {
		fmt.Fprintf(stderr, "unistyle: %v\n", err)
		return 1
	}
	if err = execute(opts, text, stdout); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintf(stderr, "unistyle: %v\n", err)
			fs.Usage()
			return 2
		}
		fmt.Fprintf(stderr, "unistyle: %v\n", err)
		return 1
	}
	return 0
}

func setupTracing(level string, w io.Writer) {
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	tracer := tracing.Select("unistyle")
	tracer.SetOutput(w)
	tracer.SetTraceLevel(tracing.TraceLevelFromString(level))
}

// input returns the text to process: the arguments joined by spaces, or
// stdin without its final line break.
func input(args []string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	b, err := io.ReadAll(stdin)
	if err != nil {
		return "", err
	}
	text := strings.TrimSuffix(string(b), "\n")
	return strings.TrimSuffix(text, "\r"), nil
}

func execute(opts options, text string, stdout io.Writer) error {
	modes := 0
	for _, on := range []bool{opts.style != "", opts.plain, opts.detect, opts.runs, opts.toHTML, opts.fromHTML} {
		if on {
			modes++
		}
	}
	if modes != 1 {
		return fmt.Errorf("%w: select exactly one mode", errUsage)
	}
	console := newConsole(stdout)
	switch {
	case opts.style != "":
		config, err := loadConfig(opts.config)
		if err != nil {
			return err
		}
		out, err := applyStyle(config, text, opts.style)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, out)
	case opts.plain:
		fmt.Fprintln(stdout, unistyle.Decode(text))
	case opts.detect:
		console.printStyles(unistyle.DetectStyles(text))
	case opts.runs:
		console.printRuns(text)
	case opts.toHTML:
		h, err := markup.ToHTML(text)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, h)
	case opts.fromHTML:
		s, err := markup.FromHTML(strings.NewReader(text))
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, s)
	}
	return nil
}

func loadConfig(path string) (*formatter.Config, error) {
	if path == "" {
		return formatter.DefaultConfig(), nil
	}
	return formatter.LoadConfig(path)
}

// applyStyle formats the whole text as if it were the selection of an
// input field.
func applyStyle(config *formatter.Config, text, id string) (string, error) {
	style, ok := unistyle.ParseStyle(id)
	if !ok {
		return "", fmt.Errorf("%w: %q", formatter.ErrUnsupportedStyle, id)
	}
	ctx := context.Background()
	orch := formatter.NewOrchestrator(ctx, formatter.New(config))
	defer orch.Close()
	field := selection.NewField(text, 0, len([]rune(text)))
	res, err := orch.Format(ctx, formatter.Request{Field: field, Style: style})
	if err != nil {
		return "", err
	}
	tracing.Select("unistyle").P("op", res.ID).Infof("%v in %v", res.Strategy, res.Duration)
	return res.Field.Value, nil
}
