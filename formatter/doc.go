/*
Package formatter is a service layer on top of package unistyle. It is
intended for applications which apply Unicode styling to user input, e.g. a
browser extension or an editor plug-in styling the selection of a text field.

Package unistyle itself never fails: unknown styles and empty input lead to
the input text being returned unchanged. An application, however, wants to
tell the user why a formatting request did nothing. A Formatter therefore
validates requests against a configuration and reports one of the errors

▪︎ ErrEmptyText

▪︎ ErrUnsupportedStyle

▪︎ ErrTextTooLong

▪︎ ErrEmptyResult

# Configuration

A Config holds the maximum input length, the set of supported formats
together with the definitions a user interface needs to present them
(label, tooltip, keyboard shortcut), and a flag for canonical composition
of the input. Configurations may be read from TOML files:

	max_input_length = 50000
	compose = true

	[formats.bold]
	label = "B"
	tooltip = "Bold"
	shortcut = "Ctrl+B"

# Orchestration

An Orchestrator applies a formatting request to the selection of an input
field: it snaps the selection to grapheme boundaries, detects the styles
present, decides on a composition strategy, formats the selected text and
replaces it within the field. Every operation is assigned an identifier and
accounted for in the orchestrator's statistics. Subscribers are notified of
completed operations, together with the events an input field would fire
after a programmatic change of its value.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package formatter

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'unistyle'
func tracer() tracing.Trace {
	return tracing.Select("unistyle")
}
