package unistyle

import "fmt"

// Strategy is the decision of the composition policy for a request.
type Strategy int

// Toggle, ApplyStyle and Incremental are the three outcomes for a valid
// request. Keep is returned for requests which leave the text untouched
// (empty text or an unknown style).
const (
	Keep        Strategy = iota // identity
	Toggle                      // requested style is present: remove all styles
	ApplyStyle                  // no style present: apply the requested one
	Incremental                 // another style is present: replace it
)

func (s Strategy) String() string {
	switch s {
	case Keep:
		return "keep"
	case Toggle:
		return "toggle"
	case ApplyStyle:
		return "apply"
	case Incremental:
		return "incremental"
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// Request is the input of the composition policy. Current holds the
// styles detected in Source, usually by calling Detect.
type Request struct {
	Source    string
	Current   Set
	Requested Style
}

// NewRequest creates a request for a source text, detecting its current
// styles.
func NewRequest(source string, requested Style) Request {
	return Request{
		Source:    source,
		Current:   Detect(source),
		Requested: requested,
	}
}

// Decide selects the strategy for a request.
func Decide(req Request) Strategy {
	switch {
	case req.Source == "" || !req.Requested.Valid():
		return Keep
	case req.Current.Contains(req.Requested):
		return Toggle
	case req.Current.IsEmpty():
		return ApplyStyle
	}
	return Incremental
}

// Apply executes the composition policy and returns the new text.
//
// Toggling removes all styles, not just the requested one. Replacing a style
// always normalizes to plain text first, so a text never carries more than
// one style as a result of Apply. Applying the same style twice yields the
// original (plain) text.
func Apply(req Request) string {
	strategy := Decide(req)
	tracer().Debugf("unistyle: %s %v on %v", strategy, req.Requested, req.Current)
	switch strategy {
	case Toggle:
		return Decode(req.Source)
	case ApplyStyle:
		return Encode(req.Source, req.Requested)
	case Incremental:
		return Encode(Decode(req.Source), req.Requested)
	}
	return req.Source
}

// ApplyStyles is a convenience wrapper around Apply, taking the current
// styles as a slice.
func ApplyStyles(source string, current []Style, requested Style) string {
	return Apply(Request{
		Source:    source,
		Current:   SetOf(current...),
		Requested: requested,
	})
}
