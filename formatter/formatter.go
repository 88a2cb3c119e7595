package formatter

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/unistyle"
	"golang.org/x/text/unicode/norm"
)

// FormatError is the type for errors of package formatter.
type FormatError string

func (e FormatError) Error() string {
	return string(e)
}

// Errors flagged by validation of formatting requests and configurations.
const (
	ErrEmptyText        = FormatError("no text provided for formatting")
	ErrUnsupportedStyle = FormatError("unsupported style")
	ErrTextTooLong      = FormatError("text too long for formatting")
	ErrEmptyResult      = FormatError("formatting resulted in empty text")
	ErrInvalidConfig    = FormatError("invalid formatter configuration")
)

// Formatter applies styles to text, validating requests against a Config.
// A Formatter is immutable and may be shared between goroutines.
type Formatter struct {
	config *Config
}

// New creates a formatter for a configuration. If config is nil, DefaultConfig
// will be used.
func New(config *Config) *Formatter {
	if config == nil {
		config = DefaultConfig()
	}
	return &Formatter{config: config}
}

// Config returns the configuration of f.
func (f *Formatter) Config() *Config {
	return f.config
}

// Validate checks if a text may be formatted with a style.
func (f *Formatter) Validate(text string, style unistyle.Style) error {
	if text == "" {
		return ErrEmptyText
	}
	if _, ok := f.Definition(style); !ok {
		return fmt.Errorf("%w: %v", ErrUnsupportedStyle, style)
	}
	if n := utf8.RuneCountInString(text); n > f.config.MaxInputLength {
		return fmt.Errorf("%w: %d code points, maximum is %d", ErrTextTooLong, n,
			f.config.MaxInputLength)
	}
	return nil
}

// Format applies style to text, given the styles already present in text.
// existing is usually the result of Detect; a nil slice means “unstyled”.
func (f *Formatter) Format(text string, style unistyle.Style, existing []unistyle.Style) (string, error) {
	if err := f.Validate(text, style); err != nil {
		return text, err
	}
	prepared := f.prepare(text)
	formatted := unistyle.ApplyStyles(prepared, existing, style)
	if strings.TrimSpace(prepared) != "" && strings.TrimSpace(formatted) == "" {
		return text, fmt.Errorf("%w: %v", ErrEmptyResult, style)
	}
	return formatted, nil
}

// prepare composes text to canonical form (NFC) if configured. Composed
// accented letters are folded to styled glyphs, decomposed ones are not.
func (f *Formatter) prepare(text string) string {
	if !f.config.Compose || norm.NFC.IsNormalString(text) {
		return text
	}
	return norm.NFC.String(text)
}

// Detect returns the styles present in text, in canonical order.
func (f *Formatter) Detect(text string) []unistyle.Style {
	return unistyle.DetectStyles(text)
}

// HasFormats is true if any style is present in text.
func (f *Formatter) HasFormats(text string) bool {
	return unistyle.IsStyled(text)
}

// RemoveAll removes any styling from text.
func (f *Formatter) RemoveAll(text string) string {
	return unistyle.Decode(text)
}

// Supported returns the styles supported by f, in canonical order.
func (f *Formatter) Supported() []unistyle.Style {
	return f.config.Styles()
}

// Definition returns the presentation definition for style, if style
// is supported.
func (f *Formatter) Definition(style unistyle.Style) (Definition, bool) {
	if !style.Valid() {
		return Definition{}, false
	}
	def, ok := f.config.Formats[style.String()]
	return def, ok
}

// Preview describes the outcome of a formatting request without applying it.
type Preview struct {
	Original   string
	Formatted  string
	Style      unistyle.Style
	Existing   []unistyle.Style
	Strategy   unistyle.Strategy
	HasChanges bool
}

// Preview computes the result of formatting text with style.
func (f *Formatter) Preview(text string, style unistyle.Style) (Preview, error) {
	if err := f.Validate(text, style); err != nil {
		return Preview{}, err
	}
	existing := f.Detect(text)
	formatted, err := f.Format(text, style, existing)
	if err != nil {
		return Preview{}, err
	}
	return Preview{
		Original:   text,
		Formatted:  formatted,
		Style:      style,
		Existing:   existing,
		Strategy:   unistyle.Decide(unistyle.NewRequest(f.prepare(text), style)),
		HasChanges: formatted != text,
	}, nil
}
