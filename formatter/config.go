package formatter

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/npillmayer/unistyle"
)

// DefaultMaxInputLength is the maximum number of code points a Formatter will
// accept with the default configuration.
const DefaultMaxInputLength = 50000

// Definition describes how a format is presented to the user.
type Definition struct {
	ID       string `toml:"id"`
	Label    string `toml:"label"`
	Tooltip  string `toml:"tooltip"`
	Shortcut string `toml:"shortcut"`
}

// Config represents a set of configuration parameters for formatting.
// Formats maps style identifiers ("bold", "italic", …) to definitions; only
// styles present in Formats are supported by a Formatter.
type Config struct {
	MaxInputLength int                   `toml:"max_input_length"`
	Compose        bool                  `toml:"compose"`
	Formats        map[string]Definition `toml:"formats"`
}

// DefaultConfig returns a configuration supporting all four styles.
func DefaultConfig() *Config {
	return &Config{
		MaxInputLength: DefaultMaxInputLength,
		Compose:        true,
		Formats: map[string]Definition{
			"bold":          {ID: "bold", Label: "B", Tooltip: "Bold", Shortcut: "Ctrl+B"},
			"italic":        {ID: "italic", Label: "I", Tooltip: "Italic", Shortcut: "Ctrl+I"},
			"underline":     {ID: "underline", Label: "U", Tooltip: "Underline", Shortcut: "Ctrl+U"},
			"strikethrough": {ID: "strikethrough", Label: "S", Tooltip: "Strikethrough", Shortcut: "Ctrl+Shift+S"},
		},
	}
}

// ParseConfig reads a configuration in TOML format. Settings not present in
// data keep their default values. If data contains format tables, exactly the
// formats given are supported; a format table for an unknown style is an error.
func ParseConfig(data string) (*Config, error) {
	config := emptyFormats()
	md, err := toml.Decode(data, config)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err = config.check(md); err != nil {
		return nil, err
	}
	return config, nil
}

// LoadConfig reads a configuration from a TOML file.
func LoadConfig(path string) (*Config, error) {
	config := emptyFormats()
	md, err := toml.DecodeFile(path, config)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	tracer().P("config", path).Infof("loaded formatter configuration")
	if err = config.check(md); err != nil {
		return nil, err
	}
	return config, nil
}

func emptyFormats() *Config {
	config := DefaultConfig()
	config.Formats = nil
	return config
}

// check normalizes a decoded configuration.
func (config *Config) check(md toml.MetaData) error {
	if config.Formats == nil {
		config.Formats = DefaultConfig().Formats
	}
	for _, key := range md.Undecoded() {
		tracer().P("config", key.String()).Infof("ignoring unknown configuration key")
	}
	if config.MaxInputLength <= 0 {
		return fmt.Errorf("%w: max_input_length must be positive, is %d",
			ErrInvalidConfig, config.MaxInputLength)
	}
	formats := make(map[string]Definition, len(config.Formats))
	for key, def := range config.Formats {
		style, ok := unistyle.ParseStyle(key)
		if !ok {
			return fmt.Errorf("%w: %w %q", ErrInvalidConfig, ErrUnsupportedStyle, key)
		}
		if def.ID == "" {
			def.ID = style.String()
		}
		formats[style.String()] = def
	}
	config.Formats = formats
	return nil
}

// Styles returns the supported styles in canonical order.
func (config *Config) Styles() []unistyle.Style {
	styles := make([]unistyle.Style, 0, len(config.Formats))
	for _, s := range unistyle.AllStyles {
		if _, ok := config.Formats[s.String()]; ok {
			styles = append(styles, s)
		}
	}
	return styles
}

func (config *Config) String() string {
	ids := make([]string, 0, len(config.Formats))
	for _, s := range config.Styles() {
		ids = append(ids, s.String())
	}
	return fmt.Sprintf("Config{max=%d, compose=%v, formats=%s}", config.MaxInputLength,
		config.Compose, strings.Join(ids, ","))
}
