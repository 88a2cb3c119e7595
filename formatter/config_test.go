package formatter

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/unistyle"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	if config.MaxInputLength != 50000 || !config.Compose {
		t.Errorf("unexpected default config %v", config)
	}
	if !slices.Equal(config.Styles(), unistyle.AllStyles) {
		t.Errorf("expected all styles to be supported, have %v", config.Styles())
	}
	if def := config.Formats["strikethrough"]; def.Shortcut != "Ctrl+Shift+S" || def.Label != "S" {
		t.Errorf("unexpected strikethrough definition %+v", def)
	}
}

func TestParseConfig(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unistyle")
	defer teardown()
	//
	config, err := ParseConfig(`
max_input_length = 10
compose = false
color = "blue"

[formats.Bold]
label = "F"
tooltip = "Fett"
`)
	if err != nil {
		t.Fatal(err)
	}
	t.Logf("config = %v", config)
	if config.MaxInputLength != 10 || config.Compose {
		t.Errorf("expected settings to be read, have %v", config)
	}
	if !slices.Equal(config.Styles(), []unistyle.Style{unistyle.Bold}) {
		t.Errorf("expected bold only, have %v", config.Styles())
	}
	if def := config.Formats["bold"]; def.ID != "bold" || def.Label != "F" || def.Tooltip != "Fett" {
		t.Errorf("unexpected definition for bold: %+v", def)
	}
}

func TestParseConfigDefaults(t *testing.T) {
	config, err := ParseConfig(`compose = false`)
	if err != nil {
		t.Fatal(err)
	}
	if config.MaxInputLength != DefaultMaxInputLength || len(config.Formats) != 4 {
		t.Errorf("expected defaults to be kept, have %v", config)
	}
}

func TestParseConfigErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unistyle")
	defer teardown()
	//
	_, err := ParseConfig("[formats.blink]\nlabel = \"X\"\n")
	if !errors.Is(err, ErrUnsupportedStyle) || !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected unsupported style to be flagged, have %v", err)
	}
	if _, err = ParseConfig(`max_input_length = 0`); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected invalid length to be flagged, have %v", err)
	}
	if _, err = ParseConfig(`max_input_length = `); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected syntax error to be flagged, have %v", err)
	}
}

func TestLoadConfig(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unistyle")
	defer teardown()
	//
	path := filepath.Join(t.TempDir(), "unistyle.toml")
	data := "max_input_length = 100\n[formats.italic]\nshortcut = \"Alt+I\"\n[formats.underline]\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
	config, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(config.Styles(), []unistyle.Style{unistyle.Italic, unistyle.Underline}) {
		t.Errorf("unexpected styles %v", config.Styles())
	}
	if config.Formats["italic"].Shortcut != "Alt+I" {
		t.Errorf("unexpected italic definition %+v", config.Formats["italic"])
	}
	if _, err = LoadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Errorf("expected error for missing file")
	}
}
