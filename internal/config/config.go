// Package config loads the YAML document that drives a run.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"rule-ca/internal/core"
	"rule-ca/internal/sims/elementary"
)

var (
	// ErrMissingField reports required keys absent from the document.
	ErrMissingField = errors.New("missing required field")
	// ErrInvalidValue reports a key whose value is out of range or unparsable.
	ErrInvalidValue = errors.New("invalid value")
	// ErrUnknownKey reports an override for a key the config does not have.
	ErrUnknownKey = errors.New("unknown key")
)

const (
	defaultInitialWidth = 3
	defaultGlyphOn      = "⬛"
	defaultGlyphOff     = "⬜"
)

// Config holds every setting of a run. It is read once at startup and passed
// by value afterwards.
type Config struct {
	Generations        int `yaml:"generations"`
	Rule               int `yaml:"rule"`
	// MaxComputingLength caps lateral growth. Values at or below
	// initial_width, including negative ones, disable growth.
	MaxComputingLength int `yaml:"max_computing_length"`
	MaxDrawingLength   int `yaml:"max_drawing_length"`
	CellSize           int `yaml:"cell_size"`

	// Window settings, only required by the window presenter.
	Name   string `yaml:"name,omitempty"`
	Width  int    `yaml:"width,omitempty"`
	Height int    `yaml:"height,omitempty"`

	InitialWidth int    `yaml:"initial_width"`
	GlyphOn      string `yaml:"glyph_on"`
	GlyphOff     string `yaml:"glyph_off"`
}

// document mirrors Config with pointers so absent keys can be told apart from
// zero values.
type document struct {
	Generations        *int    `yaml:"generations"`
	Rule               *int    `yaml:"rule"`
	MaxComputingLength *int    `yaml:"max_computing_length"`
	MaxDrawingLength   *int    `yaml:"max_drawing_length"`
	CellSize           *int    `yaml:"cell_size"`
	Name               *string `yaml:"name"`
	Width              *int    `yaml:"width"`
	Height             *int    `yaml:"height"`
	InitialWidth       *int    `yaml:"initial_width"`
	GlyphOn            *string `yaml:"glyph_on"`
	GlyphOff           *string `yaml:"glyph_off"`
}

// Default returns a complete configuration matching the bundled ca.yaml.
func Default() Config {
	return Config{
		Generations:        51,
		Rule:               30,
		MaxComputingLength: 201,
		MaxDrawingLength:   101,
		CellSize:           8,
		Name:               "rule-ca",
		Width:              808,
		Height:             408,
		InitialWidth:       defaultInitialWidth,
		GlyphOn:            defaultGlyphOn,
		GlyphOff:           defaultGlyphOff,
	}
}

// Load reads and parses the YAML file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a YAML document. Unknown keys, wrongly typed values and
// missing required keys are errors.
func Parse(data []byte) (Config, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}

	var missing []string
	required := func(key string, v *int) int {
		if v == nil {
			missing = append(missing, key)
			return 0
		}
		return *v
	}
	cfg := Config{
		Generations:        required("generations", doc.Generations),
		Rule:               required("rule", doc.Rule),
		MaxComputingLength: required("max_computing_length", doc.MaxComputingLength),
		MaxDrawingLength:   required("max_drawing_length", doc.MaxDrawingLength),
		CellSize:           required("cell_size", doc.CellSize),
		InitialWidth:       defaultInitialWidth,
		GlyphOn:            defaultGlyphOn,
		GlyphOff:           defaultGlyphOff,
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", ErrMissingField, strings.Join(missing, ", "))
	}

	if doc.Name != nil {
		cfg.Name = *doc.Name
	}
	if doc.Width != nil {
		cfg.Width = *doc.Width
	}
	if doc.Height != nil {
		cfg.Height = *doc.Height
	}
	if doc.InitialWidth != nil {
		cfg.InitialWidth = *doc.InitialWidth
	}
	if doc.GlyphOn != nil {
		cfg.GlyphOn = *doc.GlyphOn
	}
	if doc.GlyphOff != nil {
		cfg.GlyphOff = *doc.GlyphOff
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the settings every presenter relies on.
func (c Config) Validate() error {
	switch {
	case c.Generations < 1:
		return fmt.Errorf("%w: generations must be at least 1, got %d", ErrInvalidValue, c.Generations)
	case c.Rule < 0 || c.Rule > 255:
		return fmt.Errorf("%w: rule must be within [0,255], got %d", ErrInvalidValue, c.Rule)
	case c.InitialWidth < 1:
		return fmt.Errorf("%w: initial_width must be at least 1, got %d", ErrInvalidValue, c.InitialWidth)
	case c.MaxDrawingLength < 1:
		return fmt.Errorf("%w: max_drawing_length must be at least 1, got %d", ErrInvalidValue, c.MaxDrawingLength)
	case c.CellSize < 1:
		return fmt.Errorf("%w: cell_size must be at least 1, got %d", ErrInvalidValue, c.CellSize)
	case c.GlyphOn == "" || c.GlyphOff == "":
		return fmt.Errorf("%w: glyphs must not be empty", ErrInvalidValue)
	}
	return nil
}

// ValidateWindow checks the extra settings needed to open a window.
func (c Config) ValidateWindow() error {
	var missing []string
	if c.Name == "" {
		missing = append(missing, "name")
	}
	if c.Width <= 0 {
		missing = append(missing, "width")
	}
	if c.Height <= 0 {
		missing = append(missing, "height")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingField, strings.Join(missing, ", "))
	}
	return nil
}

// Set applies a single key=value override using the YAML key names.
func (c *Config) Set(key, value string) error {
	if field, ok := c.stringFields()[key]; ok {
		*field = value
		return nil
	}
	field, ok := c.intFields()[key]
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownKey, key)
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidValue, key, value)
	}
	*field = parsed
	return nil
}

// ApplyOverrides applies key=value pairs in order and revalidates.
func (c *Config) ApplyOverrides(pairs []string) error {
	for _, kv := range pairs {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			return fmt.Errorf("%w: override %q is not key=value", ErrInvalidValue, kv)
		}
		if err := c.Set(strings.TrimSpace(key), value); err != nil {
			return err
		}
	}
	return c.Validate()
}

// Keys lists every key accepted by Set.
func (c *Config) Keys() []string {
	var keys []string
	for k := range c.intFields() {
		keys = append(keys, k)
	}
	for k := range c.stringFields() {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (c *Config) intFields() map[string]*int {
	return map[string]*int{
		"generations":          &c.Generations,
		"rule":                 &c.Rule,
		"max_computing_length": &c.MaxComputingLength,
		"max_drawing_length":   &c.MaxDrawingLength,
		"cell_size":            &c.CellSize,
		"width":                &c.Width,
		"height":               &c.Height,
		"initial_width":        &c.InitialWidth,
	}
}

func (c *Config) stringFields() map[string]*string {
	return map[string]*string{
		"name":      &c.Name,
		"glyph_on":  &c.GlyphOn,
		"glyph_off": &c.GlyphOff,
	}
}

// Engine returns the automaton settings.
func (c Config) Engine() elementary.Config {
	return elementary.Config{
		Generations:  c.Generations,
		InitialWidth: c.InitialWidth,
		Rule:         c.Rule,
		MaxWidth:     c.MaxComputingLength,
	}
}

// Present returns the display settings, writing text output to out.
func (c Config) Present(out io.Writer) core.PresentOptions {
	return core.PresentOptions{
		Title:        c.Name,
		Width:        c.Width,
		Height:       c.Height,
		CellSize:     c.CellSize,
		MaxDrawWidth: c.MaxDrawingLength,
		GlyphOn:      c.GlyphOn,
		GlyphOff:     c.GlyphOff,
		Out:          out,
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
