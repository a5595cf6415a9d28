// Package config loads tool libraries from YAML or TOML files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/philipparndt/gocut/pkg/cutter"
)

// Errors returned while loading or querying a library
var (
	ErrUnknownFormat = errors.New("unknown tool library format")
	ErrToolNotFound  = errors.New("tool not found")
	ErrInvalidTool   = errors.New("invalid tool")
)

// Format is the encoding of a library file
type Format string

// Supported formats
const (
	YAML Format = "yaml"
	TOML Format = "toml"
)

// ToolSpec describes one cutter in a library
type ToolSpec struct {
	Name             string  `yaml:"name" toml:"name"`
	Shape            string  `yaml:"shape" toml:"shape"`
	Radius           float64 `yaml:"radius,omitempty" toml:"radius,omitempty"`
	Diameter         float64 `yaml:"diameter,omitempty" toml:"diameter,omitempty"`
	Height           float64 `yaml:"height,omitempty" toml:"height,omitempty"`
	RequiredDistance float64 `yaml:"required_distance,omitempty" toml:"required_distance,omitempty"`
}

// Library is a named set of tools
type Library struct {
	Default string     `yaml:"default,omitempty" toml:"default,omitempty"`
	Tools   []ToolSpec `yaml:"tools" toml:"tools"`
}

// FormatFromPath picks the format by file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownFormat, path)
}

// Load reads a library file, choosing the decoder by extension
func Load(path string) (*Library, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tool library: %w", err)
	}
	lib, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lib, nil
}

// Parse decodes and validates a library. Unknown keys are rejected.
func Parse(data []byte, format Format) (*Library, error) {
	var lib Library
	switch format {
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&lib); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to decode YAML: %w", err)
		}
	case TOML:
		md, err := toml.Decode(string(data), &lib)
		if err != nil {
			return nil, fmt.Errorf("failed to decode TOML: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("failed to decode TOML: unknown key %q", undecoded[0].String())
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err := lib.validate(); err != nil {
		return nil, err
	}
	return &lib, nil
}

func (l *Library) validate() error {
	seen := make(map[string]bool, len(l.Tools))
	for i, tool := range l.Tools {
		if tool.Name == "" {
			return fmt.Errorf("%w: tool %d has no name", ErrInvalidTool, i+1)
		}
		if seen[tool.Name] {
			return fmt.Errorf("%w: duplicate name %q", ErrInvalidTool, tool.Name)
		}
		seen[tool.Name] = true
		if _, err := tool.Build(); err != nil {
			return err
		}
	}
	if l.Default != "" && !seen[l.Default] {
		return fmt.Errorf("%w: default %q", ErrToolNotFound, l.Default)
	}
	return nil
}

// Find returns the named tool. An empty name selects the default tool, or
// the first one when no default is set.
func (l *Library) Find(name string) (ToolSpec, error) {
	if name == "" {
		name = l.Default
	}
	for _, tool := range l.Tools {
		if name == "" || tool.Name == name {
			return tool, nil
		}
	}
	if name == "" {
		return ToolSpec{}, fmt.Errorf("%w: library is empty", ErrToolNotFound)
	}
	return ToolSpec{}, fmt.Errorf("%w: %q", ErrToolNotFound, name)
}

// Names lists the tools in file order
func (l *Library) Names() []string {
	names := make([]string, 0, len(l.Tools))
	for _, tool := range l.Tools {
		names = append(names, tool.Name)
	}
	return names
}

// EffectiveRadius returns Radius, or half the Diameter when no radius is set
func (t ToolSpec) EffectiveRadius() float64 {
	if t.Radius == 0 && t.Diameter > 0 {
		return t.Diameter / 2
	}
	return t.Radius
}

// Build creates the cutter described by this entry. Extra options are applied
// after the tool's own settings.
func (t ToolSpec) Build(opts ...cutter.Option) (*cutter.Cutter, error) {
	shape, err := cutter.ParseShape(t.Shape)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidTool, t.Name, err)
	}
	var all []cutter.Option
	if t.Height != 0 {
		all = append(all, cutter.WithHeight(t.Height))
	}
	if t.RequiredDistance != 0 {
		all = append(all, cutter.WithRequiredDistance(t.RequiredDistance))
	}
	all = append(all, opts...)

	c, err := cutter.New(shape, t.EffectiveRadius(), all...)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidTool, t.Name, err)
	}
	return c, nil
}
