// Package config defines core configuration types for webcc.
// These types are pure data structures; file discovery and environment
// handling live in the configloader.
package config

import (
	"fmt"

	"github.com/webcc-dev/webcc/pkg/htmlast"
)

// ColorMode controls whether diagnostics are rendered with ANSI styling.
type ColorMode string

const (
	// ColorAuto enables color when standard error is a terminal.
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// IsValid returns true if the color mode is one of the known values.
func (m ColorMode) IsValid() bool {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// LimitsConfig holds the pipeline capacity settings. Zero values fall back
// to the built-in defaults.
type LimitsConfig struct {
	MaxTokens int `mapstructure:"max_tokens" yaml:"max_tokens"`
	MaxNodes  int `mapstructure:"max_nodes" yaml:"max_nodes"`
	MaxAttrs  int `mapstructure:"max_attrs" yaml:"max_attrs"`
	MaxOutput int `mapstructure:"max_output" yaml:"max_output"`
}

// Limits converts the configured capacities to pipeline limits.
func (l LimitsConfig) Limits() htmlast.Limits {
	return htmlast.Limits{
		MaxTokens: l.MaxTokens,
		MaxNodes:  l.MaxNodes,
		MaxAttrs:  l.MaxAttrs,
		MaxOutput: l.MaxOutput,
	}.Normalized()
}

// Config is the root configuration structure for webcc.
type Config struct {
	// OutputDir is the directory compiled output is written into.
	OutputDir string `mapstructure:"output_dir" yaml:"output_dir"`

	// LogLevel is the logging verbosity ("debug", "info", "warn", "error").
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`

	// Color controls ANSI styling of diagnostics.
	Color ColorMode `mapstructure:"color" yaml:"color"`

	// Limits configures the pipeline capacities.
	Limits LimitsConfig `mapstructure:"limits" yaml:"limits"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		OutputDir: "out",
		LogLevel:  "info",
		Color:     ColorAuto,
	}
}

// Validate checks the configuration for values that cannot be used.
func (c *Config) Validate() error {
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir must not be empty")
	}
	if c.Color != "" && !c.Color.IsValid() {
		return fmt.Errorf("color: unknown mode %q", c.Color)
	}
	for name, v := range map[string]int{
		"max_tokens": c.Limits.MaxTokens,
		"max_nodes":  c.Limits.MaxNodes,
		"max_attrs":  c.Limits.MaxAttrs,
		"max_output": c.Limits.MaxOutput,
	} {
		if v < 0 {
			return fmt.Errorf("limits.%s must not be negative", name)
		}
	}
	return nil
}
