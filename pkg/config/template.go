package config

import (
	"fmt"
	"strings"

	"github.com/webcc-dev/webcc/pkg/htmlast"
)

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full emits every setting with its default and a comment; otherwise
	// only the common settings appear.
	Full bool
}

// Template generates a starter configuration file body.
func Template(opts TemplateOptions) ([]byte, error) {
	cfg := Default()

	var b strings.Builder
	b.WriteString("# webcc configuration\n")
	b.WriteString("# Settings here are overridden by WEBCC_* environment variables and flags.\n\n")

	fmt.Fprintf(&b, "# Directory compiled output is written into.\noutput_dir: %s\n\n", cfg.OutputDir)
	fmt.Fprintf(&b, "# Logging verbosity: debug, info, warn, error.\nlog_level: %s\n\n", cfg.LogLevel)
	fmt.Fprintf(&b, "# Diagnostic styling: auto, always, never.\ncolor: %s\n", cfg.Color)

	if opts.Full {
		limits := htmlast.DefaultLimits()
		b.WriteString("\n# Pipeline capacities. Inputs that exceed a capacity fail with a\n")
		b.WriteString("# diagnostic instead of truncating.\n")
		fmt.Fprintf(&b, "limits:\n")
		fmt.Fprintf(&b, "  max_tokens: %d\n", limits.MaxTokens)
		fmt.Fprintf(&b, "  max_nodes: %d\n", limits.MaxNodes)
		fmt.Fprintf(&b, "  max_attrs: %d\n", limits.MaxAttrs)
		fmt.Fprintf(&b, "  max_output: %d\n", limits.MaxOutput)
	}

	return []byte(b.String()), nil
}
