// Package configloader resolves the effective webcc configuration from
// defaults, a discovered or explicit config file, and WEBCC_* environment
// variables. CLI flags are applied on top by the command layer.
package configloader

import (
	"fmt"
	"os"

	"github.com/webcc-dev/webcc/internal/logging"
	"github.com/webcc-dev/webcc/pkg/config"
)

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for a project config.
	// Defaults to the current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config). When
	// set, project config discovery is skipped and a missing file is an
	// error rather than a fallback to defaults.
	ExplicitPath string

	// IgnoreEnv skips environment variable overrides.
	IgnoreEnv bool
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// LoadedFrom is the config file that was applied, or empty if only
	// defaults and environment were used.
	LoadedFrom string
}

// Load resolves the final configuration. Precedence, highest first:
// environment variables, the explicit or discovered config file, defaults.
func Load(opts LoadOptions) (*LoadResult, error) {
	result := &LoadResult{Config: config.Default()}

	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	path := opts.ExplicitPath
	if path == "" {
		path = DiscoverProjectConfig(workDir)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if opts.ExplicitPath != "" {
				return nil, fmt.Errorf("read config %s: %w", path, err)
			}
			logging.Default().Warn("skipping unreadable config",
				logging.FieldPath, path,
				logging.FieldError, err)
		} else {
			fileCfg, err := config.FromYAML(data)
			if err != nil {
				return nil, fmt.Errorf("config %s: %w", path, err)
			}
			applyFile(result.Config, fileCfg)
			result.LoadedFrom = path
		}
	}

	if !opts.IgnoreEnv {
		if err := LoadFromEnv(result.Config); err != nil {
			return nil, err
		}
	}

	if err := result.Config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return result, nil
}

// applyFile overlays the non-zero fields of src onto dst, so a sparse
// config file keeps the defaults for everything it does not mention.
func applyFile(dst, src *config.Config) {
	if src.OutputDir != "" {
		dst.OutputDir = src.OutputDir
	}
	if src.LogLevel != "" {
		dst.LogLevel = src.LogLevel
	}
	if src.Color != "" {
		dst.Color = src.Color
	}
	if src.Limits.MaxTokens != 0 {
		dst.Limits.MaxTokens = src.Limits.MaxTokens
	}
	if src.Limits.MaxNodes != 0 {
		dst.Limits.MaxNodes = src.Limits.MaxNodes
	}
	if src.Limits.MaxAttrs != 0 {
		dst.Limits.MaxAttrs = src.Limits.MaxAttrs
	}
	if src.Limits.MaxOutput != 0 {
		dst.Limits.MaxOutput = src.Limits.MaxOutput
	}
}
