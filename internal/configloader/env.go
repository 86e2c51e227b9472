package configloader

import (
	"fmt"
	"os"
	"strconv"

	"github.com/webcc-dev/webcc/pkg/config"
)

// envVarPrefix is the prefix for all webcc environment variables.
const envVarPrefix = "WEBCC_"

// LoadFromEnv applies environment variable overrides to the configuration.
// Variables are prefixed with WEBCC_ (e.g. WEBCC_OUTPUT_DIR). Unset or
// empty variables leave the field untouched.
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	if v := os.Getenv(envVarPrefix + "OUTPUT_DIR"); v != "" {
		cfg.OutputDir = v
	}
	if v := os.Getenv(envVarPrefix + "LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(envVarPrefix + "COLOR"); v != "" {
		cfg.Color = config.ColorMode(v)
	}

	limits := map[string]*int{
		"MAX_TOKENS": &cfg.Limits.MaxTokens,
		"MAX_NODES":  &cfg.Limits.MaxNodes,
		"MAX_ATTRS":  &cfg.Limits.MaxAttrs,
		"MAX_OUTPUT": &cfg.Limits.MaxOutput,
	}
	for suffix, field := range limits {
		v := os.Getenv(envVarPrefix + suffix)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s%s: %w", envVarPrefix, suffix, err)
		}
		*field = n
	}

	return nil
}
