package config_test

import (
	"strings"
	"testing"

	"github.com/webcc-dev/webcc/pkg/config"
	"github.com/webcc-dev/webcc/pkg/htmlast"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	if cfg.OutputDir != "out" {
		t.Errorf("OutputDir = %q, want %q", cfg.OutputDir, "out")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.Color != config.ColorAuto {
		t.Errorf("Color = %q, want %q", cfg.Color, config.ColorAuto)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config does not validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr bool
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *config.Config) {},
		},
		{
			name:    "empty output dir",
			mutate:  func(c *config.Config) { c.OutputDir = "" },
			wantErr: true,
		},
		{
			name:    "unknown color mode",
			mutate:  func(c *config.Config) { c.Color = "sometimes" },
			wantErr: true,
		},
		{
			name:   "empty color mode is allowed",
			mutate: func(c *config.Config) { c.Color = "" },
		},
		{
			name:    "negative limit",
			mutate:  func(c *config.Config) { c.Limits.MaxTokens = -1 },
			wantErr: true,
		},
		{
			name:   "custom limits",
			mutate: func(c *config.Config) { c.Limits.MaxNodes = 64 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := config.Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr = %v", err, tt.wantErr)
			}
		})
	}
}

func TestLimitsConfig(t *testing.T) {
	t.Parallel()

	t.Run("zero values use defaults", func(t *testing.T) {
		t.Parallel()

		limits := config.LimitsConfig{}.Limits()
		if limits.MaxTokens != htmlast.DefaultMaxTokens {
			t.Errorf("MaxTokens = %d, want %d", limits.MaxTokens, htmlast.DefaultMaxTokens)
		}
		if limits.MaxOutput != htmlast.DefaultMaxOutput {
			t.Errorf("MaxOutput = %d, want %d", limits.MaxOutput, htmlast.DefaultMaxOutput)
		}
	})

	t.Run("explicit values pass through", func(t *testing.T) {
		t.Parallel()

		limits := config.LimitsConfig{MaxNodes: 16}.Limits()
		if limits.MaxNodes != 16 {
			t.Errorf("MaxNodes = %d, want 16", limits.MaxNodes)
		}
		if limits.MaxTokens != htmlast.DefaultMaxTokens {
			t.Errorf("MaxTokens = %d, want default", limits.MaxTokens)
		}
	})
}

func TestYAMLRoundTrip(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.OutputDir = "build"
	cfg.Limits.MaxTokens = 512

	data, err := cfg.ToYAML()
	if err != nil {
		t.Fatalf("ToYAML() error = %v", err)
	}

	parsed, err := config.FromYAML(data)
	if err != nil {
		t.Fatalf("FromYAML() error = %v", err)
	}

	if parsed.OutputDir != "build" {
		t.Errorf("OutputDir = %q, want %q", parsed.OutputDir, "build")
	}
	if parsed.Limits.MaxTokens != 512 {
		t.Errorf("Limits.MaxTokens = %d, want 512", parsed.Limits.MaxTokens)
	}
}

func TestToYAMLWithHeader(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	data, err := cfg.ToYAMLWithHeader("# generated by webcc")
	if err != nil {
		t.Fatalf("ToYAMLWithHeader() error = %v", err)
	}
	if !strings.HasPrefix(string(data), "# generated by webcc\n") {
		t.Errorf("missing header: %q", data[:40])
	}
}

func TestTemplate(t *testing.T) {
	t.Parallel()

	t.Run("minimal template parses", func(t *testing.T) {
		t.Parallel()

		data, err := config.Template(config.TemplateOptions{})
		if err != nil {
			t.Fatalf("Template() error = %v", err)
		}
		cfg, err := config.FromYAML(data)
		if err != nil {
			t.Fatalf("template does not parse: %v", err)
		}
		if cfg.OutputDir != "out" {
			t.Errorf("OutputDir = %q, want %q", cfg.OutputDir, "out")
		}
		if strings.Contains(string(data), "limits:") {
			t.Error("minimal template should not include limits")
		}
	})

	t.Run("full template includes limits", func(t *testing.T) {
		t.Parallel()

		data, err := config.Template(config.TemplateOptions{Full: true})
		if err != nil {
			t.Fatalf("Template() error = %v", err)
		}
		cfg, err := config.FromYAML(data)
		if err != nil {
			t.Fatalf("template does not parse: %v", err)
		}
		if cfg.Limits.MaxTokens != htmlast.DefaultMaxTokens {
			t.Errorf("Limits.MaxTokens = %d, want default", cfg.Limits.MaxTokens)
		}
	})
}

func TestClone(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Limits.MaxAttrs = 99

	clone := cfg.Clone()
	clone.OutputDir = "elsewhere"
	clone.Limits.MaxAttrs = 1

	if cfg.OutputDir != "out" {
		t.Error("mutating the clone changed the original OutputDir")
	}
	if cfg.Limits.MaxAttrs != 99 {
		t.Error("mutating the clone changed the original limits")
	}
}
