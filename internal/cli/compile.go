package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/webcc-dev/webcc/internal/configloader"
	"github.com/webcc-dev/webcc/internal/logging"
	"github.com/webcc-dev/webcc/internal/ui/pretty"
	"github.com/webcc-dev/webcc/pkg/compile"
	"github.com/webcc-dev/webcc/pkg/config"
)

// ErrCompileFailed is returned when the input could not be compiled. The
// diagnostic has already been printed when this is surfaced.
var ErrCompileFailed = errors.New("compile failed")

type compileFlags struct {
	outputDir string
	noContext bool
	summary   bool
}

func newCompileCommand() *cobra.Command {
	flags := &compileFlags{}

	cmd := &cobra.Command{
		Use:   "compile <file>",
		Short: "Compile a template file",
		Long: `Compile one template file and write the normalized tag skeleton
into the output directory as ` + compile.OutputFileName + `.

Examples:
  webcc compile index.html                  # Write out/0.html
  webcc compile -o build index.html         # Write build/0.html
  webcc compile --summary index.html        # Print a result summary`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.outputDir, "output-dir", "o", "",
		"directory to write compiled output into")
	cmd.Flags().BoolVar(&flags.noContext, "no-context", false,
		"hide source line context in diagnostics")
	cmd.Flags().BoolVar(&flags.summary, "summary", false,
		"print a summary block after compiling")

	return cmd
}

func runCompile(cmd *cobra.Command, path string, flags *compileFlags) error {
	logger := logging.Default()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if flags.outputDir != "" {
		cfg.OutputDir = flags.outputDir
	}

	ctx := commandContext(cmd)
	ctx = logging.WithLogger(ctx, logger)

	logger.Debug("compiling",
		logging.FieldInput, path,
		logging.FieldOutputDir, cfg.OutputDir,
		logging.FieldMaxTokens, cfg.Limits.Limits().MaxTokens)

	compiler := compile.New(cfg.Limits.Limits())
	outPath, result, err := compiler.CompileFile(ctx, path, cfg.OutputDir)
	if err != nil {
		return reportFailure(cmd, cfg, err, !flags.noContext)
	}

	styles := stylesFor(cmd, cfg)
	fmt.Fprint(cmd.OutOrStdout(), styles.FormatCompileOneLine(path, outPath, result))
	if flags.summary {
		fmt.Fprint(cmd.OutOrStdout(), styles.FormatCompileSummary(path, result))
	}

	return nil
}

// loadConfig resolves the effective configuration for a command, honoring
// the persistent --config flag.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	result, err := configloader.Load(configloader.LoadOptions{
		ExplicitPath: configPath,
	})
	if err != nil {
		return nil, errors.Join(errConfig, err)
	}
	if result.LoadedFrom != "" {
		logging.Default().Debug("loaded configuration",
			logging.FieldPath, result.LoadedFrom)
	}

	return result.Config, nil
}

// commandContext returns the command's context, or a fresh background
// context when cobra has none attached.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// stylesFor builds the styled renderer for a command, combining the
// persistent --color flag with the configured mode.
func stylesFor(cmd *cobra.Command, cfg *config.Config) *pretty.Styles {
	mode, err := cmd.Flags().GetString("color")
	if err != nil || mode == "" || mode == "auto" {
		if cfg != nil && cfg.Color != "" {
			mode = string(cfg.Color)
		}
	}
	return pretty.NewStyles(pretty.IsColorEnabled(mode, os.Stdout))
}

// reportFailure prints a compile diagnostic to stderr and converts it to
// the sentinel the Execute wrapper maps to an exit code. Non-diagnostic
// errors pass through unchanged.
func reportFailure(cmd *cobra.Command, cfg *config.Config, err error, showContext bool) error {
	var diag *compile.Diagnostic
	if !errors.As(err, &diag) {
		return err
	}

	styles := stylesFor(cmd, cfg)
	fmt.Fprint(cmd.ErrOrStderr(), styles.FormatDiagnostic(diag, showContext))
	return errors.Join(ErrCompileFailed, err)
}
