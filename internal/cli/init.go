package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/webcc-dev/webcc/internal/logging"
	"github.com/webcc-dev/webcc/pkg/config"
	"github.com/webcc-dev/webcc/pkg/fsutil"
)

// configFilePermissions is the file mode for configuration files (world-readable).
const configFilePermissions = 0644

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	full   bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new webcc configuration file",
		Long: `Create a new .webcc.yml configuration file in the current directory
with sensible defaults.

Examples:
  webcc init                      Create minimal .webcc.yml
  webcc init --full               Create full config with capacity limits
  webcc init --output custom.yml  Write to a custom file path`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runInit(flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().BoolVar(&flags.full, "full", false, "Generate full template with all settings documented")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file path (default: .webcc.yml)")

	return cmd
}

func runInit(flags *initFlags) error {
	logger := logging.NewInteractive()

	outputPath := flags.output
	if outputPath == "" {
		outputPath = ".webcc.yml"
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if _, err := os.Stat(absPath); err == nil {
		if !flags.force {
			return fmt.Errorf("file %q already exists; use --force to overwrite", outputPath)
		}
		logger.Warn("overwriting existing file", logging.FieldPath, outputPath)
	}

	content, err := config.Template(config.TemplateOptions{Full: flags.full})
	if err != nil {
		return fmt.Errorf("generate template: %w", err)
	}

	if err := fsutil.WriteAtomic(context.Background(), absPath, content, configFilePermissions); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	logger.Info("created configuration file", logging.FieldPath, outputPath)
	logger.Info("customize your configuration by editing the file")

	return nil
}
