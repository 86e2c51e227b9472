package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/webcc-dev/webcc/internal/logging"
	"github.com/webcc-dev/webcc/pkg/compile"
	"github.com/webcc-dev/webcc/pkg/fsutil"
)

type checkFlags struct {
	noContext bool
}

func newCheckCommand() *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check <file>...",
		Short: "Parse template files without writing output",
		Long: `Parse one or more template files and report diagnostics, without
producing any output files. Useful as a pre-commit or CI gate.

Examples:
  webcc check index.html
  webcc check templates/*.html`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.noContext, "no-context", false,
		"hide source line context in diagnostics")

	return cmd
}

func runCheck(cmd *cobra.Command, paths []string, flags *checkFlags) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)
	compiler := compile.New(cfg.Limits.Limits())
	styles := stylesFor(cmd, cfg)

	var firstErr error
	failed := 0
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("check: %w", err)
		}

		input, _, err := fsutil.ReadFile(ctx, path)
		if err != nil {
			return err
		}

		if _, err := compiler.Parse(path, input); err != nil {
			failed++
			if reportErr := reportFailure(cmd, cfg, err, !flags.noContext); firstErr == nil {
				firstErr = reportErr
			}
			continue
		}

		logging.Default().Debug("check passed", logging.FieldPath, path)
	}

	if failed > 0 {
		fmt.Fprint(cmd.OutOrStdout(),
			styles.Failure.Render(fmt.Sprintf("%d of %d files failed", failed, len(paths)))+"\n")
		return firstErr
	}

	fmt.Fprint(cmd.OutOrStdout(),
		styles.Success.Render(fmt.Sprintf("%d files ok", len(paths)))+"\n")
	return nil
}
