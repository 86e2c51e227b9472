// Package cli provides the Cobra command structure for webcc.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/webcc-dev/webcc/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root webcc command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "webcc",
		Short: "A compiler front end for a small HTML-like templating language",
		Long: `webcc compiles HTML-like template files. It tokenizes the input,
builds a tag/attribute tree with a backtracking parser, and re-serializes
the tree's tag-nesting skeleton into a normalized output file.

Comments, <script> and <style> regions are treated as opaque blocks, and
{{ name }} variable references are recorded as elements of the tree. Every
failure is reported with a 1-based line and column in the input.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newCompileCommand())
	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newTokensCommand())
	rootCmd.AddCommand(newTreeCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
