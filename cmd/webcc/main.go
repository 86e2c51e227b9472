// Package main is the entry point for the webcc CLI.
package main

import (
	"errors"
	"os"

	"github.com/webcc-dev/webcc/internal/cli"
	"github.com/webcc-dev/webcc/internal/logging"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	if err := rootCmd.Execute(); err != nil {
		// Diagnostics have already been printed by the command; anything
		// else gets a structured error log before we exit.
		if !errors.Is(err, cli.ErrCompileFailed) {
			logger := logging.Default()
			logger.Error("command failed", logging.FieldError, err)
		}
		return cli.ExitCodeFromError(err)
	}

	return cli.ExitSuccess
}
