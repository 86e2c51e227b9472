package cli

import (
	"errors"

	"github.com/webcc-dev/webcc/pkg/compile"
	"github.com/webcc-dev/webcc/pkg/fsutil"
)

// Exit codes for webcc, following the BSD sysexits convention for the
// usage, data, software, and I/O categories.
const (
	// ExitSuccess indicates successful compilation.
	ExitSuccess = 0

	// ExitCompileError indicates the input failed to compile.
	ExitCompileError = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCodeFromError maps an error to a process exit code.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var diag *compile.Diagnostic
	switch {
	case errors.As(err, &diag):
		return ExitCompileError
	case errors.Is(err, fsutil.ErrNotFound),
		errors.Is(err, fsutil.ErrPermissionDenied),
		errors.Is(err, fsutil.ErrIsDirectory):
		return ExitIOError
	case errors.Is(err, errConfig):
		return ExitConfigError
	default:
		return ExitInternalError
	}
}

// errConfig marks configuration loading failures for exit code mapping.
var errConfig = errors.New("configuration error")
