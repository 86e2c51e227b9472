package cli_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webcc-dev/webcc/internal/cli"
	"github.com/webcc-dev/webcc/pkg/compile"
	"github.com/webcc-dev/webcc/pkg/fsutil"
)

// testTemplate nests three elements and carries an attribute and a
// variable reference, giving the commands something non-trivial to chew on.
const testTemplate = "<html><body class=\"main\"><p>hello {{ name }}</p></body></html>"

func testBuildInfo() cli.BuildInfo {
	return cli.BuildInfo{
		Version: "test-version",
		Commit:  "test-commit",
		Date:    "test-date",
	}
}

// writeTestConfig writes a minimal config file so commands do not pick up
// whatever project config upward discovery might find.
func writeTestConfig(t *testing.T) string {
	t.Helper()

	cfgFile := filepath.Join(t.TempDir(), ".webcc.yml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("log_level: info\n"), 0o644))
	return cfgFile
}

func TestNewRootCommand(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testBuildInfo())

	if cmd == nil {
		t.Fatal("NewRootCommand returned nil")
	}

	if cmd.Use != "webcc" {
		t.Errorf("expected Use to be 'webcc', got %q", cmd.Use)
	}

	if cmd.Short == "" {
		t.Error("expected Short description to be set")
	}

	if cmd.Long == "" {
		t.Error("expected Long description to be set")
	}
}

func TestRootCommandHasSubcommands(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testBuildInfo())

	expectedSubcommands := []string{"compile", "check", "tokens", "tree", "init", "version"}

	for _, name := range expectedSubcommands {
		subCmd, _, err := cmd.Find([]string{name})
		if err != nil {
			t.Errorf("expected subcommand %q to exist, got error: %v", name, err)
			continue
		}

		if subCmd.Name() != name {
			t.Errorf("expected subcommand name %q, got %q", name, subCmd.Name())
		}
	}
}

func TestCompileCommandFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testBuildInfo())
	compileCmd, _, err := cmd.Find([]string{"compile"})
	if err != nil {
		t.Fatalf("compile command not found: %v", err)
	}

	expectedFlags := []string{"output-dir", "no-context", "summary"}

	for _, name := range expectedFlags {
		if compileCmd.Flags().Lookup(name) == nil {
			t.Errorf("expected compile command to have flag %q", name)
		}
	}
}

func TestIntegration_CompileWritesOutput(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	inFile := filepath.Join(tmpDir, "index.html")
	require.NoError(t, os.WriteFile(inFile, []byte(testTemplate), 0o644))

	outDir := filepath.Join(tmpDir, "build")

	cmd := cli.NewRootCommand(testBuildInfo())

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{
		"compile",
		"--config", writeTestConfig(t),
		"--color", "never",
		"-o", outDir,
		inFile,
	})

	require.NoError(t, cmd.Execute(), "stderr: %s", stderr.String())

	outFile := filepath.Join(outDir, compile.OutputFileName)
	data, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.Equal(t, "<html><body><p><name></name></p></body></html>", string(data))

	assert.Contains(t, stdout.String(), inFile)
	assert.Contains(t, stdout.String(), outFile)
}

func TestIntegration_CompileSummary(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	inFile := filepath.Join(tmpDir, "index.html")
	require.NoError(t, os.WriteFile(inFile, []byte(testTemplate), 0o644))

	cmd := cli.NewRootCommand(testBuildInfo())

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{
		"compile",
		"--config", writeTestConfig(t),
		"--color", "never",
		"--summary",
		"-o", filepath.Join(tmpDir, "out"),
		inFile,
	})

	require.NoError(t, cmd.Execute(), "stderr: %s", stderr.String())

	output := stdout.String()
	assert.Contains(t, output, "Summary")
	assert.Contains(t, output, "Tokens")
	assert.Contains(t, output, "Elements")
	assert.Contains(t, output, "Attributes")
}

func TestIntegration_CompileReportsDiagnostic(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	inFile := filepath.Join(tmpDir, "broken.html")
	require.NoError(t, os.WriteFile(inFile, []byte("<p>ok</p>\n  \"unclosed"), 0o644))

	cmd := cli.NewRootCommand(testBuildInfo())

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{
		"compile",
		"--config", writeTestConfig(t),
		"--color", "never",
		"-o", filepath.Join(tmpDir, "out"),
		inFile,
	})

	err := cmd.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, cli.ErrCompileFailed)

	assert.Contains(t, stderr.String(), "2:3")
	assert.Contains(t, stderr.String(), "unterminated string literal")
	assert.Equal(t, cli.ExitCompileError, cli.ExitCodeFromError(err))
}

func TestIntegration_CheckMultipleFiles(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	goodFile := filepath.Join(tmpDir, "good.html")
	badFile := filepath.Join(tmpDir, "bad.html")
	require.NoError(t, os.WriteFile(goodFile, []byte(testTemplate), 0o644))
	require.NoError(t, os.WriteFile(badFile, []byte("<p class=main>"), 0o644))

	t.Run("all pass", func(t *testing.T) {
		t.Parallel()

		cmd := cli.NewRootCommand(testBuildInfo())

		var stdout, stderr bytes.Buffer
		cmd.SetOut(&stdout)
		cmd.SetErr(&stderr)
		cmd.SetArgs([]string{
			"check",
			"--config", writeTestConfig(t),
			"--color", "never",
			goodFile,
		})

		require.NoError(t, cmd.Execute(), "stderr: %s", stderr.String())
		assert.Contains(t, stdout.String(), "1 files ok")
	})

	t.Run("one fails", func(t *testing.T) {
		t.Parallel()

		cmd := cli.NewRootCommand(testBuildInfo())

		var stdout, stderr bytes.Buffer
		cmd.SetOut(&stdout)
		cmd.SetErr(&stderr)
		cmd.SetArgs([]string{
			"check",
			"--config", writeTestConfig(t),
			"--color", "never",
			goodFile, badFile,
		})

		err := cmd.Execute()
		require.Error(t, err)
		assert.ErrorIs(t, err, cli.ErrCompileFailed)
		assert.Contains(t, stdout.String(), "1 of 2 files failed")
	})
}

func TestIntegration_TokensCommand(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	inFile := filepath.Join(tmpDir, "page.html")
	require.NoError(t, os.WriteFile(inFile, []byte("<div>"), 0o644))

	cmd := cli.NewRootCommand(testBuildInfo())

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{
		"tokens",
		"--config", writeTestConfig(t),
		inFile,
	})

	require.NoError(t, cmd.Execute(), "stderr: %s", stderr.String())

	output := stdout.String()
	assert.Contains(t, output, "KIND")
	assert.Contains(t, output, "identifier")
	assert.Contains(t, output, "[0,1)")
	assert.Contains(t, output, `"div"`)
}

func TestIntegration_TreeCommand(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	inFile := filepath.Join(tmpDir, "page.html")
	require.NoError(t, os.WriteFile(inFile, []byte(testTemplate), 0o644))

	cmd := cli.NewRootCommand(testBuildInfo())

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{
		"tree",
		"--config", writeTestConfig(t),
		"--attrs",
		inFile,
	})

	require.NoError(t, cmd.Execute(), "stderr: %s", stderr.String())

	output := stdout.String()
	assert.Contains(t, output, "<html>")
	assert.Contains(t, output, "<body>")
	assert.Contains(t, output, `class="main"`)
	assert.Contains(t, output, "<name>")
}

func TestIntegration_InitCreatesConfig(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, ".webcc.yml")

	cmd := cli.NewRootCommand(testBuildInfo())

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"init", "--output", cfgPath})

	require.NoError(t, cmd.Execute(), "stderr: %s", stderr.String())

	data, err := os.ReadFile(cfgPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "output_dir")

	// A second run without --force must refuse to overwrite.
	cmd = cli.NewRootCommand(testBuildInfo())
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"init", "--output", cfgPath})
	require.Error(t, cmd.Execute())
}

func TestIntegration_MissingInputFile(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testBuildInfo())

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{
		"compile",
		"--config", writeTestConfig(t),
		"-o", t.TempDir(),
		filepath.Join(t.TempDir(), "does-not-exist.html"),
	})

	err := cmd.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, fsutil.ErrNotFound)
	assert.Equal(t, cli.ExitIOError, cli.ExitCodeFromError(err))
}

func TestIntegration_ContextCancellation(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	inFile := filepath.Join(tmpDir, "index.html")
	require.NoError(t, os.WriteFile(inFile, []byte(testTemplate), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cmd := cli.NewRootCommand(testBuildInfo())
	cmd.SetArgs([]string{
		"compile",
		"--config", writeTestConfig(t),
		"-o", filepath.Join(tmpDir, "out"),
		inFile,
	})

	err := cmd.ExecuteContext(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExitCodeFromError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil error", err: nil, want: cli.ExitSuccess},
		{name: "diagnostic", err: &compile.Diagnostic{Stage: "parse"}, want: cli.ExitCompileError},
		{name: "not found", err: fsutil.ErrNotFound, want: cli.ExitIOError},
		{name: "permission denied", err: fsutil.ErrPermissionDenied, want: cli.ExitIOError},
		{name: "unknown", err: errors.New("boom"), want: cli.ExitInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, cli.ExitCodeFromError(tt.err))
		})
	}
}
