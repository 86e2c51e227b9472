package fsutil_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/webcc-dev/webcc/pkg/fsutil"
)

func TestReadFile(t *testing.T) {
	t.Parallel()

	t.Run("reads file content and metadata", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "page.html")
		content := []byte("<html></html>")

		if err := os.WriteFile(path, content, 0644); err != nil {
			t.Fatalf("setup: %v", err)
		}

		ctx := context.Background()
		got, info, err := fsutil.ReadFile(ctx, path)

		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}

		if string(got) != string(content) {
			t.Errorf("content = %q, want %q", got, content)
		}

		if info.Path != path {
			t.Errorf("Path = %q, want %q", info.Path, path)
		}

		if info.Size != int64(len(content)) {
			t.Errorf("Size = %d, want %d", info.Size, len(content))
		}

		if info.Mode != 0644 {
			t.Errorf("Mode = %o, want %o", info.Mode, 0644)
		}
	})

	t.Run("returns ErrNotFound for missing file", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		_, _, err := fsutil.ReadFile(ctx, "/nonexistent/path/page.html")

		if !errors.Is(err, fsutil.ErrNotFound) {
			t.Fatalf("error = %v, want ErrNotFound", err)
		}
	})

	t.Run("returns ErrIsDirectory for directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		ctx := context.Background()
		_, _, err := fsutil.ReadFile(ctx, dir)

		if !errors.Is(err, fsutil.ErrIsDirectory) {
			t.Fatalf("error = %v, want ErrIsDirectory", err)
		}
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, _, err := fsutil.ReadFile(ctx, "anypath")

		if err == nil {
			t.Fatal("expected error for cancelled context")
		}
	})
}

func TestEnsureDir(t *testing.T) {
	t.Parallel()

	t.Run("creates missing directory", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "out", "nested")
		if err := fsutil.EnsureDir(dir); err != nil {
			t.Fatalf("EnsureDir() error = %v", err)
		}

		stat, err := os.Stat(dir)
		if err != nil {
			t.Fatalf("stat: %v", err)
		}
		if !stat.IsDir() {
			t.Error("expected a directory")
		}
	})

	t.Run("accepts existing directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		if err := fsutil.EnsureDir(dir); err != nil {
			t.Errorf("EnsureDir() error = %v", err)
		}
	})

	t.Run("rejects existing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out")
		if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
			t.Fatalf("setup: %v", err)
		}

		if err := fsutil.EnsureDir(path); !errors.Is(err, fsutil.ErrIsDirectory) {
			t.Fatalf("error = %v, want ErrIsDirectory", err)
		}
	})
}
