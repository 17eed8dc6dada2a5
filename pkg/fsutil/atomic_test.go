package fsutil_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yaklabco/mdtree/pkg/fsutil"
)

func TestWriteAtomic_NewFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.txt")
	content := []byte("hello world")

	if err := fsutil.WriteAtomic(context.Background(), path, content, 0644); err != nil {
		t.Fatalf("WriteAtomic() error = %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(got) != string(content) {
		t.Errorf("content = %q, want %q", got, content)
	}
}

func TestWriteAtomic_OverwritesExisting(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.txt")
	if err := os.WriteFile(path, []byte("original"), 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	if err := fsutil.WriteAtomic(context.Background(), path, []byte("replaced"), 0644); err != nil {
		t.Fatalf("WriteAtomic() error = %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(got) != "replaced" {
		t.Errorf("content = %q, want %q", got, "replaced")
	}
}

func TestWriteAtomic_Mode(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	explicit := filepath.Join(dir, "explicit.txt")
	if err := fsutil.WriteAtomic(context.Background(), explicit, []byte("x"), 0600); err != nil {
		t.Fatalf("WriteAtomic() error = %v", err)
	}
	stat, err := os.Stat(explicit)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if got := stat.Mode().Perm(); got != 0600 {
		t.Errorf("mode = %o, want %o", got, 0600)
	}

	// Zero mode falls back to the default.
	defaulted := filepath.Join(dir, "defaulted.txt")
	if err := fsutil.WriteAtomic(context.Background(), defaulted, []byte("x"), 0); err != nil {
		t.Fatalf("WriteAtomic() error = %v", err)
	}
	stat, err = os.Stat(defaulted)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if got := stat.Mode().Perm(); got != fsutil.DefaultFileMode {
		t.Errorf("mode = %o, want %o", got, fsutil.DefaultFileMode)
	}
}

func TestWriteAtomic_EmptyContent(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := fsutil.WriteAtomic(context.Background(), path, []byte{}, 0644); err != nil {
		t.Fatalf("WriteAtomic() error = %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty file, got %d bytes", len(got))
	}
}

func TestWriteAtomic_ContextCancellation(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.txt")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := fsutil.WriteAtomic(ctx, path, []byte("content"), 0644); err == nil {
		t.Fatal("expected error for cancelled context")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("file should not have been created")
	}
}

func TestWriteAtomic_NoTempFileLeftOnError(t *testing.T) {
	t.Parallel()

	// The parent directory does not exist, so the write fails early.
	dir := t.TempDir()
	path := filepath.Join(dir, "missing", "out.txt")

	if err := fsutil.WriteAtomic(context.Background(), path, []byte("content"), 0644); err == nil {
		t.Fatal("expected error for invalid path")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	for _, entry := range entries {
		if strings.Contains(entry.Name(), ".tmp.") {
			t.Errorf("temp file left behind: %s", entry.Name())
		}
	}
}

func TestWriteAtomicIfChanged_NewFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.txt")

	changed, err := fsutil.WriteAtomicIfChanged(context.Background(), path, []byte("hello"), 0644)
	if err != nil {
		t.Fatalf("WriteAtomicIfChanged() error = %v", err)
	}
	if !changed {
		t.Error("expected changed = true for new file")
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(got) != "hello" {
		t.Errorf("content = %q, want %q", got, "hello")
	}
}

func TestWriteAtomicIfChanged_SkipsUnchanged(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.txt")
	content := []byte("stable")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	before, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}

	changed, err := fsutil.WriteAtomicIfChanged(context.Background(), path, content, 0644)
	if err != nil {
		t.Fatalf("WriteAtomicIfChanged() error = %v", err)
	}
	if changed {
		t.Error("expected changed = false for identical content")
	}

	after, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if !after.ModTime().Equal(before.ModTime()) {
		t.Error("mtime should be untouched when content is unchanged")
	}
}

func TestWriteAtomicIfChanged_WritesChanged(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.txt")
	if err := os.WriteFile(path, []byte("original"), 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	changed, err := fsutil.WriteAtomicIfChanged(context.Background(), path, []byte("updated"), 0644)
	if err != nil {
		t.Fatalf("WriteAtomicIfChanged() error = %v", err)
	}
	if !changed {
		t.Error("expected changed = true for different content")
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(got) != "updated" {
		t.Errorf("content = %q, want %q", got, "updated")
	}
}

func TestWriteAtomicIfChanged_ContextCancellation(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.txt")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := fsutil.WriteAtomicIfChanged(ctx, path, []byte("content"), 0644); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}
