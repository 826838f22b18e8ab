package fsio_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/anyreduce/reduce/internal/fsio"
)

func TestAcquireLockSucceedsWhenUnheld(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "input.txt")

	lock, err := fsio.AcquireLock(path)
	if err != nil {
		t.Fatalf("AcquireLock: %v", err)
	}

	lock.Release()
}

func TestAcquireLockTimesOutWhenAlreadyHeld(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "input.txt")

	first, err := fsio.AcquireLock(path)
	if err != nil {
		t.Fatalf("AcquireLock (first): %v", err)
	}

	defer first.Release()

	_, err = fsio.AcquireLockWithTimeout(path, 50*time.Millisecond)
	if !errors.Is(err, fsio.ErrLockTimeout) {
		t.Fatalf("got err %v, want ErrLockTimeout", err)
	}
}

func TestAcquireLockCanBeReacquiredAfterRelease(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "input.txt")

	first, err := fsio.AcquireLock(path)
	if err != nil {
		t.Fatalf("AcquireLock (first): %v", err)
	}

	first.Release()

	second, err := fsio.AcquireLockWithTimeout(path, 50*time.Millisecond)
	if err != nil {
		t.Fatalf("AcquireLock (second): %v", err)
	}

	second.Release()
}

func TestWriteAtomicCreatesFileWithContent(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.txt")

	if err := fsio.WriteAtomic(path, strings.NewReader("hello")); err != nil {
		t.Fatalf("WriteAtomic: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	if string(got) != "hello" {
		t.Fatalf("content = %q, want %q", got, "hello")
	}
}

func TestWriteAtomicOverwritesExistingFileWithoutLeavingTempFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")

	if err := os.WriteFile(path, []byte("old"), 0o644); err != nil {
		t.Fatalf("seed WriteFile: %v", err)
	}

	if err := fsio.WriteAtomic(path, strings.NewReader("new")); err != nil {
		t.Fatalf("WriteAtomic: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	if string(got) != "new" {
		t.Fatalf("content = %q, want %q", got, "new")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}

	if len(entries) != 1 {
		t.Fatalf("expected exactly one file after overwrite, got %d", len(entries))
	}
}
