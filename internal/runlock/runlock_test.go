package runlock

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestAcquire(t *testing.T) {
	dir := t.TempDir()

	first, err := Acquire(dir)
	if err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}
	if first.Path() != filepath.Join(dir, FileName) {
		t.Errorf("Path() = %q", first.Path())
	}

	if _, err := Acquire(dir); !errors.Is(err, ErrLocked) {
		t.Fatalf("second Acquire() error = %v, want ErrLocked", err)
	}

	if err := first.Release(); err != nil {
		t.Fatalf("Release() error = %v", err)
	}
	if _, err := os.Stat(first.Path()); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("lock file left behind: %v", err)
	}

	again, err := Acquire(dir)
	if err != nil {
		t.Fatalf("Acquire() after release error = %v", err)
	}
	again.Release()
}

func TestAcquire_MissingDir(t *testing.T) {
	if _, err := Acquire(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestAcquireAll(t *testing.T) {
	a, b := t.TempDir(), t.TempDir()

	set, err := AcquireAll([]string{a, b, a})
	if err != nil {
		t.Fatalf("AcquireAll() error = %v", err)
	}
	if len(set) != 2 {
		t.Fatalf("len(set) = %d, want 2", len(set))
	}
	if err := set.Release(); err != nil {
		t.Fatalf("Release() error = %v", err)
	}
}

func TestAcquireAll_ReleasesOnConflict(t *testing.T) {
	a, b := t.TempDir(), t.TempDir()

	held, err := Acquire(b)
	if err != nil {
		t.Fatal(err)
	}
	defer held.Release()

	if _, err := AcquireAll([]string{a, b}); !errors.Is(err, ErrLocked) {
		t.Fatalf("AcquireAll() error = %v, want ErrLocked", err)
	}

	l, err := Acquire(a)
	if err != nil {
		t.Fatalf("lock on %s not released after conflict: %v", a, err)
	}
	l.Release()
}
