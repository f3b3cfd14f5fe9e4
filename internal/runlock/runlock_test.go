package runlock

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"foldean/internal/services"
)

func TestAcquireIsExclusivePerTarget(t *testing.T) {
	lockDir := filepath.Join(t.TempDir(), "locks")
	target := t.TempDir()

	first, err := Acquire(lockDir, target)
	if err != nil {
		t.Fatalf("first Acquire: %v", err)
	}
	t.Cleanup(func() { _ = first.Release() })

	if _, err := Acquire(lockDir, target+string(filepath.Separator)); !errors.Is(err, services.ErrLocked) {
		t.Fatalf("expected ErrLocked for same target, got %v", err)
	}

	other, err := Acquire(lockDir, t.TempDir())
	if err != nil {
		t.Fatalf("Acquire for a different target: %v", err)
	}
	if err := other.Release(); err != nil {
		t.Fatalf("Release: %v", err)
	}
}

func TestReleaseAllowsReacquire(t *testing.T) {
	lockDir := t.TempDir()
	target := t.TempDir()

	lock, err := Acquire(lockDir, target)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	if err := lock.Release(); err != nil {
		t.Fatalf("Release: %v", err)
	}
	if _, err := os.Stat(lock.Path()); err != nil {
		t.Fatalf("lock file should survive release: %v", err)
	}
	again, err := Acquire(lockDir, target)
	if err != nil {
		t.Fatalf("reacquire: %v", err)
	}
	if again.Path() != PathFor(lockDir, target) {
		t.Fatalf("unexpected lock path %q", again.Path())
	}
	_ = again.Release()
}

func TestNilLockRelease(t *testing.T) {
	var lock *Lock
	if err := lock.Release(); err != nil {
		t.Fatalf("nil Release: %v", err)
	}
	if lock.Path() != "" {
		t.Fatal("nil lock should have no path")
	}
}
