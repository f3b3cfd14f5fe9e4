// Package runlock keeps two applying runs from moving files in the same
// directory at once.
package runlock

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"foldean/internal/services"
)

// Lock is an exclusive advisory lock tied to one target directory.
type Lock struct {
	path  string
	flock *flock.Flock
}

// PathFor returns the lock file used for target inside lockDir. The name is
// derived from the cleaned absolute target so equal targets share a lock.
func PathFor(lockDir, target string) string {
	abs, err := filepath.Abs(target)
	if err != nil {
		abs = target
	}
	sum := sha256.Sum256([]byte(filepath.Clean(abs)))
	return filepath.Join(lockDir, hex.EncodeToString(sum[:8])+".lock")
}

// Acquire takes the lock for target without blocking. When another process
// holds it the error carries services.ErrLocked.
func Acquire(lockDir, target string) (*Lock, error) {
	if err := os.MkdirAll(lockDir, 0o755); err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "locking", "create lock dir", "Cannot create "+lockDir, err)
	}
	path := PathFor(lockDir, target)
	fl := flock.New(path)
	ok, err := fl.TryLock()
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "locking", "acquire lock", "Cannot lock "+path, err)
	}
	if !ok {
		return nil, services.Wrap(services.ErrLocked, "locking", "acquire lock",
			fmt.Sprintf("another foldean run is organizing %s", target), nil)
	}
	return &Lock{path: path, flock: fl}, nil
}

// Path returns the lock file location.
func (l *Lock) Path() string {
	if l == nil {
		return ""
	}
	return l.path
}

// Release unlocks. The lock file stays behind so every run locks the same
// inode.
func (l *Lock) Release() error {
	if l == nil || l.flock == nil {
		return nil
	}
	if err := l.flock.Unlock(); err != nil {
		return fmt.Errorf("release lock: %w", err)
	}
	return nil
}
