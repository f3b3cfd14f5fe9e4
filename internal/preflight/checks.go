package preflight

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// CheckDirectoryAccess verifies that the directory exists and is readable,
// and writable when needWrite is set.
func CheckDirectoryAccess(name, path string, needWrite bool) Result {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := access(path, needWrite); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	if needWrite {
		return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read ok)", path)}
}

// CheckLockDir verifies the lock directory, or the nearest existing parent
// that would receive it, is writable.
func CheckLockDir(path string) Result {
	const name = "Lock directory"
	existing := path
	for {
		if _, err := os.Stat(existing); err == nil {
			break
		}
		parent := filepath.Dir(existing)
		if parent == existing {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: no existing parent)", path)}
		}
		existing = parent
	}
	result := CheckDirectoryAccess(name, existing, true)
	if result.Passed && existing != path {
		result.Pending = true
		result.Detail = fmt.Sprintf("%s (will be created under %s)", path, existing)
	}
	return result
}
