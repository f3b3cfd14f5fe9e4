package organizer

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"foldean/internal/fsys"
)

// ResolveDestination returns destDir/filename when that name is free, and
// otherwise the first free "stem (N).ext" for N = 1, 2, ...
func ResolveDestination(fs fsys.FS, destDir, filename string) (string, error) {
	return resolveDestination(fs, destDir, filename, nil)
}

// resolveDestination also treats names in claimed as occupied so one plan
// never hands the same destination to two items.
func resolveDestination(fs fsys.FS, destDir, filename string, claimed map[string]struct{}) (string, error) {
	candidate := filepath.Join(destDir, filename)
	taken, err := occupied(fs, candidate, claimed)
	if err != nil {
		return "", err
	}
	if !taken {
		return candidate, nil
	}

	stem, ext := splitName(filename)
	for n := 1; n < math.MaxInt; n++ {
		candidate = filepath.Join(destDir, fmt.Sprintf("%s (%d)%s", stem, n, ext))
		taken, err := occupied(fs, candidate, claimed)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("no free name for %s in %s", filename, destDir)
}

func occupied(fs fsys.FS, path string, claimed map[string]struct{}) (bool, error) {
	if _, ok := claimed[path]; ok {
		return true, nil
	}
	exists, err := fsys.Exists(fs, path)
	if err != nil {
		return false, fmt.Errorf("check %s: %w", path, err)
	}
	return exists, nil
}

// splitName splits at the last dot. A leading dot does not start an
// extension, so ".env" has stem ".env" and no extension.
func splitName(name string) (stem, ext string) {
	idx := strings.LastIndexByte(name, '.')
	if idx <= 0 {
		return name, ""
	}
	return name[:idx], name[idx:]
}
