package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
)

// Logging contains configuration for diagnostic log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
	Quiet  bool   `toml:"quiet"`
}

// Output controls how the plan report is rendered.
type Output struct {
	JSON bool `toml:"json"`
}

// Config encapsulates the settings of one foldean run.
type Config struct {
	TargetDir     string  `toml:"target_dir"`
	Apply         bool    `toml:"apply"`
	IncludeHidden bool    `toml:"include_hidden"`
	Depth         int     `toml:"depth"`
	LockDir       string  `toml:"lock_dir"`
	Output        Output  `toml:"output"`
	Logging       Logging `toml:"logging"`
}

// ErrNoDownloadsDir is returned when no target was given and the OS does not
// report a Downloads folder.
var ErrNoDownloadsDir = errors.New("could not resolve Downloads directory; pass --dir explicitly")

// downloadsDir is swapped in tests.
var downloadsDir = func() string {
	return xdg.UserDirs.Download
}

// Resolve normalizes and validates c in place.
func (c *Config) Resolve() error {
	if err := c.normalize(); err != nil {
		return err
	}
	return c.Validate()
}

// TOML renders the effective settings.
func (c *Config) TOML() (string, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("encode config: %w", err)
	}
	return string(data), nil
}

// DownloadsDir returns the user's Downloads folder as reported by the OS.
func DownloadsDir() (string, error) {
	dir := strings.TrimSpace(downloadsDir())
	if dir == "" {
		return "", ErrNoDownloadsDir
	}
	return expandPath(dir)
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}
