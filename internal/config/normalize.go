package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	c.TargetDir = strings.TrimSpace(c.TargetDir)
	if c.TargetDir == "" {
		if c.TargetDir, err = DownloadsDir(); err != nil {
			return err
		}
	} else if c.TargetDir, err = expandPath(c.TargetDir); err != nil {
		return fmt.Errorf("target_dir: %w", err)
	}

	c.LockDir = strings.TrimSpace(c.LockDir)
	if c.LockDir == "" {
		c.LockDir = filepath.Join(os.TempDir(), lockDirName)
	}
	if c.LockDir, err = expandPath(c.LockDir); err != nil {
		return fmt.Errorf("lock_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Logging.Level == "warning" {
		c.Logging.Level = "warn"
	}
}
