package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
)

func stubDownloads(t *testing.T, dir string) {
	t.Helper()
	prev := downloadsDir
	downloadsDir = func() string { return dir }
	t.Cleanup(func() { downloadsDir = prev })
}

func TestResolveDefaultsToDownloads(t *testing.T) {
	downloads := t.TempDir()
	stubDownloads(t, downloads)

	cfg := Default()
	if err := cfg.Resolve(); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if cfg.TargetDir != downloads {
		t.Fatalf("TargetDir = %q, want %q", cfg.TargetDir, downloads)
	}
	if cfg.Apply || cfg.IncludeHidden || cfg.Depth != 0 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.LockDir != filepath.Join(os.TempDir(), "foldean") {
		t.Fatalf("LockDir = %q", cfg.LockDir)
	}
	if cfg.Logging.Format != LogFormatConsole || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestResolveFailsWithoutDownloads(t *testing.T) {
	stubDownloads(t, "  ")

	cfg := Default()
	err := cfg.Resolve()
	if !errors.Is(err, ErrNoDownloadsDir) {
		t.Fatalf("expected ErrNoDownloadsDir, got %v", err)
	}
}

func TestResolveExpandsTargetDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	cfg := Default()
	cfg.TargetDir = "~/inbox/../inbox"
	if err := cfg.Resolve(); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if want := filepath.Join(home, "inbox"); cfg.TargetDir != want {
		t.Fatalf("TargetDir = %q, want %q", cfg.TargetDir, want)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	stubDownloads(t, t.TempDir())
	tests := map[string]func(*Config){
		"negative depth": func(c *Config) { c.Depth = -1 },
		"deep scan":      func(c *Config) { c.Depth = 2 },
		"log format":     func(c *Config) { c.Logging.Format = "xml" },
		"log level":      func(c *Config) { c.Logging.Level = "trace" },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(&cfg)
			if err := cfg.Resolve(); err == nil {
				t.Fatalf("expected validation error for %s", name)
			}
		})
	}
}

func TestNormalizeLoggingCanonicalizes(t *testing.T) {
	stubDownloads(t, t.TempDir())
	cfg := Default()
	cfg.Logging.Format = " JSON "
	cfg.Logging.Level = "Warning"
	if err := cfg.Resolve(); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if cfg.Logging.Format != LogFormatJSON || cfg.Logging.Level != "warn" {
		t.Fatalf("unexpected logging: %+v", cfg.Logging)
	}
}

func TestTOMLRoundTrip(t *testing.T) {
	stubDownloads(t, t.TempDir())
	cfg := Default()
	cfg.Apply = true
	cfg.Depth = 1
	if err := cfg.Resolve(); err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	rendered, err := cfg.TOML()
	if err != nil {
		t.Fatalf("TOML: %v", err)
	}
	for _, fragment := range []string{"target_dir", "apply = true", "depth = 1", "[logging]"} {
		if !strings.Contains(rendered, fragment) {
			t.Fatalf("expected %q in\n%s", fragment, rendered)
		}
	}

	var decoded Config
	if err := toml.Unmarshal([]byte(rendered), &decoded); err != nil {
		t.Fatalf("decode rendered toml: %v", err)
	}
	if decoded != cfg {
		t.Fatalf("decoded config %+v differs from %+v", decoded, cfg)
	}
}
