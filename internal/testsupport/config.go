package testsupport

import (
	"path/filepath"
	"testing"

	"foldean/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a resolved config whose target and lock directories live
// under a fresh temp directory.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.TargetDir = filepath.Join(base, "Downloads")
	cfgVal.LockDir = filepath.Join(base, "locks")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	MkdirAll(t, builder.cfg.TargetDir)
	if err := builder.cfg.Resolve(); err != nil {
		t.Fatalf("resolve test config: %v", err)
	}
	return builder.cfg
}

// WithApply turns the run from a dry run into one that moves files.
func WithApply() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Apply = true
	}
}

// WithDepth sets the scan depth.
func WithDepth(depth int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Depth = depth
	}
}

// WithIncludeHidden makes dotfiles and office lock files eligible.
func WithIncludeHidden() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.IncludeHidden = true
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.TargetDir)
}
