package main

import (
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"

	"foldean/internal/config"
	"foldean/internal/logging"
	"foldean/internal/services"
)

type rootFlags struct {
	dir           string
	apply         bool
	includeHidden bool
	depth         int
	json          bool
	logLevel      string
	logFormat     string
	quiet         bool
}

type commandContext struct {
	flags *rootFlags

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(flags *rootFlags) *commandContext {
	return &commandContext{flags: flags}
}

// ensureConfig turns the parsed flags into a resolved config. No file is read;
// flags are the only source.
func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg := config.Default()
		f := c.flags
		cfg.TargetDir = strings.TrimSpace(f.dir)
		cfg.Apply = f.apply
		cfg.IncludeHidden = f.includeHidden
		cfg.Depth = f.depth
		cfg.Output.JSON = f.json
		cfg.Logging.Quiet = f.quiet
		if v := strings.TrimSpace(f.logLevel); v != "" {
			cfg.Logging.Level = v
		}
		if v := strings.TrimSpace(f.logFormat); v != "" {
			cfg.Logging.Format = v
		}
		if err := cfg.Resolve(); err != nil {
			c.configErr = configError(err)
			return
		}
		c.config = &cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) logger(w io.Writer) (*slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return logging.NewFromConfig(cfg, w)
}

func configError(err error) error {
	if errors.Is(err, services.ErrConfiguration) {
		return err
	}
	return services.Wrap(services.ErrConfiguration, "configuration", "resolve flags", "", err)
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
