package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"foldean/internal/category"
	"foldean/internal/config"
	"foldean/internal/logging"
	"foldean/internal/organizer"
	"foldean/internal/preflight"
	"foldean/internal/runlock"
	"foldean/internal/services"
)

func runOrganize(cmd *cobra.Command, ctx *commandContext) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	baseLogger, err := ctx.logger(cmd.ErrOrStderr())
	if err != nil {
		return configError(err)
	}

	runID := uuid.NewString()
	base := cmd.Context()
	if base == nil {
		base = context.Background()
	}
	runCtx := services.WithRunID(base, runID)
	logger := logging.WithContext(runCtx, logging.NewComponentLogger(baseLogger, "cli"))

	err = organize(runCtx, cmd, cfg, runID, baseLogger, logger)
	if services.IsFatal(err) {
		logging.ErrorWithContext(logger, "run aborted before moving files",
			services.Kind(err),
			logging.Error(err),
			logging.String("root", cfg.TargetDir),
			logging.String(logging.FieldErrorHint, fatalHint(err)),
		)
	}
	return err
}

func organize(ctx context.Context, cmd *cobra.Command, cfg *config.Config, runID string, baseLogger, logger *slog.Logger) error {
	check := preflight.CheckTarget(cfg)
	if !check.Passed {
		return services.Wrap(services.ErrTargetUnavailable, "preflight", "check target", check.Detail, nil)
	}

	if cfg.Apply {
		lock, err := runlock.Acquire(cfg.LockDir, cfg.TargetDir)
		if err != nil {
			return err
		}
		defer func() {
			if err := lock.Release(); err != nil {
				logger.Warn("lock release failed", logging.Error(err), logging.String("lock", lock.Path()))
			}
		}()
	}

	logger.Debug("run starting",
		logging.String("root", cfg.TargetDir),
		logging.Bool("apply", cfg.Apply),
		logging.Int("depth", cfg.Depth),
		logging.Bool("include_hidden", cfg.IncludeHidden),
	)

	org := organizer.New(category.Default(), baseLogger)
	plan, summary, err := org.Run(ctx, organizer.Options{
		Root:          cfg.TargetDir,
		Apply:         cfg.Apply,
		IncludeHidden: cfg.IncludeHidden,
		Depth:         cfg.Depth,
	})
	if err != nil {
		return err
	}

	if cfg.Output.JSON {
		if err := writeJSON(cmd, newRunReport(runID, plan, summary)); err != nil {
			return err
		}
	} else {
		out := cmd.OutOrStdout()
		renderRunReport(out, plan, summary, shouldColorize(out))
	}

	if summary.Failed > 0 {
		// The report already lists each failure; the joined error stays in the debug log.
		logger.Debug("item failures", logging.Error(summary.Err()))
		total := summary.Planned + len(plan.Failures)
		return services.Wrap(services.ErrMoveFailed, "reporting", "",
			fmt.Sprintf("%d of %d files could not be organized", summary.Failed, total), nil)
	}
	return nil
}

func fatalHint(err error) string {
	switch services.Kind(err) {
	case "target_unavailable":
		return "check that the directory exists and is readable, or pass --dir"
	case "locked":
		return "wait for the other foldean run to finish"
	default:
		return "rerun with --log-level debug for details"
	}
}
