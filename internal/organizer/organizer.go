package organizer

import (
	"context"
	"errors"
	"log/slog"

	"foldean/internal/category"
	"foldean/internal/fsys"
	"foldean/internal/logging"
	"foldean/internal/services"
)

// Summary reports the result of executing a plan.
type Summary struct {
	Root     string
	Apply    bool
	Planned  int
	Moved    int
	Failed   int
	Skipped  int
	Outcomes []Outcome
}

// Err joins the errors of every failed item, or returns nil.
func (s Summary) Err() error {
	var errs []error
	for _, o := range s.Outcomes {
		if o.Status == StatusFailed && o.Err != nil {
			errs = append(errs, o.Err)
		}
	}
	return errors.Join(errs...)
}

// Organizer runs scan, plan, and report-or-apply over one directory.
type Organizer struct {
	fs     fsys.FS
	table  category.Table
	logger *slog.Logger
	mover  *Mover
}

// New constructs an organizer over the real filesystem.
func New(table category.Table, logger *slog.Logger) *Organizer {
	return NewWithFS(fsys.OS{}, table, logger)
}

// NewWithFS allows injecting the filesystem (used in tests).
func NewWithFS(fs fsys.FS, table category.Table, logger *slog.Logger) *Organizer {
	componentLogger := logging.NewComponentLogger(logger, "organizer")
	return &Organizer{
		fs:     fs,
		table:  table,
		logger: componentLogger,
		mover:  NewMover(fs, logger),
	}
}

// Plan scans opts.Root and builds the move plan without changing anything.
func (o *Organizer) Plan(ctx context.Context, opts Options) (*Plan, error) {
	scanCtx := services.WithStage(ctx, "scanning")
	scan, err := Scan(scanCtx, o.fs, o.table, opts, o.logger)
	if err != nil {
		return nil, err
	}
	return BuildPlan(services.WithStage(ctx, "planning"), o.fs, o.table, opts.Root, scan, o.logger), nil
}

// Execute reports or applies plan. Item failures are recorded and the run
// continues; a cancelled context stops before the next item.
func (o *Organizer) Execute(ctx context.Context, plan *Plan, apply bool) Summary {
	stage := "reporting"
	if apply {
		stage = "applying"
	}
	ctx = services.WithStage(ctx, stage)
	logger := logging.WithContext(ctx, o.logger)

	summary := Summary{
		Root:     plan.Root,
		Apply:    apply,
		Planned:  len(plan.Items),
		Skipped:  len(plan.Skipped),
		Outcomes: make([]Outcome, 0, len(plan.Items)+len(plan.Failures)),
	}
	summary.Outcomes = append(summary.Outcomes, plan.Failures...)
	summary.Failed = len(plan.Failures)

	for i, item := range plan.Items {
		if err := ctx.Err(); err != nil {
			for _, rest := range plan.Items[i:] {
				summary.Outcomes = append(summary.Outcomes, Outcome{
					Item:   rest,
					Status: StatusFailed,
					Err:    services.Wrap(services.ErrMoveFailed, stage, "cancelled", "Run interrupted before "+rest.Name, err),
				})
				summary.Failed++
			}
			logging.WarnWithContext(logger, "run interrupted; remaining files left in place",
				"run_cancelled",
				logging.Int("remaining", len(plan.Items)-i),
				logging.Error(err),
				logging.String(logging.FieldImpact, "directory is partially organized; rerun to finish"),
			)
			break
		}
		outcome := o.mover.Move(ctx, item, apply)
		switch outcome.Status {
		case StatusMoved:
			summary.Moved++
		case StatusFailed:
			summary.Failed++
		}
		summary.Outcomes = append(summary.Outcomes, outcome)
	}

	logger.Info("run complete",
		logging.String("root", plan.Root),
		logging.Bool("apply", apply),
		logging.Int("planned", summary.Planned),
		logging.Int("moved", summary.Moved),
		logging.Int("failed", summary.Failed),
		logging.Int("skipped", summary.Skipped),
	)
	return summary
}

// Run performs a full pass: scan, plan, then report or apply.
func (o *Organizer) Run(ctx context.Context, opts Options) (*Plan, Summary, error) {
	plan, err := o.Plan(ctx, opts)
	if err != nil {
		return nil, Summary{Root: opts.Root, Apply: opts.Apply}, err
	}
	return plan, o.Execute(ctx, plan, opts.Apply), nil
}
