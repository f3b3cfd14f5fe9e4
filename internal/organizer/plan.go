package organizer

import (
	"context"
	"log/slog"
	"path/filepath"

	"foldean/internal/category"
	"foldean/internal/fsys"
	"foldean/internal/logging"
	"foldean/internal/services"
)

// Item is one planned move.
type Item struct {
	Source      string
	Destination string
	Category    string
	// Name is the destination file name after collision resolution.
	Name string
	Size int64
}

// Renamed reports whether collision resolution changed the file name.
func (i Item) Renamed() bool {
	return filepath.Base(i.Source) != i.Name
}

// Plan is the output of planning: what would move where.
type Plan struct {
	Root    string
	Items   []Item
	Skipped []Skipped
	// Failures are entries whose destination could not be resolved.
	Failures []Outcome
}

// BuildPlan classifies each entry and resolves its destination. Destinations
// claimed by earlier items count as occupied, so a dry run reports the same
// names an apply would produce.
func BuildPlan(ctx context.Context, fs fsys.FS, table category.Table, root string, scan ScanResult, logger *slog.Logger) *Plan {
	logger = logging.WithContext(ctx, logger)
	plan := &Plan{Root: root, Skipped: scan.Skipped}
	claimed := make(map[string]struct{}, len(scan.Entries))

	for _, e := range scan.Entries {
		cat := table.Classify(e.Name)
		destDir := filepath.Join(e.Root, cat)
		dest, err := resolveDestination(fs, destDir, e.Name, claimed)
		if err != nil {
			item := Item{Source: e.Path, Category: cat, Name: e.Name, Size: e.Size}
			wrapped := services.Wrap(services.ErrMoveFailed, "planning", "resolve destination", "Cannot resolve a free name for "+e.Name, err)
			logging.WarnWithContext(logger, "destination check failed; file left in place",
				"destination_check_failed",
				logging.String("source", e.Path),
				logging.Error(err),
				logging.String(logging.FieldErrorHint, "check permissions on "+destDir),
				logging.String(logging.FieldImpact, "file is not organized this run"),
			)
			plan.Failures = append(plan.Failures, Outcome{Item: item, Status: StatusFailed, Err: wrapped})
			continue
		}
		claimed[dest] = struct{}{}
		item := Item{
			Source:      e.Path,
			Destination: dest,
			Category:    cat,
			Name:        filepath.Base(dest),
			Size:        e.Size,
		}
		plan.Items = append(plan.Items, item)
		if item.Renamed() {
			attrs := append([]logging.Attr{logging.String("source", item.Source)},
				logging.DecisionAttrs("collision", item.Name, "a file with the same name already exists")...)
			logger.Info("destination name taken; using next free name", logging.Args(attrs...)...)
		}
		logger.Debug("planned move",
			logging.String("source", item.Source),
			logging.String("category", item.Category),
			logging.String("destination", item.Destination),
			logging.Bool("renamed", item.Renamed()),
			logging.Int64("size", item.Size),
		)
	}
	return plan
}
