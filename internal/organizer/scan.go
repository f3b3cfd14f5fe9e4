package organizer

import (
	"context"
	"log/slog"
	"sort"

	"foldean/internal/category"
	"foldean/internal/fsys"
	"foldean/internal/logging"
	"foldean/internal/services"
)

// Options describes one run.
type Options struct {
	Root          string
	Apply         bool
	IncludeHidden bool
	// Depth is 0 (root only) or 1 (root plus each first-level subfolder).
	Depth int
}

// ScanResult holds the entries kept for planning and those left out.
type ScanResult struct {
	Entries []Entry
	Skipped []Skipped
}

// Scan lists opts.Root and, at depth 1, its first-level subfolders. An
// unreadable root is fatal; an unreadable subfolder is recorded as skipped.
func Scan(ctx context.Context, fs fsys.FS, table category.Table, opts Options, logger *slog.Logger) (ScanResult, error) {
	logger = logging.WithContext(ctx, logger)
	var result ScanResult

	entries, err := fs.ReadDir(opts.Root)
	if err != nil {
		return result, services.Wrap(
			services.ErrTargetUnavailable,
			"scanning",
			"read target",
			"Cannot read target directory "+opts.Root,
			err,
		)
	}

	for _, d := range entries {
		e := newEntry(opts.Root, 0, d)
		skip, reason := ShouldSkip(e, table, opts.IncludeHidden)
		if !skip {
			result.Entries = append(result.Entries, e)
			continue
		}
		if reason == SkipDirectory && opts.Depth >= 1 {
			scanSubfolder(fs, table, opts, e, &result, logger)
			continue
		}
		result.Skipped = append(result.Skipped, Skipped{Path: e.Path, Reason: reason})
	}

	sort.Slice(result.Entries, func(i, j int) bool { return result.Entries[i].Path < result.Entries[j].Path })
	sort.Slice(result.Skipped, func(i, j int) bool { return result.Skipped[i].Path < result.Skipped[j].Path })

	logger.Debug("scan complete",
		logging.String("root", opts.Root),
		logging.Int("depth", opts.Depth),
		logging.Int("entries", len(result.Entries)),
		logging.Int("skipped", len(result.Skipped)),
	)
	return result, nil
}

// scanSubfolder adds the files of dir. Directories found there are left
// untouched; depth is capped at one.
func scanSubfolder(fs fsys.FS, table category.Table, opts Options, dir Entry, result *ScanResult, logger *slog.Logger) {
	children, err := fs.ReadDir(dir.Path)
	if err != nil {
		logging.WarnWithContext(logger, "cannot read subfolder; its files stay in place",
			"subfolder_unreadable",
			logging.String("subfolder", dir.Path),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check permissions on the subfolder"),
			logging.String(logging.FieldImpact, "files in this subfolder are not organized"),
		)
		result.Skipped = append(result.Skipped, Skipped{Path: dir.Path, Reason: SkipUnreadable})
		return
	}
	for _, d := range children {
		e := newEntry(dir.Path, 1, d)
		if skip, reason := ShouldSkip(e, table, opts.IncludeHidden); skip {
			result.Skipped = append(result.Skipped, Skipped{Path: e.Path, Reason: reason})
			continue
		}
		result.Entries = append(result.Entries, e)
	}
}
