package organizer

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"foldean/internal/fsys"
	"foldean/internal/logging"
	"foldean/internal/services"
)

// Status is the result of processing one Item.
type Status string

const (
	StatusPlanned Status = "planned"
	StatusMoved   Status = "moved"
	StatusFailed  Status = "failed"
)

// Method records how a file reached its destination.
type Method string

const (
	MethodNone   Method = ""
	MethodRename Method = "rename"
	MethodCopy   Method = "copy"
)

// Outcome is the per-item result of a run.
type Outcome struct {
	Item   Item
	Status Status
	Method Method
	Err    error
}

// renameResult is the first step of a move: either the rename landed, or the
// move needs the copy fallback and cause says why.
type renameResult struct {
	renamed     bool
	crossDevice bool
	cause       error
}

// Mover performs, or only plans, individual moves.
type Mover struct {
	fs     fsys.FS
	logger *slog.Logger
}

// NewMover builds a Mover over fs.
func NewMover(fs fsys.FS, logger *slog.Logger) *Mover {
	return &Mover{fs: fs, logger: logging.NewComponentLogger(logger, "mover")}
}

// Move executes item when apply is set. Without apply it reports the item as
// planned and does not touch the filesystem.
func (m *Mover) Move(ctx context.Context, item Item, apply bool) Outcome {
	if !apply {
		return Outcome{Item: item, Status: StatusPlanned}
	}
	logger := logging.WithContext(services.WithItem(ctx, item.Source), m.logger)

	parent := filepath.Dir(item.Destination)
	if err := m.fs.MkdirAll(parent, 0o755); err != nil {
		return m.fail(logger, item, MethodNone, "create category folder", "Cannot create "+parent, err)
	}

	result := m.rename(item)
	if result.renamed {
		logger.Info("moved file",
			logging.String("destination", item.Destination),
			logging.String("method", string(MethodRename)),
		)
		return Outcome{Item: item, Status: StatusMoved, Method: MethodRename}
	}

	if result.crossDevice {
		logger.Debug("rename crosses devices; copying instead", logging.String("destination", item.Destination))
	} else {
		logging.WarnWithContext(logger, "rename failed; falling back to copy",
			"rename_failed",
			logging.String("destination", item.Destination),
			logging.Error(result.cause),
			logging.String(logging.FieldErrorHint, "check permissions on source and destination"),
			logging.String(logging.FieldImpact, "file is copied and the source removed instead of renamed"),
		)
	}
	return m.copyThenRemove(logger, item)
}

func (m *Mover) rename(item Item) renameResult {
	err := m.fs.Rename(item.Source, item.Destination)
	if err == nil {
		return renameResult{renamed: true}
	}
	return renameResult{crossDevice: fsys.IsCrossDevice(err), cause: err}
}

// copyThenRemove is the fallback step. A failed copy leaves the source
// untouched. A failed removal leaves both copies in place.
func (m *Mover) copyThenRemove(logger *slog.Logger, item Item) Outcome {
	if err := m.fs.Copy(item.Source, item.Destination); err != nil {
		return m.fail(logger, item, MethodCopy, "copy fallback", "Copy to "+item.Destination+" failed; source left in place", err)
	}
	if err := m.fs.Remove(item.Source); err != nil {
		msg := fmt.Sprintf("Copied to %s but could not remove %s", item.Destination, item.Source)
		return m.fail(logger, item, MethodCopy, "remove source", msg, err)
	}
	logger.Info("moved file",
		logging.String("destination", item.Destination),
		logging.String("method", string(MethodCopy)),
	)
	return Outcome{Item: item, Status: StatusMoved, Method: MethodCopy}
}

func (m *Mover) fail(logger *slog.Logger, item Item, method Method, operation, message string, err error) Outcome {
	wrapped := services.Wrap(services.ErrMoveFailed, "applying", operation, message, err)
	logging.WarnWithContext(logger, "move failed; continuing with remaining files",
		"move_failed",
		logging.String("destination", item.Destination),
		logging.String("operation", operation),
		logging.Error(err),
		logging.String(logging.FieldErrorHint, "check permissions and free space at the destination"),
		logging.String(logging.FieldImpact, "file stays where it was"),
	)
	return Outcome{Item: item, Status: StatusFailed, Method: method, Err: wrapped}
}
