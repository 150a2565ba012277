package client

import (
	"context"

	"go.uber.org/zap"

	"github.com/idilsaglam/taskboard/internal/model"
)

// Result is the outcome of a best-effort load. Tasks is never nil.
type Result struct {
	Tasks []model.Task
	// Err is the swallowed fetch failure, kept so callers and tests can
	// tell an empty service from a failed one.
	Err error
}

// OK reports whether the fetch succeeded.
func (r Result) OK() bool { return r.Err == nil }

// Load fetches from src and never fails: any error is logged and turned
// into an empty collection.
func Load(ctx context.Context, src Source, logger *zap.Logger) Result {
	if logger == nil {
		logger = zap.NewNop()
	}
	tasks, err := src.FetchAll(ctx)
	if err != nil {
		logger.Warn("task fetch failed, starting empty", zap.Error(err))
		return Result{Tasks: []model.Task{}, Err: err}
	}
	if tasks == nil {
		tasks = []model.Task{}
	}
	logger.Info("tasks loaded", zap.Int("count", len(tasks)))
	return Result{Tasks: tasks}
}
