package usecase

import (
	"context"
	"fmt"

	"github.com/tarunark/weekplan/internal/domain"
)

// DeleteTaskInput contains the parameters for deleting a task.
type DeleteTaskInput struct {
	TaskID string // Task to delete
}

// DeleteTaskOutput contains the result of deleting a task.
type DeleteTaskOutput struct {
	Warning error // Non-fatal persistence warning, if any
	Deleted bool  // False when the task does not exist
}

// DeleteTask is the use case for deleting a task. Direct children of the
// deleted task become roots; deletion never cascades.
type DeleteTask struct {
	store  domain.StoreRepository
	logger domain.Logger
}

// NewDeleteTask creates a new DeleteTask use case.
func NewDeleteTask(store domain.StoreRepository, logger domain.Logger) *DeleteTask {
	return &DeleteTask{
		store:  store,
		logger: logger,
	}
}

// Execute deletes the task. An unknown task id is a silent no-op.
func (uc *DeleteTask) Execute(_ context.Context, in DeleteTaskInput) (*DeleteTaskOutput, error) {
	agg, err := uc.store.Load()
	if err != nil {
		return nil, fmt.Errorf("load store: %w", err)
	}

	if !agg.Remove(in.TaskID) {
		return &DeleteTaskOutput{Deleted: false}, nil
	}

	warning := flushWarn(uc.store, agg, uc.logger, in.TaskID)

	if uc.logger != nil {
		uc.logger.Info(in.TaskID, "task", "deleted")
	}

	return &DeleteTaskOutput{Deleted: true, Warning: warning}, nil
}
