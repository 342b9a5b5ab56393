package usecase

import (
	"context"
	"fmt"

	"github.com/tarunark/weekplan/internal/domain"
)

// UpdateTaskInput contains the parameters for updating a task.
type UpdateTaskInput struct {
	TaskID string           // Task to update
	Patch  domain.TaskPatch // Fields to change; nil fields are left alone
}

// UpdateTaskOutput contains the result of updating a task.
type UpdateTaskOutput struct {
	Warning error // Non-fatal persistence warning, if any
	Updated bool  // False when the task does not exist
}

// UpdateTask is the use case for applying a typed patch to a task.
type UpdateTask struct {
	store  domain.StoreRepository
	logger domain.Logger
}

// NewUpdateTask creates a new UpdateTask use case.
func NewUpdateTask(store domain.StoreRepository, logger domain.Logger) *UpdateTask {
	return &UpdateTask{
		store:  store,
		logger: logger,
	}
}

// Execute applies the patch. An unknown task id is a silent no-op; an empty
// or invalid patch is rejected without touching the task.
func (uc *UpdateTask) Execute(_ context.Context, in UpdateTaskInput) (*UpdateTaskOutput, error) {
	if in.Patch.IsEmpty() {
		return nil, domain.ErrNoFieldsToUpdate
	}
	if err := in.Patch.Validate(); err != nil {
		return nil, err
	}

	agg, err := uc.store.Load()
	if err != nil {
		return nil, fmt.Errorf("load store: %w", err)
	}

	task := agg.Get(in.TaskID)
	if task == nil {
		return &UpdateTaskOutput{Updated: false}, nil
	}

	if err := in.Patch.Apply(task); err != nil {
		return nil, err
	}

	warning := flushWarn(uc.store, agg, uc.logger, in.TaskID)

	if uc.logger != nil {
		uc.logger.Info(in.TaskID, "task", "updated")
	}

	return &UpdateTaskOutput{Updated: true, Warning: warning}, nil
}
