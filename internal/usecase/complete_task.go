package usecase

import (
	"context"
	"fmt"

	"github.com/tarunark/weekplan/internal/domain"
)

// CompleteTaskInput contains the parameters for completing a task.
type CompleteTaskInput struct {
	TaskID string // Task to mark completed
}

// CompleteTaskOutput contains the result of completing a task.
type CompleteTaskOutput struct {
	Warning   error // Non-fatal persistence warning, if any
	Completed bool  // False when the task does not exist or is past completion
}

// CompleteTask is the use case for explicitly marking a task done.
// Completion is the only transition into the completed state; the archival
// evaluator never triggers it.
type CompleteTask struct {
	store  domain.StoreRepository
	clock  domain.Clock
	logger domain.Logger
}

// NewCompleteTask creates a new CompleteTask use case.
func NewCompleteTask(store domain.StoreRepository, clock domain.Clock, logger domain.Logger) *CompleteTask {
	return &CompleteTask{
		store:  store,
		clock:  clock,
		logger: logger,
	}
}

// Execute stamps the completion time and moves the task to completed.
// An unknown task id is a silent no-op, and a task already archived or
// dormant is left where the lifecycle put it.
func (uc *CompleteTask) Execute(_ context.Context, in CompleteTaskInput) (*CompleteTaskOutput, error) {
	agg, err := uc.store.Load()
	if err != nil {
		return nil, fmt.Errorf("load store: %w", err)
	}

	task := agg.Get(in.TaskID)
	if task == nil {
		return &CompleteTaskOutput{Completed: false}, nil
	}
	if domain.StateCompleted.Before(task.State) {
		return &CompleteTaskOutput{Completed: false}, nil
	}

	task.Completed = uc.clock.Now()
	task.State = domain.StateCompleted

	warning := flushWarn(uc.store, agg, uc.logger, in.TaskID)

	if uc.logger != nil {
		uc.logger.Info(in.TaskID, "task", fmt.Sprintf("completed: %q", task.Title))
	}

	return &CompleteTaskOutput{Completed: true, Warning: warning}, nil
}
