package usecase

import (
	"context"
	"fmt"

	"github.com/tarunark/weekplan/internal/domain"
)

// CreateTaskInput contains the parameters for creating a new task.
// Fields are ordered to minimize memory padding.
type CreateTaskInput struct {
	ParentID    *string  // Parent task ID (optional, nil = root task)
	Title       string   // Task title (required)
	Description string   // Task description (optional)
	Priority    string   // Priority name; invalid or missing defaults to Medium
	Tags        []string // Tags (optional)
}

// CreateTaskOutput contains the result of creating a new task.
type CreateTaskOutput struct {
	Warning error  // Non-fatal persistence warning, if any
	TaskID  string // The ID of the created task
}

// CreateTask is the use case for creating a new task.
type CreateTask struct {
	store  domain.StoreRepository
	clock  domain.Clock
	logger domain.Logger
}

// NewCreateTask creates a new CreateTask use case.
func NewCreateTask(store domain.StoreRepository, clock domain.Clock, logger domain.Logger) *CreateTask {
	return &CreateTask{
		store:  store,
		clock:  clock,
		logger: logger,
	}
}

// Execute creates a new task with the given input.
func (uc *CreateTask) Execute(_ context.Context, in CreateTaskInput) (*CreateTaskOutput, error) {
	if in.Title == "" {
		return nil, domain.ErrEmptyTitle
	}

	agg, err := uc.store.Load()
	if err != nil {
		return nil, fmt.Errorf("load store: %w", err)
	}

	// Validate parent exists if specified
	if in.ParentID != nil && !agg.Has(*in.ParentID) {
		return nil, domain.ErrParentNotFound
	}

	// Unknown priority input falls back to Medium rather than failing.
	priority, ok := domain.ParsePriority(in.Priority)
	if !ok {
		priority = domain.PriorityMedium
	}

	now := uc.clock.Now()
	id := agg.NewTaskID(now)
	task := &domain.Task{
		ID:          id,
		ParentID:    in.ParentID,
		Title:       in.Title,
		Description: in.Description,
		Priority:    priority,
		State:       domain.StateActive,
		Created:     now,
		Tags:        in.Tags,
	}
	agg.Add(task)

	warning := flushWarn(uc.store, agg, uc.logger, id)

	if uc.logger != nil {
		uc.logger.Info(id, "task", fmt.Sprintf("created: %q", in.Title))
	}

	return &CreateTaskOutput{TaskID: id, Warning: warning}, nil
}
