package usecase

import (
	"context"
	"fmt"

	"github.com/tarunark/weekplan/internal/domain"
)

// ShowTaskInput identifies the task to show.
type ShowTaskInput struct {
	TaskID string
}

// ShowTaskOutput contains the task with notes materialized, plus every
// schedule cell the task currently occupies. Task is nil when the id is
// unknown.
type ShowTaskOutput struct {
	Task  *domain.Task
	Slots []domain.SlotRef
}

// ShowTask is the use case for displaying a single task in full.
type ShowTask struct {
	store  domain.StoreRepository
	notes  domain.NotesStore
	clock  domain.Clock
	logger domain.Logger
	policy domain.LifecyclePolicy
}

// NewShowTask creates a new ShowTask use case.
func NewShowTask(store domain.StoreRepository, notes domain.NotesStore, policy domain.LifecyclePolicy, clock domain.Clock, logger domain.Logger) *ShowTask {
	return &ShowTask{
		store:  store,
		notes:  notes,
		policy: policy,
		clock:  clock,
		logger: logger,
	}
}

// Execute returns the task, or a nil Task for an unknown id.
func (uc *ShowTask) Execute(_ context.Context, in ShowTaskInput) (*ShowTaskOutput, error) {
	agg, err := loadCurrent(uc.store, uc.policy, uc.clock, uc.logger)
	if err != nil {
		return nil, err
	}

	task := agg.Get(in.TaskID)
	if task == nil {
		return &ShowTaskOutput{}, nil
	}

	text, err := uc.notes.Read(in.TaskID)
	if err != nil {
		return nil, fmt.Errorf("read notes: %w", err)
	}
	task.Notes = text

	return &ShowTaskOutput{Task: task, Slots: agg.Schedule.SlotsFor(in.TaskID)}, nil
}
