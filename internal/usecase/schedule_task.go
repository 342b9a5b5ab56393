package usecase

import (
	"context"
	"fmt"

	"github.com/tarunark/weekplan/internal/domain"
)

// ScheduleTaskInput contains the parameters for assigning a task to a slot.
// Fields are ordered to minimize memory padding.
type ScheduleTaskInput struct {
	TaskID string // Task to schedule
	Date   string // YYYY-MM-DD
	Slot   int    // Zero-based slot index within the day
}

// ScheduleTaskOutput contains the result of a schedule assignment.
type ScheduleTaskOutput struct {
	Warning   error  // Non-fatal persistence warning, if any
	Displaced string // Task id previously in the cell, if any
	Scheduled bool   // False when the task does not exist
}

// ScheduleTask is the use case for putting a task into a weekly slot.
// A cell holds one task; scheduling over an occupied cell displaces the
// previous occupant silently (last write wins).
type ScheduleTask struct {
	store  domain.StoreRepository
	logger domain.Logger
}

// NewScheduleTask creates a new ScheduleTask use case.
func NewScheduleTask(store domain.StoreRepository, logger domain.Logger) *ScheduleTask {
	return &ScheduleTask{
		store:  store,
		logger: logger,
	}
}

// Execute assigns the task to the (date, slot) cell. An unknown task id is a
// silent no-op; a malformed date or negative slot is rejected.
func (uc *ScheduleTask) Execute(_ context.Context, in ScheduleTaskInput) (*ScheduleTaskOutput, error) {
	agg, err := uc.store.Load()
	if err != nil {
		return nil, fmt.Errorf("load store: %w", err)
	}

	if !agg.Has(in.TaskID) {
		return &ScheduleTaskOutput{Scheduled: false}, nil
	}

	displaced, _ := agg.Schedule.Occupant(in.Date, in.Slot)
	if displaced == in.TaskID {
		displaced = ""
	}
	if err := agg.Schedule.Assign(in.Date, in.Slot, in.TaskID); err != nil {
		return nil, err
	}

	warning := flushWarn(uc.store, agg, uc.logger, in.TaskID)

	if uc.logger != nil {
		uc.logger.Info(in.TaskID, "schedule", fmt.Sprintf("assigned to %s slot %d", in.Date, in.Slot))
	}

	return &ScheduleTaskOutput{Scheduled: true, Displaced: displaced, Warning: warning}, nil
}
