package usecase

import (
	"context"
	"fmt"

	"github.com/tarunark/weekplan/internal/domain"
)

// UnscheduleTaskInput identifies the schedule cell to clear.
type UnscheduleTaskInput struct {
	Date string // YYYY-MM-DD
	Slot int    // Zero-based slot index within the day
}

// UnscheduleTaskOutput contains the result of clearing a cell.
type UnscheduleTaskOutput struct {
	Warning error // Non-fatal persistence warning, if any
	Cleared bool  // False when the cell was already empty
}

// UnscheduleTask is the use case for clearing a weekly slot.
type UnscheduleTask struct {
	store  domain.StoreRepository
	logger domain.Logger
}

// NewUnscheduleTask creates a new UnscheduleTask use case.
func NewUnscheduleTask(store domain.StoreRepository, logger domain.Logger) *UnscheduleTask {
	return &UnscheduleTask{
		store:  store,
		logger: logger,
	}
}

// Execute clears the (date, slot) cell. Clearing an empty cell is a silent
// no-op and nothing is persisted.
func (uc *UnscheduleTask) Execute(_ context.Context, in UnscheduleTaskInput) (*UnscheduleTaskOutput, error) {
	agg, err := uc.store.Load()
	if err != nil {
		return nil, fmt.Errorf("load store: %w", err)
	}

	if !agg.Schedule.Clear(in.Date, in.Slot) {
		return &UnscheduleTaskOutput{Cleared: false}, nil
	}

	warning := flushWarn(uc.store, agg, uc.logger, "")

	if uc.logger != nil {
		uc.logger.Info("", "schedule", fmt.Sprintf("cleared %s slot %d", in.Date, in.Slot))
	}

	return &UnscheduleTaskOutput{Cleared: true, Warning: warning}, nil
}
