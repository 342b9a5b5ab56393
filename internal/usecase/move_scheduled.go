package usecase

import (
	"context"
	"fmt"

	"github.com/tarunark/weekplan/internal/domain"
)

// MoveScheduledInput describes moving an assignment between two cells.
// Fields are ordered to minimize memory padding.
type MoveScheduledInput struct {
	TaskID   string // Task being moved
	FromDate string // Source date, YYYY-MM-DD
	ToDate   string // Destination date, YYYY-MM-DD
	FromSlot int    // Source slot index
	ToSlot   int    // Destination slot index
}

// MoveScheduledOutput contains the result of moving an assignment.
type MoveScheduledOutput struct {
	Warning error // Non-fatal persistence warning, if any
	Moved   bool  // False when the task does not exist
}

// MoveScheduled is the use case for relocating a schedule assignment.
// The destination is validated before the source cell is touched, so an
// invalid drop never loses the original assignment.
type MoveScheduled struct {
	store  domain.StoreRepository
	logger domain.Logger
}

// NewMoveScheduled creates a new MoveScheduled use case.
func NewMoveScheduled(store domain.StoreRepository, logger domain.Logger) *MoveScheduled {
	return &MoveScheduled{
		store:  store,
		logger: logger,
	}
}

// Execute moves the task between cells as one operation.
func (uc *MoveScheduled) Execute(_ context.Context, in MoveScheduledInput) (*MoveScheduledOutput, error) {
	agg, err := uc.store.Load()
	if err != nil {
		return nil, fmt.Errorf("load store: %w", err)
	}

	if !agg.Has(in.TaskID) {
		return &MoveScheduledOutput{Moved: false}, nil
	}

	if err := agg.Schedule.Move(in.TaskID, in.FromDate, in.FromSlot, in.ToDate, in.ToSlot); err != nil {
		return nil, err
	}

	warning := flushWarn(uc.store, agg, uc.logger, in.TaskID)

	if uc.logger != nil {
		uc.logger.Info(in.TaskID, "schedule", fmt.Sprintf("moved %s slot %d -> %s slot %d",
			in.FromDate, in.FromSlot, in.ToDate, in.ToSlot))
	}

	return &MoveScheduledOutput{Moved: true, Warning: warning}, nil
}
