package usecase

import (
	"context"
	"fmt"

	"github.com/tarunark/weekplan/internal/domain"
)

// MoveTaskInput contains the parameters for re-parenting a task.
type MoveTaskInput struct {
	NewParentID *string // New parent (nil = move to root)
	TaskID      string  // Task to move
}

// MoveTaskOutput contains the result of re-parenting a task.
type MoveTaskOutput struct {
	Warning error // Non-fatal persistence warning, if any
	Moved   bool  // False when the task does not exist
}

// MoveTask is the use case for re-parenting a task within the tree.
type MoveTask struct {
	store  domain.StoreRepository
	logger domain.Logger
}

// NewMoveTask creates a new MoveTask use case.
func NewMoveTask(store domain.StoreRepository, logger domain.Logger) *MoveTask {
	return &MoveTask{
		store:  store,
		logger: logger,
	}
}

// Execute moves the task under the new parent. Moving an unknown task is a
// silent no-op; a missing parent or a move that would make the task its own
// ancestor is rejected and leaves the tree unchanged.
func (uc *MoveTask) Execute(_ context.Context, in MoveTaskInput) (*MoveTaskOutput, error) {
	agg, err := uc.store.Load()
	if err != nil {
		return nil, fmt.Errorf("load store: %w", err)
	}

	task := agg.Get(in.TaskID)
	if task == nil {
		return &MoveTaskOutput{Moved: false}, nil
	}

	if in.NewParentID != nil {
		if !agg.Has(*in.NewParentID) {
			return nil, domain.ErrParentNotFound
		}
		if agg.WouldCycle(in.TaskID, *in.NewParentID) {
			return nil, domain.ErrWouldCreateCycle
		}
	}

	task.ParentID = in.NewParentID

	warning := flushWarn(uc.store, agg, uc.logger, in.TaskID)

	if uc.logger != nil {
		dest := "root"
		if in.NewParentID != nil {
			dest = *in.NewParentID
		}
		uc.logger.Info(in.TaskID, "task", fmt.Sprintf("moved under %s", dest))
	}

	return &MoveTaskOutput{Moved: true, Warning: warning}, nil
}
