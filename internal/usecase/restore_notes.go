package usecase

import (
	"context"
	"fmt"

	"github.com/tarunark/weekplan/internal/domain"
)

// RestoreNotesInput identifies the task whose notes to reload.
type RestoreNotesInput struct {
	TaskID string
}

// RestoreNotesOutput contains the reloaded notes text.
type RestoreNotesOutput struct {
	Text     string // Notes as last committed; "" when none exist
	Restored bool   // False when the task does not exist
}

// RestoreNotes is the use case for discarding in-memory notes edits and
// reloading the last committed text from the notes store.
type RestoreNotes struct {
	store  domain.StoreRepository
	notes  domain.NotesStore
	logger domain.Logger
}

// NewRestoreNotes creates a new RestoreNotes use case.
func NewRestoreNotes(store domain.StoreRepository, notes domain.NotesStore, logger domain.Logger) *RestoreNotes {
	return &RestoreNotes{
		store:  store,
		notes:  notes,
		logger: logger,
	}
}

// Execute reloads the notes. An unknown task id is a silent no-op.
func (uc *RestoreNotes) Execute(_ context.Context, in RestoreNotesInput) (*RestoreNotesOutput, error) {
	agg, err := uc.store.Load()
	if err != nil {
		return nil, fmt.Errorf("load store: %w", err)
	}

	task := agg.Get(in.TaskID)
	if task == nil {
		return &RestoreNotesOutput{Restored: false}, nil
	}

	text, err := uc.notes.Read(in.TaskID)
	if err != nil {
		return nil, fmt.Errorf("read notes: %w", err)
	}
	task.Notes = text
	task.Dirty = false

	if uc.logger != nil {
		uc.logger.Debug(in.TaskID, "notes", "restored from store")
	}

	return &RestoreNotesOutput{Restored: true, Text: text}, nil
}
