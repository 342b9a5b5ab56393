package usecase

import (
	"context"
	"fmt"

	"github.com/tarunark/weekplan/internal/domain"
)

// CommitNotesInput contains the notes text to persist.
type CommitNotesInput struct {
	TaskID string // Task the notes belong to
	Text   string // Full replacement notes text
}

// CommitNotesOutput contains the result of committing notes.
type CommitNotesOutput struct {
	Committed bool // False when the task does not exist
}

// CommitNotes is the use case for writing a task's notes blob. Notes live in
// the notes store, outside the task aggregate, and are only written on this
// explicit commit.
type CommitNotes struct {
	store  domain.StoreRepository
	notes  domain.NotesStore
	logger domain.Logger
}

// NewCommitNotes creates a new CommitNotes use case.
func NewCommitNotes(store domain.StoreRepository, notes domain.NotesStore, logger domain.Logger) *CommitNotes {
	return &CommitNotes{
		store:  store,
		notes:  notes,
		logger: logger,
	}
}

// Execute replaces the stored notes text. An unknown task id is a silent
// no-op and nothing is written.
func (uc *CommitNotes) Execute(_ context.Context, in CommitNotesInput) (*CommitNotesOutput, error) {
	agg, err := uc.store.Load()
	if err != nil {
		return nil, fmt.Errorf("load store: %w", err)
	}

	task := agg.Get(in.TaskID)
	if task == nil {
		return &CommitNotesOutput{Committed: false}, nil
	}

	if err := uc.notes.Write(in.TaskID, in.Text); err != nil {
		return nil, fmt.Errorf("write notes: %w", err)
	}
	task.Notes = in.Text
	task.Dirty = false

	if uc.logger != nil {
		uc.logger.Info(in.TaskID, "notes", "committed")
	}

	return &CommitNotesOutput{Committed: true}, nil
}
