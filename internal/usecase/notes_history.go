package usecase

import (
	"context"

	"github.com/tarunark/weekplan/internal/domain"
)

// NotesHistoryInput identifies the task whose notes revisions to list.
type NotesHistoryInput struct {
	TaskID string
}

// NotesHistoryOutput contains the revisions, newest first.
type NotesHistoryOutput struct {
	Revisions []domain.NoteRevision
	Supported bool // False when the notes backend keeps no history
}

// NotesHistory is the use case for listing prior notes revisions. Only the
// versioned notes backend supports it; the plain file backend reports
// Supported=false.
type NotesHistory struct {
	notes domain.NotesStore
}

// NewNotesHistory creates a new NotesHistory use case.
func NewNotesHistory(notes domain.NotesStore) *NotesHistory {
	return &NotesHistory{notes: notes}
}

// Execute lists revisions for the task, newest first.
func (uc *NotesHistory) Execute(_ context.Context, in NotesHistoryInput) (*NotesHistoryOutput, error) {
	versioned, ok := uc.notes.(domain.NotesHistory)
	if !ok {
		return &NotesHistoryOutput{Supported: false}, nil
	}
	revisions, err := versioned.History(in.TaskID)
	if err != nil {
		return nil, err
	}
	return &NotesHistoryOutput{Supported: true, Revisions: revisions}, nil
}
