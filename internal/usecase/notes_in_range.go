package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/tarunark/weekplan/internal/domain"
)

// NotesInRangeInput is the half-open [From, To) date interval to scan.
type NotesInRangeInput struct {
	From string // Inclusive start, YYYY-MM-DD
	To   string // Exclusive end, YYYY-MM-DD
}

// NotesInRangeOutput contains the matching tasks with notes materialized.
type NotesInRangeOutput struct {
	Tasks []*domain.Task
}

// NotesInRange is the use case for finding tasks created or completed inside
// a date interval that currently carry non-empty notes. Dormant tasks are
// excluded unconditionally.
type NotesInRange struct {
	store  domain.StoreRepository
	notes  domain.NotesStore
	clock  domain.Clock
	logger domain.Logger
	policy domain.LifecyclePolicy
}

// NewNotesInRange creates a new NotesInRange use case.
func NewNotesInRange(store domain.StoreRepository, notes domain.NotesStore, policy domain.LifecyclePolicy, clock domain.Clock, logger domain.Logger) *NotesInRange {
	return &NotesInRange{
		store:  store,
		notes:  notes,
		policy: policy,
		clock:  clock,
		logger: logger,
	}
}

// Execute scans the interval. The match is on created or completed date.
func (uc *NotesInRange) Execute(_ context.Context, in NotesInRangeInput) (*NotesInRangeOutput, error) {
	from, err := domain.ParseDate(in.From)
	if err != nil {
		return nil, err
	}
	to, err := domain.ParseDate(in.To)
	if err != nil {
		return nil, err
	}

	agg, err := loadCurrent(uc.store, uc.policy, uc.clock, uc.logger)
	if err != nil {
		return nil, err
	}

	out := &NotesInRangeOutput{}
	for _, t := range agg.Tasks {
		if t.State == domain.StateDormant {
			continue
		}
		if !inRange(t.Created, from, to) && !(t.IsCompleted() && inRange(t.Completed, from, to)) {
			continue
		}
		notes, err := uc.notes.Read(t.ID)
		if err != nil {
			return nil, fmt.Errorf("read notes for %s: %w", t.ID, err)
		}
		if notes == "" {
			continue
		}
		t.Notes = notes
		out.Tasks = append(out.Tasks, t)
	}
	domain.SortByPriority(out.Tasks)
	return out, nil
}

// inRange reports whether t falls in the half-open interval [from, to),
// compared on local calendar dates.
func inRange(t, from, to time.Time) bool {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return !day.Before(from) && day.Before(to)
}
