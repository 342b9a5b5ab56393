package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/tarunark/weekplan/internal/domain"
)

// SearchTasksInput contains the search parameters.
type SearchTasksInput struct {
	Keyword        string // Case-insensitive substring to look for
	IncludeDormant bool   // Also match dormant tasks
}

// SearchTasksOutput contains the matching tasks in priority order.
type SearchTasksOutput struct {
	Tasks []*domain.Task
}

// SearchTasks is the use case for keyword search over title, description and
// notes text. Notes live outside the aggregate, so each candidate's notes
// are materialized from the notes store before matching.
type SearchTasks struct {
	store  domain.StoreRepository
	notes  domain.NotesStore
	clock  domain.Clock
	logger domain.Logger
	policy domain.LifecyclePolicy
}

// NewSearchTasks creates a new SearchTasks use case.
func NewSearchTasks(store domain.StoreRepository, notes domain.NotesStore, policy domain.LifecyclePolicy, clock domain.Clock, logger domain.Logger) *SearchTasks {
	return &SearchTasks{
		store:  store,
		notes:  notes,
		policy: policy,
		clock:  clock,
		logger: logger,
	}
}

// Execute returns every non-dormant task containing the keyword; dormant
// tasks are included only on request. An empty keyword matches nothing.
func (uc *SearchTasks) Execute(_ context.Context, in SearchTasksInput) (*SearchTasksOutput, error) {
	keyword := strings.ToLower(strings.TrimSpace(in.Keyword))
	if keyword == "" {
		return &SearchTasksOutput{}, nil
	}

	agg, err := loadCurrent(uc.store, uc.policy, uc.clock, uc.logger)
	if err != nil {
		return nil, err
	}

	out := &SearchTasksOutput{}
	for _, t := range agg.Tasks {
		if t.State == domain.StateDormant && !in.IncludeDormant {
			continue
		}
		if strings.Contains(strings.ToLower(t.Title), keyword) ||
			strings.Contains(strings.ToLower(t.Description), keyword) {
			out.Tasks = append(out.Tasks, t)
			continue
		}
		notes, err := uc.notes.Read(t.ID)
		if err != nil {
			return nil, fmt.Errorf("read notes for %s: %w", t.ID, err)
		}
		if notes != "" && strings.Contains(strings.ToLower(notes), keyword) {
			t.Notes = notes
			out.Tasks = append(out.Tasks, t)
		}
	}
	domain.SortByPriority(out.Tasks)
	return out, nil
}
