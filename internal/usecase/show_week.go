package usecase

import (
	"context"
	"time"

	"github.com/tarunark/weekplan/internal/domain"
)

// ShowWeekInput selects the week to display.
type ShowWeekInput struct {
	Date string // Any date inside the week, YYYY-MM-DD; empty = today
}

// ShowWeekOutput is the weekly grid view: seven dates, the slot assignments
// for each, and the tasks those assignments reference. Assignments pointing
// at ids no longer in the store are returned as-is; Tasks simply has no
// entry for them.
type ShowWeekOutput struct {
	Assignments map[string]map[string]string // date -> slot key -> task id
	Tasks       map[string]*domain.Task      // task id -> task
	Dates       []string                     // The seven dates of the week, in order
}

// ShowWeek is the use case for the weekly schedule query.
type ShowWeek struct {
	store     domain.StoreRepository
	clock     domain.Clock
	logger    domain.Logger
	policy    domain.LifecyclePolicy
	weekStart time.Weekday
}

// NewShowWeek creates a new ShowWeek use case.
func NewShowWeek(store domain.StoreRepository, policy domain.LifecyclePolicy, clock domain.Clock, logger domain.Logger) *ShowWeek {
	return &ShowWeek{
		store:     store,
		policy:    policy,
		clock:     clock,
		logger:    logger,
		weekStart: policy.WeekStart,
	}
}

// Execute resolves the requested week and collects its assignments.
func (uc *ShowWeek) Execute(_ context.Context, in ShowWeekInput) (*ShowWeekOutput, error) {
	anchor := uc.clock.Now()
	if in.Date != "" {
		parsed, err := domain.ParseDate(in.Date)
		if err != nil {
			return nil, err
		}
		anchor = parsed
	}

	agg, err := loadCurrent(uc.store, uc.policy, uc.clock, uc.logger)
	if err != nil {
		return nil, err
	}

	out := &ShowWeekOutput{
		Dates:       domain.WeekDates(anchor, uc.weekStart),
		Assignments: make(map[string]map[string]string),
		Tasks:       make(map[string]*domain.Task),
	}
	for _, date := range out.Dates {
		day := agg.Schedule.Day(date)
		if len(day) == 0 {
			continue
		}
		cells := make(map[string]string, len(day))
		for slot, id := range day {
			cells[slot] = id
			if t := agg.Get(id); t != nil {
				out.Tasks[id] = t
			}
		}
		out.Assignments[date] = cells
	}
	return out, nil
}
