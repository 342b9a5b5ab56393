package usecase

import (
	"context"
	"fmt"

	"github.com/tarunark/weekplan/internal/domain"
)

// SeedDemoInput is empty; seeding takes no parameters.
type SeedDemoInput struct{}

// SeedDemoOutput contains the ids of the demo tasks, in creation order.
type SeedDemoOutput struct {
	Warning error // Non-fatal persistence warning, if any
	TaskIDs []string
}

// SeedDemo is the use case for populating a store with a small task set
// covering every priority, including two parent/child pairs, so the
// priority ordering is visible immediately.
type SeedDemo struct {
	store  domain.StoreRepository
	clock  domain.Clock
	logger domain.Logger
}

// NewSeedDemo creates a new SeedDemo use case.
func NewSeedDemo(store domain.StoreRepository, clock domain.Clock, logger domain.Logger) *SeedDemo {
	return &SeedDemo{
		store:  store,
		clock:  clock,
		logger: logger,
	}
}

// Execute creates the demo tasks with a single store write.
func (uc *SeedDemo) Execute(_ context.Context, _ SeedDemoInput) (*SeedDemoOutput, error) {
	agg, err := uc.store.Load()
	if err != nil {
		return nil, fmt.Errorf("load store: %w", err)
	}

	demo := []struct {
		title    string
		priority domain.Priority
		parent   int // index into the demo set, -1 = root
	}{
		{"Critical Task", domain.PriorityCritical, -1},
		{"High Priority Task", domain.PriorityHigh, -1},
		{"Low Priority Task", domain.PriorityLow, -1},
		{"Another Medium Task", domain.PriorityMedium, -1},
		{"Subtask of Critical", domain.PriorityLow, 0},
		{"Subtask of High", domain.PriorityHigh, 1},
	}

	now := uc.clock.Now()
	out := &SeedDemoOutput{TaskIDs: make([]string, 0, len(demo))}
	for _, d := range demo {
		var parentID *string
		if d.parent >= 0 {
			pid := out.TaskIDs[d.parent]
			parentID = &pid
		}
		id := agg.NewTaskID(now)
		agg.Add(&domain.Task{
			ID:       id,
			ParentID: parentID,
			Title:    d.title,
			Priority: d.priority,
			State:    domain.StateActive,
			Created:  now,
		})
		out.TaskIDs = append(out.TaskIDs, id)
	}

	out.Warning = flushWarn(uc.store, agg, uc.logger, "")

	if uc.logger != nil {
		uc.logger.Info("", "task", fmt.Sprintf("seeded %d demo tasks", len(demo)))
	}

	return out, nil
}
