package usecase

import (
	"context"

	"github.com/tarunark/weekplan/internal/domain"
)

// ListTasksInput contains the parameters for listing tasks.
type ListTasksInput struct {
	ParentID *string // List children of this task; nil lists roots
	All      bool    // Include the whole subtree, not just direct children
}

// ListTasksOutput contains the listed tasks.
type ListTasksOutput struct {
	Tasks []TaskNode
}

// TaskNode is a task plus its depth below the listing origin.
// Fields are ordered to minimize memory padding.
type TaskNode struct {
	Task  *domain.Task
	Depth int
}

// ListTasks is the use case for the hierarchy query surface: root tasks and
// children, ordered by descending priority with insertion order breaking
// ties. Archival lifecycle advances once per listing.
type ListTasks struct {
	store  domain.StoreRepository
	clock  domain.Clock
	logger domain.Logger
	policy domain.LifecyclePolicy
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(store domain.StoreRepository, policy domain.LifecyclePolicy, clock domain.Clock, logger domain.Logger) *ListTasks {
	return &ListTasks{
		store:  store,
		policy: policy,
		clock:  clock,
		logger: logger,
	}
}

// Execute lists tasks at or below the requested origin.
func (uc *ListTasks) Execute(_ context.Context, in ListTasksInput) (*ListTasksOutput, error) {
	agg, err := loadCurrent(uc.store, uc.policy, uc.clock, uc.logger)
	if err != nil {
		return nil, err
	}

	out := &ListTasksOutput{}
	collect(agg, in.ParentID, 0, in.All, &out.Tasks)
	return out, nil
}

// collect appends the children of parentID depth-first in display order.
func collect(agg *domain.Aggregate, parentID *string, depth int, recurse bool, out *[]TaskNode) {
	for _, t := range agg.Children(parentID) {
		*out = append(*out, TaskNode{Task: t, Depth: depth})
		if recurse {
			collect(agg, &t.ID, depth+1, true, out)
		}
	}
}
