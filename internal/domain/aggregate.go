package domain

import "time"

// Aggregate is the full persisted state of the planner: every task in
// insertion order, the schedule grid, and the next-id hint. It is the unit
// of durability; every mutation rewrites it whole.
type Aggregate struct {
	Tasks    []*Task
	Schedule ScheduleGrid
	NextID   int
}

// NewAggregate returns an empty aggregate.
func NewAggregate() *Aggregate {
	return &Aggregate{
		Schedule: make(ScheduleGrid),
		NextID:   1,
	}
}

// Get returns the task with the given id, or nil if absent.
func (a *Aggregate) Get(id string) *Task {
	for _, t := range a.Tasks {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// Has reports whether a task with the given id exists.
func (a *Aggregate) Has(id string) bool {
	return a.Get(id) != nil
}

// Add appends a task, preserving insertion order for tie-breaking.
func (a *Aggregate) Add(t *Task) {
	a.Tasks = append(a.Tasks, t)
}

// Remove deletes the task with the given id and re-parents its direct
// children to root. Deletion never cascades. It reports whether a task was
// removed; removing an unknown id is a no-op.
func (a *Aggregate) Remove(id string) bool {
	idx := -1
	for i, t := range a.Tasks {
		if t.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	for _, t := range a.Tasks {
		if t.ParentID != nil && *t.ParentID == id {
			t.ParentID = nil
		}
	}
	a.Tasks = append(a.Tasks[:idx], a.Tasks[idx+1:]...)
	return true
}

// NewTaskID allocates a fresh identifier and advances the next-id hint.
func (a *Aggregate) NewTaskID(now time.Time) string {
	id := NewTaskID(now, a.NextID, a.Has)
	a.NextID++
	return id
}

// WouldCycle reports whether re-parenting taskID under newParentID would
// make the task its own ancestor. It walks the candidate parent's ancestor
// chain; dangling parent references terminate the walk.
func (a *Aggregate) WouldCycle(taskID, newParentID string) bool {
	if taskID == newParentID {
		return true
	}
	seen := make(map[string]bool)
	cur := a.Get(newParentID)
	for cur != nil && cur.ParentID != nil {
		if seen[cur.ID] {
			break
		}
		seen[cur.ID] = true
		if *cur.ParentID == taskID {
			return true
		}
		cur = a.Get(*cur.ParentID)
	}
	return false
}

// AdvanceLifecycle applies the archival policy to every task and reports
// whether any state changed. Safe to re-run with the same now.
func (a *Aggregate) AdvanceLifecycle(p LifecyclePolicy, now time.Time) bool {
	changed := false
	for _, t := range a.Tasks {
		if next := p.Evaluate(t, now); next != t.State {
			t.State = next
			changed = true
		}
	}
	return changed
}
