package domain

import "slices"

// Children returns the direct children of parentID (or the root tasks when
// parentID is nil), sorted by descending priority with equal priorities
// preserving insertion order. Tasks whose parent id no longer resolves are
// degraded to roots rather than dropped. The view is recomputed on every
// call; nothing is cached.
func (a *Aggregate) Children(parentID *string) []*Task {
	var out []*Task
	for _, t := range a.Tasks {
		if parentID == nil {
			if t.ParentID == nil || !a.Has(*t.ParentID) {
				out = append(out, t)
			}
			continue
		}
		if t.ParentID != nil && *t.ParentID == *parentID {
			out = append(out, t)
		}
	}
	SortByPriority(out)
	return out
}

// Roots returns the root tasks in priority order.
func (a *Aggregate) Roots() []*Task {
	return a.Children(nil)
}

// SortByPriority orders tasks by descending priority rank in place. The sort
// is stable so equal priorities keep their relative insertion order.
func SortByPriority(tasks []*Task) {
	slices.SortStableFunc(tasks, func(x, y *Task) int {
		return y.Priority.Rank() - x.Priority.Rank()
	})
}
