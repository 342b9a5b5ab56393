// Package domain contains core business entities and interfaces.
package domain

import (
	"fmt"
	"time"
)

// Task represents a single entry in the planner tree.
// Fields are ordered to minimize memory padding.
type Task struct {
	Created     time.Time // Creation time, set once
	Completed   time.Time // Completion time (zero = never completed)
	ParentID    *string   // Parent task ID (nil = root task)
	ID          string    // Timestamp-derived identifier, immutable
	Title       string    // Title (required on creation, tolerated empty on load)
	Description string    // Description (optional)
	Notes       string    // Long-form notes, materialized from the notes store, never persisted with the task
	Priority    Priority  // Low / Medium / High / Critical
	State       State     // Lifecycle state
	Tags        []string  // Ordered tags, duplicates allowed
	Summary     []string  // Free-text summary lines
	Dirty       bool      // Transient edit-pending flag for notes, never persisted
}

// IsRoot returns true if this is a root task (no parent).
func (t *Task) IsRoot() bool {
	return t.ParentID == nil
}

// IsCompleted returns true if the task has ever been completed.
func (t *Task) IsCompleted() bool {
	return !t.Completed.IsZero()
}

// idTokenLayout produces tokens like "240603_142501", one per second.
const idTokenLayout = "060102_150405"

// NewTaskID derives a task identifier from the wall clock. taken reports
// identifiers already in use; same-second collisions get a numeric suffix
// seeded from the store's next-id hint so the result stays unique.
func NewTaskID(now time.Time, hint int, taken func(string) bool) string {
	id := now.Format(idTokenLayout)
	if taken == nil || !taken(id) {
		return id
	}
	if hint < 1 {
		hint = 1
	}
	for n := hint; ; n++ {
		candidate := fmt.Sprintf("%s_%02d", id, n)
		if !taken(candidate) {
			return candidate
		}
	}
}
