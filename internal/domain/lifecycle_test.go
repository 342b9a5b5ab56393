package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func completedTask(created, completed time.Time) *Task {
	return &Task{
		ID:        "t1",
		Title:     "task",
		State:     StateCompleted,
		Created:   created,
		Completed: completed,
	}
}

func TestLifecycle_ArchiveAfterGraceWindow(t *testing.T) {
	policy := DefaultLifecyclePolicy()

	// Completed on a Wednesday.
	completed := time.Date(2024, 6, 5, 14, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Wednesday, completed.Weekday())
	task := completedTask(completed.AddDate(0, 0, -30), completed)

	// The following Saturday is still inside the grace window.
	saturday := completed.AddDate(0, 0, 3)
	assert.Equal(t, StateCompleted, policy.Evaluate(task, saturday))

	// Three weeks later the task has archived.
	threeWeeks := completed.AddDate(0, 0, 21)
	assert.Equal(t, StateArchived, policy.Evaluate(task, threeWeeks))
}

func TestLifecycle_ArchiveBoundary(t *testing.T) {
	policy := DefaultLifecyclePolicy()

	completed := time.Date(2024, 6, 5, 14, 0, 0, 0, time.UTC) // Wednesday
	task := completedTask(completed.AddDate(0, 0, -1), completed)

	// Remaining days of the completion week (5) plus one full week.
	archiveDate := policy.ArchiveDate(completed)
	assert.Equal(t, completed.AddDate(0, 0, 12), archiveDate)

	assert.Equal(t, StateCompleted, policy.Evaluate(task, archiveDate))
	assert.Equal(t, StateArchived, policy.Evaluate(task, archiveDate.Add(time.Second)))
}

func TestLifecycle_WeekStartConfigurable(t *testing.T) {
	policy := DefaultLifecyclePolicy()
	policy.WeekStart = time.Sunday

	completed := time.Date(2024, 6, 5, 14, 0, 0, 0, time.UTC) // Wednesday
	// With a Sunday week start, Wednesday is day 3, leaving 4 days + 7 grace.
	assert.Equal(t, completed.AddDate(0, 0, 11), policy.ArchiveDate(completed))
}

func TestLifecycle_DormantAfterYear(t *testing.T) {
	policy := DefaultLifecyclePolicy()
	created := time.Date(2023, 1, 10, 9, 0, 0, 0, time.UTC)

	task := completedTask(created, created.AddDate(0, 0, 5))
	task.State = StateArchived

	// A year minus a day since creation: still archived.
	assert.Equal(t, StateArchived, policy.Evaluate(task, created.AddDate(0, 0, 364)))

	// Over a year since creation: dormant.
	assert.Equal(t, StateDormant, policy.Evaluate(task, created.AddDate(0, 0, 366)))
}

func TestLifecycle_CompletedSkipsToDormantThroughArchive(t *testing.T) {
	policy := DefaultLifecyclePolicy()
	created := time.Date(2023, 1, 10, 9, 0, 0, 0, time.UTC)

	// Completed long ago and created over a year ago: one pass lands dormant.
	task := completedTask(created, created.AddDate(0, 0, 5))
	now := created.AddDate(1, 1, 0)
	assert.Equal(t, StateDormant, policy.Evaluate(task, now))
}

func TestLifecycle_Idempotent(t *testing.T) {
	policy := DefaultLifecyclePolicy()
	completed := time.Date(2024, 6, 5, 14, 0, 0, 0, time.UTC)
	task := completedTask(completed.AddDate(0, 0, -30), completed)
	now := completed.AddDate(0, 0, 21)

	first := policy.Evaluate(task, now)
	task.State = first
	second := policy.Evaluate(task, now)
	assert.Equal(t, first, second)
}

func TestLifecycle_NeverMovesBackward(t *testing.T) {
	policy := DefaultLifecyclePolicy()
	now := time.Date(2024, 6, 5, 14, 0, 0, 0, time.UTC)

	task := &Task{ID: "t1", State: StateDormant, Created: now.AddDate(-2, 0, 0)}
	assert.Equal(t, StateDormant, policy.Evaluate(task, now))

	// Active tasks never archive without an explicit completion.
	active := &Task{ID: "t2", State: StateActive, Created: now.AddDate(-2, 0, 0)}
	assert.Equal(t, StateActive, policy.Evaluate(active, now))
}

func TestLifecycle_CompletedDateNotClearedOnArchive(t *testing.T) {
	policy := DefaultLifecyclePolicy()
	completed := time.Date(2024, 6, 5, 14, 0, 0, 0, time.UTC)
	task := completedTask(completed.AddDate(0, 0, -30), completed)

	task.State = policy.Evaluate(task, completed.AddDate(0, 0, 21))
	assert.Equal(t, StateArchived, task.State)
	assert.Equal(t, completed, task.Completed)
}

func TestAggregate_AdvanceLifecycle(t *testing.T) {
	policy := DefaultLifecyclePolicy()
	completed := time.Date(2024, 6, 5, 14, 0, 0, 0, time.UTC)
	now := completed.AddDate(0, 0, 21)

	agg := NewAggregate()
	agg.Add(completedTask(completed.AddDate(0, 0, -30), completed))
	agg.Add(&Task{ID: "t2", State: StateActive, Created: completed})

	assert.True(t, agg.AdvanceLifecycle(policy, now))
	assert.Equal(t, StateArchived, agg.Tasks[0].State)
	assert.Equal(t, StateActive, agg.Tasks[1].State)

	// Second run with the same now is a no-op.
	assert.False(t, agg.AdvanceLifecycle(policy, now))
}
