package domain

import "time"

// LifecyclePolicy configures the time-based archival progression.
// Fields are ordered to minimize memory padding.
type LifecyclePolicy struct {
	WeekStart        time.Weekday // First day of the week for the archival window
	ArchiveGraceDays int          // Extra full days past the completion week before archiving
	DormantAfterDays int          // Days since creation before an archived task goes dormant
}

// DefaultLifecyclePolicy keeps completed tasks visible through the remainder
// of their completion week plus one additional week, and retires archived
// tasks a year after creation.
func DefaultLifecyclePolicy() LifecyclePolicy {
	return LifecyclePolicy{
		WeekStart:        time.Monday,
		ArchiveGraceDays: 7,
		DormantAfterDays: 365,
	}
}

// ArchiveDate returns the moment after which a task completed at the given
// time leaves the recently-completed window: the days remaining in the
// completion week plus the grace period.
func (p LifecyclePolicy) ArchiveDate(completed time.Time) time.Time {
	remaining := 7 - weekdayIndex(completed, p.WeekStart)
	return completed.AddDate(0, 0, remaining+p.ArchiveGraceDays)
}

// Evaluate returns the state the task should hold at the given instant.
// It is pure: identical (task, now) inputs produce identical output, it is
// idempotent, and it never moves a task backward. Completion itself is an
// explicit command and is not triggered here.
func (p LifecyclePolicy) Evaluate(t *Task, now time.Time) State {
	state := t.State
	if !state.IsValid() {
		state = StateActive
	}

	if state == StateCompleted && t.IsCompleted() && now.After(p.ArchiveDate(t.Completed)) {
		state = StateArchived
	}

	if state == StateArchived && !t.Created.IsZero() {
		dormantAfter := time.Duration(p.DormantAfterDays) * 24 * time.Hour
		if now.Sub(t.Created) > dormantAfter {
			state = StateDormant
		}
	}

	if state.Before(t.State) {
		return t.State
	}
	return state
}
