package domain

import "strconv"

// ScheduleGrid maps a YYYY-MM-DD date to a slot-index -> task-id assignment.
// Slot keys are stored as decimal strings so they round-trip exactly through
// persistence. A (date, slot) cell holds at most one task id; assigning
// overwrites silently. Cells referencing ids no longer in the task store are
// tolerated on read and are not proactively cleaned.
type ScheduleGrid map[string]map[string]string

// SlotKey renders a slot index as its stable string form.
func SlotKey(slot int) string {
	return strconv.Itoa(slot)
}

// Assign puts a task id into the (date, slot) cell, creating the date bucket
// if absent and overwriting any existing occupant.
func (g ScheduleGrid) Assign(date string, slot int, taskID string) error {
	if _, err := ParseDate(date); err != nil {
		return err
	}
	if slot < 0 {
		return ErrInvalidSlot
	}
	day, ok := g[date]
	if !ok {
		day = make(map[string]string)
		g[date] = day
	}
	day[SlotKey(slot)] = taskID
	return nil
}

// Clear removes an assignment if present; clearing an empty cell is a no-op.
// It reports whether a cell was actually cleared.
func (g ScheduleGrid) Clear(date string, slot int) bool {
	day, ok := g[date]
	if !ok {
		return false
	}
	key := SlotKey(slot)
	if _, ok := day[key]; !ok {
		return false
	}
	delete(day, key)
	if len(day) == 0 {
		delete(g, date)
	}
	return true
}

// Occupant returns the task id held by (date, slot), if any.
func (g ScheduleGrid) Occupant(date string, slot int) (string, bool) {
	day, ok := g[date]
	if !ok {
		return "", false
	}
	id, ok := day[SlotKey(slot)]
	return id, ok
}

// Move reassigns a task from one cell to another as a single operation.
// The destination is validated before the source is touched, so a bad drop
// never loses the assignment. The destination's previous occupant, if any,
// is overwritten.
func (g ScheduleGrid) Move(taskID, fromDate string, fromSlot int, toDate string, toSlot int) error {
	if _, err := ParseDate(toDate); err != nil {
		return err
	}
	if toSlot < 0 {
		return ErrInvalidSlot
	}
	g.Clear(fromDate, fromSlot)
	return g.Assign(toDate, toSlot, taskID)
}

// Day returns the slot -> task-id assignments for a date. The returned map is
// the live bucket; callers must treat it as read-only.
func (g ScheduleGrid) Day(date string) map[string]string {
	return g[date]
}

// SlotsFor returns every (date, slot) cell currently holding the given task.
func (g ScheduleGrid) SlotsFor(taskID string) []SlotRef {
	var refs []SlotRef
	for date, day := range g {
		for key, id := range day {
			if id != taskID {
				continue
			}
			slot, err := strconv.Atoi(key)
			if err != nil {
				continue
			}
			refs = append(refs, SlotRef{Date: date, Slot: slot})
		}
	}
	return refs
}

// SlotRef identifies a single schedule cell.
type SlotRef struct {
	Date string
	Slot int
}
