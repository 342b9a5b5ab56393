package domain

// TaskPatch is a typed set of optional field updates. A nil field means
// "leave unchanged"; a set field is validated before it is applied.
type TaskPatch struct {
	Title       *string
	Description *string
	Priority    *Priority
	Tags        *[]string
	Summary     *[]string
}

// IsEmpty returns true if the patch changes nothing.
func (p TaskPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Priority == nil &&
		p.Tags == nil && p.Summary == nil
}

// Validate checks the patch without touching a task.
func (p TaskPatch) Validate() error {
	if p.Title != nil && *p.Title == "" {
		return ErrEmptyTitle
	}
	if p.Priority != nil && !p.Priority.IsValid() {
		return ErrInvalidPriority
	}
	return nil
}

// Apply validates the patch and copies the set fields onto the task.
// On error the task is left unchanged.
func (p TaskPatch) Apply(t *Task) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.Tags != nil {
		t.Tags = *p.Tags
	}
	if p.Summary != nil {
		t.Summary = *p.Summary
	}
	return nil
}
