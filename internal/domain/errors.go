package domain

import "errors"

// Domain errors.
var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrParentNotFound   = errors.New("parent task not found")
	ErrEmptyTitle       = errors.New("title cannot be empty")
	ErrWouldCreateCycle = errors.New("reparenting would create a cycle")
	ErrInvalidPriority  = errors.New("invalid priority")
	ErrInvalidDate      = errors.New("invalid date (expected YYYY-MM-DD)")
	ErrInvalidSlot      = errors.New("invalid slot index")
	ErrNoFieldsToUpdate = errors.New("no fields to update")
	ErrPersistFailed    = errors.New("persist store")
	ErrNotInitialized   = errors.New("store not initialized")
)
