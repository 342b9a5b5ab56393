package domain

import "time"

// StoreRepository persists the planner aggregate. Load returns an empty
// aggregate when nothing has been persisted yet; Flush rewrites the whole
// aggregate. Implementations retain the in-memory aggregate as the source of
// truth when a flush fails, so a single bad write never loses state.
type StoreRepository interface {
	// Load reads the aggregate, or returns a fresh empty one.
	Load() (*Aggregate, error)

	// Flush writes the aggregate whole. Errors wrap ErrPersistFailed.
	Flush(a *Aggregate) error

	// Begin opens a deferred-save batch: flushes inside the batch are
	// recorded but not written until the batch closes.
	Begin() StoreBatch
}

// StoreBatch brackets several mutations around one write. Close performs the
// pending flush even when an edit inside the batch failed.
type StoreBatch interface {
	Close() error
}

// NotesStore holds one long-form text blob per task, keyed by task identity,
// independent of the aggregate's own persisted fields.
type NotesStore interface {
	// Read returns the notes text for a task, or "" if none exist.
	Read(id string) (string, error)

	// Write replaces the notes text for a task.
	Write(id, text string) error
}

// NoteRevision is one historical version of a task's notes.
// Fields are ordered to minimize memory padding.
type NoteRevision struct {
	Time    time.Time
	Ref     string
	Message string
}

// NotesHistory is an optional extension of NotesStore for backends that keep
// prior revisions.
type NotesHistory interface {
	// History lists revisions for a task, newest first.
	History(id string) ([]NoteRevision, error)
}

// Logger writes structured planner logs. An empty task id logs globally.
type Logger interface {
	Debug(taskID, category, msg string)
	Info(taskID, category, msg string)
	Warn(taskID, category, msg string)
	Error(taskID, category, msg string)
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
