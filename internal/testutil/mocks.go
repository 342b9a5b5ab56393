// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"time"

	"github.com/tarunark/weekplan/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// MockStore is an in-memory test double for domain.StoreRepository.
// Fields are ordered to minimize memory padding.
type MockStore struct {
	Agg        *domain.Aggregate
	LoadErr    error
	FlushErr   error
	FlushCount int
	BatchOpen  bool
}

// NewMockStore creates a MockStore holding an empty aggregate.
func NewMockStore() *MockStore {
	return &MockStore{Agg: domain.NewAggregate()}
}

// Load returns the held aggregate.
func (m *MockStore) Load() (*domain.Aggregate, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.Agg, nil
}

// Flush records the aggregate and counts the call.
func (m *MockStore) Flush(a *domain.Aggregate) error {
	if m.FlushErr != nil {
		return m.FlushErr
	}
	m.Agg = a
	if !m.BatchOpen {
		m.FlushCount++
	}
	return nil
}

// Begin opens a deferred-save batch.
func (m *MockStore) Begin() domain.StoreBatch {
	m.BatchOpen = true
	return &mockBatch{store: m}
}

type mockBatch struct {
	store  *MockStore
	closed bool
}

// Close ends the batch and counts the deferred flush.
func (b *mockBatch) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true
	b.store.BatchOpen = false
	if b.store.FlushErr != nil {
		return b.store.FlushErr
	}
	b.store.FlushCount++
	return nil
}

// MockNotesStore is an in-memory test double for domain.NotesStore.
type MockNotesStore struct {
	Notes    map[string]string
	ReadErr  error
	WriteErr error
}

// NewMockNotesStore creates a MockNotesStore with an initialized map.
func NewMockNotesStore() *MockNotesStore {
	return &MockNotesStore{Notes: make(map[string]string)}
}

// Read returns the stored notes text, or "" if none exist.
func (m *MockNotesStore) Read(id string) (string, error) {
	if m.ReadErr != nil {
		return "", m.ReadErr
	}
	return m.Notes[id], nil
}

// Write replaces the stored notes text.
func (m *MockNotesStore) Write(id, text string) error {
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.Notes[id] = text
	return nil
}

// NopLogger is a domain.Logger that discards everything.
type NopLogger struct{}

// Debug discards the message.
func (NopLogger) Debug(string, string, string) {}

// Info discards the message.
func (NopLogger) Info(string, string, string) {}

// Warn discards the message.
func (NopLogger) Warn(string, string, string) {}

// Error discards the message.
func (NopLogger) Error(string, string, string) {}
