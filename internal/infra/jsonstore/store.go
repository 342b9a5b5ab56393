// Package jsonstore provides a JSON file-based implementation of StoreRepository.
package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/tarunark/weekplan/internal/domain"
)

// storePayload represents the JSON file structure.
type storePayload struct {
	Tasks    []taskPayload                `json:"tasks"`
	Schedule map[string]map[string]string `json:"schedule"`
	NextID   int                          `json:"next_id"`
}

// taskPayload is the serialized representation of a task. Notes live in the
// notes store and are deliberately absent here.
type taskPayload struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	ParentID      *string  `json:"parent_id"`
	Description   string   `json:"description,omitempty"`
	Priority      string   `json:"priority"`
	Tags          []string `json:"tags,omitempty"`
	CreatedDate   string   `json:"created_date"`
	CompletedDate string   `json:"completed_date,omitempty"`
	State         string   `json:"state"`
	Summary       []string `json:"summary,omitempty"`
}

// Store implements domain.StoreRepository using a single JSON file.
// Once loaded, the in-memory aggregate is the source of truth: a failed
// flush keeps the aggregate and surfaces a warning-class error.
type Store struct {
	agg        *domain.Aggregate
	path       string
	lockPath   string
	mu         sync.Mutex
	batchDepth int
	pending    bool
}

// New creates a new Store for the given file path. The file does not need
// to exist; the first Load returns an empty aggregate.
func New(path string) *Store {
	return &Store{
		path:     path,
		lockPath: path + ".lock",
	}
}

// Load reads the aggregate from disk, or returns the cached in-memory copy
// once one exists.
func (s *Store) Load() (*domain.Aggregate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.agg != nil {
		return s.agg, nil
	}

	lock, err := s.acquireLock(syscall.LOCK_SH)
	if err != nil {
		return nil, err
	}
	defer s.releaseLock(lock)

	content, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.agg = domain.NewAggregate()
			return s.agg, nil
		}
		return nil, fmt.Errorf("read store file: %w", err)
	}

	var payload storePayload
	if err := json.Unmarshal(content, &payload); err != nil {
		return nil, fmt.Errorf("parse store file: %w", err)
	}

	s.agg = fromPayload(&payload)
	return s.agg, nil
}

// Flush rewrites the whole aggregate. Inside a batch the write is deferred
// until the batch closes. Write failures wrap domain.ErrPersistFailed and
// leave the in-memory aggregate intact.
func (s *Store) Flush(a *domain.Aggregate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.agg = a
	if s.batchDepth > 0 {
		s.pending = true
		return nil
	}
	return s.write(a)
}

// Begin opens a deferred-save batch. Flushes inside the batch are folded
// into a single write performed when the batch closes.
func (s *Store) Begin() domain.StoreBatch {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.batchDepth++
	return &batch{store: s}
}

type batch struct {
	store  *Store
	closed bool
}

// Close flushes the pending aggregate, if any. It is safe to call once even
// when an edit inside the batch failed.
func (b *batch) Close() error {
	b.store.mu.Lock()
	defer b.store.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true

	b.store.batchDepth--
	if b.store.batchDepth > 0 || !b.store.pending {
		return nil
	}
	b.store.pending = false
	return b.store.write(b.store.agg)
}

// write serializes and atomically replaces the store file. Caller holds mu.
func (s *Store) write(a *domain.Aggregate) error {
	payload := toPayload(a)
	content, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: marshal store data: %v", domain.ErrPersistFailed, err)
	}

	lock, err := s.acquireLock(syscall.LOCK_EX)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersistFailed, err)
	}
	defer s.releaseLock(lock)

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
		return fmt.Errorf("%w: write temp file: %v", domain.ErrPersistFailed, err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: rename temp file: %v", domain.ErrPersistFailed, err)
	}
	return nil
}

func (s *Store) acquireLock(lockType int) (*os.File, error) {
	dir := filepath.Dir(s.lockPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}

	lock, err := os.OpenFile(s.lockPath, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}

	if err := syscall.Flock(int(lock.Fd()), lockType); err != nil {
		_ = lock.Close()
		return nil, fmt.Errorf("acquire lock: %w", err)
	}

	return lock, nil
}

func (s *Store) releaseLock(lock *os.File) {
	_ = syscall.Flock(int(lock.Fd()), syscall.LOCK_UN)
	_ = lock.Close()
}

func toPayload(a *domain.Aggregate) *storePayload {
	payload := &storePayload{
		Tasks:    make([]taskPayload, 0, len(a.Tasks)),
		Schedule: a.Schedule,
		NextID:   a.NextID,
	}
	for _, t := range a.Tasks {
		tp := taskPayload{
			ID:          t.ID,
			Title:       t.Title,
			ParentID:    t.ParentID,
			Description: t.Description,
			Priority:    string(t.Priority),
			Tags:        t.Tags,
			CreatedDate: t.Created.Format(time.RFC3339),
			State:       string(t.State),
			Summary:     t.Summary,
		}
		if t.IsCompleted() {
			tp.CompletedDate = t.Completed.Format(time.RFC3339)
		}
		payload.Tasks = append(payload.Tasks, tp)
	}
	return payload
}

// fromPayload rebuilds the aggregate, tolerating legacy records: empty
// titles, unknown priorities and states, and unparseable dates all load
// as-is rather than failing the whole store.
func fromPayload(payload *storePayload) *domain.Aggregate {
	agg := domain.NewAggregate()
	if payload.Schedule != nil {
		agg.Schedule = payload.Schedule
	}
	if payload.NextID > 0 {
		agg.NextID = payload.NextID
	}
	for i := range payload.Tasks {
		tp := &payload.Tasks[i]
		task := &domain.Task{
			ID:          tp.ID,
			Title:       tp.Title,
			ParentID:    tp.ParentID,
			Description: tp.Description,
			Priority:    domain.Priority(tp.Priority),
			State:       domain.State(tp.State),
			Tags:        tp.Tags,
			Summary:     tp.Summary,
		}
		if parsed, err := time.Parse(time.RFC3339, tp.CreatedDate); err == nil {
			task.Created = parsed
		}
		if tp.CompletedDate != "" {
			if parsed, err := time.Parse(time.RFC3339, tp.CompletedDate); err == nil {
				task.Completed = parsed
			}
		}
		if task.State == "" {
			task.State = domain.StateActive
		}
		agg.Add(task)
	}
	return agg
}

// Ensure Store implements StoreRepository.
var _ domain.StoreRepository = (*Store)(nil)
