// Package notesfs stores per-task notes as plain text files.
package notesfs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tarunark/weekplan/internal/domain"
)

// Store implements domain.NotesStore with one <id>.txt file per task.
type Store struct {
	dir string
}

// New creates a new Store rooted at dir. The directory is created lazily on
// the first write.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the notes directory.
func (s *Store) Dir() string {
	return s.dir
}

// Read returns the notes text for a task, or "" if none exist.
func (s *Store) Read(id string) (string, error) {
	content, err := os.ReadFile(s.notePath(id))
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("read notes: %w", err)
	}
	return string(content), nil
}

// Write replaces the notes text for a task.
func (s *Store) Write(id, text string) error {
	if err := os.MkdirAll(s.dir, 0o750); err != nil {
		return fmt.Errorf("create notes directory: %w", err)
	}

	path := s.notePath(id)
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, []byte(text), 0o600); err != nil {
		return fmt.Errorf("write notes temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename notes temp file: %w", err)
	}
	return nil
}

func (s *Store) notePath(id string) string {
	return filepath.Join(s.dir, id+".txt")
}

// Ensure Store implements NotesStore.
var _ domain.NotesStore = (*Store)(nil)
