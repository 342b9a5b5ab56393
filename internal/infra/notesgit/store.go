// Package notesgit stores per-task notes in a local git repository so every
// committed revision stays recoverable.
package notesgit

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/tarunark/weekplan/internal/domain"
)

const (
	commitAuthorName  = "weekplan"
	commitAuthorEmail = "weekplan@localhost"
)

// Store implements domain.NotesStore and domain.NotesHistory backed by a git
// repository rooted at the notes directory.
type Store struct {
	repo  *git.Repository
	clock domain.Clock
	dir   string
}

// New opens the notes repository at dir, initializing it on first use.
func New(dir string, clock domain.Clock) (*Store, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create notes directory: %w", err)
	}

	repo, err := git.PlainOpen(dir)
	if errors.Is(err, git.ErrRepositoryNotExists) {
		repo, err = git.PlainInit(dir, false)
	}
	if err != nil {
		return nil, fmt.Errorf("open notes repository: %w", err)
	}

	return &Store{repo: repo, clock: clock, dir: dir}, nil
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

// Write replaces the notes text for a task and commits the revision.
func (s *Store) Write(id, text string) error {
	if err := os.WriteFile(s.notePath(id), []byte(text), 0o600); err != nil {
		return fmt.Errorf("write notes: %w", err)
	}

	wt, err := s.repo.Worktree()
	if err != nil {
		return fmt.Errorf("notes worktree: %w", err)
	}
	if _, err := wt.Add(s.noteFile(id)); err != nil {
		return fmt.Errorf("stage notes: %w", err)
	}

	now := s.clock.Now()
	_, err = wt.Commit(fmt.Sprintf("notes: update %s", id), &git.CommitOptions{
		Author: &object.Signature{
			Name:  commitAuthorName,
			Email: commitAuthorEmail,
			When:  now,
		},
	})
	if err != nil && !errors.Is(err, git.ErrEmptyCommit) {
		return fmt.Errorf("commit notes: %w", err)
	}
	return nil
}

// History lists committed revisions touching the task's notes, newest first.
func (s *Store) History(id string) ([]domain.NoteRevision, error) {
	file := s.noteFile(id)
	iter, err := s.repo.Log(&git.LogOptions{FileName: &file})
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("notes log: %w", err)
	}
	defer iter.Close()

	var revisions []domain.NoteRevision
	err = iter.ForEach(func(c *object.Commit) error {
		revisions = append(revisions, domain.NoteRevision{
			Time:    c.Author.When,
			Ref:     c.Hash.String(),
			Message: c.Message,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk notes log: %w", err)
	}
	return revisions, nil
}

func (s *Store) noteFile(id string) string {
	return id + ".txt"
}

func (s *Store) notePath(id string) string {
	return filepath.Join(s.dir, s.noteFile(id))
}

// Ensure Store implements both notes ports.
var (
	_ domain.NotesStore   = (*Store)(nil)
	_ domain.NotesHistory = (*Store)(nil)
)
