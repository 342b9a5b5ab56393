package usecase

import (
	"context"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/tarunark/weekplan/internal/domain"
)

// CreateTasksFromFileInput contains the parameters for bulk task creation.
type CreateTasksFromFileInput struct {
	Content []byte // YAML task list
	DryRun  bool   // Parse and validate without creating tasks
}

// CreatedTask describes one task created (or previewed) from file input.
// Fields are ordered to minimize memory padding.
type CreatedTask struct {
	ParentID *string
	ID       string
	Title    string
}

// CreateTasksFromFileOutput contains the created tasks in file order.
type CreateTasksFromFileOutput struct {
	Warning error // Non-fatal persistence warning, if any
	Tasks   []CreatedTask
}

// taskDraft is one YAML entry. Parent is either the 1-based index of an
// earlier entry in the same file or the id of an existing task.
type taskDraft struct {
	Title       string   `yaml:"title"`
	Parent      string   `yaml:"parent"`
	Priority    string   `yaml:"priority"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
}

// CreateTasksFromFile is the use case for creating tasks from a YAML file.
// All tasks from one file are persisted with a single store write.
type CreateTasksFromFile struct {
	store  domain.StoreRepository
	clock  domain.Clock
	logger domain.Logger
}

// NewCreateTasksFromFile creates a new CreateTasksFromFile use case.
func NewCreateTasksFromFile(store domain.StoreRepository, clock domain.Clock, logger domain.Logger) *CreateTasksFromFile {
	return &CreateTasksFromFile{
		store:  store,
		clock:  clock,
		logger: logger,
	}
}

// Execute creates tasks from the given YAML content, in file order so that
// parent entries precede their children.
func (uc *CreateTasksFromFile) Execute(_ context.Context, in CreateTasksFromFileInput) (*CreateTasksFromFileOutput, error) {
	var drafts []taskDraft
	if err := yaml.Unmarshal(in.Content, &drafts); err != nil {
		return nil, fmt.Errorf("parse task file: %w", err)
	}

	for i, draft := range drafts {
		if draft.Title == "" {
			return nil, fmt.Errorf("task %d: %w", i+1, domain.ErrEmptyTitle)
		}
	}

	if in.DryRun {
		out := &CreateTasksFromFileOutput{Tasks: make([]CreatedTask, 0, len(drafts))}
		for i, draft := range drafts {
			out.Tasks = append(out.Tasks, CreatedTask{ID: strconv.Itoa(i + 1), Title: draft.Title})
		}
		return out, nil
	}

	agg, err := uc.store.Load()
	if err != nil {
		return nil, fmt.Errorf("load store: %w", err)
	}

	batch := uc.store.Begin()
	defer func() { _ = batch.Close() }()

	out := &CreateTasksFromFileOutput{Tasks: make([]CreatedTask, 0, len(drafts))}
	created := make([]string, 0, len(drafts))
	now := uc.clock.Now()

	for i, draft := range drafts {
		parentID, err := resolveParentRef(draft.Parent, created, agg)
		if err != nil {
			return nil, fmt.Errorf("task %d: %w", i+1, err)
		}

		priority, ok := domain.ParsePriority(draft.Priority)
		if !ok {
			priority = domain.PriorityMedium
		}

		id := agg.NewTaskID(now)
		agg.Add(&domain.Task{
			ID:          id,
			ParentID:    parentID,
			Title:       draft.Title,
			Description: draft.Description,
			Priority:    priority,
			State:       domain.StateActive,
			Created:     now,
			Tags:        draft.Tags,
		})
		created = append(created, id)

		if uc.logger != nil {
			uc.logger.Info(id, "task", fmt.Sprintf("created from file: %q", draft.Title))
		}

		out.Tasks = append(out.Tasks, CreatedTask{ID: id, Title: draft.Title, ParentID: parentID})
	}

	out.Warning = flushWarn(uc.store, agg, uc.logger, "")
	if err := batch.Close(); err != nil {
		out.Warning = err
		if uc.logger != nil {
			uc.logger.Warn("", "store", fmt.Sprintf("flush failed: %v", err))
		}
	}
	return out, nil
}

// resolveParentRef maps a draft's parent reference to a task id. A decimal
// number is a 1-based index into the entries created so far from this file;
// anything else must be the id of an existing task.
func resolveParentRef(ref string, created []string, agg *domain.Aggregate) (*string, error) {
	if ref == "" {
		return nil, nil
	}
	if n, err := strconv.Atoi(ref); err == nil {
		if n < 1 || n > len(created) {
			return nil, domain.ErrParentNotFound
		}
		id := created[n-1]
		return &id, nil
	}
	if !agg.Has(ref) {
		return nil, domain.ErrParentNotFound
	}
	id := ref
	return &id, nil
}
