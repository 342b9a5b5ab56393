// Package app provides the dependency injection container for the application.
package app

import (
	"os"
	"path/filepath"

	"github.com/tarunark/weekplan/internal/domain"
	"github.com/tarunark/weekplan/internal/infra/config"
	"github.com/tarunark/weekplan/internal/infra/jsonstore"
	"github.com/tarunark/weekplan/internal/infra/logging"
	"github.com/tarunark/weekplan/internal/infra/notesfs"
	"github.com/tarunark/weekplan/internal/infra/notesgit"
	"github.com/tarunark/weekplan/internal/usecase"
)

// Paths holds the resolved filesystem locations of the planner data.
type Paths struct {
	BaseDir   string // Data directory, default ~/.weekplan
	StorePath string // Aggregate JSON file
	NotesDir  string // Per-task notes blobs
}

// resolvePaths derives the data locations from the loaded configuration.
func resolvePaths(cfg *domain.Config) Paths {
	base := os.Getenv("WEEKPLAN_DATA_DIR")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		base = filepath.Join(home, ".weekplan")
	}
	p := Paths{
		BaseDir:   base,
		StorePath: filepath.Join(base, "tasks.json"),
		NotesDir:  filepath.Join(base, "notes"),
	}
	if cfg.Store.Path != "" {
		p.StorePath = cfg.Store.Path
	}
	if cfg.Notes.Dir != "" {
		p.NotesDir = cfg.Notes.Dir
	}
	return p
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Store domain.StoreRepository
	Notes domain.NotesStore
	Clock domain.Clock

	Logger domain.Logger
	Config *domain.Config
	Paths  Paths
}

// New creates a new Container rooted at the given working directory.
func New(workDir string) (*Container, error) {
	loader := config.NewLoader(workDir)
	cfg, err := loader.Load()
	if err != nil {
		// A broken config file never blocks startup.
		cfg = domain.NewDefaultConfig()
	}

	paths := resolvePaths(cfg)
	clock := domain.RealClock{}
	logger := logging.New(paths.BaseDir, logging.ParseLevel(cfg.Log.Level))

	var notes domain.NotesStore
	if cfg.Notes.History {
		versioned, err := notesgit.New(paths.NotesDir, clock)
		if err != nil {
			return nil, err
		}
		notes = versioned
	} else {
		notes = notesfs.New(paths.NotesDir)
	}

	return &Container{
		Store:  jsonstore.New(paths.StorePath),
		Notes:  notes,
		Clock:  clock,
		Logger: logger,
		Config: cfg,
		Paths:  paths,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg *domain.Config, store domain.StoreRepository, notes domain.NotesStore, clock domain.Clock, logger domain.Logger) *Container {
	if cfg == nil {
		cfg = domain.NewDefaultConfig()
	}
	return &Container{
		Store:  store,
		Notes:  notes,
		Clock:  clock,
		Logger: logger,
		Config: cfg,
	}
}

// Policy returns the archival lifecycle policy from the configuration.
func (c *Container) Policy() domain.LifecyclePolicy {
	return c.Config.LifecyclePolicy()
}

// UseCase factory methods

// CreateTaskUseCase returns a new CreateTask use case.
func (c *Container) CreateTaskUseCase() *usecase.CreateTask {
	return usecase.NewCreateTask(c.Store, c.Clock, c.Logger)
}

// CreateTasksFromFileUseCase returns a new CreateTasksFromFile use case.
func (c *Container) CreateTasksFromFileUseCase() *usecase.CreateTasksFromFile {
	return usecase.NewCreateTasksFromFile(c.Store, c.Clock, c.Logger)
}

// UpdateTaskUseCase returns a new UpdateTask use case.
func (c *Container) UpdateTaskUseCase() *usecase.UpdateTask {
	return usecase.NewUpdateTask(c.Store, c.Logger)
}

// DeleteTaskUseCase returns a new DeleteTask use case.
func (c *Container) DeleteTaskUseCase() *usecase.DeleteTask {
	return usecase.NewDeleteTask(c.Store, c.Logger)
}

// CompleteTaskUseCase returns a new CompleteTask use case.
func (c *Container) CompleteTaskUseCase() *usecase.CompleteTask {
	return usecase.NewCompleteTask(c.Store, c.Clock, c.Logger)
}

// MoveTaskUseCase returns a new MoveTask use case.
func (c *Container) MoveTaskUseCase() *usecase.MoveTask {
	return usecase.NewMoveTask(c.Store, c.Logger)
}

// ScheduleTaskUseCase returns a new ScheduleTask use case.
func (c *Container) ScheduleTaskUseCase() *usecase.ScheduleTask {
	return usecase.NewScheduleTask(c.Store, c.Logger)
}

// UnscheduleTaskUseCase returns a new UnscheduleTask use case.
func (c *Container) UnscheduleTaskUseCase() *usecase.UnscheduleTask {
	return usecase.NewUnscheduleTask(c.Store, c.Logger)
}

// MoveScheduledUseCase returns a new MoveScheduled use case.
func (c *Container) MoveScheduledUseCase() *usecase.MoveScheduled {
	return usecase.NewMoveScheduled(c.Store, c.Logger)
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Store, c.Policy(), c.Clock, c.Logger)
}

// ShowTaskUseCase returns a new ShowTask use case.
func (c *Container) ShowTaskUseCase() *usecase.ShowTask {
	return usecase.NewShowTask(c.Store, c.Notes, c.Policy(), c.Clock, c.Logger)
}

// ShowWeekUseCase returns a new ShowWeek use case.
func (c *Container) ShowWeekUseCase() *usecase.ShowWeek {
	return usecase.NewShowWeek(c.Store, c.Policy(), c.Clock, c.Logger)
}

// SearchTasksUseCase returns a new SearchTasks use case.
func (c *Container) SearchTasksUseCase() *usecase.SearchTasks {
	return usecase.NewSearchTasks(c.Store, c.Notes, c.Policy(), c.Clock, c.Logger)
}

// NotesInRangeUseCase returns a new NotesInRange use case.
func (c *Container) NotesInRangeUseCase() *usecase.NotesInRange {
	return usecase.NewNotesInRange(c.Store, c.Notes, c.Policy(), c.Clock, c.Logger)
}

// CommitNotesUseCase returns a new CommitNotes use case.
func (c *Container) CommitNotesUseCase() *usecase.CommitNotes {
	return usecase.NewCommitNotes(c.Store, c.Notes, c.Logger)
}

// RestoreNotesUseCase returns a new RestoreNotes use case.
func (c *Container) RestoreNotesUseCase() *usecase.RestoreNotes {
	return usecase.NewRestoreNotes(c.Store, c.Notes, c.Logger)
}

// NotesHistoryUseCase returns a new NotesHistory use case.
func (c *Container) NotesHistoryUseCase() *usecase.NotesHistory {
	return usecase.NewNotesHistory(c.Notes)
}

// SeedDemoUseCase returns a new SeedDemo use case.
func (c *Container) SeedDemoUseCase() *usecase.SeedDemo {
	return usecase.NewSeedDemo(c.Store, c.Clock, c.Logger)
}
