package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tarunark/weekplan/internal/app"
	"github.com/tarunark/weekplan/internal/domain"
	"github.com/tarunark/weekplan/internal/usecase"
)

// Model is the main bubbletea model for the TUI.
type Model struct {
	// Dependencies (pointers first for alignment)
	container *app.Container
	week      *usecase.ShowWeekOutput
	err       error

	// State (slices - contain pointers)
	tasks  []usecase.TaskNode
	labels []string

	// Components (structs with pointers)
	keys   KeyMap
	styles Styles
	help   help.Model

	// Input state (large structs)
	titleInput textinput.Model
	weekAnchor time.Time

	// String state
	status        string
	confirmTaskID string

	// Numeric state (smaller types last)
	mode   Mode
	focus  Pane
	cursor int
	day    int
	slot   int
	width  int
	height int
}

// New creates a new TUI Model with the given container.
func New(c *app.Container) *Model {
	ti := textinput.New()
	ti.Placeholder = "Task title"
	ti.CharLimit = 200

	return &Model{
		container:  c,
		labels:     c.Config.Schedule.Labels,
		keys:       DefaultKeyMap(),
		styles:     DefaultStyles(),
		help:       help.New(),
		titleInput: ti,
		weekAnchor: c.Clock.Now(),
		mode:       ModeNormal,
		focus:      PaneTasks,
	}
}

// Init initializes the model and returns the initial command.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.loadTasks(),
		m.loadWeek(),
	)
}

// slotsPerDay returns the number of schedulable slots in a day.
func (m *Model) slotsPerDay() int {
	return m.container.Config.Schedule.SlotsPerDay()
}

// loadTasks returns a command that loads the full task tree.
func (m *Model) loadTasks() tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.ListTasksUseCase().Execute(context.Background(), usecase.ListTasksInput{All: true})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTasksLoaded{Tasks: out.Tasks}
	}
}

// loadWeek returns a command that loads the week containing the anchor date.
func (m *Model) loadWeek() tea.Cmd {
	date := m.weekAnchor.Format(domain.DateLayout)
	return func() tea.Msg {
		out, err := m.container.ShowWeekUseCase().Execute(context.Background(), usecase.ShowWeekInput{Date: date})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgWeekLoaded{Week: out}
	}
}

// SelectedTask returns the task under the cursor, or nil if none.
func (m *Model) SelectedTask() *domain.Task {
	if m.cursor < 0 || m.cursor >= len(m.tasks) {
		return nil
	}
	return m.tasks[m.cursor].Task
}

// SelectedDate returns the date of the selected week cell.
func (m *Model) SelectedDate() string {
	if m.week == nil || m.day < 0 || m.day >= len(m.week.Dates) {
		return ""
	}
	return m.week.Dates[m.day]
}

// cellOccupant returns the task id assigned to the selected cell, if any.
func (m *Model) cellOccupant() (string, bool) {
	if m.week == nil {
		return "", false
	}
	date := m.SelectedDate()
	if date == "" {
		return "", false
	}
	day, ok := m.week.Assignments[date]
	if !ok {
		return "", false
	}
	id, ok := day[domain.SlotKey(m.slot)]
	return id, ok
}

// clampCursor keeps the selection inside the loaded task list.
func (m *Model) clampCursor() {
	if m.cursor >= len(m.tasks) {
		m.cursor = len(m.tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
