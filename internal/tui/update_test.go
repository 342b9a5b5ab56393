package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarunark/weekplan/internal/app"
	"github.com/tarunark/weekplan/internal/domain"
	"github.com/tarunark/weekplan/internal/testutil"
	"github.com/tarunark/weekplan/internal/usecase"
)

var testNow = time.Date(2024, 6, 3, 14, 25, 0, 0, time.Local) // A Monday

// newTestModel builds a Model over mocked dependencies with two tasks.
func newTestModel(t *testing.T) (*Model, *testutil.MockStore) {
	t.Helper()

	store := testutil.NewMockStore()
	store.Agg.Add(&domain.Task{
		ID:       "240601_090000",
		Title:    "Write report",
		Priority: domain.PriorityHigh,
		State:    domain.StateActive,
		Created:  testNow.AddDate(0, 0, -2),
	})
	store.Agg.Add(&domain.Task{
		ID:       "240601_100000",
		Title:    "Review notes",
		Priority: domain.PriorityLow,
		State:    domain.StateActive,
		Created:  testNow.AddDate(0, 0, -2),
	})

	c := app.NewWithDeps(nil, store, testutil.NewMockNotesStore(), &testutil.MockClock{NowTime: testNow}, testutil.NopLogger{})
	return New(c), store
}

// drain runs a command and feeds its messages back through Update.
func drain(t *testing.T, m *Model, cmd tea.Cmd) *Model {
	t.Helper()
	for cmd != nil {
		msg := cmd()
		if msg == nil {
			return m
		}
		if batch, ok := msg.(tea.BatchMsg); ok {
			for _, sub := range batch {
				m = drain(t, m, sub)
			}
			return m
		}
		var next tea.Model
		next, cmd = m.Update(msg)
		var isModel bool
		m, isModel = next.(*Model)
		require.True(t, isModel)
	}
	return m
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func press(t *testing.T, m *Model, s string) (*Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(keyMsg(s))
	result, ok := next.(*Model)
	require.True(t, ok)
	return result, cmd
}

func TestInit_LoadsTasksAndWeek(t *testing.T) {
	// Setup
	m, _ := newTestModel(t)

	// Execute
	m = drain(t, m, m.Init())

	// Assert
	require.Len(t, m.tasks, 2)
	assert.Equal(t, "Write report", m.tasks[0].Task.Title) // High before Low
	require.NotNil(t, m.week)
	assert.Equal(t, "2024-06-03", m.week.Dates[0]) // Default week starts Monday
}

func TestUpdate_MsgTasksLoaded_ClampsCursor(t *testing.T) {
	m, _ := newTestModel(t)
	m.cursor = 5

	next, _ := m.Update(MsgTasksLoaded{Tasks: []usecase.TaskNode{{Task: &domain.Task{ID: "a"}}}})
	result, ok := next.(*Model)
	require.True(t, ok)

	assert.Equal(t, 0, result.cursor)
}

func TestUpdate_MsgError_SetsError(t *testing.T) {
	m, _ := newTestModel(t)

	next, _ := m.Update(MsgError{Err: assert.AnError})
	result, ok := next.(*Model)
	require.True(t, ok)

	assert.Equal(t, assert.AnError, result.err)
}

func TestUpdate_Navigation(t *testing.T) {
	m, _ := newTestModel(t)
	m = drain(t, m, m.Init())

	m, _ = press(t, m, "down")
	assert.Equal(t, 1, m.cursor)
	m, _ = press(t, m, "down")
	assert.Equal(t, 1, m.cursor, "cursor stays on last task")
	m, _ = press(t, m, "up")
	assert.Equal(t, 0, m.cursor)

	// Switch to the week pane; up/down now move the slot.
	m, _ = press(t, m, "tab")
	assert.Equal(t, PaneWeek, m.focus)
	m, _ = press(t, m, "down")
	assert.Equal(t, 1, m.slot)
	m, _ = press(t, m, "l")
	assert.Equal(t, 1, m.day)
	m, _ = press(t, m, "h")
	m, _ = press(t, m, "h")
	assert.Equal(t, PaneTasks, m.focus, "left past the first day returns to tasks")
}

func TestUpdate_WeekNavigation(t *testing.T) {
	m, _ := newTestModel(t)
	m = drain(t, m, m.Init())

	var cmd tea.Cmd
	m, cmd = press(t, m, "n")
	m = drain(t, m, cmd)
	assert.Equal(t, "2024-06-10", m.week.Dates[0])

	m, cmd = press(t, m, "p")
	m = drain(t, m, cmd)
	assert.Equal(t, "2024-06-03", m.week.Dates[0])
}

func TestUpdate_NewTaskFlow(t *testing.T) {
	// Setup
	m, store := newTestModel(t)
	m = drain(t, m, m.Init())

	// Execute: enter input mode, type a title, confirm
	m, _ = press(t, m, "a")
	require.Equal(t, ModeInputTitle, m.mode)
	for _, r := range "Plan sprint" {
		m, _ = press(t, m, string(r))
	}
	var cmd tea.Cmd
	m, cmd = press(t, m, "enter")
	m = drain(t, m, cmd)

	// Assert
	assert.Equal(t, ModeNormal, m.mode)
	assert.Len(t, m.tasks, 3)
	created := store.Agg.Get("240603_142500")
	require.NotNil(t, created)
	assert.Equal(t, "Plan sprint", created.Title)
}

func TestUpdate_NewTaskFlow_EscapeCancels(t *testing.T) {
	m, store := newTestModel(t)
	m = drain(t, m, m.Init())

	m, _ = press(t, m, "a")
	m, _ = press(t, m, "X")
	m, _ = press(t, m, "esc")

	assert.Equal(t, ModeNormal, m.mode)
	assert.Empty(t, m.titleInput.Value())
	assert.Equal(t, 0, store.FlushCount)
}

func TestUpdate_DoneCompletesSelectedTask(t *testing.T) {
	m, store := newTestModel(t)
	m = drain(t, m, m.Init())

	var cmd tea.Cmd
	m, cmd = press(t, m, "d")
	m = drain(t, m, cmd)

	task := store.Agg.Get("240601_090000")
	assert.Equal(t, domain.StateCompleted, task.State)
	assert.Contains(t, m.status, "completed")
}

func TestUpdate_DeleteRequiresConfirmation(t *testing.T) {
	// Setup
	m, store := newTestModel(t)
	m = drain(t, m, m.Init())

	// Execute: request deletion, then cancel
	m, _ = press(t, m, "x")
	require.Equal(t, ModeConfirmDelete, m.mode)
	m, _ = press(t, m, "q")
	assert.Equal(t, ModeNormal, m.mode)
	assert.True(t, store.Agg.Has("240601_090000"))

	// Execute: request again and confirm
	m, _ = press(t, m, "x")
	var cmd tea.Cmd
	m, cmd = press(t, m, "enter")
	m = drain(t, m, cmd)

	// Assert
	assert.False(t, store.Agg.Has("240601_090000"))
	assert.Len(t, m.tasks, 1)
}

func TestUpdate_PriorityCycle(t *testing.T) {
	m, store := newTestModel(t)
	m = drain(t, m, m.Init())

	var cmd tea.Cmd
	m, cmd = press(t, m, "+")
	m = drain(t, m, cmd)

	assert.Equal(t, domain.PriorityCritical, store.Agg.Get("240601_090000").Priority)
}

func TestUpdate_ScheduleAndUnschedule(t *testing.T) {
	// Setup
	m, store := newTestModel(t)
	m = drain(t, m, m.Init())
	m.day = 1
	m.slot = 2

	// Execute: schedule the selected task into the selected cell
	var cmd tea.Cmd
	m, cmd = press(t, m, "s")
	m = drain(t, m, cmd)

	// Assert
	id, ok := store.Agg.Schedule.Occupant("2024-06-04", 2)
	require.True(t, ok)
	assert.Equal(t, "240601_090000", id)
	assert.Contains(t, m.week.Assignments["2024-06-04"], domain.SlotKey(2))

	// Execute: clear the cell again
	m, cmd = press(t, m, "u")
	m = drain(t, m, cmd)

	// Assert
	_, ok = store.Agg.Schedule.Occupant("2024-06-04", 2)
	assert.False(t, ok)
}

func TestUpdate_HelpToggle(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = press(t, m, "?")
	assert.Equal(t, ModeHelp, m.mode)
	m, _ = press(t, m, "?")
	assert.Equal(t, ModeNormal, m.mode)
}

func TestUpdate_QuitReturnsQuitCmd(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := press(t, m, "q")

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestNextPriority(t *testing.T) {
	assert.Equal(t, domain.PriorityMedium, nextPriority(domain.PriorityLow))
	assert.Equal(t, domain.PriorityHigh, nextPriority(domain.PriorityMedium))
	assert.Equal(t, domain.PriorityCritical, nextPriority(domain.PriorityHigh))
	assert.Equal(t, domain.PriorityLow, nextPriority(domain.PriorityCritical))
	assert.Equal(t, domain.PriorityMedium, nextPriority(domain.Priority("bogus")))
}
