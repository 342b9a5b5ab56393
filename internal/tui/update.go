package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tarunark/weekplan/internal/domain"
	"github.com/tarunark/weekplan/internal/usecase"
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case MsgTasksLoaded:
		m.tasks = msg.Tasks
		m.clampCursor()
		return m, nil

	case MsgWeekLoaded:
		m.week = msg.Week
		return m, nil

	case MsgStatus:
		m.status = msg.Text
		m.err = nil
		// A status message means a mutation landed; reload both panes.
		return m, tea.Batch(m.loadTasks(), m.loadWeek())

	case MsgError:
		m.err = msg.Err
		return m, nil
	}
	return m, nil
}

// handleKeyMsg dispatches a key press according to the current mode.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case ModeInputTitle:
		return m.handleInputTitleKey(msg)
	case ModeConfirmDelete:
		return m.handleConfirmDeleteKey(msg)
	case ModeHelp:
		if key.Matches(msg, m.keys.Help) || key.Matches(msg, m.keys.Escape) || key.Matches(msg, m.keys.Quit) {
			m.mode = ModeNormal
		}
		return m, nil
	default:
		return m.handleNormalKey(msg)
	}
}

func (m *Model) handleInputTitleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		m.titleInput.Blur()
		m.titleInput.Reset()
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		title := strings.TrimSpace(m.titleInput.Value())
		m.mode = ModeNormal
		m.titleInput.Blur()
		m.titleInput.Reset()
		if title == "" {
			return m, nil
		}
		return m, m.createTask(title)
	}
	var cmd tea.Cmd
	m.titleInput, cmd = m.titleInput.Update(msg)
	return m, cmd
}

func (m *Model) handleConfirmDeleteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Confirm) {
		id := m.confirmTaskID
		m.mode = ModeNormal
		m.confirmTaskID = ""
		return m, m.deleteTask(id)
	}
	m.mode = ModeNormal
	m.confirmTaskID = ""
	return m, nil
}

func (m *Model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp
		return m, nil

	case key.Matches(msg, m.keys.Switch):
		if m.focus == PaneTasks {
			m.focus = PaneWeek
		} else {
			m.focus = PaneTasks
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.focus == PaneTasks {
			m.cursor--
			m.clampCursor()
		} else if m.slot > 0 {
			m.slot--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.focus == PaneTasks {
			m.cursor++
			m.clampCursor()
		} else if m.slot < m.slotsPerDay()-1 {
			m.slot++
		}
		return m, nil

	case key.Matches(msg, m.keys.Left):
		if m.focus == PaneWeek {
			if m.day > 0 {
				m.day--
			} else {
				m.focus = PaneTasks
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Right):
		if m.focus == PaneTasks {
			m.focus = PaneWeek
		} else if m.day < 6 {
			m.day++
		}
		return m, nil

	case key.Matches(msg, m.keys.PrevWeek):
		m.weekAnchor = m.weekAnchor.AddDate(0, 0, -7)
		return m, m.loadWeek()

	case key.Matches(msg, m.keys.NextWeek):
		m.weekAnchor = m.weekAnchor.AddDate(0, 0, 7)
		return m, m.loadWeek()

	case key.Matches(msg, m.keys.Refresh):
		m.status = ""
		m.err = nil
		return m, tea.Batch(m.loadTasks(), m.loadWeek())

	case key.Matches(msg, m.keys.New):
		m.mode = ModeInputTitle
		m.titleInput.Reset()
		m.titleInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Done):
		task := m.SelectedTask()
		if task == nil {
			return m, nil
		}
		return m, m.completeTask(task.ID)

	case key.Matches(msg, m.keys.Delete):
		task := m.SelectedTask()
		if task == nil {
			return m, nil
		}
		m.mode = ModeConfirmDelete
		m.confirmTaskID = task.ID
		return m, nil

	case key.Matches(msg, m.keys.Priority):
		task := m.SelectedTask()
		if task == nil {
			return m, nil
		}
		return m, m.cyclePriority(task.ID, task.Priority)

	case key.Matches(msg, m.keys.Schedule):
		task := m.SelectedTask()
		date := m.SelectedDate()
		if task == nil || date == "" {
			return m, nil
		}
		return m, m.scheduleTask(task.ID, date, m.slot)

	case key.Matches(msg, m.keys.Unschedule):
		date := m.SelectedDate()
		if date == "" {
			return m, nil
		}
		return m, m.unscheduleCell(date, m.slot)
	}
	return m, nil
}

// createTask returns a command that creates a root task with the given title.
func (m *Model) createTask(title string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.CreateTaskUseCase().Execute(context.Background(), usecase.CreateTaskInput{Title: title})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgStatus{Text: "created " + out.TaskID}
	}
}

// completeTask returns a command that marks a task completed.
func (m *Model) completeTask(id string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.CompleteTaskUseCase().Execute(context.Background(), usecase.CompleteTaskInput{TaskID: id})
		if err != nil {
			return MsgError{Err: err}
		}
		if !out.Completed {
			return MsgStatus{Text: id + " cannot be completed"}
		}
		return MsgStatus{Text: "completed " + id}
	}
}

// deleteTask returns a command that deletes a task.
func (m *Model) deleteTask(id string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.DeleteTaskUseCase().Execute(context.Background(), usecase.DeleteTaskInput{TaskID: id})
		if err != nil {
			return MsgError{Err: err}
		}
		if !out.Deleted {
			return MsgStatus{Text: id + " not found"}
		}
		return MsgStatus{Text: "deleted " + id}
	}
}

// nextPriority returns the priority one step up, wrapping to Low.
func nextPriority(p domain.Priority) domain.Priority {
	all := domain.AllPriorities()
	for i, candidate := range all {
		if candidate == p {
			return all[(i+1)%len(all)]
		}
	}
	return domain.PriorityMedium
}

// cyclePriority returns a command that bumps a task's priority.
func (m *Model) cyclePriority(id string, current domain.Priority) tea.Cmd {
	next := nextPriority(current)
	return func() tea.Msg {
		in := usecase.UpdateTaskInput{TaskID: id, Patch: domain.TaskPatch{Priority: &next}}
		out, err := m.container.UpdateTaskUseCase().Execute(context.Background(), in)
		if err != nil {
			return MsgError{Err: err}
		}
		if !out.Updated {
			return MsgStatus{Text: id + " not found"}
		}
		return MsgStatus{Text: fmt.Sprintf("%s priority -> %s", id, next)}
	}
}

// scheduleTask returns a command that assigns a task to a week cell.
func (m *Model) scheduleTask(id, date string, slot int) tea.Cmd {
	return func() tea.Msg {
		in := usecase.ScheduleTaskInput{TaskID: id, Date: date, Slot: slot}
		out, err := m.container.ScheduleTaskUseCase().Execute(context.Background(), in)
		if err != nil {
			return MsgError{Err: err}
		}
		if !out.Scheduled {
			return MsgStatus{Text: id + " not found"}
		}
		if out.Displaced != "" {
			return MsgStatus{Text: fmt.Sprintf("scheduled %s (displaced %s)", id, out.Displaced)}
		}
		return MsgStatus{Text: fmt.Sprintf("scheduled %s on %s", id, date)}
	}
}

// unscheduleCell returns a command that clears a week cell.
func (m *Model) unscheduleCell(date string, slot int) tea.Cmd {
	return func() tea.Msg {
		in := usecase.UnscheduleTaskInput{Date: date, Slot: slot}
		out, err := m.container.UnscheduleTaskUseCase().Execute(context.Background(), in)
		if err != nil {
			return MsgError{Err: err}
		}
		if !out.Cleared {
			return MsgStatus{Text: "cell already empty"}
		}
		return MsgStatus{Text: fmt.Sprintf("cleared %s slot %d", date, slot)}
	}
}
