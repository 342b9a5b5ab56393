package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sizedModel(t *testing.T) *Model {
	t.Helper()
	m, _ := newTestModel(t)
	m = drain(t, m, m.Init())
	next, _ := m.Update(tea.WindowSizeMsg{Width: 160, Height: 48})
	result, ok := next.(*Model)
	require.True(t, ok)
	return result
}

func TestView_LoadingBeforeFirstResize(t *testing.T) {
	m, _ := newTestModel(t)

	assert.Equal(t, "Loading...", m.View())
}

func TestView_MainShowsTasksAndWeek(t *testing.T) {
	m := sizedModel(t)

	out := m.View()

	assert.Contains(t, out, "Tasks")
	assert.Contains(t, out, "Write report")
	assert.Contains(t, out, "Review notes")
	assert.Contains(t, out, "Week")
	assert.Contains(t, out, "06-03") // First day of the displayed week
	assert.Contains(t, out, "06-09") // Last day
	assert.Contains(t, out, "9:00-10:00")
}

func TestView_ShowsScheduledTaskTitleInCell(t *testing.T) {
	m := sizedModel(t)

	var cmd tea.Cmd
	m, cmd = press(t, m, "s") // Schedule selected task into day 0, slot 0
	m = drain(t, m, cmd)

	out := m.View()
	assert.Contains(t, out, "Write rep…") // Truncated to the cell width
}

func TestView_ErrorLine(t *testing.T) {
	m := sizedModel(t)
	m.err = assert.AnError

	assert.Contains(t, m.View(), "Error: ")
}

func TestView_InputPrompt(t *testing.T) {
	m := sizedModel(t)

	m, _ = press(t, m, "a")

	assert.Contains(t, m.View(), "New task:")
}

func TestView_ConfirmPrompt(t *testing.T) {
	m := sizedModel(t)

	m, _ = press(t, m, "x")

	assert.Contains(t, m.View(), "Delete 240601_090000?")
}

func TestView_Help(t *testing.T) {
	m := sizedModel(t)

	m, _ = press(t, m, "?")

	out := m.View()
	assert.Contains(t, out, "Help")
	assert.Contains(t, out, "prev week")
	assert.Contains(t, out, "unschedule")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "exact", truncate("exact", 5))
	assert.Equal(t, "long…", truncate("longer", 5))
}

func TestPad(t *testing.T) {
	assert.Equal(t, "ab  ", pad("ab", 4))
	assert.Equal(t, "abcd", pad("abcd", 4))
	assert.Equal(t, "abcde", pad("abcde", 4))
}
