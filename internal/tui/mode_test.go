package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMode_String(t *testing.T) {
	tests := []struct {
		mode Mode
		want string
	}{
		{ModeNormal, "normal"},
		{ModeInputTitle, "input_title"},
		{ModeConfirmDelete, "confirm_delete"},
		{ModeHelp, "help"},
		{Mode(99), "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.mode.String())
	}
}

func TestMode_IsInputMode(t *testing.T) {
	assert.True(t, ModeInputTitle.IsInputMode())
	assert.False(t, ModeNormal.IsInputMode())
	assert.False(t, ModeConfirmDelete.IsInputMode())
	assert.False(t, ModeHelp.IsInputMode())
}

func TestPane_String(t *testing.T) {
	assert.Equal(t, "tasks", PaneTasks.String())
	assert.Equal(t, "week", PaneWeek.String())
}
