// Package tui provides the terminal user interface for weekplan.
package tui

// Mode represents the current UI mode.
type Mode int

const (
	ModeNormal        Mode = iota // Default navigation mode
	ModeInputTitle                // Title input mode (for new task)
	ModeConfirmDelete             // Delete confirmation dialog
	ModeHelp                      // Help overlay mode
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeInputTitle:
		return "input_title"
	case ModeConfirmDelete:
		return "confirm_delete"
	case ModeHelp:
		return "help"
	default:
		return "unknown"
	}
}

// IsInputMode returns true if the mode accepts text input.
func (m Mode) IsInputMode() bool {
	return m == ModeInputTitle
}

// Pane identifies the focused half of the main view.
type Pane int

const (
	PaneTasks Pane = iota // Task tree on the left
	PaneWeek              // Week grid on the right
)

// String returns the string representation of the pane.
func (p Pane) String() string {
	if p == PaneWeek {
		return "week"
	}
	return "tasks"
}
