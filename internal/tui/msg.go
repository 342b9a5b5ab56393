package tui

import "github.com/tarunark/weekplan/internal/usecase"

// Msg is the sealed interface for all TUI messages.
// All message types must implement the sealed() method.
type Msg interface {
	sealed()
}

// MsgTasksLoaded is sent when the task tree has been loaded.
type MsgTasksLoaded struct {
	Tasks []usecase.TaskNode
}

func (MsgTasksLoaded) sealed() {}

// MsgWeekLoaded is sent when the week grid has been loaded.
type MsgWeekLoaded struct {
	Week *usecase.ShowWeekOutput
}

func (MsgWeekLoaded) sealed() {}

// MsgStatus carries a transient status line message.
type MsgStatus struct {
	Text string
}

func (MsgStatus) sealed() {}

// MsgError is sent when an operation fails.
type MsgError struct {
	Err error
}

func (MsgError) sealed() {}
