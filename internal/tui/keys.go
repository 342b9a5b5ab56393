package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the TUI.
type KeyMap struct {
	// Navigation
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	PrevWeek key.Binding
	NextWeek key.Binding
	Switch   key.Binding // Switch focus between panes

	// Task management
	New      key.Binding // Create new task
	Done     key.Binding // Mark task completed
	Delete   key.Binding // Delete task
	Priority key.Binding // Cycle priority

	// Schedule
	Schedule   key.Binding // Put selected task into selected cell
	Unschedule key.Binding // Clear selected cell

	// View
	Refresh key.Binding
	Help    key.Binding

	// General
	Quit    key.Binding
	Escape  key.Binding
	Confirm key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		PrevWeek: key.NewBinding(
			key.WithKeys("p", "["),
			key.WithHelp("p", "prev week"),
		),
		NextWeek: key.NewBinding(
			key.WithKeys("n", "]"),
			key.WithHelp("n", "next week"),
		),
		Switch: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch pane"),
		),
		New: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add task"),
		),
		Done: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "done"),
		),
		Delete: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "delete"),
		),
		Priority: key.NewBinding(
			key.WithKeys("+"),
			key.WithHelp("+", "raise priority"),
		),
		Schedule: key.NewBinding(
			key.WithKeys("s", "enter"),
			key.WithHelp("s", "schedule"),
		),
		Unschedule: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "unschedule"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
	}
}

// ShortHelp returns the keybindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Switch, k.New, k.Schedule, k.Done, k.Help, k.Quit}
}

// FullHelp returns all keybindings grouped by concern.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Switch},
		{k.PrevWeek, k.NextWeek, k.Refresh},
		{k.New, k.Done, k.Delete, k.Priority},
		{k.Schedule, k.Unschedule},
		{k.Help, k.Quit},
	}
}
