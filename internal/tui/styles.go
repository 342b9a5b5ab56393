package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/tarunark/weekplan/internal/domain"
)

// Colors defines the color palette for the TUI.
var Colors = struct {
	Primary  lipgloss.Color
	Muted    lipgloss.Color
	Error    lipgloss.Color
	Selected lipgloss.Color

	// Priority colors
	Critical lipgloss.Color
	High     lipgloss.Color
	Medium   lipgloss.Color
	Low      lipgloss.Color

	// State colors
	Completed lipgloss.Color
	Archived  lipgloss.Color
}{
	Primary:  lipgloss.Color("#6C5CE7"), // Purple
	Muted:    lipgloss.Color("#636E72"), // Gray
	Error:    lipgloss.Color("#D63031"), // Red
	Selected: lipgloss.Color("#FFEAA7"), // Yellow

	Critical: lipgloss.Color("#D63031"), // Red
	High:     lipgloss.Color("#E17055"), // Orange
	Medium:   lipgloss.Color("#DFE6E9"), // Light gray
	Low:      lipgloss.Color("#74B9FF"), // Light blue

	Completed: lipgloss.Color("#00B894"), // Green
	Archived:  lipgloss.Color("#636E72"), // Gray
}

// Styles holds the lipgloss styles used by the views.
type Styles struct {
	Title        lipgloss.Style
	PaneActive   lipgloss.Style
	PaneInactive lipgloss.Style
	Selected     lipgloss.Style
	Muted        lipgloss.Style
	Error        lipgloss.Style
	Status       lipgloss.Style
	CellEmpty    lipgloss.Style
	CellFilled   lipgloss.Style
	CellSelected lipgloss.Style
}

// DefaultStyles returns the default style set.
func DefaultStyles() Styles {
	border := lipgloss.RoundedBorder()
	return Styles{
		Title:        lipgloss.NewStyle().Bold(true).Foreground(Colors.Primary),
		PaneActive:   lipgloss.NewStyle().Border(border).BorderForeground(Colors.Primary).Padding(0, 1),
		PaneInactive: lipgloss.NewStyle().Border(border).BorderForeground(Colors.Muted).Padding(0, 1),
		Selected:     lipgloss.NewStyle().Foreground(Colors.Selected).Bold(true),
		Muted:        lipgloss.NewStyle().Foreground(Colors.Muted),
		Error:        lipgloss.NewStyle().Foreground(Colors.Error),
		Status:       lipgloss.NewStyle().Foreground(Colors.Muted).Italic(true),
		CellEmpty:    lipgloss.NewStyle().Foreground(Colors.Muted),
		CellFilled:   lipgloss.NewStyle().Foreground(Colors.Medium),
		CellSelected: lipgloss.NewStyle().Foreground(Colors.Selected).Bold(true),
	}
}

// PriorityStyle returns the foreground style for a priority.
func (s Styles) PriorityStyle(p domain.Priority) lipgloss.Style {
	switch p {
	case domain.PriorityCritical:
		return lipgloss.NewStyle().Foreground(Colors.Critical)
	case domain.PriorityHigh:
		return lipgloss.NewStyle().Foreground(Colors.High)
	case domain.PriorityLow:
		return lipgloss.NewStyle().Foreground(Colors.Low)
	default:
		return lipgloss.NewStyle().Foreground(Colors.Medium)
	}
}

// StateStyle returns the foreground style for a lifecycle state.
func (s Styles) StateStyle(st domain.State) lipgloss.Style {
	switch st {
	case domain.StateCompleted:
		return lipgloss.NewStyle().Foreground(Colors.Completed)
	case domain.StateArchived, domain.StateDormant:
		return lipgloss.NewStyle().Foreground(Colors.Archived)
	default:
		return lipgloss.NewStyle()
	}
}
