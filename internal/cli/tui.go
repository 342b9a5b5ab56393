package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/tarunark/weekplan/internal/app"
	"github.com/tarunark/weekplan/internal/tui"
)

// launchTUIFunc is a function variable for launching the TUI, allowing it to
// be replaced in tests.
var launchTUIFunc = launchTUI

// launchTUI runs the interactive weekly planner.
func launchTUI(_ *cobra.Command, c *app.Container) error {
	p := tea.NewProgram(tui.New(c), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// newTUICommand creates the tui command for launching the interactive TUI.
// Running `weekplan` without arguments does the same.
func newTUICommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tui",
		Short:   "Open the interactive weekly planner",
		GroupID: groupSchedule,
		Long:    `Open the terminal UI: the task tree on the left, the weekly slot grid on the right.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return launchTUIFunc(cmd, c)
		},
	}
	return cmd
}
