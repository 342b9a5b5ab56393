// Package cli provides the command-line interface for weekplan.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tarunark/weekplan/internal/app"
)

// Command group IDs.
const (
	groupTask     = "task"
	groupSchedule = "schedule"
	groupNotes    = "notes"
)

// NewRootCommand creates the root command for weekplan.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "weekplan",
		Short: "Hierarchical task planner with weekly time slots",
		Long: `weekplan tracks a tree of prioritized tasks and assigns them to
fixed time slots of a week. Completed tasks age out on their own:
first archived once their completion week plus a grace period has
passed, then dormant a year after creation.

Run without arguments to open the interactive weekly planner.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return launchTUIFunc(cmd, c)
		},
	}

	root.AddGroup(
		&cobra.Group{ID: groupTask, Title: "Task Commands:"},
		&cobra.Group{ID: groupSchedule, Title: "Schedule Commands:"},
		&cobra.Group{ID: groupNotes, Title: "Notes Commands:"},
	)

	root.AddCommand(
		newNewCommand(c),
		newListCommand(c),
		newShowCommand(c),
		newEditCommand(c),
		newDoneCommand(c),
		newDeleteCommand(c),
		newMoveCommand(c),
		newScheduleCommand(c),
		newUnscheduleCommand(c),
		newWeekCommand(c),
		newSearchCommand(c),
		newRangeCommand(c),
		newNotesCommand(c),
		newDemoCommand(c),
		newTUICommand(c),
	)

	return root
}

// printWarning reports a non-fatal persistence warning on stderr. The
// mutation already happened in memory; the caller's output still prints.
func printWarning(cmd *cobra.Command, warning error) {
	if warning != nil {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", warning)
	}
}
