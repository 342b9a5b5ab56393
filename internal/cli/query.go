package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tarunark/weekplan/internal/app"
	"github.com/tarunark/weekplan/internal/usecase"
)

// newSearchCommand creates the search command.
func newSearchCommand(c *app.Container) *cobra.Command {
	var includeDormant bool

	cmd := &cobra.Command{
		Use:     "search <keyword>",
		Short:   "Search tasks by title, description and notes",
		GroupID: groupTask,
		Args:    cobra.ExactArgs(1),
		Long: `Case-insensitive substring search over title, description and the
committed notes text. Dormant tasks are skipped unless --dormant is
given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.SearchTasksUseCase().Execute(cmd.Context(), usecase.SearchTasksInput{
				Keyword:        args[0],
				IncludeDormant: includeDormant,
			})
			if err != nil {
				return err
			}

			if len(out.Tasks) == 0 {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "No tasks match %q\n", args[0])
				return nil
			}
			nodes := make([]usecase.TaskNode, 0, len(out.Tasks))
			for _, t := range out.Tasks {
				nodes = append(nodes, usecase.TaskNode{Task: t})
			}
			printTaskList(cmd.OutOrStdout(), nodes)
			return nil
		},
	}

	cmd.Flags().BoolVar(&includeDormant, "dormant", false, "Also match dormant tasks")

	return cmd
}

// newRangeCommand creates the range command for notes-in-interval queries.
func newRangeCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "range <from> <to>",
		Short:   "List tasks with notes created or completed in [from, to)",
		GroupID: groupNotes,
		Args:    cobra.ExactArgs(2),
		Long: `List tasks whose creation or completion date falls in the half-open
interval [from, to) and which currently have non-empty notes. Dormant
tasks are never included.

Example:
  weekplan range 2024-06-03 2024-06-10`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.NotesInRangeUseCase().Execute(cmd.Context(), usecase.NotesInRangeInput{
				From: args[0],
				To:   args[1],
			})
			if err != nil {
				return err
			}

			if len(out.Tasks) == 0 {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "No tasks with notes in [%s, %s)\n", args[0], args[1])
				return nil
			}
			for _, t := range out.Tasks {
				preview := strings.SplitN(t.Notes, "\n", 2)[0]
				if len(preview) > 60 {
					preview = preview[:60] + "..."
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s  %-10s  %s: %s\n", t.ID, t.Priority, t.Title, preview)
			}
			return nil
		},
	}
	return cmd
}
