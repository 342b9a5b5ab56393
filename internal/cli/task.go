package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tarunark/weekplan/internal/app"
	"github.com/tarunark/weekplan/internal/domain"
	"github.com/tarunark/weekplan/internal/usecase"
)

// newNewCommand creates the new command for creating tasks.
func newNewCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Title       string
		Description string
		Priority    string
		ParentID    string
		From        string
		Tags        []string
		DryRun      bool
	}

	cmd := &cobra.Command{
		Use:     "new",
		Short:   "Create a new task",
		GroupID: groupTask,
		Long: `Create a new task, optionally under a parent.

Examples:
  # Create a root task
  weekplan new --title "Quarterly report"

  # Create a sub-task with priority and tags
  weekplan new --title "Collect figures" --parent 240601_090000 --priority High --tag work

  # Create several tasks from a YAML file
  weekplan new --from tasks.yaml

  # Preview a file without creating anything
  weekplan new --from tasks.yaml --dry-run

File format for --from (a YAML list; parent is the 1-based index of an
earlier entry in the file, or the id of an existing task):
  - title: Plan sprint
    priority: High
    tags: [work]
  - title: Write tickets
    parent: "1"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.From != "" {
				return createTasksFromFile(cmd, c, opts.From, opts.DryRun)
			}

			if opts.Title == "" {
				return fmt.Errorf("required flag(s) \"title\" not set")
			}

			input := usecase.CreateTaskInput{
				Title:       opts.Title,
				Description: opts.Description,
				Priority:    opts.Priority,
				Tags:        opts.Tags,
			}
			if opts.ParentID != "" {
				input.ParentID = &opts.ParentID
			}

			out, err := c.CreateTaskUseCase().Execute(cmd.Context(), input)
			if err != nil {
				return err
			}
			printWarning(cmd, out.Warning)

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created task %s\n", out.TaskID)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Title, "title", "", "Task title (required unless --from is used)")
	cmd.Flags().StringVar(&opts.Description, "body", "", "Task description")
	cmd.Flags().StringVar(&opts.ParentID, "parent", "", "Parent task ID (creates a sub-task)")
	cmd.Flags().StringVar(&opts.Priority, "priority", "", "Priority: Low, Medium, High or Critical (default Medium)")
	cmd.Flags().StringArrayVar(&opts.Tags, "tag", nil, "Tags (can specify multiple)")
	cmd.Flags().StringVar(&opts.From, "from", "", "Create tasks from a YAML file")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Preview tasks without creating (requires --from)")

	return cmd
}

// createTasksFromFile creates tasks from a YAML file.
func createTasksFromFile(cmd *cobra.Command, c *app.Container, filePath string, dryRun bool) error {
	content, err := os.ReadFile(filePath) //nolint:gosec // Path comes from the user's own flag
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	out, err := c.CreateTasksFromFileUseCase().Execute(cmd.Context(), usecase.CreateTasksFromFileInput{
		Content: content,
		DryRun:  dryRun,
	})
	if err != nil {
		return err
	}
	printWarning(cmd, out.Warning)

	w := cmd.OutOrStdout()
	if dryRun {
		_, _ = fmt.Fprintln(w, "Dry run - tasks that would be created:")
		for i, task := range out.Tasks {
			_, _ = fmt.Fprintf(w, "  %d. %s\n", i+1, task.Title)
		}
		return nil
	}

	for _, task := range out.Tasks {
		if task.ParentID != nil {
			_, _ = fmt.Fprintf(w, "Created task %s: %s (under %s)\n", task.ID, task.Title, *task.ParentID)
		} else {
			_, _ = fmt.Fprintf(w, "Created task %s: %s\n", task.ID, task.Title)
		}
	}
	_, _ = fmt.Fprintf(w, "\nCreated %d task(s)\n", len(out.Tasks))
	return nil
}

// newListCommand creates the list command for listing tasks.
func newListCommand(c *app.Container) *cobra.Command {
	var opts struct {
		ParentID string
		Tree     bool
	}

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List tasks",
		GroupID: groupTask,
		Long: `Display tasks ordered by descending priority; equal priorities keep
their creation order. Listing also advances the archival lifecycle.

Examples:
  # List root tasks
  weekplan list

  # List the whole tree
  weekplan list --tree

  # List the children of one task
  weekplan list --parent 240601_090000`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			input := usecase.ListTasksInput{All: opts.Tree}
			if opts.ParentID != "" {
				input.ParentID = &opts.ParentID
			}

			out, err := c.ListTasksUseCase().Execute(cmd.Context(), input)
			if err != nil {
				return err
			}

			printTaskList(cmd.OutOrStdout(), out.Tasks)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.ParentID, "parent", "", "Show only children of this task")
	cmd.Flags().BoolVarP(&opts.Tree, "tree", "t", false, "Show the full subtree, indented by depth")

	return cmd
}

// printTaskList prints tasks in TSV format.
func printTaskList(w io.Writer, nodes []usecase.TaskNode) {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	defer func() { _ = tw.Flush() }()

	_, _ = fmt.Fprintln(tw, "ID\tPRIORITY\tSTATE\tTAGS\tTITLE")

	for _, n := range nodes {
		task := n.Task

		tags := "-"
		if len(task.Tags) > 0 {
			tags = "[" + strings.Join(task.Tags, ",") + "]"
		}

		indent := strings.Repeat("  ", n.Depth)
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s%s\n",
			task.ID, task.Priority, task.State.Display(), tags, indent, task.Title)
	}
}

// newShowCommand creates the show command for displaying one task.
func newShowCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "show <id>",
		Short:   "Show a task in full, including notes",
		GroupID: groupTask,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.ShowTaskUseCase().Execute(cmd.Context(), usecase.ShowTaskInput{TaskID: args[0]})
			if err != nil {
				return err
			}
			if out.Task == nil {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task %s not found\n", args[0])
				return nil
			}

			printTask(cmd.OutOrStdout(), out.Task, out.Slots)
			return nil
		},
	}
	return cmd
}

// printTask prints one task with all fields.
func printTask(w io.Writer, task *domain.Task, slots []domain.SlotRef) {
	_, _ = fmt.Fprintf(w, "Task %s: %s\n", task.ID, task.Title)
	_, _ = fmt.Fprintf(w, "  Priority: %s\n", task.Priority)
	_, _ = fmt.Fprintf(w, "  State:    %s\n", task.State.Display())
	if task.ParentID != nil {
		_, _ = fmt.Fprintf(w, "  Parent:   %s\n", *task.ParentID)
	}
	if len(task.Tags) > 0 {
		_, _ = fmt.Fprintf(w, "  Tags:     [%s]\n", strings.Join(task.Tags, ", "))
	}
	_, _ = fmt.Fprintf(w, "  Created:  %s\n", domain.FormatDate(task.Created))
	if task.IsCompleted() {
		_, _ = fmt.Fprintf(w, "  Completed: %s\n", domain.FormatDate(task.Completed))
	}
	if task.Description != "" {
		_, _ = fmt.Fprintf(w, "  Description: %s\n", task.Description)
	}
	for _, s := range slots {
		_, _ = fmt.Fprintf(w, "  Scheduled: %s slot %d\n", s.Date, s.Slot)
	}
	if task.Notes != "" {
		_, _ = fmt.Fprintf(w, "\n%s\n", task.Notes)
	}
}

// newEditCommand creates the edit command for updating task fields.
func newEditCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Title       string
		Description string
		Priority    string
		Tags        []string
	}

	cmd := &cobra.Command{
		Use:     "edit <id>",
		Short:   "Edit task fields",
		GroupID: groupTask,
		Args:    cobra.ExactArgs(1),
		Long: `Change task fields. Only the provided flags are touched.

Examples:
  weekplan edit 240601_090000 --title "New title"
  weekplan edit 240601_090000 --priority Critical --tag urgent`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch domain.TaskPatch
			if cmd.Flags().Changed("title") {
				patch.Title = &opts.Title
			}
			if cmd.Flags().Changed("body") {
				patch.Description = &opts.Description
			}
			if cmd.Flags().Changed("priority") {
				p, ok := domain.ParsePriority(opts.Priority)
				if !ok {
					return domain.ErrInvalidPriority
				}
				patch.Priority = &p
			}
			if cmd.Flags().Changed("tag") {
				patch.Tags = &opts.Tags
			}

			out, err := c.UpdateTaskUseCase().Execute(cmd.Context(), usecase.UpdateTaskInput{
				TaskID: args[0],
				Patch:  patch,
			})
			if err != nil {
				return err
			}
			printWarning(cmd, out.Warning)

			if !out.Updated {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task %s not found\n", args[0])
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated task %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Title, "title", "", "New title")
	cmd.Flags().StringVar(&opts.Description, "body", "", "New description")
	cmd.Flags().StringVar(&opts.Priority, "priority", "", "New priority: Low, Medium, High or Critical")
	cmd.Flags().StringArrayVar(&opts.Tags, "tag", nil, "Replacement tags (can specify multiple)")

	return cmd
}

// newDoneCommand creates the done command for completing tasks.
func newDoneCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "done <id>",
		Short:   "Mark a task completed",
		GroupID: groupTask,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.CompleteTaskUseCase().Execute(cmd.Context(), usecase.CompleteTaskInput{TaskID: args[0]})
			if err != nil {
				return err
			}
			printWarning(cmd, out.Warning)

			if !out.Completed {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task %s not completed (unknown or already archived)\n", args[0])
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Completed task %s\n", args[0])
			return nil
		},
	}
	return cmd
}

// newDeleteCommand creates the delete command for removing tasks.
func newDeleteCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "delete <id>",
		Short:   "Delete a task; its children become root tasks",
		GroupID: groupTask,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.DeleteTaskUseCase().Execute(cmd.Context(), usecase.DeleteTaskInput{TaskID: args[0]})
			if err != nil {
				return err
			}
			printWarning(cmd, out.Warning)

			if !out.Deleted {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task %s not found\n", args[0])
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted task %s\n", args[0])
			return nil
		},
	}
	return cmd
}

// newMoveCommand creates the move command for re-parenting tasks.
func newMoveCommand(c *app.Container) *cobra.Command {
	var parentID string

	cmd := &cobra.Command{
		Use:     "move <id>",
		Short:   "Move a task under a new parent (or to root)",
		GroupID: groupTask,
		Args:    cobra.ExactArgs(1),
		Long: `Re-parent a task. Without --parent the task becomes a root task.
A move that would make the task its own ancestor is rejected.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			input := usecase.MoveTaskInput{TaskID: args[0]}
			if parentID != "" {
				input.NewParentID = &parentID
			}

			out, err := c.MoveTaskUseCase().Execute(cmd.Context(), input)
			if err != nil {
				return err
			}
			printWarning(cmd, out.Warning)

			if !out.Moved {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task %s not found\n", args[0])
				return nil
			}
			if parentID != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Moved task %s under %s\n", args[0], parentID)
			} else {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Moved task %s to root\n", args[0])
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&parentID, "parent", "", "New parent task ID (empty = root)")

	return cmd
}

// newDemoCommand creates the hidden demo command for seeding sample tasks.
func newDemoCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:    "demo",
		Short:  "Seed sample tasks covering every priority",
		Hidden: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.SeedDemoUseCase().Execute(cmd.Context(), usecase.SeedDemoInput{})
			if err != nil {
				return err
			}
			printWarning(cmd, out.Warning)

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created %d demo tasks\n", len(out.TaskIDs))
			return nil
		},
	}
	return cmd
}
