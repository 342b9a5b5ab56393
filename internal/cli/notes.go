package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tarunark/weekplan/internal/app"
	"github.com/tarunark/weekplan/internal/usecase"
)

// newNotesCommand creates the notes command group.
func newNotesCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "notes",
		Short:   "Read and write per-task notes",
		GroupID: groupNotes,
		Long: `Notes are long-form text kept outside the task store, one blob per
task. They are only written on an explicit commit and can be restored
to the last committed text at any time.`,
	}

	cmd.AddCommand(
		newNotesShowCommand(c),
		newNotesCommitCommand(c),
		newNotesRestoreCommand(c),
		newNotesHistoryCommand(c),
	)

	return cmd
}

// newNotesShowCommand creates the notes show command.
func newNotesShowCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print the committed notes of a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.RestoreNotesUseCase().Execute(cmd.Context(), usecase.RestoreNotesInput{TaskID: args[0]})
			if err != nil {
				return err
			}
			if !out.Restored {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task %s not found\n", args[0])
				return nil
			}
			if out.Text == "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task %s has no notes\n", args[0])
				return nil
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Text)
			return nil
		},
	}
}

// newNotesCommitCommand creates the notes commit command.
func newNotesCommitCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Text string
		File string
	}

	cmd := &cobra.Command{
		Use:   "commit <id>",
		Short: "Replace the notes of a task",
		Args:  cobra.ExactArgs(1),
		Long: `Write the notes blob for a task. The text comes from --text, from a
file with --file, or from stdin when neither is given.

Examples:
  weekplan notes commit 240601_090000 --text "Agenda: budget review"
  weekplan notes commit 240601_090000 --file minutes.txt
  cat minutes.txt | weekplan notes commit 240601_090000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := resolveNotesText(cmd.InOrStdin(), opts.Text, opts.File)
			if err != nil {
				return err
			}

			out, err := c.CommitNotesUseCase().Execute(cmd.Context(), usecase.CommitNotesInput{
				TaskID: args[0],
				Text:   text,
			})
			if err != nil {
				return err
			}
			if !out.Committed {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task %s not found\n", args[0])
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Committed notes for task %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Text, "text", "", "Notes text")
	cmd.Flags().StringVar(&opts.File, "file", "", "Read notes text from a file")

	return cmd
}

// resolveNotesText picks the notes source: flag text, file, then stdin.
func resolveNotesText(stdin io.Reader, text, file string) (string, error) {
	if text != "" {
		return text, nil
	}
	if file != "" {
		content, err := os.ReadFile(file) //nolint:gosec // Path comes from the user's own flag
		if err != nil {
			return "", fmt.Errorf("read file: %w", err)
		}
		return string(content), nil
	}
	content, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimRight(string(content), "\n"), nil
}

// newNotesRestoreCommand creates the notes restore command.
func newNotesRestoreCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "restore <id>",
		Short: "Discard unsaved edits and reload the committed notes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.RestoreNotesUseCase().Execute(cmd.Context(), usecase.RestoreNotesInput{TaskID: args[0]})
			if err != nil {
				return err
			}
			if !out.Restored {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task %s not found\n", args[0])
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Restored notes for task %s\n", args[0])
			return nil
		},
	}
}

// newNotesHistoryCommand creates the notes history command.
func newNotesHistoryCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "history <id>",
		Short: "List committed notes revisions, newest first",
		Args:  cobra.ExactArgs(1),
		Long: `List prior notes revisions. Requires the versioned notes backend
([notes] history = true in weekplan.toml).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.NotesHistoryUseCase().Execute(cmd.Context(), usecase.NotesHistoryInput{TaskID: args[0]})
			if err != nil {
				return err
			}
			if !out.Supported {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "The configured notes backend keeps no history (enable [notes] history)")
				return nil
			}
			if len(out.Revisions) == 0 {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "No notes revisions for task %s\n", args[0])
				return nil
			}
			for _, rev := range out.Revisions {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %s\n",
					rev.Time.Format("2006-01-02 15:04:05"), rev.Ref[:min(8, len(rev.Ref))], rev.Message)
			}
			return nil
		},
	}
}
