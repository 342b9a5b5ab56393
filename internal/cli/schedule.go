package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tarunark/weekplan/internal/app"
	"github.com/tarunark/weekplan/internal/usecase"
)

// newScheduleCommand creates the schedule command for slot assignments.
func newScheduleCommand(c *app.Container) *cobra.Command {
	var opts struct {
		ToDate   string
		FromDate string
		Slot     int
		ToSlot   int
		FromSlot int
	}

	cmd := &cobra.Command{
		Use:     "schedule <id> <date>",
		Short:   "Assign a task to a weekly slot",
		GroupID: groupSchedule,
		Args:    cobra.ExactArgs(2),
		Long: `Put a task into a (date, slot) cell of the weekly grid. A cell holds
one task; scheduling over an occupied cell replaces the occupant.

Examples:
  # Put a task into slot 2 of 2024-06-03
  weekplan schedule 240601_090000 2024-06-03 --slot 2

  # Move an assignment to another cell
  weekplan schedule 240601_090000 2024-06-05 --slot 4 --from-date 2024-06-03 --from-slot 2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.FromDate != "" {
				out, err := c.MoveScheduledUseCase().Execute(cmd.Context(), usecase.MoveScheduledInput{
					TaskID:   args[0],
					FromDate: opts.FromDate,
					FromSlot: opts.FromSlot,
					ToDate:   args[1],
					ToSlot:   opts.Slot,
				})
				if err != nil {
					return err
				}
				printWarning(cmd, out.Warning)
				if !out.Moved {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task %s not found\n", args[0])
					return nil
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Moved task %s to %s slot %d\n", args[0], args[1], opts.Slot)
				return nil
			}

			out, err := c.ScheduleTaskUseCase().Execute(cmd.Context(), usecase.ScheduleTaskInput{
				TaskID: args[0],
				Date:   args[1],
				Slot:   opts.Slot,
			})
			if err != nil {
				return err
			}
			printWarning(cmd, out.Warning)

			if !out.Scheduled {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task %s not found\n", args[0])
				return nil
			}
			if out.Displaced != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Replaced task %s in %s slot %d\n", out.Displaced, args[1], opts.Slot)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Scheduled task %s at %s slot %d\n", args[0], args[1], opts.Slot)
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.Slot, "slot", 0, "Slot index within the day")
	cmd.Flags().StringVar(&opts.FromDate, "from-date", "", "Move from this date instead of adding a new assignment")
	cmd.Flags().IntVar(&opts.FromSlot, "from-slot", 0, "Move from this slot (with --from-date)")

	return cmd
}

// newUnscheduleCommand creates the unschedule command for clearing slots.
func newUnscheduleCommand(c *app.Container) *cobra.Command {
	var slot int

	cmd := &cobra.Command{
		Use:     "unschedule <date>",
		Short:   "Clear a weekly slot",
		GroupID: groupSchedule,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.UnscheduleTaskUseCase().Execute(cmd.Context(), usecase.UnscheduleTaskInput{
				Date: args[0],
				Slot: slot,
			})
			if err != nil {
				return err
			}
			printWarning(cmd, out.Warning)

			if !out.Cleared {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Nothing scheduled at %s slot %d\n", args[0], slot)
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Cleared %s slot %d\n", args[0], slot)
			return nil
		},
	}

	cmd.Flags().IntVar(&slot, "slot", 0, "Slot index within the day")

	return cmd
}

// newWeekCommand creates the week command for displaying the weekly grid.
func newWeekCommand(c *app.Container) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:     "week",
		Short:   "Show the weekly schedule grid",
		GroupID: groupSchedule,
		Long: `Display the slot assignments of a week. Without --date the current
week is shown.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ShowWeekUseCase().Execute(cmd.Context(), usecase.ShowWeekInput{Date: date})
			if err != nil {
				return err
			}

			printWeek(cmd.OutOrStdout(), out, c.Config.Schedule.Labels)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Any date inside the week to show (YYYY-MM-DD)")

	return cmd
}

// printWeek prints the weekly grid, one row per day, slots in index order.
func printWeek(w io.Writer, out *usecase.ShowWeekOutput, labels []string) {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	defer func() { _ = tw.Flush() }()

	_, _ = fmt.Fprintln(tw, "DATE\tSLOT\tTIME\tTASK")

	for _, date := range out.Dates {
		cells := out.Assignments[date]
		if len(cells) == 0 {
			_, _ = fmt.Fprintf(tw, "%s\t-\t-\t-\n", date)
			continue
		}
		for slot := 0; slot < len(labels); slot++ {
			key := fmt.Sprintf("%d", slot)
			id, ok := cells[key]
			if !ok {
				continue
			}
			title := id
			if task, ok := out.Tasks[id]; ok {
				title = task.Title
			}
			label := "-"
			if slot < len(labels)-1 {
				label = labels[slot]
			}
			_, _ = fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", date, slot, label, title)
		}
	}
}
