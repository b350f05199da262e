package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/remind/internal/ports/primary"
	"github.com/example/remind/internal/wire"
)

// RecurCmd returns the recur command
func RecurCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recur",
		Short: "Manage recurrence rules",
		Long:  `Add and remove repeat schedules on a reminder.`,
	}

	cmd.AddCommand(recurAddCmd())
	cmd.AddCommand(recurRemoveCmd())

	return cmd
}

func recurAddCmd() *cobra.Command {
	var (
		listName  string
		frequency string
		interval  int
		endDate   string
		count     int
	)

	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Add a recurrence rule to a reminder",
		Long: `Add a repeat schedule to a reminder located by partial title match.

Frequency is one of daily, weekly, monthly, or yearly. Without an end
date or occurrence count the recurrence is unbounded.

Examples:
  remind recur add "water plants" --frequency weekly
  remind recur add standup --frequency daily --interval 1 --until 2026-12-31
  remind recur add "pay rent" --frequency monthly --count 12`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			r, err := wire.ReminderService().AddRecurrence(ctx, primary.AddRecurrenceRequest{
				Name:            args[0],
				ListName:        listName,
				Frequency:       frequency,
				Interval:        interval,
				EndDate:         endDate,
				OccurrenceCount: count,
			})
			if err != nil {
				return err
			}

			fmt.Printf("✓ Added recurrence to: %s (%d rule(s) total)\n", r.Title, len(r.RecurrenceRules))
			return nil
		},
	}

	cmd.Flags().StringVarP(&listName, "list", "l", "", "Restrict lookup to matching lists")
	cmd.Flags().StringVarP(&frequency, "frequency", "f", "", "daily, weekly, monthly, or yearly")
	cmd.Flags().IntVarP(&interval, "interval", "i", 1, "Repeat every N periods")
	cmd.Flags().StringVar(&endDate, "until", "", "Stop repeating after this date")
	cmd.Flags().IntVarP(&count, "count", "c", 0, "Stop after N occurrences")
	cmd.MarkFlagRequired("frequency")

	return cmd
}

func recurRemoveCmd() *cobra.Command {
	var listName string

	cmd := &cobra.Command{
		Use:   "remove [name]",
		Short: "Remove all recurrence rules from a reminder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			resp, err := wire.ReminderService().RemoveRecurrences(ctx, args[0], listName)
			if err != nil {
				return err
			}

			if resp.Removed == 0 {
				fmt.Printf("No recurrence rules on: %s\n", resp.Reminder.Title)
				return nil
			}

			fmt.Printf("✓ Removed %d recurrence rule(s) from: %s\n", resp.Removed, resp.Reminder.Title)
			return nil
		},
	}

	cmd.Flags().StringVarP(&listName, "list", "l", "", "Restrict lookup to matching lists")

	return cmd
}
