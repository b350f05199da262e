package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/remind/internal/ports/primary"
	"github.com/example/remind/internal/wire"
)

// AlarmCmd returns the alarm command
func AlarmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alarm",
		Short: "Manage reminder alarms",
		Long:  `Add and remove time-based alarms on a reminder.`,
	}

	cmd.AddCommand(alarmAddCmd())
	cmd.AddCommand(alarmRemoveCmd())

	return cmd
}

func alarmAddCmd() *cobra.Command {
	var (
		listName      string
		minutesBefore int
		absoluteDate  string
	)

	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Add an alarm to a reminder",
		Long: `Add an alarm to a reminder located by partial title match.

Exactly one variant must be given: --minutes-before for an offset
against the due date (the reminder must have one), or --absolute-date
with a YYYY-MM-DD HH:MM instant.

Examples:
  remind alarm add "buy milk" --minutes-before 30
  remind alarm add dentist --absolute-date "2026-04-01 08:00"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			r, err := wire.ReminderService().AddAlarm(ctx, primary.AddAlarmRequest{
				Name:          args[0],
				ListName:      listName,
				MinutesBefore: minutesBefore,
				AbsoluteDate:  absoluteDate,
			})
			if err != nil {
				return err
			}

			fmt.Printf("✓ Added alarm to: %s (%d alarm(s) total)\n", r.Title, len(r.Alarms))
			return nil
		},
	}

	cmd.Flags().StringVarP(&listName, "list", "l", "", "Restrict lookup to matching lists")
	cmd.Flags().IntVarP(&minutesBefore, "minutes-before", "m", 0, "Minutes before the due date")
	cmd.Flags().StringVarP(&absoluteDate, "absolute-date", "d", "", "Absolute instant (YYYY-MM-DD HH:MM)")

	return cmd
}

func alarmRemoveCmd() *cobra.Command {
	var listName string

	cmd := &cobra.Command{
		Use:   "remove [name]",
		Short: "Remove all time-based alarms from a reminder",
		Long: `Remove every relative and absolute alarm from a reminder. Location
triggers are left in place; use "remind location remove" for those.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			resp, err := wire.ReminderService().RemoveAlarms(ctx, args[0], listName)
			if err != nil {
				return err
			}

			if resp.Removed == 0 {
				fmt.Printf("No alarms on: %s\n", resp.Reminder.Title)
				return nil
			}

			fmt.Printf("✓ Removed %d alarm(s) from: %s\n", resp.Removed, resp.Reminder.Title)
			return nil
		},
	}

	cmd.Flags().StringVarP(&listName, "list", "l", "", "Restrict lookup to matching lists")

	return cmd
}
