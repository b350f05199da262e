package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/remind/internal/ports/primary"
	"github.com/example/remind/internal/wire"
)

// CreateCmd returns the create command
func CreateCmd() *cobra.Command {
	var (
		listName     string
		dueDate      string
		startDate    string
		notes        string
		priority     string
		reminderURL  string
		alarmMinutes int
	)

	cmd := &cobra.Command{
		Use:   "create [title...]",
		Short: "Create a new reminder",
		Long: `Create a new reminder on a list.

The title may carry #tags anywhere; they are rewritten into canonical
form after the title text. Dates accept YYYY-MM-DD, MM/DD/YYYY,
DD/MM/YYYY, YYYY-MM-DD HH:MM, the keywords today/tomorrow/yesterday,
or relative expressions like "in 3 days". Unparseable optional values
are skipped rather than failing the command.

Examples:
  remind create buy milk --due tomorrow
  remind create "#work prepare slides" --priority high --due "in 2 days"
  remind create call dentist --list Health --alarm 30 --due 2026-04-01`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if listName == "" {
				listName = wire.DefaultListName()
			}

			resp, err := wire.ReminderService().Create(ctx, primary.CreateReminderRequest{
				Name:               strings.Join(args, " "),
				ListName:           listName,
				DueDate:            dueDate,
				StartDate:          startDate,
				Notes:              notes,
				Priority:           priority,
				URL:                reminderURL,
				AlarmMinutesBefore: alarmMinutes,
			})
			if err != nil {
				return err
			}

			fmt.Printf("✓ Created reminder on %s: %s\n", resp.List.Title, resp.Reminder.Title)
			if resp.Reminder.DueDate != nil {
				fmt.Printf("  Due: %s\n", resp.Reminder.DueDate.Format(displayTime))
			}
			if alarmMinutes > 0 && len(resp.Reminder.Alarms) == 0 {
				fmt.Println("  Alarm skipped: reminder has no due date")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&listName, "list", "l", "", "Target list (partial name match)")
	cmd.Flags().StringVarP(&dueDate, "due", "d", "", "Due date")
	cmd.Flags().StringVarP(&startDate, "start", "s", "", "Start date")
	cmd.Flags().StringVarP(&notes, "notes", "n", "", "Notes text")
	cmd.Flags().StringVarP(&priority, "priority", "p", "", "Priority (high/medium/low/none or 0-9)")
	cmd.Flags().StringVarP(&reminderURL, "url", "u", "", "Attached URL")
	cmd.Flags().IntVarP(&alarmMinutes, "alarm", "a", 0, "Relative alarm, minutes before due")

	return cmd
}
