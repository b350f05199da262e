package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/remind/internal/ports/primary"
	"github.com/example/remind/internal/wire"
)

// ListCmd returns the list command
func ListCmd() *cobra.Command {
	var (
		uncompleted bool
		priority    string
		hasURL      bool
		hasAlarms   bool
	)

	cmd := &cobra.Command{
		Use:   "list [list-name]",
		Short: "Show reminders grouped by list",
		Long: `Show reminders grouped by list, ranked by urgency.

Incomplete reminders come first, then higher priority, then earlier
due date, with no-priority and no-due-date records last. With a list
name only the first matching list is shown; otherwise every list.

Examples:
  remind list
  remind list groceries
  remind list --uncompleted --priority high`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var listName string
			if len(args) > 0 {
				listName = args[0]
			}

			groups, err := wire.ReminderService().List(ctx, primary.ListRemindersRequest{
				ListName:        listName,
				UncompletedOnly: uncompleted,
				Priority:        priority,
				HasURL:          hasURL,
				HasAlarms:       hasAlarms,
			})
			if err != nil {
				return err
			}

			for i, group := range groups {
				if i > 0 {
					fmt.Println()
				}
				fmt.Println(color.New(color.Bold).Sprintf("%s (%d)", group.List.Title, len(group.Reminders)))
				if len(group.Reminders) == 0 {
					fmt.Println("  (empty)")
					continue
				}
				for _, r := range group.Reminders {
					renderReminderLine(r)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&uncompleted, "uncompleted", "u", false, "Only incomplete reminders")
	cmd.Flags().StringVarP(&priority, "priority", "p", "", "Only the given priority level")
	cmd.Flags().BoolVar(&hasURL, "has-url", false, "Only reminders with a URL")
	cmd.Flags().BoolVar(&hasAlarms, "has-alarms", false, "Only reminders with alarms")

	return cmd
}
