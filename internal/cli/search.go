package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/remind/internal/ports/primary"
	"github.com/example/remind/internal/wire"
)

// SearchCmd returns the search command
func SearchCmd() *cobra.Command {
	var (
		listName    string
		priority    string
		tag         string
		hasURL      bool
		hasNotes    bool
		hasAlarms   bool
		overdue     bool
		completed   bool
		uncompleted bool
		dueBefore   string
		dueAfter    string
	)

	cmd := &cobra.Command{
		Use:   "search [query...]",
		Short: "Search reminders across lists",
		Long: `Search reminders with AND-combined filters, ranked by urgency.

The query matches title and notes case-insensitively. Date filters are
strict: a reminder without a due date never matches --due-before or
--due-after. Unparseable date and priority filters are skipped.

Examples:
  remind search dentist
  remind search --tag work --uncompleted
  remind search --overdue --priority high
  remind search milk --due-before "in 3 days"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			found, err := wire.ReminderService().Search(ctx, primary.SearchRemindersRequest{
				Query:       strings.Join(args, " "),
				ListName:    listName,
				Priority:    priority,
				Tag:         tag,
				HasURL:      hasURL,
				HasNotes:    hasNotes,
				HasAlarms:   hasAlarms,
				Overdue:     overdue,
				Completed:   completed,
				Uncompleted: uncompleted,
				DueBefore:   dueBefore,
				DueAfter:    dueAfter,
			})
			if err != nil {
				return err
			}

			if len(found) == 0 {
				fmt.Println("No reminders matched")
				return nil
			}

			fmt.Printf("Found %d reminder(s):\n", len(found))
			for _, r := range found {
				renderReminderLine(r)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&listName, "list", "l", "", "Restrict to matching lists")
	cmd.Flags().StringVarP(&priority, "priority", "p", "", "Exact priority level")
	cmd.Flags().StringVarP(&tag, "tag", "t", "", "Require a #tag")
	cmd.Flags().BoolVar(&hasURL, "has-url", false, "Only reminders with a URL")
	cmd.Flags().BoolVar(&hasNotes, "has-notes", false, "Only reminders with notes")
	cmd.Flags().BoolVar(&hasAlarms, "has-alarms", false, "Only reminders with alarms")
	cmd.Flags().BoolVar(&overdue, "overdue", false, "Only overdue reminders")
	cmd.Flags().BoolVar(&completed, "completed", false, "Only completed reminders")
	cmd.Flags().BoolVarP(&uncompleted, "uncompleted", "u", false, "Only incomplete reminders")
	cmd.Flags().StringVar(&dueBefore, "due-before", "", "Due strictly before the date")
	cmd.Flags().StringVar(&dueAfter, "due-after", "", "Due strictly after the date")

	return cmd
}
