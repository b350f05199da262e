package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/remind/internal/wire"
)

// TagCmd returns the tag command
func TagCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tag",
		Short: "Manage reminder tags",
		Long:  `Add #tags to reminders. Tags live inside the title text.`,
	}

	cmd.AddCommand(tagAddCmd())

	return cmd
}

func tagAddCmd() *cobra.Command {
	var listName string

	cmd := &cobra.Command{
		Use:   "add [name] [tag]",
		Short: "Add a #tag to a reminder's title",
		Long: `Append a #tag to a reminder located by partial title match.

The leading '#' is optional. Adding a tag the title already carries is
a no-op.

Examples:
  remind tag add "buy milk" errands
  remind tag add "prepare slides" "#work"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			resp, err := wire.ReminderService().AddTag(ctx, args[0], listName, args[1])
			if err != nil {
				return err
			}

			if resp.AlreadyExists {
				fmt.Printf("Tag %s already on: %s\n", resp.Tag, resp.Reminder.Title)
				return nil
			}

			fmt.Printf("✓ Added %s: %s\n", resp.Tag, resp.Reminder.Title)
			return nil
		},
	}

	cmd.Flags().StringVarP(&listName, "list", "l", "", "Restrict lookup to matching lists")

	return cmd
}

// SubtaskCmd returns the subtask command
func SubtaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subtask",
		Short: "Manage reminder subtasks",
		Long:  `Add checklist lines to the subtask section of a reminder's notes.`,
	}

	cmd.AddCommand(subtaskAddCmd())

	return cmd
}

func subtaskAddCmd() *cobra.Command {
	var listName string

	cmd := &cobra.Command{
		Use:   "add [name] [text]",
		Short: "Add a subtask to a reminder",
		Long: `Append a checkbox line to a reminder's notes, creating the subtask
section if it is absent.

Examples:
  remind subtask add "plan trip" "book hotel"
  remind subtask add "plan trip" "book flights"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			r, err := wire.ReminderService().AddSubtask(ctx, args[0], listName, args[1])
			if err != nil {
				return err
			}

			fmt.Printf("✓ Added subtask to: %s\n", r.Title)
			return nil
		},
	}

	cmd.Flags().StringVarP(&listName, "list", "l", "", "Restrict lookup to matching lists")

	return cmd
}
