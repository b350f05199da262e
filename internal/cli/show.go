package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/remind/internal/wire"
)

// ShowCmd returns the show command
func ShowCmd() *cobra.Command {
	var listName string

	cmd := &cobra.Command{
		Use:   "show [name]",
		Short: "Show full reminder details",
		Long: `Show a reminder located by partial title match, including alarms,
recurrence rules, tags, and subtasks.

A query that only matches once the #tags are ignored still finds the
reminder: "wash car" matches the title "wash #car today".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			detail, err := wire.ReminderService().Show(ctx, args[0], listName)
			if err != nil {
				return err
			}

			renderReminderDetail(detail.Reminder, detail.List)
			return nil
		},
	}

	cmd.Flags().StringVarP(&listName, "list", "l", "", "Restrict lookup to matching lists")

	return cmd
}

// CompleteCmd returns the complete command
func CompleteCmd() *cobra.Command {
	var listName string

	cmd := &cobra.Command{
		Use:   "complete [name]",
		Short: "Mark a reminder as completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			resp, err := wire.ReminderService().Complete(ctx, args[0], listName)
			if err != nil {
				return err
			}

			if resp.AlreadyCompleted {
				fmt.Printf("Reminder already completed: %s\n", resp.Reminder.Title)
				return nil
			}

			fmt.Printf("✓ Completed reminder: %s\n", resp.Reminder.Title)
			return nil
		},
	}

	cmd.Flags().StringVarP(&listName, "list", "l", "", "Restrict lookup to matching lists")

	return cmd
}

// DeleteCmd returns the delete command
func DeleteCmd() *cobra.Command {
	var listName string

	cmd := &cobra.Command{
		Use:   "delete [name]",
		Short: "Delete a reminder",
		Long: `Delete a reminder located by partial title match.

This is terminal: there is no trash or undo.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			detail, err := wire.ReminderService().Delete(ctx, args[0], listName)
			if err != nil {
				return err
			}

			fmt.Printf("✓ Deleted reminder: %s\n", detail.Reminder.Title)
			return nil
		},
	}

	cmd.Flags().StringVarP(&listName, "list", "l", "", "Restrict lookup to matching lists")

	return cmd
}
