package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/remind/internal/ports/primary"
	"github.com/example/remind/internal/wire"
)

// UpdateCmd returns the update command
func UpdateCmd() *cobra.Command {
	var listName string

	cmd := &cobra.Command{
		Use:   "update [name]",
		Short: "Update fields of an existing reminder",
		Long: `Update a reminder located by partial title match.

Each supplied flag is applied independently: a value that fails to
parse is skipped without blocking the others. Pass "remove" (or "none"
for dates) to clear the due date, start date, or URL.

Examples:
  remind update "buy milk" --title "buy oat milk"
  remind update dentist --due "in 1 week" --priority high
  remind update dentist --due remove
  remind update slides --move-to Work`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			fieldFlags := []struct {
				flag  string
				field primary.UpdateField
			}{
				{"title", primary.FieldTitle},
				{"priority", primary.FieldPriority},
				{"due", primary.FieldDueDate},
				{"start", primary.FieldStartDate},
				{"notes", primary.FieldNotes},
				{"url", primary.FieldURL},
				{"move-to", primary.FieldList},
			}

			var directives []primary.UpdateDirective
			for _, f := range fieldFlags {
				if !cmd.Flags().Changed(f.flag) {
					continue
				}
				value, _ := cmd.Flags().GetString(f.flag)
				directives = append(directives, primary.UpdateDirective{Field: f.field, Value: value})
			}

			resp, err := wire.ReminderService().Update(ctx, primary.UpdateReminderRequest{
				Name:       args[0],
				ListName:   listName,
				Directives: directives,
			})
			if err != nil {
				return err
			}

			if !resp.Updated {
				fmt.Println("No changes applied")
				return nil
			}

			fmt.Printf("✓ Updated reminder: %s\n", resp.Reminder.Title)
			return nil
		},
	}

	cmd.Flags().StringVarP(&listName, "list", "l", "", "Restrict lookup to matching lists")
	cmd.Flags().String("title", "", "New title")
	cmd.Flags().String("priority", "", "New priority")
	cmd.Flags().String("due", "", "New due date, or 'remove'")
	cmd.Flags().String("start", "", "New start date, or 'remove'")
	cmd.Flags().String("notes", "", "New notes text")
	cmd.Flags().String("url", "", "New URL, or 'remove'")
	cmd.Flags().String("move-to", "", "Move to another list")

	return cmd
}
