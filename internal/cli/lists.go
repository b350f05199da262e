package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/remind/internal/wire"
)

// ListsCmd returns the lists command
func ListsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lists",
		Short: "Manage reminder lists",
		Long:  `Show, create, and remove reminder lists.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			infos, err := wire.ListService().Lists(ctx)
			if err != nil {
				return err
			}

			if len(infos) == 0 {
				fmt.Println("No lists found.")
				fmt.Println()
				fmt.Println("Create your first list:")
				fmt.Println("  remind lists create Inbox")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "NAME\tOPEN\tDONE\tTOTAL\tDEFAULT")
			fmt.Fprintln(w, "----\t----\t----\t-----\t-------")
			for _, info := range infos {
				defaultMark := ""
				if info.List.IsDefault {
					defaultMark = "✓"
				}
				fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%s\n",
					info.List.Title,
					info.Total-info.Completed,
					info.Completed,
					info.Total,
					defaultMark,
				)
			}
			w.Flush()
			return nil
		},
	}

	cmd.AddCommand(listsCreateCmd())
	cmd.AddCommand(listsRemoveCmd())

	return cmd
}

func listsCreateCmd() *cobra.Command {
	var listColor string

	cmd := &cobra.Command{
		Use:   "create [name]",
		Short: "Create a new list",
		Long: `Create a new reminder list.

The first list ever created becomes the default target for new
reminders.

Examples:
  remind lists create Groceries
  remind lists create Work --color blue`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			list, err := wire.ListService().CreateList(ctx, args[0], listColor)
			if err != nil {
				return err
			}

			fmt.Printf("✓ Created list: %s\n", list.Title)
			if list.IsDefault {
				fmt.Println("  This is now the default list")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&listColor, "color", "c", "", "Display color")

	return cmd
}

func listsRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove [name]",
		Short: "Remove a list and everything in it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			list, err := wire.ListService().RemoveList(ctx, args[0])
			if err != nil {
				return err
			}

			fmt.Printf("✓ Removed list: %s\n", list.Title)
			return nil
		},
	}
}
