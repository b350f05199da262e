package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/remind/internal/wire"
)

// StatsCmd returns the stats command
func StatsCmd() *cobra.Command {
	var listName string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show aggregate statistics",
		Long: `Show aggregate statistics over all lists, or one list with --list.

Priority bands and due-date buckets count incomplete reminders only.
Tag frequencies count each reminder once per distinct tag.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			resp, err := wire.StatsService().Stats(ctx, listName)
			if err != nil {
				return err
			}

			scope := fmt.Sprintf("all lists (%d)", resp.ListCount)
			if resp.ListName != "" {
				scope = fmt.Sprintf("%d list(s) matching %q", resp.ListCount, resp.ListName)
			}
			fmt.Println(color.New(color.Bold).Sprintf("Statistics for %s", scope))
			fmt.Println()

			s := resp.Summary
			fmt.Printf("Total reminders: %d\n", s.Total)
			fmt.Printf("Completed: %d (%.1f%%)\n", s.Completed, s.CompletionRate)
			fmt.Printf("Incomplete: %d\n", s.Incomplete)
			if s.Overdue > 0 {
				fmt.Println(color.New(color.FgRed).Sprintf("Overdue: %d", s.Overdue))
			} else {
				fmt.Printf("Overdue: %d\n", s.Overdue)
			}
			fmt.Println()

			fmt.Println("Open by priority:")
			fmt.Printf("  High: %d\n", s.HighPriority)
			fmt.Printf("  Medium: %d\n", s.MediumPriority)
			fmt.Printf("  Low: %d\n", s.LowPriority)
			fmt.Println()

			fmt.Println("Due:")
			fmt.Printf("  Today: %d\n", s.DueToday)
			fmt.Printf("  Tomorrow: %d\n", s.DueTomorrow)
			fmt.Printf("  This week: %d\n", s.DueThisWeek)
			fmt.Println()

			fmt.Printf("With URL: %d  With notes: %d  With alarms: %d\n",
				s.WithURL, s.WithNotes, s.WithAlarms)

			if len(resp.Tags) > 0 {
				fmt.Println()
				fmt.Println("Tags:")
				w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
				for _, tc := range resp.Tags {
					fmt.Fprintf(w, "  #%s\t%d\n", tc.Tag, tc.Count)
				}
				w.Flush()
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&listName, "list", "l", "", "Restrict to matching lists")

	return cmd
}
