package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/remind/internal/cli"
	"github.com/example/remind/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "remind",
		Short:   "remind - reminders from the command line",
		Version: version.String(),
		Long: `remind is a CLI tool for managing reminders, lists, alarms, and
recurrence rules. Reminders carry #tags in their titles and checklist
subtasks in their notes.`,
	}

	// Add subcommands
	rootCmd.AddCommand(cli.ListCmd())
	rootCmd.AddCommand(cli.ListsCmd())
	rootCmd.AddCommand(cli.CreateCmd())
	rootCmd.AddCommand(cli.UpdateCmd())
	rootCmd.AddCommand(cli.ShowCmd())
	rootCmd.AddCommand(cli.CompleteCmd())
	rootCmd.AddCommand(cli.DeleteCmd())
	rootCmd.AddCommand(cli.SearchCmd())
	rootCmd.AddCommand(cli.StatsCmd())

	// Attachment commands
	rootCmd.AddCommand(cli.AlarmCmd())
	rootCmd.AddCommand(cli.RecurCmd())
	rootCmd.AddCommand(cli.LocationCmd())
	rootCmd.AddCommand(cli.TagCmd())
	rootCmd.AddCommand(cli.SubtaskCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
