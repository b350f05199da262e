package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/remind/internal/ports/primary"
	"github.com/example/remind/internal/wire"
)

// LocationCmd returns the location command
func LocationCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "location",
		Short: "Manage location triggers",
		Long:  `Add and remove geofence triggers on a reminder.`,
	}

	cmd.AddCommand(locationAddCmd())
	cmd.AddCommand(locationRemoveCmd())

	return cmd
}

func locationAddCmd() *cobra.Command {
	var (
		listName  string
		title     string
		latitude  float64
		longitude float64
		radius    float64
		proximity string
	)

	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Add a location trigger to a reminder",
		Long: `Add a geofence trigger to a reminder located by partial title match.

Proximity is "entering" (the default) or "leaving".

Examples:
  remind location add "buy milk" --place Supermarket --lat 52.52 --lon 13.405 --radius 100
  remind location add "call home" --place Office --lat 48.14 --lon 11.58 --proximity leaving`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			r, err := wire.ReminderService().AddLocationTrigger(ctx, primary.AddLocationRequest{
				Name:      args[0],
				ListName:  listName,
				Title:     title,
				Latitude:  latitude,
				Longitude: longitude,
				Radius:    radius,
				Proximity: proximity,
			})
			if err != nil {
				return err
			}

			fmt.Printf("✓ Added location trigger to: %s\n", r.Title)
			return nil
		},
	}

	cmd.Flags().StringVarP(&listName, "list", "l", "", "Restrict lookup to matching lists")
	cmd.Flags().StringVar(&title, "place", "", "Place name")
	cmd.Flags().Float64Var(&latitude, "lat", 0, "Latitude")
	cmd.Flags().Float64Var(&longitude, "lon", 0, "Longitude")
	cmd.Flags().Float64Var(&radius, "radius", 100, "Geofence radius in meters")
	cmd.Flags().StringVar(&proximity, "proximity", "", "entering or leaving")
	cmd.MarkFlagRequired("place")

	return cmd
}

func locationRemoveCmd() *cobra.Command {
	var listName string

	cmd := &cobra.Command{
		Use:   "remove [name]",
		Short: "Remove all location triggers from a reminder",
		Long: `Remove every geofence trigger from a reminder. Time-based alarms are
left in place; use "remind alarm remove" for those.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			resp, err := wire.ReminderService().RemoveLocationTriggers(ctx, args[0], listName)
			if err != nil {
				return err
			}

			if resp.Removed == 0 {
				fmt.Printf("No location triggers on: %s\n", resp.Reminder.Title)
				return nil
			}

			fmt.Printf("✓ Removed %d location trigger(s) from: %s\n", resp.Removed, resp.Reminder.Title)
			return nil
		},
	}

	cmd.Flags().StringVarP(&listName, "list", "l", "", "Restrict lookup to matching lists")

	return cmd
}
