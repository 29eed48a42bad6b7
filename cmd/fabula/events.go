package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newEventsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "List story events",
		RunE:  runEventsList,
	}

	cmd.AddCommand(newEventsCreateCmd())

	return cmd
}

func runEventsList(cmd *cobra.Command, args []string) error {
	return withDeps(func(d *Deps) error {
		events, err := d.View.Events(cmd.Context())
		if err != nil {
			return fmt.Errorf("loading events: %w", err)
		}

		if len(events) == 0 {
			fmt.Println("No events.")
			return nil
		}

		for _, e := range events {
			state := "inactive"
			if e.Event.Active {
				state = "active"
			}
			fmt.Printf("[%s] %s — badge %q, begins at branch %q\n", state, e.Event.Title, e.Event.BadgeName, e.BranchTitle)
			if e.Event.Description != "" {
				fmt.Printf("  %s\n", e.Event.Description)
			}
		}
		return nil
	})
}

func newEventsCreateCmd() *cobra.Command {
	var (
		description string
		badge       string
		opening     string
	)

	cmd := &cobra.Command{
		Use:   "create <title>",
		Short: "Open a new event with its own starting branch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEventsCreate(cmd, args[0], description, badge, opening)
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "Event description")
	cmd.Flags().StringVarP(&badge, "badge", "b", "", "Badge granted to the event's first winner (required)")
	cmd.Flags().StringVarP(&opening, "opening", "o", "", "Opening sentence of the event branch (required)")
	cmd.MarkFlagRequired("badge")   //nolint:errcheck // flag exists
	cmd.MarkFlagRequired("opening") //nolint:errcheck // flag exists

	return cmd
}

func runEventsCreate(cmd *cobra.Command, title, description, badge, opening string) error {
	return withDeps(func(d *Deps) error {
		eventID, err := d.Universe.CreateEvent(cmd.Context(), title, description, badge, opening, time.Now())
		if err != nil {
			return fmt.Errorf("creating event: %w", err)
		}

		fmt.Printf("Created event %s: %s\n", eventID, title)
		return nil
	})
}
