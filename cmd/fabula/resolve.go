package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve",
		Short: "Resolve voting and promote winners to branches",
		Long:  "Times out stale candidates, picks one winner per sibling group, and opens a new branch per winner.",
		RunE:  runResolve,
	}
}

func runResolve(cmd *cobra.Command, args []string) error {
	return withDeps(func(d *Deps) error {
		res, err := d.Resolve.Handle(cmd.Context(), time.Now())
		if err != nil {
			return err
		}

		if res.Nothing() {
			fmt.Println("Nothing to resolve.")
			return nil
		}

		if res.TimedOut > 0 {
			fmt.Printf("Timed out %d stale candidate(s).\n", res.TimedOut)
		}
		for i, branch := range res.NewBranches {
			fmt.Printf("Approved %q — new branch: %s (%s)\n", res.Approved[i].Text, branch.Title, branch.ID)
		}
		if len(res.RejectedIDs) > 0 {
			fmt.Printf("Rejected %d competing sibling(s).\n", len(res.RejectedIDs))
		}
		for _, badge := range res.NewBadges {
			fmt.Printf("Badge awarded: %s\n", badge.Name)
		}
		return nil
	})
}
