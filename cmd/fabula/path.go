package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ersonp/fabula/internal/domain/entities"
	"github.com/ersonp/fabula/internal/domain/services"
)

func newPathCmd() *cobra.Command {
	var branchID string

	cmd := &cobra.Command{
		Use:   "path",
		Short: "Show the active path of a branch",
		Long:  "Prints the lineage from genesis to the branch root, then the open continuations under the tip.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPath(cmd, branchID)
		},
	}

	cmd.Flags().StringVarP(&branchID, "branch", "b", "", "Branch ID (required)")
	cmd.MarkFlagRequired("branch") //nolint:errcheck // flag exists

	return cmd
}

func runPath(cmd *cobra.Command, branchID string) error {
	return withDeps(func(d *Deps) error {
		view, err := d.View.Path(cmd.Context(), branchID)
		if err != nil {
			return fmt.Errorf("loading path: %w", err)
		}

		fmt.Printf("Branch: %s\n", view.Branch.Title)
		if view.Event != nil {
			fmt.Printf("Event: %s (badge: %s)\n", view.Event.Title, view.Event.BadgeName)
		}
		fmt.Println()

		for _, s := range view.Path {
			fmt.Printf("%s: %s\n", view.AuthorNames[s.AuthorID], s.Text)
		}

		if len(view.Continuations) == 0 {
			fmt.Println("\nThis path has no continuations yet. Submit one!")
			return nil
		}

		fmt.Println("\nContinuations:")
		now := time.Now()
		for _, s := range view.Continuations {
			fmt.Printf("  [%s] %s (%d votes%s)\n    id: %s\n",
				s.Status, s.Text, s.Votes, timeLeft(s, now), s.ID)
		}
		return nil
	})
}

// timeLeft renders the remaining voting window for an open candidate.
func timeLeft(s entities.Sentence, now time.Time) string {
	if s.Status != entities.StatusVoting {
		return ""
	}
	left := services.VotingWindow - now.Sub(s.SubmittedAt)
	if left <= 0 {
		return ", window expired"
	}
	return fmt.Sprintf(", %s left", left.Round(time.Minute))
}
