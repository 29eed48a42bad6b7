package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLeaderboardCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Show the top contributors",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLeaderboard(cmd, limit)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", DefaultLeaderboardLimit, "Maximum number of authors")

	return cmd
}

func runLeaderboard(cmd *cobra.Command, limit int) error {
	return withDeps(func(d *Deps) error {
		authors, err := d.View.Leaderboard(cmd.Context(), limit)
		if err != nil {
			return fmt.Errorf("loading leaderboard: %w", err)
		}

		if len(authors) == 0 {
			fmt.Println("No authors yet.")
			return nil
		}

		for i, a := range authors {
			fmt.Printf("%d. %s — %d win(s), %d sentence(s)\n", i+1, a.DisplayName, a.Wins, a.SentencesSubmitted)
		}
		return nil
	})
}
