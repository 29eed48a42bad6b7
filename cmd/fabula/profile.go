package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newProfileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Show an author's stats and badges",
		RunE:  runProfile,
	}
}

func runProfile(cmd *cobra.Command, args []string) error {
	author, err := requireAuthor()
	if err != nil {
		return err
	}

	return withDeps(func(d *Deps) error {
		view, err := d.View.Profile(cmd.Context(), author, time.Now())
		if err != nil {
			return fmt.Errorf("loading profile: %w", err)
		}

		fmt.Printf("%s\n", view.Author.DisplayName)
		fmt.Printf("  Sentences submitted: %d\n", view.Author.SentencesSubmitted)
		fmt.Printf("  Voting wins: %d\n", view.Author.Wins)
		fmt.Printf("  Votes remaining today: %d\n", view.VotesRemaining)

		if len(view.Badges) == 0 {
			fmt.Println("  No badges yet.")
			return nil
		}
		fmt.Println("  Badges:")
		for _, b := range view.Badges {
			fmt.Printf("    %s (earned %s)\n", b.Name, b.AwardedAt.Format("2006-01-02"))
		}
		return nil
	})
}
