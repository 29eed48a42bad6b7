package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newVoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vote <sentence-id>",
		Short: "Vote for a candidate sentence",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVote(cmd, args[0])
		},
	}
}

func runVote(cmd *cobra.Command, sentenceID string) error {
	author, err := requireAuthor()
	if err != nil {
		return err
	}

	return withDeps(func(d *Deps) error {
		remaining, err := d.Vote.Handle(cmd.Context(), author, sentenceID, time.Now())
		if err != nil {
			return fmt.Errorf("casting vote: %w", err)
		}

		fmt.Printf("Vote recorded. %d votes left today.\n", remaining)
		return nil
	})
}
