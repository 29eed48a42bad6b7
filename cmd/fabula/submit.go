package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newSubmitCmd() *cobra.Command {
	var parentID string

	cmd := &cobra.Command{
		Use:   "submit <text>",
		Short: "Submit a candidate continuation",
		Long:  "Submits a new sentence under the given parent; the community votes on it.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSubmit(cmd, parentID, args[0])
		},
	}

	cmd.Flags().StringVarP(&parentID, "parent", "p", "", "Parent sentence ID (required)")
	cmd.MarkFlagRequired("parent") //nolint:errcheck // flag exists

	return cmd
}

func runSubmit(cmd *cobra.Command, parentID, text string) error {
	author, err := requireAuthor()
	if err != nil {
		return err
	}

	return withDeps(func(d *Deps) error {
		sentenceID, err := d.Submit.Handle(cmd.Context(), author, parentID, text, time.Now())
		if err != nil {
			return fmt.Errorf("submitting sentence: %w", err)
		}

		fmt.Printf("Submitted sentence %s — voting is open.\n", sentenceID)
		return nil
	})
}
