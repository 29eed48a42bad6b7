package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSuggestCmd() *cobra.Command {
	var branchID string

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Ask the narrator for a next-sentence suggestion",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSuggest(cmd, branchID)
		},
	}

	cmd.Flags().StringVarP(&branchID, "branch", "b", "", "Branch ID (required)")
	cmd.MarkFlagRequired("branch") //nolint:errcheck // flag exists

	return cmd
}

func runSuggest(cmd *cobra.Command, branchID string) error {
	return withDeps(func(d *Deps) error {
		suggestion, err := d.Assist.Suggest(cmd.Context(), branchID)
		if err != nil {
			return err
		}

		fmt.Println(suggestion)
		return nil
	})
}
