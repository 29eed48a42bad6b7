package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSummaryCmd() *cobra.Command {
	var branchID string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Summarize the story along a branch",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummary(cmd, branchID)
		},
	}

	cmd.Flags().StringVarP(&branchID, "branch", "b", "", "Branch ID (required)")
	cmd.MarkFlagRequired("branch") //nolint:errcheck // flag exists

	return cmd
}

func runSummary(cmd *cobra.Command, branchID string) error {
	return withDeps(func(d *Deps) error {
		summary, title, err := d.Assist.Summary(cmd.Context(), branchID)
		if err != nil {
			return err
		}

		fmt.Printf("%s\n\n%s\n", title, summary)
		return nil
	})
}
