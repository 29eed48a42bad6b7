package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newExportCmd() *cobra.Command {
	var (
		format   string
		branchID string
		output   string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export story data",
		Long:  "Exports the full snapshot as JSON, or one branch's path as a markdown story.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, format, branchID, output)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "Export format (json, markdown)")
	cmd.Flags().StringVarP(&branchID, "branch", "b", "", "Branch ID (required for markdown)")
	cmd.Flags().StringVarP(&output, "output", "O", "", "Output file (default stdout)")

	return cmd
}

func runExport(cmd *cobra.Command, format, branchID, output string) error {
	if !isValidFormat(format) {
		return fmt.Errorf("invalid format %q, valid formats: %v", format, validFormats)
	}

	return withDeps(func(d *Deps) error {
		var data []byte

		switch format {
		case "json":
			var err error
			data, err = d.Export.SnapshotJSON(cmd.Context())
			if err != nil {
				return fmt.Errorf("exporting snapshot: %w", err)
			}
		case "markdown":
			if branchID == "" {
				return fmt.Errorf("markdown export requires --branch")
			}
			md, err := d.Export.PathMarkdown(cmd.Context(), branchID)
			if err != nil {
				return fmt.Errorf("exporting path: %w", err)
			}
			data = []byte(md)
		}

		if output == "" {
			fmt.Print(string(data))
			return nil
		}
		if err := os.WriteFile(output, data, 0644); err != nil {
			return fmt.Errorf("writing export file: %w", err)
		}
		fmt.Printf("Exported to %s\n", output)
		return nil
	})
}

func isValidFormat(f string) bool {
	for _, valid := range validFormats {
		if f == valid {
			return true
		}
	}
	return false
}
