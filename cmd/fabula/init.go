package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ersonp/fabula/internal/infrastructure/config"
)

func newInitCmd() *cobra.Command {
	var (
		title   string
		opening string
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new story universe",
		Long:  "Creates a .fabula directory with default configuration and seeds the genesis branch.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, title, opening)
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", DefaultGenesisTitle, "Title of the genesis branch")
	cmd.Flags().StringVarP(&opening, "opening", "o", DefaultOpeningSentence, "Opening sentence of the story")

	return cmd
}

func runInit(cmd *cobra.Command, title, opening string) error {
	ctx := cmd.Context()

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	if config.Exists(cwd) {
		return fmt.Errorf("fabula already initialized in %s", cwd)
	}

	if err := config.WriteDefault(cwd); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}

	fmt.Printf("Created %s\n", config.ConfigFilePath(cwd))

	return withDeps(func(d *Deps) error {
		branchID, err := d.Universe.Seed(ctx, title, opening, time.Now())
		if err != nil {
			return fmt.Errorf("seeding universe: %w", err)
		}

		fmt.Printf("Seeded genesis branch %s: %s\n", branchID, title)
		fmt.Println("Fabula initialized successfully!")
		return nil
	})
}
