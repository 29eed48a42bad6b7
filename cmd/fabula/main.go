// Package main provides the entry point for the fabula CLI application.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	version      = "0.1.0-dev"
	globalAuthor string
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	rootCmd := &cobra.Command{
		Use:     "fabula",
		Short:   "A collaborative branching-story engine driven by community voting",
		Version: version,
	}

	rootCmd.PersistentFlags().StringVarP(&globalAuthor, "as", "a", "", "Author display name to act as")

	rootCmd.AddCommand(
		newInitCmd(),
		newSubmitCmd(),
		newVoteCmd(),
		newResolveCmd(),
		newPathCmd(),
		newTreeCmd(),
		newLeaderboardCmd(),
		newProfileCmd(),
		newEventsCmd(),
		newSuggestCmd(),
		newSummaryCmd(),
		newExportCmd(),
		newWatchCmd(),
	)

	return rootCmd.ExecuteContext(ctx)
}
