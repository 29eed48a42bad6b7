package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ersonp/fabula/internal/application/handlers"
	"github.com/ersonp/fabula/internal/domain/services"
)

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Interactive mode with the background timeout sweep running",
		Long:  "Keeps the periodic timeout sweep running while accepting vote/submit/resolve commands.",
		RunE:  runWatch,
	}
}

type watchState struct {
	vote    *handlers.VoteHandler
	submit  *handlers.SubmitHandler
	resolve *handlers.ResolveHandler
	view    *handlers.ViewHandler
}

func runWatch(cmd *cobra.Command, args []string) error {
	author, err := requireAuthor()
	if err != nil {
		return err
	}

	return withInternalDeps(func(d *internalDeps) error {
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		// The sweeper shares the mutators' mutex, so it never races a
		// foreground vote, submission, or resolution.
		runner := services.NewSweepRunner(d.store, d.Log, d.mu, services.SweepInterval)
		go runner.Run(ctx)

		d.Log.Info("watch mode started", zap.String("author", author))

		state := &watchState{
			vote:    d.Vote,
			submit:  d.Submit,
			resolve: d.Resolve,
			view:    d.View,
		}
		return state.runInputLoop(ctx, author)
	})
}

func (s *watchState) runInputLoop(ctx context.Context, author string) error {
	fmt.Println("Fabula interactive mode. The timeout sweep runs every minute.")
	fmt.Println("Commands: 'vote <sentence-id>', 'submit <parent-id> <text>', 'resolve', 'path <branch-id>', 'quit'")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if exit := s.handleCommand(ctx, author, line); exit {
			return nil
		}
	}

	return scanner.Err()
}

// handleCommand processes one line. Returns true when the loop should exit.
func (s *watchState) handleCommand(ctx context.Context, author, line string) bool {
	fields := strings.Fields(line)

	switch fields[0] {
	case "quit", "exit":
		return true
	case "vote":
		if len(fields) != 2 {
			fmt.Println("usage: vote <sentence-id>")
			return false
		}
		remaining, err := s.vote.Handle(ctx, author, fields[1], time.Now())
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return false
		}
		fmt.Printf("Vote recorded. %d votes left today.\n", remaining)
	case "submit":
		if len(fields) < 3 {
			fmt.Println("usage: submit <parent-id> <text>")
			return false
		}
		text := strings.Join(fields[2:], " ")
		sentenceID, err := s.submit.Handle(ctx, author, fields[1], text, time.Now())
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return false
		}
		fmt.Printf("Submitted sentence %s — voting is open.\n", sentenceID)
	case "resolve":
		res, err := s.resolve.Handle(ctx, time.Now())
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return false
		}
		if res.Nothing() {
			fmt.Println("Nothing to resolve.")
			return false
		}
		fmt.Printf("Approved %d, rejected %d, timed out %d.\n",
			len(res.Approved), len(res.RejectedIDs), res.TimedOut)
	case "path":
		if len(fields) != 2 {
			fmt.Println("usage: path <branch-id>")
			return false
		}
		view, err := s.view.Path(ctx, fields[1])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return false
		}
		for _, sentence := range view.Path {
			fmt.Printf("%s: %s\n", view.AuthorNames[sentence.AuthorID], sentence.Text)
		}
	default:
		fmt.Printf("Unknown command %q. Commands: vote, submit, resolve, path, quit.\n", fields[0])
	}
	return false
}
