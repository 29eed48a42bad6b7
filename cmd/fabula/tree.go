package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ersonp/fabula/internal/application/handlers"
	"github.com/ersonp/fabula/internal/domain/entities"
)

func newTreeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tree",
		Short: "Show the full story universe as a tree",
		RunE:  runTree,
	}
}

func runTree(cmd *cobra.Command, args []string) error {
	return withDeps(func(d *Deps) error {
		view, err := d.View.Tree(cmd.Context())
		if err != nil {
			return fmt.Errorf("loading tree: %w", err)
		}

		if len(view.Roots) == 0 {
			fmt.Println("The universe is empty.")
			return nil
		}

		for _, root := range view.Roots {
			printSubtree(view, root, 0)
		}
		return nil
	})
}

func printSubtree(view *handlers.TreeView, s entities.Sentence, depth int) {
	indent := strings.Repeat("  ", depth)

	marker := ""
	if branch, ok := view.BranchByRoot[s.ID]; ok {
		marker = fmt.Sprintf(" ⤷ branch %q (%s)", branch.Title, branch.ID)
	}

	fmt.Printf("%s[%s] %s — %s%s\n", indent, s.Status, s.Text, view.AuthorNames[s.AuthorID], marker)

	for _, child := range view.Forest[s.ID] {
		printSubtree(view, child, depth+1)
	}
}
