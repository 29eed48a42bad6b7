// Package ports defines interfaces for external service communication.
package ports

import "context"

// Narrator defines the interface for LLM-assisted text generation. Every
// method is best-effort: callers must treat an error (or a degenerate
// response) as a signal to fall back locally, never as a hard failure of
// the operation that requested the text.
type Narrator interface {
	// BranchTitle names a new branch from its winning sentence.
	BranchTitle(ctx context.Context, sentenceText string) (string, error)

	// SuggestSentence proposes a next sentence for the given story context.
	SuggestSentence(ctx context.Context, storyText string) (string, error)

	// PathSummary summarizes the story along one path.
	PathSummary(ctx context.Context, storyText string) (string, error)

	// SummaryTitle writes a headline for a path summary.
	SummaryTitle(ctx context.Context, summary string) (string, error)
}
