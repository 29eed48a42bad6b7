package handlers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ersonp/fabula/internal/domain/ports"
	"github.com/ersonp/fabula/internal/domain/services"
)

// ErrNoNarrator is returned when an AI assist is requested without a
// configured narrator.
var ErrNoNarrator = errors.New("no narrator configured (set OPENAI_API_KEY)")

// ErrPathTooShort is returned when a summary is requested for a path with
// fewer than two sentences.
var ErrPathTooShort = errors.New("not enough story on this path to summarize")

// fallbackSummaryTitle headlines a summary when the narrator can't.
const fallbackSummaryTitle = "Path Summary"

// AssistHandler serves the optional AI assists: next-sentence suggestions
// and path summaries. Unlike branch naming, these are user-facing features
// of the narrator itself, so a missing narrator is an error here rather
// than a silent fallback.
type AssistHandler struct {
	store    ports.StoryStore
	narrator ports.Narrator
}

// NewAssistHandler creates a new assist handler. narrator may be nil.
func NewAssistHandler(store ports.StoryStore, narrator ports.Narrator) *AssistHandler {
	return &AssistHandler{store: store, narrator: narrator}
}

// Suggest proposes a next sentence continuing the story along branchID.
func (h *AssistHandler) Suggest(ctx context.Context, branchID string) (string, error) {
	if h.narrator == nil {
		return "", ErrNoNarrator
	}

	storyText, _, err := h.pathText(ctx, branchID)
	if err != nil {
		return "", err
	}

	suggestion, err := h.narrator.SuggestSentence(ctx, storyText)
	if err != nil {
		return "", fmt.Errorf("generating suggestion: %w", err)
	}
	return suggestion, nil
}

// Summary summarizes the story along branchID and returns the summary with
// a headline. The headline degrades to a fixed title when the narrator
// can't produce one; the summary itself does not.
func (h *AssistHandler) Summary(ctx context.Context, branchID string) (summary, title string, err error) {
	if h.narrator == nil {
		return "", "", ErrNoNarrator
	}

	storyText, length, err := h.pathText(ctx, branchID)
	if err != nil {
		return "", "", err
	}
	if length < 2 {
		return "", "", ErrPathTooShort
	}

	summary, err = h.narrator.PathSummary(ctx, storyText)
	if err != nil {
		return "", "", fmt.Errorf("generating summary: %w", err)
	}

	title, err = h.narrator.SummaryTitle(ctx, summary)
	if err != nil || strings.TrimSpace(title) == "" {
		title = fallbackSummaryTitle
	}
	return summary, title, nil
}

func (h *AssistHandler) pathText(ctx context.Context, branchID string) (string, int, error) {
	snap, err := h.store.Load(ctx)
	if err != nil {
		return "", 0, fmt.Errorf("loading snapshot: %w", err)
	}

	path, err := services.AncestorPath(snap, branchID)
	if err != nil {
		return "", 0, fmt.Errorf("reconstructing path: %w", err)
	}

	texts := make([]string, 0, len(path))
	for _, s := range path {
		texts = append(texts, s.Text)
	}
	return strings.Join(texts, " "), len(path), nil
}
