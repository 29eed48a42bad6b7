package handlers

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ersonp/fabula/internal/domain/ports"
	"github.com/ersonp/fabula/internal/domain/services"
)

// SubmitHandler handles new sentence submissions.
type SubmitHandler struct {
	store ports.StoryStore
	mu    *sync.Mutex
}

// NewSubmitHandler creates a new submission handler.
func NewSubmitHandler(store ports.StoryStore, mu *sync.Mutex) *SubmitHandler {
	return &SubmitHandler{store: store, mu: mu}
}

// Handle submits a candidate continuation of parentID by the named author,
// creating the author on first appearance. It returns the new sentence's
// ID.
func (h *SubmitHandler) Handle(ctx context.Context, authorName, parentID, text string, now time.Time) (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	snap, err := h.store.Load(ctx)
	if err != nil {
		return "", fmt.Errorf("loading snapshot: %w", err)
	}

	snap, authorID := services.EnsureAuthor(snap, authorName)

	next, sentenceID, err := services.SubmitSentence(snap, authorID, parentID, text, now)
	if err != nil {
		return "", err
	}

	if err := h.store.Save(ctx, next); err != nil {
		return "", fmt.Errorf("saving snapshot: %w", err)
	}
	return sentenceID, nil
}
