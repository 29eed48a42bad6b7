// Package handlers orchestrates engine operations against the story store.
// Mutating handlers share one mutex so a single logical mutator runs at a
// time, including the background timeout sweep.
package handlers

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ersonp/fabula/internal/domain/ports"
	"github.com/ersonp/fabula/internal/domain/services"
)

// VoteHandler handles vote casting.
type VoteHandler struct {
	store ports.StoryStore
	mu    *sync.Mutex
}

// NewVoteHandler creates a new vote handler.
func NewVoteHandler(store ports.StoryStore, mu *sync.Mutex) *VoteHandler {
	return &VoteHandler{store: store, mu: mu}
}

// Handle casts one vote by the named voter on the sentence and returns how
// many daily votes the voter has left. Voting on one's own sentence is
// rejected here; duplicate and quota checks live in the ledger.
func (h *VoteHandler) Handle(ctx context.Context, voterName, sentenceID string, now time.Time) (int, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	snap, err := h.store.Load(ctx)
	if err != nil {
		return 0, fmt.Errorf("loading snapshot: %w", err)
	}

	snap, voterID := services.EnsureAuthor(snap, voterName)

	target := snap.Sentence(sentenceID)
	if target == nil {
		return 0, services.ErrUnknownSentence
	}
	if target.AuthorID == voterID {
		return 0, services.ErrOwnSentence
	}

	next, err := services.CastVote(snap, voterID, sentenceID, now)
	if err != nil {
		return 0, err
	}

	if err := h.store.Save(ctx, next); err != nil {
		return 0, fmt.Errorf("saving snapshot: %w", err)
	}

	remaining := services.DailyVoteLimit - services.DailyVoteCount(next, voterID, now)
	return remaining, nil
}
