package handlers

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ersonp/fabula/internal/domain/entities"
	"github.com/ersonp/fabula/internal/domain/ports"
)

// SystemAuthorID owns the seeded root sentences of the universe.
const SystemAuthorID = "system"

// ErrAlreadySeeded is returned when seeding a universe that has a genesis
// branch.
var ErrAlreadySeeded = errors.New("story universe is already seeded")

// UniverseHandler seeds the story universe and creates events.
type UniverseHandler struct {
	store ports.StoryStore
	mu    *sync.Mutex
}

// NewUniverseHandler creates a new universe handler.
func NewUniverseHandler(store ports.StoryStore, mu *sync.Mutex) *UniverseHandler {
	return &UniverseHandler{store: store, mu: mu}
}

// Seed creates the genesis of a fresh universe: the system author, the
// genesis branch, and its approved opening sentence. It returns the genesis
// branch ID.
func (h *UniverseHandler) Seed(ctx context.Context, title, openingText string, now time.Time) (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	snap, err := h.store.Load(ctx)
	if err != nil {
		return "", fmt.Errorf("loading snapshot: %w", err)
	}
	if len(snap.Branches) > 0 {
		return "", ErrAlreadySeeded
	}

	next := snap.Clone()
	next.Authors = append(next.Authors, entities.Author{
		ID:                 SystemAuthorID,
		DisplayName:        "The Origin",
		SentencesSubmitted: 1,
	})

	root := entities.Sentence{
		ID:          uuid.New().String(),
		AuthorID:    SystemAuthorID,
		Text:        openingText,
		SubmittedAt: now,
		Status:      entities.StatusApproved,
	}
	branch := entities.Branch{
		ID:             uuid.New().String(),
		Title:          title,
		RootSentenceID: root.ID,
	}
	root.BranchID = branch.ID

	next.Sentences = append(next.Sentences, root)
	next.Branches = append(next.Branches, branch)

	if err := h.store.Save(ctx, next); err != nil {
		return "", fmt.Errorf("saving snapshot: %w", err)
	}
	return branch.ID, nil
}

// CreateEvent opens a new time-limited event: a dedicated branch with an
// approved opening sentence, and the event record granting badgeName to the
// first winner along that lineage. It returns the event ID.
func (h *UniverseHandler) CreateEvent(ctx context.Context, title, description, badgeName, openingText string, now time.Time) (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	snap, err := h.store.Load(ctx)
	if err != nil {
		return "", fmt.Errorf("loading snapshot: %w", err)
	}

	next := snap.Clone()
	if next.Author(SystemAuthorID) == nil {
		next.Authors = append(next.Authors, entities.Author{
			ID:          SystemAuthorID,
			DisplayName: "The Origin",
		})
	}

	eventID := uuid.New().String()
	root := entities.Sentence{
		ID:          uuid.New().String(),
		AuthorID:    SystemAuthorID,
		Text:        openingText,
		SubmittedAt: now,
		Status:      entities.StatusApproved,
		EventID:     eventID,
	}
	branch := entities.Branch{
		ID:             uuid.New().String(),
		Title:          title,
		RootSentenceID: root.ID,
		EventID:        eventID,
	}
	root.BranchID = branch.ID

	next.Sentences = append(next.Sentences, root)
	next.Branches = append(next.Branches, branch)
	next.Events = append(next.Events, entities.Event{
		ID:            eventID,
		Title:         title,
		Description:   description,
		Active:        true,
		StartBranchID: branch.ID,
		BadgeName:     badgeName,
	})

	if err := h.store.Save(ctx, next); err != nil {
		return "", fmt.Errorf("saving snapshot: %w", err)
	}
	return eventID, nil
}
