package handlers

import (
	"time"

	"github.com/ersonp/fabula/internal/domain/entities"
	"github.com/ersonp/fabula/internal/domain/mocks"
)

var baseTime = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

// seededStore builds a mock store holding a seeded universe: a genesis
// branch, its approved root, and one open candidate by author-1.
func seededStore() *mocks.StoryStore {
	return &mocks.StoryStore{
		Snapshot: &entities.Snapshot{
			Authors: []entities.Author{
				{ID: SystemAuthorID, DisplayName: "The Origin", SentencesSubmitted: 1},
				{ID: "author-1", DisplayName: "Wanderer", SentencesSubmitted: 1},
			},
			Branches: []entities.Branch{
				{ID: "genesis-branch", Title: "The Beginning", RootSentenceID: "genesis"},
			},
			Sentences: []entities.Sentence{
				{
					ID:          "genesis",
					BranchID:    "genesis-branch",
					AuthorID:    SystemAuthorID,
					Text:        "A single tower of ash rose from the silver desert.",
					SubmittedAt: baseTime,
					Status:      entities.StatusApproved,
				},
				{
					ID:          "candidate",
					BranchID:    "genesis-branch",
					ParentID:    "genesis",
					AuthorID:    "author-1",
					Text:        "The door at its base opened without a sound.",
					SubmittedAt: baseTime,
					Status:      entities.StatusVoting,
				},
			},
		},
	}
}
