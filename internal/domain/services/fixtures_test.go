package services

import (
	"time"

	"github.com/ersonp/fabula/internal/domain/entities"
)

var baseTime = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

// storySnapshot builds a minimal seeded universe: a genesis branch with an
// approved root sentence by the system author, plus two contributors.
func storySnapshot() *entities.Snapshot {
	return &entities.Snapshot{
		Authors: []entities.Author{
			{ID: "system", DisplayName: "The Origin", SentencesSubmitted: 1},
			{ID: "author-1", DisplayName: "Wanderer", SentencesSubmitted: 1},
			{ID: "author-2", DisplayName: "Scout", SentencesSubmitted: 1},
		},
		Branches: []entities.Branch{
			{ID: "genesis-branch", Title: "The Beginning", RootSentenceID: "genesis"},
		},
		Sentences: []entities.Sentence{
			{
				ID:          "genesis",
				BranchID:    "genesis-branch",
				AuthorID:    "system",
				Text:        "A single tower of ash rose from the silver desert.",
				SubmittedAt: baseTime,
				Status:      entities.StatusApproved,
			},
		},
	}
}

// addSentence appends a candidate under the given parent and returns the
// snapshot for chaining.
func addSentence(snap *entities.Snapshot, id, parentID, authorID string, votes int, submittedAt time.Time) *entities.Snapshot {
	parent := snap.Sentence(parentID)
	snap.Sentences = append(snap.Sentences, entities.Sentence{
		ID:          id,
		BranchID:    parent.BranchID,
		ParentID:    parentID,
		AuthorID:    authorID,
		Text:        "The door at the tower's base opened without a sound, sentence " + id,
		SubmittedAt: submittedAt,
		Votes:       votes,
		Status:      entities.StatusVoting,
		EventID:     parent.EventID,
	})
	return snap
}
