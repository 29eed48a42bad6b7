package services

import (
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/ersonp/fabula/internal/domain/entities"
)

// EnsureAuthor returns the ID of the author with the given display name,
// creating the author on first appearance. The snapshot is only replaced
// when a new author is created.
func EnsureAuthor(snap *entities.Snapshot, displayName string) (*entities.Snapshot, string) {
	if existing := snap.AuthorByName(displayName); existing != nil {
		return snap, existing.ID
	}
	next := snap.Clone()
	author := entities.Author{
		ID:          uuid.New().String(),
		DisplayName: displayName,
	}
	next.Authors = append(next.Authors, author)
	return next, author.ID
}

// SubmitSentence appends a new candidate sentence under parentID and
// returns the updated snapshot and the new sentence's ID. The sentence
// starts in Voting status, joins the parent's branch, and inherits the
// parent's event ID. The author's submission counter increments and
// submission-triggered badges are awarded in the same operation.
func SubmitSentence(snap *entities.Snapshot, authorID, parentID, text string, now time.Time) (*entities.Snapshot, string, error) {
	if n := utf8.RuneCountInString(text); n < MinSentenceLen || n > MaxSentenceLen {
		return nil, "", ErrTextLength
	}
	parent := snap.Sentence(parentID)
	if parent == nil {
		return nil, "", ErrUnknownSentence
	}
	if snap.Author(authorID) == nil {
		return nil, "", ErrUnknownAuthor
	}

	next := snap.Clone()
	sentence := entities.Sentence{
		ID:          uuid.New().String(),
		BranchID:    parent.BranchID,
		ParentID:    parentID,
		AuthorID:    authorID,
		Text:        text,
		SubmittedAt: now,
		Status:      entities.StatusVoting,
		EventID:     parent.EventID,
	}
	next.Sentences = append(next.Sentences, sentence)

	author := next.Author(authorID)
	author.SentencesSubmitted++
	for _, name := range EvaluateBadges(*author, next.BadgeNames(authorID)) {
		next.Badges = append(next.Badges, entities.Badge{
			ID:        uuid.New().String(),
			AuthorID:  authorID,
			Name:      name,
			AwardedAt: now,
		})
	}

	return next, sentence.ID, nil
}
