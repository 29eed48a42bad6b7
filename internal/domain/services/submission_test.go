package services

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/fabula/internal/domain/entities"
)

func TestEnsureAuthor(t *testing.T) {
	snap := storySnapshot()

	next, id := EnsureAuthor(snap, "Newcomer")
	require.NotEmpty(t, id)
	require.NotNil(t, next.Author(id))
	assert.Equal(t, "Newcomer", next.Author(id).DisplayName)

	// Input untouched; lookup is case-insensitive on repeat.
	assert.Nil(t, snap.AuthorByName("Newcomer"))
	again, sameID := EnsureAuthor(next, "newcomer")
	assert.Same(t, next, again)
	assert.Equal(t, id, sameID)
}

func TestSubmitSentence(t *testing.T) {
	now := baseTime.Add(time.Hour)
	text := "The tower answered with a slow pulse of grey light."

	t.Run("creates a voting candidate under the parent", func(t *testing.T) {
		snap := storySnapshot()

		next, id, err := SubmitSentence(snap, "author-1", "genesis", text, now)
		require.NoError(t, err)

		sentence := next.Sentence(id)
		require.NotNil(t, sentence)
		assert.Equal(t, entities.StatusVoting, sentence.Status)
		assert.Equal(t, "genesis", sentence.ParentID)
		assert.Equal(t, "genesis-branch", sentence.BranchID)
		assert.Equal(t, now, sentence.SubmittedAt)
		assert.Equal(t, 0, sentence.Votes)

		assert.Equal(t, 2, next.Author("author-1").SentencesSubmitted)
		assert.Len(t, snap.Sentences, 1) // input untouched
	})

	t.Run("inherits the parent's event", func(t *testing.T) {
		snap := storySnapshot()
		snap.Events = append(snap.Events, entities.Event{
			ID: "event-1", Title: "The Crystal Heart", Active: true,
			StartBranchID: "genesis-branch", BadgeName: "Crystal Explorer",
		})
		snap.Sentence("genesis").EventID = "event-1"

		next, id, err := SubmitSentence(snap, "author-1", "genesis", text, now)
		require.NoError(t, err)
		assert.Equal(t, "event-1", next.Sentence(id).EventID)
	})

	t.Run("awards submission badges", func(t *testing.T) {
		snap := storySnapshot()
		snap.Authors = append(snap.Authors, entities.Author{ID: "fresh", DisplayName: "Fresh"})

		next, _, err := SubmitSentence(snap, "fresh", "genesis", text, now)
		require.NoError(t, err)
		assert.True(t, next.HasBadge("fresh", BadgeFirstContribution))

		// The fifth submission unlocks Prolific Author.
		next.Author("fresh").SentencesSubmitted = 4
		next, _, err = SubmitSentence(next, "fresh", "genesis", text, now)
		require.NoError(t, err)
		assert.True(t, next.HasBadge("fresh", BadgeProlificAuthor))
	})

	t.Run("rejects an unknown parent", func(t *testing.T) {
		_, _, err := SubmitSentence(storySnapshot(), "author-1", "missing", text, now)
		assert.ErrorIs(t, err, ErrUnknownSentence)
	})

	t.Run("rejects an unknown author", func(t *testing.T) {
		_, _, err := SubmitSentence(storySnapshot(), "nobody", "genesis", text, now)
		assert.ErrorIs(t, err, ErrUnknownAuthor)
	})

	t.Run("bounds the text length", func(t *testing.T) {
		snap := storySnapshot()

		_, _, err := SubmitSentence(snap, "author-1", "genesis", "Four", now)
		assert.ErrorIs(t, err, ErrTextLength)

		_, _, err = SubmitSentence(snap, "author-1", "genesis", strings.Repeat("a", MaxSentenceLen+1), now)
		assert.ErrorIs(t, err, ErrTextLength)

		_, _, err = SubmitSentence(snap, "author-1", "genesis", strings.Repeat("a", MaxSentenceLen), now)
		assert.NoError(t, err)
	})
}
