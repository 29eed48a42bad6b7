package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/fabula/internal/domain/entities"
)

func TestCastVote(t *testing.T) {
	now := baseTime.Add(time.Hour)

	t.Run("records vote and increments count together", func(t *testing.T) {
		snap := addSentence(storySnapshot(), "s1", "genesis", "author-1", 0, baseTime)

		next, err := CastVote(snap, "author-2", "s1", now)
		require.NoError(t, err)

		require.Len(t, next.Votes, 1)
		assert.Equal(t, "author-2", next.Votes[0].VoterID)
		assert.Equal(t, "s1", next.Votes[0].SentenceID)
		assert.Equal(t, now, next.Votes[0].CastAt)
		assert.Equal(t, 1, next.Sentence("s1").Votes)

		// The input snapshot is untouched.
		assert.Empty(t, snap.Votes)
		assert.Equal(t, 0, snap.Sentence("s1").Votes)
	})

	t.Run("rejects a duplicate vote without changing the count", func(t *testing.T) {
		snap := addSentence(storySnapshot(), "s1", "genesis", "author-1", 0, baseTime)

		next, err := CastVote(snap, "author-2", "s1", now)
		require.NoError(t, err)

		_, err = CastVote(next, "author-2", "s1", now.Add(time.Minute))
		assert.ErrorIs(t, err, ErrAlreadyVoted)
		assert.Equal(t, 1, next.Sentence("s1").Votes)
	})

	t.Run("rejects the sixth vote of the day regardless of target", func(t *testing.T) {
		snap := storySnapshot()
		for i := 0; i < 6; i++ {
			snap = addSentence(snap, fmt.Sprintf("s%d", i), "genesis", "author-1", 0, baseTime)
		}

		var err error
		for i := 0; i < 5; i++ {
			snap, err = CastVote(snap, "author-2", fmt.Sprintf("s%d", i), now.Add(time.Duration(i)*time.Minute))
			require.NoError(t, err)
		}

		_, err = CastVote(snap, "author-2", "s5", now.Add(time.Hour))
		assert.ErrorIs(t, err, ErrVoteQuotaExceeded)
	})

	t.Run("quota resets at local midnight", func(t *testing.T) {
		snap := storySnapshot()
		for i := 0; i < 6; i++ {
			snap = addSentence(snap, fmt.Sprintf("s%d", i), "genesis", "author-1", 0, baseTime)
		}

		yesterday := time.Date(2026, 2, 28, 23, 0, 0, 0, time.UTC)
		var err error
		for i := 0; i < 5; i++ {
			snap, err = CastVote(snap, "author-2", fmt.Sprintf("s%d", i), yesterday.Add(time.Duration(i)*time.Minute))
			require.NoError(t, err)
		}

		// A fresh day, a fresh quota.
		next, err := CastVote(snap, "author-2", "s5", now)
		require.NoError(t, err)
		assert.Len(t, next.Votes, 6)
	})

	t.Run("rejects votes on unknown or closed sentences", func(t *testing.T) {
		snap := addSentence(storySnapshot(), "s1", "genesis", "author-1", 0, baseTime)
		snap.Sentence("s1").Status = entities.StatusRejected

		_, err := CastVote(snap, "author-2", "missing", now)
		assert.ErrorIs(t, err, ErrUnknownSentence)

		_, err = CastVote(snap, "author-2", "s1", now)
		assert.ErrorIs(t, err, ErrVotingClosed)
	})
}

func TestDailyVoteCount(t *testing.T) {
	snap := addSentence(storySnapshot(), "s1", "genesis", "author-1", 0, baseTime)

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	snap.Votes = []entities.Vote{
		{ID: "v1", VoterID: "author-2", SentenceID: "s1", CastAt: time.Date(2026, 2, 28, 23, 59, 0, 0, time.UTC)},
		{ID: "v2", VoterID: "author-2", SentenceID: "s1", CastAt: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "v3", VoterID: "author-2", SentenceID: "s1", CastAt: time.Date(2026, 3, 1, 11, 30, 0, 0, time.UTC)},
		{ID: "v4", VoterID: "author-1", SentenceID: "s1", CastAt: now},
	}

	// Midnight counts, yesterday doesn't, other voters don't.
	assert.Equal(t, 2, DailyVoteCount(snap, "author-2", now))
	assert.Equal(t, 1, DailyVoteCount(snap, "author-1", now))
	assert.Equal(t, 0, DailyVoteCount(snap, "nobody", now))
}
