package handlers

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/fabula/internal/domain/services"
)

func TestVoteHandler(t *testing.T) {
	ctx := context.Background()
	now := baseTime.Add(time.Hour)

	t.Run("casts a vote and reports the remaining quota", func(t *testing.T) {
		store := seededStore()
		var mu sync.Mutex
		handler := NewVoteHandler(store, &mu)

		remaining, err := handler.Handle(ctx, "Scout", "candidate", now)
		require.NoError(t, err)
		assert.Equal(t, services.DailyVoteLimit-1, remaining)

		assert.Equal(t, 1, store.SaveCount)
		assert.Equal(t, 1, store.Snapshot.Sentence("candidate").Votes)

		// A voter seen for the first time is created on the way in.
		require.NotNil(t, store.Snapshot.AuthorByName("Scout"))
	})

	t.Run("rejects voting on one's own sentence", func(t *testing.T) {
		store := seededStore()
		var mu sync.Mutex
		handler := NewVoteHandler(store, &mu)

		_, err := handler.Handle(ctx, "Wanderer", "candidate", now)
		assert.ErrorIs(t, err, services.ErrOwnSentence)
		assert.Zero(t, store.SaveCount)
	})

	t.Run("rejects unknown sentences", func(t *testing.T) {
		store := seededStore()
		var mu sync.Mutex
		handler := NewVoteHandler(store, &mu)

		_, err := handler.Handle(ctx, "Scout", "nope", now)
		assert.ErrorIs(t, err, services.ErrUnknownSentence)
	})

	t.Run("rejects a duplicate vote", func(t *testing.T) {
		store := seededStore()
		var mu sync.Mutex
		handler := NewVoteHandler(store, &mu)

		_, err := handler.Handle(ctx, "Scout", "candidate", now)
		require.NoError(t, err)

		_, err = handler.Handle(ctx, "Scout", "candidate", now)
		assert.ErrorIs(t, err, services.ErrAlreadyVoted)
		assert.Equal(t, 1, store.SaveCount)
	})
}
