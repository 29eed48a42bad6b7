package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/fabula/internal/domain/entities"
	"github.com/ersonp/fabula/internal/domain/mocks"
)

func TestSweepRunnerRunOnce(t *testing.T) {
	ctx := context.Background()
	var mu sync.Mutex

	t.Run("saves when a sentence times out", func(t *testing.T) {
		store := &mocks.StoryStore{
			Snapshot: addSentence(storySnapshot(), "stale", "genesis", "author-1", 1, baseTime),
		}
		runner := NewSweepRunner(store, nil, &mu, 0)

		err := runner.RunOnce(ctx, baseTime.Add(VotingWindow+time.Minute))
		require.NoError(t, err)

		assert.Equal(t, 1, store.SaveCount)
		assert.Equal(t, entities.StatusRejected, store.Snapshot.Sentence("stale").Status)
	})

	t.Run("skips the save when nothing timed out", func(t *testing.T) {
		store := &mocks.StoryStore{
			Snapshot: addSentence(storySnapshot(), "fresh", "genesis", "author-1", 1, baseTime),
		}
		runner := NewSweepRunner(store, nil, &mu, 0)

		err := runner.RunOnce(ctx, baseTime.Add(time.Hour))
		require.NoError(t, err)
		assert.Zero(t, store.SaveCount)
	})

	t.Run("propagates load errors", func(t *testing.T) {
		store := &mocks.StoryStore{LoadErr: errors.New("disk gone")}
		runner := NewSweepRunner(store, nil, &mu, 0)

		err := runner.RunOnce(ctx, baseTime)
		assert.ErrorContains(t, err, "loading snapshot")
	})

	t.Run("propagates save errors", func(t *testing.T) {
		store := &mocks.StoryStore{
			Snapshot: addSentence(storySnapshot(), "stale", "genesis", "author-1", 1, baseTime),
			SaveErr:  errors.New("disk full"),
		}
		runner := NewSweepRunner(store, nil, &mu, 0)

		err := runner.RunOnce(ctx, baseTime.Add(VotingWindow+time.Minute))
		assert.ErrorContains(t, err, "saving swept snapshot")
	})
}

func TestSweepRunnerRunStopsOnCancel(t *testing.T) {
	store := &mocks.StoryStore{Snapshot: storySnapshot()}
	var mu sync.Mutex
	runner := NewSweepRunner(store, nil, &mu, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		runner.Run(ctx)
		close(done)
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("runner did not stop after cancellation")
	}
}
