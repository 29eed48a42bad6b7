package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/fabula/internal/domain/entities"
)

func TestLookupBranch(t *testing.T) {
	snap := storySnapshot()
	snap.Events = append(snap.Events, entities.Event{
		ID: "event-1", Title: "The Crystal Heart", Active: true,
		StartBranchID: "event-branch", BadgeName: "Crystal Explorer",
	})
	snap.Branches = append(snap.Branches, entities.Branch{
		ID: "event-branch", Title: "The Crystal Heart", RootSentenceID: "event-root", EventID: "event-1",
	})
	snap.Sentences = append(snap.Sentences, entities.Sentence{
		ID: "event-root", BranchID: "event-branch", AuthorID: "system",
		Text: "The heart pulsed under the glacier.", SubmittedAt: baseTime,
		Status: entities.StatusApproved, EventID: "event-1",
	})

	t.Run("resolves root and event", func(t *testing.T) {
		info, err := LookupBranch(snap, "event-branch")
		require.NoError(t, err)
		assert.Equal(t, "event-branch", info.Branch.ID)
		require.NotNil(t, info.Root)
		assert.Equal(t, "event-root", info.Root.ID)
		require.NotNil(t, info.Event)
		assert.Equal(t, "event-1", info.Event.ID)
	})

	t.Run("plain branch has no event", func(t *testing.T) {
		info, err := LookupBranch(snap, "genesis-branch")
		require.NoError(t, err)
		require.NotNil(t, info.Root)
		assert.Equal(t, "genesis", info.Root.ID)
		assert.Nil(t, info.Event)
	})

	t.Run("unknown branch", func(t *testing.T) {
		_, err := LookupBranch(snap, "nope")
		assert.ErrorIs(t, err, ErrUnknownBranch)
	})
}

func TestLookupEvent(t *testing.T) {
	snap := storySnapshot()
	snap.Events = append(snap.Events, entities.Event{ID: "event-1", Title: "The Crystal Heart"})

	event, err := LookupEvent(snap, "event-1")
	require.NoError(t, err)
	assert.Equal(t, "The Crystal Heart", event.Title)

	_, err = LookupEvent(snap, "nope")
	assert.ErrorIs(t, err, ErrUnknownEvent)
}

func TestActiveEvents(t *testing.T) {
	snap := storySnapshot()
	assert.Empty(t, ActiveEvents(snap))

	snap.Events = append(snap.Events,
		entities.Event{ID: "e1", Active: true},
		entities.Event{ID: "e2", Active: false},
		entities.Event{ID: "e3", Active: true},
	)

	active := ActiveEvents(snap)
	require.Len(t, active, 2)
	assert.Equal(t, "e1", active[0].ID)
	assert.Equal(t, "e3", active[1].ID)
}
