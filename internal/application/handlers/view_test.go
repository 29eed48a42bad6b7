package handlers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/fabula/internal/domain/entities"
	"github.com/ersonp/fabula/internal/domain/services"
)

func TestViewHandlerPath(t *testing.T) {
	ctx := context.Background()
	store := seededStore()
	handler := NewViewHandler(store)

	view, err := handler.Path(ctx, "genesis-branch")
	require.NoError(t, err)

	assert.Equal(t, "The Beginning", view.Branch.Title)
	require.Len(t, view.Path, 1)
	assert.Equal(t, "genesis", view.Path[0].ID)
	require.Len(t, view.Continuations, 1)
	assert.Equal(t, "candidate", view.Continuations[0].ID)
	assert.Equal(t, "The Origin", view.AuthorNames[SystemAuthorID])

	_, err = handler.Path(ctx, "nope")
	assert.ErrorIs(t, err, services.ErrUnknownBranch)
}

func TestViewHandlerTree(t *testing.T) {
	ctx := context.Background()
	store := seededStore()
	handler := NewViewHandler(store)

	view, err := handler.Tree(ctx)
	require.NoError(t, err)

	require.Len(t, view.Roots, 1)
	assert.Equal(t, "genesis", view.Roots[0].ID)
	assert.Len(t, view.Forest["genesis"], 1)
	assert.Equal(t, "genesis-branch", view.BranchByRoot["genesis"].ID)
}

func TestViewHandlerLeaderboard(t *testing.T) {
	ctx := context.Background()
	store := seededStore()
	store.Snapshot.Authors = append(store.Snapshot.Authors,
		entities.Author{ID: "a-wins", DisplayName: "Champion", Wins: 3, SentencesSubmitted: 2},
		entities.Author{ID: "a-busy", DisplayName: "Busy", Wins: 0, SentencesSubmitted: 9},
	)
	handler := NewViewHandler(store)

	authors, err := handler.Leaderboard(ctx, 2)
	require.NoError(t, err)
	require.Len(t, authors, 2)
	assert.Equal(t, "a-wins", authors[0].ID)
	assert.Equal(t, "a-busy", authors[1].ID)
}

func TestViewHandlerProfile(t *testing.T) {
	ctx := context.Background()
	now := baseTime.Add(time.Hour)
	store := seededStore()
	store.Snapshot.Badges = append(store.Snapshot.Badges, entities.Badge{
		ID: "b1", AuthorID: "author-1", Name: "First Contribution", AwardedAt: baseTime,
	})
	handler := NewViewHandler(store)

	profile, err := handler.Profile(ctx, "wanderer", now)
	require.NoError(t, err)
	assert.Equal(t, "author-1", profile.Author.ID)
	require.Len(t, profile.Badges, 1)
	assert.Equal(t, services.DailyVoteLimit, profile.VotesRemaining)

	_, err = handler.Profile(ctx, "stranger", now)
	assert.ErrorIs(t, err, services.ErrUnknownAuthor)
}

func TestViewHandlerEvents(t *testing.T) {
	ctx := context.Background()
	store := seededStore()
	store.Snapshot.Branches = append(store.Snapshot.Branches,
		entities.Branch{ID: "eb1", Title: "Closed Event", RootSentenceID: ""},
		entities.Branch{ID: "eb2", Title: "Open Event", RootSentenceID: ""},
	)
	store.Snapshot.Events = append(store.Snapshot.Events,
		entities.Event{ID: "e1", Title: "Old", Active: false, StartBranchID: "eb1"},
		entities.Event{ID: "e2", Title: "New", Active: true, StartBranchID: "eb2"},
	)
	handler := NewViewHandler(store)

	views, err := handler.Events(ctx)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "e2", views[0].Event.ID)
	assert.Equal(t, "Open Event", views[0].BranchTitle)
	assert.Equal(t, "e1", views[1].Event.ID)
}
