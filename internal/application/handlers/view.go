package handlers

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/ersonp/fabula/internal/domain/entities"
	"github.com/ersonp/fabula/internal/domain/ports"
	"github.com/ersonp/fabula/internal/domain/services"
)

// ViewHandler serves the read-only views of the story: active path, full
// tree, leaderboard, profiles, and events. Readers see fully-committed
// snapshots, so no locking is needed here.
type ViewHandler struct {
	store ports.StoryStore
}

// NewViewHandler creates a new view handler.
func NewViewHandler(store ports.StoryStore) *ViewHandler {
	return &ViewHandler{store: store}
}

// PathView is the active-path presentation of one branch: the lineage from
// genesis to the branch root, plus the open continuations under the tip.
type PathView struct {
	Branch        entities.Branch
	Event         *entities.Event
	Path          []entities.Sentence
	Continuations []entities.Sentence
	AuthorNames   map[string]string
}

// Path reconstructs the active path for the branch.
func (h *ViewHandler) Path(ctx context.Context, branchID string) (*PathView, error) {
	snap, err := h.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading snapshot: %w", err)
	}

	info, err := services.LookupBranch(snap, branchID)
	if err != nil {
		return nil, err
	}

	path, err := services.AncestorPath(snap, branchID)
	if err != nil {
		return nil, fmt.Errorf("reconstructing path: %w", err)
	}

	view := &PathView{
		Branch:      info.Branch,
		Event:       info.Event,
		Path:        path,
		AuthorNames: authorNames(snap),
	}
	if len(path) > 0 {
		tip := path[len(path)-1]
		view.Continuations = services.Continuations(snap, tip.ID)
	}
	return view, nil
}

// TreeView is the full-forest presentation of the story universe.
type TreeView struct {
	Forest       map[string][]entities.Sentence
	Roots        []entities.Sentence
	BranchByRoot map[string]entities.Branch
	AuthorNames  map[string]string
}

// Tree builds the full story forest.
func (h *ViewHandler) Tree(ctx context.Context) (*TreeView, error) {
	snap, err := h.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading snapshot: %w", err)
	}

	forest := services.BuildForest(snap.Sentences)
	byRoot := make(map[string]entities.Branch)
	for _, b := range snap.Branches {
		if b.RootSentenceID != "" {
			byRoot[b.RootSentenceID] = b
		}
	}

	return &TreeView{
		Forest:       forest,
		Roots:        forest[""],
		BranchByRoot: byRoot,
		AuthorNames:  authorNames(snap),
	}, nil
}

// Leaderboard returns up to limit authors ordered by wins, then by
// sentences submitted.
func (h *ViewHandler) Leaderboard(ctx context.Context, limit int) ([]entities.Author, error) {
	snap, err := h.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading snapshot: %w", err)
	}

	authors := make([]entities.Author, len(snap.Authors))
	copy(authors, snap.Authors)
	sort.Slice(authors, func(i, j int) bool {
		if authors[i].Wins != authors[j].Wins {
			return authors[i].Wins > authors[j].Wins
		}
		return authors[i].SentencesSubmitted > authors[j].SentencesSubmitted
	})

	if limit > 0 && len(authors) > limit {
		authors = authors[:limit]
	}
	return authors, nil
}

// ProfileView is one author's stats, badges, and remaining daily votes.
type ProfileView struct {
	Author         entities.Author
	Badges         []entities.Badge
	VotesRemaining int
}

// Profile returns the profile of the author with the given display name.
func (h *ViewHandler) Profile(ctx context.Context, name string, now time.Time) (*ProfileView, error) {
	snap, err := h.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading snapshot: %w", err)
	}

	author := snap.AuthorByName(name)
	if author == nil {
		return nil, services.ErrUnknownAuthor
	}

	var badges []entities.Badge
	for _, b := range snap.Badges {
		if b.AuthorID == author.ID {
			badges = append(badges, b)
		}
	}

	return &ProfileView{
		Author:         *author,
		Badges:         badges,
		VotesRemaining: services.DailyVoteLimit - services.DailyVoteCount(snap, author.ID, now),
	}, nil
}

// EventView pairs an event with the title of its starting branch.
type EventView struct {
	Event       entities.Event
	BranchTitle string
}

// Events lists all events, active first.
func (h *ViewHandler) Events(ctx context.Context) ([]EventView, error) {
	snap, err := h.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading snapshot: %w", err)
	}

	views := make([]EventView, 0, len(snap.Events))
	for _, e := range snap.Events {
		view := EventView{Event: e}
		if b := snap.Branch(e.StartBranchID); b != nil {
			view.BranchTitle = b.Title
		}
		views = append(views, view)
	}
	sort.SliceStable(views, func(i, j int) bool {
		return views[i].Event.Active && !views[j].Event.Active
	})
	return views, nil
}

func authorNames(snap *entities.Snapshot) map[string]string {
	names := make(map[string]string, len(snap.Authors))
	for _, a := range snap.Authors {
		names[a.ID] = a.DisplayName
	}
	return names
}
