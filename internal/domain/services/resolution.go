package services

import (
	"context"
	"fmt"
	"sort"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ersonp/fabula/internal/domain/entities"
	"github.com/ersonp/fabula/internal/domain/ports"
)

const (
	// titleTimeout bounds the narrator call when naming a new branch.
	// On expiry the engine falls back to a deterministic title.
	titleTimeout = 10 * time.Second

	// fallbackPrefixLen is how many characters of the winning sentence the
	// fallback title quotes.
	fallbackPrefixLen = 30

	// minTitleLen is the shortest narrator response accepted as a title;
	// anything shorter counts as degenerate and triggers the fallback.
	minTitleLen = 6
)

// Engine resolves voting rounds: it promotes winning sentences to branch
// points and applies every side effect of a win in one atomic pass over a
// derived snapshot.
type Engine struct {
	narrator ports.Narrator // nil when no naming collaborator is configured
	log      *zap.Logger
}

// NewEngine creates a resolution engine. narrator may be nil; log may be
// nil for a no-op logger.
func NewEngine(narrator ports.Narrator, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{narrator: narrator, log: log}
}

// Resolution describes the outcome of one Resolve call.
type Resolution struct {
	Approved    []entities.Sentence
	RejectedIDs []string
	TimedOut    int
	NewBranches []entities.Branch
	NewBadges   []entities.Badge
}

// Nothing reports whether the call found no candidates and timed nothing
// out, i.e. the snapshot is unchanged.
func (r *Resolution) Nothing() bool {
	return len(r.Approved) == 0 && r.TimedOut == 0
}

// Resolve runs one resolution round against snap as of now and returns the
// derived snapshot together with the outcome. The input snapshot is never
// mutated; when the outcome is Nothing the input is returned as-is.
//
// The round: sweep timeouts, collect candidates at or above the winning
// threshold, pick one winner per sibling group (votes descending, then
// earliest submission), reject the rest, and for each winner create a named
// branch, bump the author's win counter, and award any badges the updated
// stats unlock.
func (e *Engine) Resolve(ctx context.Context, snap *entities.Snapshot, now time.Time) (*entities.Snapshot, *Resolution, error) {
	next := snap.Clone()
	res := &Resolution{}

	res.TimedOut = sweepInPlace(next, now)

	groups := candidateGroups(next)
	if len(groups) == 0 {
		if res.TimedOut == 0 {
			return snap, res, nil
		}
		e.log.Info("timeout sweep only, no candidates", zap.Int("timed_out", res.TimedOut))
		return next, res, nil
	}

	// Sibling groups are processed in a fixed parent order so that badge
	// timestamps and award sequencing are deterministic.
	parents := make([]string, 0, len(groups))
	for parent := range groups {
		parents = append(parents, parent)
	}
	sort.Strings(parents)

	for _, parent := range parents {
		group := groups[parent]
		sort.Slice(group, func(i, j int) bool {
			if group[i].Votes != group[j].Votes {
				return group[i].Votes > group[j].Votes
			}
			return group[i].SubmittedAt.Before(group[j].SubmittedAt)
		})

		winner := group[0]
		for _, loser := range group[1:] {
			next.Sentence(loser.ID).Status = entities.StatusRejected
			res.RejectedIDs = append(res.RejectedIDs, loser.ID)
		}

		if err := e.promote(ctx, next, res, winner, now); err != nil {
			// Promotion only fails on corrupt data; the caller keeps the
			// original snapshot.
			return nil, nil, fmt.Errorf("promoting winner %s: %w", winner.ID, err)
		}
	}

	e.log.Info("voting resolved",
		zap.Int("approved", len(res.Approved)),
		zap.Int("rejected", len(res.RejectedIDs)),
		zap.Int("timed_out", res.TimedOut),
		zap.Int("new_badges", len(res.NewBadges)))

	return next, res, nil
}

// promote applies every side effect of one win to the derived snapshot.
func (e *Engine) promote(ctx context.Context, next *entities.Snapshot, res *Resolution, winner entities.Sentence, now time.Time) error {
	sentence := next.Sentence(winner.ID)
	sentence.Status = entities.StatusApproved
	res.Approved = append(res.Approved, *sentence)

	branch := entities.Branch{
		ID:             uuid.New().String(),
		Title:          e.branchTitle(ctx, winner.Text),
		RootSentenceID: winner.ID,
		EventID:        winner.EventID,
	}
	next.Branches = append(next.Branches, branch)
	res.NewBranches = append(res.NewBranches, branch)

	author := next.Author(winner.AuthorID)
	if author == nil {
		return ErrUnknownAuthor
	}
	author.Wins++

	award := func(name string) {
		badge := entities.Badge{
			ID:        uuid.New().String(),
			AuthorID:  author.ID,
			Name:      name,
			AwardedAt: now,
		}
		next.Badges = append(next.Badges, badge)
		res.NewBadges = append(res.NewBadges, badge)
	}

	// Badges are evaluated against the badge set as it stands after all
	// previously processed winners, so two wins by one author in the same
	// round unlock different badges in sequence.
	for _, name := range EvaluateBadges(*author, next.BadgeNames(author.ID)) {
		award(name)
	}

	if winner.EventID != "" {
		if event := next.Event(winner.EventID); event != nil && !next.HasBadge(author.ID, event.BadgeName) {
			award(event.BadgeName)
		}
	}

	return nil
}

// branchTitle asks the narrator to name the new branch, falling back to a
// deterministic title on absence, error, timeout, or a degenerate response.
func (e *Engine) branchTitle(ctx context.Context, sentenceText string) string {
	if e.narrator == nil {
		return FallbackBranchTitle(sentenceText)
	}

	ctx, cancel := context.WithTimeout(ctx, titleTimeout)
	defer cancel()

	title, err := e.narrator.BranchTitle(ctx, sentenceText)
	if err != nil {
		e.log.Warn("branch naming failed, using fallback title", zap.Error(err))
		return FallbackBranchTitle(sentenceText)
	}
	if utf8.RuneCountInString(title) < minTitleLen {
		e.log.Warn("degenerate branch title from narrator, using fallback", zap.String("title", title))
		return FallbackBranchTitle(sentenceText)
	}
	return title
}

// FallbackBranchTitle builds the deterministic branch title used whenever
// the narrator can't provide one: a fixed-length prefix of the winning
// sentence wrapped in a fixed phrase.
func FallbackBranchTitle(sentenceText string) string {
	prefix := []rune(sentenceText)
	if len(prefix) > fallbackPrefixLen {
		prefix = prefix[:fallbackPrefixLen]
	}
	return fmt.Sprintf("The path that begins with “%s...”", string(prefix))
}

// candidateGroups collects sentences still in Voting at or above the
// winning threshold, grouped by parent so siblings compete only with each
// other.
func candidateGroups(snap *entities.Snapshot) map[string][]entities.Sentence {
	groups := make(map[string][]entities.Sentence)
	for _, s := range snap.Sentences {
		if s.Status == entities.StatusVoting && s.Votes >= WinningVoteCount {
			groups[s.ParentID] = append(groups[s.ParentID], s)
		}
	}
	return groups
}
