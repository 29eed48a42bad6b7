package services

import (
	"errors"
	"fmt"
)

// User-input errors. These are reported to the caller and never mutate
// state.
var (
	// ErrAlreadyVoted is returned when a voter votes twice on one sentence.
	ErrAlreadyVoted = errors.New("already voted on this sentence")

	// ErrVoteQuotaExceeded is returned when a voter hits the daily limit.
	ErrVoteQuotaExceeded = errors.New("daily vote limit reached")

	// ErrVotingClosed is returned when voting on a sentence that has
	// already been approved or rejected.
	ErrVotingClosed = errors.New("voting is closed for this sentence")

	// ErrOwnSentence is returned when an author votes on their own sentence.
	ErrOwnSentence = errors.New("cannot vote on your own sentence")

	// ErrUnknownSentence is returned when a sentence ID doesn't resolve.
	ErrUnknownSentence = errors.New("sentence not found")

	// ErrUnknownBranch is returned when a branch ID doesn't resolve.
	ErrUnknownBranch = errors.New("branch not found")

	// ErrUnknownEvent is returned when an event ID doesn't resolve.
	ErrUnknownEvent = errors.New("event not found")

	// ErrUnknownAuthor is returned when an author ID doesn't resolve.
	ErrUnknownAuthor = errors.New("author not found")

	// ErrTextLength is returned when submitted text is out of bounds.
	ErrTextLength = fmt.Errorf("sentence must be between %d and %d characters", MinSentenceLen, MaxSentenceLen)
)

// DanglingParentError is a data-integrity error: a sentence references a
// parent that doesn't exist in the snapshot. Path reconstruction surfaces
// it instead of silently truncating the lineage.
type DanglingParentError struct {
	SentenceID string
	ParentID   string
}

func (e *DanglingParentError) Error() string {
	return fmt.Sprintf("sentence %s references missing parent %s", e.SentenceID, e.ParentID)
}
