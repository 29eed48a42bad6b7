package services

import (
	"time"

	"github.com/ersonp/fabula/internal/domain/entities"
)

// SweepTimeouts rejects every sentence still in Voting whose voting window
// has elapsed and whose vote count is below the winning threshold. It
// returns the updated snapshot and the number of sentences rejected; when
// nothing times out the input snapshot is returned as-is.
//
// Timeout never touches a sentence that already reached the threshold:
// those stay eligible until an explicit resolution. The sweep is
// idempotent, so the periodic pass and the pre-resolution pass compose.
func SweepTimeouts(snap *entities.Snapshot, now time.Time) (*entities.Snapshot, int) {
	if countTimedOut(snap, now) == 0 {
		return snap, 0
	}
	next := snap.Clone()
	return next, sweepInPlace(next, now)
}

// sweepInPlace applies the timeout rule directly to snap's sentences.
// Used by the resolution engine on its own derived snapshot.
func sweepInPlace(snap *entities.Snapshot, now time.Time) int {
	rejected := 0
	for i := range snap.Sentences {
		if timedOut(&snap.Sentences[i], now) {
			snap.Sentences[i].Status = entities.StatusRejected
			rejected++
		}
	}
	return rejected
}

func countTimedOut(snap *entities.Snapshot, now time.Time) int {
	n := 0
	for i := range snap.Sentences {
		if timedOut(&snap.Sentences[i], now) {
			n++
		}
	}
	return n
}

func timedOut(s *entities.Sentence, now time.Time) bool {
	return s.Status == entities.StatusVoting &&
		now.Sub(s.SubmittedAt) > VotingWindow &&
		s.Votes < WinningVoteCount
}
