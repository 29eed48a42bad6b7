package services

import (
	"time"

	"github.com/google/uuid"

	"github.com/ersonp/fabula/internal/domain/entities"
)

// CastVote records one vote by voterID on sentenceID and returns the
// updated snapshot. The vote record and the sentence's vote count move
// together: on any error the input snapshot is returned unchanged.
//
// The caller is responsible for the own-sentence capability check; the
// ledger rejects duplicates and quota violations regardless of author.
func CastVote(snap *entities.Snapshot, voterID, sentenceID string, now time.Time) (*entities.Snapshot, error) {
	target := snap.Sentence(sentenceID)
	if target == nil {
		return nil, ErrUnknownSentence
	}
	if target.Status != entities.StatusVoting {
		return nil, ErrVotingClosed
	}
	if snap.HasVote(voterID, sentenceID) {
		return nil, ErrAlreadyVoted
	}
	if DailyVoteCount(snap, voterID, now) >= DailyVoteLimit {
		return nil, ErrVoteQuotaExceeded
	}

	next := snap.Clone()
	next.Votes = append(next.Votes, entities.Vote{
		ID:         uuid.New().String(),
		VoterID:    voterID,
		SentenceID: sentenceID,
		CastAt:     now,
	})
	next.Sentence(sentenceID).Votes++
	return next, nil
}

// DailyVoteCount counts the voter's votes cast within now's calendar day,
// from local midnight up to now.
func DailyVoteCount(snap *entities.Snapshot, voterID string, now time.Time) int {
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	count := 0
	for _, v := range snap.Votes {
		if v.VoterID != voterID {
			continue
		}
		if !v.CastAt.Before(startOfDay) && !v.CastAt.After(now) {
			count++
		}
	}
	return count
}
