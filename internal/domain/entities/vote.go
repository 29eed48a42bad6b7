package entities

import "time"

// Vote records a single voter's support for a sentence. Votes are
// append-only; at most one vote exists per (voter, sentence) pair.
type Vote struct {
	ID         string    `json:"id"`
	VoterID    string    `json:"voter_id"`
	SentenceID string    `json:"sentence_id"`
	CastAt     time.Time `json:"cast_at"`
}
