// Package services implements the branching-story resolution engine.
package services

import "time"

// Fixed engine rules. These mirror the community contract of the story:
// changing them changes which sentences win.
const (
	// WinningVoteCount is the vote threshold a sentence must reach to
	// compete for promotion.
	WinningVoteCount = 5

	// VotingWindow is how long a sentence may collect votes before an
	// under-threshold candidate is timed out.
	VotingWindow = 12 * time.Hour

	// DailyVoteLimit caps how many votes one voter may cast per calendar day.
	DailyVoteLimit = 5

	// SweepInterval is the cadence of the background timeout sweep.
	SweepInterval = 60 * time.Second

	// MinSentenceLen and MaxSentenceLen bound submitted sentence text,
	// in characters.
	MinSentenceLen = 5
	MaxSentenceLen = 150
)
