// Package entities contains core domain data structures.
package entities

import "time"

// Status is the voting lifecycle state of a sentence.
type Status string

// Sentence statuses. A sentence starts in Voting and moves to exactly one
// of Approved or Rejected; terminal states never change.
const (
	StatusVoting   Status = "voting"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Terminal reports whether the status is a final state.
func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// Sentence is one node of the story tree: a unit of contributed text tied
// to exactly one parent. ParentID is empty only for a branch root.
type Sentence struct {
	ID          string    `json:"id"`
	BranchID    string    `json:"branch_id"`
	ParentID    string    `json:"parent_id,omitempty"`
	AuthorID    string    `json:"author_id"`
	Text        string    `json:"text"`
	SubmittedAt time.Time `json:"submitted_at"`
	Votes       int       `json:"votes"`
	Status      Status    `json:"status"`
	EventID     string    `json:"event_id,omitempty"` // inherited from the parent sentence
}
