package entities

import "time"

// Badge is a permanent achievement marker tied to an author. Badges are
// append-only; at most one badge exists per (author, badge name) pair.
type Badge struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"author_id"`
	Name      string    `json:"name"`
	AwardedAt time.Time `json:"awarded_at"`
}
