package entities

import "strings"

// Author is a contributor to the story. Authors are created on first
// appearance and never deleted; the counters only ever increase.
type Author struct {
	ID                 string `json:"id"`
	DisplayName        string `json:"display_name"`
	SentencesSubmitted int    `json:"sentences_submitted"`
	Wins               int    `json:"wins"`
}

// NormalizeName converts a display name to lowercase for case-insensitive
// matching.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
