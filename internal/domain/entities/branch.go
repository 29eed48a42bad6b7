package entities

// Branch is a named lineage beginning at a winning sentence. RootSentenceID
// points at the sentence that spawned the branch; it is empty only for the
// genesis branch. Branches are immutable after creation.
type Branch struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	RootSentenceID string `json:"root_sentence_id,omitempty"`
	EventID        string `json:"event_id,omitempty"`
}
