package entities

// Snapshot is the full story state: the unit of persistence and the unit
// of atomicity for a single engine operation. Engine operations never
// mutate the snapshot they are given; they work on a clone and return it.
type Snapshot struct {
	Authors   []Author   `json:"authors"`
	Branches  []Branch   `json:"branches"`
	Sentences []Sentence `json:"sentences"`
	Votes     []Vote     `json:"votes"`
	Badges    []Badge    `json:"badges"`
	Events    []Event    `json:"events"`
}

// Clone returns a deep copy of the snapshot. All entity types are plain
// value types, so copying the slices is sufficient.
func (s *Snapshot) Clone() *Snapshot {
	c := &Snapshot{
		Authors:   make([]Author, len(s.Authors)),
		Branches:  make([]Branch, len(s.Branches)),
		Sentences: make([]Sentence, len(s.Sentences)),
		Votes:     make([]Vote, len(s.Votes)),
		Badges:    make([]Badge, len(s.Badges)),
		Events:    make([]Event, len(s.Events)),
	}
	copy(c.Authors, s.Authors)
	copy(c.Branches, s.Branches)
	copy(c.Sentences, s.Sentences)
	copy(c.Votes, s.Votes)
	copy(c.Badges, s.Badges)
	copy(c.Events, s.Events)
	return c
}

// Sentence returns a pointer to the sentence with the given ID, or nil.
// The pointer aliases the snapshot's backing slice, so mutations through it
// are visible in the snapshot.
func (s *Snapshot) Sentence(id string) *Sentence {
	for i := range s.Sentences {
		if s.Sentences[i].ID == id {
			return &s.Sentences[i]
		}
	}
	return nil
}

// Author returns a pointer to the author with the given ID, or nil.
func (s *Snapshot) Author(id string) *Author {
	for i := range s.Authors {
		if s.Authors[i].ID == id {
			return &s.Authors[i]
		}
	}
	return nil
}

// AuthorByName returns the author with the given display name
// (case-insensitive), or nil.
func (s *Snapshot) AuthorByName(name string) *Author {
	normalized := NormalizeName(name)
	for i := range s.Authors {
		if NormalizeName(s.Authors[i].DisplayName) == normalized {
			return &s.Authors[i]
		}
	}
	return nil
}

// Branch returns a pointer to the branch with the given ID, or nil.
func (s *Snapshot) Branch(id string) *Branch {
	for i := range s.Branches {
		if s.Branches[i].ID == id {
			return &s.Branches[i]
		}
	}
	return nil
}

// BranchByRoot returns the branch rooted at the given sentence, or nil.
func (s *Snapshot) BranchByRoot(sentenceID string) *Branch {
	for i := range s.Branches {
		if s.Branches[i].RootSentenceID == sentenceID {
			return &s.Branches[i]
		}
	}
	return nil
}

// Event returns a pointer to the event with the given ID, or nil.
func (s *Snapshot) Event(id string) *Event {
	for i := range s.Events {
		if s.Events[i].ID == id {
			return &s.Events[i]
		}
	}
	return nil
}

// BadgeNames returns the names of all badges held by the given author.
func (s *Snapshot) BadgeNames(authorID string) []string {
	var names []string
	for i := range s.Badges {
		if s.Badges[i].AuthorID == authorID {
			names = append(names, s.Badges[i].Name)
		}
	}
	return names
}

// HasBadge reports whether the author already holds a badge with the name.
func (s *Snapshot) HasBadge(authorID, name string) bool {
	for i := range s.Badges {
		if s.Badges[i].AuthorID == authorID && s.Badges[i].Name == name {
			return true
		}
	}
	return false
}

// HasVote reports whether the voter has already voted on the sentence.
func (s *Snapshot) HasVote(voterID, sentenceID string) bool {
	for i := range s.Votes {
		if s.Votes[i].VoterID == voterID && s.Votes[i].SentenceID == sentenceID {
			return true
		}
	}
	return false
}
