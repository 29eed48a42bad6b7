package services

import (
	"sort"

	"github.com/ersonp/fabula/internal/domain/entities"
)

// BuildForest groups all sentences by parent ID. Sentences with no parent
// (branch roots) are keyed under the empty string. Each group is ordered by
// submission time so renders are stable.
func BuildForest(sentences []entities.Sentence) map[string][]entities.Sentence {
	forest := make(map[string][]entities.Sentence)
	for _, s := range sentences {
		forest[s.ParentID] = append(forest[s.ParentID], s)
	}
	for parent := range forest {
		group := forest[parent]
		sort.Slice(group, func(i, j int) bool {
			return group[i].SubmittedAt.Before(group[j].SubmittedAt)
		})
	}
	return forest
}

// AncestorPath reconstructs the lineage for a branch: the ordered sequence
// of sentences from the ultimate genesis sentence down to the branch's root
// sentence. The walk follows parent links using a direct ID index, so it
// runs in time proportional to the path length.
//
// A missing parent reference is a data-integrity error, surfaced as
// *DanglingParentError.
func AncestorPath(snap *entities.Snapshot, branchID string) ([]entities.Sentence, error) {
	branch := snap.Branch(branchID)
	if branch == nil {
		return nil, ErrUnknownBranch
	}

	byID := make(map[string]entities.Sentence, len(snap.Sentences))
	for _, s := range snap.Sentences {
		byID[s.ID] = s
	}

	current, ok := byID[branch.RootSentenceID]
	if !ok {
		if branch.RootSentenceID == "" {
			// The genesis branch may predate its root sentence in an
			// empty universe.
			return nil, nil
		}
		return nil, ErrUnknownSentence
	}

	var path []entities.Sentence
	for {
		path = append(path, current)
		if current.ParentID == "" {
			break
		}
		parent, ok := byID[current.ParentID]
		if !ok {
			return nil, &DanglingParentError{SentenceID: current.ID, ParentID: current.ParentID}
		}
		current = parent
	}

	// The walk collects leaf-to-genesis; the reader wants genesis first.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}

// Continuations returns the children of the given sentence, ordered by
// submission time.
func Continuations(snap *entities.Snapshot, sentenceID string) []entities.Sentence {
	var children []entities.Sentence
	for _, s := range snap.Sentences {
		if s.ParentID == sentenceID {
			children = append(children, s)
		}
	}
	sort.Slice(children, func(i, j int) bool {
		return children[i].SubmittedAt.Before(children[j].SubmittedAt)
	})
	return children
}
