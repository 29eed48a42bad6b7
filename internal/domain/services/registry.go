package services

import "github.com/ersonp/fabula/internal/domain/entities"

// BranchInfo is the registry's read view of a branch: its record, its root
// sentence (nil for a rootless genesis branch), and the event it belongs
// to, if any.
type BranchInfo struct {
	Branch entities.Branch
	Root   *entities.Sentence
	Event  *entities.Event
}

// LookupBranch resolves a branch ID to its registry view.
func LookupBranch(snap *entities.Snapshot, branchID string) (*BranchInfo, error) {
	branch := snap.Branch(branchID)
	if branch == nil {
		return nil, ErrUnknownBranch
	}

	info := &BranchInfo{Branch: *branch}
	if root := snap.Sentence(branch.RootSentenceID); root != nil {
		rootCopy := *root
		info.Root = &rootCopy
	}
	if branch.EventID != "" {
		if event := snap.Event(branch.EventID); event != nil {
			eventCopy := *event
			info.Event = &eventCopy
		}
	}
	return info, nil
}

// LookupEvent resolves an event ID.
func LookupEvent(snap *entities.Snapshot, eventID string) (*entities.Event, error) {
	event := snap.Event(eventID)
	if event == nil {
		return nil, ErrUnknownEvent
	}
	eventCopy := *event
	return &eventCopy, nil
}

// ActiveEvents returns every event currently flagged active. Zero, one, or
// many events may be active at a time.
func ActiveEvents(snap *entities.Snapshot) []entities.Event {
	var active []entities.Event
	for _, e := range snap.Events {
		if e.Active {
			active = append(active, e)
		}
	}
	return active
}
