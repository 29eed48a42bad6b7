package services

import "github.com/ersonp/fabula/internal/domain/entities"

// Badge names awarded by the fixed rule set.
const (
	BadgeFirstContribution = "First Contribution"
	BadgeStoryStarter      = "Story Starter"
	BadgeProlificAuthor    = "Prolific Author"
	BadgeLegendaryNarrator = "Legendary Narrator"
)

// BadgeRule maps a badge name to a threshold predicate over an author's
// cumulative counters. All predicates are monotonic, so evaluation order
// only affects award-timestamp ordering, never which rules fire.
type BadgeRule struct {
	Name      string
	Qualifies func(entities.Author) bool
}

// BadgeRules is the fixed, ordered rule set. The set is closed: new badges
// mean a new release, not new data.
var BadgeRules = []BadgeRule{
	{BadgeFirstContribution, func(a entities.Author) bool { return a.SentencesSubmitted >= 1 }},
	{BadgeStoryStarter, func(a entities.Author) bool { return a.Wins >= 1 }},
	{BadgeProlificAuthor, func(a entities.Author) bool { return a.SentencesSubmitted >= 5 }},
	{BadgeLegendaryNarrator, func(a entities.Author) bool { return a.Wins >= 3 }},
}

// EvaluateBadges returns the names of badges the author newly qualifies
// for, in rule order. A badge already in held never fires again.
func EvaluateBadges(author entities.Author, held []string) []string {
	heldSet := make(map[string]bool, len(held))
	for _, name := range held {
		heldSet[name] = true
	}

	var fired []string
	for _, rule := range BadgeRules {
		if !heldSet[rule.Name] && rule.Qualifies(author) {
			fired = append(fired, rule.Name)
		}
	}
	return fired
}
