// Package mocks provides mock implementations for testing.
package mocks

import "context"

// Narrator is a mock implementation of ports.Narrator.
type Narrator struct {
	// BranchTitle return values
	Title    string
	TitleErr error

	// SuggestSentence return values
	Suggestion    string
	SuggestionErr error

	// PathSummary / SummaryTitle return values
	Summary         string
	SummaryErr      error
	SummaryHeadline string
	HeadlineErr     error

	// TitleCalls records the sentence texts passed to BranchTitle.
	TitleCalls []string
}

// BranchTitle returns the configured title or error.
func (m *Narrator) BranchTitle(_ context.Context, sentenceText string) (string, error) {
	m.TitleCalls = append(m.TitleCalls, sentenceText)
	if m.TitleErr != nil {
		return "", m.TitleErr
	}
	return m.Title, nil
}

// SuggestSentence returns the configured suggestion or error.
func (m *Narrator) SuggestSentence(_ context.Context, _ string) (string, error) {
	if m.SuggestionErr != nil {
		return "", m.SuggestionErr
	}
	return m.Suggestion, nil
}

// PathSummary returns the configured summary or error.
func (m *Narrator) PathSummary(_ context.Context, _ string) (string, error) {
	if m.SummaryErr != nil {
		return "", m.SummaryErr
	}
	return m.Summary, nil
}

// SummaryTitle returns the configured headline or error.
func (m *Narrator) SummaryTitle(_ context.Context, _ string) (string, error) {
	if m.HeadlineErr != nil {
		return "", m.HeadlineErr
	}
	return m.SummaryHeadline, nil
}
