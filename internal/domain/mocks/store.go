package mocks

import (
	"context"

	"github.com/ersonp/fabula/internal/domain/entities"
)

// StoryStore is an in-memory mock implementation of ports.StoryStore.
type StoryStore struct {
	Snapshot *entities.Snapshot
	LoadErr  error
	SaveErr  error

	// SaveCount tracks how many times Save was called.
	SaveCount int
}

// EnsureSchema is a no-op.
func (m *StoryStore) EnsureSchema(_ context.Context) error {
	return nil
}

// Load returns a clone of the held snapshot or the configured error.
func (m *StoryStore) Load(_ context.Context) (*entities.Snapshot, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.Snapshot == nil {
		return &entities.Snapshot{}, nil
	}
	return m.Snapshot.Clone(), nil
}

// Save replaces the held snapshot with a clone or returns the configured
// error.
func (m *StoryStore) Save(_ context.Context, snap *entities.Snapshot) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Snapshot = snap.Clone()
	m.SaveCount++
	return nil
}

// Close is a no-op.
func (m *StoryStore) Close() error {
	return nil
}
