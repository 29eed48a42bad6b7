package ports

import (
	"context"

	"github.com/ersonp/fabula/internal/domain/entities"
)

// StoryStore persists the story snapshot. The engine treats the snapshot
// as the unit of atomicity: Save must commit the whole snapshot or nothing.
// Timestamps must round-trip exactly, since the engine compares elapsed
// time against the voting window.
type StoryStore interface {
	// EnsureSchema creates the storage schema if it doesn't exist.
	EnsureSchema(ctx context.Context) error

	// Load reads the full snapshot.
	Load(ctx context.Context) (*entities.Snapshot, error)

	// Save atomically replaces the stored snapshot.
	Save(ctx context.Context, snap *entities.Snapshot) error

	// Close releases the underlying storage handle.
	Close() error
}
