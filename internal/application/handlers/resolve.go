package handlers

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ersonp/fabula/internal/domain/ports"
	"github.com/ersonp/fabula/internal/domain/services"
)

// ResolveHandler handles the resolve-voting command.
type ResolveHandler struct {
	store  ports.StoryStore
	engine *services.Engine
	mu     *sync.Mutex
}

// NewResolveHandler creates a new resolve handler.
func NewResolveHandler(store ports.StoryStore, engine *services.Engine, mu *sync.Mutex) *ResolveHandler {
	return &ResolveHandler{store: store, engine: engine, mu: mu}
}

// Handle runs one resolution round and commits the derived snapshot. When
// the round changes nothing, the store is left untouched and the returned
// resolution reports Nothing.
func (h *ResolveHandler) Handle(ctx context.Context, now time.Time) (*services.Resolution, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	snap, err := h.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading snapshot: %w", err)
	}

	next, res, err := h.engine.Resolve(ctx, snap, now)
	if err != nil {
		return nil, fmt.Errorf("resolving voting: %w", err)
	}

	if res.Nothing() {
		return res, nil
	}

	if err := h.store.Save(ctx, next); err != nil {
		return nil, fmt.Errorf("saving snapshot: %w", err)
	}
	return res, nil
}
