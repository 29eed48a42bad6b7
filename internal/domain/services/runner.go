package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/ersonp/fabula/internal/domain/ports"
)

// SweepRunner drives the timeout sweep on a fixed cadence against the live
// store. It shares a mutex with every other mutator so a sweep never races
// an in-flight vote, submission, or resolution on the same snapshot.
type SweepRunner struct {
	store    ports.StoryStore
	log      *zap.Logger
	mu       *sync.Mutex
	interval time.Duration
}

// NewSweepRunner creates a runner. mu must be the same mutex the
// foreground mutators hold; interval defaults to SweepInterval when
// non-positive.
func NewSweepRunner(store ports.StoryStore, log *zap.Logger, mu *sync.Mutex, interval time.Duration) *SweepRunner {
	if log == nil {
		log = zap.NewNop()
	}
	if interval <= 0 {
		interval = SweepInterval
	}
	return &SweepRunner{store: store, log: log, mu: mu, interval: interval}
}

// Run sweeps every interval until ctx is cancelled. Sweep errors are
// logged and the next tick retries; they never stop the loop.
func (r *SweepRunner) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := r.RunOnce(ctx, time.Now()); err != nil {
				r.log.Error("timeout sweep failed", zap.Error(err))
			}
		}
	}
}

// RunOnce performs a single serialized sweep pass: load, sweep, and save
// only when something timed out.
func (r *SweepRunner) RunOnce(ctx context.Context, now time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	snap, err := r.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading snapshot: %w", err)
	}

	swept, rejected := SweepTimeouts(snap, now)
	if rejected == 0 {
		return nil
	}

	if err := r.store.Save(ctx, swept); err != nil {
		return fmt.Errorf("saving swept snapshot: %w", err)
	}
	r.log.Info("rejected timed-out sentences", zap.Int("count", rejected))
	return nil
}
