package main

import (
	"context"
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"

	"github.com/ersonp/fabula/internal/application/handlers"
	"github.com/ersonp/fabula/internal/domain/ports"
	"github.com/ersonp/fabula/internal/domain/services"
	"github.com/ersonp/fabula/internal/infrastructure/config"
	"github.com/ersonp/fabula/internal/infrastructure/logger"
	llm "github.com/ersonp/fabula/internal/infrastructure/llm/openai"
	"github.com/ersonp/fabula/internal/infrastructure/storydb/sqlite"
)

// Deps holds high-level dependencies for commands. Only handlers are
// exposed - services and the store are internal.
type Deps struct {
	Config   *config.Config
	Log      *zap.Logger
	Vote     *handlers.VoteHandler
	Submit   *handlers.SubmitHandler
	Resolve  *handlers.ResolveHandler
	View     *handlers.ViewHandler
	Assist   *handlers.AssistHandler
	Export   *handlers.ExportHandler
	Universe *handlers.UniverseHandler
}

// internalDeps holds all dependencies including low-level components.
// Used internally by helper functions.
type internalDeps struct {
	Deps
	store    ports.StoryStore
	narrator ports.Narrator
	mu       *sync.Mutex
}

// withDeps loads config and builds dependencies, then calls the provided
// function. It handles cleanup automatically.
func withDeps(fn func(*Deps) error) error {
	return withInternalDeps(func(d *internalDeps) error {
		return fn(&d.Deps)
	})
}

// withInternalDeps provides access to all dependencies including low-level
// components. Used by commands that need the store or runner directly.
func withInternalDeps(fn func(*internalDeps) error) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer log.Sync() //nolint:errcheck // stderr sync errors are expected

	store, err := sqlite.NewRepository(config.SQLiteConfig{Path: cfg.DBPath(cwd)})
	if err != nil {
		return fmt.Errorf("creating story store: %w", err)
	}
	defer store.Close()

	if err := store.EnsureSchema(context.Background()); err != nil {
		return fmt.Errorf("ensuring story schema: %w", err)
	}

	// The narrator is optional: without an API key every caller falls
	// back or reports the assist as unavailable.
	var narrator ports.Narrator
	if cfg.LLM.APIKey != "" {
		client, err := llm.NewClient(cfg.LLM)
		if err != nil {
			return fmt.Errorf("creating narrator client: %w", err)
		}
		narrator = client
	}

	// One mutex serializes every mutation, including background sweeps.
	mu := &sync.Mutex{}
	engine := services.NewEngine(narrator, log)

	deps := &internalDeps{
		Deps: Deps{
			Config:   cfg,
			Log:      log,
			Vote:     handlers.NewVoteHandler(store, mu),
			Submit:   handlers.NewSubmitHandler(store, mu),
			Resolve:  handlers.NewResolveHandler(store, engine, mu),
			View:     handlers.NewViewHandler(store),
			Assist:   handlers.NewAssistHandler(store, narrator),
			Export:   handlers.NewExportHandler(store),
			Universe: handlers.NewUniverseHandler(store, mu),
		},
		store:    store,
		narrator: narrator,
		mu:       mu,
	}

	return fn(deps)
}

// requireAuthor returns the --as author name or an error when unset.
func requireAuthor() (string, error) {
	if globalAuthor == "" {
		return "", fmt.Errorf("author is required (use --as flag)")
	}
	return globalAuthor, nil
}
