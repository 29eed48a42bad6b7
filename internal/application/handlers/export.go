package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ersonp/fabula/internal/domain/ports"
	"github.com/ersonp/fabula/internal/domain/services"
)

// ExportHandler renders story data for export.
type ExportHandler struct {
	store ports.StoryStore
}

// NewExportHandler creates a new export handler.
func NewExportHandler(store ports.StoryStore) *ExportHandler {
	return &ExportHandler{store: store}
}

// SnapshotJSON exports the full snapshot as indented JSON.
func (h *ExportHandler) SnapshotJSON(ctx context.Context) ([]byte, error) {
	snap, err := h.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading snapshot: %w", err)
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling snapshot: %w", err)
	}
	return data, nil
}

// PathMarkdown renders the lineage of one branch as a markdown document:
// the branch title as heading, then each sentence attributed to its author.
func (h *ExportHandler) PathMarkdown(ctx context.Context, branchID string) (string, error) {
	snap, err := h.store.Load(ctx)
	if err != nil {
		return "", fmt.Errorf("loading snapshot: %w", err)
	}

	info, err := services.LookupBranch(snap, branchID)
	if err != nil {
		return "", err
	}

	path, err := services.AncestorPath(snap, branchID)
	if err != nil {
		return "", fmt.Errorf("reconstructing path: %w", err)
	}

	names := authorNames(snap)

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", info.Branch.Title)
	if info.Event != nil {
		fmt.Fprintf(&b, "_Event: %s_\n\n", info.Event.Title)
	}
	for _, s := range path {
		name := names[s.AuthorID]
		if name == "" {
			name = s.AuthorID
		}
		fmt.Fprintf(&b, "%s\n— *%s*\n\n", s.Text, name)
	}
	return b.String(), nil
}
