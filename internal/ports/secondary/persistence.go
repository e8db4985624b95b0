// Package secondary defines the driven-side ports: interfaces implemented
// by persistence and notification adapters and consumed by the services.
package secondary

import (
	"context"

	"github.com/example/toolstate/internal/models"
)

// StateStore loads and rewrites the persisted status table. Save rewrites
// the whole table; callers only invoke it when something actually changed.
type StateStore interface {
	Load(ctx context.Context) ([]*models.ToolState, error)
	Save(ctx context.Context, table []*models.ToolState) error
}

// HistoryReader resolves tool statuses recorded for a commit in the
// append-only per-platform history logs.
type HistoryReader interface {
	// StatusAt returns the tool statuses recorded for a commit on one
	// platform. A commit with no entry yields an empty map, not an error:
	// "no report" is treated as "unchanged" downstream.
	StatusAt(ctx context.Context, platform, commit string) (map[string]models.Status, error)

	// Scan walks every entry of one platform's history log in file order.
	Scan(ctx context.Context, platform string, fn func(commit string, ordinal int, statuses map[string]models.Status) error) error
}

// HistoryEntry is one row of the local history index.
type HistoryEntry struct {
	Platform string
	Commit   string
	Ordinal  int
	Tool     string
	Status   models.Status
}

// HistoryIndex is the local queryable index of past toolstate.
type HistoryIndex interface {
	Record(ctx context.Context, entry *HistoryEntry) error
	LatestForTool(ctx context.Context, tool string, limit int) ([]*HistoryEntry, error)
}
