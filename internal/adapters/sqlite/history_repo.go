// Package sqlite contains the SQLite implementation of the history index.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/toolstate/internal/models"
	"github.com/example/toolstate/internal/ports/secondary"
)

// HistoryRepository implements secondary.HistoryIndex with SQLite.
type HistoryRepository struct {
	db *sql.DB
}

// NewHistoryRepository creates a new SQLite history index repository.
func NewHistoryRepository(db *sql.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// Record upserts one status observation, keyed on platform+commit+tool.
func (r *HistoryRepository) Record(ctx context.Context, entry *secondary.HistoryEntry) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO tool_status (platform, commit_hash, ordinal, tool, status) VALUES (?, ?, ?, ?, ?)",
		entry.Platform, entry.Commit, entry.Ordinal, entry.Tool, entry.Status.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to record history entry: %w", err)
	}
	return nil
}

// LatestForTool returns the most recent observations of a tool, newest
// first.
func (r *HistoryRepository) LatestForTool(ctx context.Context, tool string, limit int) ([]*secondary.HistoryEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT platform, commit_hash, ordinal, tool, status FROM tool_status WHERE tool = ? ORDER BY ordinal DESC, platform ASC LIMIT ?",
		tool, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var entries []*secondary.HistoryEntry
	for rows.Next() {
		var raw string
		entry := &secondary.HistoryEntry{}
		if err := rows.Scan(&entry.Platform, &entry.Commit, &entry.Ordinal, &entry.Tool, &raw); err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}
		status, err := models.ParseStatus(raw)
		if err != nil {
			return nil, fmt.Errorf("corrupt history entry for %s at %s: %w", entry.Tool, entry.Commit, err)
		}
		entry.Status = status
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate history entries: %w", err)
	}
	return entries, nil
}

// Ensure HistoryRepository implements the interface.
var _ secondary.HistoryIndex = (*HistoryRepository)(nil)
