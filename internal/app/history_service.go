package app

import (
	"context"
	"fmt"

	"github.com/example/toolstate/internal/config"
	"github.com/example/toolstate/internal/models"
	"github.com/example/toolstate/internal/ports/primary"
	"github.com/example/toolstate/internal/ports/secondary"
)

// HistoryServiceImpl implements the HistoryService interface.
type HistoryServiceImpl struct {
	registry *config.Registry
	history  secondary.HistoryReader
	index    secondary.HistoryIndex
}

// NewHistoryService creates a new HistoryService with injected dependencies.
func NewHistoryService(
	registry *config.Registry,
	history secondary.HistoryReader,
	index secondary.HistoryIndex,
) *HistoryServiceImpl {
	return &HistoryServiceImpl{
		registry: registry,
		history:  history,
		index:    index,
	}
}

// Import walks every tracked platform's history log and records each
// tool status into the index. Re-importing the same log is idempotent.
func (s *HistoryServiceImpl) Import(ctx context.Context) (int, error) {
	count := 0
	for _, platform := range s.registry.Platforms {
		err := s.history.Scan(ctx, platform, func(commit string, ordinal int, statuses map[string]models.Status) error {
			for tool, status := range statuses {
				entry := &secondary.HistoryEntry{
					Platform: platform,
					Commit:   commit,
					Ordinal:  ordinal,
					Tool:     tool,
					Status:   status,
				}
				if err := s.index.Record(ctx, entry); err != nil {
					return err
				}
				count++
			}
			return nil
		})
		if err != nil {
			return count, fmt.Errorf("failed to import %s history: %w", platform, err)
		}
	}
	return count, nil
}

// Show returns the most recent indexed statuses for a tool.
func (s *HistoryServiceImpl) Show(ctx context.Context, tool string, limit int) ([]primary.HistoryStatus, error) {
	entries, err := s.index.LatestForTool(ctx, tool, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history for %s: %w", tool, err)
	}

	statuses := make([]primary.HistoryStatus, len(entries))
	for i, e := range entries {
		statuses[i] = primary.HistoryStatus{
			Platform: e.Platform,
			Commit:   e.Commit,
			Status:   e.Status.String(),
		}
	}
	return statuses, nil
}

// Ensure HistoryServiceImpl implements the interface.
var _ primary.HistoryService = (*HistoryServiceImpl)(nil)
