// Package wire assembles services from their adapters.
package wire

import (
	"fmt"

	"github.com/example/toolstate/internal/adapters/github"
	"github.com/example/toolstate/internal/adapters/persistence"
	"github.com/example/toolstate/internal/adapters/sqlite"
	"github.com/example/toolstate/internal/app"
	"github.com/example/toolstate/internal/config"
	"github.com/example/toolstate/internal/db"
	"github.com/example/toolstate/internal/ports/primary"
	"github.com/example/toolstate/internal/ports/secondary"
)

// IssueTracker returns the GitHub-backed issue tracker for the configured
// endpoint.
func IssueTracker(token, issuesURL string) secondary.IssueTracker {
	return github.NewClient(token, issuesURL, "")
}

// PublishService wires the reconciliation service over the file-backed
// table and history logs and the given issue tracker.
func PublishService(registry *config.Registry, statePath, historyDir string, tracker secondary.IssueTracker) primary.PublishService {
	state := persistence.NewStateFile(statePath)
	history := persistence.NewHistoryDir(historyDir)
	return app.NewPublishService(registry, state, history, tracker)
}

// ValidateService wires the maintainer validation service against the
// GitHub collaborators API.
func ValidateService(registry *config.Registry, token string) primary.ValidateService {
	client := github.NewClient(token, "", "")
	return app.NewValidateService(registry, client)
}

// HistoryService wires the history index service over the local SQLite
// index and the history logs under historyDir.
func HistoryService(registry *config.Registry, historyDir string) (primary.HistoryService, error) {
	database, err := db.GetDB()
	if err != nil {
		return nil, fmt.Errorf("failed to open history index: %w", err)
	}
	history := persistence.NewHistoryDir(historyDir)
	index := sqlite.NewHistoryRepository(database)
	return app.NewHistoryService(registry, history, index), nil
}
