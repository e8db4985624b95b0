// Package primary defines the driving-side ports: the service interfaces
// consumed by the CLI and the DTOs they exchange.
package primary

import (
	"context"

	"github.com/example/toolstate/internal/models"
)

// PublishRequest carries everything the reconciliation needs for one run.
type PublishRequest struct {
	// Commit is the commit whose recorded statuses are being published.
	Commit string
	// CommitMsg is the merge commit message; PR metadata is extracted
	// from it.
	CommitMsg string
	// Datetime is the RFC3339 UTC timestamp stamped on changed entries.
	Datetime string
	// DryRun computes the change message but skips every side effect:
	// no table rewrite, no issue creation.
	DryRun bool
	// SkipMentions strips @-mentions from all outbound text to avoid
	// pinging people from test or staging runs.
	SkipMentions bool
}

// PublishResult is the outcome of one reconciliation run.
type PublishResult struct {
	// Changed reports whether any tool changed status on any platform.
	Changed bool
	// Message is the accumulated human-readable change summary; empty
	// when nothing changed.
	Message string
	// Change is the PR reference extracted from the commit message.
	Change models.ChangeRef
}

// PublishService reconciles the status table against a commit's recorded
// statuses and publishes the resulting changes.
type PublishService interface {
	Publish(ctx context.Context, req PublishRequest) (*PublishResult, error)
}
