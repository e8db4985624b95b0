package app

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/example/toolstate/internal/config"
	"github.com/example/toolstate/internal/models"
	"github.com/example/toolstate/internal/ports/primary"
	"github.com/example/toolstate/internal/ports/secondary"
)

// PublishServiceImpl implements the PublishService interface.
type PublishServiceImpl struct {
	registry *config.Registry
	state    secondary.StateStore
	history  secondary.HistoryReader
	tracker  secondary.IssueTracker
}

// NewPublishService creates a new PublishService with injected dependencies.
func NewPublishService(
	registry *config.Registry,
	state secondary.StateStore,
	history secondary.HistoryReader,
	tracker secondary.IssueTracker,
) *PublishServiceImpl {
	return &PublishServiceImpl{
		registry: registry,
		state:    state,
		history:  history,
		tracker:  tracker,
	}
}

// Publish reconciles the status table against the statuses recorded for
// req.Commit. Every table cell is refreshed from the history logs; ranked
// comparison against the previous value accumulates the change summary and
// files an issue per qualifying regression. The table is rewritten only
// when at least one tool changed.
func (s *PublishServiceImpl) Publish(ctx context.Context, req primary.PublishRequest) (*primary.PublishResult, error) {
	table, err := s.state.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load status table: %w", err)
	}

	current := make(map[string]map[string]models.Status, len(s.registry.Platforms))
	for _, platform := range s.registry.Platforms {
		statuses, err := s.history.StatusAt(ctx, platform, req.Commit)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s history: %w", platform, err)
		}
		current[platform] = statuses
	}

	change := models.ParseChangeRef(s.registry.Slug, req.CommitMsg)

	var summary strings.Builder
	anythingChanged := false

	for _, entry := range table {
		tool := entry.Tool
		toolCfg := s.registry.Tools[tool]
		changed := false
		var events []*models.RegressionEvent

		for _, platform := range s.registry.Platforms {
			old, ok := entry.Platforms[platform]
			if !ok {
				continue
			}
			cur, ok := current[platform][tool]
			if !ok {
				cur = old
			}
			entry.Platforms[platform] = cur

			switch {
			case cur.Rank() > old.Rank():
				changed = true
				fmt.Fprintf(&summary, "🎉 %s on %s: %s → %s (cc %s, %s).\n",
					tool, platform, old, cur, s.registry.Mention(tool), s.registry.InfraPing)
			case cur.Rank() < old.Rank():
				changed = true
				fmt.Fprintf(&summary, "💔 %s on %s: %s → %s (cc %s, %s).\n",
					tool, platform, old, cur, s.registry.Mention(tool), s.registry.InfraPing)
				// Only build failures warrant an issue for most tools;
				// test failures can be spurious.
				if cur == models.StatusBuildFail || (toolCfg.IssueOnTestFail && cur == models.StatusTestFail) {
					events = append(events, &models.RegressionEvent{
						Tool:        tool,
						Platform:    platform,
						Old:         old,
						New:         cur,
						Maintainers: toolCfg.Maintainers,
						RepoURL:     toolCfg.Repo,
					})
				}
			}
		}

		for _, event := range events {
			if req.DryRun {
				continue
			}
			issueReq := s.issueRequest(event, change, req.SkipMentions)
			if err := s.tracker.CreateIssue(ctx, issueReq); err != nil {
				// A broken notification must not block persisting the
				// corrected table.
				log.Printf("failed to create issue for %s on %s: %v", event.Tool, event.Platform, err)
			}
		}

		if changed {
			entry.Commit = req.Commit
			entry.Datetime = req.Datetime
			anythingChanged = true
		}
	}

	if !anythingChanged {
		return &primary.PublishResult{Change: change}, nil
	}

	if !req.DryRun {
		if err := s.state.Save(ctx, table); err != nil {
			return nil, fmt.Errorf("failed to save status table: %w", err)
		}
	}

	message := fmt.Sprintf("📣 Toolstate changed by %s!\n\nTested on commit %s@%s.\nDirect link to PR: <%s>\n\n%s",
		change.Label, s.registry.Slug, req.Commit, change.URL, summary.String())
	if req.SkipMentions {
		message = strings.ReplaceAll(message, "@", "")
	}

	return &primary.PublishResult{
		Changed: true,
		Message: message,
		Change:  change,
	}, nil
}

func (s *PublishServiceImpl) issueRequest(event *models.RegressionEvent, change models.ChangeRef, skipMentions bool) *secondary.IssueRequest {
	body := fmt.Sprintf(`Hello, this is your friendly neighborhood mergebot.
After merging PR %s, I observed that the tool %s %s.
A follow-up PR to the repository %s is needed to fix the fallout.

cc @%s, do you think you would have time to do the follow-up work?
If so, that would be great!

cc @%s, the PR reviewer, and %s -- nominating for prioritization.
`,
		change.Label, event.Tool, event.New.Description(), event.RepoURL,
		change.Author, change.Reviewer, s.registry.TriagePing)
	if skipMentions {
		body = strings.ReplaceAll(body, "@", "")
	}

	return &secondary.IssueRequest{
		Title:     fmt.Sprintf("`%s` no longer builds after %s", event.Tool, change.Label),
		Body:      body,
		Assignees: event.Maintainers,
		Labels:    s.registry.Labels,
	}
}

// Ensure PublishServiceImpl implements the interface.
var _ primary.PublishService = (*PublishServiceImpl)(nil)
