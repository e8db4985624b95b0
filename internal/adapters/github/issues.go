package github

import (
	"context"
	"fmt"

	"github.com/example/toolstate/internal/ports/secondary"
)

// CreateIssue files a regression issue with the configured tracker.
func (c *Client) CreateIssue(ctx context.Context, req *secondary.IssueRequest) error {
	if c.issuesURL == "" {
		return fmt.Errorf("issue tracker endpoint not configured (TOOLSTATE_ISSUES_API_URL)")
	}

	payload := map[string]any{
		"title":     req.Title,
		"body":      req.Body,
		"assignees": req.Assignees,
		"labels":    req.Labels,
	}
	return c.post(ctx, c.issuesURL, payload)
}

// CommentOnChange posts the change summary as a comment on the
// originating pull request.
func (c *Client) CommentOnChange(ctx context.Context, number int, body string) error {
	if c.issuesURL == "" {
		return fmt.Errorf("issue tracker endpoint not configured (TOOLSTATE_ISSUES_API_URL)")
	}

	url := fmt.Sprintf("%s/%d/comments", c.issuesURL, number)
	return c.post(ctx, url, map[string]any{"body": body})
}

// Ensure Client implements the interface.
var _ secondary.IssueTracker = (*Client)(nil)
