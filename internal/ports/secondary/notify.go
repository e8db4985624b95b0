package secondary

import "context"

// IssueRequest is the payload submitted to the issue tracker for one
// regression.
type IssueRequest struct {
	Title     string
	Body      string
	Assignees []string
	Labels    []string
}

// IssueTracker files regression issues and change comments with the
// external issue tracker.
type IssueTracker interface {
	CreateIssue(ctx context.Context, req *IssueRequest) error

	// CommentOnChange posts a comment on the pull request that triggered
	// the toolstate run.
	CommentOnChange(ctx context.Context, number int, body string) error
}

// CollaboratorLister fetches the users assignable on a repository.
type CollaboratorLister interface {
	// AssignableUsers returns the logins of every assignable collaborator,
	// following pagination to exhaustion.
	AssignableUsers(ctx context.Context, repo string) ([]string, error)
}
