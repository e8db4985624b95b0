package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"

	"github.com/example/toolstate/internal/ports/secondary"
)

// nextLinkPattern extracts the next page URL from a Link response header.
var nextLinkPattern = regexp.MustCompile(`<([^>]+)>; rel="next"`)

// AssignableUsers fetches the logins of every assignable collaborator of
// a repository, following the Link header until no next page remains.
func (c *Client) AssignableUsers(ctx context.Context, repo string) ([]string, error) {
	url := fmt.Sprintf("%s/repos/%s/collaborators?per_page=100", c.apiBase, repo)

	var logins []string
	for url != "" {
		page, next, err := c.collaboratorPage(ctx, url)
		if err != nil {
			return nil, err
		}
		logins = append(logins, page...)
		url = next
	}
	return logins, nil
}

func (c *Client) collaboratorPage(ctx context.Context, url string) (logins []string, next string, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "token "+c.token)
	// Resolves nested team memberships as individual collaborators.
	req.Header.Set("Accept", "application/vnd.github.hellcat-preview+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("failed to GET %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("GET %s returned %s", url, resp.Status)
	}

	var users []struct {
		Login string `json:"login"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&users); err != nil {
		return nil, "", fmt.Errorf("failed to decode collaborator page: %w", err)
	}
	for _, u := range users {
		logins = append(logins, u.Login)
	}

	if m := nextLinkPattern.FindStringSubmatch(resp.Header.Get("Link")); m != nil {
		next = m[1]
	}
	return logins, next, nil
}

// Ensure Client implements the interface.
var _ secondary.CollaboratorLister = (*Client)(nil)
