// Package github contains the HTTP adapters for the GitHub REST API:
// issue creation, PR commenting and collaborator listing.
package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultAPIBase is the production GitHub REST endpoint.
const DefaultAPIBase = "https://api.github.com"

// Client implements the IssueTracker and CollaboratorLister ports against
// the GitHub REST API using a bearer-token credential.
type Client struct {
	httpClient *http.Client
	token      string
	issuesURL  string
	apiBase    string
}

// NewClient creates a GitHub client. issuesURL is the issues collection
// endpoint of the toolstate issue tracker; apiBase defaults to the public
// API when empty (tests point it at a local server).
func NewClient(token, issuesURL, apiBase string) *Client {
	if apiBase == "" {
		apiBase = DefaultAPIBase
	}
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		token:      token,
		issuesURL:  issuesURL,
		apiBase:    apiBase,
	}
}

// post submits a JSON payload and drains the response.
func (c *Client) post(ctx context.Context, url string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "token "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to POST %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("POST %s returned %s: %s", url, resp.Status, bytes.TrimSpace(detail))
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
