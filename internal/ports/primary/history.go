package primary

import "context"

// HistoryStatus is one indexed status observation of a tool.
type HistoryStatus struct {
	Platform string
	Commit   string
	Status   string
}

// HistoryService maintains and queries the local index of past toolstate.
type HistoryService interface {
	// Import ingests every tracked platform's history log into the index
	// and returns the number of rows recorded.
	Import(ctx context.Context) (int, error)

	// Show returns the most recent indexed statuses for a tool.
	Show(ctx context.Context, tool string, limit int) ([]HistoryStatus, error)
}
