// Package persistence contains the file-backed implementations of the
// toolstate repository interfaces: the JSON status table and the
// tab-separated per-platform history logs.
package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/example/toolstate/internal/models"
	"github.com/example/toolstate/internal/ports/secondary"
)

// StateFile implements secondary.StateStore with a JSON file holding the
// status table as an array of per-tool records.
type StateFile struct {
	path string
}

// NewStateFile creates a state store backed by the file at path.
func NewStateFile(path string) *StateFile {
	return &StateFile{path: path}
}

// Load reads and parses the status table, preserving entry order.
func (f *StateFile) Load(ctx context.Context) ([]*models.ToolState, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read status table: %w", err)
	}

	var table []*models.ToolState
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("failed to parse status table %s: %w", f.path, err)
	}
	return table, nil
}

// Save rewrites the status table in place with 4-space indentation.
func (f *StateFile) Save(ctx context.Context, table []*models.ToolState) error {
	data, err := json.MarshalIndent(table, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal status table: %w", err)
	}

	if err := os.WriteFile(f.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write status table: %w", err)
	}
	return nil
}

// Ensure StateFile implements the interface.
var _ secondary.StateStore = (*StateFile)(nil)
