package persistence

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/toolstate/internal/models"
	"github.com/example/toolstate/internal/ports/secondary"
)

// HistoryDir implements secondary.HistoryReader over a directory of
// per-platform logs named <platform>.tsv, each line holding a commit hash
// and a JSON blob of tool statuses separated by a tab.
type HistoryDir struct {
	dir string
}

// NewHistoryDir creates a history reader rooted at dir.
func NewHistoryDir(dir string) *HistoryDir {
	return &HistoryDir{dir: dir}
}

// errStopScan aborts a Scan early once the target entry is found.
var errStopScan = errors.New("stop scan")

// StatusAt scans one platform's log for a commit. A commit with no entry
// yields an empty map.
func (h *HistoryDir) StatusAt(ctx context.Context, platform, commit string) (map[string]models.Status, error) {
	found := map[string]models.Status{}
	err := h.Scan(ctx, platform, func(c string, ordinal int, statuses map[string]models.Status) error {
		if c == commit {
			found = statuses
			return errStopScan
		}
		return nil
	})
	if err != nil && !errors.Is(err, errStopScan) {
		return nil, err
	}
	return found, nil
}

// Scan walks every line of one platform's log in file order.
func (h *HistoryDir) Scan(ctx context.Context, platform string, fn func(commit string, ordinal int, statuses map[string]models.Status) error) error {
	path := filepath.Join(h.dir, platform+".tsv")
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open history log: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	ordinal := 0
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		commit, blob, ok := strings.Cut(line, "\t")
		if !ok {
			return fmt.Errorf("malformed history line %d in %s", ordinal+1, path)
		}

		var statuses map[string]models.Status
		if err := json.Unmarshal([]byte(blob), &statuses); err != nil {
			return fmt.Errorf("malformed status blob for commit %s in %s: %w", commit, path, err)
		}
		if err := fn(commit, ordinal, statuses); err != nil {
			return err
		}
		ordinal++
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to scan history log %s: %w", path, err)
	}
	return nil
}

// Ensure HistoryDir implements the interface.
var _ secondary.HistoryReader = (*HistoryDir)(nil)
