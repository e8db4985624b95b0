package persistence

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/example/toolstate/internal/models"
)

func writeHistoryLog(t *testing.T, dir, platform, content string) {
	t.Helper()

	path := filepath.Join(dir, platform+".tsv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write history log: %v", err)
	}
}

func TestHistoryDir_StatusAt(t *testing.T) {
	dir := t.TempDir()
	writeHistoryLog(t, dir, "linux",
		"aaa111\t{\"miri\": \"test-pass\", \"rls\": \"test-fail\"}\n"+
			"bbb222\t{\"miri\": \"build-fail\"}\n")

	reader := NewHistoryDir(dir)
	statuses, err := reader.StatusAt(context.Background(), "linux", "bbb222")
	if err != nil {
		t.Fatalf("StatusAt failed: %v", err)
	}

	if len(statuses) != 1 {
		t.Fatalf("expected 1 status, got %d", len(statuses))
	}
	if statuses["miri"] != models.StatusBuildFail {
		t.Errorf("miri = %v, want build-fail", statuses["miri"])
	}
}

func TestHistoryDir_StatusAt_UnknownCommit(t *testing.T) {
	dir := t.TempDir()
	writeHistoryLog(t, dir, "linux", "aaa111\t{\"miri\": \"test-pass\"}\n")

	statuses, err := NewHistoryDir(dir).StatusAt(context.Background(), "linux", "zzz999")
	if err != nil {
		t.Fatalf("StatusAt failed: %v", err)
	}
	if len(statuses) != 0 {
		t.Errorf("unknown commit must yield an empty map, got %v", statuses)
	}
}

func TestHistoryDir_StatusAt_MissingLog(t *testing.T) {
	reader := NewHistoryDir(t.TempDir())
	if _, err := reader.StatusAt(context.Background(), "linux", "aaa111"); err == nil {
		t.Error("expected error for missing log file")
	}
}

func TestHistoryDir_Scan(t *testing.T) {
	dir := t.TempDir()
	writeHistoryLog(t, dir, "windows",
		"aaa111\t{\"miri\": \"test-pass\"}\n"+
			"\n"+
			"bbb222\t{\"miri\": \"test-fail\"}\n")

	var commits []string
	var ordinals []int
	err := NewHistoryDir(dir).Scan(context.Background(), "windows", func(commit string, ordinal int, statuses map[string]models.Status) error {
		commits = append(commits, commit)
		ordinals = append(ordinals, ordinal)
		return nil
	})
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	if len(commits) != 2 || commits[0] != "aaa111" || commits[1] != "bbb222" {
		t.Errorf("commits = %v", commits)
	}
	if ordinals[1] != 1 {
		t.Errorf("ordinals = %v, blank lines must not consume ordinals", ordinals)
	}
}

func TestHistoryDir_Scan_MalformedLine(t *testing.T) {
	dir := t.TempDir()
	writeHistoryLog(t, dir, "linux", "not-a-tab-separated-line\n")

	err := NewHistoryDir(dir).Scan(context.Background(), "linux", func(string, int, map[string]models.Status) error {
		return nil
	})
	if err == nil {
		t.Error("expected error for malformed line")
	}
}
