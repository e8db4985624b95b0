package persistence

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/toolstate/internal/models"
)

func writeStateFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "latest.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write state file: %v", err)
	}
	return path
}

func TestStateFile_Load(t *testing.T) {
	path := writeStateFile(t, `[
    {"tool": "miri", "windows": "test-fail", "linux": "test-pass", "commit": "abc", "datetime": "2026-08-25T00:00:00Z"},
    {"tool": "rls", "windows": "test-pass", "linux": "test-pass", "commit": "abc", "datetime": "2026-08-25T00:00:00Z"}
]`)

	table, err := NewStateFile(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(table) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(table))
	}
	if table[0].Tool != "miri" || table[1].Tool != "rls" {
		t.Errorf("entry order not preserved: %s, %s", table[0].Tool, table[1].Tool)
	}
	if table[0].Platforms["windows"] != models.StatusTestFail {
		t.Errorf("miri windows = %v", table[0].Platforms["windows"])
	}
}

func TestStateFile_Load_Missing(t *testing.T) {
	store := NewStateFile(filepath.Join(t.TempDir(), "nope.json"))
	if _, err := store.Load(context.Background()); err == nil {
		t.Error("expected error for missing table")
	}
}

func TestStateFile_Load_BadStatus(t *testing.T) {
	path := writeStateFile(t, `[{"tool": "miri", "linux": "flaky"}]`)
	if _, err := NewStateFile(path).Load(context.Background()); err == nil {
		t.Error("expected error for invalid status value")
	}
}

func TestStateFile_SaveRoundTrip(t *testing.T) {
	path := writeStateFile(t, `[{"tool": "miri", "linux": "test-pass", "commit": "abc", "datetime": "2026-08-25T00:00:00Z"}]`)
	store := NewStateFile(path)
	ctx := context.Background()

	table, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	table[0].Platforms["linux"] = models.StatusBuildFail
	table[0].Commit = "def"
	if err := store.Save(ctx, table); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read saved table: %v", err)
	}
	if !strings.Contains(string(raw), "    \"tool\"") {
		t.Errorf("expected 4-space indentation, got:\n%s", raw)
	}

	back, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("re-Load failed: %v", err)
	}
	if back[0].Platforms["linux"] != models.StatusBuildFail {
		t.Errorf("linux = %v after round trip", back[0].Platforms["linux"])
	}
	if back[0].Commit != "def" {
		t.Errorf("commit = %q after round trip", back[0].Commit)
	}
}
