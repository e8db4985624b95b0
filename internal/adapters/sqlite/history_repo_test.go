package sqlite_test

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/toolstate/internal/adapters/sqlite"
	"github.com/example/toolstate/internal/db"
	"github.com/example/toolstate/internal/models"
	"github.com/example/toolstate/internal/ports/secondary"
)

func setupHistoryTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := db.InitSchema(conn); err != nil {
		t.Fatalf("failed to apply schema: %v", err)
	}

	t.Cleanup(func() {
		conn.Close()
	})

	return conn
}

func TestHistoryRepository_RecordAndQuery(t *testing.T) {
	repo := sqlite.NewHistoryRepository(setupHistoryTestDB(t))
	ctx := context.Background()

	entries := []*secondary.HistoryEntry{
		{Platform: "linux", Commit: "aaa", Ordinal: 0, Tool: "miri", Status: models.StatusTestPass},
		{Platform: "linux", Commit: "bbb", Ordinal: 1, Tool: "miri", Status: models.StatusTestFail},
		{Platform: "windows", Commit: "bbb", Ordinal: 1, Tool: "miri", Status: models.StatusBuildFail},
		{Platform: "linux", Commit: "bbb", Ordinal: 1, Tool: "rls", Status: models.StatusTestPass},
	}
	for _, e := range entries {
		if err := repo.Record(ctx, e); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	got, err := repo.LatestForTool(ctx, "miri", 10)
	if err != nil {
		t.Fatalf("LatestForTool failed: %v", err)
	}

	if len(got) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(got))
	}
	// Newest ordinal first, platforms in name order within a commit.
	if got[0].Commit != "bbb" || got[0].Platform != "linux" {
		t.Errorf("got[0] = %+v", got[0])
	}
	if got[1].Platform != "windows" || got[1].Status != models.StatusBuildFail {
		t.Errorf("got[1] = %+v", got[1])
	}
	if got[2].Commit != "aaa" {
		t.Errorf("got[2] = %+v", got[2])
	}
}

func TestHistoryRepository_RecordIsIdempotent(t *testing.T) {
	repo := sqlite.NewHistoryRepository(setupHistoryTestDB(t))
	ctx := context.Background()

	entry := &secondary.HistoryEntry{Platform: "linux", Commit: "aaa", Ordinal: 0, Tool: "miri", Status: models.StatusTestPass}
	if err := repo.Record(ctx, entry); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	entry.Status = models.StatusTestFail
	if err := repo.Record(ctx, entry); err != nil {
		t.Fatalf("re-Record failed: %v", err)
	}

	got, err := repo.LatestForTool(ctx, "miri", 10)
	if err != nil {
		t.Fatalf("LatestForTool failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected a single row after upsert, got %d", len(got))
	}
	if got[0].Status != models.StatusTestFail {
		t.Errorf("status = %v, want test-fail", got[0].Status)
	}
}

func TestHistoryRepository_Limit(t *testing.T) {
	repo := sqlite.NewHistoryRepository(setupHistoryTestDB(t))
	ctx := context.Background()

	for i, commit := range []string{"aaa", "bbb", "ccc"} {
		entry := &secondary.HistoryEntry{Platform: "linux", Commit: commit, Ordinal: i, Tool: "rls", Status: models.StatusTestPass}
		if err := repo.Record(ctx, entry); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	got, err := repo.LatestForTool(ctx, "rls", 2)
	if err != nil {
		t.Fatalf("LatestForTool failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	if got[0].Commit != "ccc" {
		t.Errorf("got[0].Commit = %q, want ccc", got[0].Commit)
	}
}
