package db

// SchemaSQL is the schema of the local history index. Tests apply it to
// in-memory databases via InitSchema, so repository code and schema cannot
// drift without a test failing.
const SchemaSQL = `
-- One row per (platform, commit, tool) status observation imported from
-- the append-only history logs. Ordinal is the line number of the commit
-- within its platform log, so newer entries sort higher.
CREATE TABLE IF NOT EXISTS tool_status (
	platform TEXT NOT NULL,
	commit_hash TEXT NOT NULL,
	ordinal INTEGER NOT NULL,
	tool TEXT NOT NULL,
	status TEXT NOT NULL CHECK(status IN ('build-fail', 'test-fail', 'test-pass')),
	PRIMARY KEY (platform, commit_hash, tool)
);

CREATE INDEX IF NOT EXISTS idx_tool_status_tool ON tool_status(tool, ordinal);
`
