package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Statements are idempotent; the full
// list is re-run on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS clients (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		site        TEXT NOT NULL DEFAULT '',
		status      TEXT NOT NULL DEFAULT 'active'
		            CHECK(status IN ('active','archived')),
		archived_at TEXT,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS deliverables (
		id         TEXT PRIMARY KEY,
		subject_id TEXT NOT NULL,
		client_id  TEXT NOT NULL DEFAULT '',
		phase      INTEGER NOT NULL,
		doc_type   TEXT NOT NULL,
		payload    TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL,
		UNIQUE(subject_id, client_id, phase, doc_type)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_deliverables_scope
		ON deliverables(subject_id, client_id)`,

	`CREATE TABLE IF NOT EXISTS program_progress (
		subject_id    TEXT NOT NULL,
		client_id     TEXT NOT NULL DEFAULT '',
		current_phase INTEGER NOT NULL DEFAULT 1
		              CHECK(current_phase BETWEEN 1 AND 6),
		version       INTEGER NOT NULL DEFAULT 1,
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL,
		PRIMARY KEY(subject_id, client_id)
	)`,

	`CREATE TABLE IF NOT EXISTS phase_progress (
		subject_id   TEXT NOT NULL,
		client_id    TEXT NOT NULL DEFAULT '',
		phase        INTEGER NOT NULL
		             CHECK(phase BETWEEN 1 AND 6),
		checklist    TEXT NOT NULL DEFAULT '{}',
		progress     INTEGER NOT NULL DEFAULT 0
		             CHECK(progress BETWEEN 0 AND 100),
		completed    INTEGER NOT NULL DEFAULT 0,
		completed_at TEXT,
		notes        TEXT NOT NULL DEFAULT '',
		PRIMARY KEY(subject_id, client_id, phase),
		FOREIGN KEY(subject_id, client_id)
			REFERENCES program_progress(subject_id, client_id)
			ON DELETE CASCADE
	)`,
}
