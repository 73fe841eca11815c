package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent; ALTER TABLE
// additions re-run on every start and duplicate-column errors are tolerated.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS tasks (
		id         TEXT PRIMARY KEY,
		user_id    TEXT NOT NULL DEFAULT 'local',
		title      TEXT NOT NULL,
		completed  INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_user ON tasks(user_id)`,

	`CREATE TABLE IF NOT EXISTS sessions (
		id         TEXT PRIMARY KEY,
		user_id    TEXT NOT NULL DEFAULT 'local',
		type       TEXT NOT NULL
		           CHECK(type IN ('work','break')),
		duration   INTEGER NOT NULL CHECK(duration > 0),
		started_at TEXT NOT NULL,
		ended_at   TEXT
	)`,

	`CREATE INDEX IF NOT EXISTS idx_sessions_user ON sessions(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_sessions_started ON sessions(started_at)`,

	`CREATE TABLE IF NOT EXISTS settings (
		user_id                    TEXT PRIMARY KEY,
		work_duration              INTEGER NOT NULL DEFAULT 1500 CHECK(work_duration > 0),
		break_duration             INTEGER NOT NULL DEFAULT 300 CHECK(break_duration > 0),
		long_break_duration        INTEGER NOT NULL DEFAULT 900 CHECK(long_break_duration > 0),
		sessions_before_long_break INTEGER NOT NULL DEFAULT 4 CHECK(sessions_before_long_break >= 1),
		auto_start_breaks          INTEGER NOT NULL DEFAULT 1,
		auto_start_pomodoros       INTEGER NOT NULL DEFAULT 1
	)`,

	// Seed the default local profile
	`INSERT OR IGNORE INTO settings (user_id) VALUES ('local')`,

	`CREATE TABLE IF NOT EXISTS daily_stats (
		user_id             TEXT NOT NULL,
		date                TEXT NOT NULL,
		completed_pomodoros INTEGER NOT NULL DEFAULT 0,
		total_focus_time    INTEGER NOT NULL DEFAULT 0,
		tasks_completed     INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (user_id, date)
	)`,
}
