package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id                    TEXT PRIMARY KEY,
		name                  TEXT NOT NULL DEFAULT '',
		school                TEXT NOT NULL DEFAULT '',
		default_session_min   INTEGER NOT NULL DEFAULT 60,
		default_hours_per_day REAL NOT NULL DEFAULT 2.0
	)`,
	// Single-user app: every table hangs off this row.
	`INSERT OR IGNORE INTO users (id) VALUES ('default')`,

	`CREATE TABLE IF NOT EXISTS classes (
		id           TEXT PRIMARY KEY,
		user_id      TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		name         TEXT NOT NULL,
		instructor   TEXT NOT NULL DEFAULT '',
		location     TEXT NOT NULL DEFAULT '',
		meeting_day  TEXT NOT NULL DEFAULT ''
		             CHECK(meeting_day IN ('', 'Monday','Tuesday','Wednesday','Thursday','Friday','Saturday','Sunday')),
		meeting_time TEXT NOT NULL DEFAULT '',
		color        TEXT NOT NULL DEFAULT '',
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_classes_user ON classes(user_id)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id              TEXT PRIMARY KEY,
		user_id         TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		title           TEXT NOT NULL,
		subject         TEXT NOT NULL DEFAULT '',
		due_date        TEXT,
		priority        TEXT NOT NULL DEFAULT 'medium'
		                CHECK(priority IN ('low','medium','high')),
		estimated_hours REAL NOT NULL DEFAULT 1.0,
		status          TEXT NOT NULL DEFAULT 'todo'
		                CHECK(status IN ('todo','done')),
		created_at      TEXT NOT NULL,
		updated_at      TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_user ON tasks(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_due ON tasks(due_date)`,

	`CREATE TABLE IF NOT EXISTS notes (
		id         TEXT PRIMARY KEY,
		user_id    TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		title      TEXT NOT NULL,
		content    TEXT NOT NULL DEFAULT '',
		subject    TEXT NOT NULL DEFAULT '',
		summary    TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_notes_user ON notes(user_id)`,

	`CREATE TABLE IF NOT EXISTS schedule_items (
		id            TEXT PRIMARY KEY,
		user_id       TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		subject       TEXT NOT NULL,
		time_slot     TEXT NOT NULL DEFAULT '',
		day_of_week   TEXT NOT NULL
		              CHECK(day_of_week IN ('Monday','Tuesday','Wednesday','Thursday','Friday','Saturday','Sunday')),
		type          TEXT NOT NULL DEFAULT 'reminder'
		              CHECK(type IN ('class','exam','reminder')),
		notifications INTEGER NOT NULL DEFAULT 1,
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_schedule_items_user ON schedule_items(user_id)`,

	`CREATE TABLE IF NOT EXISTS study_sessions (
		id               TEXT PRIMARY KEY,
		user_id          TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		subject          TEXT NOT NULL,
		duration_minutes INTEGER NOT NULL CHECK(duration_minutes > 0),
		session_date     TEXT NOT NULL,
		notes            TEXT NOT NULL DEFAULT '',
		created_at       TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_study_sessions_user ON study_sessions(user_id)`,

	`CREATE TABLE IF NOT EXISTS study_plans (
		id            TEXT PRIMARY KEY,
		user_id       TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		subject       TEXT NOT NULL,
		exam_date     TEXT NOT NULL,
		hours_per_day REAL NOT NULL,
		topics        TEXT NOT NULL DEFAULT '',
		created_at    TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_study_plans_user ON study_plans(user_id)`,

	`CREATE TABLE IF NOT EXISTS study_plan_days (
		id          TEXT PRIMARY KEY,
		plan_id     TEXT NOT NULL REFERENCES study_plans(id) ON DELETE CASCADE,
		day_number  INTEGER NOT NULL CHECK(day_number >= 1),
		date        TEXT NOT NULL,
		total_hours REAL NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_study_plan_days_plan ON study_plan_days(plan_id)`,

	`CREATE TABLE IF NOT EXISTS study_plan_tasks (
		id               TEXT PRIMARY KEY,
		day_id           TEXT NOT NULL REFERENCES study_plan_days(id) ON DELETE CASCADE,
		title            TEXT NOT NULL,
		duration_minutes INTEGER NOT NULL CHECK(duration_minutes > 0),
		task_type        TEXT NOT NULL
		                 CHECK(task_type IN ('reading','practice','review','quiz')),
		priority         TEXT NOT NULL DEFAULT 'high'
		                 CHECK(priority IN ('low','medium','high')),
		completed        INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS idx_study_plan_tasks_day ON study_plan_tasks(day_id)`,

	`CREATE TABLE IF NOT EXISTS chat_messages (
		id         TEXT PRIMARY KEY,
		user_id    TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		role       TEXT NOT NULL CHECK(role IN ('user','assistant')),
		content    TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_chat_messages_user ON chat_messages(user_id, created_at)`,
}
