package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Every statement is idempotent.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

// Snapshot tables. seq columns preserve dataset order; list-valued fields
// that are only ever read whole (skills, performance trend) are JSON text.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS courses (
		id              TEXT PRIMARY KEY,
		seq             INTEGER NOT NULL,
		title           TEXT NOT NULL,
		category        TEXT NOT NULL CHECK(category IN ('Technical','Leadership','Core')),
		description     TEXT NOT NULL DEFAULT '',
		duration_hours  INTEGER NOT NULL DEFAULT 0,
		difficulty      TEXT NOT NULL CHECK(difficulty IN ('Beginner','Intermediate','Advanced')),
		skills          TEXT NOT NULL DEFAULT '[]',
		completion_rate REAL
	)`,

	`CREATE TABLE IF NOT EXISTS employees (
		id                TEXT PRIMARY KEY,
		seq               INTEGER NOT NULL,
		first_name        TEXT NOT NULL,
		last_name         TEXT NOT NULL,
		email             TEXT NOT NULL DEFAULT '',
		department        TEXT NOT NULL,
		role              TEXT NOT NULL DEFAULT '',
		level             TEXT NOT NULL DEFAULT '',
		hire_date         TEXT NOT NULL,
		manager_id        TEXT NOT NULL DEFAULT '',
		risk_level        TEXT NOT NULL CHECK(risk_level IN ('Low','Medium','High','Critical')),
		is_high_potential INTEGER NOT NULL DEFAULT 0,
		performance_trend TEXT NOT NULL DEFAULT '[]'
	)`,

	`CREATE TABLE IF NOT EXISTS appraisals (
		id            TEXT PRIMARY KEY,
		employee_id   TEXT NOT NULL REFERENCES employees(id) ON DELETE CASCADE,
		seq           INTEGER NOT NULL,
		period        TEXT NOT NULL DEFAULT '',
		overall_score INTEGER NOT NULL,
		feedback      TEXT NOT NULL DEFAULT '',
		reviewer_id   TEXT NOT NULL DEFAULT '',
		date          TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS competencies (
		owner_kind     TEXT NOT NULL CHECK(owner_kind IN ('appraisal','gap')),
		owner_id       TEXT NOT NULL,
		seq            INTEGER NOT NULL,
		id             TEXT NOT NULL,
		name           TEXT NOT NULL,
		category       TEXT NOT NULL CHECK(category IN ('Technical','Leadership','Core')),
		description    TEXT NOT NULL DEFAULT '',
		required_level REAL NOT NULL,
		current_level  REAL NOT NULL,
		PRIMARY KEY (owner_kind, owner_id, seq)
	)`,

	`CREATE TABLE IF NOT EXISTS training_tracks (
		employee_id        TEXT NOT NULL REFERENCES employees(id) ON DELETE CASCADE,
		seq                INTEGER NOT NULL,
		id                 TEXT NOT NULL,
		name               TEXT NOT NULL,
		estimated_duration INTEGER NOT NULL DEFAULT 0,
		priority           TEXT NOT NULL CHECK(priority IN ('Critical','High','Medium','Low')),
		status             TEXT NOT NULL CHECK(status IN ('Not Started','In Progress','Completed')),
		progress           REAL NOT NULL DEFAULT 0,
		PRIMARY KEY (employee_id, seq)
	)`,

	`CREATE TABLE IF NOT EXISTS gap_analyses (
		employee_id      TEXT PRIMARY KEY REFERENCES employees(id) ON DELETE CASCADE,
		priority         TEXT NOT NULL CHECK(priority IN ('Critical','High','Medium','Low')),
		estimated_impact REAL NOT NULL DEFAULT 0,
		rationale        TEXT NOT NULL DEFAULT ''
	)`,

	// owner_kind 'track' uses owner_id = employee_id || '#' || track seq.
	`CREATE TABLE IF NOT EXISTS course_links (
		owner_kind TEXT NOT NULL CHECK(owner_kind IN ('track','gap')),
		owner_id   TEXT NOT NULL,
		seq        INTEGER NOT NULL,
		course_id  TEXT NOT NULL REFERENCES courses(id),
		PRIMARY KEY (owner_kind, owner_id, seq)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_appraisals_employee ON appraisals(employee_id, seq)`,
	`CREATE INDEX IF NOT EXISTS idx_employees_department ON employees(department)`,
}
