package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Every statement is idempotent so the
// full list re-runs safely on each startup.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS exercises (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		name         TEXT NOT NULL UNIQUE COLLATE NOCASE,
		type         TEXT NOT NULL
		             CHECK(type IN ('resistance','cardio','body_weight')),
		muscles      TEXT,
		log_weight   INTEGER NOT NULL DEFAULT 1,
		log_reps     INTEGER NOT NULL DEFAULT 1,
		log_duration INTEGER NOT NULL DEFAULT 0,
		log_distance INTEGER NOT NULL DEFAULT 0,
		created_at   TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS aliases (
		name        TEXT PRIMARY KEY COLLATE NOCASE,
		exercise_id INTEGER NOT NULL REFERENCES exercises(id) ON DELETE CASCADE
	)`,

	`CREATE INDEX IF NOT EXISTS idx_aliases_exercise ON aliases(exercise_id)`,

	// Workouts reference the exercise by denormalized name so history stays
	// readable even after the definition is deleted. Renames cascade here.
	`CREATE TABLE IF NOT EXISTS workouts (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		exercise_name TEXT NOT NULL COLLATE NOCASE,
		timestamp     TEXT NOT NULL,
		sets          INTEGER,
		reps          INTEGER,
		weight        REAL,
		duration_min  INTEGER,
		distance_km   REAL,
		bodyweight    REAL,
		notes         TEXT
	)`,

	`CREATE INDEX IF NOT EXISTS idx_workouts_exercise ON workouts(exercise_name)`,
	`CREATE INDEX IF NOT EXISTS idx_workouts_timestamp ON workouts(timestamp)`,

	`CREATE TABLE IF NOT EXISTS bodyweights (
		id        INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp TEXT NOT NULL,
		weight    REAL NOT NULL CHECK(weight > 0)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_bodyweights_timestamp ON bodyweights(timestamp)`,
}
