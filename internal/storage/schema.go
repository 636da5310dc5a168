package storage

import (
	"context"
	"database/sql"
	"fmt"
)

func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS player (
			key TEXT PRIMARY KEY,
			ki_total INTEGER NOT NULL DEFAULT 0,
			ki_today INTEGER NOT NULL DEFAULT 0,
			streak INTEGER NOT NULL DEFAULT 0,
			last_daily_reset TEXT NOT NULL,
			last_training TEXT,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			daily_ki_cap INTEGER NOT NULL DEFAULT 50,
			difficulty TEXT NOT NULL DEFAULT 'normal',
			reduce_motion INTEGER NOT NULL DEFAULT 0
		);`,
		`CREATE TABLE IF NOT EXISTS ki_actions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			date TEXT NOT NULL,
			type TEXT NOT NULL,
			ki_delta INTEGER NOT NULL,
			created_at TEXT NOT NULL,
			note TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS quest_completions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			date TEXT NOT NULL,
			quest_id TEXT NOT NULL,
			completed_at TEXT NOT NULL,
			meta TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS workouts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			date TEXT NOT NULL,
			template_id TEXT NOT NULL,
			completed_at TEXT NOT NULL,
			duration_sec INTEGER,
			mode TEXT NOT NULL
		);`,
		// The (date, type) / (date, quest_id) lookups are the once-per-day
		// claim checks; they must stay indexed.
		`CREATE INDEX IF NOT EXISTS idx_ki_actions_date_type ON ki_actions(date, type);`,
		`CREATE INDEX IF NOT EXISTS idx_quest_completions_date_quest ON quest_completions(date, quest_id);`,
		`CREATE INDEX IF NOT EXISTS idx_workouts_date ON workouts(date);`,
		`CREATE INDEX IF NOT EXISTS idx_workouts_template ON workouts(template_id);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
