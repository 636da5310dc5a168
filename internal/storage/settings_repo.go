package storage

import (
	"context"
	"database/sql"
	"fmt"
)

const SettingsKey = "settings"

type SettingsRepo struct {
	q Querier
}

func (r *SettingsRepo) Get(ctx context.Context) (*Settings, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT key, daily_ki_cap, difficulty, reduce_motion
		FROM settings WHERE key = ?
	`, SettingsKey)

	var s Settings
	var reduceMotion int
	if err := row.Scan(&s.Key, &s.DailyKiCap, &s.Difficulty, &reduceMotion); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("settings get: %w", err)
	}
	s.ReduceMotion = reduceMotion != 0
	return &s, nil
}

func (r *SettingsRepo) Put(ctx context.Context, s *Settings) error {
	reduceMotion := 0
	if s.ReduceMotion {
		reduceMotion = 1
	}
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO settings (key, daily_ki_cap, difficulty, reduce_motion)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			daily_ki_cap = excluded.daily_ki_cap,
			difficulty = excluded.difficulty,
			reduce_motion = excluded.reduce_motion
	`, SettingsKey, s.DailyKiCap, s.Difficulty, reduceMotion)
	if err != nil {
		return fmt.Errorf("settings put: %w", err)
	}
	return nil
}

func (r *SettingsRepo) Clear(ctx context.Context) error {
	if _, err := r.q.ExecContext(ctx, `DELETE FROM settings`); err != nil {
		return fmt.Errorf("settings clear: %w", err)
	}
	return nil
}
