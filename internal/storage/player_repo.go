package storage

import (
	"context"
	"database/sql"
	"fmt"
)

const PlayerKey = "player"

type PlayerRepo struct {
	q Querier
}

func (r *PlayerRepo) Get(ctx context.Context) (*Player, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT key, ki_total, ki_today, streak, last_daily_reset, last_training, created_at, updated_at
		FROM player WHERE key = ?
	`, PlayerKey)

	var p Player
	var lastTraining sql.NullString
	if err := row.Scan(&p.Key, &p.KiTotal, &p.KiToday, &p.Streak, &p.LastDailyReset, &lastTraining, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("player get: %w", err)
	}
	p.LastTraining = lastTraining.String
	return &p, nil
}

// Put inserts or replaces the singleton player row.
func (r *PlayerRepo) Put(ctx context.Context, p *Player) error {
	var lastTraining any
	if p.LastTraining != "" {
		lastTraining = p.LastTraining
	}
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO player (key, ki_total, ki_today, streak, last_daily_reset, last_training, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			ki_total = excluded.ki_total,
			ki_today = excluded.ki_today,
			streak = excluded.streak,
			last_daily_reset = excluded.last_daily_reset,
			last_training = excluded.last_training,
			updated_at = excluded.updated_at
	`, PlayerKey, p.KiTotal, p.KiToday, p.Streak, p.LastDailyReset, lastTraining, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("player put: %w", err)
	}
	return nil
}

func (r *PlayerRepo) Clear(ctx context.Context) error {
	if _, err := r.q.ExecContext(ctx, `DELETE FROM player`); err != nil {
		return fmt.Errorf("player clear: %w", err)
	}
	return nil
}
