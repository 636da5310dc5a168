package storage

import (
	"context"
	"database/sql"
	"fmt"
)

type WorkoutRepo struct {
	q Querier
}

func (r *WorkoutRepo) Insert(ctx context.Context, w *Workout) (int64, error) {
	var duration any
	if w.DurationSec > 0 {
		duration = w.DurationSec
	}
	res, err := r.q.ExecContext(ctx, `
		INSERT INTO workouts (date, template_id, completed_at, duration_sec, mode)
		VALUES (?, ?, ?, ?, ?)
	`, w.Date, w.TemplateID, w.CompletedAt, duration, w.Mode)
	if err != nil {
		return 0, fmt.Errorf("workout insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("workout last insert id: %w", err)
	}
	return id, nil
}

func (r *WorkoutRepo) ListByDate(ctx context.Context, date string) ([]Workout, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, date, template_id, completed_at, COALESCE(duration_sec, 0), mode
		FROM workouts WHERE date = ? ORDER BY id
	`, date)
	if err != nil {
		return nil, fmt.Errorf("workout list by date: %w", err)
	}
	return scanWorkouts(rows)
}

func (r *WorkoutRepo) ListAll(ctx context.Context) ([]Workout, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, date, template_id, completed_at, COALESCE(duration_sec, 0), mode
		FROM workouts ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("workout list: %w", err)
	}
	return scanWorkouts(rows)
}

func (r *WorkoutRepo) Clear(ctx context.Context) error {
	if _, err := r.q.ExecContext(ctx, `DELETE FROM workouts`); err != nil {
		return fmt.Errorf("workout clear: %w", err)
	}
	return nil
}

func scanWorkouts(rows *sql.Rows) ([]Workout, error) {
	defer rows.Close()
	var out []Workout
	for rows.Next() {
		var w Workout
		if err := rows.Scan(&w.ID, &w.Date, &w.TemplateID, &w.CompletedAt, &w.DurationSec, &w.Mode); err != nil {
			return nil, fmt.Errorf("workout scan: %w", err)
		}
		out = append(out, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("workout rows: %w", err)
	}
	return out, nil
}
