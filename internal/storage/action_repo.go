package storage

import (
	"context"
	"database/sql"
	"fmt"
)

type ActionRepo struct {
	q Querier
}

func (r *ActionRepo) Insert(ctx context.Context, a *KiAction) (int64, error) {
	var note any
	if a.Note != "" {
		note = a.Note
	}
	res, err := r.q.ExecContext(ctx, `
		INSERT INTO ki_actions (date, type, ki_delta, created_at, note)
		VALUES (?, ?, ?, ?, ?)
	`, a.Date, a.Type, a.KiDelta, a.CreatedAt, note)
	if err != nil {
		return 0, fmt.Errorf("action insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("action last insert id: %w", err)
	}
	return id, nil
}

// CountByDateAndType backs the once-per-day claim check: a nonzero count
// means the (date, type) pair already produced a ledger entry.
func (r *ActionRepo) CountByDateAndType(ctx context.Context, date, actionType string) (int, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM ki_actions WHERE date = ? AND type = ?
	`, date, actionType)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("action count: %w", err)
	}
	return n, nil
}

func (r *ActionRepo) ListByDate(ctx context.Context, date string) ([]KiAction, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, date, type, ki_delta, created_at, COALESCE(note, '')
		FROM ki_actions WHERE date = ? ORDER BY id
	`, date)
	if err != nil {
		return nil, fmt.Errorf("action list by date: %w", err)
	}
	return scanActions(rows)
}

// ListRecent returns the newest entries first.
func (r *ActionRepo) ListRecent(ctx context.Context, limit int) ([]KiAction, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, date, type, ki_delta, created_at, COALESCE(note, '')
		FROM ki_actions ORDER BY id DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("action list recent: %w", err)
	}
	return scanActions(rows)
}

func (r *ActionRepo) ListAll(ctx context.Context) ([]KiAction, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, date, type, ki_delta, created_at, COALESCE(note, '')
		FROM ki_actions ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("action list: %w", err)
	}
	return scanActions(rows)
}

func (r *ActionRepo) Clear(ctx context.Context) error {
	if _, err := r.q.ExecContext(ctx, `DELETE FROM ki_actions`); err != nil {
		return fmt.Errorf("action clear: %w", err)
	}
	return nil
}

func scanActions(rows *sql.Rows) ([]KiAction, error) {
	defer rows.Close()
	var out []KiAction
	for rows.Next() {
		var a KiAction
		if err := rows.Scan(&a.ID, &a.Date, &a.Type, &a.KiDelta, &a.CreatedAt, &a.Note); err != nil {
			return nil, fmt.Errorf("action scan: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("action rows: %w", err)
	}
	return out, nil
}
