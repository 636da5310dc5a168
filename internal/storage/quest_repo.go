package storage

import (
	"context"
	"database/sql"
	"fmt"
)

type QuestRepo struct {
	q Querier
}

func (r *QuestRepo) Insert(ctx context.Context, c *QuestCompletion) (int64, error) {
	var meta any
	if c.Meta != "" {
		meta = c.Meta
	}
	res, err := r.q.ExecContext(ctx, `
		INSERT INTO quest_completions (date, quest_id, completed_at, meta)
		VALUES (?, ?, ?, ?)
	`, c.Date, c.QuestID, c.CompletedAt, meta)
	if err != nil {
		return 0, fmt.Errorf("quest insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("quest last insert id: %w", err)
	}
	return id, nil
}

// CountByDateAndQuest is the completion check: row existence is the flag.
func (r *QuestRepo) CountByDateAndQuest(ctx context.Context, date, questID string) (int, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM quest_completions WHERE date = ? AND quest_id = ?
	`, date, questID)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("quest count: %w", err)
	}
	return n, nil
}

func (r *QuestRepo) ListByDate(ctx context.Context, date string) ([]QuestCompletion, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, date, quest_id, completed_at, COALESCE(meta, '')
		FROM quest_completions WHERE date = ? ORDER BY id
	`, date)
	if err != nil {
		return nil, fmt.Errorf("quest list by date: %w", err)
	}
	return scanQuestCompletions(rows)
}

func (r *QuestRepo) ListAll(ctx context.Context) ([]QuestCompletion, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, date, quest_id, completed_at, COALESCE(meta, '')
		FROM quest_completions ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("quest list: %w", err)
	}
	return scanQuestCompletions(rows)
}

func (r *QuestRepo) Clear(ctx context.Context) error {
	if _, err := r.q.ExecContext(ctx, `DELETE FROM quest_completions`); err != nil {
		return fmt.Errorf("quest clear: %w", err)
	}
	return nil
}

func scanQuestCompletions(rows *sql.Rows) ([]QuestCompletion, error) {
	defer rows.Close()
	var out []QuestCompletion
	for rows.Next() {
		var c QuestCompletion
		if err := rows.Scan(&c.ID, &c.Date, &c.QuestID, &c.CompletedAt, &c.Meta); err != nil {
			return nil, fmt.Errorf("quest scan: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("quest rows: %w", err)
	}
	return out, nil
}
