package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Querier is satisfied by both *sql.DB and *sql.Tx so every repo can run
// against the root connection or inside a transaction.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Store bundles one repo per table. A Store built by NewStore runs on the
// root connection; WithTx hands fn a Store whose repos are bound to a single
// transaction so multi-table mutations (player + settings + log tables)
// commit or roll back together.
type Store struct {
	db *sql.DB

	Players  *PlayerRepo
	Settings *SettingsRepo
	Actions  *ActionRepo
	Quests   *QuestRepo
	Workouts *WorkoutRepo
}

func NewStore(db *sql.DB) *Store {
	return newStore(db, db)
}

func newStore(db *sql.DB, q Querier) *Store {
	return &Store{
		db:       db,
		Players:  &PlayerRepo{q: q},
		Settings: &SettingsRepo{q: q},
		Actions:  &ActionRepo{q: q},
		Quests:   &QuestRepo{q: q},
		Workouts: &WorkoutRepo{q: q},
	}
}

func (s *Store) WithTx(ctx context.Context, fn func(s *Store) error) error {
	if s.db == nil {
		return errors.New("store is already transactional")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if err := fn(newStore(nil, tx)); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	committed = true
	return nil
}
