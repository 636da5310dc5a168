package engine

import (
	"context"
	"database/sql"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Thomas-Buddemberg/escuela-tortuga/internal/catalog"
	"github.com/Thomas-Buddemberg/escuela-tortuga/internal/storage"
)

// Default settings written at first launch.
const (
	DefaultDailyKiCap = 50
	MinDailyKiCap     = 10
	MaxDailyKiCap     = 200
)

type Service struct {
	store *storage.Store
	log   *logrus.Logger
	now   func() time.Time
}

func NewService(db *sql.DB) *Service {
	return &Service{
		store: storage.NewStore(db),
		log:   logrus.StandardLogger(),
		now:   time.Now,
	}
}

func (s *Service) WithLogger(log *logrus.Logger) *Service {
	s.log = log
	return s
}

func (s *Service) Store() *storage.Store { return s.store }

// EnsureSeed creates the singleton player and settings rows if missing.
// Called at startup and again after import/reset so both rows always exist.
func (s *Service) EnsureSeed(ctx context.Context) error {
	return s.store.WithTx(ctx, func(tx *storage.Store) error {
		now := s.now()
		nowISO := now.Format(time.RFC3339)
		today := TodayISO(now)

		p, err := tx.Players.Get(ctx)
		if err != nil {
			return err
		}
		if p == nil {
			seed := &storage.Player{
				Key:            storage.PlayerKey,
				LastDailyReset: today,
				CreatedAt:      nowISO,
				UpdatedAt:      nowISO,
			}
			if err := tx.Players.Put(ctx, seed); err != nil {
				return err
			}
			s.log.WithField("date", today).Info("seeded player state")
		}

		st, err := tx.Settings.Get(ctx)
		if err != nil {
			return err
		}
		if st == nil {
			seed := &storage.Settings{
				Key:        storage.SettingsKey,
				DailyKiCap: DefaultDailyKiCap,
				Difficulty: string(catalog.DifficultyNormal),
			}
			if err := tx.Settings.Put(ctx, seed); err != nil {
				return err
			}
			s.log.Info("seeded settings")
		}
		return nil
	})
}

func getPlayer(ctx context.Context, tx *storage.Store) (*storage.Player, error) {
	p, err := tx.Players.Get(ctx)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotSeeded
	}
	return p, nil
}

func getSettings(ctx context.Context, tx *storage.Store) (*storage.Settings, error) {
	st, err := tx.Settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, ErrNotSeeded
	}
	return st, nil
}

// Player returns the current player state for read-only display.
func (s *Service) Player(ctx context.Context) (*storage.Player, error) {
	return getPlayer(ctx, s.store)
}

// Settings returns the current settings for read-only display.
func (s *Service) Settings(ctx context.Context) (*storage.Settings, error) {
	return getSettings(ctx, s.store)
}

// TodayPlan derives the workout plan for a date from the stored player and
// settings.
func (s *Service) TodayPlan(ctx context.Context, dateISO string) (*WorkoutPlan, error) {
	p, err := getPlayer(ctx, s.store)
	if err != nil {
		return nil, err
	}
	st, err := getSettings(ctx, s.store)
	if err != nil {
		return nil, err
	}
	return GenerateWorkoutPlan(p.KiTotal, catalog.Difficulty(st.Difficulty), dateISO)
}

// RecentActions lists the newest ledger entries for history views.
func (s *Service) RecentActions(ctx context.Context, limit int) ([]storage.KiAction, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.store.Actions.ListRecent(ctx, limit)
}
