package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Thomas-Buddemberg/escuela-tortuga/internal/catalog"
	"github.com/Thomas-Buddemberg/escuela-tortuga/internal/storage"
)

// ClaimResult reports the outcome of a once-per-day claim. Capped and
// already-claimed are normal outcomes, never errors.
type ClaimResult struct {
	KiAdded int
	Capped  bool
	Message string
}

// WorkoutResult reports a finalized session. BonusKi is the cap-exempt
// streak bonus, logged separately from the workout credit.
type WorkoutResult struct {
	KiAdded int
	Streak  int
	BonusKi int
	Message string
}

type ClaimInput struct {
	DateISO string
	Type    catalog.ActionType
	Note    string
}

type WorkoutInput struct {
	DateISO     string
	TemplateID  string
	Mode        catalog.WorkoutMode
	DurationSec int
}

// EnsureDailyReset zeroes the daily ki counter once per calendar day.
// Calling it again on the same day is a no-op.
func (s *Service) EnsureDailyReset(ctx context.Context, todayISO string) error {
	return s.store.WithTx(ctx, func(tx *storage.Store) error {
		p, err := getPlayer(ctx, tx)
		if err != nil {
			return err
		}
		if p.LastDailyReset == todayISO {
			return nil
		}
		p.KiToday = 0
		p.LastDailyReset = todayISO
		p.UpdatedAt = s.now().Format(time.RFC3339)
		if err := tx.Players.Put(ctx, p); err != nil {
			return err
		}
		s.log.WithField("date", todayISO).Debug("daily ki reset")
		return nil
	})
}

func (s *Service) alreadyClaimed(ctx context.Context, dateISO string, t catalog.ActionType) (bool, error) {
	n, err := s.store.Actions.CountByDateAndType(ctx, dateISO, string(t))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// clampToCap applies the daily cap to a nominal amount. The returned capped
// flag is true whenever the amount was reduced, even partially.
func clampToCap(nominal, kiToday, dailyCap int) (credited int, capped bool) {
	remaining := dailyCap - kiToday
	if remaining < 0 {
		remaining = 0
	}
	if remaining <= 0 {
		return 0, true
	}
	if nominal > remaining {
		return remaining, true
	}
	return nominal, false
}

// ClaimAction credits an action at most once per (date, type). The log entry
// records the actually credited amount, which is the ground truth of what
// was paid.
func (s *Service) ClaimAction(ctx context.Context, in ClaimInput) (*ClaimResult, error) {
	nominal, err := RewardKi(in.Type)
	if err != nil {
		return nil, err
	}

	claimed, err := s.alreadyClaimed(ctx, in.DateISO, in.Type)
	if err != nil {
		return nil, err
	}
	if claimed {
		return &ClaimResult{Message: "Ya reclamaste esta acción hoy."}, nil
	}

	var res ClaimResult
	err = s.store.WithTx(ctx, func(tx *storage.Store) error {
		p, err := getPlayer(ctx, tx)
		if err != nil {
			return err
		}
		st, err := getSettings(ctx, tx)
		if err != nil {
			return err
		}
		// The uniqueness check above ran outside this transaction; a single
		// writer per device makes that race-free. A multi-writer port must
		// move it inside.
		kiDelta := nominal
		capped := false
		if IsCappedAction(in.Type) {
			kiDelta, capped = clampToCap(nominal, p.KiToday, st.DailyKiCap)
		}

		nowISO := s.now().Format(time.RFC3339)
		p.KiTotal += kiDelta
		p.KiToday += kiDelta
		p.UpdatedAt = nowISO
		if err := tx.Players.Put(ctx, p); err != nil {
			return err
		}

		if _, err := tx.Actions.Insert(ctx, &storage.KiAction{
			Date:      in.DateISO,
			Type:      string(in.Type),
			KiDelta:   kiDelta,
			CreatedAt: nowISO,
			Note:      in.Note,
		}); err != nil {
			return err
		}

		res = ClaimResult{KiAdded: kiDelta, Capped: capped, Message: claimMessage(in.Type, kiDelta, capped)}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"date":   in.DateISO,
		"type":   in.Type,
		"ki":     res.KiAdded,
		"capped": res.Capped,
	}).Info("action claimed")
	return &res, nil
}

func claimMessage(t catalog.ActionType, kiDelta int, capped bool) string {
	switch {
	case kiDelta > 0:
		return fmt.Sprintf("+%d KI (%s)", kiDelta, t.Label())
	case capped:
		return "Cap diario alcanzado. Hoy ya hiciste suficiente 🐢"
	default:
		return "Acción registrada."
	}
}

// CompleteWorkout finalizes a session. The workout log row is written even
// when the ki claim is rejected as already-claimed: history is independent
// of reward eligibility. Streak updates happen only on the first training of
// the day, and every streak multiple of 7 pays a cap-exempt bonus logged as
// its own entry.
func (s *Service) CompleteWorkout(ctx context.Context, in WorkoutInput) (*WorkoutResult, error) {
	actionType, err := catalog.ActionForMode(in.Mode)
	if err != nil {
		return nil, err
	}
	nominal, err := RewardKi(actionType)
	if err != nil {
		return nil, err
	}

	claimed, err := s.alreadyClaimed(ctx, in.DateISO, actionType)
	if err != nil {
		return nil, err
	}
	if claimed {
		if _, err := s.store.Workouts.Insert(ctx, &storage.Workout{
			Date:        in.DateISO,
			TemplateID:  in.TemplateID,
			CompletedAt: s.now().Format(time.RFC3339),
			DurationSec: in.DurationSec,
			Mode:        string(in.Mode),
		}); err != nil {
			return nil, err
		}
		p, err := getPlayer(ctx, s.store)
		if err != nil {
			return nil, err
		}
		return &WorkoutResult{Streak: p.Streak, Message: "Workout guardado. El KI del workout ya fue reclamado hoy."}, nil
	}

	var res WorkoutResult
	err = s.store.WithTx(ctx, func(tx *storage.Store) error {
		p, err := getPlayer(ctx, tx)
		if err != nil {
			return err
		}
		st, err := getSettings(ctx, tx)
		if err != nil {
			return err
		}
		nowISO := s.now().Format(time.RFC3339)

		kiDelta, capped := clampToCap(nominal, p.KiToday, st.DailyKiCap)

		// Streak and reward are independent: a capped-to-zero credit still
		// counts as training.
		nextStreak := p.Streak
		bonusKi := 0
		if p.LastTraining != in.DateISO {
			if p.LastTraining != "" && IsYesterdayISO(p.LastTraining, in.DateISO) {
				nextStreak = p.Streak + 1
			} else {
				nextStreak = 1
			}
			if nextStreak > 0 && nextStreak%7 == 0 {
				bonusKi = catalog.ActionKI[catalog.ActionStreakBonus]
			}
		}

		p.KiTotal += kiDelta + bonusKi
		p.KiToday += kiDelta + bonusKi
		p.Streak = nextStreak
		p.LastTraining = in.DateISO
		p.UpdatedAt = nowISO
		if err := tx.Players.Put(ctx, p); err != nil {
			return err
		}

		if _, err := tx.Actions.Insert(ctx, &storage.KiAction{
			Date:      in.DateISO,
			Type:      string(actionType),
			KiDelta:   kiDelta,
			CreatedAt: nowISO,
			Note:      in.TemplateID,
		}); err != nil {
			return err
		}
		if bonusKi > 0 {
			if _, err := tx.Actions.Insert(ctx, &storage.KiAction{
				Date:      in.DateISO,
				Type:      string(catalog.ActionStreakBonus),
				KiDelta:   bonusKi,
				CreatedAt: nowISO,
				Note:      fmt.Sprintf("streak=%d", nextStreak),
			}); err != nil {
				return err
			}
		}
		if _, err := tx.Workouts.Insert(ctx, &storage.Workout{
			Date:        in.DateISO,
			TemplateID:  in.TemplateID,
			CompletedAt: nowISO,
			DurationSec: in.DurationSec,
			Mode:        string(in.Mode),
		}); err != nil {
			return err
		}

		res = WorkoutResult{KiAdded: kiDelta, Streak: nextStreak, BonusKi: bonusKi, Message: workoutMessage(kiDelta, bonusKi, capped)}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"date":     in.DateISO,
		"mode":     in.Mode,
		"template": in.TemplateID,
		"ki":       res.KiAdded,
		"bonus":    res.BonusKi,
		"streak":   res.Streak,
	}).Info("workout completed")
	return &res, nil
}

func workoutMessage(kiDelta, bonusKi int, capped bool) string {
	switch {
	case kiDelta > 0:
		msg := fmt.Sprintf("Entrenamiento completado: +%d KI", kiDelta)
		if bonusKi > 0 {
			msg += fmt.Sprintf(" +%d KI bonus", bonusKi)
		}
		return msg + " ✅"
	case capped:
		return "Entrenamiento guardado. Cap diario alcanzado; hoy no se suma más KI 🐢"
	default:
		return "Entrenamiento guardado."
	}
}

// SetDailyKiCap clamps the cap to [10,200] and stores it.
func (s *Service) SetDailyKiCap(ctx context.Context, value int) error {
	if value < MinDailyKiCap {
		value = MinDailyKiCap
	}
	if value > MaxDailyKiCap {
		value = MaxDailyKiCap
	}
	return s.store.WithTx(ctx, func(tx *storage.Store) error {
		st, err := getSettings(ctx, tx)
		if err != nil {
			return err
		}
		st.DailyKiCap = value
		return tx.Settings.Put(ctx, st)
	})
}

func (s *Service) SetDifficulty(ctx context.Context, d catalog.Difficulty) error {
	if !d.IsValid() {
		return fmt.Errorf("invalid difficulty: %q", d)
	}
	return s.store.WithTx(ctx, func(tx *storage.Store) error {
		st, err := getSettings(ctx, tx)
		if err != nil {
			return err
		}
		st.Difficulty = string(d)
		return tx.Settings.Put(ctx, st)
	})
}

func (s *Service) SetReduceMotion(ctx context.Context, reduceMotion bool) error {
	return s.store.WithTx(ctx, func(tx *storage.Store) error {
		st, err := getSettings(ctx, tx)
		if err != nil {
			return err
		}
		st.ReduceMotion = reduceMotion
		return tx.Settings.Put(ctx, st)
	})
}
