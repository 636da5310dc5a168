package engine

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/Thomas-Buddemberg/escuela-tortuga/internal/catalog"
	"github.com/Thomas-Buddemberg/escuela-tortuga/internal/storage"
)

func newTestService(t *testing.T) (*Service, func()) {
	t.Helper()
	ctx := context.Background()

	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")
	db, err := storage.Open(ctx, path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	quiet := logrus.New()
	quiet.SetLevel(logrus.ErrorLevel)
	svc := NewService(db).WithLogger(quiet)
	if err := svc.EnsureSeed(ctx); err != nil {
		t.Fatalf("seed: %v", err)
	}
	cleanup := func() {
		_ = db.Close()
	}
	return svc, cleanup
}

func setPlayer(t *testing.T, svc *Service, mutate func(p *storage.Player)) {
	t.Helper()
	ctx := context.Background()
	p, err := svc.Player(ctx)
	if err != nil {
		t.Fatalf("get player: %v", err)
	}
	mutate(p)
	if err := svc.Store().Players.Put(ctx, p); err != nil {
		t.Fatalf("put player: %v", err)
	}
}

func actionCount(t *testing.T, svc *Service, date string, actionType catalog.ActionType) int {
	t.Helper()
	n, err := svc.Store().Actions.CountByDateAndType(context.Background(), date, string(actionType))
	if err != nil {
		t.Fatalf("count actions: %v", err)
	}
	return n
}

func TestClaimActionOncePerDay(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()
	const today = "2025-03-10"

	first, err := svc.ClaimAction(ctx, ClaimInput{DateISO: today, Type: catalog.ActionWalk})
	if err != nil {
		t.Fatalf("first claim: %v", err)
	}
	if first.KiAdded != 5 || first.Capped {
		t.Fatalf("first claim = {%d, %v}, want {5, false}", first.KiAdded, first.Capped)
	}

	second, err := svc.ClaimAction(ctx, ClaimInput{DateISO: today, Type: catalog.ActionWalk})
	if err != nil {
		t.Fatalf("second claim: %v", err)
	}
	if second.KiAdded != 0 {
		t.Fatalf("second claim added %d ki, want 0", second.KiAdded)
	}
	if got := actionCount(t, svc, today, catalog.ActionWalk); got != 1 {
		t.Fatalf("action rows = %d, want 1", got)
	}

	p, err := svc.Player(ctx)
	if err != nil {
		t.Fatalf("get player: %v", err)
	}
	if p.KiTotal != 5 || p.KiToday != 5 {
		t.Fatalf("player ki = {%d, %d}, want {5, 5}", p.KiTotal, p.KiToday)
	}
}

func TestClaimActionPartialCap(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()
	const today = "2025-03-10"

	if err := svc.SetDailyKiCap(ctx, 50); err != nil {
		t.Fatalf("set cap: %v", err)
	}
	setPlayer(t, svc, func(p *storage.Player) {
		p.KiTotal = 45
		p.KiToday = 45
	})

	res, err := svc.ClaimAction(ctx, ClaimInput{DateISO: today, Type: catalog.ActionWorkoutFull})
	if err != nil {
		t.Fatalf("claim: %v", err)
	}
	if res.KiAdded != 5 || !res.Capped {
		t.Fatalf("claim = {%d, %v}, want {5, true}", res.KiAdded, res.Capped)
	}

	p, err := svc.Player(ctx)
	if err != nil {
		t.Fatalf("get player: %v", err)
	}
	if p.KiToday != 50 {
		t.Fatalf("kiToday = %d, want 50", p.KiToday)
	}
}

func TestClaimActionCappedToZeroStillLogged(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()
	const today = "2025-03-10"

	setPlayer(t, svc, func(p *storage.Player) {
		p.KiTotal = 50
		p.KiToday = 50
	})

	res, err := svc.ClaimAction(ctx, ClaimInput{DateISO: today, Type: catalog.ActionSleep})
	if err != nil {
		t.Fatalf("claim: %v", err)
	}
	if res.KiAdded != 0 || !res.Capped {
		t.Fatalf("claim = {%d, %v}, want {0, true}", res.KiAdded, res.Capped)
	}
	// The zero-credit entry is still the ground truth for the dedup check.
	if got := actionCount(t, svc, today, catalog.ActionSleep); got != 1 {
		t.Fatalf("action rows = %d, want 1", got)
	}
}

func TestClaimActionUnknownTypeFails(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	_, err := svc.ClaimAction(ctx, ClaimInput{DateISO: "2025-03-10", Type: catalog.ActionType("levitate")})
	if err == nil {
		t.Fatalf("expected error for unknown action type")
	}
	var unknown UnknownActionError
	if !errors.As(err, &unknown) {
		t.Fatalf("error = %v, want UnknownActionError", err)
	}
}

func TestEnsureDailyResetIdempotent(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	setPlayer(t, svc, func(p *storage.Player) {
		p.KiTotal = 30
		p.KiToday = 30
		p.LastDailyReset = "2025-03-09"
	})

	if err := svc.EnsureDailyReset(ctx, "2025-03-10"); err != nil {
		t.Fatalf("first reset: %v", err)
	}
	p, _ := svc.Player(ctx)
	if p.KiToday != 0 || p.LastDailyReset != "2025-03-10" {
		t.Fatalf("after reset: kiToday=%d lastReset=%s", p.KiToday, p.LastDailyReset)
	}

	if _, err := svc.ClaimAction(ctx, ClaimInput{DateISO: "2025-03-10", Type: catalog.ActionWalk}); err != nil {
		t.Fatalf("claim: %v", err)
	}
	if err := svc.EnsureDailyReset(ctx, "2025-03-10"); err != nil {
		t.Fatalf("second reset: %v", err)
	}
	p, _ = svc.Player(ctx)
	if p.KiToday != 5 {
		t.Fatalf("second same-day reset changed kiToday to %d, want 5", p.KiToday)
	}
}

func TestCompleteWorkoutStreakIncrementAndReset(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()
	const today = "2025-03-10"

	setPlayer(t, svc, func(p *storage.Player) {
		p.Streak = 3
		p.LastTraining = "2025-03-09"
	})
	res, err := svc.CompleteWorkout(ctx, WorkoutInput{DateISO: today, TemplateID: "turtle_basic", Mode: catalog.ModeFull})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if res.Streak != 4 {
		t.Fatalf("streak = %d, want 4", res.Streak)
	}

	svc2, cleanup2 := newTestService(t)
	defer cleanup2()
	setPlayer(t, svc2, func(p *storage.Player) {
		p.Streak = 9
		p.LastTraining = "2025-03-07"
	})
	res2, err := svc2.CompleteWorkout(ctx, WorkoutInput{DateISO: today, TemplateID: "turtle_basic", Mode: catalog.ModeFull})
	if err != nil {
		t.Fatalf("complete after gap: %v", err)
	}
	if res2.Streak != 1 {
		t.Fatalf("streak after gap = %d, want 1", res2.Streak)
	}
}

func TestCompleteWorkoutStreakBonusMilestone(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()
	const today = "2025-03-10"

	// Cap out the day first so the workout credit clamps to zero. The bonus
	// is exempt and must land anyway.
	setPlayer(t, svc, func(p *storage.Player) {
		p.KiTotal = 50
		p.KiToday = 50
		p.Streak = 6
		p.LastTraining = "2025-03-09"
	})

	res, err := svc.CompleteWorkout(ctx, WorkoutInput{DateISO: today, TemplateID: "turtle_basic", Mode: catalog.ModeFull})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if res.Streak != 7 {
		t.Fatalf("streak = %d, want 7", res.Streak)
	}
	if res.KiAdded != 0 {
		t.Fatalf("workout credit = %d, want 0 (capped)", res.KiAdded)
	}
	if res.BonusKi != 25 {
		t.Fatalf("bonus = %d, want 25", res.BonusKi)
	}

	p, _ := svc.Player(ctx)
	if p.KiToday != 75 {
		t.Fatalf("kiToday = %d, want 75 (bonus may exceed cap)", p.KiToday)
	}
	if got := actionCount(t, svc, today, catalog.ActionWorkoutFull); got != 1 {
		t.Fatalf("workout action rows = %d, want 1", got)
	}
	if got := actionCount(t, svc, today, catalog.ActionStreakBonus); got != 1 {
		t.Fatalf("bonus action rows = %d, want 1", got)
	}
}

func TestCompleteWorkoutSecondOfDayLogsWithoutKi(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()
	const today = "2025-03-10"

	first, err := svc.CompleteWorkout(ctx, WorkoutInput{DateISO: today, TemplateID: "turtle_basic", Mode: catalog.ModeQuick})
	if err != nil {
		t.Fatalf("first workout: %v", err)
	}
	if first.KiAdded != 10 {
		t.Fatalf("first credit = %d, want 10", first.KiAdded)
	}

	second, err := svc.CompleteWorkout(ctx, WorkoutInput{DateISO: today, TemplateID: "turtle_basic", Mode: catalog.ModeQuick})
	if err != nil {
		t.Fatalf("second workout: %v", err)
	}
	if second.KiAdded != 0 || second.BonusKi != 0 {
		t.Fatalf("second workout = {%d, %d}, want no ki", second.KiAdded, second.BonusKi)
	}
	if second.Streak != first.Streak {
		t.Fatalf("second workout changed streak: %d → %d", first.Streak, second.Streak)
	}

	workouts, err := svc.Store().Workouts.ListByDate(ctx, today)
	if err != nil {
		t.Fatalf("list workouts: %v", err)
	}
	if len(workouts) != 2 {
		t.Fatalf("workout rows = %d, want 2 (history is independent of reward)", len(workouts))
	}
	if got := actionCount(t, svc, today, catalog.ActionWorkoutQuick); got != 1 {
		t.Fatalf("action rows = %d, want 1", got)
	}
}

func TestCapsuleModeClaimsOwnAction(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()
	const today = "2025-03-10"

	res, err := svc.CompleteWorkout(ctx, WorkoutInput{DateISO: today, TemplateID: "capsule_gym_60", Mode: catalog.ModeCapsule60, DurationSec: 3600})
	if err != nil {
		t.Fatalf("capsule workout: %v", err)
	}
	if res.KiAdded != 40 {
		t.Fatalf("capsule credit = %d, want 40", res.KiAdded)
	}
	if res.Streak != 1 {
		t.Fatalf("capsule streak = %d, want 1 (counts as training)", res.Streak)
	}
	if got := actionCount(t, svc, today, catalog.ActionCapsule60); got != 1 {
		t.Fatalf("capsule action rows = %d, want 1", got)
	}
}

func TestSetDailyKiCapClamps(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	if err := svc.SetDailyKiCap(ctx, 5); err != nil {
		t.Fatalf("set low cap: %v", err)
	}
	st, _ := svc.Settings(ctx)
	if st.DailyKiCap != 10 {
		t.Fatalf("cap = %d, want clamped to 10", st.DailyKiCap)
	}

	if err := svc.SetDailyKiCap(ctx, 1000); err != nil {
		t.Fatalf("set high cap: %v", err)
	}
	st, _ = svc.Settings(ctx)
	if st.DailyKiCap != 200 {
		t.Fatalf("cap = %d, want clamped to 200", st.DailyKiCap)
	}
}
