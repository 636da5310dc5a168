package engine

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/Thomas-Buddemberg/escuela-tortuga/internal/catalog"
)

func TestExportImportRoundTrip(t *testing.T) {
	src, cleanupSrc := newTestService(t)
	defer cleanupSrc()
	ctx := context.Background()
	const today = "2025-04-02"

	if _, err := src.ClaimAction(ctx, ClaimInput{DateISO: today, Type: catalog.ActionWalk}); err != nil {
		t.Fatalf("claim: %v", err)
	}
	if _, err := src.CompleteWorkout(ctx, WorkoutInput{DateISO: today, Mode: catalog.ModeFull, TemplateID: "turtle_basic"}); err != nil {
		t.Fatalf("workout: %v", err)
	}
	if _, err := src.CompleteQuest(ctx, QuestInput{DateISO: today, QuestID: catalog.QuestSleep}); err != nil {
		t.Fatalf("quest: %v", err)
	}
	if err := src.SetDailyKiCap(ctx, 80); err != nil {
		t.Fatalf("set cap: %v", err)
	}

	snap, err := src.Export(ctx)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	data, err := json.Marshal(snap)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	dst, cleanupDst := newTestService(t)
	defer cleanupDst()
	if err := dst.Import(ctx, data); err != nil {
		t.Fatalf("import: %v", err)
	}

	got, err := dst.Export(ctx)
	if err != nil {
		t.Fatalf("re-export: %v", err)
	}

	if *got.Player != *snap.Player {
		t.Fatalf("player = %+v, want %+v", got.Player, snap.Player)
	}
	if *got.Settings != *snap.Settings {
		t.Fatalf("settings = %+v, want %+v", got.Settings, snap.Settings)
	}
	if len(got.Actions) != len(snap.Actions) {
		t.Fatalf("actions = %d, want %d", len(got.Actions), len(snap.Actions))
	}
	for i := range snap.Actions {
		want, have := snap.Actions[i], got.Actions[i]
		want.ID, have.ID = 0, 0
		if want != have {
			t.Fatalf("action %d = %+v, want %+v", i, have, want)
		}
	}
	if len(got.Quests) != len(snap.Quests) {
		t.Fatalf("quests = %d, want %d", len(got.Quests), len(snap.Quests))
	}
	for i := range snap.Quests {
		want, have := snap.Quests[i], got.Quests[i]
		want.ID, have.ID = 0, 0
		if want != have {
			t.Fatalf("quest %d = %+v, want %+v", i, have, want)
		}
	}
	if len(got.Workouts) != len(snap.Workouts) {
		t.Fatalf("workouts = %d, want %d", len(got.Workouts), len(snap.Workouts))
	}
	for i := range snap.Workouts {
		want, have := snap.Workouts[i], got.Workouts[i]
		want.ID, have.ID = 0, 0
		if want != have {
			t.Fatalf("workout %d = %+v, want %+v", i, have, want)
		}
	}
}

func TestImportRejectsNonObjectPayload(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()
	const today = "2025-04-02"

	if _, err := svc.ClaimAction(ctx, ClaimInput{DateISO: today, Type: catalog.ActionWalk}); err != nil {
		t.Fatalf("claim: %v", err)
	}

	for _, payload := range []string{`[]`, `"hola"`, `{not json`} {
		err := svc.Import(ctx, []byte(payload))
		if err == nil {
			t.Fatalf("payload %s: expected error", payload)
		}
		var invalid InvalidPayloadError
		if !errors.As(err, &invalid) {
			t.Fatalf("payload %s: error = %v, want InvalidPayloadError", payload, err)
		}
	}

	// Rejected payloads must not clear anything.
	if got := actionCount(t, svc, today, catalog.ActionWalk); got != 1 {
		t.Fatalf("walk action rows after failed imports = %d, want 1", got)
	}
}

func TestImportMissingSectionsReseeds(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	if err := svc.Import(ctx, []byte(`{"exportedAtISO":"2025-04-02T10:00:00Z"}`)); err != nil {
		t.Fatalf("import: %v", err)
	}

	p, err := svc.Player(ctx)
	if err != nil {
		t.Fatalf("player after import: %v", err)
	}
	if p.KiTotal != 0 || p.Streak != 0 {
		t.Fatalf("player = %+v, want freshly seeded", p)
	}
	s, err := svc.Settings(ctx)
	if err != nil {
		t.Fatalf("settings after import: %v", err)
	}
	if s.DailyKiCap != DefaultDailyKiCap {
		t.Fatalf("dailyKiCap = %d, want %d", s.DailyKiCap, DefaultDailyKiCap)
	}
}

func TestHardResetClearsEverything(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()
	const today = "2025-04-02"

	if _, err := svc.ClaimAction(ctx, ClaimInput{DateISO: today, Type: catalog.ActionFood}); err != nil {
		t.Fatalf("claim: %v", err)
	}
	if err := svc.HardReset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}

	p, err := svc.Player(ctx)
	if err != nil {
		t.Fatalf("player: %v", err)
	}
	if p.KiTotal != 0 || p.KiToday != 0 {
		t.Fatalf("player = %+v, want zeroed", p)
	}
	actions, err := svc.Store().Actions.ListAll(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(actions) != 0 {
		t.Fatalf("actions = %d, want 0", len(actions))
	}
}
