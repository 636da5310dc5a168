package engine

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Thomas-Buddemberg/escuela-tortuga/internal/catalog"
)

func TestCompleteQuestIdempotent(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()
	const today = "2025-03-10"

	first, err := svc.CompleteQuest(ctx, QuestInput{DateISO: today, QuestID: catalog.QuestSleep})
	if err != nil {
		t.Fatalf("first complete: %v", err)
	}
	if first.KiAdded != 5 {
		t.Fatalf("first complete added %d ki, want 5", first.KiAdded)
	}

	second, err := svc.CompleteQuest(ctx, QuestInput{DateISO: today, QuestID: catalog.QuestSleep})
	if err != nil {
		t.Fatalf("second complete: %v", err)
	}
	if second.KiAdded != 0 {
		t.Fatalf("second complete added %d ki, want 0", second.KiAdded)
	}

	n, err := svc.Store().Quests.CountByDateAndQuest(ctx, today, catalog.QuestSleep)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Fatalf("completion rows = %d, want 1", n)
	}
	if got := actionCount(t, svc, today, catalog.ActionSleep); got != 1 {
		t.Fatalf("sleep action rows = %d, want 1", got)
	}
}

func TestCompleteQuestMainWorkoutGrantsNoKi(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()
	const today = "2025-03-10"

	res, err := svc.CompleteQuest(ctx, QuestInput{DateISO: today, QuestID: catalog.QuestMainWorkout})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if res.KiAdded != 0 {
		t.Fatalf("main quest added %d ki directly, want 0 (ki comes from the workout)", res.KiAdded)
	}

	p, err := svc.Player(ctx)
	if err != nil {
		t.Fatalf("get player: %v", err)
	}
	if p.KiTotal != 0 {
		t.Fatalf("kiTotal = %d, want 0", p.KiTotal)
	}

	done, err := svc.IsQuestCompleted(ctx, today, catalog.QuestMainWorkout)
	if err != nil {
		t.Fatalf("is completed: %v", err)
	}
	if !done {
		t.Fatalf("quest should be completed even without ki")
	}
}

func TestCompleteQuestWalkOrMobilityOverride(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()
	const today = "2025-03-10"

	res, err := svc.CompleteQuest(ctx, QuestInput{
		DateISO:        today,
		QuestID:        catalog.QuestWalkOrMobility,
		ActionOverride: catalog.ActionMobility,
	})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if res.KiAdded != 5 {
		t.Fatalf("override complete added %d ki, want 5", res.KiAdded)
	}
	if got := actionCount(t, svc, today, catalog.ActionMobility); got != 1 {
		t.Fatalf("mobility action rows = %d, want 1", got)
	}
	if got := actionCount(t, svc, today, catalog.ActionWalk); got != 0 {
		t.Fatalf("walk action rows = %d, want 0", got)
	}

	completions, err := svc.Store().Quests.ListByDate(ctx, today)
	if err != nil {
		t.Fatalf("list completions: %v", err)
	}
	if len(completions) != 1 || !strings.Contains(completions[0].Meta, "mobility") {
		t.Fatalf("completion meta = %+v, want actionOverride recorded", completions)
	}
}

func TestCompleteQuestInvalidOverrideLeavesQuestOpen(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()
	const today = "2025-03-10"

	_, err := svc.CompleteQuest(ctx, QuestInput{
		DateISO:        today,
		QuestID:        catalog.QuestWalkOrMobility,
		ActionOverride: catalog.ActionSleep,
	})
	if err == nil {
		t.Fatalf("expected error for invalid override")
	}

	// The rejected call must not have completed the quest; a retry with a
	// valid choice still works.
	done, err := svc.IsQuestCompleted(ctx, today, catalog.QuestWalkOrMobility)
	if err != nil {
		t.Fatalf("is completed: %v", err)
	}
	if done {
		t.Fatalf("rejected override completed the quest")
	}

	res, err := svc.CompleteQuest(ctx, QuestInput{
		DateISO:        today,
		QuestID:        catalog.QuestWalkOrMobility,
		ActionOverride: catalog.ActionWalk,
	})
	if err != nil {
		t.Fatalf("retry: %v", err)
	}
	if res.KiAdded != 5 {
		t.Fatalf("retry added %d ki, want 5", res.KiAdded)
	}
}

func TestCompleteQuestUnknownID(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()

	_, err := svc.CompleteQuest(context.Background(), QuestInput{DateISO: "2025-03-10", QuestID: "nope"})
	if err == nil {
		t.Fatalf("expected error for unknown quest")
	}
	var unknown UnknownQuestError
	if !errors.As(err, &unknown) {
		t.Fatalf("error = %v, want UnknownQuestError", err)
	}
}

func TestTodayQuestStatus(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()
	const today = "2025-03-10"

	if _, err := svc.CompleteQuest(ctx, QuestInput{DateISO: today, QuestID: catalog.QuestFood}); err != nil {
		t.Fatalf("complete: %v", err)
	}

	statuses, err := svc.TodayQuestStatus(ctx, today)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if len(statuses) != len(catalog.DailyQuests) {
		t.Fatalf("statuses = %d, want %d", len(statuses), len(catalog.DailyQuests))
	}
	for _, q := range statuses {
		want := q.Def.QuestID == catalog.QuestFood
		if q.Completed != want {
			t.Fatalf("quest %s completed = %v, want %v", q.Def.QuestID, q.Completed, want)
		}
	}
}
