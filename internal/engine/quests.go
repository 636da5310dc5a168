package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Thomas-Buddemberg/escuela-tortuga/internal/catalog"
	"github.com/Thomas-Buddemberg/escuela-tortuga/internal/storage"
)

// DailyQuestDefs returns the fixed daily quest list.
func DailyQuestDefs() []catalog.QuestDefinition {
	return catalog.DailyQuests
}

type QuestResult struct {
	KiAdded int
	Message string
}

type QuestInput struct {
	DateISO string
	QuestID string
	// ActionOverride picks the claimed action for the walk-or-mobility
	// quest (walk or mobility). Ignored for other quests.
	ActionOverride catalog.ActionType
}

// IsQuestCompleted reports whether a completion row exists for the pair.
// The row itself is the completion flag; there is no separate boolean.
func (s *Service) IsQuestCompleted(ctx context.Context, dateISO, questID string) (bool, error) {
	n, err := s.store.Quests.CountByDateAndQuest(ctx, dateISO, questID)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// CompleteQuest marks a quest done for the date and, when the quest carries
// an action type, claims its ki through the once-per-day ledger path. The
// main workout quest grants no ki here; completing the workout pays it.
func (s *Service) CompleteQuest(ctx context.Context, in QuestInput) (*QuestResult, error) {
	done, err := s.IsQuestCompleted(ctx, in.DateISO, in.QuestID)
	if err != nil {
		return nil, err
	}
	if done {
		return &QuestResult{Message: "Quest ya completada hoy."}, nil
	}

	def := catalog.QuestByID(in.QuestID)
	if def == nil {
		return nil, UnknownQuestError{QuestID: in.QuestID}
	}

	// All input validation runs before the completion row: a rejected call
	// must leave the quest open so the user can retry.
	actionType := def.ActionType
	meta := ""
	if in.QuestID == catalog.QuestWalkOrMobility && in.ActionOverride != "" {
		if in.ActionOverride != catalog.ActionWalk && in.ActionOverride != catalog.ActionMobility {
			return nil, fmt.Errorf("quest %s accepts walk or mobility, got %q", in.QuestID, in.ActionOverride)
		}
		actionType = in.ActionOverride
		raw, err := json.Marshal(map[string]string{"actionOverride": string(in.ActionOverride)})
		if err != nil {
			return nil, fmt.Errorf("marshal quest meta: %w", err)
		}
		meta = string(raw)
	}

	// The completion row stands on its own, whether or not any ki is
	// credited afterwards.
	if _, err := s.store.Quests.Insert(ctx, &storage.QuestCompletion{
		Date:        in.DateISO,
		QuestID:     in.QuestID,
		CompletedAt: s.now().Format(time.RFC3339),
		Meta:        meta,
	}); err != nil {
		return nil, err
	}

	if actionType != "" {
		res, err := s.ClaimAction(ctx, ClaimInput{DateISO: in.DateISO, Type: actionType, Note: "quest:" + in.QuestID})
		if err != nil {
			return nil, err
		}
		return &QuestResult{KiAdded: res.KiAdded, Message: res.Message}, nil
	}

	return &QuestResult{Message: "Quest registrada."}, nil
}

// TodayQuestStatus pairs each daily quest with its completion state for
// status views.
type QuestStatus struct {
	Def       catalog.QuestDefinition
	Completed bool
}

func (s *Service) TodayQuestStatus(ctx context.Context, dateISO string) ([]QuestStatus, error) {
	completions, err := s.store.Quests.ListByDate(ctx, dateISO)
	if err != nil {
		return nil, err
	}
	doneByID := make(map[string]bool, len(completions))
	for _, c := range completions {
		doneByID[c.QuestID] = true
	}
	out := make([]QuestStatus, 0, len(catalog.DailyQuests))
	for _, def := range catalog.DailyQuests {
		out = append(out, QuestStatus{Def: def, Completed: doneByID[def.QuestID]})
	}
	return out, nil
}
