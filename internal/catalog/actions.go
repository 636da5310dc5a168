package catalog

import (
	"fmt"
	"strings"
)

// ActionType tags a rewardable activity in the ki ledger.
type ActionType string

const (
	ActionWorkoutQuick ActionType = "workout_quick"
	ActionWorkoutFull  ActionType = "workout_full"
	ActionCapsule30    ActionType = "capsule_30"
	ActionCapsule60    ActionType = "capsule_60"
	ActionWalk         ActionType = "walk"
	ActionMobility     ActionType = "mobility"
	ActionSleep        ActionType = "sleep"
	ActionFood         ActionType = "food"
	ActionStreakBonus  ActionType = "streak_bonus"
	ActionManualAdjust ActionType = "manual_adjust"
)

// ActionKI is the nominal reward per action type. The ledger clamps these
// against the daily cap; streak_bonus is exempt.
var ActionKI = map[ActionType]int{
	ActionWorkoutQuick: 10,
	ActionWorkoutFull:  20,
	ActionCapsule30:    20,
	ActionCapsule60:    40,
	ActionWalk:         5,
	ActionMobility:     5,
	ActionSleep:        5,
	ActionFood:         5,
	ActionStreakBonus:  25,
	ActionManualAdjust: 0,
}

func (a ActionType) IsValid() bool {
	_, ok := ActionKI[a]
	return ok
}

// Label renders the type for humans ("workout_full" → "workout full").
func (a ActionType) Label() string {
	return strings.ReplaceAll(string(a), "_", " ")
}

func ParseActionType(input string) (ActionType, error) {
	a := ActionType(strings.TrimSpace(strings.ToLower(input)))
	if !a.IsValid() {
		return "", fmt.Errorf("invalid action type: %q", input)
	}
	return a, nil
}

// Difficulty is the user-selected training intensity.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyNormal Difficulty = "normal"
	DifficultyHard   Difficulty = "hard"
)

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return true
	default:
		return false
	}
}

func ParseDifficulty(input string) (Difficulty, error) {
	d := Difficulty(strings.TrimSpace(strings.ToLower(input)))
	if !d.IsValid() {
		return "", fmt.Errorf("invalid difficulty: %q", input)
	}
	return d, nil
}

// WorkoutMode distinguishes how a session was trained.
type WorkoutMode string

const (
	ModeQuick     WorkoutMode = "quick"
	ModeFull      WorkoutMode = "full"
	ModeCapsule30 WorkoutMode = "capsule_30"
	ModeCapsule60 WorkoutMode = "capsule_60"
)

func (m WorkoutMode) IsValid() bool {
	switch m {
	case ModeQuick, ModeFull, ModeCapsule30, ModeCapsule60:
		return true
	default:
		return false
	}
}

func ParseWorkoutMode(input string) (WorkoutMode, error) {
	m := WorkoutMode(strings.TrimSpace(strings.ToLower(input)))
	if !m.IsValid() {
		return "", fmt.Errorf("invalid workout mode: %q", input)
	}
	return m, nil
}

// ActionForMode maps a workout mode to the action type it claims.
func ActionForMode(m WorkoutMode) (ActionType, error) {
	switch m {
	case ModeQuick:
		return ActionWorkoutQuick, nil
	case ModeFull:
		return ActionWorkoutFull, nil
	case ModeCapsule30:
		return ActionCapsule30, nil
	case ModeCapsule60:
		return ActionCapsule60, nil
	default:
		return "", fmt.Errorf("invalid workout mode: %q", m)
	}
}
