package engine

import (
	"github.com/Thomas-Buddemberg/escuela-tortuga/internal/catalog"
)

// RewardKi returns the nominal ki for an action type. Unknown types fail
// fast; they mean the caller and the catalog disagree.
func RewardKi(t catalog.ActionType) (int, error) {
	ki, ok := catalog.ActionKI[t]
	if !ok {
		return 0, UnknownActionError{Type: t}
	}
	return ki, nil
}

// DifficultyMultiplier scales workout prescriptions. Anything that is not
// easy or hard trains at the normal pace.
func DifficultyMultiplier(d catalog.Difficulty) float64 {
	switch d {
	case catalog.DifficultyEasy:
		return 0.85
	case catalog.DifficultyHard:
		return 1.15
	default:
		return 1.0
	}
}

// IsCappedAction reports whether the daily cap applies. The exemptions are
// an explicit list: adding a new uncapped type must be a deliberate edit
// here, never a default.
func IsCappedAction(t catalog.ActionType) bool {
	switch t {
	case catalog.ActionStreakBonus:
		return false
	default:
		return true
	}
}
