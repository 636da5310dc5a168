package engine

import (
	"errors"
	"fmt"

	"github.com/Thomas-Buddemberg/escuela-tortuga/internal/catalog"
)

// ErrNotSeeded means the singleton player/settings rows are missing. The
// seeding step owns recovery; ledger operations fail outright.
var ErrNotSeeded = errors.New("player state not initialized")

// UnknownActionError indicates a caller/catalog mismatch. It is a
// programming error, not a user-recoverable condition.
type UnknownActionError struct {
	Type catalog.ActionType
}

func (e UnknownActionError) Error() string {
	return fmt.Sprintf("unknown action type: %q", e.Type)
}

// UnknownQuestError indicates a quest id outside the daily catalog.
type UnknownQuestError struct {
	QuestID string
}

func (e UnknownQuestError) Error() string {
	return fmt.Sprintf("unknown quest: %q", e.QuestID)
}

// InvalidPayloadError wraps import failures. The store is untouched when it
// is returned: validation happens before any clearing or writing.
type InvalidPayloadError struct {
	Reason string
}

func (e InvalidPayloadError) Error() string {
	return "invalid import payload: " + e.Reason
}
