package storage

// Dates are calendar-day strings (YYYY-MM-DD) in device-local time;
// timestamps are RFC 3339. The engine owns both formats.

type Player struct {
	Key            string `json:"id"`
	KiTotal        int    `json:"kiTotal"`
	KiToday        int    `json:"kiToday"`
	Streak         int    `json:"streak"`
	LastDailyReset string `json:"lastDailyResetISO"`
	LastTraining   string `json:"lastTrainingISO,omitempty"`
	CreatedAt      string `json:"createdAtISO"`
	UpdatedAt      string `json:"updatedAtISO"`
}

type Settings struct {
	Key          string `json:"id"`
	DailyKiCap   int    `json:"dailyKiCap"`
	Difficulty   string `json:"difficulty"`
	ReduceMotion bool   `json:"reduceMotion"`
}

// KiAction is one immutable ledger entry. KiDelta is the amount actually
// credited after cap clamping, which may be less than the nominal reward.
type KiAction struct {
	ID        int64  `json:"id,omitempty"`
	Date      string `json:"dateISO"`
	Type      string `json:"type"`
	KiDelta   int    `json:"kiDelta"`
	CreatedAt string `json:"createdAtISO"`
	Note      string `json:"note,omitempty"`
}

// QuestCompletion marks a quest done for a date. Row existence is the sole
// completion flag; there is no boolean alongside it.
type QuestCompletion struct {
	ID          int64  `json:"id,omitempty"`
	Date        string `json:"dateISO"`
	QuestID     string `json:"questId"`
	CompletedAt string `json:"completedAtISO"`
	Meta        string `json:"meta,omitempty"`
}

// Workout records a finalized session, written even when no ki was granted.
type Workout struct {
	ID          int64  `json:"id,omitempty"`
	Date        string `json:"dateISO"`
	TemplateID  string `json:"templateId"`
	CompletedAt string `json:"completedAtISO"`
	DurationSec int    `json:"durationSec,omitempty"`
	Mode        string `json:"mode"`
}
