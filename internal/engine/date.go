package engine

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-day format used everywhere in the store.
const DateLayout = "2006-01-02"

// TodayISO formats t as a local calendar day.
func TodayISO(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseISODate interprets YYYY-MM-DD as a local date, matching TodayISO.
func ParseISODate(iso string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, iso, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", iso, err)
	}
	return t, nil
}

func AddDaysISO(iso string, delta int) (string, error) {
	t, err := ParseISODate(iso)
	if err != nil {
		return "", err
	}
	return TodayISO(t.AddDate(0, 0, delta)), nil
}

// IsYesterdayISO reports whether candidate is the day before today. Malformed
// dates simply compare unequal.
func IsYesterdayISO(candidateISO, todayISO string) bool {
	yesterday, err := AddDaysISO(todayISO, -1)
	if err != nil {
		return false
	}
	return candidateISO == yesterday
}
