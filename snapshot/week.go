package snapshot

import "time"

// WeekNumber returns the ISO-8601 week-of-year for t. Week files are keyed
// by this number alone; the year is intentionally not part of the key.
func WeekNumber(t time.Time) int {
	_, week := t.ISOWeek()
	return week
}

// IsCutoffDay reports whether t falls on the day the next week's baseline
// is seeded. Sunday is the last day of the ISO week.
func IsCutoffDay(t time.Time) bool {
	return t.Weekday() == time.Sunday
}
