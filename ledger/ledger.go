package ledger

import (
	"fmt"
	"time"
)

// KeyForDate returns the ledger key for the week containing t, derived from
// that week's Monday and Friday dates, e.g. "attendance_0824_0828". All dates
// Monday through Sunday map to the same key.
func KeyForDate(t time.Time) string {
	monday := WeekStart(t)
	friday := monday.AddDate(0, 0, 4)
	return fmt.Sprintf("attendance_%s_%s", monday.Format("0102"), friday.Format("0102"))
}

// WeekStart returns Monday 00:00:00 of the week containing t, in t's
// location. Sunday counts as the last day of the preceding Monday's week.
func WeekStart(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	monday := t.AddDate(0, 0, -offset)
	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, t.Location())
}
