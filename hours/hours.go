package hours

import (
	"math"
	"time"

	"github.com/macrodk/check-in-out-with-slack/models"
)

const (
	// WeeklyTarget is the number of hours a user is expected to work per week.
	WeeklyTarget = 40.0

	// maxShiftSeconds caps the contribution of a single checkin/checkout
	// pair at 10 hours.
	maxShiftSeconds = 36000.0

	lunchStartHour = 12
	lunchEndHour   = 13
)

// TotalHours computes the worked hours from one user's records for a single
// week, in append order, rounded to two decimals.
//
// Records are scanned with a single open checkin time: a checkin overwrites
// any unmatched prior checkin, and a checkout without an open checkin is
// ignored. Each matched pair contributes its elapsed seconds minus the
// overlap with the lunch window, capped at 10 hours and clamped to zero.
func TotalHours(records []models.AttendanceRecord) float64 {
	var total float64
	var checkinTime time.Time
	open := false

	for _, rec := range records {
		switch rec.Status {
		case models.StatusCheckin:
			checkinTime = rec.Timestamp
			open = true
		case models.StatusCheckout:
			if !open {
				continue
			}
			worked := rec.Timestamp.Sub(checkinTime).Seconds()
			worked -= lunchOverlap(checkinTime, rec.Timestamp)
			worked = math.Min(worked, maxShiftSeconds)
			total += math.Max(0, worked)
			open = false
		}
	}
	return round2(total / 3600)
}

// Remaining returns the hours left toward the weekly target, never negative.
func Remaining(total float64) float64 {
	return math.Max(0, round2(WeeklyTarget-total))
}

// lunchOverlap returns the seconds of [start, end] that fall inside the
// 12:00-13:00 lunch window. The window is anchored to the checkin's calendar
// date even when the checkout falls on a later date.
func lunchOverlap(start, end time.Time) float64 {
	lunchStart := time.Date(start.Year(), start.Month(), start.Day(), lunchStartHour, 0, 0, 0, start.Location())
	lunchEnd := time.Date(start.Year(), start.Month(), start.Day(), lunchEndHour, 0, 0, 0, start.Location())
	if !start.Before(lunchEnd) || !end.After(lunchStart) {
		return 0
	}
	from := maxTime(start, lunchStart)
	to := minTime(end, lunchEnd)
	return to.Sub(from).Seconds()
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
