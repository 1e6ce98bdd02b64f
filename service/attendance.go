package service

import (
	"errors"
	"time"

	"github.com/macrodk/check-in-out-with-slack/hours"
	"github.com/macrodk/check-in-out-with-slack/ledger"
	"github.com/macrodk/check-in-out-with-slack/models"
)

var (
	ErrChannelNotAuthorized = errors.New("channel not authorized for attendance commands")
	ErrAlreadyCheckedIn     = errors.New("user is already checked in")
	ErrNotCheckedIn         = errors.New("user is not checked in")
)

// Store is the record store the service reads and writes.
type Store interface {
	Append(key string, rec models.AttendanceRecord) error
	LastStatus(key, user string) string
	RecordsForWeek(key, user string, weekStart time.Time) []models.AttendanceRecord
}

// Confirmation is returned on a successful check-in or check-out. Total and
// Remaining are the weekly hours as of the moment before the event.
type Confirmation struct {
	Timestamp time.Time
	Weekday   string
	Total     float64
	Remaining float64
}

// AttendanceService enforces the per-user check-in/check-out state machine:
// statuses must strictly alternate within a week, starting with checkin.
type AttendanceService struct {
	store     Store
	channelID string
	now       func() time.Time
}

func NewAttendanceService(store Store, channelID string) *AttendanceService {
	return &AttendanceService{store: store, channelID: channelID, now: time.Now}
}

// CheckIn records a checkin for the user. It fails with ErrAlreadyCheckedIn
// if the user's last record this week is an unmatched checkin.
func (s *AttendanceService) CheckIn(user, channel string) (Confirmation, error) {
	if channel != s.channelID {
		return Confirmation{}, ErrChannelNotAuthorized
	}
	key := ledger.KeyForDate(s.now())
	if s.store.LastStatus(key, user) == models.StatusCheckin {
		return Confirmation{}, ErrAlreadyCheckedIn
	}
	return s.append(user, models.StatusCheckin)
}

// CheckOut records a checkout for the user. It fails with ErrNotCheckedIn
// unless the user's last record this week is an unmatched checkin.
func (s *AttendanceService) CheckOut(user, channel string) (Confirmation, error) {
	if channel != s.channelID {
		return Confirmation{}, ErrChannelNotAuthorized
	}
	key := ledger.KeyForDate(s.now())
	if s.store.LastStatus(key, user) != models.StatusCheckin {
		return Confirmation{}, ErrNotCheckedIn
	}
	return s.append(user, models.StatusCheckout)
}

// Status reports the user's current weekly totals without writing a record.
func (s *AttendanceService) Status(user, channel string) (Confirmation, error) {
	if channel != s.channelID {
		return Confirmation{}, ErrChannelNotAuthorized
	}
	now := s.now()
	total := s.weeklyTotal(user, now)
	return Confirmation{
		Timestamp: now,
		Weekday:   now.Weekday().String(),
		Total:     total,
		Remaining: hours.Remaining(total),
	}, nil
}

func (s *AttendanceService) append(user, status string) (Confirmation, error) {
	now := s.now()
	total := s.weeklyTotal(user, now)
	remaining := hours.Remaining(total)

	rec := models.AttendanceRecord{
		Name:      user,
		Timestamp: now,
		Status:    status,
		Weekday:   now.Weekday().String(),
		Total:     total,
		Remaining: remaining,
	}
	if err := s.store.Append(ledger.KeyForDate(now), rec); err != nil {
		return Confirmation{}, err
	}
	return Confirmation{
		Timestamp: now,
		Weekday:   rec.Weekday,
		Total:     total,
		Remaining: remaining,
	}, nil
}

func (s *AttendanceService) weeklyTotal(user string, now time.Time) float64 {
	records := s.store.RecordsForWeek(ledger.KeyForDate(now), user, ledger.WeekStart(now))
	return hours.TotalHours(records)
}
