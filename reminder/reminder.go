package reminder

import (
	"log"
	"time"

	"github.com/macrodk/check-in-out-with-slack/slackx"

	"github.com/robfig/cron/v3"
)

const reminderText = ":rotating_light: Time to check in! Please type `/checkin` to mark your attendance. :alarm_clock:"

// cadence: every 10 minutes from 09:00 through 09:50 on weekdays.
const schedule = "*/10 9 * * MON-FRI"

// Scheduler posts check-in reminders to the attendance channel on a fixed
// weekday-morning cadence.
type Scheduler struct {
	poster    slackx.Poster
	channelID string
	cron      *cron.Cron
}

func NewScheduler(poster slackx.Poster, channelID string) *Scheduler {
	return &Scheduler{
		poster:    poster,
		channelID: channelID,
		cron:      cron.New(),
	}
}

// Start registers the reminder job and runs the cron loop in its own
// goroutine.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(schedule, s.sendReminder); err != nil {
		return err
	}
	s.cron.Start()
	return nil
}

// Stop halts the cron loop and waits for a running job to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

func (s *Scheduler) sendReminder() {
	if err := s.poster.PostMessage(s.channelID, reminderText); err != nil {
		log.Printf("Failed to send check-in reminder: %v", err)
		return
	}
	log.Printf("[%s] Check-in reminder sent", time.Now().Format("2006-01-02 15:04:05"))
}
