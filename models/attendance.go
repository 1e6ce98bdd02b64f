package models

import "time"

// Record statuses. A user's records for a week alternate between the two,
// starting with checkin.
const (
	StatusCheckin  = "checkin"
	StatusCheckout = "checkout"
)

// AttendanceRecord is one row of the weekly ledger. Records are append-only
// and never updated; Total and Remaining are the user's weekly hours as they
// stood when the record was written.
type AttendanceRecord struct {
	Name      string    `json:"name"`
	Timestamp time.Time `json:"timestamp"`
	Status    string    `json:"status"`
	Weekday   string    `json:"weekday"`
	Total     float64   `json:"total"`
	Remaining float64   `json:"remaining"`
}

// SlashCommandRequest is the form payload Slack posts for a slash command.
type SlashCommandRequest struct {
	Command   string `form:"command"`
	UserName  string `form:"user_name" binding:"required"`
	ChannelID string `form:"channel_id" binding:"required"`
}

// CommandResponse is the reply payload for a slash command. ResponseType is
// "ephemeral" or "in_channel".
type CommandResponse struct {
	ResponseType string `json:"response_type"`
	Text         string `json:"text"`
}
