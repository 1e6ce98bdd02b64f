package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/macrodk/check-in-out-with-slack/models"
	"github.com/macrodk/check-in-out-with-slack/service"

	"github.com/gin-gonic/gin"
)

const timestampLayout = "2006-01-02 15:04:05"

type AttendanceHandler struct {
	svc *service.AttendanceService
}

func NewAttendanceHandler(svc *service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{svc: svc}
}

// CheckIn handles the /checkin slash command.
func (h *AttendanceHandler) CheckIn(c *gin.Context) {
	var req models.SlashCommandRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	conf, err := h.svc.CheckIn(req.UserName, req.ChannelID)
	if err != nil {
		h.respondError(c, req.UserName, err)
		return
	}

	c.JSON(http.StatusOK, models.CommandResponse{
		ResponseType: "in_channel",
		Text: fmt.Sprintf(":white_check_mark: %s checked in!\n:clock3: %s (%s)\n:stopwatch: Total hours: %v hrs\n:clock4: Remaining: %v hrs",
			req.UserName, conf.Timestamp.Format(timestampLayout), conf.Weekday, conf.Total, conf.Remaining),
	})
}

// CheckOut handles the /checkout slash command.
func (h *AttendanceHandler) CheckOut(c *gin.Context) {
	var req models.SlashCommandRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	conf, err := h.svc.CheckOut(req.UserName, req.ChannelID)
	if err != nil {
		h.respondError(c, req.UserName, err)
		return
	}

	c.JSON(http.StatusOK, models.CommandResponse{
		ResponseType: "in_channel",
		Text: fmt.Sprintf(":wave: %s checked out!\n:clock3: %s (%s)\n:stopwatch: Total hours: %v hrs\n:clock4: Remaining: %v hrs",
			req.UserName, conf.Timestamp.Format(timestampLayout), conf.Weekday, conf.Total, conf.Remaining),
	})
}

// Status handles the /status slash command. It reports the user's current
// weekly totals without recording anything.
func (h *AttendanceHandler) Status(c *gin.Context) {
	var req models.SlashCommandRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	conf, err := h.svc.Status(req.UserName, req.ChannelID)
	if err != nil {
		h.respondError(c, req.UserName, err)
		return
	}

	c.JSON(http.StatusOK, models.CommandResponse{
		ResponseType: "ephemeral",
		Text: fmt.Sprintf(":stopwatch: %s has worked %v hrs this week\n:clock4: Remaining: %v hrs",
			req.UserName, conf.Total, conf.Remaining),
	})
}

// respondError maps service errors to Slack payloads. State-machine
// violations are posted in channel like the confirmations they replace;
// channel mismatches stay ephemeral.
func (h *AttendanceHandler) respondError(c *gin.Context, user string, err error) {
	switch {
	case errors.Is(err, service.ErrChannelNotAuthorized):
		c.JSON(http.StatusOK, models.CommandResponse{
			ResponseType: "ephemeral",
			Text:         ":warning: This command is only allowed in the designated attendance channel.",
		})
	case errors.Is(err, service.ErrAlreadyCheckedIn):
		c.JSON(http.StatusOK, models.CommandResponse{
			ResponseType: "in_channel",
			Text:         fmt.Sprintf(":warning: %s is already checked in. Please check out first.", user),
		})
	case errors.Is(err, service.ErrNotCheckedIn):
		c.JSON(http.StatusOK, models.CommandResponse{
			ResponseType: "in_channel",
			Text:         fmt.Sprintf(":warning: %s is not currently checked in. Please check in first.", user),
		})
	default:
		c.JSON(http.StatusInternalServerError, models.CommandResponse{
			ResponseType: "ephemeral",
			Text:         ":x: Failed to save the attendance record. Please try again.",
		})
	}
}
