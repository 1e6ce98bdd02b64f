package routes

import (
	"database/sql"

	"github.com/macrodk/check-in-out-with-slack/handlers"
	"github.com/macrodk/check-in-out-with-slack/service"
	"github.com/macrodk/check-in-out-with-slack/store"

	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(r *gin.Engine, db *sql.DB, channelID string) {
	// Initialize handlers
	recordStore := store.NewRecordStore(db)
	attendanceService := service.NewAttendanceService(recordStore, channelID)
	attendanceHandler := handlers.NewAttendanceHandler(attendanceService)
	exportHandler := handlers.NewExportHandler(recordStore)
	healthHandler := handlers.NewHealthHandler(db)

	// Slash command endpoints. Slack posts commands as form data and expects
	// the response payload in the HTTP reply.
	commands := r.Group("/commands")
	{
		commands.POST("/checkin", attendanceHandler.CheckIn)
		commands.POST("/checkout", attendanceHandler.CheckOut)
		commands.POST("/status", attendanceHandler.Status)
	}

	// Current week's ledger as an xlsx download
	r.GET("/export", exportHandler.ExportWeek)

	// Health check route
	r.GET("/health", healthHandler.HealthCheck)
}
