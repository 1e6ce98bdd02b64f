package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/macrodk/check-in-out-with-slack/ledger"
	"github.com/macrodk/check-in-out-with-slack/store"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

var exportColumns = []string{"name", "timestamp", "status", "weekday", "total", "remaining"}

// ExportHandler renders the current week's ledger as an xlsx workbook with
// one sheet per user, matching the layout the attendance data was originally
// kept in.
type ExportHandler struct {
	store *store.RecordStore
}

func NewExportHandler(s *store.RecordStore) *ExportHandler {
	return &ExportHandler{store: s}
}

func (h *ExportHandler) ExportWeek(c *gin.Context) {
	now := time.Now()
	key := ledger.KeyForDate(now)
	weekStart := ledger.WeekStart(now)

	f := excelize.NewFile()
	defer f.Close()

	users := h.store.UsersForWeek(key)
	for i, user := range users {
		sheet := user
		if i == 0 {
			// excelize always creates one default sheet; rename it.
			f.SetSheetName("Sheet1", sheet)
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build export"})
				return
			}
		}

		for col, header := range exportColumns {
			cell, _ := excelize.CoordinatesToCellName(col+1, 1)
			f.SetCellValue(sheet, cell, header)
		}

		for rowIdx, rec := range h.store.RecordsForWeek(key, user, weekStart) {
			values := []interface{}{
				rec.Name,
				rec.Timestamp.Format(timestampLayout),
				rec.Status,
				rec.Weekday,
				rec.Total,
				rec.Remaining,
			}
			for col, v := range values {
				cell, _ := excelize.CoordinatesToCellName(col+1, rowIdx+2)
				f.SetCellValue(sheet, cell, v)
			}
		}
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.xlsx", key))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write export"})
	}
}
