package recorder

import (
	"strings"
	"time"

	"github.com/Nandu8821/Attendance-Project/dto"
	"github.com/Nandu8821/Attendance-Project/models"
)

// DeriveDailyStatus computes the check-in/check-out completion state from
// one day's records. Pure: the same record set always yields the same
// status. Entry types are matched trimmed and case-insensitively.
func DeriveDailyStatus(records []models.AttendanceRecord, now time.Time) dto.DailyStatus {
	status := dto.DailyStatus{ComputedAt: now}
	for _, record := range records {
		switch strings.ToLower(strings.TrimSpace(record.EntryType)) {
		case "in":
			status.HasCheckedIn = true
		case "out":
			status.HasCheckedOut = true
		}
	}
	return status
}

// DayKey formats the calendar-day component of a status cache key.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
