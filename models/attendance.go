package models

import (
	"time"
)

// AttendanceRecord is one check-in or check-out event. Records are created
// once with a server-assigned timestamp and never updated or deleted.
type AttendanceRecord struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Timestamp    time.Time `json:"timestamp" gorm:"autoCreateTime;index:idx_employee_data_email_ts,priority:2"`
	Email        string    `json:"email" gorm:"index:idx_employee_data_email_ts,priority:1"`
	Name         string    `json:"name"`
	EmpCode      string    `json:"empCode"`
	Site         string    `json:"site"`
	EntryType    string    `json:"entryType"` // In | Out
	WorkShift    string    `json:"workShift"`
	LocationName string    `json:"locationName"`
	ImageURL     string    `json:"imageUrl,omitempty"`
}

// TableName keeps the name of the collection the original deployment wrote
// to.
func (AttendanceRecord) TableName() string {
	return "employee_data"
}
