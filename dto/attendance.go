package dto

import "time"

// CreateAttendanceRequest is the POST /api/attendance payload. Image is an
// optional base64 data URL; everything else is required.
type CreateAttendanceRequest struct {
	Email        string `json:"email"`
	Name         string `json:"name"`
	EmpCode      string `json:"empCode"`
	Site         string `json:"site"`
	EntryType    string `json:"entryType"`
	WorkShift    string `json:"workShift"`
	LocationName string `json:"locationName"`
	Image        string `json:"image,omitempty"`
}

// DailyStatus is the derived check-in/check-out completion state for one
// email on one calendar day.
type DailyStatus struct {
	HasCheckedIn  bool      `json:"hasCheckedIn"`
	HasCheckedOut bool      `json:"hasCheckedOut"`
	ComputedAt    time.Time `json:"computedAt"`
}

// Fresh reports whether the status is still usable at now given the ttl
// window.
func (s DailyStatus) Fresh(now time.Time, ttl time.Duration) bool {
	return now.Sub(s.ComputedAt) < ttl
}
