package validator

import (
	"strings"

	"github.com/Nandu8821/Attendance-Project/constants"
	"github.com/Nandu8821/Attendance-Project/dto"
	"github.com/Nandu8821/Attendance-Project/errors"
)

// requiredFields maps payload keys to the labels shown in validation
// messages, in form order.
var requiredFields = []struct {
	label string
	value func(*dto.CreateAttendanceRequest) string
}{
	{"Email Address", func(r *dto.CreateAttendanceRequest) string { return r.Email }},
	{"Name", func(r *dto.CreateAttendanceRequest) string { return r.Name }},
	{"Emp Code", func(r *dto.CreateAttendanceRequest) string { return r.EmpCode }},
	{"Site", func(r *dto.CreateAttendanceRequest) string { return r.Site }},
	{"Entry Type", func(r *dto.CreateAttendanceRequest) string { return r.EntryType }},
	{"Work Shift", func(r *dto.CreateAttendanceRequest) string { return r.WorkShift }},
	{"Location Name", func(r *dto.CreateAttendanceRequest) string { return r.LocationName }},
}

// ValidateAttendance checks a submission payload. Image is optional; every
// other field must be present and entryType must be exactly In or Out.
func ValidateAttendance(req *dto.CreateAttendanceRequest) error {
	if missing := MissingFields(req); len(missing) > 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField,
			"All required fields must be provided: "+strings.Join(missing, ", "), nil)
	}

	if req.EntryType != constants.EntryTypeIn && req.EntryType != constants.EntryTypeOut {
		return errors.NewAppError(errors.ErrCodeInvalidEntryType,
			"Entry Type must be either In or Out", nil)
	}

	return nil
}

// MissingFields returns the labels of every empty required field.
func MissingFields(req *dto.CreateAttendanceRequest) []string {
	var missing []string
	for _, f := range requiredFields {
		if strings.TrimSpace(f.value(req)) == "" {
			missing = append(missing, f.label)
		}
	}
	return missing
}
