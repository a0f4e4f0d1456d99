package errors

import (
	"errors"
	"fmt"
)

// ErrorCode classifies an application error.
type ErrorCode string

const (
	// Validation errors
	ErrCodeValidation       ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField    ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidEntryType ErrorCode = "INVALID_ENTRY_TYPE"
	ErrCodeRosterMismatch   ErrorCode = "ROSTER_MISMATCH"

	// Submission sequencing errors
	ErrCodeSequence    ErrorCode = "SEQUENCE_ERROR"
	ErrCodeActiveEmail ErrorCode = "ACTIVE_EMAIL_CONFLICT"

	// External collaborator errors
	ErrCodeUpload      ErrorCode = "UPLOAD_ERROR"
	ErrCodePersistence ErrorCode = "PERSISTENCE_ERROR"
	ErrCodeNetwork     ErrorCode = "NETWORK_ERROR"
	ErrCodeServer      ErrorCode = "SERVER_ERROR"

	// Device errors
	ErrCodeGeolocationDenied      ErrorCode = "GEOLOCATION_DENIED"
	ErrCodeGeolocationUnsupported ErrorCode = "GEOLOCATION_UNSUPPORTED"
	ErrCodeCamera                 ErrorCode = "CAMERA_ERROR"
)

// AppError carries a code, a user-facing message and an optional cause.
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError.
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsAppError reports whether err is an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts the AppError from err, or nil.
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// HasCode reports whether err is an AppError with the given code.
func HasCode(err error, code ErrorCode) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Code == code
}

var (
	// Device errors
	ErrLocationDenied      = errors.New("location permission denied")
	ErrLocationUnsupported = errors.New("geolocation not supported")
	ErrCameraUnavailable   = errors.New("camera unavailable")

	// Roster errors
	ErrNotOnRoster = errors.New("email not on roster")
)
