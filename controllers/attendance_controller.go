package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/Nandu8821/Attendance-Project/dto"
	"github.com/Nandu8821/Attendance-Project/errors"
	"github.com/Nandu8821/Attendance-Project/response"
	"github.com/Nandu8821/Attendance-Project/services"
)

// AttendanceController exposes the attendance store over HTTP.
type AttendanceController struct {
	service *services.AttendanceService
}

// NewAttendanceController creates an AttendanceController.
func NewAttendanceController(service *services.AttendanceService) *AttendanceController {
	return &AttendanceController{service: service}
}

// CreateAttendance handles POST /api/attendance.
func (ctl *AttendanceController) CreateAttendance(c *gin.Context) {
	var req dto.CreateAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if _, err := ctl.service.Create(c.Request.Context(), &req); err != nil {
		appErr := errors.GetAppError(err)
		if appErr == nil {
			response.ServerError(c, "Internal server error", err.Error())
			return
		}
		switch appErr.Code {
		case errors.ErrCodeRequiredField, errors.ErrCodeInvalidEntryType, errors.ErrCodeValidation:
			response.BadRequest(c, appErr.Message)
		case errors.ErrCodeUpload:
			response.ServerError(c, "Failed to upload image", detail(appErr))
		default:
			response.ServerError(c, "Internal server error", detail(appErr))
		}
		return
	}

	response.Success(c, "Attendance recorded successfully")
}

// GetAttendance handles GET /api/attendance. An email query parameter
// narrows the result to that email's records for the current day.
func (ctl *AttendanceController) GetAttendance(c *gin.Context) {
	records, err := ctl.service.Query(c.Request.Context(), c.Query("email"))
	if err != nil {
		appErr := errors.GetAppError(err)
		response.ServerError(c, "Internal server error", detail(appErr))
		return
	}

	c.JSON(200, records)
}

// HealthCheck handles GET /health.
func (ctl *AttendanceController) HealthCheck(c *gin.Context) {
	if err := ctl.service.HealthCheck(c.Request.Context()); err != nil {
		response.HealthError(c, "Database connection failed", err.Error())
		return
	}
	response.HealthOK(c, "Database connection is healthy")
}

func detail(appErr *errors.AppError) string {
	if appErr == nil || appErr.Err == nil {
		return ""
	}
	return appErr.Err.Error()
}
