package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SuccessResponse is the POST acknowledgment shape.
type SuccessResponse struct {
	Result  string `json:"result"`
	Message string `json:"message"`
}

// ErrorResponse is the shape of every 4xx/5xx body.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// HealthResponse is the /health body.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Details string `json:"details,omitempty"`
}

// Success returns a success acknowledgment.
func Success(c *gin.Context, message string) {
	c.JSON(http.StatusOK, SuccessResponse{
		Result:  "success",
		Message: message,
	})
}

// BadRequest returns a validation failure.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error: message,
	})
}

// ServerError returns a server-side failure with a detail string.
func ServerError(c *gin.Context, message, details string) {
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   message,
		Details: details,
	})
}

// HealthOK reports a reachable backend.
func HealthOK(c *gin.Context, message string) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:  "ok",
		Message: message,
	})
}

// HealthError reports an unreachable backend.
func HealthError(c *gin.Context, message, details string) {
	c.JSON(http.StatusInternalServerError, HealthResponse{
		Status:  "error",
		Message: message,
		Details: details,
	})
}
