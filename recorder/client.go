package recorder

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/Nandu8821/Attendance-Project/dto"
	"github.com/Nandu8821/Attendance-Project/errors"
	"github.com/Nandu8821/Attendance-Project/models"
	"github.com/Nandu8821/Attendance-Project/response"
)

// StoreClient is the slice of the HTTP client the recorder depends on.
type StoreClient interface {
	Create(ctx context.Context, req *dto.CreateAttendanceRequest) error
	Query(ctx context.Context, email string) ([]models.AttendanceRecord, error)
}

// Client talks to the attendance store over HTTP. Transport failures come
// back as NETWORK_ERROR; the caller's cached state is left for the caller
// to keep.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a Client against a base URL like
// "https://attendance.example.com".
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// Create submits one attendance record.
func (c *Client) Create(ctx context.Context, req *dto.CreateAttendanceRequest) error {
	body, err := json.Marshal(req)
	if err != nil {
		return err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/attendance", bytes.NewReader(body))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeNetwork, "Failed to submit attendance", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK {
		var ack response.SuccessResponse
		if err := json.NewDecoder(resp.Body).Decode(&ack); err != nil {
			return errors.NewAppError(errors.ErrCodeNetwork, "Unreadable server response", err)
		}
		if ack.Result != "success" {
			return errors.NewAppError(errors.ErrCodeServer, "Unexpected server acknowledgment", nil)
		}
		return nil
	}

	var payload response.ErrorResponse
	_ = json.NewDecoder(resp.Body).Decode(&payload)
	message := payload.Error
	if message == "" {
		message = fmt.Sprintf("server returned status %d", resp.StatusCode)
	}
	if payload.Details != "" {
		message = fmt.Sprintf("%s (%s)", message, payload.Details)
	}

	if resp.StatusCode == http.StatusBadRequest {
		return errors.NewAppError(errors.ErrCodeValidation, message, nil)
	}
	return errors.NewAppError(errors.ErrCodeServer, message, nil)
}

// Query fetches the day's records for an email, or every record when email
// is empty.
func (c *Client) Query(ctx context.Context, email string) ([]models.AttendanceRecord, error) {
	endpoint := c.baseURL + "/api/attendance"
	if email != "" {
		endpoint += "?email=" + url.QueryEscape(email)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeNetwork, "Failed to fetch attendance records", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewAppError(errors.ErrCodeServer,
			fmt.Sprintf("server returned status %d", resp.StatusCode), nil)
	}

	var records []models.AttendanceRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeNetwork, "Unreadable server response", err)
	}
	return records, nil
}

// Health checks the store's /health endpoint.
func (c *Client) Health(ctx context.Context) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeNetwork, "Failed to reach the attendance store", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.NewAppError(errors.ErrCodeServer,
			fmt.Sprintf("health check returned status %d", resp.StatusCode), nil)
	}
	return nil
}
