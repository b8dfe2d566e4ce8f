// Package platform is the REST client for the upstream MindSpace platform
// API, which owns specialists, appointments and account data. All responses
// carry a {success, message, ...} envelope; success:false and non-2xx are
// the same failure class.
package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"mindspace/models"
)

// API is the subset of the platform consumed by the presentation core.
type API interface {
	Specialists(ctx context.Context) ([]models.Specialist, error)
	Appointments(ctx context.Context) ([]models.Appointment, error)
	BookAppointment(ctx context.Context, req models.BookingRequest) (*models.Appointment, error)
	UpdateAppointmentStatus(ctx context.Context, id string, status models.AppointmentStatus) error
	Ping(ctx context.Context) bool
}

// Client talks to the platform API over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient returns a Client for the given base URL. A zero timeout falls
// back to 10s so a stalled upstream can never hold a UI operation open.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

type specialistsResponse struct {
	Success     bool                `json:"success"`
	Message     string              `json:"message"`
	Specialists []models.Specialist `json:"specialists"`
}

// Specialists fetches the full specialist roster with availability.
func (c *Client) Specialists(ctx context.Context) ([]models.Specialist, error) {
	var out specialistsResponse
	if err := c.do(ctx, http.MethodGet, "/api/admin/specialists", nil, "specialists", &out); err != nil {
		return nil, err
	}
	return out.Specialists, nil
}

type appointmentsResponse struct {
	Success      bool                 `json:"success"`
	Message      string               `json:"message"`
	Appointments []models.Appointment `json:"appointments"`
}

// Appointments fetches the current user's appointments.
func (c *Client) Appointments(ctx context.Context) ([]models.Appointment, error) {
	var out appointmentsResponse
	if err := c.do(ctx, http.MethodGet, "/api/appointments/all", nil, "appointments", &out); err != nil {
		return nil, err
	}
	return out.Appointments, nil
}

type bookResponse struct {
	Success     bool                `json:"success"`
	Message     string              `json:"message"`
	Appointment *models.Appointment `json:"appointment"`
}

// BookAppointment submits a booking and returns the created appointment.
func (c *Client) BookAppointment(ctx context.Context, req models.BookingRequest) (*models.Appointment, error) {
	var out bookResponse
	if err := c.do(ctx, http.MethodPost, "/api/appointments/book", req, "book", &out); err != nil {
		return nil, err
	}
	if out.Appointment == nil {
		return nil, &ServerError{Op: "book", Message: "booking response carried no appointment"}
	}
	return out.Appointment, nil
}

type statusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// UpdateAppointmentStatus requests a status transition (e.g. cancellation).
func (c *Client) UpdateAppointmentStatus(ctx context.Context, id string, status models.AppointmentStatus) error {
	path := fmt.Sprintf("/api/appointments/%s/status", id)
	body := map[string]string{"status": string(status)}
	var out statusResponse
	return c.do(ctx, http.MethodPatch, path, body, "updateStatus", &out)
}

// Ping reports whether the platform answers at all; used by the health monitor.
func (c *Client) Ping(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/admin/specialists", nil)
	if err != nil {
		return false
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	return resp.StatusCode < http.StatusInternalServerError
}

// envelope is the common success/message pair every response starts with.
type envelope interface{ ok() (bool, string) }

func (r *specialistsResponse) ok() (bool, string)  { return r.Success, r.Message }
func (r *appointmentsResponse) ok() (bool, string) { return r.Success, r.Message }
func (r *bookResponse) ok() (bool, string)         { return r.Success, r.Message }
func (r *statusResponse) ok() (bool, string)       { return r.Success, r.Message }

func (c *Client) do(ctx context.Context, method, path string, body any, op string, out envelope) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("platform %s: marshal request: %w", op, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("platform %s: build request: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	// Decode the body even on non-2xx: failure envelopes carry the message.
	var decodeErr error
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		decodeErr = err
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, msg := out.ok()
		return &ServerError{Op: op, StatusCode: resp.StatusCode, Message: msg}
	}
	if decodeErr != nil {
		return &ServerError{Op: op, StatusCode: resp.StatusCode, Message: "malformed response body"}
	}
	if success, msg := out.ok(); !success {
		return &ServerError{Op: op, StatusCode: resp.StatusCode, Message: msg}
	}
	return nil
}
