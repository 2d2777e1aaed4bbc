// Package client is a typed client for the booking REST API. Every call
// is a single attempt: failures are returned to the caller immediately,
// with no retry, caching, or queueing.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/chikukwa/busbooking/internal/domain/models"
)

// APIError is a non-2xx response. Message carries the server's error text
// verbatim when the body had one, otherwise a generic fallback.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}

type Client struct {
	baseURL string
	httpc   *http.Client
}

// New builds a client for the API rooted at baseURL (e.g.
// "http://localhost:8080"). The "/api" prefix is added per call.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{},
	}
}

// BookingRequest is the booking form payload. Email is the only optional
// field; the rest are validated server-side.
type BookingRequest struct {
	Name        string `json:"name"`
	Age         int    `json:"age"`
	Phone       string `json:"phone"`
	Email       string `json:"email,omitempty"`
	Departure   string `json:"departure"`
	Destination string `json:"destination"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Seat        int    `json:"seat"`
}

type LoginResult struct {
	Username string `json:"username"`
	Token    string `json:"token"`
}

func (c *Client) Config(ctx context.Context) (models.SystemConfig, error) {
	var cfg models.SystemConfig
	err := c.do(ctx, http.MethodGet, "/api/config", "", nil, &cfg)
	return cfg, err
}

func (c *Client) RouteInfo(ctx context.Context, departure, destination string) (models.RouteInfo, error) {
	var info models.RouteInfo
	body := map[string]string{"departure": departure, "destination": destination}
	err := c.do(ctx, http.MethodPost, "/api/route-info", "", body, &info)
	return info, err
}

func (c *Client) CreateBooking(ctx context.Context, req BookingRequest) (models.Booking, error) {
	var booking models.Booking
	err := c.do(ctx, http.MethodPost, "/api/bookings", "", req, &booking)
	return booking, err
}

// Booking fetches one booking. The ID is upper-cased before sending, so
// lookups are case-insensitive for the caller.
func (c *Client) Booking(ctx context.Context, ticketID string) (models.Booking, error) {
	var booking models.Booking
	err := c.do(ctx, http.MethodGet, "/api/bookings/"+normalizeTicketID(ticketID), "", nil, &booking)
	return booking, err
}

func (c *Client) CancelBooking(ctx context.Context, ticketID string) error {
	return c.do(ctx, http.MethodDelete, "/api/bookings/"+normalizeTicketID(ticketID), "", nil, nil)
}

// Receipt downloads the PDF receipt for a booking.
func (c *Client) Receipt(ctx context.Context, ticketID string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/bookings/"+normalizeTicketID(ticketID)+"/receipt", nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apiErrorFromBody(resp.StatusCode, data)
	}
	return data, nil
}

func (c *Client) Schedules(ctx context.Context) ([]models.Route, error) {
	var schedules []models.Route
	err := c.do(ctx, http.MethodGet, "/api/schedules", "", nil, &schedules)
	return schedules, err
}

func (c *Client) Stops(ctx context.Context, city string) (models.BusStop, error) {
	var stop models.BusStop
	err := c.do(ctx, http.MethodGet, "/api/stops/"+city, "", nil, &stop)
	return stop, err
}

func (c *Client) Login(ctx context.Context, username, password string) (LoginResult, error) {
	var result LoginResult
	body := map[string]string{"username": username, "password": password}
	err := c.do(ctx, http.MethodPost, "/api/admin/login", "", body, &result)
	return result, err
}

func (c *Client) Stats(ctx context.Context, token string) (models.BookingStats, error) {
	var stats models.BookingStats
	err := c.do(ctx, http.MethodGet, "/api/admin/stats", token, nil, &stats)
	return stats, err
}

func (c *Client) AllBookings(ctx context.Context, token string) ([]models.Booking, error) {
	var bookings []models.Booking
	err := c.do(ctx, http.MethodGet, "/api/admin/bookings", token, nil, &bookings)
	return bookings, err
}

func (c *Client) Routes(ctx context.Context, token string) ([]models.Route, error) {
	var routes []models.Route
	err := c.do(ctx, http.MethodGet, "/api/admin/routes", token, nil, &routes)
	return routes, err
}

func (c *Client) UpdateRouteFare(ctx context.Context, token, route string, fare float64) error {
	body := map[string]any{"route": route, "fare": fare}
	return c.do(ctx, http.MethodPut, "/api/admin/routes", token, body, nil)
}

func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apiErrorFromBody(resp.StatusCode, data)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &APIError{Status: resp.StatusCode, Message: "malformed response body"}
	}
	return nil
}

func apiErrorFromBody(status int, data []byte) *APIError {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(data, &payload); err == nil && payload.Error != "" {
		return &APIError{Status: status, Message: payload.Error}
	}
	return &APIError{Status: status, Message: fmt.Sprintf("request failed with status %d", status)}
}

func normalizeTicketID(ticketID string) string {
	return strings.ToUpper(strings.TrimSpace(ticketID))
}
