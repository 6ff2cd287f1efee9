// Package client is the Go consumer of the charity events API. All calls go
// through one chokepoint that enforces the response envelope: callers receive
// either the unwrapped data or an *APIError, and never inspect transport
// status themselves.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/weiyuc/charityevents/internal/models"
)

const defaultTimeout = 10 * time.Second

// APIError is the single error type raised for transport failures, non-2xx
// statuses and success=false envelopes. Message carries the server's
// explanation when one was present.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api request failed (status %d): %s", e.StatusCode, e.Message)
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
}

// HomeData is the home feed payload.
type HomeData struct {
	UpcomingEvents []models.EventSummary `json:"upcomingEvents"`
	AllCategories  []models.Category     `json:"allCategories"`
}

// SearchFilters mirrors the optional search query parameters. Zero values
// are omitted from the request.
type SearchFilters struct {
	Date       string
	Location   string
	CategoryID *int
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

// Home fetches the upcoming events feed and the category list.
func (c *Client) Home(ctx context.Context) (HomeData, error) {
	var home HomeData
	if err := c.get(ctx, "/api/home", nil, &home); err != nil {
		return HomeData{}, err
	}
	return home, nil
}

// Search fetches active events matching the given filters. An empty result
// is returned as an empty slice, not an error.
func (c *Client) Search(ctx context.Context, filters SearchFilters) ([]models.EventSummary, error) {
	params := url.Values{}
	if filters.Date != "" {
		params.Set("date", filters.Date)
	}
	if filters.Location != "" {
		params.Set("location", filters.Location)
	}
	if filters.CategoryID != nil {
		params.Set("categoryId", strconv.Itoa(*filters.CategoryID))
	}

	var result struct {
		MatchedEvents []models.EventSummary `json:"matchedEvents"`
	}
	if err := c.get(ctx, "/api/events/search", params, &result); err != nil {
		return nil, err
	}
	return result.MatchedEvents, nil
}

// EventDetails fetches a single active event by id.
func (c *Client) EventDetails(ctx context.Context, eventID int) (models.EventDetail, error) {
	var result struct {
		EventDetails models.EventDetail `json:"eventDetails"`
	}
	if err := c.get(ctx, fmt.Sprintf("/api/events/%d", eventID), nil, &result); err != nil {
		return models.EventDetail{}, err
	}
	return result.EventDetails, nil
}

// Categories fetches the category list, reusing the home feed.
func (c *Client) Categories(ctx context.Context) ([]models.Category, error) {
	home, err := c.Home(ctx)
	if err != nil {
		return nil, err
	}
	return home.AllCategories, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("invalid response body: %v", err),
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !env.Success {
		message := env.Message
		if message == "" {
			message = "api request failed"
		}
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    message,
		}
	}

	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("invalid response data: %v", err),
		}
	}
	return nil
}
