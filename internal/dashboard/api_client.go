// Package dashboard is the Go client for the dashboard API: an envelope-aware
// HTTP client, a view-model controller owning one page's record set, and form
// controllers that validate drafts before any request is issued.
package dashboard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"construction-dashboard-api/internal/dto"
	"construction-dashboard-api/internal/schedule"
)

// APIError is a failed request: a non-2xx status or an envelope with
// success=false. Message carries the server-provided error when present.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api error (status %d)", e.Status)
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
	Code    string          `json:"code,omitempty"`
}

// Client talks to the dashboard API. All methods decode the response envelope
// and treat success=false identically to a non-2xx status.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a new Client. baseURL includes the API base path.
func NewClient(baseURL, token string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	return decodeEnvelope(resp, out)
}

func decodeEnvelope(resp *http.Response, out interface{}) error {
	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return &APIError{Status: resp.StatusCode}
		}
		return fmt.Errorf("failed to decode response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !env.Success {
		return &APIError{Status: resp.StatusCode, Code: env.Code, Message: env.Error}
	}
	if out != nil && env.Data != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode response data: %w", err)
		}
	}
	return nil
}

// GetSchedule loads the full schedule view for one project
func (c *Client) GetSchedule(ctx context.Context, projectID uuid.UUID) (*dto.ScheduleResponse, error) {
	var out dto.ScheduleResponse
	if err := c.do(ctx, http.MethodGet, "/projects/"+projectID.String()+"/schedule", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreatePhase adds a phase to a project's schedule
func (c *Client) CreatePhase(ctx context.Context, projectID uuid.UUID, req *dto.CreatePhaseRequest) (*dto.PhaseResponse, error) {
	var out dto.PhaseResponse
	if err := c.do(ctx, http.MethodPost, "/projects/"+projectID.String()+"/schedule", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetDaily loads the daily snapshot for one project and date
func (c *Client) GetDaily(ctx context.Context, projectID uuid.UUID, date time.Time) (*dto.DailyProgressResponse, error) {
	query := url.Values{
		"projectId": {projectID.String()},
		"date":      {date.Format("2006-01-02")},
	}
	var out dto.DailyProgressResponse
	if err := c.do(ctx, http.MethodGet, "/site-schedule/daily", query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddDailyActivity records a new activity in one day's log
func (c *Client) AddDailyActivity(ctx context.Context, projectID uuid.UUID, date time.Time, req *dto.CreateActivityRequest) (*dto.DailyProgressResponse, error) {
	query := url.Values{
		"projectId": {projectID.String()},
		"date":      {date.Format("2006-01-02")},
	}
	var out dto.DailyProgressResponse
	if err := c.do(ctx, http.MethodPost, "/site-schedule/daily", query, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateDailyActivity patches one activity inside a daily snapshot
func (c *Client) UpdateDailyActivity(ctx context.Context, req *dto.UpdateDailyActivityRequest) (*dto.DailyProgressResponse, error) {
	var out dto.DailyProgressResponse
	if err := c.do(ctx, http.MethodPut, "/site-schedule/daily", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ActivityList is the flat cross-project list with its stats
type ActivityList struct {
	Activities []schedule.ActivityRecord `json:"activities"`
	Stats      schedule.Stats            `json:"stats"`
}

// ListActivities loads the flat activity list, optionally filtered
func (c *Client) ListActivities(ctx context.Context, filter *dto.ActivityFilterQuery) (*ActivityList, error) {
	query := url.Values{}
	if filter != nil {
		set := func(k, v string) {
			if v != "" {
				query.Set(k, v)
			}
		}
		set("status", filter.Status)
		set("category", filter.Category)
		set("priority", filter.Priority)
		set("search", filter.Search)
		set("projectId", filter.ProjectID)
		set("from", filter.From)
		set("to", filter.To)
	}

	var out ActivityList
	if err := c.do(ctx, http.MethodGet, "/site-schedule/activities", query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetMilestones loads a project's milestones
func (c *Client) GetMilestones(ctx context.Context, projectID uuid.UUID) ([]*dto.MilestoneResponse, error) {
	var out []*dto.MilestoneResponse
	if err := c.do(ctx, http.MethodGet, "/projects/"+projectID.String()+"/milestones", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateMilestone creates a milestone
func (c *Client) CreateMilestone(ctx context.Context, projectID uuid.UUID, req *dto.CreateMilestoneRequest) (*dto.MilestoneResponse, error) {
	var out dto.MilestoneResponse
	if err := c.do(ctx, http.MethodPost, "/projects/"+projectID.String()+"/milestones", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetEvents loads the calendar events inside a window
func (c *Client) GetEvents(ctx context.Context, query *dto.EventRangeQuery) ([]*dto.EventResponse, error) {
	values := url.Values{}
	if query != nil {
		if query.From != "" {
			values.Set("from", query.From)
		}
		if query.To != "" {
			values.Set("to", query.To)
		}
		if query.ProjectID != "" {
			values.Set("projectId", query.ProjectID)
		}
	}

	var out []*dto.EventResponse
	if err := c.do(ctx, http.MethodGet, "/calendar/events", values, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListFiles loads a project's files with library stats
func (c *Client) ListFiles(ctx context.Context, projectID uuid.UUID) (*dto.FileListResponse, error) {
	query := url.Values{"projectId": {projectID.String()}}
	var out dto.FileListResponse
	if err := c.do(ctx, http.MethodGet, "/files", query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UploadFile sends one file as a multipart request and returns its metadata.
// The form controllers use this for per-image uploads before submit.
func (c *Client) UploadFile(ctx context.Context, projectID uuid.UUID, fileName, contentType string, content io.Reader) (*dto.FileResponse, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		return nil, fmt.Errorf("failed to build multipart body: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, fmt.Errorf("failed to read file content: %w", err)
	}
	if err := writer.WriteField("projectId", projectID.String()); err != nil {
		return nil, fmt.Errorf("failed to build multipart body: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to build multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/files", &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	var out dto.FileResponse
	if err := decodeEnvelope(resp, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

var _ ImageUploader = (*Client)(nil)

// UploadImage uploads one staged image and returns the stored file's URL.
// The activity form submits its staged batch through this.
func (c *Client) UploadImage(ctx context.Context, projectID uuid.UUID, image StagedImage) (string, error) {
	file, err := c.UploadFile(ctx, projectID, image.Name, image.ContentType, image.Content)
	if err != nil {
		return "", err
	}
	return file.URL, nil
}
