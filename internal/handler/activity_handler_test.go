package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"construction-dashboard-api/internal/domain"
	"construction-dashboard-api/internal/dto"
	"construction-dashboard-api/internal/response"
	"construction-dashboard-api/internal/schedule"
	"construction-dashboard-api/internal/service"
)

// MockActivityService is a mock implementation of ActivityService
type MockActivityService struct {
	ListActivitiesFunc func(ctx context.Context, query *dto.ActivityFilterQuery) ([]schedule.ActivityRecord, schedule.Stats, error)
	CreateActivityFunc func(ctx context.Context, projectID uuid.UUID, req *dto.CreateActivityRequest) (*domain.Activity, error)
	UpdateActivityFunc func(ctx context.Context, activityID uuid.UUID, req *dto.UpdateActivityRequest) (*domain.Activity, error)
	DeleteActivityFunc func(ctx context.Context, activityID uuid.UUID) error
}

func (m *MockActivityService) ListActivities(ctx context.Context, query *dto.ActivityFilterQuery) ([]schedule.ActivityRecord, schedule.Stats, error) {
	if m.ListActivitiesFunc != nil {
		return m.ListActivitiesFunc(ctx, query)
	}
	return nil, schedule.Stats{}, nil
}

func (m *MockActivityService) CreateActivity(ctx context.Context, projectID uuid.UUID, req *dto.CreateActivityRequest) (*domain.Activity, error) {
	if m.CreateActivityFunc != nil {
		return m.CreateActivityFunc(ctx, projectID, req)
	}
	return nil, nil
}

func (m *MockActivityService) UpdateActivity(ctx context.Context, activityID uuid.UUID, req *dto.UpdateActivityRequest) (*domain.Activity, error) {
	if m.UpdateActivityFunc != nil {
		return m.UpdateActivityFunc(ctx, activityID, req)
	}
	return nil, nil
}

func (m *MockActivityService) DeleteActivity(ctx context.Context, activityID uuid.UUID) error {
	if m.DeleteActivityFunc != nil {
		return m.DeleteActivityFunc(ctx, activityID)
	}
	return nil
}

func newActivityRouter(role domain.Role, activitySvc service.ActivityService, fileSvc service.FileService) func(req *http.Request) *httptest.ResponseRecorder {
	r := setupTestRouter(uuid.New(), role)
	h := NewActivityHandler(activitySvc, fileSvc)
	r.GET("/site-schedule/activities", h.ListActivities)
	r.POST("/projects/:projectId/activities", h.CreateActivity)
	r.PATCH("/activities/:activityId/status", h.UpdateActivityStatus)
	r.DELETE("/activities/:activityId", h.DeleteActivity)
	return func(req *http.Request) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}
}

func TestActivityHandler_ListActivities(t *testing.T) {
	var gotQuery *dto.ActivityFilterQuery
	svc := &MockActivityService{
		ListActivitiesFunc: func(ctx context.Context, query *dto.ActivityFilterQuery) ([]schedule.ActivityRecord, schedule.Stats, error) {
			gotQuery = query
			record := schedule.ActivityRecord{ProjectTitle: "Riverside Apartments"}
			record.Title = "Pour slab"
			record.Status = domain.ActivityStatusInProgress
			return []schedule.ActivityRecord{record}, schedule.Stats{Total: 1, InProgress: 1}, nil
		},
	}
	serve := newActivityRouter(domain.RoleManager, svc, &MockFileService{})

	req := httptest.NewRequest(http.MethodGet, "/site-schedule/activities?status=in_progress&search=slab", nil)
	w := serve(req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if gotQuery == nil || gotQuery.Status != "in_progress" || gotQuery.Search != "slab" {
		t.Errorf("filter query not bound: %+v", gotQuery)
	}

	var body struct {
		Activities []schedule.ActivityRecord `json:"activities"`
		Stats      schedule.Stats            `json:"stats"`
	}
	decodeEnvelope(t, w, &body)
	if len(body.Activities) != 1 || body.Activities[0].ProjectTitle != "Riverside Apartments" {
		t.Errorf("unexpected activities: %+v", body.Activities)
	}
	if body.Stats.Total != 1 {
		t.Errorf("expected stats total 1, got %d", body.Stats.Total)
	}
}

func TestActivityHandler_UpdateActivityStatus(t *testing.T) {
	activityID := uuid.New()
	var gotID uuid.UUID
	var gotReq *dto.UpdateActivityRequest
	svc := &MockActivityService{
		UpdateActivityFunc: func(ctx context.Context, id uuid.UUID, req *dto.UpdateActivityRequest) (*domain.Activity, error) {
			gotID = id
			gotReq = req
			a := &domain.Activity{Status: domain.ActivityStatusCompleted}
			a.ID = id
			return a, nil
		},
	}
	serve := newActivityRouter(domain.RoleClient, svc, &MockFileService{})

	payload, _ := json.Marshal(map[string]string{"status": "completed"})
	req := httptest.NewRequest(http.MethodPatch, "/activities/"+activityID.String()+"/status", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := serve(req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if gotID != activityID {
		t.Errorf("expected activity %s, got %s", activityID, gotID)
	}
	if gotReq == nil || gotReq.Status == nil || *gotReq.Status != "completed" {
		t.Errorf("status not forwarded: %+v", gotReq)
	}
}

func TestActivityHandler_UpdateActivityStatusMissingBody(t *testing.T) {
	called := false
	svc := &MockActivityService{
		UpdateActivityFunc: func(ctx context.Context, id uuid.UUID, req *dto.UpdateActivityRequest) (*domain.Activity, error) {
			called = true
			return nil, nil
		},
	}
	serve := newActivityRouter(domain.RoleManager, svc, &MockFileService{})

	req := httptest.NewRequest(http.MethodPatch, "/activities/"+uuid.NewString()+"/status", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	w := serve(req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if called {
		t.Error("service must not be called for an empty status")
	}
}

func TestActivityHandler_CreateActivityServiceError(t *testing.T) {
	svc := &MockActivityService{
		CreateActivityFunc: func(ctx context.Context, projectID uuid.UUID, req *dto.CreateActivityRequest) (*domain.Activity, error) {
			return nil, response.NewValidationError("End Date must be after Start Date", "")
		},
	}
	serve := newActivityRouter(domain.RoleManager, svc, &MockFileService{})

	payload, _ := json.Marshal(dto.CreateActivityRequest{Title: "Pour slab"})
	req := httptest.NewRequest(http.MethodPost, "/projects/"+uuid.NewString()+"/activities", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := serve(req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}

	var env response.Envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("failed to decode envelope: %v", err)
	}
	if env.Success {
		t.Error("expected success=false")
	}
	if env.Error != "End Date must be after Start Date" {
		t.Errorf("unexpected error message: %q", env.Error)
	}
}

func TestActivityHandler_DeleteActivityInvalidID(t *testing.T) {
	serve := newActivityRouter(domain.RoleAdmin, &MockActivityService{}, &MockFileService{})

	req := httptest.NewRequest(http.MethodDelete, "/activities/not-a-uuid", nil)
	w := serve(req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
