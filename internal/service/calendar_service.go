package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"construction-dashboard-api/internal/domain"
	"construction-dashboard-api/internal/dto"
	"construction-dashboard-api/internal/repository"
	"construction-dashboard-api/internal/response"
)

// CalendarService defines the interface for calendar event business logic
type CalendarService interface {
	CreateEvent(ctx context.Context, userID uuid.UUID, req *dto.CreateEventRequest) (*dto.EventResponse, error)
	GetEvents(ctx context.Context, query *dto.EventRangeQuery, role domain.Role) ([]*dto.EventResponse, error)
	UpdateEvent(ctx context.Context, eventID uuid.UUID, req *dto.UpdateEventRequest) (*dto.EventResponse, error)
	DeleteEvent(ctx context.Context, eventID uuid.UUID) error
}

type calendarServiceImpl struct {
	eventRepo repository.EventRepository
	logger    *zap.Logger
}

// NewCalendarService creates a new instance of CalendarService
func NewCalendarService(eventRepo repository.EventRepository, logger *zap.Logger) CalendarService {
	return &calendarServiceImpl{eventRepo: eventRepo, logger: logger}
}

// CreateEvent creates a calendar event owned by the caller
func (s *calendarServiceImpl) CreateEvent(ctx context.Context, userID uuid.UUID, req *dto.CreateEventRequest) (*dto.EventResponse, error) {
	eventType := domain.EventType(req.Type)
	if !domain.ValidEventType(eventType) {
		return nil, response.NewValidationError("Invalid event type", req.Type)
	}
	if req.EndTime.Before(req.StartTime) {
		return nil, response.NewValidationError("End Date must be after Start Date", "")
	}

	event := &domain.CalendarEvent{
		Title:           req.Title,
		Description:     req.Description,
		Type:            eventType,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		ProjectID:       req.ProjectID,
		VisibleToClient: req.VisibleToClient,
		CreatedBy:       userID,
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create event", err.Error())
	}
	return toEventResponse(event), nil
}

// GetEvents returns the events inside a date window. Clients only see events
// flagged visible to them; a missing window defaults to the current month.
func (s *calendarServiceImpl) GetEvents(ctx context.Context, query *dto.EventRangeQuery, role domain.Role) ([]*dto.EventResponse, error) {
	now := time.Now().UTC()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	if query.From != "" {
		parsed, err := time.Parse("2006-01-02", query.From)
		if err != nil {
			return nil, response.NewValidationError("Invalid from date, expected YYYY-MM-DD", query.From)
		}
		from = parsed
	}
	if query.To != "" {
		parsed, err := time.Parse("2006-01-02", query.To)
		if err != nil {
			return nil, response.NewValidationError("Invalid to date, expected YYYY-MM-DD", query.To)
		}
		to = parsed.Add(24 * time.Hour)
	}

	var projectID *uuid.UUID
	if query.ProjectID != "" {
		id, err := uuid.Parse(query.ProjectID)
		if err != nil {
			return nil, response.NewValidationError("Invalid project id", query.ProjectID)
		}
		projectID = &id
	}

	events, err := s.eventRepo.FindInRange(ctx, projectID, from, to, role == domain.RoleClient)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load events", err.Error())
	}

	responses := make([]*dto.EventResponse, 0, len(events))
	for _, e := range events {
		responses = append(responses, toEventResponse(e))
	}
	return responses, nil
}

// UpdateEvent applies a partial update to an event
func (s *calendarServiceImpl) UpdateEvent(ctx context.Context, eventID uuid.UUID, req *dto.UpdateEventRequest) (*dto.EventResponse, error) {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Event not found", eventID.String())
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load event", err.Error())
	}

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.Type != nil {
		eventType := domain.EventType(*req.Type)
		if !domain.ValidEventType(eventType) {
			return nil, response.NewValidationError("Invalid event type", *req.Type)
		}
		event.Type = eventType
	}
	if req.StartTime != nil {
		event.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		event.EndTime = *req.EndTime
	}
	if req.ProjectID != nil {
		event.ProjectID = req.ProjectID
	}
	if req.VisibleToClient != nil {
		event.VisibleToClient = *req.VisibleToClient
	}
	if event.EndTime.Before(event.StartTime) {
		return nil, response.NewValidationError("End Date must be after Start Date", "")
	}

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update event", err.Error())
	}
	return toEventResponse(event), nil
}

// DeleteEvent removes an event
func (s *calendarServiceImpl) DeleteEvent(ctx context.Context, eventID uuid.UUID) error {
	if _, err := s.eventRepo.FindByID(ctx, eventID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Event not found", eventID.String())
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to load event", err.Error())
	}
	if err := s.eventRepo.Delete(ctx, eventID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete event", err.Error())
	}
	return nil
}

func toEventResponse(e *domain.CalendarEvent) *dto.EventResponse {
	return &dto.EventResponse{
		ID:              e.ID,
		Title:           e.Title,
		Description:     e.Description,
		Type:            string(e.Type),
		StartTime:       e.StartTime,
		EndTime:         e.EndTime,
		ProjectID:       e.ProjectID,
		VisibleToClient: e.VisibleToClient,
		CreatedBy:       e.CreatedBy,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}
