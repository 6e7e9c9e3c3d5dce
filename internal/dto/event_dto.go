package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateEventRequest represents the request to create a calendar event
// @Description endTime must not be before startTime
type CreateEventRequest struct {
	Title           string     `json:"title" binding:"required,min=2,max=255" example:"Frame inspection"`
	Description     string     `json:"description" binding:"max=2000"`
	Type            string     `json:"type" binding:"required" example:"inspection"`
	StartTime       time.Time  `json:"startTime" binding:"required" example:"2026-03-04T09:00:00Z"`
	EndTime         time.Time  `json:"endTime" binding:"required" example:"2026-03-04T11:00:00Z"`
	ProjectID       *uuid.UUID `json:"projectId,omitempty"`
	VisibleToClient bool       `json:"visibleToClient" example:"true"`
}

// UpdateEventRequest represents a partial update to a calendar event
type UpdateEventRequest struct {
	Title           *string    `json:"title" binding:"omitempty,min=2,max=255"`
	Description     *string    `json:"description" binding:"omitempty,max=2000"`
	Type            *string    `json:"type" binding:"omitempty"`
	StartTime       *time.Time `json:"startTime,omitempty"`
	EndTime         *time.Time `json:"endTime,omitempty"`
	ProjectID       *uuid.UUID `json:"projectId,omitempty"`
	VisibleToClient *bool      `json:"visibleToClient,omitempty"`
}

// EventRangeQuery carries the calendar window as query params
type EventRangeQuery struct {
	From      string `form:"from" example:"2026-03-01"`
	To        string `form:"to" example:"2026-03-31"`
	ProjectID string `form:"projectId"`
}

// EventResponse represents a calendar event in API responses
type EventResponse struct {
	ID              uuid.UUID  `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Type            string     `json:"type"`
	StartTime       time.Time  `json:"startTime"`
	EndTime         time.Time  `json:"endTime"`
	ProjectID       *uuid.UUID `json:"projectId,omitempty"`
	VisibleToClient bool       `json:"visibleToClient"`
	CreatedBy       uuid.UUID  `json:"createdBy"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}
