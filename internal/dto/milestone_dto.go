package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateMilestoneRequest represents the request to create a milestone
// @Description dueDate must not be earlier than the start of the current day
type CreateMilestoneRequest struct {
	Title        string      `json:"title" binding:"required,min=2,max=255" example:"Roof watertight"`
	Description  string      `json:"description" binding:"max=2000"`
	DueDate      time.Time   `json:"dueDate" binding:"required" example:"2026-05-01T00:00:00Z"`
	Status       string      `json:"status" binding:"omitempty" example:"upcoming"`
	Priority     string      `json:"priority" binding:"omitempty" example:"critical"`
	Dependencies []uuid.UUID `json:"dependencies,omitempty" binding:"omitempty,dive,uuid"`
	AssigneeID   *uuid.UUID  `json:"assigneeId,omitempty"`
}

// UpdateMilestoneRequest represents a partial update to a milestone
type UpdateMilestoneRequest struct {
	Title        *string     `json:"title" binding:"omitempty,min=2,max=255"`
	Description  *string     `json:"description" binding:"omitempty,max=2000"`
	DueDate      *time.Time  `json:"dueDate,omitempty"`
	Status       *string     `json:"status" binding:"omitempty"`
	Progress     *int        `json:"progress" binding:"omitempty,min=0,max=100"`
	Priority     *string     `json:"priority" binding:"omitempty"`
	Dependencies []uuid.UUID `json:"dependencies,omitempty" binding:"omitempty,dive,uuid"`
	AssigneeID   *uuid.UUID  `json:"assigneeId,omitempty"`
}

// MilestoneResponse represents a milestone in API responses
type MilestoneResponse struct {
	ID           uuid.UUID   `json:"id"`
	ProjectID    uuid.UUID   `json:"projectId"`
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	DueDate      time.Time   `json:"dueDate"`
	Status       string      `json:"status"`
	Progress     int         `json:"progress"`
	Priority     string      `json:"priority"`
	Dependencies []uuid.UUID `json:"dependencies"`
	AssigneeID   *uuid.UUID  `json:"assigneeId,omitempty"`
	CompletedAt  *time.Time  `json:"completedAt,omitempty"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}
