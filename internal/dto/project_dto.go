package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateProjectRequest represents the request to create a new project
// @Description Request body for creating a construction project
// @Description startDate must be before or equal to endDate if both are provided
type CreateProjectRequest struct {
	Title       string     `json:"title" binding:"required,min=2,max=255" example:"Riverside Apartments Block B"`
	Description string     `json:"description" binding:"max=2000" example:"14-unit residential block, stages 1-3"`
	Status      string     `json:"status" binding:"omitempty" example:"planning"`
	StartDate   *time.Time `json:"startDate,omitempty" example:"2026-02-01T00:00:00Z"`
	EndDate     *time.Time `json:"endDate,omitempty" example:"2026-11-30T00:00:00Z"`
	ManagerID   uuid.UUID  `json:"managerId" binding:"required" example:"539167fb-b599-41ba-9ead-344a6d0b3a2f"`
	ClientID    uuid.UUID  `json:"clientId" binding:"required" example:"f47ac10b-58cc-4372-a567-0e02b2c3d479"`
}

// UpdateProjectRequest represents the request to update a project.
// All fields are optional; nil fields are left unchanged.
type UpdateProjectRequest struct {
	Title       *string    `json:"title" binding:"omitempty,min=2,max=255"`
	Description *string    `json:"description" binding:"omitempty,max=2000"`
	Status      *string    `json:"status" binding:"omitempty"`
	Progress    *int       `json:"progress" binding:"omitempty,min=0,max=100"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	ManagerID   *uuid.UUID `json:"managerId,omitempty"`
	ClientID    *uuid.UUID `json:"clientId,omitempty"`
}

// ProjectResponse represents a project in API responses
type ProjectResponse struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Progress    int        `json:"progress"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	ManagerID   uuid.UUID  `json:"managerId"`
	ClientID    uuid.UUID  `json:"clientId"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}
