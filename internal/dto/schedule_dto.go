package dto

import (
	"time"

	"github.com/google/uuid"

	"construction-dashboard-api/internal/schedule"
)

// CreatePhaseRequest represents the request to add a phase to a project's schedule
// @Description Request body for creating a schedule phase
// @Description endDate must be strictly after startDate if both are provided
type CreatePhaseRequest struct {
	Name         string      `json:"name" binding:"required,min=2,max=255" example:"Foundations"`
	Description  string      `json:"description" binding:"max=2000"`
	StartDate    *time.Time  `json:"startDate,omitempty" example:"2026-02-01T00:00:00Z"`
	EndDate      *time.Time  `json:"endDate,omitempty" example:"2026-03-15T00:00:00Z"`
	Status       string      `json:"status" binding:"omitempty" example:"upcoming"`
	Dependencies []uuid.UUID `json:"dependencies,omitempty" binding:"omitempty,dive,uuid"`
}

// UpdatePhaseRequest represents the request to update a schedule phase
type UpdatePhaseRequest struct {
	Name         *string     `json:"name" binding:"omitempty,min=2,max=255"`
	Description  *string     `json:"description" binding:"omitempty,max=2000"`
	StartDate    *time.Time  `json:"startDate,omitempty"`
	EndDate      *time.Time  `json:"endDate,omitempty"`
	Status       *string     `json:"status" binding:"omitempty"`
	Dependencies []uuid.UUID `json:"dependencies,omitempty" binding:"omitempty,dive,uuid"`
}

// PhaseResponse represents a schedule phase with its derived progress
type PhaseResponse struct {
	ID           uuid.UUID                 `json:"id"`
	ProjectID    uuid.UUID                 `json:"projectId"`
	Name         string                    `json:"name"`
	Description  string                    `json:"description"`
	StartDate    *time.Time                `json:"startDate,omitempty"`
	EndDate      *time.Time                `json:"endDate,omitempty"`
	Status       string                    `json:"status"`
	Progress     int                       `json:"progress"`
	Dependencies []uuid.UUID               `json:"dependencies"`
	Activities   []schedule.ActivityRecord `json:"activities"`
	Stats        schedule.Stats            `json:"stats"`
	CreatedAt    time.Time                 `json:"createdAt"`
	UpdatedAt    time.Time                 `json:"updatedAt"`
}

// ScheduleResponse is the full schedule view for one project: every phase with
// its activities, overall stats across the project, and the next activities due
type ScheduleResponse struct {
	Project            ProjectResponse           `json:"project"`
	Phases             []PhaseResponse           `json:"phases"`
	OverallStats       schedule.Stats            `json:"overallStats"`
	UpcomingActivities []schedule.ActivityRecord `json:"upcomingActivities"`
}

// GroupedScheduleResponse is the site-phase view: activities partitioned into
// the five fixed construction phases, sub-grouped by week
type GroupedScheduleResponse struct {
	Groups []schedule.PhaseGroup `json:"groups"`
	Stats  schedule.Stats        `json:"stats"`
}
