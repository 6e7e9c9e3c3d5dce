package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateActivityRequest represents the request to create a site activity
// @Description Request body for creating an activity, either under a schedule
// @Description phase (phaseId set) or in a project's daily log (date set)
type CreateActivityRequest struct {
	PhaseID     *uuid.UUID `json:"phaseId,omitempty"`
	Date        *time.Time `json:"date,omitempty" example:"2026-02-10T00:00:00Z"`
	Title       string     `json:"title" binding:"required,min=2,max=255" example:"Pour ground floor slab"`
	Description string     `json:"description" binding:"max=2000"`
	Contractor  string     `json:"contractor" binding:"max=255" example:"Hewitt Concrete"`
	Supervisor  string     `json:"supervisor" binding:"max=255"`
	StartTime   *time.Time `json:"startTime,omitempty"`
	EndTime     *time.Time `json:"endTime,omitempty"`
	Status      string     `json:"status" binding:"omitempty" example:"pending"`
	Priority    string     `json:"priority" binding:"omitempty" example:"high"`
	Category    string     `json:"category" binding:"omitempty" example:"structural"`
	Images      []string   `json:"images,omitempty"`
	SitePhase   string     `json:"sitePhase" binding:"omitempty" example:"construction"`
	WeekNumber  int        `json:"weekNumber" binding:"omitempty,min=1" example:"3"`
	Comments    string     `json:"comments" binding:"max=2000"`
}

// UpdateActivityRequest represents a partial update to an activity.
// All fields are optional; nil fields are left unchanged.
type UpdateActivityRequest struct {
	Title       *string    `json:"title" binding:"omitempty,min=2,max=255"`
	Description *string    `json:"description" binding:"omitempty,max=2000"`
	Contractor  *string    `json:"contractor" binding:"omitempty,max=255"`
	Supervisor  *string    `json:"supervisor" binding:"omitempty,max=255"`
	StartTime   *time.Time `json:"startTime,omitempty"`
	EndTime     *time.Time `json:"endTime,omitempty"`
	Status      *string    `json:"status" binding:"omitempty"`
	Priority    *string    `json:"priority" binding:"omitempty"`
	Category    *string    `json:"category" binding:"omitempty"`
	Progress    *int       `json:"progress" binding:"omitempty,min=0,max=100"`
	Images      []string   `json:"images,omitempty"`
	SitePhase   *string    `json:"sitePhase" binding:"omitempty"`
	WeekNumber  *int       `json:"weekNumber" binding:"omitempty,min=1"`
	Comments    *string    `json:"comments" binding:"omitempty,max=2000"`
}

// ActivityFilterQuery carries the list-view filter criteria as query params
type ActivityFilterQuery struct {
	Status    string `form:"status" example:"in_progress"`
	Category  string `form:"category" example:"electrical"`
	Priority  string `form:"priority" example:"all"`
	Search    string `form:"search" example:"slab"`
	ProjectID string `form:"projectId"`
	From      string `form:"from" example:"2026-02-01"`
	To        string `form:"to" example:"2026-02-28"`
}
