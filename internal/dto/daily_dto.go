package dto

import (
	"time"

	"github.com/google/uuid"

	"construction-dashboard-api/internal/schedule"
)

// UpsertDailyNoteRequest represents the site conditions recorded for one day
type UpsertDailyNoteRequest struct {
	CrewSize int    `json:"crewSize" binding:"omitempty,min=0" example:"12"`
	Weather  string `json:"weather" binding:"max=100" example:"overcast, light rain"`
	Notes    string `json:"notes" binding:"max=4000"`
}

// UpdateDailyActivityRequest patches one activity within a daily snapshot
// @Description updates carries only the fields being changed; the activity is
// @Description addressed by project, date and activityId
type UpdateDailyActivityRequest struct {
	ProjectID  uuid.UUID             `json:"projectId" binding:"required"`
	Date       time.Time             `json:"date" binding:"required"`
	ActivityID uuid.UUID             `json:"activityId" binding:"required"`
	Updates    UpdateActivityRequest `json:"updates" binding:"required"`
}

// DailyNoteResponse represents the recorded conditions for a day
type DailyNoteResponse struct {
	CrewSize int    `json:"crewSize"`
	Weather  string `json:"weather"`
	Notes    string `json:"notes"`
}

// DailyProgressResponse is the daily snapshot for one project and date. The
// summary is always recomputed from the activity rows, never stored.
type DailyProgressResponse struct {
	ProjectID  uuid.UUID                 `json:"projectId"`
	Date       string                    `json:"date" example:"2026-02-10"`
	Activities []schedule.ActivityRecord `json:"activities"`
	Note       *DailyNoteResponse        `json:"note,omitempty"`
	Summary    schedule.Stats            `json:"summary"`
}
