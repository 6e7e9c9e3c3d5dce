package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ActivityStatus represents the status of a site activity.
// The set was widened over the dashboard's history; NormalizeActivityStatus
// folds the historical spellings into these canonical values.
type ActivityStatus string

const (
	ActivityStatusPending    ActivityStatus = "pending"
	ActivityStatusInProgress ActivityStatus = "in_progress"
	ActivityStatusCompleted  ActivityStatus = "completed"
	ActivityStatusDelayed    ActivityStatus = "delayed"
	ActivityStatusOnHold     ActivityStatus = "on_hold"
	ActivityStatusToDo       ActivityStatus = "to_do"
)

// NormalizeActivityStatus maps legacy hyphenated spellings ("to-do",
// "in-progress") onto the canonical underscore forms. Unknown values are
// returned unchanged.
func NormalizeActivityStatus(s string) ActivityStatus {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	switch ActivityStatus(normalized) {
	case ActivityStatusPending, ActivityStatusInProgress, ActivityStatusCompleted,
		ActivityStatusDelayed, ActivityStatusOnHold, ActivityStatusToDo:
		return ActivityStatus(normalized)
	}
	return ActivityStatus(s)
}

// ValidActivityStatus reports whether s is a known canonical activity status
func ValidActivityStatus(s ActivityStatus) bool {
	switch s {
	case ActivityStatusPending, ActivityStatusInProgress, ActivityStatusCompleted,
		ActivityStatusDelayed, ActivityStatusOnHold, ActivityStatusToDo:
		return true
	}
	return false
}

// ActivityPriority represents how urgent an activity is
type ActivityPriority string

const (
	PriorityLow    ActivityPriority = "low"
	PriorityMedium ActivityPriority = "medium"
	PriorityHigh   ActivityPriority = "high"
	PriorityUrgent ActivityPriority = "urgent"
)

// ActivityCategory represents the trade an activity belongs to
type ActivityCategory string

const (
	CategoryStructural ActivityCategory = "structural"
	CategoryElectrical ActivityCategory = "electrical"
	CategoryPlumbing   ActivityCategory = "plumbing"
	CategoryFinishing  ActivityCategory = "finishing"
	CategoryOther      ActivityCategory = "other"
)

// NormalizeActivityCategory folds unknown categories into CategoryOther so
// every record is always visible in some view
func NormalizeActivityCategory(c string) ActivityCategory {
	switch ActivityCategory(strings.ToLower(strings.TrimSpace(c))) {
	case CategoryStructural:
		return CategoryStructural
	case CategoryElectrical:
		return CategoryElectrical
	case CategoryPlumbing:
		return CategoryPlumbing
	case CategoryFinishing:
		return CategoryFinishing
	}
	return CategoryOther
}

// SitePhase is the fixed ordered set of construction phases used for the
// phase-grouped schedule view
type SitePhase string

const (
	SitePhasePreliminaries SitePhase = "site_preliminaries"
	SitePhaseConstruction  SitePhase = "construction"
	SitePhaseInstallation  SitePhase = "installation"
	SitePhaseSetupStyling  SitePhase = "setup_styling"
	SitePhasePostHandover  SitePhase = "post_handover"
)

// SitePhaseOrder lists the site phases in display order
var SitePhaseOrder = []SitePhase{
	SitePhasePreliminaries,
	SitePhaseConstruction,
	SitePhaseInstallation,
	SitePhaseSetupStyling,
	SitePhasePostHandover,
}

// NormalizeSitePhase defaults missing or unknown phase tags to construction
func NormalizeSitePhase(p string) SitePhase {
	switch SitePhase(strings.ToLower(strings.TrimSpace(p))) {
	case SitePhasePreliminaries:
		return SitePhasePreliminaries
	case SitePhaseConstruction:
		return SitePhaseConstruction
	case SitePhaseInstallation:
		return SitePhaseInstallation
	case SitePhaseSetupStyling:
		return SitePhaseSetupStyling
	case SitePhasePostHandover:
		return SitePhasePostHandover
	}
	return SitePhaseConstruction
}

// Activity represents a single trackable unit of construction work. An
// activity is owned either by a schedule phase (PhaseID set) or directly by a
// project's daily log for WorkDate.
type Activity struct {
	BaseModel
	ProjectID   uuid.UUID                     `gorm:"type:uuid;not null;index:idx_activities_project_id;index:idx_activities_project_date,priority:1" json:"projectId"`
	PhaseID     *uuid.UUID                    `gorm:"type:uuid;index:idx_activities_phase_id" json:"phaseId,omitempty"`
	WorkDate    *time.Time                    `gorm:"type:date;index:idx_activities_project_date,priority:2" json:"workDate,omitempty"`
	Title       string                        `gorm:"type:varchar(255);not null" json:"title"`
	Description string                        `gorm:"type:text" json:"description"`
	Contractor  string                        `gorm:"type:varchar(255)" json:"contractor"`
	Supervisor  string                        `gorm:"type:varchar(255)" json:"supervisor"`
	StartTime   *time.Time                    `gorm:"type:timestamp" json:"startTime,omitempty"`
	EndTime     *time.Time                    `gorm:"type:timestamp" json:"endTime,omitempty"`
	Status      ActivityStatus                `gorm:"type:varchar(50);not null;default:'pending';index:idx_activities_status" json:"status"`
	Priority    ActivityPriority              `gorm:"type:varchar(50);not null;default:'medium'" json:"priority"`
	Category    ActivityCategory              `gorm:"type:varchar(50);not null;default:'other'" json:"category"`
	Progress    int                           `gorm:"not null;default:0" json:"progress"`
	Images      datatypes.JSONSlice[string]   `gorm:"type:jsonb" json:"images"`
	SitePhase   SitePhase                     `gorm:"type:varchar(50)" json:"sitePhase,omitempty"`
	WeekNumber  int                           `gorm:"not null;default:1" json:"weekNumber"`
	Comments    string                        `gorm:"type:text" json:"comments"`
}

// TableName specifies the table name for Activity
func (Activity) TableName() string {
	return "activities"
}

// IsDone reports whether the activity counts as completed for stats
func (a *Activity) IsDone() bool {
	return a.Status == ActivityStatusCompleted
}
