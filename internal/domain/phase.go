package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PhaseStatus represents the status of a schedule phase
type PhaseStatus string

const (
	PhaseStatusUpcoming  PhaseStatus = "upcoming"
	PhaseStatusActive    PhaseStatus = "active"
	PhaseStatusCompleted PhaseStatus = "completed"
	PhaseStatusDelayed   PhaseStatus = "delayed"
)

// ValidPhaseStatus reports whether s is a known phase status
func ValidPhaseStatus(s PhaseStatus) bool {
	switch s {
	case PhaseStatusUpcoming, PhaseStatusActive, PhaseStatusCompleted, PhaseStatusDelayed:
		return true
	}
	return false
}

// SchedulePhase represents a named time-boxed grouping of activities within a
// project's schedule. A phase has no lifecycle independent of its project.
//
// Progress is refreshed from child activity completion on writes, but API
// responses always derive it from activities so the stored value can never
// diverge user-visibly.
type SchedulePhase struct {
	BaseModel
	ProjectID    uuid.UUID                       `gorm:"type:uuid;not null;index:idx_schedule_phases_project_id" json:"projectId"`
	Name         string                          `gorm:"type:varchar(255);not null" json:"name"`
	Description  string                          `gorm:"type:text" json:"description"`
	StartDate    *time.Time                      `gorm:"type:timestamp" json:"startDate,omitempty"`
	EndDate      *time.Time                      `gorm:"type:timestamp" json:"endDate,omitempty"`
	Status       PhaseStatus                     `gorm:"type:varchar(50);not null;default:'upcoming';index:idx_schedule_phases_status" json:"status"`
	Progress     int                             `gorm:"not null;default:0" json:"progress"`
	Dependencies datatypes.JSONSlice[uuid.UUID]  `gorm:"type:jsonb" json:"dependencies"`
	Activities   []Activity                      `gorm:"foreignKey:PhaseID;constraint:OnDelete:CASCADE" json:"activities,omitempty"`
}

// TableName specifies the table name for SchedulePhase
func (SchedulePhase) TableName() string {
	return "schedule_phases"
}
