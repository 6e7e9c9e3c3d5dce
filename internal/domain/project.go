package domain

import (
	"time"

	"github.com/google/uuid"
)

// ProjectStatus represents the lifecycle status of a construction project
type ProjectStatus string

const (
	ProjectStatusPlanning   ProjectStatus = "planning"
	ProjectStatusInProgress ProjectStatus = "in_progress"
	ProjectStatusCompleted  ProjectStatus = "completed"
	ProjectStatusOnHold     ProjectStatus = "on_hold"
	ProjectStatusCancelled  ProjectStatus = "cancelled"
)

// ValidProjectStatus reports whether s is a known project status
func ValidProjectStatus(s ProjectStatus) bool {
	switch s {
	case ProjectStatusPlanning, ProjectStatusInProgress, ProjectStatusCompleted,
		ProjectStatusOnHold, ProjectStatusCancelled:
		return true
	}
	return false
}

// Project represents a construction project.
// Projects are never hard-deleted; archival is a status transition.
type Project struct {
	BaseModel
	Title       string        `gorm:"type:varchar(255);not null" json:"title"`
	Description string        `gorm:"type:text" json:"description"`
	Status      ProjectStatus `gorm:"type:varchar(50);not null;default:'planning';index:idx_projects_status" json:"status"`
	Progress    int           `gorm:"not null;default:0" json:"progress"`
	StartDate   *time.Time    `gorm:"type:timestamp" json:"startDate,omitempty"`
	EndDate     *time.Time    `gorm:"type:timestamp" json:"endDate,omitempty"`
	ManagerID   uuid.UUID     `gorm:"type:uuid;not null;index:idx_projects_manager_id" json:"managerId"`
	ClientID    uuid.UUID     `gorm:"type:uuid;not null;index:idx_projects_client_id" json:"clientId"`
	Phases      []SchedulePhase `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"phases,omitempty"`
}

// TableName specifies the table name for Project
func (Project) TableName() string {
	return "projects"
}
