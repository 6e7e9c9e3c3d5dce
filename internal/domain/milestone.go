package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MilestoneStatus represents the status of a project milestone
type MilestoneStatus string

const (
	MilestoneStatusUpcoming   MilestoneStatus = "upcoming"
	MilestoneStatusInProgress MilestoneStatus = "in_progress"
	MilestoneStatusCompleted  MilestoneStatus = "completed"
	MilestoneStatusOverdue    MilestoneStatus = "overdue"
)

// ValidMilestoneStatus reports whether s is a known milestone status
func ValidMilestoneStatus(s MilestoneStatus) bool {
	switch s {
	case MilestoneStatusUpcoming, MilestoneStatusInProgress, MilestoneStatusCompleted, MilestoneStatusOverdue:
		return true
	}
	return false
}

// MilestonePriority represents milestone priority
type MilestonePriority string

const (
	MilestonePriorityLow      MilestonePriority = "low"
	MilestonePriorityMedium   MilestonePriority = "medium"
	MilestonePriorityHigh     MilestonePriority = "high"
	MilestonePriorityCritical MilestonePriority = "critical"
)

// Milestone represents a key deliverable on a project's timeline
type Milestone struct {
	BaseModel
	ProjectID    uuid.UUID                      `gorm:"type:uuid;not null;index:idx_milestones_project_id" json:"projectId"`
	Title        string                         `gorm:"type:varchar(255);not null" json:"title"`
	Description  string                         `gorm:"type:text" json:"description"`
	DueDate      time.Time                      `gorm:"type:timestamp;not null;index:idx_milestones_due_date" json:"dueDate"`
	Status       MilestoneStatus                `gorm:"type:varchar(50);not null;default:'upcoming';index:idx_milestones_status" json:"status"`
	Progress     int                            `gorm:"not null;default:0" json:"progress"`
	Priority     MilestonePriority              `gorm:"type:varchar(50);not null;default:'medium'" json:"priority"`
	Dependencies datatypes.JSONSlice[uuid.UUID] `gorm:"type:jsonb" json:"dependencies"`
	AssigneeID   *uuid.UUID                     `gorm:"type:uuid" json:"assigneeId,omitempty"`
	CompletedAt  *time.Time                     `gorm:"type:timestamp" json:"completedAt,omitempty"`
}

// TableName specifies the table name for Milestone
func (Milestone) TableName() string {
	return "milestones"
}

// IsPastDue reports whether the milestone is past its due date and not completed
func (m *Milestone) IsPastDue(now time.Time) bool {
	return m.Status != MilestoneStatusCompleted && m.DueDate.Before(now)
}
