package domain

import (
	"time"

	"github.com/google/uuid"
)

// DailyNote holds the optional site conditions recorded for one project on one
// calendar date. The activity list and status summary for the same day are
// derived from the activities table, never stored here.
type DailyNote struct {
	BaseModel
	ProjectID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_daily_notes_project_date,priority:1" json:"projectId"`
	WorkDate  time.Time `gorm:"type:date;not null;uniqueIndex:uq_daily_notes_project_date,priority:2" json:"workDate"`
	CrewSize  int       `gorm:"not null;default:0" json:"crewSize"`
	Weather   string    `gorm:"type:varchar(100)" json:"weather"`
	Notes     string    `gorm:"type:text" json:"notes"`
}

// TableName specifies the table name for DailyNote
func (DailyNote) TableName() string {
	return "daily_notes"
}
