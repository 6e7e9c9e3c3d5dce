package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventType represents the kind of calendar event
type EventType string

const (
	EventTypeMeeting    EventType = "meeting"
	EventTypeDeadline   EventType = "deadline"
	EventTypeInspection EventType = "inspection"
	EventTypeDelivery   EventType = "delivery"
	EventTypeMilestone  EventType = "milestone"
)

// ValidEventType reports whether t is a known event type
func ValidEventType(t EventType) bool {
	switch t {
	case EventTypeMeeting, EventTypeDeadline, EventTypeInspection, EventTypeDelivery, EventTypeMilestone:
		return true
	}
	return false
}

// CalendarEvent represents a dated event on the project calendar.
// Events with VisibleToClient=false are hidden from the client role.
type CalendarEvent struct {
	BaseModel
	Title           string     `gorm:"type:varchar(255);not null" json:"title"`
	Description     string     `gorm:"type:text" json:"description"`
	Type            EventType  `gorm:"type:varchar(50);not null;index:idx_calendar_events_type" json:"type"`
	StartTime       time.Time  `gorm:"type:timestamp;not null;index:idx_calendar_events_start_time" json:"startTime"`
	EndTime         time.Time  `gorm:"type:timestamp;not null" json:"endTime"`
	ProjectID       *uuid.UUID `gorm:"type:uuid;index:idx_calendar_events_project_id" json:"projectId,omitempty"`
	VisibleToClient bool       `gorm:"not null;default:false" json:"visibleToClient"`
	CreatedBy       uuid.UUID  `gorm:"type:uuid;not null" json:"createdBy"`
}

// TableName specifies the table name for CalendarEvent
func (CalendarEvent) TableName() string {
	return "calendar_events"
}
