package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"construction-dashboard-api/internal/domain"
)

// EventRepository defines the interface for calendar event data access
type EventRepository interface {
	Create(ctx context.Context, event *domain.CalendarEvent) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.CalendarEvent, error)
	FindInRange(ctx context.Context, projectID *uuid.UUID, from, to time.Time, visibleOnly bool) ([]*domain.CalendarEvent, error)
	Update(ctx context.Context, event *domain.CalendarEvent) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type eventRepositoryImpl struct {
	db *gorm.DB
}

// NewEventRepository creates a new instance of EventRepository
func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepositoryImpl{db: db}
}

func (r *eventRepositoryImpl) Create(ctx context.Context, event *domain.CalendarEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *eventRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.CalendarEvent, error) {
	var event domain.CalendarEvent
	if err := r.db.WithContext(ctx).First(&event, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

// FindInRange returns events starting within [from, to), optionally scoped to
// one project and to client-visible events only
func (r *eventRepositoryImpl) FindInRange(ctx context.Context, projectID *uuid.UUID, from, to time.Time, visibleOnly bool) ([]*domain.CalendarEvent, error) {
	query := r.db.WithContext(ctx).
		Where("start_time >= ? AND start_time < ?", from, to)
	if projectID != nil {
		query = query.Where("project_id = ?", *projectID)
	}
	if visibleOnly {
		query = query.Where("visible_to_client = ?", true)
	}

	var events []*domain.CalendarEvent
	if err := query.Order("start_time ASC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepositoryImpl) Update(ctx context.Context, event *domain.CalendarEvent) error {
	return r.db.WithContext(ctx).Save(event).Error
}

func (r *eventRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.CalendarEvent{}, "id = ?", id).Error
}
