package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"construction-dashboard-api/internal/domain"
)

// ActivityRepository defines the interface for activity data access
type ActivityRepository interface {
	Create(ctx context.Context, activity *domain.Activity) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Activity, error)
	FindByProjectID(ctx context.Context, projectID uuid.UUID) ([]domain.Activity, error)
	FindAll(ctx context.Context) ([]domain.Activity, error)
	FindByProjectAndDate(ctx context.Context, projectID uuid.UUID, date time.Time) ([]domain.Activity, error)
	Update(ctx context.Context, activity *domain.Activity) error
	UpdateFields(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByProjectAndDate(ctx context.Context, projectID uuid.UUID, date time.Time) error
	FindDelayedCandidates(ctx context.Context, before time.Time) ([]domain.Activity, error)
}

type activityRepositoryImpl struct {
	db *gorm.DB
}

// NewActivityRepository creates a new instance of ActivityRepository
func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepositoryImpl{db: db}
}

func (r *activityRepositoryImpl) Create(ctx context.Context, activity *domain.Activity) error {
	return r.db.WithContext(ctx).Create(activity).Error
}

func (r *activityRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Activity, error) {
	var activity domain.Activity
	if err := r.db.WithContext(ctx).First(&activity, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &activity, nil
}

func (r *activityRepositoryImpl) FindByProjectID(ctx context.Context, projectID uuid.UUID) ([]domain.Activity, error) {
	var activities []domain.Activity
	if err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("start_time ASC NULLS LAST, created_at ASC").
		Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *activityRepositoryImpl) FindAll(ctx context.Context) ([]domain.Activity, error) {
	var activities []domain.Activity
	if err := r.db.WithContext(ctx).
		Order("start_time ASC NULLS LAST, created_at ASC").
		Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

// FindByProjectAndDate returns the daily log for one project on one calendar
// date, ordered by start time
func (r *activityRepositoryImpl) FindByProjectAndDate(ctx context.Context, projectID uuid.UUID, date time.Time) ([]domain.Activity, error) {
	var activities []domain.Activity
	if err := r.db.WithContext(ctx).
		Where("project_id = ? AND work_date = ?", projectID, dateOnly(date)).
		Order("start_time ASC NULLS LAST, created_at ASC").
		Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *activityRepositoryImpl) Update(ctx context.Context, activity *domain.Activity) error {
	return r.db.WithContext(ctx).Save(activity).Error
}

// UpdateFields applies a partial update, used for single-field status patches
func (r *activityRepositoryImpl) UpdateFields(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	result := r.db.WithContext(ctx).
		Model(&domain.Activity{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *activityRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Activity{}, "id = ?", id).Error
}

func (r *activityRepositoryImpl) DeleteByProjectAndDate(ctx context.Context, projectID uuid.UUID, date time.Time) error {
	return r.db.WithContext(ctx).
		Where("project_id = ? AND work_date = ?", projectID, dateOnly(date)).
		Delete(&domain.Activity{}).Error
}

// FindDelayedCandidates returns activities whose scheduled end has passed but
// are still in an open status
func (r *activityRepositoryImpl) FindDelayedCandidates(ctx context.Context, before time.Time) ([]domain.Activity, error) {
	var activities []domain.Activity
	if err := r.db.WithContext(ctx).
		Where("end_time < ? AND status IN ?", before, []domain.ActivityStatus{
			domain.ActivityStatusPending,
			domain.ActivityStatusInProgress,
			domain.ActivityStatusToDo,
		}).
		Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

// dateOnly truncates a timestamp to its calendar date in UTC
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
