package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"construction-dashboard-api/internal/domain"
)

// PhaseRepository defines the interface for schedule phase data access
type PhaseRepository interface {
	Create(ctx context.Context, phase *domain.SchedulePhase) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.SchedulePhase, error)
	FindByProjectID(ctx context.Context, projectID uuid.UUID) ([]*domain.SchedulePhase, error)
	Update(ctx context.Context, phase *domain.SchedulePhase) error
	UpdateProgress(ctx context.Context, id uuid.UUID, progress int) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type phaseRepositoryImpl struct {
	db *gorm.DB
}

// NewPhaseRepository creates a new instance of PhaseRepository
func NewPhaseRepository(db *gorm.DB) PhaseRepository {
	return &phaseRepositoryImpl{db: db}
}

func (r *phaseRepositoryImpl) Create(ctx context.Context, phase *domain.SchedulePhase) error {
	return r.db.WithContext(ctx).Create(phase).Error
}

func (r *phaseRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.SchedulePhase, error) {
	var phase domain.SchedulePhase
	if err := r.db.WithContext(ctx).
		Preload("Activities").
		First(&phase, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &phase, nil
}

// FindByProjectID returns a project's phases ordered by start date, each with
// its activities preloaded
func (r *phaseRepositoryImpl) FindByProjectID(ctx context.Context, projectID uuid.UUID) ([]*domain.SchedulePhase, error) {
	var phases []*domain.SchedulePhase
	if err := r.db.WithContext(ctx).
		Preload("Activities").
		Where("project_id = ?", projectID).
		Order("start_date ASC NULLS LAST, created_at ASC").
		Find(&phases).Error; err != nil {
		return nil, err
	}
	return phases, nil
}

func (r *phaseRepositoryImpl) Update(ctx context.Context, phase *domain.SchedulePhase) error {
	return r.db.WithContext(ctx).Save(phase).Error
}

func (r *phaseRepositoryImpl) UpdateProgress(ctx context.Context, id uuid.UUID, progress int) error {
	return r.db.WithContext(ctx).
		Model(&domain.SchedulePhase{}).
		Where("id = ?", id).
		Update("progress", progress).Error
}

func (r *phaseRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.SchedulePhase{}, "id = ?", id).Error
}
