package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"construction-dashboard-api/internal/domain"
)

// MilestoneRepository defines the interface for milestone data access
type MilestoneRepository interface {
	Create(ctx context.Context, milestone *domain.Milestone) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Milestone, error)
	FindByProjectID(ctx context.Context, projectID uuid.UUID) ([]*domain.Milestone, error)
	Update(ctx context.Context, milestone *domain.Milestone) error
	Delete(ctx context.Context, id uuid.UUID) error
	MarkOverdue(ctx context.Context, before time.Time) (int64, error)
}

type milestoneRepositoryImpl struct {
	db *gorm.DB
}

// NewMilestoneRepository creates a new instance of MilestoneRepository
func NewMilestoneRepository(db *gorm.DB) MilestoneRepository {
	return &milestoneRepositoryImpl{db: db}
}

func (r *milestoneRepositoryImpl) Create(ctx context.Context, milestone *domain.Milestone) error {
	return r.db.WithContext(ctx).Create(milestone).Error
}

func (r *milestoneRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Milestone, error) {
	var milestone domain.Milestone
	if err := r.db.WithContext(ctx).First(&milestone, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &milestone, nil
}

func (r *milestoneRepositoryImpl) FindByProjectID(ctx context.Context, projectID uuid.UUID) ([]*domain.Milestone, error) {
	var milestones []*domain.Milestone
	if err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("due_date ASC").
		Find(&milestones).Error; err != nil {
		return nil, err
	}
	return milestones, nil
}

func (r *milestoneRepositoryImpl) Update(ctx context.Context, milestone *domain.Milestone) error {
	return r.db.WithContext(ctx).Save(milestone).Error
}

func (r *milestoneRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Milestone{}, "id = ?", id).Error
}

// MarkOverdue transitions past-due, non-completed milestones to overdue and
// returns how many rows changed
func (r *milestoneRepositoryImpl) MarkOverdue(ctx context.Context, before time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&domain.Milestone{}).
		Where("due_date < ? AND status NOT IN ?", before, []domain.MilestoneStatus{
			domain.MilestoneStatusCompleted,
			domain.MilestoneStatusOverdue,
		}).
		Update("status", domain.MilestoneStatusOverdue)
	return result.RowsAffected, result.Error
}
