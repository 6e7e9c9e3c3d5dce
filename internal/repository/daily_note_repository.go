package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"construction-dashboard-api/internal/domain"
)

// DailyNoteRepository defines the interface for daily site note data access
type DailyNoteRepository interface {
	Upsert(ctx context.Context, note *domain.DailyNote) error
	FindByProjectAndDate(ctx context.Context, projectID uuid.UUID, date time.Time) (*domain.DailyNote, error)
	DeleteByProjectAndDate(ctx context.Context, projectID uuid.UUID, date time.Time) error
}

type dailyNoteRepositoryImpl struct {
	db *gorm.DB
}

// NewDailyNoteRepository creates a new instance of DailyNoteRepository
func NewDailyNoteRepository(db *gorm.DB) DailyNoteRepository {
	return &dailyNoteRepositoryImpl{db: db}
}

func (r *dailyNoteRepositoryImpl) Upsert(ctx context.Context, note *domain.DailyNote) error {
	note.WorkDate = dateOnly(note.WorkDate)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "project_id"}, {Name: "work_date"}},
		DoUpdates: clause.AssignmentColumns([]string{"crew_size", "weather", "notes", "updated_at"}),
	}).Create(note).Error
}

func (r *dailyNoteRepositoryImpl) FindByProjectAndDate(ctx context.Context, projectID uuid.UUID, date time.Time) (*domain.DailyNote, error) {
	var note domain.DailyNote
	err := r.db.WithContext(ctx).
		Where("project_id = ? AND work_date = ?", projectID, dateOnly(date)).
		First(&note).Error
	if err != nil {
		return nil, err
	}
	return &note, nil
}

func (r *dailyNoteRepositoryImpl) DeleteByProjectAndDate(ctx context.Context, projectID uuid.UUID, date time.Time) error {
	return r.db.WithContext(ctx).
		Where("project_id = ? AND work_date = ?", projectID, dateOnly(date)).
		Delete(&domain.DailyNote{}).Error
}
