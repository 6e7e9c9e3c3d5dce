package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"construction-dashboard-api/internal/domain"
)

// FileStats aggregates a project's file library
type FileStats struct {
	TotalFiles      int64
	TotalSize       int64
	CountByCategory map[string]int64
}

// FileRepository defines the interface for project file data access
type FileRepository interface {
	Create(ctx context.Context, file *domain.ProjectFile) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.ProjectFile, error)
	FindByProjectID(ctx context.Context, projectID uuid.UUID, publicOnly bool) ([]*domain.ProjectFile, error)
	FindAll(ctx context.Context, publicOnly bool) ([]*domain.ProjectFile, error)
	StatsByProject(ctx context.Context, projectID uuid.UUID, publicOnly bool) (*FileStats, error)
	Update(ctx context.Context, file *domain.ProjectFile) error
	IncrementDownloadCount(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type fileRepositoryImpl struct {
	db *gorm.DB
}

// NewFileRepository creates a new instance of FileRepository
func NewFileRepository(db *gorm.DB) FileRepository {
	return &fileRepositoryImpl{db: db}
}

func (r *fileRepositoryImpl) Create(ctx context.Context, file *domain.ProjectFile) error {
	return r.db.WithContext(ctx).Create(file).Error
}

func (r *fileRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.ProjectFile, error) {
	var file domain.ProjectFile
	if err := r.db.WithContext(ctx).First(&file, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &file, nil
}

func (r *fileRepositoryImpl) FindByProjectID(ctx context.Context, projectID uuid.UUID, publicOnly bool) ([]*domain.ProjectFile, error) {
	query := r.db.WithContext(ctx).Where("project_id = ?", projectID)
	if publicOnly {
		query = query.Where("is_public = ?", true)
	}

	var files []*domain.ProjectFile
	if err := query.Order("created_at DESC").Find(&files).Error; err != nil {
		return nil, err
	}
	return files, nil
}

func (r *fileRepositoryImpl) FindAll(ctx context.Context, publicOnly bool) ([]*domain.ProjectFile, error) {
	query := r.db.WithContext(ctx)
	if publicOnly {
		query = query.Where("is_public = ?", true)
	}

	var files []*domain.ProjectFile
	if err := query.Order("created_at DESC").Find(&files).Error; err != nil {
		return nil, err
	}
	return files, nil
}

func (r *fileRepositoryImpl) StatsByProject(ctx context.Context, projectID uuid.UUID, publicOnly bool) (*FileStats, error) {
	query := r.db.WithContext(ctx).
		Model(&domain.ProjectFile{}).
		Where("project_id = ?", projectID)
	if publicOnly {
		query = query.Where("is_public = ?", true)
	}

	var rows []struct {
		Category string
		Count    int64
		Size     int64
	}
	err := query.
		Select("category, COUNT(*) AS count, COALESCE(SUM(file_size), 0) AS size").
		Group("category").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	stats := &FileStats{CountByCategory: make(map[string]int64, len(rows))}
	for _, row := range rows {
		stats.TotalFiles += row.Count
		stats.TotalSize += row.Size
		stats.CountByCategory[row.Category] = row.Count
	}
	return stats, nil
}

func (r *fileRepositoryImpl) Update(ctx context.Context, file *domain.ProjectFile) error {
	return r.db.WithContext(ctx).Save(file).Error
}

func (r *fileRepositoryImpl) IncrementDownloadCount(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&domain.ProjectFile{}).
		Where("id = ?", id).
		UpdateColumn("download_count", gorm.Expr("download_count + 1")).Error
}

func (r *fileRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.ProjectFile{}, "id = ?", id).Error
}
