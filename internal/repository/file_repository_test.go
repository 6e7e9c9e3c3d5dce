package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"construction-dashboard-api/internal/domain"
)

func createTestFile(t *testing.T, repo FileRepository, projectID uuid.UUID, category domain.FileCategory, size int64, isPublic bool) *domain.ProjectFile {
	t.Helper()
	file := &domain.ProjectFile{
		ProjectID:   projectID,
		FileName:    "file.bin",
		FileKey:     "site/files/" + uuid.NewString(),
		FileSize:    size,
		ContentType: "application/octet-stream",
		Category:    category,
		UploadedBy:  uuid.New(),
		IsPublic:    isPublic,
	}
	require.NoError(t, repo.Create(context.Background(), file))
	return file
}

func TestFileRepositoryStatsByProject(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFileRepository(db)
	project := createTestProject(t, db)
	ctx := context.Background()

	createTestFile(t, repo, project.ID, domain.FileCategoryDocument, 1000, true)
	createTestFile(t, repo, project.ID, domain.FileCategoryDocument, 2000, false)
	createTestFile(t, repo, project.ID, domain.FileCategoryImage, 500, true)
	// another project's file must not leak into the stats
	createTestFile(t, repo, uuid.New(), domain.FileCategoryDocument, 9000, true)

	stats, err := repo.StatsByProject(ctx, project.ID, false)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalFiles)
	assert.Equal(t, int64(3500), stats.TotalSize)
	assert.Equal(t, int64(2), stats.CountByCategory[string(domain.FileCategoryDocument)])
	assert.Equal(t, int64(1), stats.CountByCategory[string(domain.FileCategoryImage)])

	publicStats, err := repo.StatsByProject(ctx, project.ID, true)
	require.NoError(t, err)
	assert.Equal(t, int64(2), publicStats.TotalFiles)
	assert.Equal(t, int64(1500), publicStats.TotalSize)
}

func TestFileRepositoryStatsEmptyProject(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFileRepository(db)

	stats, err := repo.StatsByProject(context.Background(), uuid.New(), false)
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.TotalFiles)
	assert.Equal(t, int64(0), stats.TotalSize)
	assert.Empty(t, stats.CountByCategory)
}

func TestFileRepositoryPublicVisibility(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFileRepository(db)
	project := createTestProject(t, db)
	ctx := context.Background()

	public := createTestFile(t, repo, project.ID, domain.FileCategoryDocument, 100, true)
	createTestFile(t, repo, project.ID, domain.FileCategoryDocument, 100, false)

	all, err := repo.FindByProjectID(ctx, project.ID, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	visible, err := repo.FindByProjectID(ctx, project.ID, true)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, public.ID, visible[0].ID)
}

func TestFileRepositoryIncrementDownloadCount(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFileRepository(db)
	project := createTestProject(t, db)
	ctx := context.Background()

	file := createTestFile(t, repo, project.ID, domain.FileCategoryDocument, 100, true)

	require.NoError(t, repo.IncrementDownloadCount(ctx, file.ID))
	require.NoError(t, repo.IncrementDownloadCount(ctx, file.ID))

	got, err := repo.FindByID(ctx, file.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.DownloadCount)
}
