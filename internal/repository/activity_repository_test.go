package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"construction-dashboard-api/internal/domain"
)

func TestActivityRepositoryDailyPartition(t *testing.T) {
	db := setupTestDB(t)
	repo := NewActivityRepository(db)
	project := createTestProject(t, db)
	ctx := context.Background()

	day1 := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)

	for i, d := range []time.Time{day1, day1, day2} {
		date := d
		require.NoError(t, repo.Create(ctx, &domain.Activity{
			ProjectID:  project.ID,
			WorkDate:   &date,
			Title:      "activity",
			Status:     domain.ActivityStatusPending,
			Priority:   domain.PriorityMedium,
			Category:   domain.CategoryOther,
			SitePhase:  domain.SitePhaseConstruction,
			WeekNumber: i + 1,
		}))
	}

	got, err := repo.FindByProjectAndDate(ctx, project.ID, day1)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	// a timestamp inside the day still hits the same calendar date
	got, err = repo.FindByProjectAndDate(ctx, project.ID, day1.Add(15*time.Hour))
	require.NoError(t, err)
	assert.Len(t, got, 2)

	require.NoError(t, repo.DeleteByProjectAndDate(ctx, project.ID, day1))
	got, err = repo.FindByProjectAndDate(ctx, project.ID, day1)
	require.NoError(t, err)
	assert.Empty(t, got)

	// the other day is untouched
	got, err = repo.FindByProjectAndDate(ctx, project.ID, day2)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestActivityRepositoryUpdateFields(t *testing.T) {
	db := setupTestDB(t)
	repo := NewActivityRepository(db)
	project := createTestProject(t, db)
	ctx := context.Background()

	activity := &domain.Activity{
		ProjectID: project.ID,
		Title:     "Pour footings",
		Status:    domain.ActivityStatusPending,
		Priority:  domain.PriorityMedium,
		Category:  domain.CategoryStructural,
		SitePhase: domain.SitePhaseConstruction,
	}
	require.NoError(t, repo.Create(ctx, activity))

	require.NoError(t, repo.UpdateFields(ctx, activity.ID, map[string]interface{}{
		"status": domain.ActivityStatusCompleted,
	}))

	got, err := repo.FindByID(ctx, activity.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ActivityStatusCompleted, got.Status)

	err = repo.UpdateFields(ctx, uuid.New(), map[string]interface{}{"status": domain.ActivityStatusDelayed})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestActivityRepositoryFindDelayedCandidates(t *testing.T) {
	db := setupTestDB(t)
	repo := NewActivityRepository(db)
	project := createTestProject(t, db)
	ctx := context.Background()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-48 * time.Hour)
	future := now.Add(48 * time.Hour)

	mk := func(status domain.ActivityStatus, end *time.Time) *domain.Activity {
		return &domain.Activity{
			ProjectID: project.ID,
			Title:     "activity",
			Status:    status,
			Priority:  domain.PriorityMedium,
			Category:  domain.CategoryOther,
			SitePhase: domain.SitePhaseConstruction,
			EndTime:   end,
		}
	}

	overdue := mk(domain.ActivityStatusInProgress, &past)
	require.NoError(t, repo.Create(ctx, overdue))
	require.NoError(t, repo.Create(ctx, mk(domain.ActivityStatusCompleted, &past)))
	require.NoError(t, repo.Create(ctx, mk(domain.ActivityStatusPending, &future)))
	require.NoError(t, repo.Create(ctx, mk(domain.ActivityStatusPending, nil)))

	got, err := repo.FindDelayedCandidates(ctx, now)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, overdue.ID, got[0].ID)
}

func TestActivityRepositoryImagesRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := NewActivityRepository(db)
	project := createTestProject(t, db)
	ctx := context.Background()

	activity := &domain.Activity{
		ProjectID: project.ID,
		Title:     "Pour footings",
		Status:    domain.ActivityStatusPending,
		Priority:  domain.PriorityMedium,
		Category:  domain.CategoryStructural,
		SitePhase: domain.SitePhaseConstruction,
		Images:    []string{"https://cdn.example.com/a.jpg", "https://cdn.example.com/b.jpg"},
	}
	require.NoError(t, repo.Create(ctx, activity))

	got, err := repo.FindByID(ctx, activity.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://cdn.example.com/a.jpg", "https://cdn.example.com/b.jpg"}, []string(got.Images))
}
