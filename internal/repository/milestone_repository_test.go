package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"construction-dashboard-api/internal/domain"
)

func createTestMilestone(t *testing.T, repo MilestoneRepository, projectID uuid.UUID, due time.Time, status domain.MilestoneStatus) *domain.Milestone {
	t.Helper()
	milestone := &domain.Milestone{
		ProjectID: projectID,
		Title:     "Structural sign-off",
		DueDate:   due,
		Status:    status,
		Priority:  domain.MilestonePriorityMedium,
	}
	require.NoError(t, repo.Create(context.Background(), milestone))
	return milestone
}

func TestMilestoneRepositoryOrdersByDueDate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMilestoneRepository(db)
	project := createTestProject(t, db)
	ctx := context.Background()

	later := createTestMilestone(t, repo, project.ID, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), domain.MilestoneStatusUpcoming)
	sooner := createTestMilestone(t, repo, project.ID, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), domain.MilestoneStatusUpcoming)

	milestones, err := repo.FindByProjectID(ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, milestones, 2)
	assert.Equal(t, sooner.ID, milestones[0].ID)
	assert.Equal(t, later.ID, milestones[1].ID)
}

func TestMilestoneRepositoryMarkOverdue(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMilestoneRepository(db)
	project := createTestProject(t, db)
	ctx := context.Background()
	now := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)

	pastUpcoming := createTestMilestone(t, repo, project.ID, now.AddDate(0, 0, -3), domain.MilestoneStatusUpcoming)
	pastInProgress := createTestMilestone(t, repo, project.ID, now.AddDate(0, 0, -1), domain.MilestoneStatusInProgress)
	pastCompleted := createTestMilestone(t, repo, project.ID, now.AddDate(0, 0, -5), domain.MilestoneStatusCompleted)
	alreadyOverdue := createTestMilestone(t, repo, project.ID, now.AddDate(0, 0, -7), domain.MilestoneStatusOverdue)
	future := createTestMilestone(t, repo, project.ID, now.AddDate(0, 0, 4), domain.MilestoneStatusUpcoming)

	affected, err := repo.MarkOverdue(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(2), affected)

	expect := map[uuid.UUID]domain.MilestoneStatus{
		pastUpcoming.ID:   domain.MilestoneStatusOverdue,
		pastInProgress.ID: domain.MilestoneStatusOverdue,
		pastCompleted.ID:  domain.MilestoneStatusCompleted,
		alreadyOverdue.ID: domain.MilestoneStatusOverdue,
		future.ID:         domain.MilestoneStatusUpcoming,
	}
	for id, want := range expect {
		got, err := repo.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, want, got.Status)
	}

	// a second sweep finds nothing left to transition
	affected, err = repo.MarkOverdue(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)
}
