package job

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"construction-dashboard-api/internal/domain"
)

type mockMilestoneRepo struct {
	MarkOverdueFunc func(ctx context.Context, before time.Time) (int64, error)
}

func (m *mockMilestoneRepo) Create(ctx context.Context, milestone *domain.Milestone) error {
	return nil
}

func (m *mockMilestoneRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Milestone, error) {
	return nil, nil
}

func (m *mockMilestoneRepo) FindByProjectID(ctx context.Context, projectID uuid.UUID) ([]*domain.Milestone, error) {
	return nil, nil
}

func (m *mockMilestoneRepo) Update(ctx context.Context, milestone *domain.Milestone) error {
	return nil
}

func (m *mockMilestoneRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return nil
}

func (m *mockMilestoneRepo) MarkOverdue(ctx context.Context, before time.Time) (int64, error) {
	if m.MarkOverdueFunc != nil {
		return m.MarkOverdueFunc(ctx, before)
	}
	return 0, nil
}

type mockActivityRepo struct {
	mu sync.Mutex

	FindDelayedCandidatesFunc func(ctx context.Context, before time.Time) ([]domain.Activity, error)
	UpdateFieldsFunc          func(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error

	updated []uuid.UUID
}

func (m *mockActivityRepo) Create(ctx context.Context, activity *domain.Activity) error { return nil }

func (m *mockActivityRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Activity, error) {
	return nil, nil
}

func (m *mockActivityRepo) FindByProjectID(ctx context.Context, projectID uuid.UUID) ([]domain.Activity, error) {
	return nil, nil
}

func (m *mockActivityRepo) FindAll(ctx context.Context) ([]domain.Activity, error) {
	return nil, nil
}

func (m *mockActivityRepo) FindByProjectAndDate(ctx context.Context, projectID uuid.UUID, date time.Time) ([]domain.Activity, error) {
	return nil, nil
}

func (m *mockActivityRepo) Update(ctx context.Context, activity *domain.Activity) error { return nil }

func (m *mockActivityRepo) UpdateFields(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	m.mu.Lock()
	m.updated = append(m.updated, id)
	m.mu.Unlock()
	if m.UpdateFieldsFunc != nil {
		return m.UpdateFieldsFunc(ctx, id, updates)
	}
	return nil
}

func (m *mockActivityRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (m *mockActivityRepo) DeleteByProjectAndDate(ctx context.Context, projectID uuid.UUID, date time.Time) error {
	return nil
}

func (m *mockActivityRepo) FindDelayedCandidates(ctx context.Context, before time.Time) ([]domain.Activity, error) {
	if m.FindDelayedCandidatesFunc != nil {
		return m.FindDelayedCandidatesFunc(ctx, before)
	}
	return nil, nil
}

func activityWithID(id uuid.UUID) domain.Activity {
	a := domain.Activity{Status: domain.ActivityStatusInProgress}
	a.ID = id
	return a
}

func TestSweepOverdueMilestones(t *testing.T) {
	var gotBefore time.Time
	milestoneRepo := &mockMilestoneRepo{
		MarkOverdueFunc: func(ctx context.Context, before time.Time) (int64, error) {
			gotBefore = before
			return 3, nil
		},
	}
	s := NewScheduler(milestoneRepo, &mockActivityRepo{}, zap.NewNop())

	s.SweepOverdueMilestones()

	assert.WithinDuration(t, time.Now().UTC(), gotBefore, 5*time.Second)
}

func TestSweepDelayedActivitiesMarksEachCandidate(t *testing.T) {
	first := uuid.New()
	second := uuid.New()
	activityRepo := &mockActivityRepo{
		FindDelayedCandidatesFunc: func(ctx context.Context, before time.Time) ([]domain.Activity, error) {
			return []domain.Activity{activityWithID(first), activityWithID(second)}, nil
		},
	}
	s := NewScheduler(&mockMilestoneRepo{}, activityRepo, zap.NewNop())

	s.SweepDelayedActivities()

	require.Len(t, activityRepo.updated, 2)
	assert.Equal(t, []uuid.UUID{first, second}, activityRepo.updated)
}

func TestSweepDelayedActivitiesContinuesPastFailures(t *testing.T) {
	first := uuid.New()
	second := uuid.New()
	activityRepo := &mockActivityRepo{
		FindDelayedCandidatesFunc: func(ctx context.Context, before time.Time) ([]domain.Activity, error) {
			return []domain.Activity{activityWithID(first), activityWithID(second)}, nil
		},
		UpdateFieldsFunc: func(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
			if id == first {
				return errors.New("row locked")
			}
			return nil
		},
	}
	s := NewScheduler(&mockMilestoneRepo{}, activityRepo, zap.NewNop())

	s.SweepDelayedActivities()

	// the failed update must not stop the second activity from being marked
	require.Len(t, activityRepo.updated, 2)
}

func TestSchedulerStartStop(t *testing.T) {
	activityRepo := &mockActivityRepo{}
	s := NewScheduler(&mockMilestoneRepo{}, activityRepo, zap.NewNop())

	require.NoError(t, s.Start())
	s.Stop()
}
