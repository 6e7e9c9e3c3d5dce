package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"construction-dashboard-api/internal/domain"
	"construction-dashboard-api/internal/dto"
	"construction-dashboard-api/internal/metrics"
	"construction-dashboard-api/internal/response"
)

func testMetrics() *metrics.Metrics {
	return metrics.NewWithRegistry(prometheus.NewRegistry())
}

func TestCreateProject(t *testing.T) {
	managerID := uuid.New()
	clientID := uuid.New()

	repo := &MockProjectRepository{
		CreateFunc: func(ctx context.Context, project *domain.Project) error {
			project.ID = uuid.New()
			return nil
		},
	}
	svc := NewProjectService(repo, testMetrics(), zap.NewNop())

	resp, err := svc.CreateProject(context.Background(), &dto.CreateProjectRequest{
		Title:     "Riverside Apartments Block B",
		ManagerID: managerID,
		ClientID:  clientID,
	})
	require.NoError(t, err)

	assert.Equal(t, "Riverside Apartments Block B", resp.Title)
	assert.Equal(t, string(domain.ProjectStatusPlanning), resp.Status)
	assert.Equal(t, managerID, resp.ManagerID)
}

func TestCreateProjectEndBeforeStart(t *testing.T) {
	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, -1, 0)

	svc := NewProjectService(&MockProjectRepository{}, testMetrics(), zap.NewNop())
	_, err := svc.CreateProject(context.Background(), &dto.CreateProjectRequest{
		Title:     "Riverside Apartments Block B",
		ManagerID: uuid.New(),
		ClientID:  uuid.New(),
		StartDate: &start,
		EndDate:   &end,
	})

	var appErr *response.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, response.ErrCodeValidation, appErr.Code)
	assert.Equal(t, "End Date must be after Start Date", appErr.Message)
}

func TestCreateProjectInvalidStatus(t *testing.T) {
	svc := NewProjectService(&MockProjectRepository{}, testMetrics(), zap.NewNop())
	_, err := svc.CreateProject(context.Background(), &dto.CreateProjectRequest{
		Title:     "Riverside Apartments Block B",
		ManagerID: uuid.New(),
		ClientID:  uuid.New(),
		Status:    "demolished",
	})

	var appErr *response.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, response.ErrCodeValidation, appErr.Code)
}

func TestGetProjectClientOwnership(t *testing.T) {
	projectID := uuid.New()
	ownerID := uuid.New()

	repo := &MockProjectRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
			return &domain.Project{
				BaseModel: domain.BaseModel{ID: projectID},
				Title:     "Hillcrest Renovation",
				ClientID:  ownerID,
				ManagerID: uuid.New(),
			}, nil
		},
	}
	svc := NewProjectService(repo, testMetrics(), zap.NewNop())

	// the owning client can read it
	resp, err := svc.GetProject(context.Background(), projectID, ownerID, domain.RoleClient)
	require.NoError(t, err)
	assert.Equal(t, projectID, resp.ID)

	// another client cannot
	_, err = svc.GetProject(context.Background(), projectID, uuid.New(), domain.RoleClient)
	var appErr *response.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, response.ErrCodeForbidden, appErr.Code)

	// a manager who does not own it still can
	_, err = svc.GetProject(context.Background(), projectID, uuid.New(), domain.RoleManager)
	assert.NoError(t, err)
}

func TestGetProjectNotFound(t *testing.T) {
	repo := &MockProjectRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := NewProjectService(repo, testMetrics(), zap.NewNop())

	_, err := svc.GetProject(context.Background(), uuid.New(), uuid.New(), domain.RoleAdmin)
	var appErr *response.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, response.ErrCodeNotFound, appErr.Code)
}

func TestListProjectsRoleDispatch(t *testing.T) {
	userID := uuid.New()
	var calledAll, calledManager, calledClient bool

	repo := &MockProjectRepository{
		FindAllFunc: func(ctx context.Context) ([]*domain.Project, error) {
			calledAll = true
			return nil, nil
		},
		FindByManagerIDFunc: func(ctx context.Context, managerID uuid.UUID) ([]*domain.Project, error) {
			calledManager = true
			assert.Equal(t, userID, managerID)
			return nil, nil
		},
		FindByClientIDFunc: func(ctx context.Context, clientID uuid.UUID) ([]*domain.Project, error) {
			calledClient = true
			assert.Equal(t, userID, clientID)
			return nil, nil
		},
	}
	svc := NewProjectService(repo, testMetrics(), zap.NewNop())

	_, err := svc.ListProjects(context.Background(), userID, domain.RoleAdmin)
	require.NoError(t, err)
	_, err = svc.ListProjects(context.Background(), userID, domain.RoleManager)
	require.NoError(t, err)
	_, err = svc.ListProjects(context.Background(), userID, domain.RoleClient)
	require.NoError(t, err)

	assert.True(t, calledAll)
	assert.True(t, calledManager)
	assert.True(t, calledClient)
}

func TestUpdateProjectPartial(t *testing.T) {
	projectID := uuid.New()
	var saved *domain.Project

	repo := &MockProjectRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
			return &domain.Project{
				BaseModel:   domain.BaseModel{ID: projectID},
				Title:       "Hillcrest Renovation",
				Description: "original description",
				Status:      domain.ProjectStatusInProgress,
			}, nil
		},
		UpdateFunc: func(ctx context.Context, project *domain.Project) error {
			saved = project
			return nil
		},
	}
	svc := NewProjectService(repo, testMetrics(), zap.NewNop())

	newTitle := "Hillcrest Renovation Stage 2"
	_, err := svc.UpdateProject(context.Background(), projectID, &dto.UpdateProjectRequest{Title: &newTitle})
	require.NoError(t, err)

	require.NotNil(t, saved)
	assert.Equal(t, newTitle, saved.Title)
	assert.Equal(t, "original description", saved.Description, "nil fields must be left unchanged")
	assert.Equal(t, domain.ProjectStatusInProgress, saved.Status)
}

func TestArchiveProject(t *testing.T) {
	projectID := uuid.New()
	var gotStatus domain.ProjectStatus

	repo := &MockProjectRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
			return &domain.Project{BaseModel: domain.BaseModel{ID: projectID}}, nil
		},
		UpdateStatusFunc: func(ctx context.Context, id uuid.UUID, status domain.ProjectStatus) error {
			gotStatus = status
			return nil
		},
	}
	svc := NewProjectService(repo, testMetrics(), zap.NewNop())

	require.NoError(t, svc.ArchiveProject(context.Background(), projectID))
	assert.Equal(t, domain.ProjectStatusCancelled, gotStatus)
}
