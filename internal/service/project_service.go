package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"construction-dashboard-api/internal/domain"
	"construction-dashboard-api/internal/dto"
	"construction-dashboard-api/internal/metrics"
	"construction-dashboard-api/internal/repository"
	"construction-dashboard-api/internal/response"
)

// ProjectService defines the interface for project business logic
type ProjectService interface {
	CreateProject(ctx context.Context, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error)
	GetProject(ctx context.Context, projectID uuid.UUID, userID uuid.UUID, role domain.Role) (*dto.ProjectResponse, error)
	ListProjects(ctx context.Context, userID uuid.UUID, role domain.Role) ([]*dto.ProjectResponse, error)
	UpdateProject(ctx context.Context, projectID uuid.UUID, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error)
	ArchiveProject(ctx context.Context, projectID uuid.UUID) error
}

type projectServiceImpl struct {
	projectRepo repository.ProjectRepository
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewProjectService creates a new instance of ProjectService
func NewProjectService(projectRepo repository.ProjectRepository, m *metrics.Metrics, logger *zap.Logger) ProjectService {
	return &projectServiceImpl{
		projectRepo: projectRepo,
		metrics:     m,
		logger:      logger,
	}
}

// CreateProject creates a new project
func (s *projectServiceImpl) CreateProject(ctx context.Context, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	status := domain.ProjectStatusPlanning
	if req.Status != "" {
		status = domain.ProjectStatus(req.Status)
		if !domain.ValidProjectStatus(status) {
			return nil, response.NewValidationError("Invalid project status", req.Status)
		}
	}
	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		return nil, response.NewValidationError("End Date must be after Start Date", "")
	}

	project := &domain.Project{
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		ManagerID:   req.ManagerID,
		ClientID:    req.ClientID,
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create project", err.Error())
	}

	s.metrics.IncrementProjectCreated()
	s.logger.Info("project created",
		zap.String("project_id", project.ID.String()),
		zap.String("title", project.Title),
	)
	return toProjectResponse(project), nil
}

// GetProject returns a single project. Clients may only read their own projects.
func (s *projectServiceImpl) GetProject(ctx context.Context, projectID uuid.UUID, userID uuid.UUID, role domain.Role) (*dto.ProjectResponse, error) {
	project, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Project not found", projectID.String())
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load project", err.Error())
	}

	if role == domain.RoleClient && project.ClientID != userID {
		return nil, response.NewForbiddenError("You do not have access to this project", "")
	}
	return toProjectResponse(project), nil
}

// ListProjects returns the projects visible to the caller: all projects for
// admins, managed projects for managers, owned projects for clients.
func (s *projectServiceImpl) ListProjects(ctx context.Context, userID uuid.UUID, role domain.Role) ([]*dto.ProjectResponse, error) {
	var (
		projects []*domain.Project
		err      error
	)
	switch role {
	case domain.RoleAdmin:
		projects, err = s.projectRepo.FindAll(ctx)
	case domain.RoleManager:
		projects, err = s.projectRepo.FindByManagerID(ctx, userID)
	default:
		projects, err = s.projectRepo.FindByClientID(ctx, userID)
	}
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list projects", err.Error())
	}

	responses := make([]*dto.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		responses = append(responses, toProjectResponse(p))
	}
	return responses, nil
}

// UpdateProject applies a partial update
func (s *projectServiceImpl) UpdateProject(ctx context.Context, projectID uuid.UUID, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	project, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Project not found", projectID.String())
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load project", err.Error())
	}

	if req.Title != nil {
		project.Title = *req.Title
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.Status != nil {
		status := domain.ProjectStatus(*req.Status)
		if !domain.ValidProjectStatus(status) {
			return nil, response.NewValidationError("Invalid project status", *req.Status)
		}
		project.Status = status
	}
	if req.Progress != nil {
		project.Progress = *req.Progress
	}
	if req.StartDate != nil {
		project.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		project.EndDate = req.EndDate
	}
	if req.ManagerID != nil {
		project.ManagerID = *req.ManagerID
	}
	if req.ClientID != nil {
		project.ClientID = *req.ClientID
	}
	if project.StartDate != nil && project.EndDate != nil && project.EndDate.Before(*project.StartDate) {
		return nil, response.NewValidationError("End Date must be after Start Date", "")
	}

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update project", err.Error())
	}
	return toProjectResponse(project), nil
}

// ArchiveProject marks a project cancelled. Rows are kept so history and files
// stay reachable.
func (s *projectServiceImpl) ArchiveProject(ctx context.Context, projectID uuid.UUID) error {
	if _, err := s.projectRepo.FindByID(ctx, projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Project not found", projectID.String())
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to load project", err.Error())
	}

	if err := s.projectRepo.UpdateStatus(ctx, projectID, domain.ProjectStatusCancelled); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to archive project", err.Error())
	}

	s.logger.Info("project archived", zap.String("project_id", projectID.String()))
	return nil
}

func toProjectResponse(p *domain.Project) *dto.ProjectResponse {
	return &dto.ProjectResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Status:      string(p.Status),
		Progress:    p.Progress,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		ManagerID:   p.ManagerID,
		ClientID:    p.ClientID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
