package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"construction-dashboard-api/internal/domain"
	"construction-dashboard-api/internal/dto"
	"construction-dashboard-api/internal/repository"
	"construction-dashboard-api/internal/response"
)

// MilestoneService defines the interface for milestone business logic
type MilestoneService interface {
	CreateMilestone(ctx context.Context, projectID uuid.UUID, req *dto.CreateMilestoneRequest) (*dto.MilestoneResponse, error)
	GetMilestones(ctx context.Context, projectID uuid.UUID) ([]*dto.MilestoneResponse, error)
	UpdateMilestone(ctx context.Context, milestoneID uuid.UUID, req *dto.UpdateMilestoneRequest) (*dto.MilestoneResponse, error)
	DeleteMilestone(ctx context.Context, milestoneID uuid.UUID) error
}

type milestoneServiceImpl struct {
	milestoneRepo repository.MilestoneRepository
	projectRepo   repository.ProjectRepository
	logger        *zap.Logger

	// now is injectable for tests
	now func() time.Time
}

// NewMilestoneService creates a new instance of MilestoneService
func NewMilestoneService(milestoneRepo repository.MilestoneRepository, projectRepo repository.ProjectRepository, logger *zap.Logger) MilestoneService {
	return &milestoneServiceImpl{
		milestoneRepo: milestoneRepo,
		projectRepo:   projectRepo,
		logger:        logger,
		now:           time.Now,
	}
}

// CreateMilestone creates a milestone. The due date must not fall before the
// start of the current day.
func (s *milestoneServiceImpl) CreateMilestone(ctx context.Context, projectID uuid.UUID, req *dto.CreateMilestoneRequest) (*dto.MilestoneResponse, error) {
	if _, err := s.projectRepo.FindByID(ctx, projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Project not found", projectID.String())
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load project", err.Error())
	}

	todayStart := s.now().UTC().Truncate(24 * time.Hour)
	if req.DueDate.Before(todayStart) {
		return nil, response.NewValidationError("Due date cannot be in the past", "")
	}

	status := domain.MilestoneStatusUpcoming
	if req.Status != "" {
		status = domain.MilestoneStatus(req.Status)
		if !domain.ValidMilestoneStatus(status) {
			return nil, response.NewValidationError("Invalid milestone status", req.Status)
		}
	}
	priority := domain.MilestonePriorityMedium
	if req.Priority != "" {
		priority = domain.MilestonePriority(req.Priority)
	}

	milestone := &domain.Milestone{
		ProjectID:    projectID,
		Title:        req.Title,
		Description:  req.Description,
		DueDate:      req.DueDate,
		Status:       status,
		Priority:     priority,
		Dependencies: datatypes.JSONSlice[uuid.UUID](req.Dependencies),
		AssigneeID:   req.AssigneeID,
	}
	if err := s.milestoneRepo.Create(ctx, milestone); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create milestone", err.Error())
	}

	s.logger.Info("milestone created",
		zap.String("project_id", projectID.String()),
		zap.String("milestone_id", milestone.ID.String()),
	)
	return toMilestoneResponse(milestone), nil
}

// GetMilestones returns a project's milestones ordered by due date
func (s *milestoneServiceImpl) GetMilestones(ctx context.Context, projectID uuid.UUID) ([]*dto.MilestoneResponse, error) {
	milestones, err := s.milestoneRepo.FindByProjectID(ctx, projectID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load milestones", err.Error())
	}

	responses := make([]*dto.MilestoneResponse, 0, len(milestones))
	for _, m := range milestones {
		responses = append(responses, toMilestoneResponse(m))
	}
	return responses, nil
}

// UpdateMilestone applies a partial update. Transitioning into completed
// stamps CompletedAt and forces progress to 100.
func (s *milestoneServiceImpl) UpdateMilestone(ctx context.Context, milestoneID uuid.UUID, req *dto.UpdateMilestoneRequest) (*dto.MilestoneResponse, error) {
	milestone, err := s.milestoneRepo.FindByID(ctx, milestoneID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Milestone not found", milestoneID.String())
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load milestone", err.Error())
	}

	if req.Title != nil {
		milestone.Title = *req.Title
	}
	if req.Description != nil {
		milestone.Description = *req.Description
	}
	if req.DueDate != nil {
		milestone.DueDate = *req.DueDate
	}
	if req.Status != nil {
		status := domain.MilestoneStatus(*req.Status)
		if !domain.ValidMilestoneStatus(status) {
			return nil, response.NewValidationError("Invalid milestone status", *req.Status)
		}
		if status == domain.MilestoneStatusCompleted && milestone.Status != domain.MilestoneStatusCompleted {
			completed := s.now().UTC()
			milestone.CompletedAt = &completed
			milestone.Progress = 100
		}
		if status != domain.MilestoneStatusCompleted {
			milestone.CompletedAt = nil
		}
		milestone.Status = status
	}
	if req.Progress != nil {
		milestone.Progress = *req.Progress
	}
	if req.Priority != nil {
		milestone.Priority = domain.MilestonePriority(*req.Priority)
	}
	if req.Dependencies != nil {
		milestone.Dependencies = datatypes.JSONSlice[uuid.UUID](req.Dependencies)
	}
	if req.AssigneeID != nil {
		milestone.AssigneeID = req.AssigneeID
	}

	if err := s.milestoneRepo.Update(ctx, milestone); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update milestone", err.Error())
	}
	return toMilestoneResponse(milestone), nil
}

// DeleteMilestone removes a milestone
func (s *milestoneServiceImpl) DeleteMilestone(ctx context.Context, milestoneID uuid.UUID) error {
	if _, err := s.milestoneRepo.FindByID(ctx, milestoneID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Milestone not found", milestoneID.String())
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to load milestone", err.Error())
	}
	if err := s.milestoneRepo.Delete(ctx, milestoneID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete milestone", err.Error())
	}
	return nil
}

func toMilestoneResponse(m *domain.Milestone) *dto.MilestoneResponse {
	return &dto.MilestoneResponse{
		ID:           m.ID,
		ProjectID:    m.ProjectID,
		Title:        m.Title,
		Description:  m.Description,
		DueDate:      m.DueDate,
		Status:       string(m.Status),
		Progress:     m.Progress,
		Priority:     string(m.Priority),
		Dependencies: m.Dependencies,
		AssigneeID:   m.AssigneeID,
		CompletedAt:  m.CompletedAt,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
