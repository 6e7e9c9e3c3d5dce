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
	"construction-dashboard-api/internal/schedule"
)

const upcomingLimit = 5

// ScheduleService defines the interface for schedule business logic
type ScheduleService interface {
	GetSchedule(ctx context.Context, projectID uuid.UUID, userID uuid.UUID, role domain.Role) (*dto.ScheduleResponse, error)
	GetGroupedSchedule(ctx context.Context, projectID uuid.UUID, filter schedule.Filter) (*dto.GroupedScheduleResponse, error)
	CreatePhase(ctx context.Context, projectID uuid.UUID, req *dto.CreatePhaseRequest) (*dto.PhaseResponse, error)
	UpdatePhase(ctx context.Context, phaseID uuid.UUID, req *dto.UpdatePhaseRequest) (*dto.PhaseResponse, error)
	DeletePhase(ctx context.Context, phaseID uuid.UUID) error
}

type scheduleServiceImpl struct {
	projectRepo  repository.ProjectRepository
	phaseRepo    repository.PhaseRepository
	activityRepo repository.ActivityRepository
	logger       *zap.Logger
}

// NewScheduleService creates a new instance of ScheduleService
func NewScheduleService(
	projectRepo repository.ProjectRepository,
	phaseRepo repository.PhaseRepository,
	activityRepo repository.ActivityRepository,
	logger *zap.Logger,
) ScheduleService {
	return &scheduleServiceImpl{
		projectRepo:  projectRepo,
		phaseRepo:    phaseRepo,
		activityRepo: activityRepo,
		logger:       logger,
	}
}

// GetSchedule assembles the full schedule view for one project. Phase progress
// and the overall stats are always derived from the activity rows at read time.
func (s *scheduleServiceImpl) GetSchedule(ctx context.Context, projectID uuid.UUID, userID uuid.UUID, role domain.Role) (*dto.ScheduleResponse, error) {
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

	phases, err := s.phaseRepo.FindByProjectID(ctx, projectID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load schedule", err.Error())
	}

	all := make([]schedule.ActivityRecord, 0)
	phaseResponses := make([]*dto.PhaseResponse, 0, len(phases))
	for _, phase := range phases {
		records := schedule.ToRecords(phase.Activities, nil)
		all = append(all, records...)
		phaseResponses = append(phaseResponses, toPhaseResponse(phase, records))
	}

	now := time.Now().UTC()
	resp := &dto.ScheduleResponse{
		Project:            *toProjectResponse(project),
		Phases:             make([]dto.PhaseResponse, 0, len(phaseResponses)),
		OverallStats:       schedule.ComputeStats(all),
		UpcomingActivities: schedule.UpcomingActivities(all, now, upcomingLimit),
	}
	for _, pr := range phaseResponses {
		resp.Phases = append(resp.Phases, *pr)
	}
	return resp, nil
}

// GetGroupedSchedule returns the project's activities partitioned into the
// five fixed construction phases, after applying the filter.
func (s *scheduleServiceImpl) GetGroupedSchedule(ctx context.Context, projectID uuid.UUID, filter schedule.Filter) (*dto.GroupedScheduleResponse, error) {
	activities, err := s.activityRepo.FindByProjectID(ctx, projectID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load activities", err.Error())
	}

	records := schedule.FilterActivities(schedule.ToRecords(activities, nil), filter)
	return &dto.GroupedScheduleResponse{
		Groups: schedule.GroupByPhaseAndWeek(records),
		Stats:  schedule.ComputeStats(records),
	}, nil
}

// CreatePhase adds a phase to a project's schedule
func (s *scheduleServiceImpl) CreatePhase(ctx context.Context, projectID uuid.UUID, req *dto.CreatePhaseRequest) (*dto.PhaseResponse, error) {
	if _, err := s.projectRepo.FindByID(ctx, projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Project not found", projectID.String())
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load project", err.Error())
	}
	if err := validatePhaseDates(req.StartDate, req.EndDate); err != nil {
		return nil, err
	}

	status := domain.PhaseStatusUpcoming
	if req.Status != "" {
		status = domain.PhaseStatus(req.Status)
		if !domain.ValidPhaseStatus(status) {
			return nil, response.NewValidationError("Invalid phase status", req.Status)
		}
	}

	phase := &domain.SchedulePhase{
		ProjectID:    projectID,
		Name:         req.Name,
		Description:  req.Description,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Status:       status,
		Dependencies: datatypes.JSONSlice[uuid.UUID](req.Dependencies),
	}
	if err := s.phaseRepo.Create(ctx, phase); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create phase", err.Error())
	}

	s.logger.Info("schedule phase created",
		zap.String("project_id", projectID.String()),
		zap.String("phase_id", phase.ID.String()),
	)
	return toPhaseResponse(phase, nil), nil
}

// UpdatePhase applies a partial update to a phase
func (s *scheduleServiceImpl) UpdatePhase(ctx context.Context, phaseID uuid.UUID, req *dto.UpdatePhaseRequest) (*dto.PhaseResponse, error) {
	phase, err := s.phaseRepo.FindByID(ctx, phaseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Phase not found", phaseID.String())
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load phase", err.Error())
	}

	if req.Name != nil {
		phase.Name = *req.Name
	}
	if req.Description != nil {
		phase.Description = *req.Description
	}
	if req.StartDate != nil {
		phase.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		phase.EndDate = req.EndDate
	}
	if req.Status != nil {
		status := domain.PhaseStatus(*req.Status)
		if !domain.ValidPhaseStatus(status) {
			return nil, response.NewValidationError("Invalid phase status", *req.Status)
		}
		phase.Status = status
	}
	if req.Dependencies != nil {
		phase.Dependencies = datatypes.JSONSlice[uuid.UUID](req.Dependencies)
	}
	if err := validatePhaseDates(phase.StartDate, phase.EndDate); err != nil {
		return nil, err
	}

	if err := s.phaseRepo.Update(ctx, phase); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update phase", err.Error())
	}

	records := schedule.ToRecords(phase.Activities, nil)
	return toPhaseResponse(phase, records), nil
}

// DeletePhase removes a phase and its activities
func (s *scheduleServiceImpl) DeletePhase(ctx context.Context, phaseID uuid.UUID) error {
	if _, err := s.phaseRepo.FindByID(ctx, phaseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Phase not found", phaseID.String())
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to load phase", err.Error())
	}
	if err := s.phaseRepo.Delete(ctx, phaseID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete phase", err.Error())
	}
	return nil
}

func validatePhaseDates(start, end *time.Time) error {
	if start != nil && end != nil && !end.After(*start) {
		return response.NewValidationError("End Date must be after Start Date", "")
	}
	return nil
}

func toPhaseResponse(phase *domain.SchedulePhase, records []schedule.ActivityRecord) *dto.PhaseResponse {
	if records == nil {
		records = schedule.ToRecords(phase.Activities, nil)
	}
	stats := schedule.ComputeStats(records)
	return &dto.PhaseResponse{
		ID:           phase.ID,
		ProjectID:    phase.ProjectID,
		Name:         phase.Name,
		Description:  phase.Description,
		StartDate:    phase.StartDate,
		EndDate:      phase.EndDate,
		Status:       string(phase.Status),
		Progress:     stats.Progress,
		Dependencies: phase.Dependencies,
		Activities:   records,
		Stats:        stats,
		CreatedAt:    phase.CreatedAt,
		UpdatedAt:    phase.UpdatedAt,
	}
}
