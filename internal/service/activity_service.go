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
	"construction-dashboard-api/internal/metrics"
	"construction-dashboard-api/internal/repository"
	"construction-dashboard-api/internal/response"
	"construction-dashboard-api/internal/schedule"
)

// ActivityService defines the interface for site activity business logic
type ActivityService interface {
	ListActivities(ctx context.Context, query *dto.ActivityFilterQuery) ([]schedule.ActivityRecord, schedule.Stats, error)
	CreateActivity(ctx context.Context, projectID uuid.UUID, req *dto.CreateActivityRequest) (*domain.Activity, error)
	UpdateActivity(ctx context.Context, activityID uuid.UUID, req *dto.UpdateActivityRequest) (*domain.Activity, error)
	DeleteActivity(ctx context.Context, activityID uuid.UUID) error
}

type activityServiceImpl struct {
	activityRepo repository.ActivityRepository
	projectRepo  repository.ProjectRepository
	phaseRepo    repository.PhaseRepository
	metrics      *metrics.Metrics
	logger       *zap.Logger
}

// NewActivityService creates a new instance of ActivityService
func NewActivityService(
	activityRepo repository.ActivityRepository,
	projectRepo repository.ProjectRepository,
	phaseRepo repository.PhaseRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) ActivityService {
	return &activityServiceImpl{
		activityRepo: activityRepo,
		projectRepo:  projectRepo,
		phaseRepo:    phaseRepo,
		metrics:      m,
		logger:       logger,
	}
}

// parseFilter translates the query params into a schedule.Filter. Malformed
// dates and IDs are validation errors, not silent wildcards.
func parseFilter(query *dto.ActivityFilterQuery) (schedule.Filter, error) {
	f := schedule.Filter{
		Status:   query.Status,
		Category: query.Category,
		Priority: query.Priority,
		Search:   query.Search,
	}
	if query.ProjectID != "" {
		id, err := uuid.Parse(query.ProjectID)
		if err != nil {
			return f, response.NewValidationError("Invalid project id", query.ProjectID)
		}
		f.ProjectID = id
	}
	if query.From != "" {
		from, err := time.Parse("2006-01-02", query.From)
		if err != nil {
			return f, response.NewValidationError("Invalid from date, expected YYYY-MM-DD", query.From)
		}
		f.From = &from
	}
	if query.To != "" {
		to, err := time.Parse("2006-01-02", query.To)
		if err != nil {
			return f, response.NewValidationError("Invalid to date, expected YYYY-MM-DD", query.To)
		}
		// inclusive upper bound
		to = to.Add(24*time.Hour - time.Nanosecond)
		f.To = &to
	}
	return f, nil
}

// ListActivities returns the flat cross-project activity list with project
// titles embedded, filtered and summarized in one pass.
func (s *activityServiceImpl) ListActivities(ctx context.Context, query *dto.ActivityFilterQuery) ([]schedule.ActivityRecord, schedule.Stats, error) {
	filter, err := parseFilter(query)
	if err != nil {
		return nil, schedule.Stats{}, err
	}

	var activities []domain.Activity
	if filter.ProjectID != uuid.Nil {
		activities, err = s.activityRepo.FindByProjectID(ctx, filter.ProjectID)
	} else {
		activities, err = s.activityRepo.FindAll(ctx)
	}
	if err != nil {
		return nil, schedule.Stats{}, response.NewAppError(response.ErrCodeInternal, "Failed to load activities", err.Error())
	}

	projectIDs := make([]uuid.UUID, 0, len(activities))
	seen := make(map[uuid.UUID]bool, len(activities))
	for _, a := range activities {
		if !seen[a.ProjectID] {
			seen[a.ProjectID] = true
			projectIDs = append(projectIDs, a.ProjectID)
		}
	}
	titles, err := s.projectRepo.TitlesByID(ctx, projectIDs)
	if err != nil {
		return nil, schedule.Stats{}, response.NewAppError(response.ErrCodeInternal, "Failed to load project titles", err.Error())
	}

	records := schedule.FilterActivities(
		schedule.ToRecords(activities, func(id uuid.UUID) string { return titles[id] }),
		filter,
	)
	return records, schedule.ComputeStats(records), nil
}

// CreateActivity creates an activity under a schedule phase or a daily log
func (s *activityServiceImpl) CreateActivity(ctx context.Context, projectID uuid.UUID, req *dto.CreateActivityRequest) (*domain.Activity, error) {
	if _, err := s.projectRepo.FindByID(ctx, projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Project not found", projectID.String())
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load project", err.Error())
	}
	if req.PhaseID != nil {
		phase, err := s.phaseRepo.FindByID(ctx, *req.PhaseID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, response.NewNotFoundError("Phase not found", req.PhaseID.String())
			}
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load phase", err.Error())
		}
		if phase.ProjectID != projectID {
			return nil, response.NewValidationError("Phase belongs to a different project", "")
		}
	}
	if req.StartTime != nil && req.EndTime != nil && !req.EndTime.After(*req.StartTime) {
		return nil, response.NewValidationError("End Date must be after Start Date", "")
	}

	status := domain.ActivityStatusPending
	if req.Status != "" {
		status = domain.NormalizeActivityStatus(req.Status)
		if !domain.ValidActivityStatus(status) {
			return nil, response.NewValidationError("Invalid activity status", req.Status)
		}
	}
	priority := domain.PriorityMedium
	if req.Priority != "" {
		priority = domain.ActivityPriority(req.Priority)
	}
	week := req.WeekNumber
	if week < 1 {
		week = 1
	}

	activity := &domain.Activity{
		ProjectID:   projectID,
		PhaseID:     req.PhaseID,
		WorkDate:    req.Date,
		Title:       req.Title,
		Description: req.Description,
		Contractor:  req.Contractor,
		Supervisor:  req.Supervisor,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Status:      status,
		Priority:    priority,
		Category:    domain.NormalizeActivityCategory(req.Category),
		Images:      datatypes.JSONSlice[string](req.Images),
		SitePhase:   domain.NormalizeSitePhase(req.SitePhase),
		WeekNumber:  week,
		Comments:    req.Comments,
	}
	if err := s.activityRepo.Create(ctx, activity); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create activity", err.Error())
	}

	s.metrics.IncrementActivityCreated()
	s.refreshPhaseProgress(ctx, activity.PhaseID)
	return activity, nil
}

// UpdateActivity applies a partial update to an activity
func (s *activityServiceImpl) UpdateActivity(ctx context.Context, activityID uuid.UUID, req *dto.UpdateActivityRequest) (*domain.Activity, error) {
	activity, err := s.activityRepo.FindByID(ctx, activityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Activity not found", activityID.String())
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load activity", err.Error())
	}

	if err := applyActivityUpdates(activity, req); err != nil {
		return nil, err
	}
	if err := s.activityRepo.Update(ctx, activity); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update activity", err.Error())
	}

	s.refreshPhaseProgress(ctx, activity.PhaseID)
	return activity, nil
}

// DeleteActivity removes an activity
func (s *activityServiceImpl) DeleteActivity(ctx context.Context, activityID uuid.UUID) error {
	activity, err := s.activityRepo.FindByID(ctx, activityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Activity not found", activityID.String())
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to load activity", err.Error())
	}
	if err := s.activityRepo.Delete(ctx, activityID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete activity", err.Error())
	}

	s.refreshPhaseProgress(ctx, activity.PhaseID)
	return nil
}

// applyActivityUpdates mutates the activity in place from the non-nil request
// fields. Shared with the daily progress service.
func applyActivityUpdates(activity *domain.Activity, req *dto.UpdateActivityRequest) error {
	if req.Title != nil {
		activity.Title = *req.Title
	}
	if req.Description != nil {
		activity.Description = *req.Description
	}
	if req.Contractor != nil {
		activity.Contractor = *req.Contractor
	}
	if req.Supervisor != nil {
		activity.Supervisor = *req.Supervisor
	}
	if req.StartTime != nil {
		activity.StartTime = req.StartTime
	}
	if req.EndTime != nil {
		activity.EndTime = req.EndTime
	}
	if req.Status != nil {
		status := domain.NormalizeActivityStatus(*req.Status)
		if !domain.ValidActivityStatus(status) {
			return response.NewValidationError("Invalid activity status", *req.Status)
		}
		activity.Status = status
		if status == domain.ActivityStatusCompleted {
			activity.Progress = 100
		}
	}
	if req.Priority != nil {
		activity.Priority = domain.ActivityPriority(*req.Priority)
	}
	if req.Category != nil {
		activity.Category = domain.NormalizeActivityCategory(*req.Category)
	}
	if req.Progress != nil {
		activity.Progress = *req.Progress
	}
	if req.Images != nil {
		activity.Images = datatypes.JSONSlice[string](req.Images)
	}
	if req.SitePhase != nil {
		activity.SitePhase = domain.NormalizeSitePhase(*req.SitePhase)
	}
	if req.WeekNumber != nil {
		week := *req.WeekNumber
		if week < 1 {
			week = 1
		}
		activity.WeekNumber = week
	}
	if req.Comments != nil {
		activity.Comments = *req.Comments
	}
	if activity.StartTime != nil && activity.EndTime != nil && !activity.EndTime.After(*activity.StartTime) {
		return response.NewValidationError("End Date must be after Start Date", "")
	}
	return nil
}

// refreshPhaseProgress recomputes the stored phase progress after an activity
// write. Failures only log; responses derive progress independently.
func (s *activityServiceImpl) refreshPhaseProgress(ctx context.Context, phaseID *uuid.UUID) {
	if phaseID == nil {
		return
	}
	phase, err := s.phaseRepo.FindByID(ctx, *phaseID)
	if err != nil {
		s.logger.Warn("failed to load phase for progress refresh", zap.Error(err))
		return
	}
	stats := schedule.ComputeStats(schedule.ToRecords(phase.Activities, nil))
	if err := s.phaseRepo.UpdateProgress(ctx, *phaseID, stats.Progress); err != nil {
		s.logger.Warn("failed to refresh phase progress", zap.Error(err))
	}
}
