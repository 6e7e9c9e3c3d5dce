package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"construction-dashboard-api/internal/cache"
	"construction-dashboard-api/internal/domain"
	"construction-dashboard-api/internal/dto"
	"construction-dashboard-api/internal/repository"
	"construction-dashboard-api/internal/response"
	"construction-dashboard-api/internal/schedule"
)

// DailyService defines the interface for the daily site progress log
type DailyService interface {
	GetDaily(ctx context.Context, projectID uuid.UUID, date time.Time) (*dto.DailyProgressResponse, error)
	AddActivity(ctx context.Context, projectID uuid.UUID, date time.Time, req *dto.CreateActivityRequest) (*dto.DailyProgressResponse, error)
	UpdateActivity(ctx context.Context, req *dto.UpdateDailyActivityRequest) (*dto.DailyProgressResponse, error)
	RemoveActivity(ctx context.Context, projectID uuid.UUID, date time.Time, activityID uuid.UUID) (*dto.DailyProgressResponse, error)
	UpsertNote(ctx context.Context, projectID uuid.UUID, date time.Time, req *dto.UpsertDailyNoteRequest) (*dto.DailyProgressResponse, error)
	DeleteDay(ctx context.Context, projectID uuid.UUID, date time.Time) error
}

type dailyServiceImpl struct {
	activityRepo  repository.ActivityRepository
	dailyNoteRepo repository.DailyNoteRepository
	projectRepo   repository.ProjectRepository
	activities    ActivityService
	cache         *cache.DailyCache
	logger        *zap.Logger
}

// NewDailyService creates a new instance of DailyService
func NewDailyService(
	activityRepo repository.ActivityRepository,
	dailyNoteRepo repository.DailyNoteRepository,
	projectRepo repository.ProjectRepository,
	activities ActivityService,
	dailyCache *cache.DailyCache,
	logger *zap.Logger,
) DailyService {
	return &dailyServiceImpl{
		activityRepo:  activityRepo,
		dailyNoteRepo: dailyNoteRepo,
		projectRepo:   projectRepo,
		activities:    activities,
		cache:         dailyCache,
		logger:        logger,
	}
}

// GetDaily returns the snapshot for one project and date. Cached snapshots are
// served when present; the summary is always the one computed at build time
// from the activity rows, never a stored aggregate.
func (s *dailyServiceImpl) GetDaily(ctx context.Context, projectID uuid.UUID, date time.Time) (*dto.DailyProgressResponse, error) {
	var cached dto.DailyProgressResponse
	if s.cache.Get(ctx, projectID, date, &cached) {
		return &cached, nil
	}

	if _, err := s.projectRepo.FindByID(ctx, projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Project not found", projectID.String())
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load project", err.Error())
	}

	snapshot, err := s.buildSnapshot(ctx, projectID, date)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, projectID, date, snapshot)
	return snapshot, nil
}

// AddActivity records a new activity in the project's log for one date
func (s *dailyServiceImpl) AddActivity(ctx context.Context, projectID uuid.UUID, date time.Time, req *dto.CreateActivityRequest) (*dto.DailyProgressResponse, error) {
	req.Date = &date
	req.PhaseID = nil
	if _, err := s.activities.CreateActivity(ctx, projectID, req); err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, projectID, date)
	return s.buildSnapshot(ctx, projectID, date)
}

// UpdateActivity patches one activity inside a daily snapshot and returns the
// rebuilt snapshot
func (s *dailyServiceImpl) UpdateActivity(ctx context.Context, req *dto.UpdateDailyActivityRequest) (*dto.DailyProgressResponse, error) {
	activity, err := s.activityRepo.FindByID(ctx, req.ActivityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Activity not found", req.ActivityID.String())
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load activity", err.Error())
	}
	if activity.ProjectID != req.ProjectID {
		return nil, response.NewValidationError("Activity belongs to a different project", "")
	}

	if err := applyActivityUpdates(activity, &req.Updates); err != nil {
		return nil, err
	}
	if err := s.activityRepo.Update(ctx, activity); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update activity", err.Error())
	}

	s.cache.Invalidate(ctx, req.ProjectID, req.Date)
	return s.buildSnapshot(ctx, req.ProjectID, req.Date)
}

// RemoveActivity deletes one activity from a daily snapshot
func (s *dailyServiceImpl) RemoveActivity(ctx context.Context, projectID uuid.UUID, date time.Time, activityID uuid.UUID) (*dto.DailyProgressResponse, error) {
	activity, err := s.activityRepo.FindByID(ctx, activityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Activity not found", activityID.String())
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load activity", err.Error())
	}
	if activity.ProjectID != projectID {
		return nil, response.NewValidationError("Activity belongs to a different project", "")
	}
	if err := s.activityRepo.Delete(ctx, activityID); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to delete activity", err.Error())
	}

	s.cache.Invalidate(ctx, projectID, date)
	return s.buildSnapshot(ctx, projectID, date)
}

// UpsertNote records the site conditions for one date
func (s *dailyServiceImpl) UpsertNote(ctx context.Context, projectID uuid.UUID, date time.Time, req *dto.UpsertDailyNoteRequest) (*dto.DailyProgressResponse, error) {
	if _, err := s.projectRepo.FindByID(ctx, projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Project not found", projectID.String())
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load project", err.Error())
	}

	note := &domain.DailyNote{
		ProjectID: projectID,
		WorkDate:  date,
		CrewSize:  req.CrewSize,
		Weather:   req.Weather,
		Notes:     req.Notes,
	}
	if err := s.dailyNoteRepo.Upsert(ctx, note); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to save daily note", err.Error())
	}

	s.cache.Invalidate(ctx, projectID, date)
	return s.buildSnapshot(ctx, projectID, date)
}

// DeleteDay removes the whole snapshot for one date: every activity plus the note
func (s *dailyServiceImpl) DeleteDay(ctx context.Context, projectID uuid.UUID, date time.Time) error {
	if err := s.activityRepo.DeleteByProjectAndDate(ctx, projectID, date); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete daily activities", err.Error())
	}
	if err := s.dailyNoteRepo.DeleteByProjectAndDate(ctx, projectID, date); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete daily note", err.Error())
	}

	s.cache.Invalidate(ctx, projectID, date)
	s.logger.Info("daily snapshot deleted",
		zap.String("project_id", projectID.String()),
		zap.String("date", date.Format("2006-01-02")),
	)
	return nil
}

func (s *dailyServiceImpl) buildSnapshot(ctx context.Context, projectID uuid.UUID, date time.Time) (*dto.DailyProgressResponse, error) {
	activities, err := s.activityRepo.FindByProjectAndDate(ctx, projectID, date)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load daily activities", err.Error())
	}

	records := schedule.ToRecords(activities, nil)
	snapshot := &dto.DailyProgressResponse{
		ProjectID:  projectID,
		Date:       date.UTC().Format("2006-01-02"),
		Activities: records,
		Summary:    schedule.ComputeStats(records),
	}

	note, err := s.dailyNoteRepo.FindByProjectAndDate(ctx, projectID, date)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load daily note", err.Error())
	}
	if note != nil {
		snapshot.Note = &dto.DailyNoteResponse{
			CrewSize: note.CrewSize,
			Weather:  note.Weather,
			Notes:    note.Notes,
		}
	}
	return snapshot, nil
}
