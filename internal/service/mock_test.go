package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"construction-dashboard-api/internal/domain"
	"construction-dashboard-api/internal/repository"
)

// MockProjectRepository is a mock implementation of ProjectRepository
type MockProjectRepository struct {
	CreateFunc          func(ctx context.Context, project *domain.Project) error
	FindByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	FindAllFunc         func(ctx context.Context) ([]*domain.Project, error)
	FindByClientIDFunc  func(ctx context.Context, clientID uuid.UUID) ([]*domain.Project, error)
	FindByManagerIDFunc func(ctx context.Context, managerID uuid.UUID) ([]*domain.Project, error)
	UpdateFunc          func(ctx context.Context, project *domain.Project) error
	UpdateStatusFunc    func(ctx context.Context, id uuid.UUID, status domain.ProjectStatus) error
	TitlesByIDFunc      func(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error)
}

func (m *MockProjectRepository) Create(ctx context.Context, project *domain.Project) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, project)
	}
	return nil
}

func (m *MockProjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockProjectRepository) FindAll(ctx context.Context) ([]*domain.Project, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockProjectRepository) FindByClientID(ctx context.Context, clientID uuid.UUID) ([]*domain.Project, error) {
	if m.FindByClientIDFunc != nil {
		return m.FindByClientIDFunc(ctx, clientID)
	}
	return nil, nil
}

func (m *MockProjectRepository) FindByManagerID(ctx context.Context, managerID uuid.UUID) ([]*domain.Project, error) {
	if m.FindByManagerIDFunc != nil {
		return m.FindByManagerIDFunc(ctx, managerID)
	}
	return nil, nil
}

func (m *MockProjectRepository) Update(ctx context.Context, project *domain.Project) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, project)
	}
	return nil
}

func (m *MockProjectRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ProjectStatus) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status)
	}
	return nil
}

func (m *MockProjectRepository) TitlesByID(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	if m.TitlesByIDFunc != nil {
		return m.TitlesByIDFunc(ctx, ids)
	}
	return map[uuid.UUID]string{}, nil
}

// MockPhaseRepository is a mock implementation of PhaseRepository
type MockPhaseRepository struct {
	CreateFunc          func(ctx context.Context, phase *domain.SchedulePhase) error
	FindByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.SchedulePhase, error)
	FindByProjectIDFunc func(ctx context.Context, projectID uuid.UUID) ([]*domain.SchedulePhase, error)
	UpdateFunc          func(ctx context.Context, phase *domain.SchedulePhase) error
	UpdateProgressFunc  func(ctx context.Context, id uuid.UUID, progress int) error
	DeleteFunc          func(ctx context.Context, id uuid.UUID) error
}

func (m *MockPhaseRepository) Create(ctx context.Context, phase *domain.SchedulePhase) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, phase)
	}
	return nil
}

func (m *MockPhaseRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.SchedulePhase, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockPhaseRepository) FindByProjectID(ctx context.Context, projectID uuid.UUID) ([]*domain.SchedulePhase, error) {
	if m.FindByProjectIDFunc != nil {
		return m.FindByProjectIDFunc(ctx, projectID)
	}
	return nil, nil
}

func (m *MockPhaseRepository) Update(ctx context.Context, phase *domain.SchedulePhase) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, phase)
	}
	return nil
}

func (m *MockPhaseRepository) UpdateProgress(ctx context.Context, id uuid.UUID, progress int) error {
	if m.UpdateProgressFunc != nil {
		return m.UpdateProgressFunc(ctx, id, progress)
	}
	return nil
}

func (m *MockPhaseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockActivityRepository is a mock implementation of ActivityRepository
type MockActivityRepository struct {
	CreateFunc                 func(ctx context.Context, activity *domain.Activity) error
	FindByIDFunc               func(ctx context.Context, id uuid.UUID) (*domain.Activity, error)
	FindByProjectIDFunc        func(ctx context.Context, projectID uuid.UUID) ([]domain.Activity, error)
	FindAllFunc                func(ctx context.Context) ([]domain.Activity, error)
	FindByProjectAndDateFunc   func(ctx context.Context, projectID uuid.UUID, date time.Time) ([]domain.Activity, error)
	UpdateFunc                 func(ctx context.Context, activity *domain.Activity) error
	UpdateFieldsFunc           func(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	DeleteFunc                 func(ctx context.Context, id uuid.UUID) error
	DeleteByProjectAndDateFunc func(ctx context.Context, projectID uuid.UUID, date time.Time) error
	FindDelayedCandidatesFunc  func(ctx context.Context, before time.Time) ([]domain.Activity, error)
}

func (m *MockActivityRepository) Create(ctx context.Context, activity *domain.Activity) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, activity)
	}
	return nil
}

func (m *MockActivityRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Activity, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockActivityRepository) FindByProjectID(ctx context.Context, projectID uuid.UUID) ([]domain.Activity, error) {
	if m.FindByProjectIDFunc != nil {
		return m.FindByProjectIDFunc(ctx, projectID)
	}
	return nil, nil
}

func (m *MockActivityRepository) FindAll(ctx context.Context) ([]domain.Activity, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockActivityRepository) FindByProjectAndDate(ctx context.Context, projectID uuid.UUID, date time.Time) ([]domain.Activity, error) {
	if m.FindByProjectAndDateFunc != nil {
		return m.FindByProjectAndDateFunc(ctx, projectID, date)
	}
	return nil, nil
}

func (m *MockActivityRepository) Update(ctx context.Context, activity *domain.Activity) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, activity)
	}
	return nil
}

func (m *MockActivityRepository) UpdateFields(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	if m.UpdateFieldsFunc != nil {
		return m.UpdateFieldsFunc(ctx, id, updates)
	}
	return nil
}

func (m *MockActivityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockActivityRepository) DeleteByProjectAndDate(ctx context.Context, projectID uuid.UUID, date time.Time) error {
	if m.DeleteByProjectAndDateFunc != nil {
		return m.DeleteByProjectAndDateFunc(ctx, projectID, date)
	}
	return nil
}

func (m *MockActivityRepository) FindDelayedCandidates(ctx context.Context, before time.Time) ([]domain.Activity, error) {
	if m.FindDelayedCandidatesFunc != nil {
		return m.FindDelayedCandidatesFunc(ctx, before)
	}
	return nil, nil
}

// MockMilestoneRepository is a mock implementation of MilestoneRepository
type MockMilestoneRepository struct {
	CreateFunc          func(ctx context.Context, milestone *domain.Milestone) error
	FindByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.Milestone, error)
	FindByProjectIDFunc func(ctx context.Context, projectID uuid.UUID) ([]*domain.Milestone, error)
	UpdateFunc          func(ctx context.Context, milestone *domain.Milestone) error
	DeleteFunc          func(ctx context.Context, id uuid.UUID) error
	MarkOverdueFunc     func(ctx context.Context, before time.Time) (int64, error)
}

func (m *MockMilestoneRepository) Create(ctx context.Context, milestone *domain.Milestone) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, milestone)
	}
	return nil
}

func (m *MockMilestoneRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Milestone, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockMilestoneRepository) FindByProjectID(ctx context.Context, projectID uuid.UUID) ([]*domain.Milestone, error) {
	if m.FindByProjectIDFunc != nil {
		return m.FindByProjectIDFunc(ctx, projectID)
	}
	return nil, nil
}

func (m *MockMilestoneRepository) Update(ctx context.Context, milestone *domain.Milestone) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, milestone)
	}
	return nil
}

func (m *MockMilestoneRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockMilestoneRepository) MarkOverdue(ctx context.Context, before time.Time) (int64, error) {
	if m.MarkOverdueFunc != nil {
		return m.MarkOverdueFunc(ctx, before)
	}
	return 0, nil
}

// MockEventRepository is a mock implementation of EventRepository
type MockEventRepository struct {
	CreateFunc      func(ctx context.Context, event *domain.CalendarEvent) error
	FindByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.CalendarEvent, error)
	FindInRangeFunc func(ctx context.Context, projectID *uuid.UUID, from, to time.Time, visibleOnly bool) ([]*domain.CalendarEvent, error)
	UpdateFunc      func(ctx context.Context, event *domain.CalendarEvent) error
	DeleteFunc      func(ctx context.Context, id uuid.UUID) error
}

func (m *MockEventRepository) Create(ctx context.Context, event *domain.CalendarEvent) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, event)
	}
	return nil
}

func (m *MockEventRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.CalendarEvent, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockEventRepository) FindInRange(ctx context.Context, projectID *uuid.UUID, from, to time.Time, visibleOnly bool) ([]*domain.CalendarEvent, error) {
	if m.FindInRangeFunc != nil {
		return m.FindInRangeFunc(ctx, projectID, from, to, visibleOnly)
	}
	return nil, nil
}

func (m *MockEventRepository) Update(ctx context.Context, event *domain.CalendarEvent) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, event)
	}
	return nil
}

func (m *MockEventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockFileRepository is a mock implementation of FileRepository
type MockFileRepository struct {
	CreateFunc                 func(ctx context.Context, file *domain.ProjectFile) error
	FindByIDFunc               func(ctx context.Context, id uuid.UUID) (*domain.ProjectFile, error)
	FindByProjectIDFunc        func(ctx context.Context, projectID uuid.UUID, publicOnly bool) ([]*domain.ProjectFile, error)
	FindAllFunc                func(ctx context.Context, publicOnly bool) ([]*domain.ProjectFile, error)
	StatsByProjectFunc         func(ctx context.Context, projectID uuid.UUID, publicOnly bool) (*repository.FileStats, error)
	UpdateFunc                 func(ctx context.Context, file *domain.ProjectFile) error
	IncrementDownloadCountFunc func(ctx context.Context, id uuid.UUID) error
	DeleteFunc                 func(ctx context.Context, id uuid.UUID) error
}

func (m *MockFileRepository) Create(ctx context.Context, file *domain.ProjectFile) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, file)
	}
	return nil
}

func (m *MockFileRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.ProjectFile, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockFileRepository) FindByProjectID(ctx context.Context, projectID uuid.UUID, publicOnly bool) ([]*domain.ProjectFile, error) {
	if m.FindByProjectIDFunc != nil {
		return m.FindByProjectIDFunc(ctx, projectID, publicOnly)
	}
	return nil, nil
}

func (m *MockFileRepository) FindAll(ctx context.Context, publicOnly bool) ([]*domain.ProjectFile, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx, publicOnly)
	}
	return nil, nil
}

func (m *MockFileRepository) StatsByProject(ctx context.Context, projectID uuid.UUID, publicOnly bool) (*repository.FileStats, error) {
	if m.StatsByProjectFunc != nil {
		return m.StatsByProjectFunc(ctx, projectID, publicOnly)
	}
	return &repository.FileStats{CountByCategory: map[string]int64{}}, nil
}

func (m *MockFileRepository) Update(ctx context.Context, file *domain.ProjectFile) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, file)
	}
	return nil
}

func (m *MockFileRepository) IncrementDownloadCount(ctx context.Context, id uuid.UUID) error {
	if m.IncrementDownloadCountFunc != nil {
		return m.IncrementDownloadCountFunc(ctx, id)
	}
	return nil
}

func (m *MockFileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockDailyNoteRepository is a mock implementation of DailyNoteRepository
type MockDailyNoteRepository struct {
	UpsertFunc                 func(ctx context.Context, note *domain.DailyNote) error
	FindByProjectAndDateFunc   func(ctx context.Context, projectID uuid.UUID, date time.Time) (*domain.DailyNote, error)
	DeleteByProjectAndDateFunc func(ctx context.Context, projectID uuid.UUID, date time.Time) error
}

func (m *MockDailyNoteRepository) Upsert(ctx context.Context, note *domain.DailyNote) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, note)
	}
	return nil
}

func (m *MockDailyNoteRepository) FindByProjectAndDate(ctx context.Context, projectID uuid.UUID, date time.Time) (*domain.DailyNote, error) {
	if m.FindByProjectAndDateFunc != nil {
		return m.FindByProjectAndDateFunc(ctx, projectID, date)
	}
	return nil, nil
}

func (m *MockDailyNoteRepository) DeleteByProjectAndDate(ctx context.Context, projectID uuid.UUID, date time.Time) error {
	if m.DeleteByProjectAndDateFunc != nil {
		return m.DeleteByProjectAndDateFunc(ctx, projectID, date)
	}
	return nil
}
