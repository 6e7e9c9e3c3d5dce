// Package job runs the periodic background sweeps: flagging overdue
// milestones and marking past-due activities delayed.
package job

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"construction-dashboard-api/internal/domain"
	"construction-dashboard-api/internal/repository"
)

const sweepTimeout = 2 * time.Minute

// Scheduler owns the cron runner and the sweep jobs
type Scheduler struct {
	cron          *cron.Cron
	milestoneRepo repository.MilestoneRepository
	activityRepo  repository.ActivityRepository
	logger        *zap.Logger
}

// NewScheduler creates a new Scheduler
func NewScheduler(milestoneRepo repository.MilestoneRepository, activityRepo repository.ActivityRepository, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		cron:          cron.New(),
		milestoneRepo: milestoneRepo,
		activityRepo:  activityRepo,
		logger:        logger,
	}
}

// Start registers the sweeps and starts the cron runner. Both sweeps run once
// immediately so a restarted service does not wait an hour to catch up.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc("@hourly", s.SweepOverdueMilestones); err != nil {
		return err
	}
	if _, err := s.cron.AddFunc("@hourly", s.SweepDelayedActivities); err != nil {
		return err
	}

	go s.SweepOverdueMilestones()
	go s.SweepDelayedActivities()

	s.cron.Start()
	s.logger.Info("background scheduler started")
	return nil
}

// Stop stops the cron runner and waits for running jobs to finish
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("background scheduler stopped")
}

// SweepOverdueMilestones flags every non-completed milestone whose due date
// has passed
func (s *Scheduler) SweepOverdueMilestones() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	count, err := s.milestoneRepo.MarkOverdue(ctx, time.Now().UTC())
	if err != nil {
		s.logger.Error("overdue milestone sweep failed", zap.Error(err))
		return
	}
	if count > 0 {
		s.logger.Info("milestones marked overdue", zap.Int64("count", count))
	}
}

// SweepDelayedActivities marks activities delayed when their scheduled end
// time has passed without completion
func (s *Scheduler) SweepDelayedActivities() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	candidates, err := s.activityRepo.FindDelayedCandidates(ctx, time.Now().UTC())
	if err != nil {
		s.logger.Error("delayed activity sweep failed", zap.Error(err))
		return
	}

	var marked int
	for _, a := range candidates {
		updates := map[string]interface{}{"status": domain.ActivityStatusDelayed}
		if err := s.activityRepo.UpdateFields(ctx, a.ID, updates); err != nil {
			s.logger.Warn("failed to mark activity delayed",
				zap.String("activity_id", a.ID.String()),
				zap.Error(err),
			)
			continue
		}
		marked++
	}
	if marked > 0 {
		s.logger.Info("activities marked delayed", zap.Int("count", marked))
	}
}
