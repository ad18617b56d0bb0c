package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"

	"clubreg-backend/internal/config"
	"clubreg-backend/internal/jobs"
	"clubreg-backend/internal/logger"
)

// Scheduler manages cron job scheduling
type Scheduler struct {
	cron *cron.Cron
	jobs *jobs.JobRunner
}

// NewScheduler creates a new scheduler with the provided job runner
func NewScheduler(jobRunner *jobs.JobRunner, cfg config.SchedulerConfig) *Scheduler {
	// Create cron with UTC timezone and seconds precision
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithSeconds(),
	)

	s := &Scheduler{
		cron: c,
		jobs: jobRunner,
	}

	if _, err := c.AddFunc(cfg.RetryFailedNotifications, jobRunner.RetryFailedNotifications); err != nil {
		logger.Error("Failed to register RetryFailedNotifications job", "error", err)
	}

	return s
}

// Start begins running scheduled jobs
func (s *Scheduler) Start() {
	logger.Info("Starting scheduler")
	s.cron.Start()
}

// Stop halts the scheduler, waiting for running jobs to finish
func (s *Scheduler) Stop() {
	logger.Info("Stopping scheduler")
	ctx := s.cron.Stop()
	<-ctx.Done()
}
