package jobs

import (
	"context"
	"time"

	"clubreg-backend/internal/logger"
	"clubreg-backend/internal/service"
)

// JobRunner coordinates scheduled background work.
type JobRunner struct {
	notifySvc service.NotificationService
}

func NewJobRunner(notifySvc service.NotificationService) *JobRunner {
	return &JobRunner{notifySvc: notifySvc}
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// RetryFailedNotifications re-attempts delivery of failed applicant
// notifications.
func (jr *JobRunner) RetryFailedNotifications() {
	jr.runWithRecovery("RetryFailedNotifications", func() {
		ctx := context.Background()

		retried, errs := jr.notifySvc.RetryFailedNotifications(ctx)
		for _, err := range errs {
			logger.Error("Notification retry failed", "error", err)
		}
		logger.Info("Notification retry pass finished", "retried", retried, "errors", len(errs))

		since := time.Now().Add(-24 * time.Hour)
		if stats, err := jr.notifySvc.GetStats(ctx, &since); err == nil {
			logger.Info("Notification delivery last 24h",
				"total", stats.Total,
				"sent", stats.Sent,
				"failed", stats.Failed,
				"pending", stats.Pending,
				"retrying", stats.Retrying)
		}
	})
}
