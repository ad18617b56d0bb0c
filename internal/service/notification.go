package service

import (
	"context"
	"fmt"
	"time"

	"clubreg-backend/internal/domain"
	"clubreg-backend/internal/logger"
	"clubreg-backend/internal/repository"
)

const retryBatchSize = 100

type notificationService struct {
	noteRepo repository.NotificationLogRepository
	appRepo  repository.ApplicationRepository
	emailSvc EmailService
}

func NewNotificationService(
	noteRepo repository.NotificationLogRepository,
	appRepo repository.ApplicationRepository,
	emailSvc EmailService,
) NotificationService {
	return &notificationService{
		noteRepo: noteRepo,
		appRepo:  appRepo,
		emailSvc: emailSvc,
	}
}

func (s *notificationService) SendApprovalNotification(ctx context.Context, app *domain.ClubApplication) error {
	return s.send(ctx, app, domain.NotificationKindApproval, "")
}

func (s *notificationService) SendRejectionNotification(ctx context.Context, app *domain.ClubApplication, reason string) error {
	return s.send(ctx, app, domain.NotificationKindRejection, reason)
}

// send records the delivery attempt durably before and after contacting the
// provider, so failures are visible to the retry job.
func (s *notificationService) send(ctx context.Context, app *domain.ClubApplication, kind domain.NotificationKind, reason string) error {
	rec := &domain.NotificationRecord{
		ApplicationID: app.ID,
		Kind:          kind,
		Recipient:     app.Email,
		Status:        domain.NotificationStatusPending,
	}
	if err := s.noteRepo.Create(ctx, rec); err != nil {
		return fmt.Errorf("failed to record notification: %w", err)
	}

	err := s.deliver(ctx, app.Email, app.ContactName, app.ClubName, kind, notesOf(app), reason)
	if err != nil {
		msg := err.Error()
		if uerr := s.noteRepo.UpdateDelivery(ctx, rec.ID, domain.NotificationStatusFailed, rec.Attempts+1, &msg); uerr != nil {
			logger.Error("Failed to update notification record", "id", rec.ID, "error", uerr)
		}
		return fmt.Errorf("notification delivery failed: %w", err)
	}

	return s.noteRepo.UpdateDelivery(ctx, rec.ID, domain.NotificationStatusSent, rec.Attempts+1, nil)
}

func (s *notificationService) deliver(ctx context.Context, email, contactName, clubName string, kind domain.NotificationKind, notes, reason string) error {
	switch kind {
	case domain.NotificationKindApproval:
		return s.emailSvc.SendApprovalEmail(ctx, email, contactName, clubName, notes)
	case domain.NotificationKindRejection:
		return s.emailSvc.SendRejectionEmail(ctx, email, contactName, clubName, reason)
	default:
		return fmt.Errorf("unknown notification kind: %s", kind)
	}
}

func notesOf(app *domain.ClubApplication) string {
	if app.AdminNotes == nil {
		return ""
	}
	return *app.AdminNotes
}

// RetryFailedNotifications re-attempts failed deliveries. Each record is
// re-read against the current application so the message reflects the
// authoritative decision.
func (s *notificationService) RetryFailedNotifications(ctx context.Context) (int32, []error) {
	recs, err := s.noteRepo.ListRetryable(ctx, retryBatchSize)
	if err != nil {
		return 0, []error{fmt.Errorf("failed to list retryable notifications: %w", err)}
	}

	var retried int32
	var errs []error
	for _, rec := range recs {
		if uerr := s.noteRepo.UpdateDelivery(ctx, rec.ID, domain.NotificationStatusRetrying, rec.Attempts, rec.LastError); uerr != nil {
			errs = append(errs, uerr)
			continue
		}

		app, err := s.appRepo.GetByID(ctx, rec.ApplicationID)
		if err != nil {
			msg := err.Error()
			_ = s.noteRepo.UpdateDelivery(ctx, rec.ID, domain.NotificationStatusFailed, rec.Attempts+1, &msg)
			errs = append(errs, fmt.Errorf("notification %d: %w", rec.ID, err))
			continue
		}

		if err := s.deliver(ctx, rec.Recipient, app.ContactName, app.ClubName, rec.Kind, notesOf(app), notesOf(app)); err != nil {
			msg := err.Error()
			_ = s.noteRepo.UpdateDelivery(ctx, rec.ID, domain.NotificationStatusFailed, rec.Attempts+1, &msg)
			errs = append(errs, fmt.Errorf("notification %d: %w", rec.ID, err))
			continue
		}

		if err := s.noteRepo.UpdateDelivery(ctx, rec.ID, domain.NotificationStatusSent, rec.Attempts+1, nil); err != nil {
			errs = append(errs, err)
			continue
		}
		retried++
	}

	return retried, errs
}

func (s *notificationService) GetStats(ctx context.Context, since *time.Time) (*domain.NotificationStats, error) {
	return s.noteRepo.Stats(ctx, since)
}
