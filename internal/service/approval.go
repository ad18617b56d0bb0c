package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"clubreg-backend/internal/domain"
	"clubreg-backend/internal/logger"
	"clubreg-backend/internal/repository"
)

const maxReasonLength = 1000

// notificationTimeout bounds the notification round trip so a slow provider
// cannot stall the transition response.
const notificationTimeout = 10 * time.Second

type approvalService struct {
	appRepo   repository.ApplicationRepository
	auditRepo repository.AuditLogRepository
	adminRepo repository.AdminRepository
	notifySvc NotificationService
}

func NewApprovalService(
	appRepo repository.ApplicationRepository,
	auditRepo repository.AuditLogRepository,
	adminRepo repository.AdminRepository,
	notifySvc NotificationService,
) ApprovalService {
	return &approvalService{
		appRepo:   appRepo,
		auditRepo: auditRepo,
		adminRepo: adminRepo,
		notifySvc: notifySvc,
	}
}

// requireAdmin re-verifies the admin role at write time, independent of the
// transport-layer guard, so a revoked admin cannot slip a mutation through a
// stale session.
func (s *approvalService) requireAdmin(ctx context.Context, adminID int32) error {
	admin, err := s.adminRepo.GetByID(ctx, adminID)
	if err != nil {
		return fmt.Errorf("failed to resolve admin %d: %w", adminID, err)
	}
	if !admin.IsAdmin {
		return domain.ErrNotAdmin
	}
	return nil
}

func (s *approvalService) Approve(ctx context.Context, clubID int64, adminID int32, notes string) (*domain.ClubApplication, error) {
	if err := s.requireAdmin(ctx, adminID); err != nil {
		return nil, err
	}

	app, err := s.appRepo.UpdateStatusIfPending(ctx, clubID, domain.ApplicationStatusApproved, notes, adminID, time.Now())
	if err != nil {
		return nil, err
	}

	s.appendAudit(ctx, &domain.AuditEntry{
		ApplicationID: &app.ID,
		AdminID:       adminID,
		Action:        domain.AuditActionApproved,
		Details:       domain.NewApprovalDetails(app.ClubName, notes),
	})

	s.notify(app, func(nctx context.Context) error {
		return s.notifySvc.SendApprovalNotification(nctx, app)
	})

	return app, nil
}

func (s *approvalService) Reject(ctx context.Context, clubID int64, adminID int32, reason string) (*domain.ClubApplication, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, domain.NewValidationError("reason", "a rejection reason is required")
	}
	if len(reason) > maxReasonLength {
		return nil, domain.NewValidationError("reason", fmt.Sprintf("rejection reason cannot exceed %d characters", maxReasonLength))
	}

	if err := s.requireAdmin(ctx, adminID); err != nil {
		return nil, err
	}

	app, err := s.appRepo.UpdateStatusIfPending(ctx, clubID, domain.ApplicationStatusRejected, reason, adminID, time.Now())
	if err != nil {
		return nil, err
	}

	s.appendAudit(ctx, &domain.AuditEntry{
		ApplicationID: &app.ID,
		AdminID:       adminID,
		Action:        domain.AuditActionRejected,
		Details:       domain.NewRejectionDetails(app.ClubName, reason),
	})

	s.notify(app, func(nctx context.Context) error {
		return s.notifySvc.SendRejectionNotification(nctx, app, reason)
	})

	return app, nil
}

// appendAudit records the transition. The status write has already been
// committed at this point; an audit failure is logged but never rolls the
// decision back.
func (s *approvalService) appendAudit(ctx context.Context, entry *domain.AuditEntry) {
	if err := s.auditRepo.Create(ctx, entry); err != nil {
		logger.Error("Failed to append audit entry",
			"application_id", entry.ApplicationID,
			"admin_id", entry.AdminID,
			"action", entry.Action,
			"error", err)
	}
}

// notify dispatches the applicant notification under its own bounded
// context. Delivery problems are the notification log's concern; they never
// fail the transition.
func (s *approvalService) notify(app *domain.ClubApplication, send func(context.Context) error) {
	nctx, cancel := context.WithTimeout(context.Background(), notificationTimeout)
	defer cancel()
	if err := send(nctx); err != nil {
		logger.Warn("Applicant notification failed",
			"application_id", app.ID,
			"email", app.Email,
			"error", err)
	}
}
