package service

import (
	"context"
	"time"

	"clubreg-backend/internal/domain"
)

// ApplicationService is the read/submission surface over club applications.
type ApplicationService interface {
	Submit(ctx context.Context, app *domain.ClubApplication) error
	GetApplication(ctx context.Context, id int64) (*domain.ClubApplication, []domain.AuditEntry, *domain.Admin, error)
	ListApplications(ctx context.Context, filter domain.ApplicationFilter) ([]domain.ClubApplication, int32, error)
	ListAuditTrail(ctx context.Context, limit, offset int32) ([]domain.AuditEntry, int32, error)
	GetStats(ctx context.Context) (*domain.ApplicationStats, error)
}

// ApprovalService enforces the pending → approved/rejected state machine,
// writes the audit entry and triggers the applicant notification.
type ApprovalService interface {
	Approve(ctx context.Context, clubID int64, adminID int32, notes string) (*domain.ClubApplication, error)
	Reject(ctx context.Context, clubID int64, adminID int32, reason string) (*domain.ClubApplication, error)
}

// BulkService sequences per-item approvals with failure isolation.
type BulkService interface {
	BulkApprove(ctx context.Context, clubIDs []int64, adminID int32, notes string) (*domain.BulkResult, error)
}

// NotificationService keeps the durable delivery log around EmailService.
// Delivery failures never propagate to the caller as transition failures.
type NotificationService interface {
	SendApprovalNotification(ctx context.Context, app *domain.ClubApplication) error
	SendRejectionNotification(ctx context.Context, app *domain.ClubApplication, reason string) error
	RetryFailedNotifications(ctx context.Context) (int32, []error)
	GetStats(ctx context.Context, since *time.Time) (*domain.NotificationStats, error)
}

type EmailService interface {
	SendApprovalEmail(ctx context.Context, email, contactName, clubName, notes string) error
	SendRejectionEmail(ctx context.Context, email, contactName, clubName, reason string) error
}
