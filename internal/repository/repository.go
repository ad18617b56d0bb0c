package repository

import (
	"context"
	"time"

	"clubreg-backend/internal/domain"
)

type ApplicationRepository interface {
	Create(ctx context.Context, app *domain.ClubApplication) error
	GetByID(ctx context.Context, id int64) (*domain.ClubApplication, error)
	List(ctx context.Context, filter domain.ApplicationFilter) ([]domain.ClubApplication, int32, error)

	// UpdateStatusIfPending atomically transitions an application out of
	// pending in a single conditional statement. It returns
	// domain.ErrConflictingReview when the row exists but is no longer
	// pending, and domain.ErrApplicationNotFound when it does not exist.
	UpdateStatusIfPending(ctx context.Context, id int64, status domain.ApplicationStatus, notes string, adminID int32, reviewedAt time.Time) (*domain.ClubApplication, error)

	Stats(ctx context.Context) (*domain.ApplicationStats, error)
}

// AuditLogRepository is append-only: entries are created and listed, never
// updated or deleted.
type AuditLogRepository interface {
	Create(ctx context.Context, entry *domain.AuditEntry) error
	ListByApplication(ctx context.Context, applicationID int64) ([]domain.AuditEntry, error)
	ListRecent(ctx context.Context, limit, offset int32) ([]domain.AuditEntry, int32, error)
}

type NotificationLogRepository interface {
	Create(ctx context.Context, rec *domain.NotificationRecord) error
	UpdateDelivery(ctx context.Context, id int64, status domain.NotificationStatus, attempts int32, lastError *string) error
	ListRetryable(ctx context.Context, limit int32) ([]domain.NotificationRecord, error)
	Stats(ctx context.Context, since *time.Time) (*domain.NotificationStats, error)
}

type AdminRepository interface {
	GetByID(ctx context.Context, id int32) (*domain.Admin, error)
}
