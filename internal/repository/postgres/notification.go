package postgres

import (
	"context"
	"database/sql"
	"time"

	"clubreg-backend/internal/domain"
	"clubreg-backend/internal/repository"
)

type notificationLogRepository struct {
	db *sql.DB
}

func NewNotificationLogRepository(db *sql.DB) repository.NotificationLogRepository {
	return &notificationLogRepository{db: db}
}

func (r *notificationLogRepository) Create(ctx context.Context, rec *domain.NotificationRecord) error {
	query := `INSERT INTO notification_log (application_id, kind, recipient, status, attempts, last_error, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $7) RETURNING id, created_at, updated_at`
	if rec.Status == "" {
		rec.Status = domain.NotificationStatusPending
	}
	return r.db.QueryRowContext(ctx, query, rec.ApplicationID, rec.Kind, rec.Recipient, rec.Status, rec.Attempts, rec.LastError, time.Now()).
		Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
}

func (r *notificationLogRepository) UpdateDelivery(ctx context.Context, id int64, status domain.NotificationStatus, attempts int32, lastError *string) error {
	query := `UPDATE notification_log SET status = $1, attempts = $2, last_error = $3, updated_at = $4 WHERE id = $5`
	_, err := r.db.ExecContext(ctx, query, status, attempts, lastError, time.Now(), id)
	return err
}

func (r *notificationLogRepository) ListRetryable(ctx context.Context, limit int32) ([]domain.NotificationRecord, error) {
	query := `SELECT id, application_id, kind, recipient, status, attempts, last_error, created_at, updated_at
	          FROM notification_log WHERE status IN ('failed', 'retrying') ORDER BY updated_at ASC LIMIT $1`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []domain.NotificationRecord
	for rows.Next() {
		var rec domain.NotificationRecord
		if err := rows.Scan(&rec.ID, &rec.ApplicationID, &rec.Kind, &rec.Recipient, &rec.Status, &rec.Attempts, &rec.LastError, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

func (r *notificationLogRepository) Stats(ctx context.Context, since *time.Time) (*domain.NotificationStats, error) {
	stats := &domain.NotificationStats{}
	query := `SELECT
	            count(*),
	            count(*) FILTER (WHERE status = 'sent'),
	            count(*) FILTER (WHERE status = 'failed'),
	            count(*) FILTER (WHERE status = 'pending'),
	            count(*) FILTER (WHERE status = 'retrying')
	          FROM notification_log`
	args := []interface{}{}
	if since != nil {
		query += ` WHERE created_at >= $1`
		args = append(args, *since)
	}
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&stats.Total, &stats.Sent, &stats.Failed, &stats.Pending, &stats.Retrying)
	if err != nil {
		return nil, err
	}
	return stats, nil
}
