package postgres

import (
	"context"
	"database/sql"
	"time"

	"clubreg-backend/internal/domain"
	"clubreg-backend/internal/repository"
)

type auditLogRepository struct {
	db *sql.DB
}

func NewAuditLogRepository(db *sql.DB) repository.AuditLogRepository {
	return &auditLogRepository{db: db}
}

// Create appends one audit entry. There is deliberately no Update or Delete
// on this table; the log is the sole source of history reconstruction.
func (r *auditLogRepository) Create(ctx context.Context, entry *domain.AuditEntry) error {
	details, err := domain.MarshalAuditDetails(entry.Details)
	if err != nil {
		return err
	}
	query := `INSERT INTO audit_log (application_id, admin_id, action, details, created_at)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`
	var raw sql.NullString
	if details != "" {
		raw = sql.NullString{String: details, Valid: true}
	}
	return r.db.QueryRowContext(ctx, query, entry.ApplicationID, entry.AdminID, entry.Action, raw, time.Now()).
		Scan(&entry.ID, &entry.CreatedAt)
}

func (r *auditLogRepository) scanEntries(rows *sql.Rows) ([]domain.AuditEntry, error) {
	var entries []domain.AuditEntry
	for rows.Next() {
		var e domain.AuditEntry
		var raw sql.NullString
		if err := rows.Scan(&e.ID, &e.ApplicationID, &e.AdminID, &e.Action, &raw, &e.CreatedAt); err != nil {
			return nil, err
		}
		if raw.Valid {
			details, err := domain.UnmarshalAuditDetails(e.Action, raw.String)
			if err != nil {
				return nil, err
			}
			e.Details = details
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *auditLogRepository) ListByApplication(ctx context.Context, applicationID int64) ([]domain.AuditEntry, error) {
	query := `SELECT id, application_id, admin_id, action, details, created_at
	          FROM audit_log WHERE application_id = $1 ORDER BY created_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query, applicationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.scanEntries(rows)
}

func (r *auditLogRepository) ListRecent(ctx context.Context, limit, offset int32) ([]domain.AuditEntry, int32, error) {
	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM audit_log`).Scan(&count); err != nil {
		return nil, 0, err
	}

	query := `SELECT id, application_id, admin_id, action, details, created_at
	          FROM audit_log ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	entries, err := r.scanEntries(rows)
	if err != nil {
		return nil, 0, err
	}
	return entries, count, nil
}
