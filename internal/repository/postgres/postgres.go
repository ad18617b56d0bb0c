package postgres

import (
	"database/sql"

	"clubreg-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.ApplicationRepository
	repository.AuditLogRepository
	repository.NotificationLogRepository
	repository.AdminRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                        db,
		ApplicationRepository:     NewApplicationRepository(db),
		AuditLogRepository:        NewAuditLogRepository(db),
		NotificationLogRepository: NewNotificationLogRepository(db),
		AdminRepository:           NewAdminRepository(db),
	}
}
