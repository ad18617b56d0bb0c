package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"clubreg-backend/internal/domain"
	"clubreg-backend/internal/repository"
)

type adminRepository struct {
	db *sql.DB
}

func NewAdminRepository(db *sql.DB) repository.AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) GetByID(ctx context.Context, id int32) (*domain.Admin, error) {
	admin := &domain.Admin{}
	query := `SELECT id, name, email, is_admin FROM admins WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&admin.ID, &admin.Name, &admin.Email, &admin.IsAdmin)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("admin %d not found", id)
	}
	if err != nil {
		return nil, err
	}
	return admin, nil
}
