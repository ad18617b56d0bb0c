package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"clubreg-backend/internal/domain"
	"clubreg-backend/internal/repository"

	"github.com/lib/pq"
)

type applicationRepository struct {
	db *sql.DB
}

func NewApplicationRepository(db *sql.DB) repository.ApplicationRepository {
	return &applicationRepository{db: db}
}

const applicationColumns = `id, club_name, contact_name, email, phone, location, COALESCE(description, ''), sport_categories, status, admin_notes, reviewed_by, reviewed_at, created_at, updated_at`

func scanApplication(row interface{ Scan(...any) error }) (*domain.ClubApplication, error) {
	app := &domain.ClubApplication{}
	err := row.Scan(&app.ID, &app.ClubName, &app.ContactName, &app.Email, &app.Phone, &app.Location, &app.Description, pq.Array(&app.SportCategories), &app.Status, &app.AdminNotes, &app.ReviewedBy, &app.ReviewedAt, &app.CreatedAt, &app.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return app, nil
}

func (r *applicationRepository) Create(ctx context.Context, app *domain.ClubApplication) error {
	query := `INSERT INTO club_applications (club_name, contact_name, email, phone, location, description, sport_categories, status, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9) RETURNING id, created_at, updated_at`
	if app.Status == "" {
		app.Status = domain.ApplicationStatusPending
	}
	return r.db.QueryRowContext(ctx, query, app.ClubName, app.ContactName, app.Email, app.Phone, app.Location, app.Description, pq.Array(app.SportCategories), app.Status, time.Now()).
		Scan(&app.ID, &app.CreatedAt, &app.UpdatedAt)
}

func (r *applicationRepository) GetByID(ctx context.Context, id int64) (*domain.ClubApplication, error) {
	query := `SELECT ` + applicationColumns + ` FROM club_applications WHERE id = $1`
	app, err := scanApplication(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, domain.ErrApplicationNotFound
	}
	if err != nil {
		return nil, err
	}
	return app, nil
}

// sortColumns whitelists the ORDER BY targets so filter input never reaches
// the statement text unescaped.
var sortColumns = map[string]string{
	domain.SortByName:      "club_name",
	domain.SortByCreatedAt: "created_at",
	domain.SortByStatus:    "status",
	domain.SortByLocation:  "location",
}

func (r *applicationRepository) List(ctx context.Context, filter domain.ApplicationFilter) ([]domain.ClubApplication, int32, error) {
	filter.Normalize()

	where := ` WHERE 1=1`
	args := []interface{}{}
	argIdx := 1

	if filter.Status != domain.StatusAll {
		where += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, filter.Status)
		argIdx++
	}
	if filter.Search != "" {
		where += fmt.Sprintf(" AND (club_name ILIKE $%d OR email ILIKE $%d OR description ILIKE $%d)", argIdx, argIdx, argIdx)
		args = append(args, "%"+filter.Search+"%")
		argIdx++
	}
	if filter.Location != "" {
		where += fmt.Sprintf(" AND location ILIKE $%d", argIdx)
		args = append(args, "%"+filter.Location+"%")
		argIdx++
	}
	if filter.CreatedFrom != nil {
		where += fmt.Sprintf(" AND created_at >= $%d", argIdx)
		args = append(args, *filter.CreatedFrom)
		argIdx++
	}
	if filter.CreatedTo != nil {
		where += fmt.Sprintf(" AND created_at <= $%d", argIdx)
		args = append(args, *filter.CreatedTo)
		argIdx++
	}

	var count int32
	countQuery := `SELECT count(*) FROM club_applications` + where
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	sortCol, ok := sortColumns[filter.SortBy]
	if !ok {
		sortCol = "created_at"
	}
	order := "DESC"
	if filter.SortOrder == domain.SortAsc {
		order = "ASC"
	}

	query := `SELECT ` + applicationColumns + ` FROM club_applications` + where +
		fmt.Sprintf(" ORDER BY %s %s LIMIT $%d OFFSET $%d", sortCol, order, argIdx, argIdx+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var apps []domain.ClubApplication
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, 0, err
		}
		apps = append(apps, *app)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return apps, count, nil
}

func (r *applicationRepository) UpdateStatusIfPending(ctx context.Context, id int64, status domain.ApplicationStatus, notes string, adminID int32, reviewedAt time.Time) (*domain.ClubApplication, error) {
	query := `UPDATE club_applications
	          SET status = $1, admin_notes = $2, reviewed_by = $3, reviewed_at = $4, updated_at = $4
	          WHERE id = $5 AND status = 'pending'
	          RETURNING ` + applicationColumns
	app, err := scanApplication(r.db.QueryRowContext(ctx, query, status, notes, adminID, reviewedAt, id))
	if err == sql.ErrNoRows {
		// Either the row is gone or another reviewer already decided it.
		if _, probeErr := r.GetByID(ctx, id); probeErr != nil {
			return nil, probeErr
		}
		return nil, domain.ErrConflictingReview
	}
	if err != nil {
		return nil, err
	}
	return app, nil
}

func (r *applicationRepository) Stats(ctx context.Context) (*domain.ApplicationStats, error) {
	stats := &domain.ApplicationStats{}
	query := `SELECT
	            count(*) FILTER (WHERE status = 'pending'),
	            count(*) FILTER (WHERE status = 'approved'),
	            count(*) FILTER (WHERE status = 'rejected'),
	            count(*)
	          FROM club_applications`
	err := r.db.QueryRowContext(ctx, query).Scan(&stats.Pending, &stats.Approved, &stats.Rejected, &stats.Total)
	if err != nil {
		return nil, err
	}
	return stats, nil
}
