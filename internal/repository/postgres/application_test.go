package postgres_test

import (
	"context"
	"testing"
	"time"

	"clubreg-backend/internal/domain"
	"clubreg-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func applicationRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "club_name", "contact_name", "email", "phone", "location", "description", "sport_categories", "status", "admin_notes", "reviewed_by", "reviewed_at", "created_at", "updated_at"})
}

func TestApplicationRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := postgres.NewApplicationRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := applicationRows().
			AddRow(1, "Riverside FC", "Ana Silva", "ana@riverside.example", "555-0101", "Porto", "Local football club", pq.Array([]string{"football"}), "pending", nil, nil, nil, time.Now(), time.Now())

		mock.ExpectQuery("SELECT (.+) FROM club_applications WHERE id = \\$1").
			WithArgs(int64(1)).
			WillReturnRows(rows)

		app, err := repo.GetByID(ctx, 1)
		assert.NoError(t, err)
		assert.NotNil(t, app)
		assert.Equal(t, int64(1), app.ID)
		assert.Equal(t, "Riverside FC", app.ClubName)
		assert.Equal(t, domain.ApplicationStatusPending, app.Status)
		assert.Nil(t, app.ReviewedBy)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM club_applications WHERE id = \\$1").
			WithArgs(int64(99)).
			WillReturnRows(applicationRows())

		app, err := repo.GetByID(ctx, 99)
		assert.Nil(t, app)
		assert.ErrorIs(t, err, domain.ErrApplicationNotFound)
	})
}

func TestApplicationRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := postgres.NewApplicationRepository(db)
	ctx := context.Background()

	app := &domain.ClubApplication{
		ClubName:        "Harbor Climbing",
		ContactName:     "Jo Lindqvist",
		Email:           "jo@harbor.example",
		Phone:           "555-0102",
		Location:        "Oslo",
		Description:     "Bouldering and rope climbing",
		SportCategories: []string{"climbing"},
	}

	now := time.Now()
	mock.ExpectQuery("INSERT INTO club_applications").
		WithArgs(app.ClubName, app.ContactName, app.Email, app.Phone, app.Location, app.Description, pq.Array(app.SportCategories), "pending", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(7, now, now))

	err = repo.Create(ctx, app)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), app.ID)
	assert.Equal(t, domain.ApplicationStatusPending, app.Status)
}

func TestApplicationRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := postgres.NewApplicationRepository(db)
	ctx := context.Background()

	t.Run("DefaultsToPending", func(t *testing.T) {
		mock.ExpectQuery("SELECT count\\(\\*\\) FROM club_applications WHERE 1=1 AND status = \\$1").
			WithArgs("pending").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		rows := applicationRows().
			AddRow(3, "Valley Tennis", "Kai Chen", "kai@valley.example", "", "Taipei", "", pq.Array([]string{"tennis"}), "pending", nil, nil, nil, time.Now(), time.Now())
		mock.ExpectQuery("SELECT (.+) FROM club_applications WHERE 1=1 AND status = \\$1 ORDER BY created_at DESC LIMIT \\$2 OFFSET \\$3").
			WithArgs("pending", int32(10), int32(0)).
			WillReturnRows(rows)

		apps, total, err := repo.List(ctx, domain.ApplicationFilter{})
		assert.NoError(t, err)
		assert.Equal(t, int32(1), total)
		require.Len(t, apps, 1)
		assert.Equal(t, "Valley Tennis", apps[0].ClubName)
	})

	t.Run("AllStatusesWithSearch", func(t *testing.T) {
		mock.ExpectQuery("SELECT count\\(\\*\\) FROM club_applications WHERE 1=1 AND \\(club_name ILIKE \\$1 OR email ILIKE \\$1 OR description ILIKE \\$1\\)").
			WithArgs("%tennis%").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		mock.ExpectQuery("SELECT (.+) FROM club_applications WHERE 1=1 AND \\(club_name ILIKE \\$1 OR email ILIKE \\$1 OR description ILIKE \\$1\\) ORDER BY club_name ASC LIMIT \\$2 OFFSET \\$3").
			WithArgs("%tennis%", int32(5), int32(10)).
			WillReturnRows(applicationRows())

		apps, total, err := repo.List(ctx, domain.ApplicationFilter{
			Status:    domain.StatusAll,
			Search:    "tennis",
			SortBy:    domain.SortByName,
			SortOrder: domain.SortAsc,
			Limit:     5,
			Offset:    10,
		})
		assert.NoError(t, err)
		assert.Equal(t, int32(0), total)
		assert.Empty(t, apps)
	})
}

func TestApplicationRepository_UpdateStatusIfPending(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := postgres.NewApplicationRepository(db)
	ctx := context.Background()
	reviewedAt := time.Now()

	t.Run("Success", func(t *testing.T) {
		adminID := int32(5)
		rows := applicationRows().
			AddRow(1, "Riverside FC", "Ana Silva", "ana@riverside.example", "", "Porto", "", pq.Array([]string{"football"}), "approved", "looks good", adminID, reviewedAt, time.Now(), reviewedAt)

		mock.ExpectQuery("UPDATE club_applications").
			WithArgs("approved", "looks good", adminID, reviewedAt, int64(1)).
			WillReturnRows(rows)

		app, err := repo.UpdateStatusIfPending(ctx, 1, domain.ApplicationStatusApproved, "looks good", adminID, reviewedAt)
		assert.NoError(t, err)
		require.NotNil(t, app)
		assert.Equal(t, domain.ApplicationStatusApproved, app.Status)
		require.NotNil(t, app.ReviewedBy)
		assert.Equal(t, adminID, *app.ReviewedBy)
		assert.NotNil(t, app.ReviewedAt)
	})

	t.Run("AlreadyReviewed", func(t *testing.T) {
		mock.ExpectQuery("UPDATE club_applications").
			WithArgs("approved", "", int32(5), reviewedAt, int64(2)).
			WillReturnRows(applicationRows())

		// Existence probe finds the row, so this is a review conflict.
		probe := applicationRows().
			AddRow(2, "Harbor Climbing", "Jo Lindqvist", "jo@harbor.example", "", "Oslo", "", pq.Array([]string{"climbing"}), "rejected", "incomplete", 9, reviewedAt, time.Now(), reviewedAt)
		mock.ExpectQuery("SELECT (.+) FROM club_applications WHERE id = \\$1").
			WithArgs(int64(2)).
			WillReturnRows(probe)

		app, err := repo.UpdateStatusIfPending(ctx, 2, domain.ApplicationStatusApproved, "", 5, reviewedAt)
		assert.Nil(t, app)
		assert.ErrorIs(t, err, domain.ErrConflictingReview)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("UPDATE club_applications").
			WithArgs("approved", "", int32(5), reviewedAt, int64(404)).
			WillReturnRows(applicationRows())

		mock.ExpectQuery("SELECT (.+) FROM club_applications WHERE id = \\$1").
			WithArgs(int64(404)).
			WillReturnRows(applicationRows())

		app, err := repo.UpdateStatusIfPending(ctx, 404, domain.ApplicationStatusApproved, "", 5, reviewedAt)
		assert.Nil(t, app)
		assert.ErrorIs(t, err, domain.ErrApplicationNotFound)
	})
}

func TestApplicationRepository_Stats(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := postgres.NewApplicationRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM club_applications").
		WillReturnRows(sqlmock.NewRows([]string{"pending", "approved", "rejected", "total"}).AddRow(4, 10, 2, 16))

	stats, err := repo.Stats(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int32(4), stats.Pending)
	assert.Equal(t, int32(10), stats.Approved)
	assert.Equal(t, int32(2), stats.Rejected)
	assert.Equal(t, int32(16), stats.Total)
}
