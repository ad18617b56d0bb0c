package postgres_test

import (
	"context"
	"testing"
	"time"

	"clubreg-backend/internal/domain"
	"clubreg-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditLogRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := postgres.NewAuditLogRepository(db)
	ctx := context.Background()

	t.Run("DecisionEntry", func(t *testing.T) {
		appID := int64(4)
		entry := &domain.AuditEntry{
			ApplicationID: &appID,
			AdminID:       2,
			Action:        domain.AuditActionRejected,
			Details:       domain.NewRejectionDetails("Riverside FC", "Missing required documents"),
		}

		mock.ExpectQuery("INSERT INTO audit_log").
			WithArgs(appID, int32(2), domain.AuditActionRejected, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(11, time.Now()))

		err := repo.Create(ctx, entry)
		assert.NoError(t, err)
		assert.Equal(t, int64(11), entry.ID)
	})

	t.Run("BulkMarkerWithoutApplication", func(t *testing.T) {
		entry := &domain.AuditEntry{
			AdminID: 2,
			Action:  domain.AuditActionBulkApproveStart,
			Details: domain.NewBulkStartDetails([]int64{1, 2, 3}, ""),
		}

		mock.ExpectQuery("INSERT INTO audit_log").
			WithArgs(nil, int32(2), domain.AuditActionBulkApproveStart, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(12, time.Now()))

		err := repo.Create(ctx, entry)
		assert.NoError(t, err)
		assert.Equal(t, int64(12), entry.ID)
	})
}

func TestAuditLogRepository_ListByApplication(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := postgres.NewAuditLogRepository(db)

	appID := int64(4)
	rows := sqlmock.NewRows([]string{"id", "application_id", "admin_id", "action", "details", "created_at"}).
		AddRow(11, appID, 2, "rejected", `{"reason":"Missing required documents","club_name":"Riverside FC"}`, time.Now())

	mock.ExpectQuery("SELECT (.+) FROM audit_log WHERE application_id = \\$1").
		WithArgs(appID).
		WillReturnRows(rows)

	entries, err := repo.ListByApplication(context.Background(), appID)
	assert.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, domain.AuditActionRejected, entries[0].Action)

	details, ok := entries[0].Details.(*domain.DecisionDetails)
	require.True(t, ok)
	assert.Equal(t, "Missing required documents", details.Reason)
	assert.Equal(t, domain.AuditActionRejected, details.AuditAction())
}

func TestAuditLogRepository_ListRecent(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := postgres.NewAuditLogRepository(db)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM audit_log").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	rows := sqlmock.NewRows([]string{"id", "application_id", "admin_id", "action", "details", "created_at"}).
		AddRow(13, nil, 2, "bulk_approve_complete", `{"requested_ids":[1,2],"requested_count":2,"succeeded_ids":[1,2],"succeeded_count":2}`, time.Now()).
		AddRow(12, nil, 2, "bulk_approve_start", `{"requested_ids":[1,2],"requested_count":2}`, time.Now())

	mock.ExpectQuery("SELECT (.+) FROM audit_log ORDER BY created_at DESC").
		WithArgs(int32(20), int32(0)).
		WillReturnRows(rows)

	entries, total, err := repo.ListRecent(context.Background(), 20, 0)
	assert.NoError(t, err)
	assert.Equal(t, int32(2), total)
	require.Len(t, entries, 2)

	complete, ok := entries[0].Details.(*domain.BulkMarkerDetails)
	require.True(t, ok)
	assert.Equal(t, 2, complete.SucceededCount)
	assert.Nil(t, entries[0].ApplicationID)
}
