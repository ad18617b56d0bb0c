package service_test

import (
	"context"
	"errors"
	"testing"

	"clubreg-backend/internal/domain"
	"clubreg-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestApplicationService_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		svc := service.NewApplicationService(appRepo, nil, nil)

		appRepo.On("Create", ctx, mock.MatchedBy(func(app *domain.ClubApplication) bool {
			return app.ClubName == "Riverside FC" && app.Status == domain.ApplicationStatusPending
		})).Return(nil).Once()

		err := svc.Submit(ctx, &domain.ClubApplication{
			ClubName: "  Riverside FC  ",
			Email:    "ana@riverside.example",
		})
		assert.NoError(t, err)
		appRepo.AssertExpectations(t)
	})

	t.Run("RequiresClubName", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		svc := service.NewApplicationService(appRepo, nil, nil)

		err := svc.Submit(ctx, &domain.ClubApplication{Email: "ana@riverside.example"})
		assert.True(t, domain.IsValidation(err))
		appRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("RequiresValidEmail", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		svc := service.NewApplicationService(appRepo, nil, nil)

		err := svc.Submit(ctx, &domain.ClubApplication{ClubName: "Riverside FC", Email: "not-an-email"})
		assert.True(t, domain.IsValidation(err))
	})
}

func TestApplicationService_GetApplication(t *testing.T) {
	ctx := context.Background()

	t.Run("WithReviewerAndHistory", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		auditRepo := new(MockAuditRepo)
		adminRepo := new(MockAdminRepo)
		svc := service.NewApplicationService(appRepo, auditRepo, adminRepo)

		app := decidedApplication(4, domain.ApplicationStatusApproved, "welcome", 9)
		appID := app.ID
		history := []domain.AuditEntry{{ID: 11, ApplicationID: &appID, AdminID: 9, Action: domain.AuditActionApproved}}

		appRepo.On("GetByID", ctx, int64(4)).Return(app, nil).Once()
		auditRepo.On("ListByApplication", ctx, int64(4)).Return(history, nil).Once()
		adminRepo.On("GetByID", ctx, int32(9)).Return(&domain.Admin{ID: 9, Name: "Sam Admin", IsAdmin: true}, nil).Once()

		got, gotHistory, reviewer, err := svc.GetApplication(ctx, 4)
		assert.NoError(t, err)
		assert.Equal(t, app, got)
		assert.Len(t, gotHistory, 1)
		require.NotNil(t, reviewer)
		assert.Equal(t, "Sam Admin", reviewer.Name)
	})

	t.Run("PendingHasNoReviewer", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		auditRepo := new(MockAuditRepo)
		adminRepo := new(MockAdminRepo)
		svc := service.NewApplicationService(appRepo, auditRepo, adminRepo)

		appRepo.On("GetByID", ctx, int64(5)).Return(pendingApplication(5), nil).Once()
		auditRepo.On("ListByApplication", ctx, int64(5)).Return([]domain.AuditEntry{}, nil).Once()

		_, _, reviewer, err := svc.GetApplication(ctx, 5)
		assert.NoError(t, err)
		assert.Nil(t, reviewer)
		adminRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("NotFound", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		svc := service.NewApplicationService(appRepo, nil, nil)

		appRepo.On("GetByID", ctx, int64(404)).Return(nil, domain.ErrApplicationNotFound).Once()

		_, _, _, err := svc.GetApplication(ctx, 404)
		assert.ErrorIs(t, err, domain.ErrApplicationNotFound)
	})

	t.Run("ReviewerLookupFailureIsNonFatal", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		auditRepo := new(MockAuditRepo)
		adminRepo := new(MockAdminRepo)
		svc := service.NewApplicationService(appRepo, auditRepo, adminRepo)

		app := decidedApplication(4, domain.ApplicationStatusApproved, "", 9)
		appRepo.On("GetByID", ctx, int64(4)).Return(app, nil).Once()
		auditRepo.On("ListByApplication", ctx, int64(4)).Return([]domain.AuditEntry{}, nil).Once()
		adminRepo.On("GetByID", ctx, int32(9)).Return(nil, errors.New("admin store down")).Once()

		got, _, reviewer, err := svc.GetApplication(ctx, 4)
		assert.NoError(t, err)
		assert.NotNil(t, got)
		assert.Nil(t, reviewer)
	})
}

func TestApplicationService_ListAuditTrail(t *testing.T) {
	auditRepo := new(MockAuditRepo)
	svc := service.NewApplicationService(nil, auditRepo, nil)
	ctx := context.Background()

	// Zero limit falls back to the default page size.
	auditRepo.On("ListRecent", ctx, int32(20), int32(0)).
		Return([]domain.AuditEntry{{ID: 1, Action: domain.AuditActionBulkApproveStart}}, int32(1), nil).Once()

	entries, total, err := svc.ListAuditTrail(ctx, 0, -5)
	assert.NoError(t, err)
	assert.Equal(t, int32(1), total)
	assert.Len(t, entries, 1)
	auditRepo.AssertExpectations(t)
}

func TestApplicationService_ListApplications(t *testing.T) {
	appRepo := new(MockApplicationRepo)
	svc := service.NewApplicationService(appRepo, nil, nil)
	ctx := context.Background()

	filter := domain.ApplicationFilter{Status: domain.StatusAll, Limit: 20}
	appRepo.On("List", ctx, filter).Return([]domain.ClubApplication{*pendingApplication(1)}, int32(1), nil).Once()

	apps, total, err := svc.ListApplications(ctx, filter)
	assert.NoError(t, err)
	assert.Equal(t, int32(1), total)
	assert.Len(t, apps, 1)
}
