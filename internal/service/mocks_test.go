package service_test

import (
	"context"
	"time"

	"clubreg-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockApplicationRepo
type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.ClubApplication) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}
func (m *MockApplicationRepo) GetByID(ctx context.Context, id int64) (*domain.ClubApplication, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClubApplication), args.Error(1)
}
func (m *MockApplicationRepo) List(ctx context.Context, filter domain.ApplicationFilter) ([]domain.ClubApplication, int32, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.ClubApplication), args.Get(1).(int32), args.Error(2)
}
func (m *MockApplicationRepo) UpdateStatusIfPending(ctx context.Context, id int64, status domain.ApplicationStatus, notes string, adminID int32, reviewedAt time.Time) (*domain.ClubApplication, error) {
	args := m.Called(ctx, id, status, notes, adminID, reviewedAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClubApplication), args.Error(1)
}
func (m *MockApplicationRepo) Stats(ctx context.Context) (*domain.ApplicationStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ApplicationStats), args.Error(1)
}

// MockAuditRepo
type MockAuditRepo struct {
	mock.Mock
}

func (m *MockAuditRepo) Create(ctx context.Context, entry *domain.AuditEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}
func (m *MockAuditRepo) ListByApplication(ctx context.Context, applicationID int64) ([]domain.AuditEntry, error) {
	args := m.Called(ctx, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AuditEntry), args.Error(1)
}
func (m *MockAuditRepo) ListRecent(ctx context.Context, limit, offset int32) ([]domain.AuditEntry, int32, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]domain.AuditEntry), args.Get(1).(int32), args.Error(2)
}

// MockAdminRepo
type MockAdminRepo struct {
	mock.Mock
}

func (m *MockAdminRepo) GetByID(ctx context.Context, id int32) (*domain.Admin, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Admin), args.Error(1)
}

// MockNotificationLogRepo
type MockNotificationLogRepo struct {
	mock.Mock
}

func (m *MockNotificationLogRepo) Create(ctx context.Context, rec *domain.NotificationRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}
func (m *MockNotificationLogRepo) UpdateDelivery(ctx context.Context, id int64, status domain.NotificationStatus, attempts int32, lastError *string) error {
	args := m.Called(ctx, id, status, attempts, lastError)
	return args.Error(0)
}
func (m *MockNotificationLogRepo) ListRetryable(ctx context.Context, limit int32) ([]domain.NotificationRecord, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.NotificationRecord), args.Error(1)
}
func (m *MockNotificationLogRepo) Stats(ctx context.Context, since *time.Time) (*domain.NotificationStats, error) {
	args := m.Called(ctx, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NotificationStats), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendApprovalEmail(ctx context.Context, email, contactName, clubName, notes string) error {
	args := m.Called(ctx, email, contactName, clubName, notes)
	return args.Error(0)
}
func (m *MockEmailService) SendRejectionEmail(ctx context.Context, email, contactName, clubName, reason string) error {
	args := m.Called(ctx, email, contactName, clubName, reason)
	return args.Error(0)
}

// MockNotificationService
type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) SendApprovalNotification(ctx context.Context, app *domain.ClubApplication) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}
func (m *MockNotificationService) SendRejectionNotification(ctx context.Context, app *domain.ClubApplication, reason string) error {
	args := m.Called(ctx, app, reason)
	return args.Error(0)
}
func (m *MockNotificationService) RetryFailedNotifications(ctx context.Context) (int32, []error) {
	args := m.Called(ctx)
	if args.Get(1) == nil {
		return args.Get(0).(int32), nil
	}
	return args.Get(0).(int32), args.Get(1).([]error)
}
func (m *MockNotificationService) GetStats(ctx context.Context, since *time.Time) (*domain.NotificationStats, error) {
	args := m.Called(ctx, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NotificationStats), args.Error(1)
}

// MockApprovalService
type MockApprovalService struct {
	mock.Mock
}

func (m *MockApprovalService) Approve(ctx context.Context, clubID int64, adminID int32, notes string) (*domain.ClubApplication, error) {
	args := m.Called(ctx, clubID, adminID, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClubApplication), args.Error(1)
}
func (m *MockApprovalService) Reject(ctx context.Context, clubID int64, adminID int32, reason string) (*domain.ClubApplication, error) {
	args := m.Called(ctx, clubID, adminID, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClubApplication), args.Error(1)
}
