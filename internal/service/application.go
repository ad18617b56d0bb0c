package service

import (
	"context"
	"fmt"
	"strings"

	"clubreg-backend/internal/domain"
	"clubreg-backend/internal/repository"
)

type applicationService struct {
	appRepo   repository.ApplicationRepository
	auditRepo repository.AuditLogRepository
	adminRepo repository.AdminRepository
}

func NewApplicationService(
	appRepo repository.ApplicationRepository,
	auditRepo repository.AuditLogRepository,
	adminRepo repository.AdminRepository,
) ApplicationService {
	return &applicationService{
		appRepo:   appRepo,
		auditRepo: auditRepo,
		adminRepo: adminRepo,
	}
}

func (s *applicationService) Submit(ctx context.Context, app *domain.ClubApplication) error {
	app.ClubName = strings.TrimSpace(app.ClubName)
	app.Email = strings.TrimSpace(app.Email)
	if app.ClubName == "" {
		return domain.NewValidationError("club_name", "club name is required")
	}
	if app.Email == "" || !strings.Contains(app.Email, "@") {
		return domain.NewValidationError("email", "a valid contact email is required")
	}
	app.Status = domain.ApplicationStatusPending
	if err := s.appRepo.Create(ctx, app); err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}
	return nil
}

// GetApplication returns the application, its audit history and, when the
// application has been decided, the reviewing admin for display.
func (s *applicationService) GetApplication(ctx context.Context, id int64) (*domain.ClubApplication, []domain.AuditEntry, *domain.Admin, error) {
	app, err := s.appRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, nil, err
	}

	history, err := s.auditRepo.ListByApplication(ctx, id)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load audit history: %w", err)
	}

	var reviewer *domain.Admin
	if app.ReviewedBy != nil {
		reviewer, err = s.adminRepo.GetByID(ctx, *app.ReviewedBy)
		if err != nil {
			// History still renders without the display name.
			reviewer = nil
		}
	}

	return app, history, reviewer, nil
}

func (s *applicationService) ListApplications(ctx context.Context, filter domain.ApplicationFilter) ([]domain.ClubApplication, int32, error) {
	return s.appRepo.List(ctx, filter)
}

// ListAuditTrail pages through the append-only log across all applications,
// newest first. Bulk markers appear alongside per-application entries.
func (s *applicationService) ListAuditTrail(ctx context.Context, limit, offset int32) ([]domain.AuditEntry, int32, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.auditRepo.ListRecent(ctx, limit, offset)
}

func (s *applicationService) GetStats(ctx context.Context) (*domain.ApplicationStats, error) {
	return s.appRepo.Stats(ctx)
}
