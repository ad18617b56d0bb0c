package service

import (
	"context"
	"fmt"

	"clubreg-backend/internal/domain"
	"clubreg-backend/internal/logger"
	"clubreg-backend/internal/repository"
)

type bulkService struct {
	approvalSvc ApprovalService
	auditRepo   repository.AuditLogRepository
}

func NewBulkService(approvalSvc ApprovalService, auditRepo repository.AuditLogRepository) BulkService {
	return &bulkService{
		approvalSvc: approvalSvc,
		auditRepo:   auditRepo,
	}
}

// BulkApprove approves the given applications one by one, in the order
// supplied. Item failures are isolated: an already-approved item stays
// approved when a later one fails. Start and complete markers bound the
// batch in the audit log so "requested" vs "succeeded" can be reconstructed
// even after a crash mid-batch.
func (s *bulkService) BulkApprove(ctx context.Context, clubIDs []int64, adminID int32, notes string) (*domain.BulkResult, error) {
	if len(clubIDs) == 0 {
		return nil, domain.NewValidationError("club_ids", "at least one application id is required")
	}
	if len(clubIDs) > domain.MaxBulkApproveSize {
		return nil, domain.NewValidationError("club_ids", fmt.Sprintf("batch cannot exceed %d applications", domain.MaxBulkApproveSize))
	}

	if err := s.auditRepo.Create(ctx, &domain.AuditEntry{
		AdminID: adminID,
		Action:  domain.AuditActionBulkApproveStart,
		Details: domain.NewBulkStartDetails(clubIDs, notes),
	}); err != nil {
		logger.Error("Failed to write bulk start marker", "admin_id", adminID, "error", err)
	}

	result := &domain.BulkResult{
		Successful: []int64{},
		Failed:     []domain.BulkItemFailure{},
	}
	for _, id := range clubIDs {
		if _, err := s.approvalSvc.Approve(ctx, id, adminID, notes); err != nil {
			result.Failed = append(result.Failed, domain.BulkItemFailure{
				ApplicationID: id,
				Reason:        err.Error(),
			})
			continue
		}
		result.Successful = append(result.Successful, id)
	}

	if err := s.auditRepo.Create(ctx, &domain.AuditEntry{
		AdminID: adminID,
		Action:  domain.AuditActionBulkApproveComplete,
		Details: domain.NewBulkCompleteDetails(clubIDs, result.Successful, len(result.Failed)),
	}); err != nil {
		logger.Error("Failed to write bulk complete marker", "admin_id", adminID, "error", err)
	}

	logger.Info("Bulk approve finished",
		"admin_id", adminID,
		"requested", len(clubIDs),
		"succeeded", len(result.Successful),
		"failed", len(result.Failed),
		"outcome", result.Outcome())

	return result, nil
}
