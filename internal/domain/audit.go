package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

type AuditAction string

const (
	AuditActionApproved            AuditAction = "approved"
	AuditActionRejected            AuditAction = "rejected"
	AuditActionBulkApproveStart    AuditAction = "bulk_approve_start"
	AuditActionBulkApproveComplete AuditAction = "bulk_approve_complete"
)

// AuditEntry is an immutable record of one administrative action or bulk
// marker. ApplicationID is nil for bulk markers, which describe the batch as
// a whole. Entries are never updated or deleted.
type AuditEntry struct {
	ID            int64        `json:"id"`
	ApplicationID *int64       `json:"application_id,omitempty"`
	AdminID       int32        `json:"admin_id"`
	Action        AuditAction  `json:"action"`
	Details       AuditDetails `json:"details,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
}

// AuditDetails is the per-action payload of an audit entry. Each action kind
// carries its own variant; the payload is serialized to a JSON text column
// only at the storage boundary.
type AuditDetails interface {
	AuditAction() AuditAction
}

// DecisionDetails accompanies approved/rejected entries.
type DecisionDetails struct {
	Notes    string `json:"notes,omitempty"`
	Reason   string `json:"reason,omitempty"`
	ClubName string `json:"club_name,omitempty"`

	action AuditAction
}

func NewApprovalDetails(clubName, notes string) *DecisionDetails {
	return &DecisionDetails{ClubName: clubName, Notes: notes, action: AuditActionApproved}
}

func NewRejectionDetails(clubName, reason string) *DecisionDetails {
	return &DecisionDetails{ClubName: clubName, Reason: reason, action: AuditActionRejected}
}

func (d *DecisionDetails) AuditAction() AuditAction { return d.action }

// BulkMarkerDetails accompanies bulk_approve_start/complete entries. Start
// markers carry the requested ids; complete markers additionally carry the
// per-item outcome so "requested" vs "succeeded" survives a crash mid-batch.
type BulkMarkerDetails struct {
	RequestedIDs   []int64 `json:"requested_ids"`
	RequestedCount int     `json:"requested_count"`
	SucceededIDs   []int64 `json:"succeeded_ids,omitempty"`
	SucceededCount int     `json:"succeeded_count,omitempty"`
	FailedCount    int     `json:"failed_count,omitempty"`
	Notes          string  `json:"notes,omitempty"`

	action AuditAction
}

func NewBulkStartDetails(ids []int64, notes string) *BulkMarkerDetails {
	return &BulkMarkerDetails{
		RequestedIDs:   ids,
		RequestedCount: len(ids),
		Notes:          notes,
		action:         AuditActionBulkApproveStart,
	}
}

func NewBulkCompleteDetails(requested, succeeded []int64, failed int) *BulkMarkerDetails {
	return &BulkMarkerDetails{
		RequestedIDs:   requested,
		RequestedCount: len(requested),
		SucceededIDs:   succeeded,
		SucceededCount: len(succeeded),
		FailedCount:    failed,
		action:         AuditActionBulkApproveComplete,
	}
}

func (d *BulkMarkerDetails) AuditAction() AuditAction { return d.action }

// MarshalAuditDetails renders a details variant for the storage layer.
func MarshalAuditDetails(d AuditDetails) (string, error) {
	if d == nil {
		return "", nil
	}
	raw, err := json.Marshal(d)
	if err != nil {
		return "", fmt.Errorf("failed to marshal audit details: %w", err)
	}
	return string(raw), nil
}

// UnmarshalAuditDetails restores the variant matching the entry's action.
func UnmarshalAuditDetails(action AuditAction, raw string) (AuditDetails, error) {
	if raw == "" {
		return nil, nil
	}
	switch action {
	case AuditActionApproved, AuditActionRejected:
		d := &DecisionDetails{action: action}
		if err := json.Unmarshal([]byte(raw), d); err != nil {
			return nil, fmt.Errorf("failed to unmarshal decision details: %w", err)
		}
		return d, nil
	case AuditActionBulkApproveStart, AuditActionBulkApproveComplete:
		d := &BulkMarkerDetails{action: action}
		if err := json.Unmarshal([]byte(raw), d); err != nil {
			return nil, fmt.Errorf("failed to unmarshal bulk marker details: %w", err)
		}
		return d, nil
	default:
		return nil, fmt.Errorf("unknown audit action: %s", action)
	}
}
