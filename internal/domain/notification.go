package domain

import "time"

type NotificationKind string

const (
	NotificationKindApproval  NotificationKind = "approval"
	NotificationKindRejection NotificationKind = "rejection"
)

type NotificationStatus string

const (
	NotificationStatusPending  NotificationStatus = "pending"
	NotificationStatusSent     NotificationStatus = "sent"
	NotificationStatusFailed   NotificationStatus = "failed"
	NotificationStatusRetrying NotificationStatus = "retrying"
)

// NotificationRecord is the durable delivery log of one applicant
// notification. A record is created per decision; failed deliveries are
// picked up by the retry job.
type NotificationRecord struct {
	ID            int64              `json:"id"`
	ApplicationID int64              `json:"application_id"`
	Kind          NotificationKind   `json:"kind"`
	Recipient     string             `json:"recipient"`
	Status        NotificationStatus `json:"status"`
	Attempts      int32              `json:"attempts"`
	LastError     *string            `json:"last_error,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

// NotificationStats summarizes the delivery log, optionally since a cutoff.
type NotificationStats struct {
	Total    int32 `json:"total"`
	Sent     int32 `json:"sent"`
	Failed   int32 `json:"failed"`
	Pending  int32 `json:"pending"`
	Retrying int32 `json:"retrying"`
}
