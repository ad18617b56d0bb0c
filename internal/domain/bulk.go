package domain

// BulkItemFailure records why one application in a batch was not approved.
type BulkItemFailure struct {
	ApplicationID int64  `json:"application_id"`
	Reason        string `json:"reason"`
}

type BulkOutcome string

const (
	BulkAllSucceeded   BulkOutcome = "all_succeeded"
	BulkPartialSuccess BulkOutcome = "partial_success"
	BulkAllFailed      BulkOutcome = "all_failed"
)

// BulkResult is the ephemeral outcome of one bulk call. Items that already
// succeeded stay approved even when later items fail; there is no batch
// rollback.
type BulkResult struct {
	Successful []int64           `json:"successful"`
	Failed     []BulkItemFailure `json:"failed"`
}

func (r *BulkResult) Outcome() BulkOutcome {
	switch {
	case len(r.Failed) == 0:
		return BulkAllSucceeded
	case len(r.Successful) == 0:
		return BulkAllFailed
	default:
		return BulkPartialSuccess
	}
}

// MaxBulkApproveSize bounds one batch; larger requests are rejected outright
// rather than truncated.
const MaxBulkApproveSize = 50
