package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"clubreg-backend/internal/domain"
	"clubreg-backend/internal/security"
	"clubreg-backend/internal/service"
)

const csrfHeader = "X-CSRF-Token"

// ReviewHandler serves the mutating decision endpoints. Every request passes
// the action guard before it reaches the approval engine.
type ReviewHandler struct {
	guard       *security.ActionGuard
	approvalSvc service.ApprovalService
	bulkSvc     service.BulkService
}

func NewReviewHandler(guard *security.ActionGuard, approvalSvc service.ApprovalService, bulkSvc service.BulkService) *ReviewHandler {
	return &ReviewHandler{
		guard:       guard,
		approvalSvc: approvalSvc,
		bulkSvc:     bulkSvc,
	}
}

func bearerToken(r *http.Request) string {
	token := r.Header.Get("Authorization")
	if len(token) > 7 && strings.EqualFold(token[:7], "Bearer ") {
		token = token[7:]
	}
	return token
}

func (h *ReviewHandler) authorize(r *http.Request, kind security.ActionKind, params map[string]any) (*security.AdminClaims, error) {
	return h.guard.Authorize(bearerToken(r), r.Header.Get(csrfHeader), kind, params)
}

type approveRequest struct {
	Notes string `json:"notes"`
}

func (h *ReviewHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req approveRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, domain.NewValidationError("body", "invalid request body"))
			return
		}
	}

	claims, err := h.authorize(r, security.ActionApprove, map[string]any{"club_id": id})
	if err != nil {
		writeError(w, err)
		return
	}

	app, err := h.approvalSvc.Approve(r.Context(), id, claims.AdminID, req.Notes)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, app)
}

type rejectRequest struct {
	Reason string `json:"reason"`
}

func (h *ReviewHandler) Reject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req rejectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.NewValidationError("body", "invalid request body"))
		return
	}

	claims, err := h.authorize(r, security.ActionReject, map[string]any{"club_id": id})
	if err != nil {
		writeError(w, err)
		return
	}

	app, err := h.approvalSvc.Reject(r.Context(), id, claims.AdminID, req.Reason)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, app)
}

type bulkApproveRequest struct {
	ClubIDs []int64 `json:"club_ids"`
	Notes   string  `json:"notes"`
}

func (h *ReviewHandler) BulkApprove(w http.ResponseWriter, r *http.Request) {
	var req bulkApproveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.NewValidationError("body", "invalid request body"))
		return
	}

	claims, err := h.authorize(r, security.ActionBulkApprove, map[string]any{
		"club_ids": req.ClubIDs,
		"count":    len(req.ClubIDs),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	result, err := h.bulkSvc.BulkApprove(r.Context(), req.ClubIDs, claims.AdminID, req.Notes)
	if err != nil {
		writeError(w, err)
		return
	}

	// An all-failed batch is a business outcome, not a transport error:
	// still 200, but success=false so callers see the three-way result.
	outcome := result.Outcome()
	writeJSON(w, http.StatusOK, Envelope{
		Success: outcome != domain.BulkAllFailed,
		Data: map[string]interface{}{
			"outcome":    outcome,
			"successful": result.Successful,
			"failed":     result.Failed,
		},
	})
}
