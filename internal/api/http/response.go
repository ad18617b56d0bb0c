package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"clubreg-backend/internal/domain"
	"clubreg-backend/internal/logger"
)

// Envelope is the uniform response body: {success, data?, error?}.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

func writeData(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, Envelope{Success: true, Data: data})
}

// writeError maps the domain error taxonomy onto HTTP status codes. Anything
// unrecognized is treated as an internal error without leaking details.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	msg := "internal server error"

	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		status = http.StatusBadRequest
		msg = ve.Error()
	case errors.Is(err, domain.ErrAuthenticationRequired), errors.Is(err, domain.ErrSessionExpired):
		status = http.StatusUnauthorized
		msg = err.Error()
	case errors.Is(err, domain.ErrSecurityTokenMissing), errors.Is(err, domain.ErrNotAdmin):
		status = http.StatusForbidden
		msg = err.Error()
	case errors.Is(err, domain.ErrRateLimitExceeded):
		status = http.StatusTooManyRequests
		msg = err.Error()
	case errors.Is(err, domain.ErrApplicationNotFound):
		status = http.StatusNotFound
		msg = err.Error()
	case errors.Is(err, domain.ErrConflictingReview):
		status = http.StatusConflict
		msg = err.Error()
	default:
		logger.Error("Request failed", "error", err)
	}

	writeJSON(w, status, Envelope{Success: false, Error: msg})
}
