package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"clubreg-backend/internal/domain"
	"clubreg-backend/internal/service"

	"github.com/gorilla/mux"
)

// ApplicationHandler serves the read/submission surface.
type ApplicationHandler struct {
	appSvc service.ApplicationService
}

func NewApplicationHandler(appSvc service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{appSvc: appSvc}
}

type submitRequest struct {
	ClubName        string   `json:"club_name"`
	ContactName     string   `json:"contact_name"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
	Location        string   `json:"location"`
	Description     string   `json:"description"`
	SportCategories []string `json:"sport_categories"`
}

func (h *ApplicationHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.NewValidationError("body", "invalid request body"))
		return
	}

	app := &domain.ClubApplication{
		ClubName:        req.ClubName,
		ContactName:     req.ContactName,
		Email:           req.Email,
		Phone:           req.Phone,
		Location:        req.Location,
		Description:     req.Description,
		SportCategories: req.SportCategories,
	}
	if err := h.appSvc.Submit(r.Context(), app); err != nil {
		writeError(w, err)
		return
	}
	writeData(w, app)
}

func (h *ApplicationHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		writeError(w, err)
		return
	}

	apps, total, err := h.appSvc.ListApplications(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	if apps == nil {
		apps = []domain.ClubApplication{}
	}

	filter.Normalize()
	totalPages := (total + filter.Limit - 1) / filter.Limit
	writeData(w, map[string]interface{}{
		"applications": apps,
		"total":        total,
		"total_pages":  totalPages,
		"page":         filter.Offset/filter.Limit + 1,
		"limit":        filter.Limit,
		"offset":       filter.Offset,
	})
}

func (h *ApplicationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	app, history, reviewer, err := h.appSvc.GetApplication(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	if history == nil {
		history = []domain.AuditEntry{}
	}

	data := map[string]interface{}{
		"application": app,
		"history":     history,
	}
	if reviewer != nil {
		data["reviewed_by_name"] = reviewer.Name
	}
	writeData(w, data)
}

func (h *ApplicationHandler) AuditTrail(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var limit, offset int32
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || n <= 0 {
			writeError(w, domain.NewValidationError("limit", "limit must be a positive integer"))
			return
		}
		limit = int32(n)
	}
	if raw := q.Get("offset"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || n < 0 {
			writeError(w, domain.NewValidationError("offset", "offset must be a non-negative integer"))
			return
		}
		offset = int32(n)
	}

	entries, total, err := h.appSvc.ListAuditTrail(r.Context(), limit, offset)
	if err != nil {
		writeError(w, err)
		return
	}
	if entries == nil {
		entries = []domain.AuditEntry{}
	}
	writeData(w, map[string]interface{}{
		"entries": entries,
		"total":   total,
	})
}

func (h *ApplicationHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.appSvc.GetStats(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, stats)
}

func pathID(r *http.Request) (int64, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError("id", "malformed application id")
	}
	return id, nil
}

func parseFilter(r *http.Request) (domain.ApplicationFilter, error) {
	q := r.URL.Query()
	filter := domain.ApplicationFilter{
		Status:   q.Get("status"),
		Search:   q.Get("search"),
		Location: q.Get("location"),
		SortBy:   q.Get("sort_by"),
	}

	switch status := q.Get("status"); status {
	case "", domain.StatusAll,
		string(domain.ApplicationStatusPending),
		string(domain.ApplicationStatusApproved),
		string(domain.ApplicationStatusRejected):
	default:
		return filter, domain.NewValidationError("status", "unknown status filter")
	}

	if order := q.Get("sort_order"); order != "" {
		if order != string(domain.SortAsc) && order != string(domain.SortDesc) {
			return filter, domain.NewValidationError("sort_order", "sort_order must be asc or desc")
		}
		filter.SortOrder = domain.SortOrder(order)
	}

	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || n <= 0 {
			return filter, domain.NewValidationError("limit", "limit must be a positive integer")
		}
		filter.Limit = int32(n)
	}
	if raw := q.Get("offset"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || n < 0 {
			return filter, domain.NewValidationError("offset", "offset must be a non-negative integer")
		}
		filter.Offset = int32(n)
	}

	if raw := q.Get("created_from"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filter, domain.NewValidationError("created_from", "created_from must be RFC3339")
		}
		filter.CreatedFrom = &t
	}
	if raw := q.Get("created_to"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filter, domain.NewValidationError("created_to", "created_to must be RFC3339")
		}
		filter.CreatedTo = &t
	}

	return filter, nil
}
