package domain

import "time"

type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusApproved ApplicationStatus = "approved"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// ClubApplication is a club's request for verified onboarding. Status only
// leaves pending through an admin decision; once decided, reviewed_by and
// reviewed_at are always set.
type ClubApplication struct {
	ID              int64             `json:"id"`
	ClubName        string            `json:"club_name"`
	ContactName     string            `json:"contact_name"`
	Email           string            `json:"email"`
	Phone           string            `json:"phone"`
	Location        string            `json:"location"`
	Description     string            `json:"description"`
	SportCategories []string          `json:"sport_categories"`
	Status          ApplicationStatus `json:"status"`
	AdminNotes      *string           `json:"admin_notes,omitempty"`
	ReviewedBy      *int32            `json:"reviewed_by,omitempty"`
	ReviewedAt      *time.Time        `json:"reviewed_at,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// ApplicationStats are the aggregate counts shown on the review dashboard.
type ApplicationStats struct {
	Pending  int32 `json:"pending"`
	Approved int32 `json:"approved"`
	Rejected int32 `json:"rejected"`
	Total    int32 `json:"total"`
}

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ApplicationFilter narrows a List call. Zero values mean "no constraint"
// except Status, which defaults to pending; use StatusAll to disable the
// status predicate.
type ApplicationFilter struct {
	Status      string
	Search      string
	Location    string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	SortBy      string
	SortOrder   SortOrder
	Limit       int32
	Offset      int32
}

// StatusAll disables status filtering in List.
const StatusAll = "all"

const (
	DefaultPageSize = 10
	SortByName      = "club_name"
	SortByCreatedAt = "created_at"
	SortByStatus    = "status"
	SortByLocation  = "location"
)

// Normalize fills filter defaults in one place so repository and handler
// agree on them.
func (f *ApplicationFilter) Normalize() {
	if f.Status == "" {
		f.Status = string(ApplicationStatusPending)
	}
	if f.SortBy == "" {
		f.SortBy = SortByCreatedAt
	}
	if f.SortOrder == "" {
		f.SortOrder = SortDesc
	}
	if f.Limit <= 0 {
		f.Limit = DefaultPageSize
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
}

// Admin is the resolved identity of a reviewing administrator.
type Admin struct {
	ID      int32  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}
