package http

import (
	"github.com/gorilla/mux"
)

// RegisterRoutes wires the application and review endpoints onto the router.
func RegisterRoutes(router *mux.Router, apps *ApplicationHandler, reviews *ReviewHandler) {
	api := router.PathPrefix("/api/v1").Subrouter()

	// Public submission
	api.HandleFunc("/applications", apps.Submit).Methods("POST")

	// Admin query surface
	api.HandleFunc("/admin/applications", apps.List).Methods("GET")
	api.HandleFunc("/admin/applications/stats", apps.Stats).Methods("GET")
	api.HandleFunc("/admin/audit-log", apps.AuditTrail).Methods("GET")
	api.HandleFunc("/admin/applications/{id:[0-9]+}", apps.Get).Methods("GET")

	// Admin command surface
	api.HandleFunc("/admin/applications/{id:[0-9]+}/approve", reviews.Approve).Methods("POST")
	api.HandleFunc("/admin/applications/{id:[0-9]+}/reject", reviews.Reject).Methods("POST")
	api.HandleFunc("/admin/applications/bulk-approve", reviews.BulkApprove).Methods("POST")
}
