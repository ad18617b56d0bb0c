package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"
	"time"

	httpapi "clubreg-backend/internal/api/http"
	"clubreg-backend/internal/config"
	"clubreg-backend/internal/jobs"
	"clubreg-backend/internal/logger"
	"clubreg-backend/internal/repository/postgres"
	"clubreg-backend/internal/scheduler"
	"clubreg-backend/internal/security"
	"clubreg-backend/internal/service"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Optional .env for local development; environment wins over the YAML file
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting ClubReg backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret)
	csrfManager := security.NewCSRFManager(cfg.Security.CSRFSecret)
	sessions := security.NewMemorySessionStore(time.Duration(cfg.Security.SessionTimeoutMinutes) * time.Minute)
	limiter := security.NewMemoryRateLimiter(
		time.Duration(cfg.Security.RateLimitWindowSeconds)*time.Second,
		security.Limits{
			security.ActionApprove:     cfg.Security.ApproveLimit,
			security.ActionReject:      cfg.Security.RejectLimit,
			security.ActionBulkApprove: cfg.Security.BulkApproveLimit,
		},
	)
	guard := security.NewActionGuard(tokenManager, sessions, limiter, csrfManager)

	// Initialize Services
	emailSvc := service.NewEmailService(cfg.Email.APIKey, cfg.Email.FromEmail, cfg.Email.FromName)
	notifySvc := service.NewNotificationService(store.NotificationLogRepository, store.ApplicationRepository, emailSvc)
	appSvc := service.NewApplicationService(store.ApplicationRepository, store.AuditLogRepository, store.AdminRepository)
	approvalSvc := service.NewApprovalService(store.ApplicationRepository, store.AuditLogRepository, store.AdminRepository, notifySvc)
	bulkSvc := service.NewBulkService(approvalSvc, store.AuditLogRepository)

	// Initialize HTTP API
	router := mux.NewRouter()
	appHandler := httpapi.NewApplicationHandler(appSvc)
	reviewHandler := httpapi.NewReviewHandler(guard, approvalSvc, bulkSvc)
	httpapi.RegisterRoutes(router, appHandler, reviewHandler)

	// Start notification retry scheduler
	jobRunner := jobs.NewJobRunner(notifySvc)
	sched := scheduler.NewScheduler(jobRunner, cfg.Scheduler)
	sched.Start()
	defer sched.Stop()

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
