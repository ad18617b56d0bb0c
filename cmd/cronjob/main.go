package main

import (
	"database/sql"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"clubreg-backend/internal/config"
	"clubreg-backend/internal/jobs"
	"clubreg-backend/internal/logger"
	"clubreg-backend/internal/repository/postgres"
	"clubreg-backend/internal/scheduler"
	"clubreg-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.Bool("run-once", false, "Run the notification retry job once and exit")
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
	logger.Info("Starting ClubReg cronjob runner...", "log_level", cfg.Log.Level)

	// Initialize Database
	logger.Info("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port)
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Services
	emailSvc := service.NewEmailService(cfg.Email.APIKey, cfg.Email.FromEmail, cfg.Email.FromName)
	notifySvc := service.NewNotificationService(store.NotificationLogRepository, store.ApplicationRepository, emailSvc)

	jobRunner := jobs.NewJobRunner(notifySvc)

	if *runOnce {
		jobRunner.RetryFailedNotifications()
		return
	}

	sched := scheduler.NewScheduler(jobRunner, cfg.Scheduler)
	sched.Start()

	// Block until interrupted
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	sched.Stop()
	logger.Info("Cronjob runner stopped")
}
