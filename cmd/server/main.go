package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	_ "github.com/lib/pq"

	httpapi "studyhub-backend/internal/api/http"
	"studyhub-backend/internal/config"
	"studyhub-backend/internal/logger"
	"studyhub-backend/internal/repository/postgres"
	"studyhub-backend/internal/security"
	"studyhub-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting StudyHub Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
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

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret)

	// Initialize Email Service
	emailSvc := service.NewEmailService(
		cfg.Email.APIKey,
		cfg.Email.FromEmail,
		cfg.Email.FromName,
		cfg.Email.OpsEmail,
	)

	// Initialize Services
	notifier := service.NewNotifier(store.NotificationRepository, emailSvc)
	authority := service.NewMembershipAuthority(store.MemberRepository)

	studySvc := service.NewStudyService(store.StudyRepository, notifier)
	appSvc := service.NewApplicationService(
		store.ApplicationRepository,
		store.StudyRepository,
		store.MemberRepository,
		authority,
		notifier,
	)
	memberSvc := service.NewMemberService(
		store.MemberRepository,
		store.StudyRepository,
		authority,
		notifier,
	)
	formSvc := service.NewApplicationFormService(store.ApplicationFormRepository, authority)
	noteSvc := service.NewNotificationService(store.NotificationRepository)

	// Initialize HTTP handlers and router
	handlers := httpapi.NewHandlers(studySvc, appSvc, memberSvc, formSvc, noteSvc)
	router := httpapi.NewRouter(handlers, tokenManager)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("Failed to serve HTTP", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
