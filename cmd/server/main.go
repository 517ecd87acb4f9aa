package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"

	httpapi "propertypulse-backend/internal/api/http"
	"propertypulse-backend/internal/config"
	"propertypulse-backend/internal/identity"
	"propertypulse-backend/internal/logger"
	"propertypulse-backend/internal/repository/postgres"
	"propertypulse-backend/internal/security"
	"propertypulse-backend/internal/service"

	_ "github.com/lib/pq"
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
	logger.Info("Starting PropertyPulse Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
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
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	// Initialize Identity Provider
	var idp identity.Provider
	if cfg.Firebase.Enabled {
		firebaseProvider, err := identity.NewFirebaseProvider(context.Background(), cfg.Firebase.CredentialsFile, cfg.Firebase.ContinueURL)
		if err != nil {
			logger.Error("Failed to initialize Firebase identity provider", "error", err)
			log.Fatalf("Failed to initialize Firebase identity provider: %v", err)
		}
		idp = firebaseProvider
		logger.Info("Firebase identity provider initialized")
	} else {
		logger.Info("Identity provider disabled, account provisioning will be local only")
		idp = identity.NewDisabledProvider()
	}

	// Initialize Email Service
	emailSvc := service.NewEmailService(
		cfg.SendGrid.APIKey,
		cfg.SendGrid.FromEmail,
		cfg.SendGrid.FromName,
	)

	// Initialize Services
	authSvc := service.NewAuthService(
		store.UserRepository,
		store.JoinRequestRepository,
		idp,
		emailSvc,
		tokenManager,
	)
	adminSvc := service.NewAdminService(
		store.JoinRequestRepository,
		store.UserRepository,
		store.FamilyRepository,
		idp,
		emailSvc,
	)
	userSvc := service.NewUserService(store.UserRepository)
	familySvc := service.NewFamilyService(store.FamilyRepository)
	propertySvc := service.NewPropertyService(store.PropertyRepository, store.UserRepository)
	contractSvc := service.NewContractService(
		store.ContractRepository,
		store.PropertyRepository,
		store.UserRepository,
		emailSvc,
	)
	eventSvc := service.NewEventService(store.EventRepository, store.PropertyRepository)

	// Initialize HTTP handlers and router
	handlers := httpapi.NewHandlers(
		authSvc,
		adminSvc,
		propertySvc,
		contractSvc,
		eventSvc,
		familySvc,
		userSvc,
	)
	router := httpapi.NewRouter(handlers, tokenManager)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
