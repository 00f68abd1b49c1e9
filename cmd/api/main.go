package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/marvinh/leadscout/internal/api"
	"github.com/marvinh/leadscout/internal/api/middleware"
	"github.com/marvinh/leadscout/internal/config"
	"github.com/marvinh/leadscout/internal/dedupe"
	"github.com/marvinh/leadscout/internal/discovery"
	"github.com/marvinh/leadscout/internal/logger"
	"github.com/marvinh/leadscout/internal/qualify"
	"github.com/marvinh/leadscout/internal/repository"
	"github.com/marvinh/leadscout/internal/service"
	"github.com/marvinh/leadscout/internal/storage"
)

func main() {
	// Initialize logger first (with env defaults)
	appLogger := logger.NewDefault()
	logger.SetDefaultLogger(appLogger)
	defer logger.Sync()

	// Load configuration
	// Support CONFIG_PATH environment variable for production deployments
	configPath := os.Getenv("CONFIG_PATH")
	cfg, err := config.Load(configPath)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to load config")
	}

	// Initialize database
	db, err := repository.InitDB(&cfg.Database)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to initialize database")
	}

	// Initialize repositories
	jobRepo := repository.NewJobRepository(db)
	leadRepo := repository.NewLeadRepository(db)
	logRepo := repository.NewLogRepository(db)

	// Dedupe ledger backed by the leads table
	ledger := dedupe.NewLedger(leadRepo)

	// Shared worker pool
	pool := service.NewWorkerPool(cfg.Scout.Workers)

	// Candidate qualifier: AI when configured, local heuristic otherwise
	var qualifier qualify.Qualifier
	if cfg.Qualifier.Enabled && cfg.Qualifier.APIKey != "" {
		qualifier = qualify.NewAIQualifier(&qualify.AIConfig{
			Enabled: true,
			Model:   cfg.Qualifier.Model,
			APIKey:  cfg.Qualifier.APIKey,
			BaseURL: cfg.Qualifier.BaseURL,
			Timeout: cfg.Qualifier.Timeout,
		})
		appLogger.WithField("model", cfg.Qualifier.Model).Info("AI qualifier enabled")
	} else {
		qualifier = qualify.NewHeuristic(cfg.Scout.ScoreFloor)
		appLogger.Info("AI qualifier disabled, using heuristic scoring")
	}

	// Candidate discoverer
	discoverer, err := discovery.NewFromConfig(&cfg.Discovery)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to initialize discoverer")
	}

	// Optional S3-compatible report archive
	var archiver service.ReportArchiver
	if cfg.Archive.Enabled {
		objectStorage, err := storage.NewS3Storage(&storage.S3Config{
			Endpoint:  cfg.Archive.Endpoint,
			AccessKey: cfg.Archive.AccessKey,
			SecretKey: cfg.Archive.SecretKey,
			UseSSL:    cfg.Archive.UseSSL,
			Bucket:    cfg.Archive.Bucket,
			Region:    cfg.Archive.Region,
			PublicURL: cfg.Archive.PublicURL,
		})
		if err != nil {
			appLogger.WithError(err).Fatal("Failed to initialize archive storage")
		}
		if err := objectStorage.EnsureBucket(context.Background()); err != nil {
			appLogger.WithError(err).Fatal("Failed to ensure archive bucket")
		}
		archiver = storage.NewReportArchiver(objectStorage, leadRepo)
		appLogger.WithField("bucket", cfg.Archive.Bucket).Info("Report archive enabled")
	}

	// Job controller
	scout := service.NewScoutService(
		jobRepo,
		logRepo,
		leadRepo,
		ledger,
		pool,
		service.NewBroadcaster(),
		qualifier,
		discoverer,
		archiver,
		appLogger,
		service.ScoutConfig{
			MinFollowers:  cfg.Scout.MinFollowers,
			MaxFollowers:  cfg.Scout.MaxFollowers,
			ScoreFloor:    cfg.Scout.ScoreFloor,
			StatsInterval: cfg.Scout.StatsInterval,
		},
	)

	// Setup router
	router := api.SetupRouter(scout, appLogger, cfg.Server.Mode, middleware.CORSConfig{
		AllowedOrigins:  cfg.Server.CORS.AllowedOrigins,
		AllowAllOrigins: cfg.Server.CORS.AllowAllOrigins,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		appLogger.WithFields(logger.Fields{
			"port":    cfg.Server.Port,
			"mode":    cfg.Server.Mode,
			"workers": pool.Budget(),
		}).Info("Starting API server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.WithError(err).Fatal("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.WithError(err).Fatal("Server forced to shutdown")
	}

	appLogger.Info("Server exited")
}
