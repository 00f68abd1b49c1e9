package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/marvinh/leadscout/internal/config"
	"github.com/marvinh/leadscout/internal/dedupe"
	"github.com/marvinh/leadscout/internal/discovery"
	"github.com/marvinh/leadscout/internal/domain"
	"github.com/marvinh/leadscout/internal/logger"
	"github.com/marvinh/leadscout/internal/qualify"
	"github.com/marvinh/leadscout/internal/repository"
	"github.com/marvinh/leadscout/internal/service"
)

// cmd/scout runs a single discovery job from the command line and streams
// its events to stdout. Useful for local runs and smoke checks without the
// API server.
func main() {
	// Initialize logger first (with defaults)
	appLogger := logger.New(&logger.Config{
		Level:       "warn",
		Format:      "text",
		ServiceName: "leadscout-cli",
	})
	logger.SetDefaultLogger(appLogger)

	// Parse command line flags
	platform := flag.String("platform", "instagram", "Platform to search: instagram, linkedin, both")
	keywords := flag.String("keywords", "", "Comma-separated search keywords (required)")
	offering := flag.String("offering", "", "Description of what you are selling (required)")
	quantity := flag.Int("quantity", 50, "Number of profiles to discover")
	configPath := flag.String("config", "", "Path to config file")
	flag.Parse()

	if *keywords == "" || *offering == "" {
		flag.Usage()
		os.Exit(2)
	}

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to load config")
	}

	// Initialize database
	db, err := repository.InitDB(&cfg.Database)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to initialize database")
	}

	jobRepo := repository.NewJobRepository(db)
	leadRepo := repository.NewLeadRepository(db)
	logRepo := repository.NewLogRepository(db)

	var qualifier qualify.Qualifier
	if cfg.Qualifier.Enabled && cfg.Qualifier.APIKey != "" {
		qualifier = qualify.NewAIQualifier(&qualify.AIConfig{
			Enabled: true,
			Model:   cfg.Qualifier.Model,
			APIKey:  cfg.Qualifier.APIKey,
			BaseURL: cfg.Qualifier.BaseURL,
			Timeout: cfg.Qualifier.Timeout,
		})
	} else {
		qualifier = qualify.NewHeuristic(cfg.Scout.ScoreFloor)
	}

	discoverer, err := discovery.NewFromConfig(&cfg.Discovery)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to initialize discoverer")
	}

	scout := service.NewScoutService(
		jobRepo,
		logRepo,
		leadRepo,
		dedupe.NewLedger(leadRepo),
		service.NewWorkerPool(cfg.Scout.Workers),
		service.NewBroadcaster(),
		qualifier,
		discoverer,
		nil,
		appLogger,
		service.ScoutConfig{
			MinFollowers:  cfg.Scout.MinFollowers,
			MaxFollowers:  cfg.Scout.MaxFollowers,
			ScoreFloor:    cfg.Scout.ScoreFloor,
			StatsInterval: cfg.Scout.StatsInterval,
		},
	)

	ctx := context.Background()
	job, err := scout.CreateJob(ctx, &service.JobSpec{
		Platform: domain.Platform(*platform),
		Keywords: splitKeywords(*keywords),
		Offering: *offering,
		Quantity: *quantity,
	})
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to create job")
	}

	// Subscribe before starting so no event is missed
	hub := scout.Broadcaster()
	sub := hub.Subscribe(job.ID)
	defer hub.Unsubscribe(job.ID, sub)

	if err := scout.Start(ctx, job.ID); err != nil {
		appLogger.WithError(err).Fatal("Failed to start job")
	}
	fmt.Printf("job %s started: target %d on %s\n", job.ID, job.TargetQuantity, job.Platform)

	// Ctrl-C requests cooperative cancellation; the job still settles and
	// emits its complete event.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-quit:
			fmt.Println("cancelling...")
			if err := scout.Cancel(ctx, job.ID); err != nil {
				appLogger.WithError(err).Error("Failed to cancel job")
			}
			signal.Stop(quit)
		case ev, ok := <-sub.Events():
			if !ok {
				return
			}
			switch ev.Type {
			case domain.EventTypeLog:
				fmt.Printf("[%s] worker=%d %s\n", ev.Log.Level, ev.Log.Worker, ev.Log.Message)
			case domain.EventTypeStats:
				fmt.Printf("  processed=%d qualified=%d duplicates=%d workers=%d/%d\n",
					ev.Stats.ProcessedCount, ev.Stats.QualifiedCount, ev.Stats.DuplicatesSkipped,
					ev.Stats.ActiveWorkers, ev.Stats.TotalWorkers)
			case domain.EventTypeComplete:
				fmt.Printf("job %s: %d processed, %d qualified, %d duplicates skipped\n",
					ev.Stats.Status, ev.Stats.ProcessedCount, ev.Stats.QualifiedCount,
					ev.Stats.DuplicatesSkipped)
				return
			}
		}
	}
}

func splitKeywords(raw string) []string {
	var out []string
	for _, k := range strings.Split(raw, ",") {
		if k = strings.TrimSpace(k); k != "" {
			out = append(out, k)
		}
	}
	return out
}
