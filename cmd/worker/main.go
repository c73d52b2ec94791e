package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.temporal.io/sdk/worker"

	"github.com/ghuser/gudang/pkg/app"
	"github.com/ghuser/gudang/pkg/cache"
	"github.com/ghuser/gudang/pkg/config"
	"github.com/ghuser/gudang/pkg/database"
	"github.com/ghuser/gudang/pkg/events"
	"github.com/ghuser/gudang/pkg/logger"
	"github.com/ghuser/gudang/pkg/storage"
	"github.com/ghuser/gudang/pkg/telemetry"
	"github.com/ghuser/gudang/pkg/workflows"
	inventoryEvents "github.com/ghuser/gudang/services/inventory/domain/events"
	reportSvcs "github.com/ghuser/gudang/services/report/application/services"
	reportWorkflows "github.com/ghuser/gudang/services/report/application/workflows"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	ctx := context.Background()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	db, err := database.New(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer db.Close()
	log.Info("database pool connected")

	eventBus, err := events.NewEventBus(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	objectStore, err := storage.New(ctx, cfg)
	if err != nil {
		log.Error("failed to connect to object storage", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	appConfig := &app.Application{
		Db:       db,
		Logger:   log,
		EventBus: eventBus,
		Redis:    redisClient,
		Storage:  objectStore,
	}

	if err := registerSubscribers(ctx, appConfig); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	// Temporal worker for the report snapshot workflow. Optional: the event
	// subscribers keep running without it.
	stopTemporal, err := startTemporalWorker(ctx, cfg, appConfig)
	if err != nil {
		log.Warn("temporal unavailable, snapshot worker disabled", "error", err)
	} else {
		defer stopTemporal()
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")

	// EventBus.Close() (via defer) waits for in-flight handlers.
	log.Info("worker stopped")
}

// registerSubscribers wires all domain event handlers.
// Add new topics here as more services publish events.
func registerSubscribers(ctx context.Context, a *app.Application) error {
	errCh, err := a.EventBus.Subscribe(ctx, inventoryEvents.TopicMovementRecorded, handleMovementRecorded(a))
	if err != nil {
		return err
	}

	// Drain subscriber errors in background so the channel never blocks.
	go func() {
		for err := range errCh {
			a.Logger.ErrorContext(ctx, "subscriber error",
				"topic", inventoryEvents.TopicMovementRecorded,
				"error", err,
			)
		}
	}()

	a.Logger.Info("event subscribers registered", "topics", []string{inventoryEvents.TopicMovementRecorded})
	return nil
}

// handleMovementRecorded returns a handler for movement events. Handlers must
// be idempotent — the bus retries up to 3× on failure.
//
// Every movement means a product's stock (or existence) changed, so the
// cached read model for that product is dropped; the next GetByID rebuilds it
// from Postgres. Deletion events carry no product ID and need no action: the
// row is gone and the recorder already removed its cache entry.
func handleMovementRecorded(a *app.Application) func(context.Context, *message.Message) error {
	productCache := cache.NewProductCache(a.Redis)
	return func(ctx context.Context, msg *message.Message) error {
		var evt inventoryEvents.MovementRecordedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}
		if evt.ProductID == nil {
			return nil
		}

		if err := productCache.Delete(ctx, *evt.ProductID); err != nil {
			// Invalidation is best-effort; the entry expires by TTL anyway.
			a.Logger.WarnContext(ctx, "cache invalidation failed for movement",
				"product_id", evt.ProductID, "movement_id", evt.MovementID, "error", err)
		} else {
			a.Logger.InfoContext(ctx, "product cache invalidated",
				"product_id", evt.ProductID, "type", evt.Type)
		}

		return nil
	}
}

// startTemporalWorker registers the snapshot workflow and its activities on
// the report task queue. Returns a stop function.
func startTemporalWorker(ctx context.Context, cfg *config.Config, a *app.Application) (func(), error) {
	tc, err := workflows.NewTemporalClient(ctx, cfg.TemporalHostPort, cfg.TemporalNamespace, a.Logger)
	if err != nil {
		return nil, err
	}

	svcs := reportSvcs.New(a)
	w := worker.New(tc.Client, reportWorkflows.TaskQueue, worker.Options{})
	w.RegisterWorkflow(reportWorkflows.StockSnapshotWorkflow)
	w.RegisterActivity(&reportWorkflows.Activities{
		Reports: svcs.Reports,
		Store:   a.Storage,
	})

	if err := w.Start(); err != nil {
		tc.Close()
		return nil, err
	}
	a.Logger.Info("temporal worker started", "task_queue", reportWorkflows.TaskQueue)

	return func() {
		w.Stop()
		tc.Close()
	}, nil
}
