// NarraForge production server — accepts Production Briefs over HTTP, runs
// the ten-stage pipeline through a Postgres-backed worker pool, and streams
// job events over WebSocket.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/narraforge/narraforge/pkg/api"
	"github.com/narraforge/narraforge/pkg/checkpoint"
	"github.com/narraforge/narraforge/pkg/cleanup"
	"github.com/narraforge/narraforge/pkg/config"
	"github.com/narraforge/narraforge/pkg/database"
	"github.com/narraforge/narraforge/pkg/events"
	"github.com/narraforge/narraforge/pkg/memory"
	"github.com/narraforge/narraforge/pkg/model"
	"github.com/narraforge/narraforge/pkg/orchestrator"
	"github.com/narraforge/narraforge/pkg/queue"
	"github.com/narraforge/narraforge/pkg/services"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	podID := resolvePodID()

	slog.Info("Starting NarraForge",
		"http_port", httpPort,
		"pod_id", podID,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}
	stats := cfg.Stats()
	slog.Info("Configuration loaded",
		"providers", stats.Providers,
		"banned_phrases", stats.BannedPhrases)

	// 2. Initialize database (runs embedded migrations)
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Re-queue jobs this pod was running before a restart. Their
	// checkpoints survive, so the pipeline resumes where it stopped.
	if err := queue.RequeueStartupOrphans(ctx, dbClient.Client, podID); err != nil {
		slog.Error("Failed to requeue startup orphans", "error", err)
		// Non-fatal — the periodic orphan scan will catch them
	}

	// 4. Domain services
	jobService := services.NewJobService(dbClient.Client)
	eventService := services.NewEventService(dbClient.Client)
	warningsService := services.NewSystemWarningsService()
	slog.Info("Services initialized")

	// Warn early when the output directory is unusable; stage 10 would
	// otherwise fail every job at the very end of the pipeline.
	if err := os.MkdirAll(cfg.Production.OutputDirectory, 0o755); err != nil {
		warningsService.AddWarning(services.WarningCategoryOutputDir,
			"output directory is not writable", err.Error(), "")
		slog.Warn("Output directory not writable",
			"dir", cfg.Production.OutputDirectory, "error", err)
	}

	// 5. Streaming infrastructure
	eventPublisher := events.NewEventPublisher(dbClient.DB())
	catchupQuerier := events.NewEventServiceAdapter(eventService)
	connManager := events.NewConnectionManager(catchupQuerier, 10*time.Second)

	// Dedicated pgx connection for LISTEN
	notifyListener := events.NewNotifyListener(dbConfig.DSN(), connManager)
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start NotifyListener", "error", err)
		os.Exit(1)
	}
	defer notifyListener.Stop(ctx)

	connManager.SetListener(notifyListener)
	slog.Info("Streaming infrastructure initialized")

	// 6. Model routing and the pipeline orchestrator
	ledger := model.NewEntLedger(dbClient.Client)
	router := model.NewRouter(cfg, ledger)
	mem := memory.New(dbClient.Client)

	executor, err := orchestrator.New(dbClient.Client, cfg, router, ledger, mem, eventPublisher, slog.Default())
	if err != nil {
		slog.Error("Failed to build pipeline orchestrator", "error", err)
		os.Exit(1)
	}

	// 7. Worker pool (before the HTTP server, so submitted jobs have workers)
	workerPool := queue.NewWorkerPool(podID, dbClient.Client, cfg.Queue, executor, eventPublisher)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 8. Retention sweeps
	checkpoints := checkpoint.NewManager(dbClient.Client, slog.Default())
	cleanupService := cleanup.NewService(cfg.Retention, jobService, eventService, checkpoints)
	cleanupService.Start(ctx)
	defer cleanupService.Stop()

	// 9. HTTP server
	httpServer := api.NewServer(cfg, dbClient, jobService, eventService, workerPool, connManager)
	httpServer.SetWarningsService(warningsService)

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + httpPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("NarraForge started successfully",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount)

	// 10. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 11. Graceful shutdown: drain workers first, then the HTTP server.
	// Jobs that outlive the budget are orphan-recovered by another pod.
	workerShutdownCtx, workerCancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer workerCancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-workerShutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded — incomplete jobs will be orphan-recovered")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
