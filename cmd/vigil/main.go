// Vigil compliance audit server — indexes repositories into the code map,
// runs staged audit cases against regulation rules, and serves the HTTP API.
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

	"github.com/fincomply/vigil/ent/job"
	"github.com/fincomply/vigil/pkg/adjudicator"
	"github.com/fincomply/vigil/pkg/api"
	"github.com/fincomply/vigil/pkg/audit"
	"github.com/fincomply/vigil/pkg/cache"
	"github.com/fincomply/vigil/pkg/caselog"
	"github.com/fincomply/vigil/pkg/cleanup"
	"github.com/fincomply/vigil/pkg/codemap"
	"github.com/fincomply/vigil/pkg/config"
	"github.com/fincomply/vigil/pkg/database"
	"github.com/fincomply/vigil/pkg/events"
	"github.com/fincomply/vigil/pkg/gitsource"
	"github.com/fincomply/vigil/pkg/indexer"
	"github.com/fincomply/vigil/pkg/masking"
	"github.com/fincomply/vigil/pkg/provider"
	"github.com/fincomply/vigil/pkg/queue"
	"github.com/fincomply/vigil/pkg/retriever"
	"github.com/fincomply/vigil/pkg/services"
	"github.com/fincomply/vigil/pkg/slack"
	"github.com/fincomply/vigil/pkg/tickets"
	"github.com/fincomply/vigil/pkg/version"
	"github.com/joho/godotenv"
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

	slog.Info("Starting vigil",
		"version", version.Full(),
		"http_port", httpPort,
		"pod_id", podID,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Database (runs migrations)
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

	// 3. One-time startup orphan cleanup
	if err := queue.CleanupStartupOrphans(ctx, dbClient.Client, podID); err != nil {
		slog.Error("Failed to cleanup startup orphans", "error", err)
		// Non-fatal — continue
	}

	// 4. Stores bypassing Ent (pgvector code map, regulation chunks)
	codeMapStore := codemap.NewStore(dbClient.DB())
	regulationStore := codemap.NewRegulationStore(dbClient.DB())

	// 5. Provider client and enrichment cache
	openAIClient, err := provider.NewOpenAIClient(cfg.Providers)
	if err != nil {
		slog.Error("Failed to initialize provider client", "error", err)
		os.Exit(1)
	}

	// Code leaves the process only through the provider pair, so secret
	// redaction wraps it there.
	var embedProvider provider.EmbeddingProvider = openAIClient
	var llmProvider provider.LLMProvider = openAIClient
	if cfg.Redaction.Enabled {
		redacting := provider.NewRedactingClient(openAIClient, openAIClient, masking.NewService(cfg.Redaction))
		embedProvider = redacting
		llmProvider = redacting
	}

	var l2 cache.Cache
	if cfg.Cache.RedisAddr != "" {
		redisCache, err := cache.NewRedisCache(ctx, cfg.Cache.RedisAddr, os.Getenv(cfg.Cache.RedisPasswordEnv))
		if err != nil {
			slog.Error("Failed to connect to Redis", "addr", cfg.Cache.RedisAddr, "error", err)
			os.Exit(1)
		}
		l2 = redisCache
		slog.Info("Redis cache tier enabled", "addr", cfg.Cache.RedisAddr)
	}
	enrichCache, err := cache.NewEnrichmentCache(cfg.Cache, l2)
	if err != nil {
		slog.Error("Failed to initialize enrichment cache", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := enrichCache.Close(); err != nil {
			slog.Error("Error closing enrichment cache", "error", err)
		}
	}()

	// 6. Indexing pipeline
	gitSource := gitsource.NewGitCLI(cfg.Git, &gitsource.EnvTokenSource{EnvVar: cfg.Git.TokenEnv})
	enricher := indexer.NewEnricher(embedProvider, llmProvider, enrichCache, cfg.Indexing.EnrichmentConcurrency)
	codeIndexer := indexer.NewIndexer(dbClient.Client, codeMapStore, gitSource, enricher, cfg.Indexing)

	// 7. Retrieval and adjudication
	codeRetriever := retriever.NewRetriever(codeMapStore, embedProvider, enrichCache, cfg.Retrieval)
	verdictor := adjudicator.NewAdjudicator(llmProvider)

	// 8. Streaming infrastructure (LISTEN/NOTIFY fanout)
	broker := events.NewBroker()
	notifyListener := events.NewNotifyListener(dbConfig.DSN(), broker)
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start NotifyListener", "error", err)
		os.Exit(1)
	}
	defer notifyListener.Stop(ctx)

	publisher := events.NewPublisher(dbClient.DB())
	logService := caselog.NewService(dbClient.Client, publisher)
	slog.Info("Streaming infrastructure initialized")

	// 9. Ticketing (disabled when no base URL is configured)
	var issueCreator tickets.IssueCreator
	ticketClient, err := tickets.NewClient(cfg.Tickets)
	if err != nil {
		slog.Error("Failed to initialize ticket client", "error", err)
		os.Exit(1)
	}
	if ticketClient != nil {
		issueCreator = ticketClient
		slog.Info("Ticketing enabled", "base_url", cfg.Tickets.BaseURL, "project", cfg.Tickets.Project)
	}
	ticketService := tickets.NewService(dbClient.Client, issueCreator)

	// 10. Slack notifications (nil service when no channel is configured)
	notifier := slack.NewService(slack.ServiceConfig{
		Token:        os.Getenv(cfg.Notifications.SlackTokenEnv),
		Channel:      cfg.Notifications.SlackChannel,
		DashboardURL: cfg.Notifications.DashboardURL,
	})
	if notifier != nil {
		slog.Info("Slack notifications enabled", "channel", cfg.Notifications.SlackChannel)
	}

	// 11. Audit orchestrator
	orchestrator := audit.NewOrchestrator(dbClient.Client, audit.Deps{
		Regulations: regulationStore,
		Retriever:   codeRetriever,
		Adjudicator: verdictor,
		LLM:         llmProvider,
		Logs:        logService,
		LogExpiry:   logService,
		Tickets:     ticketService,
		Publisher:   publisher,
		Notifier:    notifier,
	}, cfg.Retrieval, cfg.Retention, podID)

	// 12. Queue, domain services, worker pool (workers start before HTTP)
	queueService := queue.NewService(dbClient.Client, cfg.Queue)
	repoService := services.NewRepoService(dbClient.Client, queueService)
	caseService := services.NewCaseService(dbClient.Client, queueService, regulationStore)
	findingService := services.NewFindingService(dbClient.Client)
	slog.Info("Services initialized")

	workerPool := queue.NewWorkerPool(podID, dbClient.Client, cfg.Queue, map[job.Type]queue.Executor{
		job.TypeIndex: codeIndexer,
		job.TypeAudit: orchestrator,
	})
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 13. Retention sweeps
	cleanupService := cleanup.NewService(dbClient.Client, logService, cfg.Retention)
	cleanupService.Start(ctx)

	// 14. HTTP server
	server := api.NewServer(repoService, caseService, findingService, queueService,
		logService, orchestrator, broker, workerPool, dbClient.DB())
	httpServer := &http.Server{
		Addr:    ":" + httpPort,
		Handler: server.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Vigil started successfully",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount)

	// 15. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 16. Graceful shutdown. The pool waits up to the configured graceful
	// timeout for in-flight jobs; anything still running is abandoned and
	// reclaimed by lease expiry.
	workerPool.Stop()
	cleanupService.Stop()

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
