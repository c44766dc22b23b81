// Stanley ops chat server: provides the conversation HTTP API, streams
// workflow events over SSE, and runs background conversation summarization.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/stanley-ops/stanley/pkg/api"
	"github.com/stanley-ops/stanley/pkg/cache"
	"github.com/stanley-ops/stanley/pkg/cleanup"
	"github.com/stanley-ops/stanley/pkg/config"
	"github.com/stanley-ops/stanley/pkg/database"
	"github.com/stanley-ops/stanley/pkg/llm"
	"github.com/stanley-ops/stanley/pkg/masking"
	"github.com/stanley-ops/stanley/pkg/memory"
	"github.com/stanley-ops/stanley/pkg/orchestrator"
	"github.com/stanley-ops/stanley/pkg/runbook"
	"github.com/stanley-ops/stanley/pkg/services"
	"github.com/stanley-ops/stanley/pkg/tools"
	"github.com/stanley-ops/stanley/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	// Parse command-line flags
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

	ctx := context.Background()

	// 1. Load settings
	settings, err := config.LoadSettingsFromEnv()
	if err != nil {
		slog.Error("Failed to load settings", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting Stanley",
		"version", version.Full(),
		"host", settings.Host,
		"port", settings.Port,
		"chat_history_mode", settings.ChatHistoryMode)

	// 2. Initialize database (postgres and redis modes only)
	var dbClient *database.Client
	if settings.ChatHistoryMode != config.HistoryModeLocal {
		dbConfig, err := database.LoadConfigFromEnv()
		if err != nil {
			slog.Error("Failed to load database config", "error", err)
			os.Exit(1)
		}
		dbClient, err = database.NewClient(ctx, dbConfig)
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
	}

	// 3. Initialize Redis conversation cache (redis mode only)
	var conversationCache *cache.ConversationCache
	if settings.ChatHistoryMode == config.HistoryModeRedis {
		conversationCache, err = cache.NewConversationCache(ctx, cache.Config{
			Addr:     settings.RedisAddr,
			Password: settings.RedisPassword,
			DB:       settings.RedisDB,
			TTL:      settings.CacheTTL,
		})
		if err != nil {
			slog.Error("Failed to connect to redis", "addr", settings.RedisAddr, "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := conversationCache.Close(); err != nil {
				slog.Error("Error closing conversation cache", "error", err)
			}
		}()
		slog.Info("Connected to Redis cache", "addr", settings.RedisAddr)
	}

	// 4. Build the conversation store for the selected mode
	store, err := newStore(settings, dbClient, conversationCache)
	if err != nil {
		slog.Error("Failed to initialize conversation store", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(); err != nil {
			slog.Error("Error closing conversation store", "error", err)
		}
	}()

	// 5. Registries and domain services
	modelReg := config.NewModelRegistry()
	agentReg := config.NewSubAgentRegistry()

	toolReg := tools.NewRegistry()
	tools.RegisterBuiltinTools(toolReg)
	if settings.RunbookRepoURL != "" {
		runbookService := runbook.NewService(runbook.Config{
			RepoURL:  settings.RunbookRepoURL,
			Token:    settings.RunbookToken,
			CacheTTL: settings.RunbookCacheTTL,
		})
		runbookService.RegisterTool(toolReg)
		slog.Info("Runbook repository wired", "repo", settings.RunbookRepoURL)
	}
	pool := tools.NewPool(settings.ToolPoolWorkers)
	defer pool.Stop()

	convService := services.NewConversationService(store, modelReg, settings.ConversationHistoryDays)
	slog.Info("Services initialized",
		"models", modelReg.Names(),
		"sub_agents", agentReg.Keys(),
		"tools", toolReg.Names())

	// 6. Create LLM client
	llmClient, err := llm.NewOpenAIClient(llm.OpenAIConfig{
		Endpoint:   settings.AzureOpenAIEndpoint,
		APIKey:     settings.AzureOpenAIAPIKey,
		APIVersion: settings.AzureOpenAIAPIVersion,
	}, slog.Default())
	if err != nil {
		slog.Error("Failed to initialize LLM client", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := llmClient.Close(); err != nil {
			slog.Error("Error closing LLM client", "error", err)
		}
	}()
	slog.Info("LLM client initialized", "endpoint", settings.AzureOpenAIEndpoint)

	// 7. Memory service (summary records live next to the conversations)
	memStore, err := newMemoryStore(settings, dbClient)
	if err != nil {
		slog.Error("Failed to initialize memory store", "error", err)
		os.Exit(1)
	}
	memService := memory.NewService(memStore, store, llmClient, memory.Config{
		RollingWindow:     settings.MemoryRollingWindow,
		SummarizeAfterSeq: settings.MemorySummarizeAfterSeq,
		Model:             settings.MemoryModel,
		LLMTimeout:        settings.LLMTimeout,
	})

	// 8. Retention cleanup loop (needs the durable store)
	var cleanupService *cleanup.Service
	if dbClient != nil {
		cleanupService = cleanup.NewService(cleanup.Config{
			ConversationRetention: time.Duration(settings.ConversationRetentionDays) * 24 * time.Hour,
			Interval:              settings.CleanupInterval,
		}, dbClient.Client)
		cleanupService.Start(ctx)
		defer cleanupService.Stop()
	}

	// 9. Orchestrator
	maskingService := masking.NewService(settings.MaskToolResults)
	orch := orchestrator.New(orchestrator.Config{
		Conversations: convService,
		Memory:        memService,
		Client:        llmClient,
		Agents:        agentReg,
		Tools:         toolReg,
		Pool:          pool,
		Masker:        maskingService,
		Settings:      settings,
	})

	// 10. Create HTTP server
	server := api.NewServer(api.Config{
		Conversations: convService,
		Orchestrator:  orch,
		Models:        modelReg,
		Agents:        agentReg,
		Settings:      settings,
		DB:            dbClient,
		Cache:         conversationCache,
	})

	httpServer := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", settings.Host, settings.Port),
		Handler: server.Router(),
	}

	// 11. Start HTTP server (non-blocking)
	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Stanley started successfully")

	// 12. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 13. Graceful shutdown: stop accepting requests, then let in-flight
	// summarizations finish.
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	memDone := make(chan struct{})
	go func() {
		memService.Wait()
		close(memDone)
	}()
	select {
	case <-memDone:
		slog.Info("Memory summarizations drained")
	case <-time.After(30 * time.Second):
		slog.Warn("Memory shutdown timeout exceeded, abandoning in-flight summaries")
	}

	slog.Info("Shutdown complete")
}

// newStore builds the conversation store for the configured history mode.
func newStore(settings config.Settings, dbClient *database.Client, conversationCache *cache.ConversationCache) (services.Store, error) {
	switch settings.ChatHistoryMode {
	case config.HistoryModeLocal:
		return services.NewStore(settings.ChatHistoryMode, nil, nil)
	case config.HistoryModePostgres:
		return services.NewStore(settings.ChatHistoryMode, dbClient.Client, nil)
	default:
		return services.NewStore(settings.ChatHistoryMode, dbClient.Client, conversationCache)
	}
}

// newMemoryStore pairs the memory backend with the conversation backend:
// in-memory records for local mode, Postgres otherwise.
func newMemoryStore(settings config.Settings, dbClient *database.Client) (memory.Store, error) {
	if settings.ChatHistoryMode == config.HistoryModeLocal {
		return memory.NewLocalStore(), nil
	}
	if dbClient == nil {
		return nil, fmt.Errorf("chat history mode %q requires a database client", settings.ChatHistoryMode)
	}
	return memory.NewEntStore(dbClient.Client), nil
}
