// Package config holds environment-driven settings, the model registry and
// the sub-agent registry.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// ChatHistoryMode selects the conversation store backend.
type ChatHistoryMode string

const (
	// HistoryModeLocal keeps conversations in process memory (dev only).
	HistoryModeLocal ChatHistoryMode = "local"
	// HistoryModePostgres persists to Postgres without a cache tier.
	HistoryModePostgres ChatHistoryMode = "postgres"
	// HistoryModeRedis is the production write-through mode: Postgres
	// durable plus a Redis cache in front.
	HistoryModeRedis ChatHistoryMode = "redis"
)

// Settings is the process-wide configuration loaded once at startup.
type Settings struct {
	// HTTP
	Host string
	Port int

	// Azure OpenAI
	AzureOpenAIEndpoint   string
	AzureOpenAIAPIKey     string
	AzureOpenAIAPIVersion string

	// Redis cache
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration

	// Workflow selection and behavior
	DefaultModel     string
	DynamicPlan      bool
	ShowFuncResult   bool
	MaskToolResults  bool
	ChatHistoryMode  ChatHistoryMode
	MaxIterations    int
	ToolCallBudget   int
	ToolPoolWorkers  int
	EventBusCapacity int

	// Timeouts
	LLMTimeout      time.Duration
	ToolTimeout     time.Duration
	WorkflowTimeout time.Duration

	// Memory service
	MemoryRollingWindow     int
	MemorySummarizeAfterSeq int
	MemoryModel             string
	ConversationHistoryDays int

	// Retention
	ConversationRetentionDays int
	CleanupInterval           time.Duration

	// Runbook repository
	RunbookRepoURL  string
	RunbookToken    string
	RunbookCacheTTL time.Duration
}

// LoadSettingsFromEnv reads all settings from environment variables,
// falling back to production defaults.
func LoadSettingsFromEnv() (Settings, error) {
	port, err := intEnv("PORT", 8000)
	if err != nil {
		return Settings{}, err
	}
	redisDB, err := intEnv("REDIS_DB", 0)
	if err != nil {
		return Settings{}, err
	}

	mode := ChatHistoryMode(envOrDefault("CHAT_HISTORY_MODE", string(HistoryModeRedis)))
	switch mode {
	case HistoryModeLocal, HistoryModePostgres, HistoryModeRedis:
	default:
		return Settings{}, fmt.Errorf("invalid CHAT_HISTORY_MODE: %q", mode)
	}

	maxIter, err := intEnv("WORKFLOW_MAX_ITERATIONS", 10)
	if err != nil {
		return Settings{}, err
	}
	toolBudget, err := intEnv("TOOL_CALL_BUDGET", 8)
	if err != nil {
		return Settings{}, err
	}
	poolWorkers, err := intEnv("TOOL_POOL_WORKERS", 32)
	if err != nil {
		return Settings{}, err
	}
	busCap, err := intEnv("EVENT_BUS_CAPACITY", 1024)
	if err != nil {
		return Settings{}, err
	}
	cacheTTL, err := intEnv("CACHE_TTL_SECONDS", 1800)
	if err != nil {
		return Settings{}, err
	}
	rollingWindow, err := intEnv("MEMORY_ROLLING_WINDOW", 14)
	if err != nil {
		return Settings{}, err
	}
	summarizeAfter, err := intEnv("MEMORY_SUMMARIZE_AFTER_SEQ", 5)
	if err != nil {
		return Settings{}, err
	}
	historyDays, err := intEnv("CONVERSATION_HISTORY_DAYS", 7)
	if err != nil {
		return Settings{}, err
	}
	retentionDays, err := intEnv("CONVERSATION_RETENTION_DAYS", 90)
	if err != nil {
		return Settings{}, err
	}

	return Settings{
		Host:                  envOrDefault("HOST", "0.0.0.0"),
		Port:                  port,
		AzureOpenAIEndpoint:   os.Getenv("AZURE_OPENAI_ENDPOINT"),
		AzureOpenAIAPIKey:     os.Getenv("AZURE_OPENAI_API_KEY"),
		AzureOpenAIAPIVersion: envOrDefault("AZURE_OPENAI_API_VERSION", "2024-10-21"),

		RedisAddr:     envOrDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       redisDB,
		CacheTTL:      time.Duration(cacheTTL) * time.Second,

		DefaultModel:     envOrDefault("DEFAULT_MODEL", ModelGPT41),
		DynamicPlan:      boolEnv("DYNAMIC_PLAN", false),
		ShowFuncResult:   boolEnv("SHOW_FUNC_RESULT", false),
		MaskToolResults:  boolEnv("MASK_TOOL_RESULTS", true),
		ChatHistoryMode:  mode,
		MaxIterations:    maxIter,
		ToolCallBudget:   toolBudget,
		ToolPoolWorkers:  poolWorkers,
		EventBusCapacity: busCap,

		LLMTimeout:      durationEnv("LLM_TIMEOUT", 120*time.Second),
		ToolTimeout:     durationEnv("TOOL_TIMEOUT", 60*time.Second),
		WorkflowTimeout: durationEnv("WORKFLOW_TIMEOUT", 180*time.Second),

		MemoryRollingWindow:     rollingWindow,
		MemorySummarizeAfterSeq: summarizeAfter,
		MemoryModel:             envOrDefault("MEMORY_MODEL", ModelGPT41Mini),
		ConversationHistoryDays: historyDays,

		ConversationRetentionDays: retentionDays,
		CleanupInterval:           durationEnv("CLEANUP_INTERVAL", time.Hour),

		RunbookRepoURL:  os.Getenv("RUNBOOK_REPO_URL"),
		RunbookToken:    os.Getenv("GITHUB_TOKEN"),
		RunbookCacheTTL: durationEnv("RUNBOOK_CACHE_TTL", time.Minute),
	}, nil
}

func envOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func intEnv(key string, defaultVal int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func boolEnv(key string, defaultVal bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return defaultVal
	}
	return b
}

func durationEnv(key string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return defaultVal
	}
	return d
}
