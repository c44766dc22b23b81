package database

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Pool defaults sized for a single chat-service replica: a turn holds a
// connection only for short store calls, so a small pool goes a long way.
const (
	defaultMaxOpenConns = 16
	defaultMaxIdleConns = 4
)

// LoadConfigFromEnv reads the DB_* environment variables into a Config.
// Only DB_PORT is validated here; a wrong host or password surfaces as a
// connect error in NewClient.
func LoadConfigFromEnv() (Config, error) {
	port, err := strconv.Atoi(envOrDefault("DB_PORT", "5432"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	return Config{
		Host:            envOrDefault("DB_HOST", "localhost"),
		Port:            port,
		User:            envOrDefault("DB_USER", "stanley"),
		Password:        os.Getenv("DB_PASSWORD"),
		Database:        envOrDefault("DB_NAME", "stanley"),
		SSLMode:         envOrDefault("DB_SSLMODE", "disable"),
		MaxOpenConns:    intEnv("DB_MAX_OPEN_CONNS", defaultMaxOpenConns),
		MaxIdleConns:    intEnv("DB_MAX_IDLE_CONNS", defaultMaxIdleConns),
		ConnMaxLifetime: time.Hour,
		ConnMaxIdleTime: 10 * time.Minute,
	}, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// intEnv falls back on unset, unparsable, or non-positive values; pool
// sizes of zero would disable the pool entirely.
func intEnv(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
