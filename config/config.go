package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config carries the service settings, all sourced from environment
// variables with sensible defaults for local runs.
type Config struct {
	Port           string
	WardCount      int
	Seed           int64
	UpdateInterval time.Duration
	CacheEnabled   bool
	AllowedOrigins []string
}

func Load() Config {
	cfg := Config{
		Port:           getEnvWithDefault("PORT", "8080"),
		WardCount:      getEnvAsInt("WARD_COUNT", 250),
		Seed:           int64(getEnvAsInt("WARD_SEED", 0)),
		UpdateInterval: time.Duration(getEnvAsInt("UPDATE_INTERVAL_SECONDS", 10)) * time.Second,
		CacheEnabled:   getEnvAsBool("CACHE_ENABLED", true),
		AllowedOrigins: getEnvAsList("ALLOWED_ORIGINS", []string{
			"http://localhost:3000",
			"http://localhost:5173",
			"http://localhost:8080",
			"http://127.0.0.1:3000",
		}),
	}

	// Seed 0 means non-deterministic data on every start.
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg
}

// Helper functions
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
