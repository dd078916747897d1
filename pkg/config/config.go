package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	// Application
	LogLevel string
	HTTPPort string

	// Market Data
	MarketDataMode     string // "static" or "http"
	MarketDataBaseURL  string
	MarketDataTimeout  time.Duration
	MarketDataCacheTTL time.Duration

	// Circuit Breaker (market data boundary)
	BreakerFailureThreshold int
	BreakerRecoveryTimeout  time.Duration

	// Routing
	DefaultMaxSlippagePct float64

	// Arbitrage Detection
	ArbProfitThresholdPct float64

	// Engine
	EngineMaxHistory int

	// Storage
	StorageMode  string // "postgres" or "console"
	PostgresHost string
	PostgresPort string
	PostgresUser string
	PostgresPass string
	PostgresDB   string
	PostgresSSL  string
}

// LoadFromEnv loads configuration from environment variables with defaults.
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		// Application defaults
		LogLevel: getEnvOrDefault("LOG_LEVEL", "info"),
		HTTPPort: getEnvOrDefault("HTTP_PORT", "8080"),

		// Market Data defaults
		MarketDataMode:     getEnvOrDefault("MARKET_DATA_MODE", "static"),
		MarketDataBaseURL:  getEnvOrDefault("MARKET_DATA_BASE_URL", "https://api.coingecko.com"),
		MarketDataTimeout:  getDurationOrDefault("MARKET_DATA_TIMEOUT", 5*time.Second),
		MarketDataCacheTTL: getDurationOrDefault("MARKET_DATA_CACHE_TTL", 60*time.Second),

		// Circuit Breaker defaults
		BreakerFailureThreshold: getIntOrDefault("BREAKER_FAILURE_THRESHOLD", 5),
		BreakerRecoveryTimeout:  getDurationOrDefault("BREAKER_RECOVERY_TIMEOUT", 30*time.Second),

		// Routing defaults
		DefaultMaxSlippagePct: getFloat64OrDefault("DEFAULT_MAX_SLIPPAGE_PCT", 5.0),

		// Arbitrage defaults
		ArbProfitThresholdPct: getFloat64OrDefault("ARB_PROFIT_THRESHOLD_PCT", 0.5),

		// Engine defaults
		EngineMaxHistory: getIntOrDefault("ENGINE_MAX_HISTORY", 1000),

		// Storage defaults
		StorageMode:  getEnvOrDefault("STORAGE_MODE", "console"),
		PostgresHost: getEnvOrDefault("POSTGRES_HOST", "localhost"),
		PostgresPort: getEnvOrDefault("POSTGRES_PORT", "5432"),
		PostgresUser: getEnvOrDefault("POSTGRES_USER", "excelsior"),
		PostgresPass: getEnvOrDefault("POSTGRES_PASSWORD", "excelsior123"),
		PostgresDB:   getEnvOrDefault("POSTGRES_DB", "excelsior"),
		PostgresSSL:  getEnvOrDefault("POSTGRES_SSLMODE", "disable"),
	}

	err := cfg.Validate()
	if err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// Validate checks that configuration values are valid.
func (c *Config) Validate() error {
	if c.HTTPPort == "" {
		return fmt.Errorf("HTTP_PORT cannot be empty")
	}

	if c.MarketDataMode != "static" && c.MarketDataMode != "http" {
		return fmt.Errorf("MARKET_DATA_MODE must be 'static' or 'http', got %q", c.MarketDataMode)
	}

	if c.MarketDataMode == "http" && c.MarketDataBaseURL == "" {
		return fmt.Errorf("MARKET_DATA_BASE_URL cannot be empty in http mode")
	}

	if c.DefaultMaxSlippagePct < 0 || c.DefaultMaxSlippagePct > 100 {
		return fmt.Errorf("DEFAULT_MAX_SLIPPAGE_PCT must be between 0 and 100, got %f", c.DefaultMaxSlippagePct)
	}

	if c.ArbProfitThresholdPct <= 0 {
		return fmt.Errorf("ARB_PROFIT_THRESHOLD_PCT must be positive, got %f", c.ArbProfitThresholdPct)
	}

	if c.StorageMode != "console" && c.StorageMode != "postgres" {
		return fmt.Errorf("STORAGE_MODE must be 'console' or 'postgres', got %q", c.StorageMode)
	}

	return nil
}

func getEnvOrDefault(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	intVal, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	return intVal
}

func getFloat64OrDefault(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	floatVal, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}

	return floatVal
}

func getDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}

	return duration
}
