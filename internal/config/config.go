package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// Service configuration
	ServiceHost         string
	ServicePort         string
	InternalServicePort string

	// Database configuration
	DatabaseURL      string
	DatabaseMaxConns int

	// Redis configuration
	RedisURL      string
	RedisMaxConns int

	// Logging configuration
	LogLevel string

	// Recommendation engine configuration
	RecommendMaxAttempts   int
	RecommendBackoffBase   time.Duration
	RecommendMinConfidence int
	RecommendCallTimeout   time.Duration
	RecommendRatePerMinute int
	ProviderFailureRate    float64

	// RFID simulation configuration
	RFIDTagCount int
	RFIDSeed     int64

	// Demo data
	SeedDemoData bool
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}

	cfg.ServiceHost = envOrDefault("ORDNANCE_SERVICE_HOST", "0.0.0.0")
	cfg.ServicePort = envOrDefault("ORDNANCE_SERVICE_PORT", "8080")
	cfg.InternalServicePort = envOrDefault("ORDNANCE_INTERNAL_PORT", "8081")

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	var err error
	if cfg.DatabaseMaxConns, err = envIntOrDefault("DATABASE_MAX_CONNECTIONS", 10); err != nil {
		return nil, err
	}

	cfg.RedisURL = os.Getenv("REDIS_URL")
	if cfg.RedisURL == "" {
		return nil, fmt.Errorf("REDIS_URL is required")
	}
	if cfg.RedisMaxConns, err = envIntOrDefault("REDIS_MAX_CONNECTIONS", 10); err != nil {
		return nil, err
	}

	cfg.LogLevel = envOrDefault("LOG_LEVEL", "info")

	// Retry/fallback orchestration: demo defaults, overridable per deployment.
	if cfg.RecommendMaxAttempts, err = envIntOrDefault("RECOMMEND_MAX_ATTEMPTS", 2); err != nil {
		return nil, err
	}
	backoffMs, err := envIntOrDefault("RECOMMEND_BACKOFF_BASE_MS", 1000)
	if err != nil {
		return nil, err
	}
	cfg.RecommendBackoffBase = time.Duration(backoffMs) * time.Millisecond
	if cfg.RecommendMinConfidence, err = envIntOrDefault("RECOMMEND_MIN_CONFIDENCE", 60); err != nil {
		return nil, err
	}
	timeoutMs, err := envIntOrDefault("RECOMMEND_CALL_TIMEOUT_MS", 10000)
	if err != nil {
		return nil, err
	}
	cfg.RecommendCallTimeout = time.Duration(timeoutMs) * time.Millisecond
	if cfg.RecommendRatePerMinute, err = envIntOrDefault("RECOMMEND_RATE_PER_MINUTE", 10); err != nil {
		return nil, err
	}
	if cfg.ProviderFailureRate, err = envFloatOrDefault("RECOMMEND_PROVIDER_FAILURE_RATE", 0.3); err != nil {
		return nil, err
	}

	if cfg.RFIDTagCount, err = envIntOrDefault("RFID_TAG_COUNT", 24); err != nil {
		return nil, err
	}
	seed, err := envIntOrDefault("RFID_SEED", 0)
	if err != nil {
		return nil, err
	}
	cfg.RFIDSeed = int64(seed)

	cfg.SeedDemoData = envOrDefault("SEED_DEMO_DATA", "true") == "true"

	return cfg, nil
}

// Validate performs validation on the configuration
func (c *Config) Validate() error {
	if !strings.HasPrefix(c.DatabaseURL, "postgresql://") && !strings.HasPrefix(c.DatabaseURL, "postgres://") {
		return fmt.Errorf("DATABASE_URL must start with postgresql:// or postgres://")
	}

	if !strings.HasPrefix(c.RedisURL, "redis://") {
		return fmt.Errorf("REDIS_URL must start with redis://")
	}

	if c.DatabaseMaxConns < 1 || c.DatabaseMaxConns > 100 {
		return fmt.Errorf("DATABASE_MAX_CONNECTIONS must be between 1 and 100")
	}

	if c.RedisMaxConns < 1 || c.RedisMaxConns > 100 {
		return fmt.Errorf("REDIS_MAX_CONNECTIONS must be between 1 and 100")
	}

	validLevels := []string{"debug", "info", "warn", "error"}
	validLevel := false
	for _, level := range validLevels {
		if c.LogLevel == level {
			validLevel = true
			break
		}
	}
	if !validLevel {
		return fmt.Errorf("LOG_LEVEL must be one of: %s", strings.Join(validLevels, ", "))
	}

	if c.RecommendMaxAttempts < 1 || c.RecommendMaxAttempts > 10 {
		return fmt.Errorf("RECOMMEND_MAX_ATTEMPTS must be between 1 and 10")
	}

	if c.RecommendMinConfidence < 0 || c.RecommendMinConfidence > 100 {
		return fmt.Errorf("RECOMMEND_MIN_CONFIDENCE must be between 0 and 100")
	}

	if c.RecommendRatePerMinute < 1 {
		return fmt.Errorf("RECOMMEND_RATE_PER_MINUTE must be positive")
	}

	if c.ProviderFailureRate < 0 || c.ProviderFailureRate > 1 {
		return fmt.Errorf("RECOMMEND_PROVIDER_FAILURE_RATE must be between 0 and 1")
	}

	if c.RFIDTagCount < 1 || c.RFIDTagCount > 10000 {
		return fmt.Errorf("RFID_TAG_COUNT must be between 1 and 10000")
	}

	return nil
}

// String returns a string representation of the config (without credentials)
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Host: %s, Port: %s, InternalPort: %s, LogLevel: %s, DB: %s, Redis: %s, MaxAttempts: %d}",
		c.ServiceHost, c.ServicePort, c.InternalServicePort, c.LogLevel,
		maskURL(c.DatabaseURL), maskURL(c.RedisURL), c.RecommendMaxAttempts,
	)
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envIntOrDefault(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %v", key, err)
	}
	return value, nil
}

func envFloatOrDefault(key string, fallback float64) (float64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %v", key, err)
	}
	return value, nil
}

// maskURL masks credentials embedded in URLs
func maskURL(url string) string {
	if strings.Contains(url, "@") {
		parts := strings.Split(url, "@")
		if len(parts) >= 2 {
			return parts[0][:strings.Index(parts[0], "://")+3] + "***@" + parts[1]
		}
	}
	return url
}
