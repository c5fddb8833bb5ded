package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// app config, mostly AI provider and session-engine related
type Config struct {
	Provider  string
	JWTSecret string

	// AI gateway bounds
	GenMaxAttempts int
	GenRetryDelay  time.Duration
	GenCallTimeout time.Duration

	// abandonment sweeper
	SweepEnabled  bool
	SweepSchedule string
	SweepIdleTTL  time.Duration
}

// loads configuration from environment variables
func LoadConfig() (*Config, error) {
	config := &Config{
		Provider:       getEnvOrDefault("AI_PROVIDER", "gemini"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		GenMaxAttempts: getEnvInt("AI_MAX_ATTEMPTS", 3),
		GenRetryDelay:  getEnvDuration("AI_RETRY_DELAY", 2*time.Second),
		GenCallTimeout: getEnvDuration("AI_CALL_TIMEOUT", 30*time.Second),
		SweepEnabled:   getEnvOrDefault("SESSION_SWEEP_ENABLED", "true") == "true",
		SweepSchedule:  getEnvOrDefault("SESSION_SWEEP_SCHEDULE", "*/15 * * * *"),
		SweepIdleTTL:   getEnvDuration("SESSION_SWEEP_IDLE_TTL", 2*time.Hour),
	}
	if err := validateConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

func validateConfig(config *Config) error {
	if config.Provider != "gemini" {
		return errors.New("unsupported AI provider: " + config.Provider + ". Currently supported: gemini")
	}
	if config.JWTSecret == "" {
		return errors.New("JWT_SECRET environment variable is required")
	}
	if config.GenMaxAttempts < 1 {
		return errors.New("AI_MAX_ATTEMPTS must be at least 1")
	}
	// Gemini validation is handled by gemini.NewConfig()
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
