package config

import (
	"testing"
	"time"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("AI_PROVIDER", "")
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}

	if cfg.Provider != "gemini" {
		t.Fatalf("expected provider gemini, got %s", cfg.Provider)
	}
	if cfg.GenMaxAttempts != 3 || cfg.GenRetryDelay != 2*time.Second || cfg.GenCallTimeout != 30*time.Second {
		t.Fatalf("unexpected gateway defaults: %+v", cfg)
	}
	if !cfg.SweepEnabled || cfg.SweepSchedule != "*/15 * * * *" || cfg.SweepIdleTTL != 2*time.Hour {
		t.Fatalf("unexpected sweeper defaults: %+v", cfg)
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("AI_MAX_ATTEMPTS", "5")
	t.Setenv("AI_RETRY_DELAY", "500ms")
	t.Setenv("SESSION_SWEEP_ENABLED", "false")
	t.Setenv("SESSION_SWEEP_IDLE_TTL", "45m")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}

	if cfg.GenMaxAttempts != 5 || cfg.GenRetryDelay != 500*time.Millisecond {
		t.Fatalf("unexpected gateway overrides: %+v", cfg)
	}
	if cfg.SweepEnabled || cfg.SweepIdleTTL != 45*time.Minute {
		t.Fatalf("unexpected sweeper overrides: %+v", cfg)
	}
}

func TestLoadConfig_UnsupportedProvider(t *testing.T) {
	t.Setenv("AI_PROVIDER", "unknown")
	t.Setenv("JWT_SECRET", "secret")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for unsupported provider")
	}
}

func TestLoadConfig_MissingJWTSecret(t *testing.T) {
	t.Setenv("AI_PROVIDER", "gemini")
	t.Setenv("JWT_SECRET", "")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for missing JWT secret")
	}
}

func TestGetEnvOrDefault(t *testing.T) {
	t.Setenv("UNIT_TEST_ENV", "value")
	if got := getEnvOrDefault("UNIT_TEST_ENV", "fallback"); got != "value" {
		t.Fatalf("expected env value, got %s", got)
	}

	t.Setenv("UNIT_TEST_ENV", "")
	if got := getEnvOrDefault("UNIT_TEST_ENV", "fallback"); got != "fallback" {
		t.Fatalf("expected fallback value, got %s", got)
	}
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("UNIT_TEST_DURATION", "90s")
	if got := getEnvDuration("UNIT_TEST_DURATION", time.Second); got != 90*time.Second {
		t.Fatalf("expected 90s, got %v", got)
	}

	t.Setenv("UNIT_TEST_DURATION", "not-a-duration")
	if got := getEnvDuration("UNIT_TEST_DURATION", time.Second); got != time.Second {
		t.Fatalf("expected default for invalid duration, got %v", got)
	}
}
