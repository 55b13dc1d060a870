package config

import (
	"os"
	"testing"
	"time"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DRIVELINE_APP_ENV", "dev")
	t.Setenv("DRIVELINE_APP_PORT", "8080")
	t.Setenv("DRIVELINE_REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("DRIVELINE_JWT_SECRET", "secret")
	t.Setenv("DRIVELINE_JWT_ISSUER", "driveline")
	t.Setenv("DRIVELINE_JWT_EXPIRATION_MINUTES", "15")
}

func TestLoadAppliesDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.App.LogLevel != "info" {
		t.Fatalf("expected default log level info, got %s", cfg.App.LogLevel)
	}
	if !cfg.App.SeedDemoData {
		t.Fatal("expected demo seed enabled by default")
	}
	if cfg.AuthRateLimit.LoginWindow != time.Minute {
		t.Fatalf("expected 1m login window, got %s", cfg.AuthRateLimit.LoginWindow)
	}
	if cfg.JWT.RefreshTokenTTL() != 43200*time.Minute {
		t.Fatalf("unexpected refresh ttl %s", cfg.JWT.RefreshTokenTTL())
	}
}

func TestLoadFailsWithoutRequiredVars(t *testing.T) {
	// envconfig treats a set-but-empty variable as present; the field must
	// be absent from the environment to trip required:"true".
	setRequiredEnv(t)
	os.Unsetenv("DRIVELINE_APP_ENV")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing app env")
	}
}

func TestEnvPredicates(t *testing.T) {
	app := AppConfig{Env: "DEV"}
	if !app.IsDev() || app.IsProd() {
		t.Fatal("expected dev env")
	}
	app.Env = "prod"
	if !app.IsProd() || app.IsDev() {
		t.Fatal("expected prod env")
	}
}
