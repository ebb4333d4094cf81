package config

import (
	"testing"
	"time"
)

func TestLoadDefaultsAndOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("ADMIN_SECRET", "admin-secret")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("JWT_TTL_MINUTES", "45")

	cfg := Load()

	if cfg.AppPort != "9090" {
		t.Fatalf("AppPort = %q, want 9090", cfg.AppPort)
	}
	if cfg.JWTSecret != "secret" {
		t.Fatalf("JWTSecret = %q", cfg.JWTSecret)
	}
	if cfg.AdminSecret != "admin-secret" {
		t.Fatalf("AdminSecret = %q", cfg.AdminSecret)
	}
	if cfg.TokenTTL != 45*time.Minute {
		t.Fatalf("TokenTTL = %v, want 45m", cfg.TokenTTL)
	}
	if cfg.DatabaseURL == "" {
		t.Fatal("DatabaseURL default missing")
	}
}

func TestTTLFallbackOnGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("ADMIN_SECRET", "admin-secret")
	t.Setenv("JWT_TTL_MINUTES", "soon")

	cfg := Load()
	if cfg.TokenTTL != 30*time.Minute {
		t.Fatalf("TokenTTL = %v, want default 30m", cfg.TokenTTL)
	}
}
