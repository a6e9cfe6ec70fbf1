package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("TOKEN_TTL", "")
	t.Setenv("PORT", "")
	t.Setenv("MONGODB_URI", "")
	t.Setenv("CATALOG_WRITE_ROLE", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "8000" {
		t.Fatalf("expected default port 8000, got %q", cfg.Port)
	}
	if cfg.MongoURI != "mongodb://localhost:27017" || cfg.MongoDB != "supermarket" {
		t.Fatalf("unexpected mongo defaults: %q %q", cfg.MongoURI, cfg.MongoDB)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Fatalf("expected default ttl 24h, got %v", cfg.TokenTTL)
	}
	if cfg.CatalogWriteRole != "admin" {
		t.Fatalf("expected default write role admin, got %q", cfg.CatalogWriteRole)
	}
}

func TestLoadCustomTTL(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("TOKEN_TTL", "1h30m")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.TokenTTL != 90*time.Minute {
		t.Fatalf("expected 1h30m, got %v", cfg.TokenTTL)
	}
}

func TestLoadRejectsBadTTL(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	for _, ttl := range []string{"yesterday", "-1h", "0s"} {
		t.Setenv("TOKEN_TTL", ttl)
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for TOKEN_TTL=%q", ttl)
		}
	}
}

func TestLoadRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error when JWT_SECRET is unset")
	}
}
