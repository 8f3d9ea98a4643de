package main

import (
	"testing"
	"time"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("TOKEN_TTL", "1h")

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}

	if cfg.JWTSecret != "s3cret" {
		t.Errorf("expected secret 's3cret', got %q", cfg.JWTSecret)
	}
	if cfg.TokenTTL != time.Hour {
		t.Errorf("expected TTL 1h, got %v", cfg.TokenTTL)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("expected default addr ':8080', got %q", cfg.Addr)
	}
	if cfg.DBPath != "blog.db" {
		t.Errorf("expected default db path 'blog.db', got %q", cfg.DBPath)
	}
}

func TestLoadConfig_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	if _, err := loadConfig(); err == nil {
		t.Error("expected error when JWT_SECRET is unset")
	}
}

func TestLoadConfig_BadTTLFallsBack(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("TOKEN_TTL", "garbage")

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}

	if cfg.TokenTTL != 24*time.Hour {
		t.Errorf("expected fallback TTL 24h, got %v", cfg.TokenTTL)
	}
}
