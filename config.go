package main

import (
	"errors"
	"time"

	"github.com/spf13/viper"
)

// Config holds everything read from the environment at startup. It is
// built once in main and passed by reference; nothing reads ambient
// process state after that.
type Config struct {
	Addr          string
	DBPath        string
	JWTSecret     string
	TokenTTL      time.Duration
	SecureCookies bool
}

func loadConfig() (*Config, error) {
	viper.SetDefault("ADDR", ":8080")
	viper.SetDefault("DB_PATH", "blog.db")
	viper.SetDefault("TOKEN_TTL", "24h")
	viper.SetDefault("SECURE_COOKIES", false)

	viper.AutomaticEnv()

	cfg := &Config{
		Addr:          viper.GetString("ADDR"),
		DBPath:        viper.GetString("DB_PATH"),
		JWTSecret:     viper.GetString("JWT_SECRET"),
		TokenTTL:      parseDuration(viper.GetString("TOKEN_TTL"), 24*time.Hour),
		SecureCookies: viper.GetBool("SECURE_COOKIES"),
	}

	// Refuse to sign tokens with an empty secret.
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET must be set")
	}

	return cfg, nil
}

func parseDuration(s string, def time.Duration) time.Duration {
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	return def
}
