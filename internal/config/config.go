package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultAddr         = ":8080"
	defaultDatabaseURL  = "testiflow.db"
	defaultJWTTTL       = "24h"
	defaultJWTSecret    = "change-me-jwt-secret"
	defaultPublicPrefix = "/t/"
)

type Config struct {
	AppEnv       string
	Addr         string
	DatabaseURL  string
	JWTSecret    string
	JWTTTL       time.Duration
	PublicPrefix string
}

func Load() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.Addr = envOr("ADDR", defaultAddr)
	cfg.DatabaseURL = envOr("DATABASE_URL", defaultDatabaseURL)
	cfg.PublicPrefix = envOr("PUBLIC_PREFIX", defaultPublicPrefix)

	cfg.JWTSecret = envOr("JWT_SECRET", defaultJWTSecret)
	if cfg.AppEnv == "prod" && cfg.JWTSecret == defaultJWTSecret {
		return nil, fmt.Errorf("JWT_SECRET must be set in prod")
	}

	ttl, err := time.ParseDuration(envOr("JWT_TTL", defaultJWTTTL))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_TTL: %w", err)
	}
	cfg.JWTTTL = ttl

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
