package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultListenAddr      = ":8080"
	defaultDatabaseURL     = "repairshop.db"
	defaultJWTSecret       = "change-me-jwt-secret"
	defaultJWTAccessTTL    = "12h"
	defaultCapacityPerSlot = "2"
	defaultSlotGranularity = "30"
)

// Config is the process-wide runtime configuration. Scheduling knobs
// (capacity, granularity) are read once at startup and treated as
// immutable afterwards.
type Config struct {
	AppEnv          string
	ListenAddr      string
	DatabaseURL     string
	JWTSecret       string
	JWTAccessTTL    time.Duration
	CapacityPerSlot int
	SlotGranularity int
}

func Load() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.ListenAddr = strings.TrimSpace(getEnv("LISTEN_ADDR", defaultListenAddr))
	cfg.DatabaseURL = strings.TrimSpace(getEnv("DATABASE_URL", defaultDatabaseURL))
	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))

	var err error
	cfg.JWTAccessTTL, err = parseDurationEnv("JWT_ACCESS_TTL", defaultJWTAccessTTL)
	if err != nil {
		return nil, err
	}

	cfg.CapacityPerSlot, err = parseIntEnv("CAPACITY_PER_SLOT", defaultCapacityPerSlot)
	if err != nil {
		return nil, err
	}

	cfg.SlotGranularity, err = parseIntEnv("SLOT_GRANULARITY_MINUTES", defaultSlotGranularity)
	if err != nil {
		return nil, err
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.JWTAccessTTL <= 0 {
		return fmt.Errorf("JWT_ACCESS_TTL must be > 0")
	}
	if cfg.CapacityPerSlot < 1 {
		return fmt.Errorf("CAPACITY_PER_SLOT must be >= 1")
	}
	if cfg.SlotGranularity < 5 || cfg.SlotGranularity > 240 {
		return fmt.Errorf("SLOT_GRANULARITY_MINUTES must be in [5, 240]")
	}
	if 24*60%cfg.SlotGranularity != 0 {
		return fmt.Errorf("SLOT_GRANULARITY_MINUTES must divide a day evenly")
	}

	if isProdLike(cfg.AppEnv) {
		if isEmptyOrDefault(cfg.JWTSecret, defaultJWTSecret) {
			return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
		}
	}

	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func isEmptyOrDefault(v, def string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == def
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func parseIntEnv(name, fallback string) (int, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return n, nil
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
