package config

import (
	"fmt"
	"os"
)

// Config is validated once at startup and passed explicitly to whatever needs
// it. Nothing in the codebase reads the environment after Load returns.
type Config struct {
	DatabaseURL   string
	Port          string
	AdminPassword string
	AdminSlug     string
	MetricsUser   string
	MetricsPass   string
	Env           string
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		Port:          getenv("PORT", "3333"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		AdminSlug:     getenv("ADMIN_ROUTE_SLUG", "manage"),
		MetricsUser:   os.Getenv("METRICS_USER"),
		MetricsPass:   os.Getenv("METRICS_PASS"),
		Env:           getenv("APP_ENV", "development"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is not set")
	}
	if cfg.AdminPassword == "" {
		return nil, fmt.Errorf("ADMIN_PASSWORD environment variable is not set")
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}
