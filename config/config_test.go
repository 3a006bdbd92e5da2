package config

import "testing"

func TestLoad(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/availability")
	t.Setenv("ADMIN_PASSWORD", "secret")
	t.Setenv("PORT", "")
	t.Setenv("ADMIN_ROUTE_SLUG", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DatabaseURL != "postgres://localhost/availability" {
		t.Errorf("DatabaseURL = %q", cfg.DatabaseURL)
	}
	if cfg.Port != "3333" {
		t.Errorf("Port default = %q, want 3333", cfg.Port)
	}
	if cfg.AdminSlug != "manage" {
		t.Errorf("AdminSlug default = %q, want manage", cfg.AdminSlug)
	}
}

func TestLoadMissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("ADMIN_PASSWORD", "secret")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing DATABASE_URL")
	}
}

func TestLoadMissingAdminPassword(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/availability")
	t.Setenv("ADMIN_PASSWORD", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing ADMIN_PASSWORD")
	}
}
