package config_test

import (
	"testing"

	"github.com/company-sales-api/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"SERVER_PORT", "DB_DRIVER", "DB_PATH", "SEED_SAMPLE_DATA"} {
		t.Setenv(key, "")
	}

	cfg := config.Load()

	if cfg.Server.Port != "8080" {
		t.Errorf("expected port 8080, got %s", cfg.Server.Port)
	}
	if cfg.Database.Driver != config.DriverSQLite {
		t.Errorf("expected sqlite driver, got %s", cfg.Database.Driver)
	}
	if cfg.Database.Path != config.DefaultSQLitePath || config.DefaultSQLitePath != "sales.db" {
		t.Errorf("expected file database sales.db, got %s", cfg.Database.Path)
	}
	if cfg.Database.DSN() != cfg.Database.Path {
		t.Errorf("sqlite DSN should be the path, got %s", cfg.Database.DSN())
	}
	if !cfg.SeedSampleData {
		t.Error("expected sample data to be seeded by default")
	}
}

func TestLoad_Postgres(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_NAME", "acme")
	t.Setenv("SEED_SAMPLE_DATA", "false")

	cfg := config.Load()

	want := "host=db port=5432 user=postgres password=postgres dbname=acme sslmode=disable"
	if got := cfg.Database.DSN(); got != want {
		t.Errorf("expected DSN %q, got %q", want, got)
	}
	if cfg.SeedSampleData {
		t.Error("expected seeding to be disabled")
	}
}
