package config

import (
	"strings"
	"testing"
	"time"

	"github.com/fplhub/fpl-live/internal/platform/logging"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.AppEnv != EnvDev {
		t.Fatalf("AppEnv = %q, want %q", cfg.AppEnv, EnvDev)
	}
	if cfg.ServiceName != "fpl-live-api" {
		t.Fatalf("ServiceName = %q", cfg.ServiceName)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if !cfg.CacheEnabled || cfg.CacheTTL != 30*time.Second {
		t.Fatalf("cache defaults = %v/%v", cfg.CacheEnabled, cfg.CacheTTL)
	}
	if cfg.StandingsMaxWorkers != 8 {
		t.Fatalf("StandingsMaxWorkers = %d, want 8", cfg.StandingsMaxWorkers)
	}
	if !cfg.SeedDemoData {
		t.Fatal("SeedDemoData must default to true outside prod")
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Fatalf("CORSAllowedOrigins = %v", cfg.CORSAllowedOrigins)
	}
	if cfg.UptraceEnabled || cfg.PyroscopeEnabled || cfg.PprofEnabled {
		t.Fatal("observability sidecars must default to disabled")
	}
}

func TestLoad_ProdDisablesSeedByDefault(t *testing.T) {
	t.Setenv("APP_ENV", "prod")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.SeedDemoData {
		t.Fatal("SeedDemoData must default to false in prod")
	}
}

func TestLoad_InvalidAppEnv(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "invalid APP_ENV") {
		t.Fatalf("expected invalid APP_ENV error, got %v", err)
	}
}

func TestLoad_RequiredWhenEnabled(t *testing.T) {
	t.Run("uptrace dsn", func(t *testing.T) {
		t.Setenv("UPTRACE_ENABLED", "true")

		if _, err := Load(); err == nil || !strings.Contains(err.Error(), "UPTRACE_DSN is required") {
			t.Fatalf("expected UPTRACE_DSN error, got %v", err)
		}
	})

	t.Run("pyroscope server address", func(t *testing.T) {
		t.Setenv("PYROSCOPE_ENABLED", "true")

		if _, err := Load(); err == nil || !strings.Contains(err.Error(), "PYROSCOPE_SERVER_ADDRESS is required") {
			t.Fatalf("expected PYROSCOPE_SERVER_ADDRESS error, got %v", err)
		}
	})
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Run("cache ttl", func(t *testing.T) {
		t.Setenv("CACHE_TTL", "soon")

		if _, err := Load(); err == nil || !strings.Contains(err.Error(), "parse CACHE_TTL") {
			t.Fatalf("expected CACHE_TTL parse error, got %v", err)
		}
	})

	t.Run("standings workers below one", func(t *testing.T) {
		t.Setenv("STANDINGS_MAX_WORKERS", "0")

		if _, err := Load(); err == nil || !strings.Contains(err.Error(), "STANDINGS_MAX_WORKERS must be >= 1") {
			t.Fatalf("expected STANDINGS_MAX_WORKERS error, got %v", err)
		}
	})
}

func TestLoad_OverridesAndCSV(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")
	t.Setenv("INTERNAL_SNAPSHOT_TOKEN", "  secret  ")
	t.Setenv("APP_LOG_LEVEL", "warn")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://b.example.com" {
		t.Fatalf("CORSAllowedOrigins = %v", cfg.CORSAllowedOrigins)
	}
	if cfg.InternalSnapshotToken != "secret" {
		t.Fatalf("InternalSnapshotToken = %q, want trimmed value", cfg.InternalSnapshotToken)
	}
	if cfg.LogLevel != logging.LevelWarn {
		t.Fatalf("LogLevel = %v, want warn", cfg.LogLevel)
	}
}
