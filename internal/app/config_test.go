package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Addr() != ":8080" {
		t.Fatalf("unexpected addr: %q", cfg.Addr())
	}
	if cfg.DBDriver != "postgres" || !cfg.AutoMigrate {
		t.Fatalf("unexpected db defaults: %+v", cfg)
	}
	if cfg.ProductCacheTTL != 5*time.Minute {
		t.Fatalf("unexpected cache ttl: %v", cfg.ProductCacheTTL)
	}
	if cfg.Redis().Addr != "" {
		t.Fatalf("expected redis disabled by default")
	}
}

func TestLoadConfigPrefixAndFallback(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "9000")
	t.Setenv("BREWERY_DB_DRIVER", "sqlite")
	t.Setenv("POSTGRES_HOST", "db.internal")
	t.Setenv("BREWERY_CORS_ALLOWED_ORIGINS", "https://a.example.com,https://b.example.com")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Addr() != ":9000" {
		t.Fatalf("unexpected addr: %q", cfg.Addr())
	}
	if cfg.DB().Driver != "sqlite" || cfg.DB().PostgresHost != "db.internal" {
		t.Fatalf("unexpected db config: %+v", cfg.DB())
	}
	if len(cfg.CORSOrigins) != 2 {
		t.Fatalf("unexpected origins: %v", cfg.CORSOrigins)
	}
}

func TestLoadConfigDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	if err := os.WriteFile(path, []byte("BREWERY_HTTP_ADDR=127.0.0.1:7070\n"), 0o600); err != nil {
		t.Fatalf("write env: %v", err)
	}
	t.Cleanup(func() { _ = os.Unsetenv("BREWERY_HTTP_ADDR") })

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Addr() != "127.0.0.1:7070" {
		t.Fatalf("unexpected addr: %q", cfg.Addr())
	}
}

func TestLoadConfigRejectsUnknownDriver(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("BREWERY_DB_DRIVER", "mysql")
	if _, err := LoadConfig(); err == nil {
		t.Fatalf("expected error for unknown driver")
	}
}
