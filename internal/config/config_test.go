package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"STORE_BACKEND", "STORE_KEY", "SERVER_PORT", "DIRECTORY_SEED", "SERVER_READ_TIMEOUT"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Store.Backend != BackendMemory {
		t.Errorf("expected memory backend, got %q", cfg.Store.Backend)
	}
	if cfg.Store.Key != "locations.csv" {
		t.Errorf("expected locations.csv key, got %q", cfg.Store.Key)
	}
	if cfg.Server.Port != "8080" || cfg.Server.ReadTimeout != 10*time.Second {
		t.Errorf("unexpected server defaults: %+v", cfg.Server)
	}
	if cfg.Store.SeedDirectory {
		t.Error("expected seeding off by default")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STORE_BACKEND", "sqlite")
	t.Setenv("SQLITE_PATH", "/tmp/test.db")
	t.Setenv("DIRECTORY_SEED", "true")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("SERVER_WRITE_TIMEOUT", "250ms")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Store.Backend != BackendSQLite || cfg.Store.SQLitePath != "/tmp/test.db" {
		t.Errorf("unexpected store config: %+v", cfg.Store)
	}
	if !cfg.Store.SeedDirectory {
		t.Error("expected seeding on")
	}
	if cfg.Redis.DB != 3 {
		t.Errorf("expected redis db 3, got %d", cfg.Redis.DB)
	}
	if cfg.Server.WriteTimeout != 250*time.Millisecond {
		t.Errorf("expected 250ms, got %v", cfg.Server.WriteTimeout)
	}
}

func TestLoad_RejectsUnknownBackend(t *testing.T) {
	t.Setenv("STORE_BACKEND", "localstorage")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}

func TestLoadFile(t *testing.T) {
	if err := LoadFile(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("expected missing file to be ignored, got %v", err)
	}

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("LOCSHARE_TEST_VALUE=from-file\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Cleanup(func() { os.Unsetenv("LOCSHARE_TEST_VALUE") })

	if err := LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if got := os.Getenv("LOCSHARE_TEST_VALUE"); got != "from-file" {
		t.Errorf("expected value from file, got %q", got)
	}
}
