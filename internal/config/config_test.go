package config

import (
	"os"
	"testing"
)

// TestLoad_RequiresDSN проверяет что без DB_DSN конфиг не собирается.
func TestLoad_RequiresDSN(t *testing.T) {
	old := os.Getenv("DB_DSN")
	defer os.Setenv("DB_DSN", old)

	os.Unsetenv("DB_DSN")

	if _, err := Load(); err == nil {
		t.Fatal("Load() should fail without DB_DSN")
	}
}

// TestLoad_Defaults проверяет значения по умолчанию.
func TestLoad_Defaults(t *testing.T) {
	oldDSN := os.Getenv("DB_DSN")
	oldPort := os.Getenv("PORT")
	oldEnv := os.Getenv("ENV")
	defer func() {
		os.Setenv("DB_DSN", oldDSN)
		os.Setenv("PORT", oldPort)
		os.Setenv("ENV", oldEnv)
	}()

	os.Setenv("DB_DSN", "postgres://localhost/tutor_market")
	os.Unsetenv("PORT")
	os.Unsetenv("ENV")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Environment != "development" {
		t.Errorf("Environment = %s, want development", cfg.Environment)
	}
	if cfg.Addr() != ":8080" {
		t.Errorf("Addr() = %s, want :8080", cfg.Addr())
	}
	if cfg.DaysPath != "data/days.json" {
		t.Errorf("DaysPath = %s, want data/days.json", cfg.DaysPath)
	}
	if cfg.UniqueSlots {
		t.Error("UniqueSlots should default to false")
	}
}

// TestLoad_UniqueSlots проверяет включение запрета повторных бронирований.
func TestLoad_UniqueSlots(t *testing.T) {
	oldDSN := os.Getenv("DB_DSN")
	oldUnique := os.Getenv("UNIQUE_SLOTS")
	defer func() {
		os.Setenv("DB_DSN", oldDSN)
		os.Setenv("UNIQUE_SLOTS", oldUnique)
	}()

	os.Setenv("DB_DSN", "postgres://localhost/tutor_market")
	os.Setenv("UNIQUE_SLOTS", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if !cfg.UniqueSlots {
		t.Error("UNIQUE_SLOTS environment variable not loaded")
	}
}
