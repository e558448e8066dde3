package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, k := range []string{"MAEUMSEE_ADDR", "MAEUMSEE_DB_PATH", "MAEUMSEE_STORAGE", "MAEUMSEE_DATA_DIR", "MAEUMSEE_LOG_LEVEL", "MAEUMSEE_LOG_FORMAT", "MAEUMSEE_GROWTH_STRATEGY", "MAEUMSEE_TZ", "MAEUMSEE_BACKUP_PATH", "MAEUMSEE_RESTORE_PATH"} {
		t.Setenv(k, "")
	}

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.Addr != "127.0.0.1:8080" {
		t.Errorf("Addr = %q, want %q", cfg.Addr, "127.0.0.1:8080")
	}
	if cfg.Storage != StorageSQLite {
		t.Errorf("Storage = %q, want %q", cfg.Storage, StorageSQLite)
	}
	if cfg.GrowthStrategy.Name() != "points" {
		t.Errorf("GrowthStrategy = %q, want %q", cfg.GrowthStrategy.Name(), "points")
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("MAEUMSEE_ADDR", "127.0.0.1:9999")
	t.Setenv("MAEUMSEE_STORAGE", "FILE")
	t.Setenv("MAEUMSEE_DATA_DIR", "/tmp/maeumsee")
	t.Setenv("MAEUMSEE_GROWTH_STRATEGY", "flat")
	t.Setenv("MAEUMSEE_TZ", "Asia/Seoul")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.Addr != "127.0.0.1:9999" {
		t.Errorf("Addr = %q, want %q", cfg.Addr, "127.0.0.1:9999")
	}
	if cfg.Storage != StorageFile {
		t.Errorf("Storage = %q, want %q", cfg.Storage, StorageFile)
	}
	if cfg.GrowthStrategy.Name() != "flat" {
		t.Errorf("GrowthStrategy = %q, want %q", cfg.GrowthStrategy.Name(), "flat")
	}
	if cfg.Location.String() != "Asia/Seoul" {
		t.Errorf("Location = %q, want %q", cfg.Location, "Asia/Seoul")
	}
}

func TestFromEnvInvalid(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"MAEUMSEE_STORAGE", "postgres"},
		{"MAEUMSEE_GROWTH_STRATEGY", "exponential"},
		{"MAEUMSEE_TZ", "Mars/Olympus"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := FromEnv(); err == nil {
				t.Errorf("FromEnv with %s=%q: expected error", tt.key, tt.value)
			}
		})
	}
}

func TestFromEnvFileBackups(t *testing.T) {
	t.Setenv("MAEUMSEE_BACKUP_PATH", "/tmp/maeumsee.backup")
	t.Setenv("MAEUMSEE_RESTORE_PATH", "")
	t.Setenv("MAEUMSEE_BACKUP_PASSPHRASE", "")
	if _, err := FromEnv(); err == nil {
		t.Fatal("expected error for backup path without passphrase")
	}

	t.Setenv("MAEUMSEE_BACKUP_PASSPHRASE", "pw")
	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.BackupPath != "/tmp/maeumsee.backup" || cfg.BackupPassphrase != "pw" {
		t.Errorf("backup config = %q / %q, want path and passphrase", cfg.BackupPath, cfg.BackupPassphrase)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("MAEUMSEE_LOG_LEVEL=debug\n"), 0600); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Chdir(dir)
	t.Setenv("MAEUMSEE_LOG_LEVEL", "")
	os.Unsetenv("MAEUMSEE_LOG_LEVEL")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
}

func TestLoadWithoutDotEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	if _, err := Load(); err != nil {
		t.Fatalf("Load without .env: %v", err)
	}
}
