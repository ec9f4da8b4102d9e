package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_ValidYAML_PopulatesAllFields(t *testing.T) {
	// Given
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `cache_path: "/var/lib/filing-atlas/cache.db"
sources:
  registry_path: "/etc/filing-atlas/sources.ini"
  profile: "staging"
watchlist:
  - "0000320193-24-000123"
  - "0000789019-24-000045"`
	err := os.WriteFile(path, []byte(content), 0o644)
	if err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// When
	cfg, err := LoadConfig(path)

	// Then
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.CachePath != "/var/lib/filing-atlas/cache.db" {
		t.Errorf("expected CachePath=/var/lib/filing-atlas/cache.db, got %s", cfg.CachePath)
	}
	if cfg.Sources.RegistryPath != "/etc/filing-atlas/sources.ini" {
		t.Errorf("expected RegistryPath=/etc/filing-atlas/sources.ini, got %s", cfg.Sources.RegistryPath)
	}
	if cfg.Sources.Profile != "staging" {
		t.Errorf("expected Profile=staging, got %s", cfg.Sources.Profile)
	}
	if len(cfg.Watchlist) != 2 {
		t.Errorf("expected 2 watchlist entries, got %d", len(cfg.Watchlist))
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `sources:
  registry_path: "sources.ini"`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.CachePath != "filing-atlas.db" {
		t.Errorf("expected default CachePath=filing-atlas.db, got %s", cfg.CachePath)
	}
	if cfg.Sources.Profile != "default" {
		t.Errorf("expected default Profile=default, got %s", cfg.Sources.Profile)
	}
}

func TestLoadConfig_MissingFile_ReturnsError(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Error("expected error for missing config file, got nil")
	}
}
