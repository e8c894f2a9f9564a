package config

import (
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.PokeAPI.BaseURL != "https://pokeapi.co/api/v2" {
		t.Errorf("unexpected base url: %s", cfg.PokeAPI.BaseURL)
	}
	if cfg.PokeAPI.Timeout != 30 {
		t.Errorf("expected timeout 30, got %d", cfg.PokeAPI.Timeout)
	}
	if cfg.List.PageSize != 20 {
		t.Errorf("expected page size 20, got %d", cfg.List.PageSize)
	}
	if cfg.List.SessionTTL != 1800 {
		t.Errorf("expected session ttl 1800, got %d", cfg.List.SessionTTL)
	}
	if cfg.Palette.Algorithm != "histogram" || cfg.Palette.Clusters != 3 {
		t.Errorf("unexpected palette config: %+v", cfg.Palette)
	}
	if cfg.Server.Address() != "localhost:8080" {
		t.Errorf("unexpected address: %s", cfg.Server.Address())
	}
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	path := filepath.Join(dir, "pokedex.yaml")
	content := `
server:
  port: 9000
pokeapi:
  base_url: http://localhost:1234/api
list:
  page_size: 50
palette:
  algorithm: kmeans
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 9000 || cfg.Server.Host != "localhost" {
		t.Errorf("unexpected server config: %+v", cfg.Server)
	}
	if cfg.PokeAPI.BaseURL != "http://localhost:1234/api" {
		t.Errorf("unexpected base url: %s", cfg.PokeAPI.BaseURL)
	}
	if cfg.List.PageSize != 50 {
		t.Errorf("expected page size 50, got %d", cfg.List.PageSize)
	}
	if cfg.Palette.Algorithm != "kmeans" || cfg.Palette.Clusters != 3 {
		t.Errorf("unexpected palette config: %+v", cfg.Palette)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	chdir(t, t.TempDir())

	if _, err := Load("does-not-exist.yaml"); err == nil {
		t.Error("expected error for an explicit missing file")
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("POKEDEX_LIST_PAGE_SIZE", "5")
	t.Setenv("POKEDEX_POKEAPI_USER_AGENT", "pokedex-test")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.List.PageSize != 5 {
		t.Errorf("expected page size 5, got %d", cfg.List.PageSize)
	}
	if cfg.PokeAPI.UserAgent != "pokedex-test" {
		t.Errorf("unexpected user agent: %s", cfg.PokeAPI.UserAgent)
	}
}

func TestLoad_EnvFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	// Register cleanup for the variable godotenv is about to set.
	t.Setenv("POKEDEX_SERVER_PORT", "")
	os.Unsetenv("POKEDEX_SERVER_PORT")

	if err := os.WriteFile(filepath.Join(dir, envFile), []byte("POKEDEX_SERVER_PORT=9191\n"), 0o644); err != nil {
		t.Fatalf("failed to write env file: %v", err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 9191 {
		t.Errorf("expected port 9191, got %d", cfg.Server.Port)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]string{
		"POKEDEX_LIST_PAGE_SIZE":   "0",
		"POKEDEX_POKEAPI_TIMEOUT":  "-1",
		"POKEDEX_PALETTE_CLUSTERS": "0",
		"POKEDEX_LIST_SESSION_TTL": "0",
	}

	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			chdir(t, t.TempDir())
			t.Setenv(key, value)

			if _, err := Load(""); err == nil {
				t.Errorf("expected error for %s=%s", key, value)
			}
		})
	}
}

func TestSetupLogging(t *testing.T) {
	defer log.SetLevel(log.GetLevel())
	defer log.SetFormatter(log.StandardLogger().Formatter)

	if err := SetupLogging(LogConfig{Level: "debug", Format: "json"}); err != nil {
		t.Fatalf("SetupLogging failed: %v", err)
	}
	if log.GetLevel() != log.DebugLevel {
		t.Errorf("expected debug level, got %s", log.GetLevel())
	}
	if _, ok := log.StandardLogger().Formatter.(*log.JSONFormatter); !ok {
		t.Errorf("expected JSON formatter, got %T", log.StandardLogger().Formatter)
	}

	if err := SetupLogging(LogConfig{Level: "loud", Format: "text"}); err == nil {
		t.Error("expected error for unknown level")
	}
	if err := SetupLogging(LogConfig{Level: "info", Format: "xml"}); err == nil {
		t.Error("expected error for unknown format")
	}
}
