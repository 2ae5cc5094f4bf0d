package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Address != "localhost:8088" {
		t.Errorf("Unexpected default address: %s", cfg.Address)
	}
	if cfg.UsersPath == "" || cfg.JWTSecret == "" {
		t.Errorf("Defaults incomplete: %+v", cfg)
	}

	// The default file lands on disk for the next start.
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Default config was not written: %v", err)
	}
	var onDisk Config
	if err := json.Unmarshal(data, &onDisk); err != nil {
		t.Fatalf("Written config is not valid JSON: %v", err)
	}
	if onDisk != *cfg {
		t.Errorf("Written config %+v differs from returned %+v", onDisk, cfg)
	}
}

func TestLoadExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"address":"0.0.0.0:9000","users_path":"players.json","jwt_secret":"sssh"}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Address != "0.0.0.0:9000" || cfg.UsersPath != "players.json" || cfg.JWTSecret != "sssh" {
		t.Errorf("Unexpected config: %+v", cfg)
	}
}

func TestLoadRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("not json"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Expected error for malformed config")
	}
}
