package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileYieldsZeroConfig(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope", "config.yaml"))
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if cfg.DatabasePath != "" || cfg.DefaultList != "" {
		t.Errorf("expected zero config, got %+v", cfg)
	}
}

func TestSaveAndLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".remind", "config.yaml")

	want := &Config{
		DatabasePath: "/tmp/remind-test.db",
		DefaultList:  "Inbox",
	}
	if err := Save(path, want); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got.DatabasePath != want.DatabasePath {
		t.Errorf("expected database path '%s', got '%s'", want.DatabasePath, got.DatabasePath)
	}
	if got.DefaultList != want.DefaultList {
		t.Errorf("expected default list '%s', got '%s'", want.DefaultList, got.DefaultList)
	}
}

func TestLoad_RejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("database_path: [unterminated"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed yaml, got nil")
	}
}
