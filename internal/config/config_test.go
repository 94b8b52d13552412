package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigYAMLRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()

	cfg := DefaultConfig()
	cfg.Remote.BaseURL = "https://carbon.example.com"
	cfg.Voice.Command = "whisper-cli"

	if err := WriteConfig(tmpDir, cfg); err != nil {
		t.Fatalf("WriteConfig failed: %v", err)
	}

	loaded, err := ReadConfig(tmpDir)
	if err != nil {
		t.Fatalf("ReadConfig failed: %v", err)
	}

	if loaded.Remote.BaseURL != "https://carbon.example.com" {
		t.Errorf("Remote.BaseURL: got %q, want %q", loaded.Remote.BaseURL, "https://carbon.example.com")
	}
	if loaded.Voice.Command != "whisper-cli" {
		t.Errorf("Voice.Command: got %q, want %q", loaded.Voice.Command, "whisper-cli")
	}
	if loaded.Model != "gemini-2.5-flash" {
		t.Errorf("Model: got %q, want default model", loaded.Model)
	}
}

func TestLoadMissingConfigUsesDefaults(t *testing.T) {
	tmpDir := t.TempDir()

	cfg, _ := Load(tmpDir)
	if cfg == nil {
		t.Fatal("Load returned nil config")
	}
	if cfg.Model != DefaultConfig().Model {
		t.Errorf("Model: got %q, want default", cfg.Model)
	}
}

func TestLoadMalformedConfigUsesDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmpDir, "config.yaml"), []byte("{not yaml:::"), 0644); err != nil {
		t.Fatalf("writing malformed config: %v", err)
	}

	cfg, _ := Load(tmpDir)
	if cfg.Model != DefaultConfig().Model {
		t.Errorf("malformed config should fall back to defaults, got model %q", cfg.Model)
	}
}

func TestEnvRemoteURLOverride(t *testing.T) {
	tmpDir := t.TempDir()

	cfg := DefaultConfig()
	cfg.Remote.BaseURL = "https://from-file.example.com"
	if err := WriteConfig(tmpDir, cfg); err != nil {
		t.Fatalf("WriteConfig failed: %v", err)
	}

	t.Setenv("CARBON_REMOTE_URL", "https://from-env.example.com")

	loaded, env := Load(tmpDir)
	if loaded.Remote.BaseURL != "https://from-env.example.com" {
		t.Errorf("Remote.BaseURL: got %q, want env override", loaded.Remote.BaseURL)
	}
	if env.RemoteURL != "https://from-env.example.com" {
		t.Errorf("Env.RemoteURL: got %q", env.RemoteURL)
	}
}
