// Package config handles reading and writing the carbon config file plus
// environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config is the top-level structure for config.yaml in the data directory.
type Config struct {
	Version int          `yaml:"version"`
	Model   string       `yaml:"model"`
	Remote  RemoteConfig `yaml:"remote"`
	Voice   VoiceConfig  `yaml:"voice"`
}

// RemoteConfig points at the remote archive service.
type RemoteConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// Timeout returns the remote request timeout as a duration, with a 10s
// floor when the config carries no value.
func (r RemoteConfig) Timeout() time.Duration {
	if r.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(r.TimeoutSeconds) * time.Second
}

// VoiceConfig controls the optional voice-to-text intake.
type VoiceConfig struct {
	Command string `yaml:"command"` // external transcriber, empty disables
}

// Env holds environment-variable overrides. The API key is only ever read
// from the environment, never from the config file.
type Env struct {
	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	RemoteURL    string `env:"CARBON_REMOTE_URL"`
	DataDir      string `env:"CARBON_DATA_DIR"`
}

const configFile = "config.yaml"

// ReadConfig reads config.yaml from the given data directory.
// Returns an error if the file is not found or YAML is malformed.
func ReadConfig(dir string) (*Config, error) {
	data, err := os.ReadFile(filepath.Join(dir, configFile))
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return &cfg, nil
}

// WriteConfig writes cfg to config.yaml in the given data directory.
// Creates the directory if it does not exist.
func WriteConfig(dir string, cfg *Config) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, configFile), data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Model:   "gemini-2.5-flash",
		Remote: RemoteConfig{
			TimeoutSeconds: 10,
		},
	}
}

// ParseEnv reads the environment overrides.
func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}

// Load resolves the effective configuration: config.yaml if present,
// defaults otherwise, with environment overrides applied on top. A missing
// or malformed config file is never fatal.
func Load(dir string) (*Config, Env) {
	cfg, err := ReadConfig(dir)
	if err != nil {
		cfg = DefaultConfig()
	}

	e, err := ParseEnv()
	if err != nil {
		e = Env{}
	}
	if e.RemoteURL != "" {
		cfg.Remote.BaseURL = e.RemoteURL
	}

	return cfg, e
}

// DefaultDataDir returns the per-user data directory for carbon.
func DefaultDataDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ".carbon"
	}
	return filepath.Join(base, "carbon")
}
