// ABOUTME: Planner configuration management with backend selection.
// ABOUTME: JSON config file plus a PLANNER_* environment variable overlay.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v6"

	"github.com/harperreed/planner/internal/storage"
)

// Config stores planner tool configuration. Environment variables override
// values from the config file.
type Config struct {
	// Backend selects the storage backend: "sqlite" (default) or "badger".
	Backend string `json:"backend,omitempty" env:"PLANNER_BACKEND"`

	// DataDir is the root directory for data storage. SQLite puts planner.db
	// here; the legacy Badger backend uses a badger/ subdirectory.
	// Supports ~ expansion. Defaults to ~/.local/share/planner.
	DataDir string `json:"data_dir,omitempty" env:"PLANNER_DATA_DIR"`

	// GroqAPIKey authenticates coach requests. Usually set via environment.
	GroqAPIKey string `json:"groq_api_key,omitempty" env:"GROQ_API_KEY"`

	// CoachModel overrides the default coach model.
	CoachModel string `json:"coach_model,omitempty" env:"PLANNER_COACH_MODEL"`

	// AutoSync pushes completed days to Charm Cloud after each completion.
	// Failures are reported as warnings and never block the local write.
	AutoSync bool `json:"auto_sync,omitempty" env:"PLANNER_AUTO_SYNC"`
}

// GetBackend returns the configured backend, defaulting to "sqlite".
func (c *Config) GetBackend() string {
	if c.Backend == "" {
		return "sqlite"
	}
	return c.Backend
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenStorage creates a Repository implementation based on the configured backend.
func (c *Config) OpenStorage() (storage.Repository, error) {
	backend := c.GetBackend()
	dataDir := c.GetDataDir()

	switch backend {
	case "sqlite":
		return storage.Open(filepath.Join(dataDir, "planner.db"))
	case "badger":
		return storage.OpenLegacy(filepath.Join(dataDir, "badger"))
	default:
		return nil, fmt.Errorf("unknown backend: %q", backend)
	}
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "planner", "config.json")
}

// Load reads config from disk and applies environment overrides.
func Load() (*Config, error) {
	cfg := &Config{}
	data, err := os.ReadFile(GetConfigPath())
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	if err == nil {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// Save writes config to disk. Environment overrides are written out as-is.
func (c *Config) Save() error {
	path := GetConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
