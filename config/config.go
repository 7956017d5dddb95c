package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"moodgen/mood"
)

// ServerConfig configures the HTTP API
type ServerConfig struct {
	Addr string `json:"addr,omitempty"`
}

// UIConfig stores previewer preferences
type UIConfig struct {
	Palette   string `json:"palette,omitempty"` // path to a GIMP .gpl palette
	LaneWidth int    `json:"laneWidth,omitempty"`
}

// Config is the main configuration structure
type Config struct {
	DefaultMood string         `json:"defaultMood,omitempty"`
	OutputDir   string         `json:"outputDir,omitempty"`
	Server      ServerConfig   `json:"server,omitempty"`
	UI          UIConfig       `json:"ui,omitempty"`
	Profiles    []mood.Profile `json:"profiles,omitempty"` // custom moods
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		DefaultMood: "happy",
		OutputDir:   ".",
		Server: ServerConfig{
			Addr: ":8080",
		},
		UI: UIConfig{
			LaneWidth: 64,
		},
	}
}

// ConfigDir returns the config directory path
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "moodgen"), nil
}

// ConfigPath returns the full path to config.json
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, or returns defaults if not found
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadFile(path)
}

// LoadFile reads a config file; a missing file yields the defaults.
// Unset fields keep their default values.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	// Create directory if it doesn't exist
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// RegisterProfiles validates the custom profiles and makes them available
// through mood.Preset
func (c *Config) RegisterProfiles() error {
	for _, p := range c.Profiles {
		if err := mood.Register(p); err != nil {
			return fmt.Errorf("config profile: %w", err)
		}
	}
	return nil
}

// FindProfile returns a custom profile by name
func (c *Config) FindProfile(name string) *mood.Profile {
	for i := range c.Profiles {
		if c.Profiles[i].Name == name {
			return &c.Profiles[i]
		}
	}
	return nil
}

// AddProfile adds or replaces a custom profile
func (c *Config) AddProfile(p mood.Profile) {
	for i := range c.Profiles {
		if c.Profiles[i].Name == p.Name {
			c.Profiles[i] = p
			return
		}
	}
	c.Profiles = append(c.Profiles, p)
}
