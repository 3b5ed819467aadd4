package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration structure. It carries
// presentation preferences only; game rules are fixed and not configurable.
type Config struct {
	Window struct {
		Title  string  `yaml:"title"`  // Window title
		Width  float32 `yaml:"width"`  // Window width in pixels
		Height float32 `yaml:"height"` // Window height in pixels
	} `yaml:"window"`
	Settings struct {
		Debug         bool   `yaml:"debug"`           // Enable debug logging
		Theme         string `yaml:"theme"`           // Theme: system, dark, or light
		SubmitOnEnter bool   `yaml:"submit_on_enter"` // Pressing Enter in the entry submits the guess
	} `yaml:"settings"`
}

// DefaultPath returns the default config file location
// (~/.config/guessd/config.yaml).
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "guessd", "config.yaml"), nil
}

// LoadConfig loads configuration from the default location.
func LoadConfig() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return LoadConfigFile(path)
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	cfg := New()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if file doesn't exist
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Unmarshal into a temporary struct to preserve defaults for unset
	// fields; booleans are pointers so an absent key is distinguishable
	// from an explicit false.
	var tempCfg struct {
		Window struct {
			Title  string  `yaml:"title"`
			Width  float32 `yaml:"width"`
			Height float32 `yaml:"height"`
		} `yaml:"window"`
		Settings struct {
			Debug         *bool  `yaml:"debug"`
			Theme         string `yaml:"theme"`
			SubmitOnEnter *bool  `yaml:"submit_on_enter"`
		} `yaml:"settings"`
	}
	if err := yaml.Unmarshal(data, &tempCfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if tempCfg.Window.Title != "" {
		cfg.Window.Title = tempCfg.Window.Title
	}
	if tempCfg.Window.Width > 0 {
		cfg.Window.Width = tempCfg.Window.Width
	}
	if tempCfg.Window.Height > 0 {
		cfg.Window.Height = tempCfg.Window.Height
	}
	if tempCfg.Settings.Theme != "" {
		cfg.Settings.Theme = tempCfg.Settings.Theme
	}
	if tempCfg.Settings.Debug != nil {
		cfg.Settings.Debug = *tempCfg.Settings.Debug
	}
	if tempCfg.Settings.SubmitOnEnter != nil {
		cfg.Settings.SubmitOnEnter = *tempCfg.Settings.SubmitOnEnter
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// New returns the default configuration.
func New() *Config {
	cfg := &Config{}

	cfg.Window.Title = "Guessing Game"
	cfg.Window.Width = 400
	cfg.Window.Height = 240

	cfg.Settings.Debug = false
	cfg.Settings.Theme = "system"
	cfg.Settings.SubmitOnEnter = true

	return cfg
}

// SaveConfig saves the configuration to the specified file.
// It creates parent directories if they don't exist.
func SaveConfig(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid.
// Returns error if any settings are invalid.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("nil config")
	}

	validThemes := map[string]bool{"system": true, "dark": true, "light": true}
	if !validThemes[c.Settings.Theme] {
		return fmt.Errorf("invalid theme setting: %s", c.Settings.Theme)
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window dimensions must be positive")
	}

	return nil
}
