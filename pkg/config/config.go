package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"clipbridge/pkg/errors"

	"gopkg.in/yaml.v3"
)

const DefaultTimeout = 10 * time.Second

// OSC52 emission policies.
const (
	OSC52Auto   = "auto"   // emit over remote sessions only
	OSC52Always = "always" // emit whenever a terminal is reachable
	OSC52Never  = "never"  // never emit
)

// Config holds the complete clipbridge configuration.
type Config struct {
	Backend    string        `yaml:"backend,omitempty"`
	OSC52      string        `yaml:"osc52"`
	Primary    bool          `yaml:"primary"`
	Trim       bool          `yaml:"trim"`
	Timeout    time.Duration `yaml:"timeout"`
	BufferPath string        `yaml:"buffer_path,omitempty"`
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "clipbridge", "config.yaml"), nil
}

// Load loads the configuration from the default path, applying environment
// overrides and defaults. A missing config file is not an error.
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, errors.NewWithError(errors.ExitCodeConfig, "failed to get config path", err)
	}
	return loadFromPath(configPath)
}

// Save saves the configuration to file
func Save(cfg *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}

	// Ensure directory exists
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return errors.NewWithError(errors.ExitCodeFileOperation, "failed to create config directory", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.NewWithError(errors.ExitCodeConfig, "failed to marshal config", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return errors.NewWithError(errors.ExitCodeFileOperation, "failed to write config file", err)
	}

	return nil
}

// Set assigns a configuration value by its yaml key name.
func (c *Config) Set(key, value string) error {
	switch key {
	case "backend":
		c.Backend = value
	case "osc52":
		c.OSC52 = value
	case "primary":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return errors.ValidationError(fmt.Sprintf("primary must be a boolean, got '%s'", value))
		}
		c.Primary = b
	case "trim":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return errors.ValidationError(fmt.Sprintf("trim must be a boolean, got '%s'", value))
		}
		c.Trim = b
	case "timeout":
		d, err := time.ParseDuration(value)
		if err != nil {
			return errors.ValidationError(fmt.Sprintf("timeout must be a duration (e.g. 10s), got '%s'", value))
		}
		c.Timeout = d
	case "buffer_path":
		c.BufferPath = value
	default:
		return errors.ValidationError(fmt.Sprintf("unknown config key '%s'", key))
	}
	return validateConfig(c)
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func loadFromPath(configPath string) (*Config, error) {
	cfg := &Config{}

	if err := loadConfigFile(configPath, cfg); err != nil {
		return nil, err
	}

	applyEnvironmentOverrides(cfg)
	applyDefaults(cfg)

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadConfigFile reads and parses the config file from the given path
func loadConfigFile(path string, cfg *Config) error {
	if _, err := os.Stat(path); err != nil {
		// File doesn't exist, that's okay - we'll use env vars and defaults
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return errors.NewWithError(errors.ExitCodeFileOperation, "failed to read config file", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errors.NewWithError(errors.ExitCodeConfig, "failed to parse config file", err)
	}

	return nil
}

// applyEnvironmentOverrides applies environment variable overrides to the config
func applyEnvironmentOverrides(cfg *Config) {
	if v := os.Getenv("CLIPBRIDGE_BACKEND"); v != "" {
		cfg.Backend = v
	}
	if v := os.Getenv("CLIPBRIDGE_OSC52"); v != "" {
		cfg.OSC52 = v
	}
	if os.Getenv("CLIPBRIDGE_PRIMARY") != "" {
		cfg.Primary = getEnvBool("CLIPBRIDGE_PRIMARY", cfg.Primary)
	}
	if os.Getenv("CLIPBRIDGE_TRIM") != "" {
		cfg.Trim = getEnvBool("CLIPBRIDGE_TRIM", cfg.Trim)
	}
	if os.Getenv("CLIPBRIDGE_TIMEOUT") != "" {
		cfg.Timeout = getEnvDuration("CLIPBRIDGE_TIMEOUT", cfg.Timeout)
	}
	if v := os.Getenv("CLIPBRIDGE_BUFFER_PATH"); v != "" {
		cfg.BufferPath = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.OSC52 == "" {
		cfg.OSC52 = OSC52Auto
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
}

// validateConfig ensures all configuration fields hold allowed values
func validateConfig(cfg *Config) error {
	switch cfg.OSC52 {
	case OSC52Auto, OSC52Always, OSC52Never:
	default:
		return errors.ConfigError(fmt.Sprintf("osc52 must be one of auto, always, never; got '%s'", cfg.OSC52))
	}
	if cfg.Timeout < 0 {
		return errors.ConfigError("timeout must not be negative")
	}
	return nil
}
