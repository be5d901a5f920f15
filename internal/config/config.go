package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/turkosaurus/userview/internal/users"
)

// Config holds the client configuration
type Config struct {
	Endpoint string `yaml:"endpoint" env:"USERVIEW_ENDPOINT"`
	Timeout  int    `yaml:"timeout" env:"USERVIEW_TIMEOUT"` // seconds, 0 = wait indefinitely
	LogFile  string `yaml:"log_file" env:"USERVIEW_LOG_FILE"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Endpoint: users.DefaultEndpoint,
		Timeout:  0,
		LogFile:  filepath.Join(configDir(), "userview.log"),
	}
}

// Load builds the configuration from defaults, the YAML file at path (the
// default location when empty), a .env file in the working directory, and
// finally USERVIEW_* environment variables.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = ConfigPath()
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %q: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
		// no config file; defaults stand
	default:
		return nil, fmt.Errorf("read config file %q: %w", path, err)
	}

	if err := loadDotEnv(); err != nil {
		return nil, err
	}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.Endpoint == "" {
		cfg.Endpoint = users.DefaultEndpoint
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	u, err := url.Parse(c.Endpoint)
	if err != nil {
		return fmt.Errorf("invalid endpoint %q: %w", c.Endpoint, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid endpoint %q: scheme must be http or https", c.Endpoint)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid endpoint %q: missing host", c.Endpoint)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("invalid timeout %d: must not be negative", c.Timeout)
	}
	return nil
}

// RequestTimeout returns the fetch timeout; zero means none.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}

// ConfigPath returns the path to the config file
func ConfigPath() string {
	return filepath.Join(configDir(), "config.yml")
}

func configDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "userview")
}

// loadDotEnv reads .env from the working directory when present. Variables
// already set in the environment win.
func loadDotEnv() error {
	err := godotenv.Load()
	if err == nil {
		slog.Debug("loaded .env file")
		return nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("load .env: %w", err)
}
