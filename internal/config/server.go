package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// ServerConfig holds the usersd development server configuration
type ServerConfig struct {
	Addr            string        `env:"USERSD_ADDR" envDefault:":8080"`
	Fixture         string        `env:"USERSD_FIXTURE" envDefault:"testdata/users.yml"`
	AllowedOrigins  []string      `env:"USERSD_ALLOWED_ORIGINS" envDefault:"http://localhost:3000" envSeparator:","`
	ReadTimeout     time.Duration `env:"USERSD_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout    time.Duration `env:"USERSD_WRITE_TIMEOUT" envDefault:"15s"`
	ShutdownTimeout time.Duration `env:"USERSD_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`  // debug, info, warn, error
	LogFormat       string        `env:"LOG_FORMAT" envDefault:"json"` // json, text
}

// LoadServer loads the server configuration from .env and the environment
func LoadServer() (*ServerConfig, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}
	var cfg ServerConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate validates the configuration
func (c *ServerConfig) Validate() error {
	var errs []string
	if c.Addr == "" {
		errs = append(errs, "USERSD_ADDR is required")
	}
	if c.Fixture == "" {
		errs = append(errs, "USERSD_FIXTURE is required")
	}
	switch c.LogFormat {
	case "json", "text":
	default:
		errs = append(errs, "LOG_FORMAT must be json or text")
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, "USERSD_SHUTDOWN_TIMEOUT must be positive")
	}
	if len(errs) > 0 {
		return errors.New("configuration errors:\n  - " + strings.Join(errs, "\n  - "))
	}
	return nil
}
