package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var (
	ErrMissingBaseURL      = errors.New("client.base_url is required")
	ErrInvalidInterval     = errors.New("refresh.interval_seconds must be positive")
	ErrInvalidStaleMinutes = errors.New("refresh.stale_minutes must not be negative")
)

// Config represents the main configuration structure
type Config struct {
	Client  ClientConfig  `yaml:"client"`
	Refresh RefreshConfig `yaml:"refresh"`
	Server  ServerConfig  `yaml:"server"`
}

// ClientConfig configures the export API client
type ClientConfig struct {
	BaseURL   string `yaml:"base_url"`
	UserAgent string `yaml:"user_agent"`
	TimeoutMs int    `yaml:"timeout_ms"`
}

// RefreshConfig configures the background refresh loop
type RefreshConfig struct {
	IntervalSeconds int `yaml:"interval_seconds"`
	// StaleMinutes applies to both the server's last-modified date and the
	// cached export's age.
	StaleMinutes int `yaml:"stale_minutes"`
}

// ServerConfig configures the HTTP server
type ServerConfig struct {
	ListenAddr     string `yaml:"listen_addr"`
	ReadTimeoutMs  int    `yaml:"read_timeout_ms"`
	WriteTimeoutMs int    `yaml:"write_timeout_ms"`
}

// LoadConfig loads configuration from file path
func LoadConfig(configPath string, logger *zap.Logger) (*Config, error) {
	logger.Info("Loading configuration", zap.String("path", configPath))

	file, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var config Config
	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&config); err != nil {
		return nil, fmt.Errorf("failed to decode YAML config: %w", err)
	}

	// Apply defaults
	config.applyDefaults()
	return &config, nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.Client.UserAgent == "" {
		c.Client.UserAgent = "nexus-export-cache"
	}
	if c.Client.TimeoutMs == 0 {
		c.Client.TimeoutMs = 30000
	}

	if c.Refresh.IntervalSeconds == 0 {
		c.Refresh.IntervalSeconds = 300
	}
	if c.Refresh.StaleMinutes == 0 {
		c.Refresh.StaleMinutes = 60
	}

	if c.Server.ListenAddr == "" {
		c.Server.ListenAddr = ":8080"
	}
	if c.Server.ReadTimeoutMs == 0 {
		c.Server.ReadTimeoutMs = 30000
	}
	if c.Server.WriteTimeoutMs == 0 {
		c.Server.WriteTimeoutMs = 30000
	}
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	if c.Client.BaseURL == "" {
		return ErrMissingBaseURL
	}
	if c.Refresh.IntervalSeconds <= 0 {
		return ErrInvalidInterval
	}
	if c.Refresh.StaleMinutes < 0 {
		return ErrInvalidStaleMinutes
	}
	return nil
}

// GetClientTimeout returns the export API request timeout as time.Duration
func (c *Config) GetClientTimeout() time.Duration {
	return time.Duration(c.Client.TimeoutMs) * time.Millisecond
}

// GetRefreshInterval returns the refresh interval as time.Duration
func (c *Config) GetRefreshInterval() time.Duration {
	return time.Duration(c.Refresh.IntervalSeconds) * time.Second
}

// GetReadTimeout returns the server read timeout as time.Duration
func (c *Config) GetReadTimeout() time.Duration {
	return time.Duration(c.Server.ReadTimeoutMs) * time.Millisecond
}

// GetWriteTimeout returns the server write timeout as time.Duration
func (c *Config) GetWriteTimeout() time.Duration {
	return time.Duration(c.Server.WriteTimeoutMs) * time.Millisecond
}
