// Package config provides configuration management for the application.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/AndreaBeltramin/castfetch/internal/constants"
	"github.com/AndreaBeltramin/castfetch/pkg/logger"
)

// Configuration validation errors.
var (
	ErrInvalidBaseURL     = errors.New("BASE_URL must be an absolute http(s) URL")
	ErrInvalidPort        = errors.New("PORT must be a number between 1 and 65535")
	ErrInvalidLogLevel    = errors.New("LOG_LEVEL must be one of: debug, info, warn, error")
	ErrInvalidTimeout     = errors.New("REQUEST_TIMEOUT must be positive")
	ErrInvalidRateLimit   = errors.New("RATE_LIMIT and RATE_BURST must be positive")
	ErrInvalidConcurrency = errors.New("MAX_CONCURRENCY must not be negative")
)

// Config holds the application configuration.
// Values come from defaults, then an optional JSON or YAML file, then environment variables.
type Config struct {
	BaseURL        string        `json:"BASE_URL" yaml:"base_url"`
	Port           string        `json:"PORT" yaml:"port"`
	LogLevel       string        `json:"LOG_LEVEL" yaml:"log_level"`
	RequestTimeout time.Duration `json:"REQUEST_TIMEOUT" yaml:"request_timeout"`
	RateLimit      int64         `json:"RATE_LIMIT" yaml:"rate_limit"`
	RateBurst      int64         `json:"RATE_BURST" yaml:"rate_burst"`
	MaxConcurrency int           `json:"MAX_CONCURRENCY" yaml:"max_concurrency"`
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		BaseURL:        constants.DefaultBaseURL,
		Port:           constants.DefaultPort,
		LogLevel:       constants.DefaultLogLevel,
		RequestTimeout: constants.RequestTimeout,
		RateLimit:      constants.DefaultRateLimit,
		RateBurst:      constants.DefaultRateBurst,
		MaxConcurrency: constants.DefaultMaxConcurrency,
	}
}

// Load reads configuration from an optional file and environment variables.
// Environment variables take precedence over file values.
// Returns an error if the configuration is invalid.
func Load() (*Config, error) {
	cfg := Default()

	configFile := getEnvOrDefault("CONFIG_FILE", constants.DefaultConfigFile)
	if err := cfg.loadFromFile(configFile); err != nil {
		// Ignore file not found errors
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	if err := cfg.loadFromEnv(); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile decodes filename as YAML when its extension says so, JSON otherwise.
func (c *Config) loadFromFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, c)
	default:
		var raw fileConfig
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		return raw.apply(c)
	}
}

// fileConfig mirrors Config for JSON files, where durations are written as strings like "5s".
type fileConfig struct {
	BaseURL        *string `json:"BASE_URL"`
	Port           *string `json:"PORT"`
	LogLevel       *string `json:"LOG_LEVEL"`
	RequestTimeout *string `json:"REQUEST_TIMEOUT"`
	RateLimit      *int64  `json:"RATE_LIMIT"`
	RateBurst      *int64  `json:"RATE_BURST"`
	MaxConcurrency *int    `json:"MAX_CONCURRENCY"`
}

func (f fileConfig) apply(c *Config) error {
	if f.BaseURL != nil {
		c.BaseURL = *f.BaseURL
	}
	if f.Port != nil {
		c.Port = *f.Port
	}
	if f.LogLevel != nil {
		c.LogLevel = *f.LogLevel
	}
	if f.RequestTimeout != nil {
		d, err := time.ParseDuration(*f.RequestTimeout)
		if err != nil {
			return fmt.Errorf("REQUEST_TIMEOUT: %w", err)
		}
		c.RequestTimeout = d
	}
	if f.RateLimit != nil {
		c.RateLimit = *f.RateLimit
	}
	if f.RateBurst != nil {
		c.RateBurst = *f.RateBurst
	}
	if f.MaxConcurrency != nil {
		c.MaxConcurrency = *f.MaxConcurrency
	}
	return nil
}

// loadFromEnv loads configuration from environment variables.
func (c *Config) loadFromEnv() error {
	if v := os.Getenv("BASE_URL"); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv("PORT"); v != "" {
		c.Port = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("REQUEST_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("REQUEST_TIMEOUT: %w", err)
		}
		c.RequestTimeout = d
	}

	ints := []struct {
		key string
		set func(int64)
	}{
		{"RATE_LIMIT", func(n int64) { c.RateLimit = n }},
		{"RATE_BURST", func(n int64) { c.RateBurst = n }},
		{"MAX_CONCURRENCY", func(n int64) { c.MaxConcurrency = int(n) }},
	}
	for _, it := range ints {
		v := os.Getenv(it.key)
		if v == "" {
			continue
		}
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", it.key, err)
		}
		it.set(n)
	}
	return nil
}

// Validate checks if the configuration is valid.
// The base URL is normalized to have no trailing slash.
func (c *Config) Validate() error {
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	u, err := url.Parse(c.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrInvalidBaseURL
	}

	port, err := strconv.Atoi(c.Port)
	if err != nil || port < 1 || port > 65535 {
		return ErrInvalidPort
	}

	if !logger.ValidLevel(c.LogLevel) {
		return ErrInvalidLogLevel
	}

	if c.RequestTimeout <= 0 {
		return ErrInvalidTimeout
	}

	if c.RateLimit <= 0 || c.RateBurst <= 0 {
		return ErrInvalidRateLimit
	}

	if c.MaxConcurrency < 0 {
		return ErrInvalidConcurrency
	}

	return nil
}

// String returns a short summary safe to log.
func (c *Config) String() string {
	return fmt.Sprintf("Config{BaseURL: %s, Port: %s, Timeout: %s, Rate: %d/s burst %d}",
		c.BaseURL, c.Port, c.RequestTimeout, c.RateLimit, c.RateBurst)
}

// getEnvOrDefault returns environment variable value or default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
