package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Configuration validation constants
const (
	MinPort = 1     // Minimum valid port number
	MaxPort = 65535 // Maximum valid port number

	// Default values
	DefaultHTTPPort  = 8080
	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
)

// Environment variables that override file settings
const (
	EnvHTTPPort  = "WORKSHOP_TS_HTTP_PORT"
	EnvLogLevel  = "WORKSHOP_TS_LOG_LEVEL"
	EnvLogFormat = "WORKSHOP_TS_LOG_FORMAT"
)

var (
	validLogLevels  = []string{"debug", "info", "warn", "warning", "error"}
	validLogFormats = []string{"json", "text"}
)

// Config represents the application configuration
type Config struct {
	HTTPPort  int    `yaml:"http_port"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

// Load loads configuration from a YAML file and applies environment variable overrides.
// An empty path skips the file and starts from defaults.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		// #nosec G304 -- Config file path is provided by the operator via CLI flag
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	applyDefaults(&cfg)

	if err := applyEnvOverrides(&cfg); err != nil {
		return nil, fmt.Errorf("environment variable error: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Default returns a configuration populated with default values only
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.HTTPPort == 0 {
		cfg.HTTPPort = DefaultHTTPPort
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = DefaultLogFormat
	}
}

func applyEnvOverrides(cfg *Config) error {
	if val := os.Getenv(EnvHTTPPort); val != "" {
		i, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("invalid %s: must be an integer, got %q", EnvHTTPPort, val)
		}
		cfg.HTTPPort = i
	}

	if val := os.Getenv(EnvLogLevel); val != "" {
		cfg.LogLevel = val
	}

	if val := os.Getenv(EnvLogFormat); val != "" {
		cfg.LogFormat = val
	}

	return nil
}

// Validate checks the configuration, e.g. after command-line overrides
func (c *Config) Validate() error {
	return validate(c)
}

func validate(cfg *Config) error {
	if cfg.HTTPPort < MinPort || cfg.HTTPPort > MaxPort {
		return fmt.Errorf("http_port must be between %d and %d, got %d", MinPort, MaxPort, cfg.HTTPPort)
	}

	if !oneOf(cfg.LogLevel, validLogLevels) {
		return fmt.Errorf("log_level must be one of %s, got %q", strings.Join(validLogLevels, ", "), cfg.LogLevel)
	}

	if !oneOf(cfg.LogFormat, validLogFormats) {
		return fmt.Errorf("log_format must be one of %s, got %q", strings.Join(validLogFormats, ", "), cfg.LogFormat)
	}

	return nil
}

func oneOf(val string, allowed []string) bool {
	for _, a := range allowed {
		if strings.EqualFold(val, a) {
			return true
		}
	}
	return false
}
