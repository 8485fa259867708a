// Package config provides configuration loading and validation for the CLI
// and HTTP server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Storage backends.
const (
	BackendMemory = "memory"
	BackendS3     = "s3"
)

// Config represents the configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults.
type Config struct {
	Port    int  `json:"port,omitempty"`     // HTTP listen port
	LogJSON bool `json:"log_json,omitempty"` // Emit JSON logs instead of console output
	Debug   bool `json:"debug,omitempty"`    // Enable debug logging

	// Limits
	MaxInputBytes int `json:"max_input_bytes,omitempty"` // Largest accepted upload
	MaxLines      int `json:"max_lines,omitempty"`       // Lines examined per document
	Workers       int `json:"workers,omitempty"`         // Concurrent documents in a batch
	HistorySize   int `json:"history_size,omitempty"`    // Analyses kept in memory

	Storage StorageConfig `json:"storage"`
}

// StorageConfig selects and configures the blob store for uploaded documents.
type StorageConfig struct {
	Backend    string   `json:"backend,omitempty"` // memory or s3
	Bucket     string   `json:"bucket,omitempty"`
	Region     string   `json:"region,omitempty"`
	Endpoint   string   `json:"endpoint,omitempty"` // S3-compatible endpoint, e.g. DigitalOcean Spaces
	AccessKey  string   `json:"access_key,omitempty"`
	SecretKey  string   `json:"secret_key,omitempty"`
	Prefix     string   `json:"prefix,omitempty"`      // Key prefix for uploads
	PresignTTL Duration `json:"presign_ttl,omitempty"` // Lifetime of returned URLs
}

// Duration is a time.Duration written as a Go duration string ("1h", "90s").
type Duration time.Duration

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("duration must be a string like \"1h\": %w", err)
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Port:          8080,
		MaxInputBytes: 5 << 20,
		MaxLines:      5000,
		Workers:       4,
		HistorySize:   5,
		Storage: StorageConfig{
			Backend:    BackendMemory,
			Region:     "us-east-1",
			Prefix:     "resumes/",
			PresignTTL: Duration(time.Hour),
		},
	}
}

// Load reads the optional config file at path, fills defaults, applies
// environment overrides and validates the result.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	merged := cfg.MergeWithDefaults(Defaults())
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return &merged, nil
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// ApplyEnv overrides fields from the environment. Setting SPACES_BUCKET
// without STORAGE_BACKEND selects the s3 backend.
func (c *Config) ApplyEnv() error {
	if err := envInt("PORT", &c.Port); err != nil {
		return err
	}
	if err := envInt("MAX_INPUT_BYTES", &c.MaxInputBytes); err != nil {
		return err
	}
	if err := envBool("LOG_JSON", &c.LogJSON); err != nil {
		return err
	}
	if err := envBool("DEBUG", &c.Debug); err != nil {
		return err
	}

	envString("STORAGE_BACKEND", &c.Storage.Backend)
	envString("SPACES_ENDPOINT", &c.Storage.Endpoint)
	envString("SPACES_KEY", &c.Storage.AccessKey)
	envString("SPACES_SECRET", &c.Storage.SecretKey)
	envString("SPACES_REGION", &c.Storage.Region)
	envString("SPACES_BUCKET", &c.Storage.Bucket)

	if c.Storage.Backend == "" && c.Storage.Bucket != "" {
		c.Storage.Backend = BackendS3
	}
	return nil
}

func envString(key string, dst *string) {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		*dst = strings.TrimSpace(v)
	}
}

func envInt(key string, dst *int) error {
	v, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(v) == "" {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return fmt.Errorf("config error: %s must be an integer: %w", key, err)
	}
	*dst = n
	return nil
}

func envBool(key string, dst *bool) error {
	v, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(v) == "" {
		return nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return fmt.Errorf("config error: %s must be a boolean: %w", key, err)
	}
	*dst = b
	return nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	// Validate numeric ranges
	if c.MaxInputBytes < 0 {
		return fmt.Errorf("config error: 'max_input_bytes' must be non-negative")
	}
	if c.MaxLines < 0 {
		return fmt.Errorf("config error: 'max_lines' must be non-negative")
	}
	if c.Workers < 0 {
		return fmt.Errorf("config error: 'workers' must be non-negative")
	}
	if c.HistorySize < 0 {
		return fmt.Errorf("config error: 'history_size' must be non-negative")
	}
	if c.Storage.PresignTTL < 0 {
		return fmt.Errorf("config error: 'storage.presign_ttl' must be non-negative")
	}

	switch c.Storage.Backend {
	case "", BackendMemory:
	case BackendS3:
		if c.Storage.Bucket == "" {
			return fmt.Errorf("config error: 'storage.bucket' is required for the s3 backend")
		}
	default:
		return fmt.Errorf("config error: unknown storage backend %q", c.Storage.Backend)
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// Int fields: use default if zero
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.MaxInputBytes == 0 {
		result.MaxInputBytes = defaults.MaxInputBytes
	}
	if result.MaxLines == 0 {
		result.MaxLines = defaults.MaxLines
	}
	if result.Workers == 0 {
		result.Workers = defaults.Workers
	}
	if result.HistorySize == 0 {
		result.HistorySize = defaults.HistorySize
	}

	// String fields: use default if empty
	s, d := &result.Storage, defaults.Storage
	if s.Backend == "" {
		s.Backend = d.Backend
	}
	if s.Bucket == "" {
		s.Bucket = d.Bucket
	}
	if s.Region == "" {
		s.Region = d.Region
	}
	if s.Endpoint == "" {
		s.Endpoint = d.Endpoint
	}
	if s.Prefix == "" {
		s.Prefix = d.Prefix
	}
	if s.PresignTTL == 0 {
		s.PresignTTL = d.PresignTTL
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
