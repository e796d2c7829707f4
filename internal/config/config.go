// Package config handles resolving configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Output formats for encoded credentials.
const (
	OutputHeader = "header"
	OutputRaw    = "raw"
)

// Config is the CLI configuration.
type Config struct {
	// LogLevel is one of debug, info, warn or error.
	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn error"`
	// DevMode adds source locations to log records.
	DevMode bool `yaml:"dev_mode"`
	// Output selects what encode prints: the full header value or the bare
	// base64 payload.
	Output string `yaml:"output" validate:"oneof=header raw"`
	// Concurrency bounds the number of values decoded at once.
	Concurrency int `yaml:"concurrency" validate:"min=1,max=64"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Default returns a version of the config with all default values populated.
func Default() *Config {
	return &Config{
		LogLevel:    "info",
		DevMode:     false,
		Output:      OutputHeader,
		Concurrency: 4, //nolint:mnd // small fan-out for CLI batches
	}
}

// DefaultPath is the config file location under the XDG config home.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "basicauth.yaml")
}

// Load loads a YAML configuration file from a path, merges it with defaults, and
// validates it for completeness.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // allow the config file to be loaded from anywhere
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err = dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to unmarshal config file at %s: %w", path, err)
	}
	if err = Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks cfg against its field constraints.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}
