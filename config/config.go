// Package config loads the run configuration for the zigzag driver.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/zigzag/matrix"
	"github.com/katalvlaran/zigzag/zigzag"
)

// ErrInvalidConfig is returned when a loaded file fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds everything one driver run needs.
type Config struct {
	// Matrix rows; must be square. Empty means the built-in 3×3 sample.
	Matrix [][]int `yaml:"matrix"`

	// Order is "classic" (default) or "legacy".
	Order string `yaml:"order"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures the driver logger.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Matrix:  matrix.Sample().Rows(),
		Order:   zigzag.Classic.String(),
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads YAML from path on top of DefaultConfig and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML bytes on top of DefaultConfig and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	cfg.Matrix = nil // a file without a matrix falls back to the sample in Grid
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks order, log level and matrix shape.
func (c *Config) Validate() error {
	if _, err := c.Mode(); err != nil {
		return fmt.Errorf("%w: order: %v", ErrInvalidConfig, err)
	}
	switch strings.ToLower(c.Logging.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: logging.level %q", ErrInvalidConfig, c.Logging.Level)
	}
	if len(c.Matrix) > 0 {
		if err := matrix.ValidateRows(c.Matrix); err != nil {
			return fmt.Errorf("%w: matrix: %v", ErrInvalidConfig, err)
		}
	}

	return nil
}

// Mode parses Order.
func (c *Config) Mode() (zigzag.Mode, error) {
	return zigzag.ParseMode(strings.ToLower(c.Order))
}

// Grid builds the configured grid, or the sample when no rows were given.
func (c *Config) Grid() (*matrix.Square, error) {
	if len(c.Matrix) == 0 {
		return matrix.Sample(), nil
	}

	return matrix.FromRows(c.Matrix)
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
