// Package config loads xlsbinspect settings from defaults, an optional YAML
// file and XLSBINSPECT_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// EnvPrefix is the prefix of every environment variable read by Load.
const EnvPrefix = "XLSBINSPECT"

// DefaultFile is read when no config path is given and the file exists.
const DefaultFile = "xlsbinspect.yaml"

// Config represents the complete application configuration
type Config struct {
	Dir        string        `yaml:"dir" envconfig:"DIR"`
	Extension  string        `yaml:"extension" envconfig:"EXTENSION"`
	Output     string        `yaml:"output" envconfig:"OUTPUT"`
	SampleRows int           `yaml:"sample_rows" envconfig:"SAMPLE_ROWS"`
	Backends   []string      `yaml:"backends" envconfig:"BACKENDS"`
	Format     string        `yaml:"format" envconfig:"FORMAT"`
	Logging    LoggingConfig `yaml:"logging" envconfig:"LOG"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level" envconfig:"LEVEL"`
	Format string `yaml:"format" envconfig:"FORMAT"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Dir:        ".",
		Extension:  ".xlsb",
		SampleRows: 3,
		Backends:   []string{"tabular", "grid"},
		Format:     "json",
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load builds the configuration. path names a YAML file; when empty,
// DefaultFile is used if present. Environment variables override the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	if err := loadFromFile(path, &cfg); err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	return &cfg, nil
}

// loadFromFile overlays the YAML file at path onto cfg.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// Validate checks and normalizes the configuration.
func (c *Config) Validate() error {
	if c.Dir == "" {
		return errors.New("dir must not be empty")
	}
	if c.SampleRows <= 0 {
		return fmt.Errorf("sample_rows must be positive, got %d", c.SampleRows)
	}

	c.Extension = strings.TrimSpace(c.Extension)
	if c.Extension == "" {
		return errors.New("extension must not be empty")
	}
	if !strings.HasPrefix(c.Extension, ".") {
		c.Extension = "." + c.Extension
	}

	c.Format = strings.ToLower(c.Format)
	switch c.Format {
	case "json", "toon":
	default:
		return fmt.Errorf("invalid format: %s (must be json or toon)", c.Format)
	}

	c.Logging.Format = strings.ToLower(c.Logging.Format)
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format: %s (must be text or json)", c.Logging.Format)
	}

	return nil
}

// OutputPath returns the configured output file, defaulting to
// xlsb_analysis.json inside Dir.
func (c *Config) OutputPath() string {
	if c.Output != "" {
		return c.Output
	}
	return filepath.Join(c.Dir, "xlsb_analysis.json")
}
