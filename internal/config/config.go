package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all hexgrid configuration
type Config struct {
	Layout LayoutConfig `yaml:"layout"`
	Log    LogConfig    `yaml:"log"`
}

// LayoutConfig places the unit hex lattice on a pixel canvas
type LayoutConfig struct {
	Size    float64 `yaml:"size"` // pixels per unit of lattice distance; 0 selects the default of 32
	OriginX float64 `yaml:"origin_x"`
	OriginY float64 `yaml:"origin_y"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "text" or "json"
}

// Default returns the configuration used when no file is given
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML configuration and fills in defaults
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports settings that cannot be used
func (c *Config) Validate() error {
	if c.Layout.Size < 0 {
		return fmt.Errorf("layout size must not be negative, got %g", c.Layout.Size)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.Log.Format)
	}
	return nil
}

// applyDefaults fills fields left empty
func (c *Config) applyDefaults() {
	if c.Layout.Size == 0 {
		c.Layout.Size = 32
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}
