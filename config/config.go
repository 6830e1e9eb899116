// Package config loads cityroute settings from YAML.
//
// A configuration carries the log settings and the network seeded into
// the planner at start-up. Default returns the embedded demonstration
// network; Load reads a file and validates it with the same naming rules
// the planner enforces.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cityroute/names"
	"github.com/katalvlaran/cityroute/planner"
)

// ErrInvalidConfig indicates a configuration that failed to parse or validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

//go:embed default.yaml
var defaultYAML []byte

// Config is the top-level configuration document.
type Config struct {
	Log  LogConfig    `yaml:"log"`
	Seed planner.Seed `yaml:"seed"`
}

// LogConfig selects the log level and format.
type LogConfig struct {
	Level string `yaml:"level" validate:"omitempty,oneof=debug info warn warning error DEBUG INFO WARN WARNING ERROR"`
	JSON  bool   `yaml:"json"`
}

// Default returns the embedded configuration: info-level text logs and
// the ten-city demonstration network.
func Default() *Config {
	cfg, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("config: embedded default is invalid: %v", err))
	}

	return cfg
}

// Load reads and validates the YAML file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read the config file %q: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes and validates a YAML document. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks field rules, including the cityname rule on every seed
// location and road endpoint.
func (c *Config) Validate() error {
	if err := names.Validator().Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}
