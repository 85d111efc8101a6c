package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/firefly-engineering/firefly-forage/packages/edawatch/internal/runtime"
)

const (
	DefaultConfigPath  = "/etc/edawatch/config.yaml"
	DefaultPrefix      = "ansible"
	DefaultHours       = 24.0
	DefaultRuntime     = string(runtime.RuntimeAuto)
	DefaultConcurrency = 1
)

// Environment variables that override file settings.
const (
	EnvPrefix  = "EDAWATCH_PREFIX"
	EnvHours   = "EDAWATCH_HOURS"
	EnvRuntime = "EDAWATCH_RUNTIME"
)

// JobsConfig holds settings for the job health monitor.
type JobsConfig struct {
	Prefix            string        `yaml:"prefix"`
	Hours             float64       `yaml:"hours"`
	Runtime           string        `yaml:"runtime"`
	Host              string        `yaml:"host"`
	Pretty            bool          `yaml:"pretty"`
	Concurrency       int           `yaml:"concurrency"`
	Timeout           time.Duration `yaml:"timeout"`
	MinAnsibleVersion string        `yaml:"min_ansible_version"`
}

// Default returns the built-in job monitor settings.
func Default() *JobsConfig {
	return &JobsConfig{
		Prefix:      DefaultPrefix,
		Hours:       DefaultHours,
		Runtime:     DefaultRuntime,
		Concurrency: DefaultConcurrency,
	}
}

// Load reads a YAML config file on top of the defaults. A missing file is
// only an error when explicit is true; otherwise defaults are returned.
func Load(path string, explicit bool) (*JobsConfig, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) && !explicit {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := Parse(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes YAML into cfg, rejecting unknown keys. Empty input leaves
// cfg unchanged.
func Parse(data []byte, cfg *JobsConfig) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// ApplyEnv overlays EDAWATCH_* variables. Empty values are ignored.
func (c *JobsConfig) ApplyEnv(getenv func(string) string) error {
	if v := getenv(EnvPrefix); v != "" {
		c.Prefix = v
	}
	if v := getenv(EnvRuntime); v != "" {
		c.Runtime = v
	}
	if v := getenv(EnvHours); v != "" {
		hours, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvHours, v, err)
		}
		c.Hours = hours
	}
	return nil
}

// Validate checks that settings are usable.
func (c *JobsConfig) Validate() error {
	if _, err := runtime.ParseType(c.Runtime); err != nil {
		return err
	}

	if math.IsNaN(c.Hours) || math.IsInf(c.Hours, 0) || c.Hours < 0 {
		return fmt.Errorf("hours must be a non-negative number, got %v", c.Hours)
	}

	if c.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1, got %d", c.Concurrency)
	}

	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %s", c.Timeout)
	}

	return nil
}
