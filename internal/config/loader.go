package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults mirror the configuration of the workload this benchmark was
// built to study: a 400ms blocking call behind pools of 50 and 16 workers.
const (
	DefaultListen           = ":8080"
	DefaultSleep            = 400 * time.Millisecond
	DefaultMode             = "pool"
	DefaultPoolWorkers      = 50
	DefaultSmallPoolWorkers = 16
	DefaultRingSize         = 4096
	DefaultRateWindow       = time.Second
)

// Default returns a configuration with all defaults applied.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// LoadConfig loads a configuration from a YAML file and applies defaults
// for any unset field.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig parses YAML configuration data and applies defaults.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}
	ApplyDefaults(&cfg)
	return &cfg, nil
}

// ApplyDefaults fills unset fields with default values.
func ApplyDefaults(cfg *Config) {
	if cfg.Listen == "" {
		cfg.Listen = DefaultListen
	}
	if cfg.Sleep == 0 {
		cfg.Sleep = Duration(DefaultSleep)
	}
	if cfg.DefaultMode == "" {
		cfg.DefaultMode = DefaultMode
	}
	if cfg.Pool.Workers == 0 {
		cfg.Pool.Workers = DefaultPoolWorkers
	}
	if cfg.SmallPool.Workers == 0 {
		cfg.SmallPool.Workers = DefaultSmallPoolWorkers
	}
	if cfg.Metrics.RingSize == 0 {
		cfg.Metrics.RingSize = DefaultRingSize
	}
	if cfg.Metrics.RateWindow == 0 {
		cfg.Metrics.RateWindow = Duration(DefaultRateWindow)
	}
}
