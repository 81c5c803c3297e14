// Package config provides configuration parsing and validation for the
// benchmark server.
package config

import (
	"time"
)

// Config is the root configuration.
//
// Example YAML:
//
//	listen: ":8080"
//	sleep: 400ms
//	defaultMode: pool
//	pool:
//	  workers: 50
//	smallPool:
//	  workers: 16
//	metrics:
//	  ringSize: 4096
//	  rateWindow: 1s
type Config struct {
	// Listen is the HTTP listen address.
	Listen string `json:"listen,omitempty" yaml:"listen,omitempty"`

	// Sleep is how long the simulated blocking operation takes.
	Sleep Duration `json:"sleep,omitempty" yaml:"sleep,omitempty"`

	// DefaultMode is the execution mode active at startup.
	DefaultMode string `json:"defaultMode,omitempty" yaml:"defaultMode,omitempty"`

	// Pool configures the large fixed-size worker pool.
	Pool PoolConfig `json:"pool,omitempty" yaml:"pool,omitempty"`

	// SmallPool configures the small fixed-size worker pool.
	SmallPool PoolConfig `json:"smallPool,omitempty" yaml:"smallPool,omitempty"`

	// Metrics configures the collector.
	Metrics MetricsConfig `json:"metrics,omitempty" yaml:"metrics,omitempty"`
}

// PoolConfig configures one worker pool.
type PoolConfig struct {
	// Workers is the fixed worker count.
	Workers int `json:"workers,omitempty" yaml:"workers,omitempty"`
}

// MetricsConfig configures the metrics collector.
type MetricsConfig struct {
	// RingSize is the latency ring capacity. Must be a power of two.
	RingSize int `json:"ringSize,omitempty" yaml:"ringSize,omitempty"`

	// RateWindow is the throughput estimation window.
	RateWindow Duration `json:"rateWindow,omitempty" yaml:"rateWindow,omitempty"`
}

// Duration is a time.Duration that marshals as a Go duration string.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}

	if s == "" {
		*d = 0
		return nil
	}

	dur, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(dur)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// String returns the duration as a string.
func (d Duration) String() string {
	return time.Duration(d).String()
}
