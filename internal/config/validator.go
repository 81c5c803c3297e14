package config

import (
	"fmt"
	"strings"

	"github.com/modebench/modebench/internal/strategy"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors struct {
	Errors []*ValidationError
}

func (e *ValidationErrors) Error() string {
	if len(e.Errors) == 0 {
		return "no validation errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e.Errors)))
	for i, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// Add adds an error to the collection.
func (e *ValidationErrors) Add(field, message string) {
	e.Errors = append(e.Errors, &ValidationError{Field: field, Message: message})
}

// HasErrors returns true if there are any errors.
func (e *ValidationErrors) HasErrors() bool {
	return len(e.Errors) > 0
}

// Validate validates the entire configuration.
//
// Returns nil if valid, or a ValidationErrors containing all validation
// errors.
func (c *Config) Validate() error {
	errs := &ValidationErrors{}

	if c.Listen == "" {
		errs.Add("listen", "listen address is required")
	}
	if c.Sleep <= 0 {
		errs.Add("sleep", "sleep duration must be > 0")
	}
	if !strategy.IsValidMode(c.DefaultMode) {
		errs.Add("defaultMode", fmt.Sprintf("unknown mode: %s", c.DefaultMode))
	}
	if c.Pool.Workers <= 0 {
		errs.Add("pool.workers", "workers must be > 0")
	}
	if c.SmallPool.Workers <= 0 {
		errs.Add("smallPool.workers", "workers must be > 0")
	}
	if c.Metrics.RingSize <= 0 || c.Metrics.RingSize&(c.Metrics.RingSize-1) != 0 {
		errs.Add("metrics.ringSize", fmt.Sprintf("ring size must be a power of two, got %d", c.Metrics.RingSize))
	}
	if c.Metrics.RateWindow <= 0 {
		errs.Add("metrics.rateWindow", "rate window must be > 0")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}
