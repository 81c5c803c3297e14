// Package strategy provides the execution strategies the benchmark compares
// and the process-wide registry that selects the active one.
package strategy

import (
	"errors"
	"fmt"
	"strings"
)

// Mode identifies an execution strategy.
type Mode string

const (
	// ModeGoroutine runs each unit of work on its own goroutine, with no
	// queuing and no concurrency ceiling.
	ModeGoroutine Mode = "goroutine"

	// ModePool submits work to the large fixed-size worker pool.
	ModePool Mode = "pool"

	// ModeSmallPool submits work to the small fixed-size worker pool.
	ModeSmallPool Mode = "smallpool"
)

// Default pool sizes, chosen to make queuing behavior visible under load.
const (
	DefaultPoolWorkers      = 50
	DefaultSmallPoolWorkers = 16
)

// ErrUnknownMode is returned when a mode name does not match any strategy.
var ErrUnknownMode = errors.New("unknown mode")

// Work is a blocking unit of work. It returns an outcome string or a
// failure; the benchmark treats it opaquely.
type Work func() (string, error)

// Strategy runs a blocking unit of work according to one concurrency
// policy. The caller blocks until the work completes; the work's failure
// propagates unchanged.
type Strategy interface {
	// Mode returns the mode tag this strategy is registered under.
	Mode() Mode

	// Run executes work and returns its result or failure.
	Run(work Work) (string, error)
}

// outcome carries a work result across goroutines.
type outcome struct {
	value string
	err   error
}

// ParseMode parses a mode name case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(s)) {
	case ModeGoroutine:
		return ModeGoroutine, nil
	case ModePool:
		return ModePool, nil
	case ModeSmallPool:
		return ModeSmallPool, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// IsValidMode returns true if the name parses as a known mode.
func IsValidMode(s string) bool {
	_, err := ParseMode(s)
	return err == nil
}

// SupportedModes returns all known modes.
func SupportedModes() []Mode {
	return []Mode{ModeGoroutine, ModePool, ModeSmallPool}
}
