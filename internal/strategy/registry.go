package strategy

import (
	"fmt"
	"sync/atomic"
)

// Registry is the process-wide selector of the active execution strategy.
//
// The strategy set is fixed at construction; only the active tag changes.
// Reads are a single atomic load, so every invocation can consult the
// registry without locking. A reader may briefly observe a stale mode after
// a switch, which is acceptable for an operator-driven control.
type Registry struct {
	active     atomic.Value // Mode
	strategies map[Mode]Strategy
}

// NewRegistry creates a registry over the given strategies with the given
// initial mode.
func NewRegistry(initial Mode, strategies ...Strategy) (*Registry, error) {
	if len(strategies) == 0 {
		return nil, fmt.Errorf("at least one strategy is required")
	}

	byMode := make(map[Mode]Strategy, len(strategies))
	for _, s := range strategies {
		if _, dup := byMode[s.Mode()]; dup {
			return nil, fmt.Errorf("duplicate strategy for mode %q", s.Mode())
		}
		byMode[s.Mode()] = s
	}

	if _, ok := byMode[initial]; !ok {
		return nil, fmt.Errorf("%w: initial mode %q has no strategy", ErrUnknownMode, initial)
	}

	r := &Registry{strategies: byMode}
	r.active.Store(initial)
	return r, nil
}

// Set switches the active strategy by name. Unknown names are rejected and
// the current mode is left unchanged.
func (r *Registry) Set(name string) (Mode, error) {
	mode, err := ParseMode(name)
	if err != nil {
		return "", err
	}
	if _, ok := r.strategies[mode]; !ok {
		return "", fmt.Errorf("%w: %q is not registered", ErrUnknownMode, name)
	}
	r.active.Store(mode)
	return mode, nil
}

// Active returns the current mode tag.
func (r *Registry) Active() Mode {
	return r.active.Load().(Mode)
}

// Get returns the active strategy.
func (r *Registry) Get() Strategy {
	return r.strategies[r.Active()]
}

// Stop stops every registered strategy that holds long-lived resources.
func (r *Registry) Stop() {
	for _, s := range r.strategies {
		if stopper, ok := s.(interface{ Stop() }); ok {
			stopper.Stop()
		}
	}
}
