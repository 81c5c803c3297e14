package strategy

import (
	"errors"
	"testing"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()

	pool, err := NewWorkerPool(ModePool, 2)
	if err != nil {
		t.Fatalf("NewWorkerPool(pool) error = %v", err)
	}
	smallPool, err := NewWorkerPool(ModeSmallPool, 1)
	if err != nil {
		t.Fatalf("NewWorkerPool(smallpool) error = %v", err)
	}

	r, err := NewRegistry(ModePool, NewPerTask(), pool, smallPool)
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}
	t.Cleanup(r.Stop)
	return r
}

func TestRegistry_InitialMode(t *testing.T) {
	r := newTestRegistry(t)

	if got := r.Active(); got != ModePool {
		t.Errorf("Active() = %v, want %v", got, ModePool)
	}
	if got := r.Get().Mode(); got != ModePool {
		t.Errorf("Get().Mode() = %v, want %v", got, ModePool)
	}
}

func TestRegistry_Set(t *testing.T) {
	r := newTestRegistry(t)

	mode, err := r.Set("goroutine")
	if err != nil {
		t.Fatalf("Set(goroutine) error = %v", err)
	}
	if mode != ModeGoroutine {
		t.Errorf("Set(goroutine) = %v, want %v", mode, ModeGoroutine)
	}
	if got := r.Get().Mode(); got != ModeGoroutine {
		t.Errorf("Get().Mode() = %v, want %v", got, ModeGoroutine)
	}
}

// TestRegistry_SetUnknownLeavesModeUnchanged covers the InvalidModeFailure
// contract: a bogus name is rejected and the active mode stays in effect.
func TestRegistry_SetUnknownLeavesModeUnchanged(t *testing.T) {
	r := newTestRegistry(t)

	if _, err := r.Set("bogus"); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("Set(bogus) error = %v, want ErrUnknownMode", err)
	}
	if got := r.Active(); got != ModePool {
		t.Errorf("Active() = %v after rejected switch, want %v", got, ModePool)
	}
}

func TestNewRegistry_Validation(t *testing.T) {
	if _, err := NewRegistry(ModePool); err == nil {
		t.Error("NewRegistry() with no strategies expected error, got nil")
	}

	if _, err := NewRegistry(ModePool, NewPerTask()); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("NewRegistry() with unregistered initial mode error = %v, want ErrUnknownMode", err)
	}

	if _, err := NewRegistry(ModeGoroutine, NewPerTask(), NewPerTask()); err == nil {
		t.Error("NewRegistry() with duplicate modes expected error, got nil")
	}
}
