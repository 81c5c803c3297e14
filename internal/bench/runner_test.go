package bench

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/modebench/modebench/internal/metrics"
	"github.com/modebench/modebench/internal/strategy"
)

func newTestRunner(t *testing.T, initial strategy.Mode, poolWorkers int) (*Runner, *metrics.Collector) {
	t.Helper()

	pool, err := strategy.NewWorkerPool(strategy.ModePool, poolWorkers)
	if err != nil {
		t.Fatalf("NewWorkerPool() error = %v", err)
	}
	registry, err := strategy.NewRegistry(initial, strategy.NewPerTask(), pool)
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}
	t.Cleanup(registry.Stop)

	collector, err := metrics.NewWithConfig(metrics.Config{RingSize: 64, RateWindow: time.Second})
	if err != nil {
		t.Fatalf("NewWithConfig() error = %v", err)
	}

	return NewRunner(registry, collector), collector
}

func TestRunner_Timed_Success(t *testing.T) {
	r, c := newTestRunner(t, strategy.ModeGoroutine, 2)

	got, err := r.Timed(func() (string, error) {
		time.Sleep(time.Millisecond)
		return "ok", nil
	})
	if err != nil {
		t.Fatalf("Timed() error = %v", err)
	}
	if got != "ok" {
		t.Errorf("Timed() = %q, want %q", got, "ok")
	}

	rep := c.Snapshot()
	if rep.Total != 1 || rep.Success != 1 {
		t.Errorf("Total/Success = %d/%d, want 1/1", rep.Total, rep.Success)
	}
	if rep.P99 < time.Millisecond {
		t.Errorf("p99 = %v, want >= 1ms (the work slept)", rep.P99)
	}
}

// TestRunner_Timed_Failure verifies bookkeeping runs on failure too and the
// failure reaches the caller unchanged.
func TestRunner_Timed_Failure(t *testing.T) {
	r, c := newTestRunner(t, strategy.ModeGoroutine, 2)

	sentinel := errors.New("work failed")
	_, err := r.Timed(func() (string, error) {
		return "", sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("Timed() error = %v, want sentinel", err)
	}

	rep := c.Snapshot()
	if rep.Total != 1 {
		t.Errorf("Total = %d, want 1 (failures still count)", rep.Total)
	}
	if rep.Success != 0 {
		t.Errorf("Success = %d, want 0", rep.Success)
	}
	if rep.Inflight != 0 {
		t.Errorf("Inflight = %d, want 0", rep.Inflight)
	}
}

// TestRunner_PoolBoundsInflight drives many more concurrent invocations
// than the pool has workers. Inflight counts executing work, so it must
// plateau at the worker count while the rest queue.
func TestRunner_PoolBoundsInflight(t *testing.T) {
	const (
		workers = 4
		callers = 40
	)
	r, c := newTestRunner(t, strategy.ModePool, workers)

	gate := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := r.Timed(func() (string, error) {
				<-gate
				return "ok", nil
			}); err != nil {
				t.Errorf("Timed() error = %v", err)
			}
		}()
	}

	// Wait for the workers to saturate.
	deadline := time.Now().Add(2 * time.Second)
	for c.Inflight() < workers {
		if time.Now().After(deadline) {
			t.Fatalf("inflight = %d, workers never saturated", c.Inflight())
		}
		time.Sleep(time.Millisecond)
	}

	// While the queue is full, inflight must stay pinned at the worker
	// count.
	for i := 0; i < 50; i++ {
		if got := c.Inflight(); got > workers {
			t.Fatalf("inflight = %d, want <= %d", got, workers)
		}
		time.Sleep(time.Millisecond)
	}

	close(gate)
	wg.Wait()

	rep := c.Snapshot()
	if rep.Total != callers {
		t.Errorf("Total = %d, want %d", rep.Total, callers)
	}
	if rep.Inflight != 0 {
		t.Errorf("Inflight = %d after completion, want 0", rep.Inflight)
	}
}

// TestRunner_PerTaskInflightReachesAllCallers is the unbounded counterpart:
// every concurrent invocation executes immediately, so inflight climbs to
// the full caller count.
func TestRunner_PerTaskInflightReachesAllCallers(t *testing.T) {
	const callers = 50
	r, c := newTestRunner(t, strategy.ModeGoroutine, 2)

	gate := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := r.Timed(func() (string, error) {
				<-gate
				return "ok", nil
			}); err != nil {
				t.Errorf("Timed() error = %v", err)
			}
		}()
	}

	deadline := time.Now().Add(2 * time.Second)
	for c.Inflight() < callers {
		if time.Now().After(deadline) {
			t.Fatalf("inflight = %d, want %d", c.Inflight(), callers)
		}
		time.Sleep(time.Millisecond)
	}

	close(gate)
	wg.Wait()

	if got := c.Inflight(); got != 0 {
		t.Errorf("Inflight = %d after completion, want 0", got)
	}
	if got := c.Total(); got != callers {
		t.Errorf("Total = %d, want %d", got, callers)
	}
}

// TestRunner_LatencyIncludesQueueWait pins two invocations behind a single
// worker; the second one's recorded latency must include the time it spent
// queued.
func TestRunner_LatencyIncludesQueueWait(t *testing.T) {
	r, c := newTestRunner(t, strategy.ModePool, 1)

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := r.Timed(func() (string, error) {
				time.Sleep(25 * time.Millisecond)
				return "ok", nil
			}); err != nil {
				t.Errorf("Timed() error = %v", err)
			}
		}()
	}
	wg.Wait()

	// The second invocation waited ~25ms in the queue plus its own 25ms
	// of work; p99 of a 64-slot ring is its maximum sample.
	if rep := c.Snapshot(); rep.P99 < 40*time.Millisecond {
		t.Errorf("p99 = %v, want >= 40ms (queue wait included)", rep.P99)
	}
}
