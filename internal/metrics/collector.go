package metrics

import (
	"fmt"
	"math"
	"slices"
	"sync/atomic"
	"time"

	"github.com/zoobzio/clockz"
)

// Collector owns all shared mutable measurement state.
//
// Counters use atomic adds, the latency ring uses independent per-slot
// atomic stores, and the rate estimate is a single published float64 word.
// Writers never block each other and readers never block writers.
type Collector struct {
	total    atomic.Int64
	success  atomic.Int64
	inflight atomic.Int64

	// Latency ring. The cursor increments forever; the slot index is
	// cursor mod ring size. A sample may be overwritten early when two
	// writers race on the same slot, which is acceptable for an
	// approximation structure.
	cursor atomic.Uint64
	ring   []int64 // nanoseconds
	mask   uint64

	// Windowed throughput estimate. Whichever completion observes that
	// the window elapsed computes the rate and re-anchors; concurrent
	// completions race and the last writer wins.
	rateBits    atomic.Uint64 // math.Float64bits of requests/second
	anchorNanos atomic.Int64
	anchorCount atomic.Int64
	window      time.Duration

	clock clockz.Clock
}

// Config contains configuration for a Collector.
type Config struct {
	// RingSize is the latency ring capacity. Must be a power of two.
	RingSize int

	// RateWindow is the minimum interval between throughput estimate
	// updates.
	RateWindow time.Duration

	// Clock is the time source. Defaults to clockz.RealClock.
	Clock clockz.Clock
}

const (
	// DefaultRingSize holds the most recent 4096 latency samples.
	DefaultRingSize = 4096

	// DefaultRateWindow recomputes the throughput estimate at most once
	// per second.
	DefaultRateWindow = time.Second
)

// DefaultConfig returns the default collector configuration.
func DefaultConfig() Config {
	return Config{
		RingSize:   DefaultRingSize,
		RateWindow: DefaultRateWindow,
	}
}

// New creates a collector with the default configuration.
func New() *Collector {
	c, err := NewWithConfig(DefaultConfig())
	if err != nil {
		// Defaults are always valid.
		panic(err)
	}
	return c
}

// NewWithConfig creates a collector with a custom configuration.
func NewWithConfig(cfg Config) (*Collector, error) {
	if cfg.RingSize <= 0 || cfg.RingSize&(cfg.RingSize-1) != 0 {
		return nil, fmt.Errorf("ring size must be a power of two, got %d", cfg.RingSize)
	}
	if cfg.RateWindow <= 0 {
		cfg.RateWindow = DefaultRateWindow
	}
	if cfg.Clock == nil {
		cfg.Clock = clockz.RealClock
	}

	c := &Collector{
		ring:   make([]int64, cfg.RingSize),
		mask:   uint64(cfg.RingSize - 1),
		window: cfg.RateWindow,
		clock:  cfg.Clock,
	}
	c.anchorNanos.Store(c.clock.Now().UnixNano())
	return c, nil
}

// Begin marks the start of an invocation.
func (c *Collector) Begin() {
	c.inflight.Add(1)
}

// Record marks the completion of an invocation that Begin was called for.
//
// It decrements inflight, bumps the completion counters, writes the latency
// sample into the ring, and opportunistically advances the rate window.
func (c *Collector) Record(d time.Duration, success bool) {
	c.inflight.Add(-1)
	c.total.Add(1)
	if success {
		c.success.Add(1)
	}

	idx := c.cursor.Add(1) - 1
	atomic.StoreInt64(&c.ring[idx&c.mask], int64(d))

	c.maybeAdvanceWindow()
}

// Inflight returns the number of invocations currently in progress.
func (c *Collector) Inflight() int64 {
	return c.inflight.Load()
}

// Total returns the number of completed invocations since the last reset.
func (c *Collector) Total() int64 {
	return c.total.Load()
}

// maybeAdvanceWindow recomputes the throughput estimate if at least one
// rate window has elapsed since the current anchor.
func (c *Collector) maybeAdvanceWindow() {
	now := c.clock.Now().UnixNano()
	anchor := c.anchorNanos.Load()
	elapsed := now - anchor
	if elapsed < int64(c.window) {
		return
	}

	count := c.total.Load()
	delta := count - c.anchorCount.Load()
	rps := float64(delta) / (float64(elapsed) / float64(time.Second))

	// Concurrent completions may all see the elapsed window and publish
	// competing values. Last writer wins; the estimate is advisory.
	c.rateBits.Store(math.Float64bits(rps))
	c.anchorCount.Store(count)
	c.anchorNanos.Store(now)
}

// Snapshot takes a best-effort consistent read of the collector state.
//
// The ring is copied and the copy sorted, so readers never mutate shared
// state and never block writers. A writer mid-update can tear at most one
// slot of the copy.
func (c *Collector) Snapshot() Report {
	sorted := make([]int64, len(c.ring))
	for i := range c.ring {
		sorted[i] = atomic.LoadInt64(&c.ring[i])
	}
	slices.Sort(sorted)

	n := len(sorted)
	return Report{
		Total:    c.total.Load(),
		Success:  c.success.Load(),
		Inflight: c.inflight.Load(),
		RPS:      math.Float64frombits(c.rateBits.Load()),
		P50:      time.Duration(sorted[percentileIndex(n, 50)]),
		P95:      time.Duration(sorted[percentileIndex(n, 95)]),
		P99:      time.Duration(sorted[percentileIndex(n, 99)]),
	}
}

// Reset clears all state in place. Concurrent writers are not blocked; a
// racing writer may lose at most one sample, either wiped by the zeroing
// pass or written into the freshly cleared ring.
func (c *Collector) Reset() {
	c.total.Store(0)
	c.success.Store(0)
	c.inflight.Store(0)

	for i := range c.ring {
		atomic.StoreInt64(&c.ring[i], 0)
	}
	c.cursor.Store(0)

	c.rateBits.Store(0)
	c.anchorCount.Store(0)
	c.anchorNanos.Store(c.clock.Now().UnixNano())
}

// percentileIndex maps a percentile to a sorted-ring index, clamped to the
// valid range.
func percentileIndex(n, pct int) int {
	idx := n * pct / 100
	if idx < 0 {
		return 0
	}
	if idx > n-1 {
		return n - 1
	}
	return idx
}
