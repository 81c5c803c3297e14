// Package bench wires the execution strategies to the metrics collector:
// every invocation is timed and recorded regardless of outcome.
package bench

import (
	"github.com/zoobzio/clockz"

	"github.com/modebench/modebench/internal/metrics"
	"github.com/modebench/modebench/internal/strategy"
)

// Runner times invocations of the active execution strategy and funnels
// the measurements into the collector.
type Runner struct {
	registry  *strategy.Registry
	collector *metrics.Collector
	clock     clockz.Clock
}

// Option configures a Runner.
type Option func(*Runner)

// WithClock overrides the time source. Default is clockz.RealClock.
func WithClock(clock clockz.Clock) Option {
	return func(r *Runner) {
		r.clock = clock
	}
}

// NewRunner creates a runner over the given registry and collector.
func NewRunner(registry *strategy.Registry, collector *metrics.Collector, opts ...Option) *Runner {
	r := &Runner{
		registry:  registry,
		collector: collector,
		clock:     clockz.RealClock,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Timed runs work through the active strategy and records the measurement.
//
// The clock starts at submission, so the recorded latency includes any time
// the work spends queued behind busy pool workers. Inflight, by contrast,
// is incremented only once the work starts executing: queued work is not
// in flight, so the gauge never exceeds a pool's worker count.
//
// Bookkeeping is deferred so it executes on failure too: inflight and total
// stay accurate and the failure is returned to the caller unchanged.
func (r *Runner) Timed(work strategy.Work) (string, error) {
	start := r.clock.Now()

	instrumented := func() (out string, err error) {
		r.collector.Begin()
		defer func() {
			r.collector.Record(r.clock.Now().Sub(start), err == nil)
		}()
		return work()
	}

	return r.registry.Get().Run(instrumented)
}
