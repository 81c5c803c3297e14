// Package workload provides the stand-in blocking operations the benchmark
// drives through the execution strategies.
package workload

import (
	"fmt"
	"time"

	"github.com/zoobzio/clockz"

	"github.com/modebench/modebench/internal/strategy"
)

// Sleep returns a unit of work that blocks for d and reports which mode ran
// it. It simulates a blocking downstream call such as a slow database query.
func Sleep(d time.Duration, clock clockz.Clock, mode strategy.Mode) strategy.Work {
	return func() (string, error) {
		<-clock.After(d)
		return fmt.Sprintf("slept-%s %d ms", mode, d.Milliseconds()), nil
	}
}
