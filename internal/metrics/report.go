package metrics

import (
	"fmt"
	"strings"
	"time"
)

// Report is a point-in-time view of the collector state.
//
// Durations JSON-encode as integer nanoseconds.
type Report struct {
	Total    int64         `json:"totalRequests"`
	Success  int64         `json:"successRequests"`
	Inflight int64         `json:"inflightRequests"`
	RPS      float64       `json:"rps"`
	P50      time.Duration `json:"p50"`
	P95      time.Duration `json:"p95"`
	P99      time.Duration `json:"p99"`
}

// String renders the fixed text report. Field names, order, and spacing are
// stable so external tooling can parse the output.
func (r Report) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Total requests:     %d\n", r.Total)
	fmt.Fprintf(&sb, "Successful (OK):    %d\n", r.Success)
	fmt.Fprintf(&sb, "In-flight (running): %d\n", r.Inflight)
	fmt.Fprintf(&sb, "Throughput (RPS):   %.1f\n", r.RPS)
	fmt.Fprintf(&sb, "p50 (median):     %.1f\n", Millis(r.P50))
	fmt.Fprintf(&sb, "p95 (slow 5%%):    %.1f\n", Millis(r.P95))
	fmt.Fprintf(&sb, "p99 (slow 1%%):    %.1f\n", Millis(r.P99))
	return sb.String()
}

// Millis converts a duration to fractional milliseconds for display.
func Millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
