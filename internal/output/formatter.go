// Package output formats benchmark snapshots for terminal display.
package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/modebench/modebench/internal/metrics"
)

// Formatter renders metrics reports for the terminal.
type Formatter struct {
	scheme *ColorScheme
}

// NewFormatter creates a formatter. Color is disabled when noColor is set
// or when stdout is not a terminal.
func NewFormatter(noColor bool) *Formatter {
	if noColor || !isatty.IsTerminal(os.Stdout.Fd()) {
		return &Formatter{scheme: NoColorScheme()}
	}
	return &Formatter{scheme: DefaultColorScheme()}
}

// FormatReport renders a snapshot for display.
func (f *Formatter) FormatReport(rep metrics.Report) string {
	var sb strings.Builder

	writeLine := func(label string, value string, c interface{ Sprint(...interface{}) string }) {
		sb.WriteString(fmt.Sprintf("%s %s\n", f.scheme.Label.Sprintf("%-20s", label), c.Sprint(value)))
	}

	writeLine("Total requests:", fmt.Sprintf("%d", rep.Total), f.scheme.Value)
	writeLine("Successful (OK):", fmt.Sprintf("%d", rep.Success), f.scheme.Value)
	writeLine("In-flight (running):", fmt.Sprintf("%d", rep.Inflight), f.scheme.Value)
	writeLine("Throughput (RPS):", fmt.Sprintf("%.1f", rep.RPS), f.scheme.Throughput)
	writeLine("p50 (median):", fmt.Sprintf("%.1f ms", metrics.Millis(rep.P50)), f.scheme.Latency)
	writeLine("p95 (slow 5%):", fmt.Sprintf("%.1f ms", metrics.Millis(rep.P95)), f.scheme.Latency)
	writeLine("p99 (slow 1%):", fmt.Sprintf("%.1f ms", metrics.Millis(rep.P99)), f.scheme.Latency)

	return sb.String()
}
