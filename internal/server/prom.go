package server

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/modebench/modebench/internal/metrics"
)

// promBridge exposes collector snapshots as Prometheus metrics without
// duplicating any counter state: every scrape takes a fresh snapshot.
type promBridge struct {
	collector *metrics.Collector

	total    *prometheus.Desc
	success  *prometheus.Desc
	inflight *prometheus.Desc
	rps      *prometheus.Desc
	latency  *prometheus.Desc
}

func newPromBridge(collector *metrics.Collector) *promBridge {
	return &promBridge{
		collector: collector,
		total: prometheus.NewDesc(
			"modebench_requests_total",
			"Completed invocations since the last reset.",
			nil, nil),
		success: prometheus.NewDesc(
			"modebench_requests_success_total",
			"Invocations that completed without failure since the last reset.",
			nil, nil),
		inflight: prometheus.NewDesc(
			"modebench_requests_inflight",
			"Invocations currently in progress.",
			nil, nil),
		rps: prometheus.NewDesc(
			"modebench_throughput_rps",
			"Windowed requests/second estimate.",
			nil, nil),
		latency: prometheus.NewDesc(
			"modebench_latency_seconds",
			"Latency percentile estimate over the most recent samples.",
			[]string{"quantile"}, nil),
	}
}

func (b *promBridge) Describe(ch chan<- *prometheus.Desc) {
	ch <- b.total
	ch <- b.success
	ch <- b.inflight
	ch <- b.rps
	ch <- b.latency
}

func (b *promBridge) Collect(ch chan<- prometheus.Metric) {
	rep := b.collector.Snapshot()

	ch <- prometheus.MustNewConstMetric(b.total, prometheus.CounterValue, float64(rep.Total))
	ch <- prometheus.MustNewConstMetric(b.success, prometheus.CounterValue, float64(rep.Success))
	ch <- prometheus.MustNewConstMetric(b.inflight, prometheus.GaugeValue, float64(rep.Inflight))
	ch <- prometheus.MustNewConstMetric(b.rps, prometheus.GaugeValue, rep.RPS)
	ch <- prometheus.MustNewConstMetric(b.latency, prometheus.GaugeValue, rep.P50.Seconds(), "0.5")
	ch <- prometheus.MustNewConstMetric(b.latency, prometheus.GaugeValue, rep.P95.Seconds(), "0.95")
	ch <- prometheus.MustNewConstMetric(b.latency, prometheus.GaugeValue, rep.P99.Seconds(), "0.99")
}

var _ prometheus.Collector = (*promBridge)(nil)
