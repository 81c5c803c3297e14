// Package metrics implements the shared measurement state for the benchmark
// server: lock-free counters, a fixed-size latency ring, and a windowed
// throughput estimate.
//
// All mutation happens through atomic operations. There is no critical
// section protecting multi-field updates, so snapshots are best-effort
// consistent: a reader may observe counters and ring contents from slightly
// different instants. That trade is deliberate - thousands of concurrent
// recorders must never contend on a lock.
package metrics
