// Package metrics provides metrics collector implementations.
//
// Implementations:
//   - prometheus: Prometheus counters and histograms, served on /metrics
//   - memory: in-memory counters for testing
package metrics
