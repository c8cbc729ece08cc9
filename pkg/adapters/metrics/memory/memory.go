package memory

import (
	"sync"
	"time"
)

// Collector implements MetricsCollector using in-memory counters
// This is for testing purposes only
type Collector struct {
	mu            sync.Mutex
	queries       map[[2]string]int
	tokenRequests map[[2]string]int
	latencies     map[string][]time.Duration
	inflight      int
}

// NewCollector creates a new in-memory metrics collector
func NewCollector() *Collector {
	return &Collector{
		queries:       make(map[[2]string]int),
		tokenRequests: make(map[[2]string]int),
		latencies:     make(map[string][]time.Duration),
	}
}

// RecordQuery increments the count of dispatched queries
func (c *Collector) RecordQuery(route, status string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.queries[[2]string{route, status}]++
}

// RecordTokenRequest increments the count of token acquisitions
func (c *Collector) RecordTokenRequest(provider, status string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tokenRequests[[2]string{provider, status}]++
}

// ObserveBackendLatency records the duration of a backend call
func (c *Collector) ObserveBackendLatency(route string, duration time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.latencies[route] = append(c.latencies[route], duration)
}

// IncInflight increments the inflight request count
func (c *Collector) IncInflight() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inflight++
}

// DecInflight decrements the inflight request count
func (c *Collector) DecInflight() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inflight--
}

// Queries returns the recorded query count for a route and status
func (c *Collector) Queries(route, status string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.queries[[2]string{route, status}]
}

// TokenRequests returns the recorded token acquisition count
func (c *Collector) TokenRequests(provider, status string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tokenRequests[[2]string{provider, status}]
}

// Latencies returns the recorded backend latencies for a route
func (c *Collector) Latencies(route string) []time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]time.Duration(nil), c.latencies[route]...)
}

// Inflight returns the current inflight request count
func (c *Collector) Inflight() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inflight
}
