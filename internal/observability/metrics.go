package observability

import (
	"strconv"
	"sync"
	"time"
)

// Metrics keeps in-memory traffic counters for the storefront. Per-route
// stats are keyed by path, method, and status so catalog browsing, checkout,
// and auth traffic can be told apart without an external metrics backend.
type Metrics struct {
	mu      sync.Mutex
	started time.Time
	routes  map[string]*routeStats
	errors  map[string]int64
}

type routeStats struct {
	count    int64
	duration time.Duration
}

// Snapshot is an aggregate view served by the liveness probe.
type Snapshot struct {
	RequestsServed int64         `json:"requests_served"`
	ErrorsSeen     int64         `json:"errors_seen"`
	Uptime         time.Duration `json:"uptime"`
}

// NewMetrics initializes metrics storage.
func NewMetrics() *Metrics {
	return &Metrics{
		started: time.Now(),
		routes:  make(map[string]*routeStats),
		errors:  make(map[string]int64),
	}
}

// RecordRequest counts a completed request and accumulates its latency.
func (m *Metrics) RecordRequest(path, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	key := routeKey(path, method, status)
	m.mu.Lock()
	defer m.mu.Unlock()
	stats, ok := m.routes[key]
	if !ok {
		stats = &routeStats{}
		m.routes[key] = stats
	}
	stats.count++
	stats.duration += duration
}

// RecordError counts a request that ended in a domain error, keyed by its
// error code so credential failures and checkout conflicts stay separable.
func (m *Metrics) RecordError(path, method, code string) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors[path+"|"+method+"|"+code]++
}

// RequestCount returns how many requests were recorded for one route.
func (m *Metrics) RequestCount(path, method string, status int) int64 {
	if m == nil {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if stats, ok := m.routes[routeKey(path, method, status)]; ok {
		return stats.count
	}
	return 0
}

// Snapshot aggregates totals across all routes.
func (m *Metrics) Snapshot() Snapshot {
	if m == nil {
		return Snapshot{}
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	snap := Snapshot{Uptime: time.Since(m.started)}
	for _, stats := range m.routes {
		snap.RequestsServed += stats.count
	}
	for _, count := range m.errors {
		snap.ErrorsSeen += count
	}
	return snap
}

func routeKey(path, method string, status int) string {
	return path + "|" + method + "|" + strconv.Itoa(status)
}
