package crm

import (
	"sync"
	"sync/atomic"
	"time"
)

// Metrics holds lightweight counters for store activity.
type Metrics struct {
	// totals
	TotalCalls        atomic.Int64
	TotalRetries      atomic.Int64
	TotalFailures     atomic.Int64
	TotalBackoffNanos atomic.Int64

	// by operation type
	ReadCalls  atomic.Int64 // List, Get
	WriteCalls atomic.Int64 // AssignVendor, SetLeadStatus

	mu         sync.Mutex
	kindCounts map[Kind]int64
}

// NewMetrics creates a new metrics collector.
func NewMetrics() *Metrics { return &Metrics{kindCounts: make(map[Kind]int64)} }

// IncCall counts one call against kind.
func (m *Metrics) IncCall(kind Kind, write bool) {
	m.TotalCalls.Add(1)
	if write {
		m.WriteCalls.Add(1)
	} else {
		m.ReadCalls.Add(1)
	}
	m.mu.Lock()
	m.kindCounts[kind]++
	m.mu.Unlock()
}

// IncRetry increments the retry counter.
func (m *Metrics) IncRetry() { m.TotalRetries.Add(1) }

// IncFailure counts a call that failed after all attempts.
func (m *Metrics) IncFailure() { m.TotalFailures.Add(1) }

// AddBackoff accumulates backoff sleep time.
func (m *Metrics) AddBackoff(d time.Duration) { m.TotalBackoffNanos.Add(d.Nanoseconds()) }

// MetricsSnapshot is a read-only copy of metrics state.
type MetricsSnapshot struct {
	TotalCalls    int64
	TotalRetries  int64
	TotalFailures int64
	TotalBackoff  time.Duration
	ReadCalls     int64
	WriteCalls    int64
	KindCounts    map[Kind]int64
}

// Snapshot returns a copy of the metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	kinds := make(map[Kind]int64, len(m.kindCounts))
	for k, v := range m.kindCounts {
		kinds[k] = v
	}
	return MetricsSnapshot{
		TotalCalls:    m.TotalCalls.Load(),
		TotalRetries:  m.TotalRetries.Load(),
		TotalFailures: m.TotalFailures.Load(),
		TotalBackoff:  time.Duration(m.TotalBackoffNanos.Load()),
		ReadCalls:     m.ReadCalls.Load(),
		WriteCalls:    m.WriteCalls.Load(),
		KindCounts:    kinds,
	}
}
