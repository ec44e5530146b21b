// control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics collector for ring monitoring.
// Exposes values in a thread-safe map with dynamic registration.

package control

import (
	"sync"
	"time"
)

// MetricsRegistry holds the latest metric values.
type MetricsRegistry struct {
	mu      sync.RWMutex
	metrics map[string]any
	updated time.Time
}

// NewMetricsRegistry creates an empty registry.
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		metrics: make(map[string]any),
	}
}

// Set sets or updates a metric key.
func (mr *MetricsRegistry) Set(key string, value any) {
	mr.mu.Lock()
	mr.metrics[key] = value
	mr.updated = time.Now()
	mr.mu.Unlock()
}

// Merge sets every key of values in one update.
func (mr *MetricsRegistry) Merge(values map[string]any) {
	mr.mu.Lock()
	defer mr.mu.Unlock()
	for k, v := range values {
		mr.metrics[k] = v
	}
	mr.updated = time.Now()
}

// GetSnapshot returns a copy of the latest metrics.
func (mr *MetricsRegistry) GetSnapshot() map[string]any {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	out := make(map[string]any, len(mr.metrics))
	for k, v := range mr.metrics {
		out[k] = v
	}
	return out
}

// Updated returns the time of the last write, zero if never written.
func (mr *MetricsRegistry) Updated() time.Time {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	return mr.updated
}
