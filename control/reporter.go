// control/reporter.go
// Author: momentics <momentics@gmail.com>
//
// Periodic snapshot reporting through logr.

package control

import (
	"context"
	"sort"
	"time"

	"github.com/go-logr/logr"
)

// Reporter copies probe output into a metrics registry and logs it.
type Reporter struct {
	log     logr.Logger
	probes  *DebugProbes
	metrics *MetricsRegistry
}

// NewReporter binds a logger to probes and the registry that receives
// their snapshots.
func NewReporter(log logr.Logger, probes *DebugProbes, metrics *MetricsRegistry) *Reporter {
	return &Reporter{
		log:     log.WithName("ring-control"),
		probes:  probes,
		metrics: metrics,
	}
}

// Collect runs all probes and stores their output in the registry.
func (r *Reporter) Collect() map[string]any {
	state := r.probes.DumpState()
	r.metrics.Merge(state)
	return state
}

// Report collects and logs one line per probe, in name order.
func (r *Reporter) Report() {
	state := r.Collect()
	names := make([]string, 0, len(state))
	for k := range state {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, name := range names {
		kv := []any{"probe", name}
		if m, ok := state[name].(map[string]any); ok {
			keys := make([]string, 0, len(m))
			for k := range m {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				kv = append(kv, k, m[k])
			}
		} else {
			kv = append(kv, "value", state[name])
		}
		r.log.Info("ring snapshot", kv...)
	}
}

// Run reports every interval until ctx is done, then reports once more.
func (r *Reporter) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			r.Report()
			return
		case <-ticker.C:
			r.Report()
		}
	}
}
