// control/debug.go
// Author: momentics <momentics@gmail.com>
//
// Debug probe registry and ring probe adapters.

package control

import (
	"sort"
	"sync"

	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/ring"
)

var _ api.Debug = (*DebugProbes)(nil)

// DebugProbes holds registered probe functions.
type DebugProbes struct {
	mu     sync.RWMutex
	probes map[string]func() any
}

// NewDebugProbes creates a probe registry.
func NewDebugProbes() *DebugProbes {
	return &DebugProbes{
		probes: make(map[string]func() any),
	}
}

// RegisterProbe inserts a named debug hook, replacing any previous one.
// Probes may register or unregister probes themselves.
func (dp *DebugProbes) RegisterProbe(name string, fn func() any) {
	dp.mu.Lock()
	defer dp.mu.Unlock()
	dp.probes[name] = fn
}

// UnregisterProbe removes a named hook.
func (dp *DebugProbes) UnregisterProbe(name string) {
	dp.mu.Lock()
	defer dp.mu.Unlock()
	delete(dp.probes, name)
}

// Names returns registered probe names in sorted order.
func (dp *DebugProbes) Names() []string {
	dp.mu.RLock()
	defer dp.mu.RUnlock()
	names := make([]string, 0, len(dp.probes))
	for k := range dp.probes {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// DumpState returns output of all probes. Probes run outside the lock.
func (dp *DebugProbes) DumpState() map[string]any {
	dp.mu.RLock()
	probes := make(map[string]func() any, len(dp.probes))
	for k, fn := range dp.probes {
		probes[k] = fn
	}
	dp.mu.RUnlock()

	out := make(map[string]any, len(probes))
	for k, fn := range probes {
		out[k] = fn()
	}
	return out
}

// RegisterRing adds a probe reporting r's size and capacity, plus its
// traffic statistics when r keeps them. The probe calls r directly, so
// a ring shared between goroutines must be wrapped in ring.Synced.
func RegisterRing[T any](dp api.Debug, name string, r api.Ring[T]) {
	dp.RegisterProbe(name, func() any {
		state := map[string]any{
			"size":     r.Size(),
			"capacity": r.Capacity(),
		}
		sr, ok := r.(ring.StatsReporter)
		if !ok {
			return state
		}
		if st, ok := sr.Stats(); ok {
			state["pushed"] = st.Pushed
			state["popped"] = st.Popped
			state["overwritten"] = st.Overwritten
			state["empty_pops"] = st.EmptyPops
		}
		return state
	})
}
