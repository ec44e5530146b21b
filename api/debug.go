// Package api
// Author: momentics
//
// Live introspection contract for rings in a running process.

package api

// Debug exposes runtime introspection of registered probes.
type Debug interface {
	// DumpState emits a snapshot of all probe outputs.
	DumpState() map[string]any

	// RegisterProbe dynamically registers a named debug probe.
	RegisterProbe(name string, fn func() any)
}
