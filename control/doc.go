// Package control
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics and debug introspection for rings in a running process.
//
// Provides concurrent-safe state handling primitives including:
//   - Named debug probes over live rings (size, capacity, traffic stats)
//   - A metrics registry holding the latest collected snapshot
//   - A logr-based reporter emitting snapshots as structured log lines
//
// Nothing here changes ring semantics; probes only read.
package control
