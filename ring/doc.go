// Package ring
// Author: momentics <momentics@gmail.com>
//
// Fixed-capacity overwrite ring buffer for bounded history: sliding windows,
// producer/consumer staging, telemetry tails.
//
// RingBuffer is the core. It never grows, never blocks and never allocates
// after construction; pushing into a full buffer drops the oldest unread
// element. It carries no synchronization. Shared access is layered on top:
//   - Synced serializes every call behind one mutex
//   - Counting reports how many pushes overwrote unread data
//
// See ring.go, config.go, synced.go, counting.go for details.
package ring
