// Package api
// Author: momentics@gmail.com
//
// Bounded overwrite ring contract shared by the core buffer and its wrappers.

package api

// Ring is a fixed-capacity FIFO that overwrites its oldest element when full.
// Implementations are not required to be safe for concurrent use.
type Ring[T any] interface {
	// Push appends item, discarding the oldest element if the ring is full.
	Push(item T)
	// Pop removes the oldest item, returns false if empty.
	Pop() (T, bool)
	// Size returns current number of items.
	Size() int
	// Capacity returns the fixed ring capacity.
	Capacity() int
}
