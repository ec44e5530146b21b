// File: ring/ring.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Overwrite-on-full circular buffer with O(1), allocation-free Push/Pop.

package ring

import (
	"github.com/momentics/hioload-ring/api"
)

// Ensure compile-time interface compliance.
var _ api.Ring[any] = (*RingBuffer[any])(nil)

// RingBuffer holds at most Capacity() elements. Valid elements occupy the
// count slots immediately preceding cursor in circular order.
// Not safe for concurrent use; see Synced.
type RingBuffer[T any] struct {
	data       []T
	count      int
	cursor     int // next write slot, in [0, len(data))
	clearOnPop bool
}

// New allocates an empty ring buffer holding up to capacity elements.
// capacity must be >= 1.
func New[T any](capacity int, opts ...Option) (*RingBuffer[T], error) {
	cfg := Config{Capacity: capacity}
	for _, opt := range opts {
		opt(&cfg)
	}
	return NewFromConfig[T](cfg)
}

// NewFromConfig allocates an empty ring buffer described by cfg.
func NewFromConfig[T any](cfg Config) (*RingBuffer[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &RingBuffer[T]{
		data:       make([]T, cfg.Capacity),
		clearOnPop: cfg.ClearOnPop,
	}, nil
}

// MustNew is like New but panics on an invalid capacity.
func MustNew[T any](capacity int, opts ...Option) *RingBuffer[T] {
	r, err := New[T](capacity, opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// Size returns number of items currently held.
func (r *RingBuffer[T]) Size() int {
	return r.count
}

// Capacity returns the fixed buffer capacity.
func (r *RingBuffer[T]) Capacity() int {
	return len(r.data)
}

// Push stores item at the write cursor. On a full buffer the oldest
// element is overwritten and Size stays at Capacity.
func (r *RingBuffer[T]) Push(item T) {
	r.data[r.cursor] = item
	r.cursor++
	if r.cursor == len(r.data) {
		r.cursor = 0
	}
	if r.count < len(r.data) {
		r.count++
	}
}

// Pop removes and returns the oldest item; ok false if empty.
// The cursor does not move.
func (r *RingBuffer[T]) Pop() (item T, ok bool) {
	if r.count == 0 {
		return item, false
	}
	idx := r.oldest()
	item = r.data[idx]
	if r.clearOnPop {
		var zero T
		r.data[idx] = zero
	}
	r.count--
	return item, true
}

// oldest returns the storage index of the oldest valid element.
func (r *RingBuffer[T]) oldest() int {
	return (r.cursor - r.count + len(r.data)) % len(r.data)
}
