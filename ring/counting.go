// File: ring/counting.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Counting decorator: the core never reports overwrites, this does.

package ring

import "github.com/momentics/hioload-ring/api"

var (
	_ api.Ring[any] = (*Counting[any])(nil)
	_ StatsReporter = (*Counting[any])(nil)
)

// Stats is a point-in-time snapshot of ring traffic.
type Stats struct {
	Pushed      uint64 // Push calls
	Popped      uint64 // Pop calls that returned a value
	Overwritten uint64 // Push calls that discarded an unread element
	EmptyPops   uint64 // Pop calls on an empty ring
}

// Lost reports whether any pushed element was discarded unread.
func (s Stats) Lost() bool {
	return s.Overwritten > 0
}

// StatsReporter is implemented by rings that may keep traffic statistics.
// ok is false when no statistics are collected.
type StatsReporter interface {
	Stats() (st Stats, ok bool)
}

// Counting wraps a ring and counts its traffic. Results of the wrapped
// ring pass through unchanged. Not safe for concurrent use.
type Counting[T any] struct {
	ring  api.Ring[T]
	stats Stats
}

// NewCounting wraps r.
func NewCounting[T any](r api.Ring[T]) *Counting[T] {
	return &Counting[T]{ring: r}
}

// Push appends item, recording an overwrite if the ring was full.
func (c *Counting[T]) Push(item T) {
	if c.ring.Size() == c.ring.Capacity() {
		c.stats.Overwritten++
	}
	c.stats.Pushed++
	c.ring.Push(item)
}

// Pop removes the oldest item.
func (c *Counting[T]) Pop() (T, bool) {
	item, ok := c.ring.Pop()
	if ok {
		c.stats.Popped++
	} else {
		c.stats.EmptyPops++
	}
	return item, ok
}

func (c *Counting[T]) Size() int     { return c.ring.Size() }
func (c *Counting[T]) Capacity() int { return c.ring.Capacity() }

// Stats returns the counters collected so far; ok is always true.
func (c *Counting[T]) Stats() (Stats, bool) {
	return c.stats, true
}
