// File: ring/synced.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Mutex wrapper for sharing a ring between goroutines.

package ring

import (
	"sync"

	"golang.org/x/sys/cpu"

	"github.com/momentics/hioload-ring/api"
)

var (
	_ api.Ring[any] = (*Synced[any])(nil)
	_ StatsReporter = (*Synced[any])(nil)
)

// Synced serializes every call to the wrapped ring behind a single mutex.
// The lock sits on its own cache line, away from neighbouring data.
type Synced[T any] struct {
	_    cpu.CacheLinePad
	mu   sync.Mutex
	_    cpu.CacheLinePad
	ring api.Ring[T]
}

// NewSynced wraps r. r must not be used directly afterwards.
func NewSynced[T any](r api.Ring[T]) *Synced[T] {
	return &Synced[T]{ring: r}
}

// Push appends item under the lock.
func (s *Synced[T]) Push(item T) {
	s.mu.Lock()
	s.ring.Push(item)
	s.mu.Unlock()
}

// Pop removes the oldest item under the lock.
func (s *Synced[T]) Pop() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ring.Pop()
}

// Size returns the wrapped ring's size.
func (s *Synced[T]) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ring.Size()
}

// Capacity returns the wrapped ring's capacity.
func (s *Synced[T]) Capacity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ring.Capacity()
}

// Stats returns the wrapped ring's statistics when it keeps any.
func (s *Synced[T]) Stats() (Stats, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sr, ok := s.ring.(StatsReporter); ok {
		return sr.Stats()
	}
	return Stats{}, false
}
