// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// property_test.go: randomized model checking against an unbounded queue.
package ring_test

import (
	"math/rand"
	"testing"

	"github.com/eapache/queue"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-ring/ring"
)

// boundedModel keeps the reference queue trimmed to capacity, dropping
// from the front the way the ring overwrites its oldest element.
type boundedModel struct {
	q        *queue.Queue
	capacity int
}

func (m *boundedModel) push(v int) {
	m.q.Add(v)
	if m.q.Length() > m.capacity {
		m.q.Remove()
	}
}

func (m *boundedModel) pop() (int, bool) {
	if m.q.Length() == 0 {
		return 0, false
	}
	return m.q.Remove().(int), true
}

func TestRingPropertyBased(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		capacity := 1 + rng.Intn(17)
		r := ring.MustNew[int](capacity)
		model := &boundedModel{q: queue.New(), capacity: capacity}

		for i := 0; i < 5000; i++ {
			// Bias toward pushes so the ring spends time full.
			if rng.Intn(3) > 0 {
				v := rng.Int()
				r.Push(v)
				model.push(v)
			} else {
				got, ok := r.Pop()
				want, wantOK := model.pop()
				require.Equal(t, wantOK, ok, "seed %d op %d", seed, i)
				require.Equal(t, want, got, "seed %d op %d", seed, i)
			}
			require.Equal(t, model.q.Length(), r.Size(), "seed %d op %d", seed, i)
			require.GreaterOrEqual(t, r.Size(), 0)
			require.LessOrEqual(t, r.Size(), r.Capacity())
		}
	}
}

func TestRingSizeBookkeeping(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	r := ring.MustNew[int](7)
	for i := 0; i < 2000; i++ {
		before := r.Size()
		if rng.Intn(2) == 0 {
			r.Push(i)
			if before < r.Capacity() {
				require.Equal(t, before+1, r.Size())
			} else {
				require.Equal(t, before, r.Size())
			}
			continue
		}
		_, ok := r.Pop()
		if before == 0 {
			require.False(t, ok)
			require.Equal(t, 0, r.Size())
		} else {
			require.True(t, ok)
			require.Equal(t, before-1, r.Size())
		}
	}
}
