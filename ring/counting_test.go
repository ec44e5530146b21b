// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

package ring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-ring/ring"
)

func statsOf(t *testing.T, r ring.StatsReporter) ring.Stats {
	t.Helper()
	st, ok := r.Stats()
	require.True(t, ok, "ring keeps no statistics")
	return st
}

func TestCounting_TracksTraffic(t *testing.T) {
	c := ring.NewCounting[int](ring.MustNew[int](5))
	pushAll(c, 1, 2, 3, 4, 5, 6, 7)
	requirePop(t, c, 3)
	for c.Size() > 0 {
		c.Pop()
	}
	c.Pop()
	c.Pop()

	assert.Equal(t, ring.Stats{
		Pushed:      7,
		Popped:      5,
		Overwritten: 2,
		EmptyPops:   2,
	}, statsOf(t, c))
	assert.True(t, statsOf(t, c).Lost())
}

func TestCounting_PassesThrough(t *testing.T) {
	inner := ring.MustNew[int](3)
	c := ring.NewCounting[int](inner)
	assert.Equal(t, 3, c.Capacity())
	pushAll(c, 1, 2)
	assert.Equal(t, inner.Size(), c.Size())
	requirePop(t, c, 1)
	assert.False(t, statsOf(t, c).Lost())

	// Size reported to callers lags pushes by exactly the overwrites.
	pushAll(c, 3, 4, 5, 6)
	st := statsOf(t, c)
	require.Equal(t, uint64(6), st.Pushed)
	assert.Equal(t, int(st.Pushed-st.Popped-st.Overwritten), c.Size())
}
