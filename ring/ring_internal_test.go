// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

package ring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPop_LeavesStaleSlot(t *testing.T) {
	r := MustNew[int](3)
	r.Push(10)
	r.Push(20)
	v, ok := r.Pop()
	require.True(t, ok)
	require.Equal(t, 10, v)
	assert.Equal(t, 10, r.data[0], "vacated slot keeps its value")
	assert.Equal(t, 2, r.cursor, "pop must not move the cursor")
}

func TestPop_ClearOnPop(t *testing.T) {
	r := MustNew[*int](3, WithClearOnPop())
	a, b := 1, 2
	r.Push(&a)
	r.Push(&b)
	v, ok := r.Pop()
	require.True(t, ok)
	require.Same(t, &a, v)
	assert.Nil(t, r.data[0])
	assert.Same(t, &b, r.data[1])
}

func TestWindowInvariant(t *testing.T) {
	r := MustNew[int](4)
	for i := 0; i < 11; i++ {
		r.Push(i)
		if i%3 == 0 {
			r.Pop()
		}
		require.LessOrEqual(t, r.count, len(r.data))
		require.GreaterOrEqual(t, r.cursor, 0)
		require.Less(t, r.cursor, len(r.data))
		// The newest element sits right before the cursor.
		if r.count > 0 {
			newest := (r.cursor - 1 + len(r.data)) % len(r.data)
			require.Equal(t, i, r.data[newest])
		}
	}
}
