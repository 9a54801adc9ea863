package intmap_test

import (
	"testing"

	"github.com/gopherprover/saturate/intmap"
	"github.com/stretchr/testify/require"
)

func TestMap_GetAssignDel_Roundtrip(t *testing.T) {
	t.Parallel()

	m := intmap.New()
	require.Nil(t, m.Get(5))

	m.Assign(5, "five")
	require.Equal(t, "five", m.Get(5))
	require.Equal(t, 1, m.Len())

	m.Assign(5, "FIVE")
	require.Equal(t, "FIVE", m.Get(5))
	require.Equal(t, 1, m.Len())

	require.Equal(t, "FIVE", m.Del(5))
	require.Nil(t, m.Get(5))
	require.Equal(t, 0, m.Len())
	require.Nil(t, m.Del(5))
}

func TestMap_ZeroKeyIsValid(t *testing.T) {
	t.Parallel()

	m := intmap.New()
	m.Assign(0, "zero")
	require.Equal(t, "zero", m.Get(0))
}

func TestMap_NegativeKeyPanics(t *testing.T) {
	t.Parallel()

	m := intmap.New()
	require.Panics(t, func() { m.Get(-1) })
	require.Panics(t, func() { m.Assign(-1, 1) })
}

// TestMap_Adaptation reproduces scenario 1 of the testable-properties
// section: dense for contiguous keys, sparse once density drops, and
// Get returning the expected values throughout, including after the
// far key is deleted again.
func TestMap_Adaptation(t *testing.T) {
	m := intmap.New()

	for i := 0; i <= 4; i++ {
		m.Assign(i, i)
	}
	for i := 0; i <= 4; i++ {
		require.Equal(t, i, m.Get(i))
	}

	m.Del(1)
	m.Del(2)
	m.Del(3)
	require.Equal(t, 0, m.Get(0))
	require.Equal(t, 4, m.Get(4))
	require.Nil(t, m.Get(1))

	m.Assign(1000, "far")
	require.Equal(t, "far", m.Get(1000))
	maxKey, ok := m.MaxKey()
	require.True(t, ok)
	require.Equal(t, 1000, maxKey)

	m.Del(1000)
	require.Nil(t, m.Get(1000))
	require.Equal(t, 0, m.Get(0))
	require.Equal(t, 4, m.Get(4))
}

// TestMap_IterRange reproduces scenario 6: iteration over a bounded
// key range yields entries in ascending order.
func TestMap_IterRange(t *testing.T) {
	t.Parallel()

	m := intmap.New()
	for _, k := range []int{2, 5, 8, 11} {
		m.Assign(k, k*10)
	}

	var gotKeys []int
	for k, v := range m.Iter(4, 9) {
		gotKeys = append(gotKeys, k)
		require.Equal(t, k*10, v)
	}
	require.Equal(t, []int{5, 8}, gotKeys)
}

func TestMap_IterInvalidatedByMutation(t *testing.T) {
	t.Parallel()

	m := intmap.New()
	m.Assign(1, "a")
	m.Assign(2, "b")

	require.Panics(t, func() {
		for range m.Iter(0, 10) {
			m.Assign(3, "c")
		}
	})
}

// TestMap_Consistency is a light property check: a pseudo-random
// sequence of Assign/Del ops must leave Get(k) equal to the value of
// the last Assign(k) after the last Del(k), independent of which
// internal representation is currently active.
func TestMap_Consistency(t *testing.T) {
	t.Parallel()

	m := intmap.New()
	shadow := make(map[int]any)

	keys := []int{0, 1, 2, 4, 8, 16, 32, 64, 1000, 2000, 3, 7}
	seq := 0
	for round := 0; round < 3; round++ {
		for _, k := range keys {
			seq++
			m.Assign(k, seq)
			shadow[k] = seq
		}
		for _, k := range keys[:len(keys)/2] {
			m.Del(k)
			delete(shadow, k)
		}
	}

	for _, k := range keys {
		want, ok := shadow[k]
		if !ok {
			require.Nil(t, m.Get(k))
			continue
		}
		require.Equal(t, want, m.Get(k))
	}
}
