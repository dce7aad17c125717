package polyclip

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func drainScanlines(s *scanlineStore) []int64 {
	var out []int64
	for {
		y, ok := s.pop()
		if !ok {
			return out
		}
		out = append(out, y)
	}
}

func TestScanlineStoreSmallMode(t *testing.T) {
	var s scanlineStore
	for _, y := range []int64{5, 1, 9, 5, 3, 9, 7} {
		s.push(y)
	}
	require.Equal(t, []int64{9, 7, 5, 3, 1}, drainScanlines(&s))
	require.True(t, s.empty())
}

func TestScanlineStoreHeapUpgrade(t *testing.T) {
	var s scanlineStore
	// push enough distinct values to force the heap upgrade, with duplicates
	// sprinkled in both before and after the switch
	for i := 0; i < 100; i++ {
		y := int64((i * 37) % 83)
		s.push(y)
		s.push(y)
	}
	out := drainScanlines(&s)
	require.Len(t, out, 83)
	for i := 1; i < len(out); i++ {
		require.Greater(t, out[i-1], out[i], "pop order must be strictly descending")
	}
}

func TestScanlineStoreInterleaved(t *testing.T) {
	var s scanlineStore
	s.push(10)
	s.push(20)
	y, ok := s.pop()
	require.True(t, ok)
	require.Equal(t, int64(20), y)

	// re-pushing a popped value must requeue it
	s.push(20)
	require.Equal(t, []int64{20, 10}, drainScanlines(&s))

	_, ok = s.pop()
	require.False(t, ok)
}
