package polyclip

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMinkowskiSumClosedPath(t *testing.T) {
	pattern := MakePath64(-10, -10, 10, -10, 10, 10, -10, 10)
	path := MakePath64(0, 0, 100, 0, 100, 100, 0, 100)

	result, err := MinkowskiSum64(pattern, path, true)
	require.NoError(t, err)
	// the pattern swept along the closed path outline leaves a 20-wide band:
	// a 120x120 outer ring around an 80x80 hole
	require.Len(t, result, 2)
	require.InDelta(t, 120*120-80*80, AreaPaths(result), 4)
	require.Equal(t, Rect64{Left: -10, Top: -10, Right: 110, Bottom: 110}, GetBoundsPaths(result))
}

func TestMinkowskiSumOpenPath(t *testing.T) {
	pattern := MakePath64(-10, -10, 10, -10, 10, 10, -10, 10)
	path := MakePath64(0, 0, 100, 0)

	result, err := MinkowskiSum64(pattern, path, false)
	require.NoError(t, err)
	require.Len(t, result, 1)
	// the square swept along the segment covers a 120x20 slab
	require.InDelta(t, 2400, AreaPaths(result), 4)
}

func TestMinkowskiDiff(t *testing.T) {
	pattern := MakePath64(-5, -5, 5, -5, 5, 5, -5, 5)
	path := MakePath64(0, 0, 100, 0, 100, 100, 0, 100)

	result, err := MinkowskiDiff64(pattern, path, true)
	require.NoError(t, err)
	require.NotEmpty(t, result)
	// symmetric pattern: difference matches the sum's outline band
	require.InDelta(t, 110*110-90*90, AreaPaths(result), 4)
}

func TestMinkowskiEmptyInputs(t *testing.T) {
	_, err := MinkowskiSum64(nil, MakePath64(0, 0, 10, 0), true)
	require.ErrorIs(t, err, ErrEmptyPath)
	_, err = MinkowskiDiff64(MakePath64(0, 0, 10, 0), nil, true)
	require.ErrorIs(t, err, ErrEmptyPath)
}
