package polyclip

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckPrecision(t *testing.T) {
	require.NoError(t, CheckPrecision(0))
	require.NoError(t, CheckPrecision(8))
	require.NoError(t, CheckPrecision(-8))
	require.ErrorIs(t, CheckPrecision(9), ErrPrecisionRange)
	require.ErrorIs(t, CheckPrecision(-9), ErrPrecisionRange)
}

func TestScaleRoundsHalfToEven(t *testing.T) {
	path := MakePathD(2.5, 3.5, 4.5, 5.5)
	scaled, err := ScalePathDToPath64(path, 1)
	require.NoError(t, err)
	// 2.5 -> 2, 3.5 -> 4, 4.5 -> 4, 5.5 -> 6
	require.Equal(t, Path64{{X: 2, Y: 4}, {X: 4, Y: 6}}, scaled)
}

func TestScaleRangeError(t *testing.T) {
	path := MakePathD(1e18, 0)
	_, err := ScalePathDToPath64(path, 100)
	require.ErrorIs(t, err, ErrCoordinateRange)

	_, err = ScalePaths64(Paths64{MakePath64(MaxCoord, 0)}, 8)
	require.ErrorIs(t, err, ErrCoordinateRange)
}

func TestScaleRoundTrip(t *testing.T) {
	path := MakePathD(1.25, -3.5, 100.75, 42.125)
	scaled, err := ScalePathDToPath64(path, 1000)
	require.NoError(t, err)
	back := ScalePath64ToPathD(scaled, 0.001)
	for i := range path {
		require.InDelta(t, path[i].X, back[i].X, 0.001)
		require.InDelta(t, path[i].Y, back[i].Y, 0.001)
	}
}

func TestNewClipperDPrecision(t *testing.T) {
	_, err := NewClipperD(9)
	require.ErrorIs(t, err, ErrPrecisionRange)

	c, err := NewClipperD(2)
	require.NoError(t, err)
	require.NotNil(t, c)
}

func TestClipperDBasicOps(t *testing.T) {
	c, err := NewClipperD(2)
	require.NoError(t, err)

	subject := PathsD{MakePathD(0, 0, 1, 0, 1, 1, 0, 1)}
	clip := PathsD{MakePathD(0.5, 0.5, 1.5, 0.5, 1.5, 1.5, 0.5, 1.5)}
	require.NoError(t, c.AddSubject(subject))
	require.NoError(t, c.AddClip(clip))

	var solution PathsD
	require.True(t, c.Execute(Intersection, NonZero, &solution, nil))
	require.Len(t, solution, 1)

	var area float64
	ring := solution[0]
	for i := range ring {
		j := (i + 1) % len(ring)
		area += ring[i].X*ring[j].Y - ring[j].X*ring[i].Y
	}
	require.InDelta(t, 0.25, area/2, 0.001)
}

func TestClipperDRejectsHugeCoordinates(t *testing.T) {
	c, err := NewClipperD(8)
	require.NoError(t, err)
	err = c.AddSubject(PathsD{MakePathD(1e15, 0, 1e15, 1, 0, 1)})
	require.ErrorIs(t, err, ErrCoordinateRange)
}

func TestInflatePathsDPrecision(t *testing.T) {
	_, err := InflatePathsD(PathsD{MakePathD(0, 0, 1, 0, 1, 1)}, 0.1, JoinMiter, EndPolygon, 2, 42)
	require.ErrorIs(t, err, ErrPrecisionRange)

	result, err := InflatePathsD(PathsD{MakePathD(0, 0, 1, 0, 1, 1, 0, 1)}, 0.5, JoinMiter, EndPolygon, 2, 2)
	require.NoError(t, err)
	require.Len(t, result, 1)
	for _, pt := range result[0] {
		require.GreaterOrEqual(t, pt.X, -0.51)
		require.LessOrEqual(t, pt.X, 1.51)
	}
}
