package polyclip

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpenPathDifference(t *testing.T) {
	// a vertical polyline and a closed square, minus a clip square
	openSubject := Paths64{MakePath64(6, 7, 6, 5)}
	closedSubject := Paths64{MakePath64(5, 4, 8, 4, 8, 8, 5, 8)}
	clip := Paths64{MakePath64(7, 9, 4, 9, 4, 6, 7, 6)}

	c := NewClipper64()
	c.AddSubject(closedSubject)
	c.AddOpenSubject(openSubject)
	c.AddClip(clip)

	var closed, open Paths64
	require.True(t, c.Execute(Difference, EvenOdd, &closed, &open))

	require.Len(t, closed, 1)
	require.InDelta(t, 8, absFloat(Area(closed[0])), 0.5)

	require.Len(t, open, 1)
	require.Len(t, open[0], 2)
	require.Equal(t, int64(6), open[0][0].Y)
	seen := map[Point64]bool{}
	for _, pt := range open[0] {
		seen[Point64{X: pt.X, Y: pt.Y}] = true
	}
	require.True(t, seen[Point64{X: 6, Y: 6}])
	require.True(t, seen[Point64{X: 6, Y: 5}])
}

func TestOpenPathIntersection(t *testing.T) {
	// a horizontal line crossing a square is trimmed to the square's width
	openSubject := Paths64{MakePath64(-50, 50, 150, 50)}
	clip := Paths64{MakePath64(0, 0, 100, 0, 100, 100, 0, 100)}

	c := NewClipper64()
	c.AddOpenSubject(openSubject)
	c.AddClip(clip)

	var closed, open Paths64
	require.True(t, c.Execute(Intersection, NonZero, &closed, &open))
	require.Empty(t, closed)
	require.Len(t, open, 1)

	b := GetBounds(open[0])
	require.Equal(t, Rect64{Left: 0, Top: 50, Right: 100, Bottom: 50}, b)
}

func TestOpenPathFullyInside(t *testing.T) {
	openSubject := Paths64{MakePath64(10, 10, 90, 90)}
	clip := Paths64{MakePath64(0, 0, 100, 0, 100, 100, 0, 100)}

	c := NewClipper64()
	c.AddOpenSubject(openSubject)
	c.AddClip(clip)

	var closed, open Paths64
	require.True(t, c.Execute(Intersection, NonZero, &closed, &open))
	require.Len(t, open, 1)
	require.Len(t, open[0], 2)
}

func TestOpenPathFullyOutside(t *testing.T) {
	openSubject := Paths64{MakePath64(200, 200, 300, 300)}
	clip := Paths64{MakePath64(0, 0, 100, 0, 100, 100, 0, 100)}

	c := NewClipper64()
	c.AddOpenSubject(openSubject)
	c.AddClip(clip)

	var closed, open Paths64
	require.True(t, c.Execute(Intersection, NonZero, &closed, &open))
	require.Empty(t, open)
}

func TestOpenPathNeverClosed(t *testing.T) {
	// an open zig-zag through a clip region stays open
	openSubject := Paths64{MakePath64(-20, 10, 50, 10, 50, 90, 120, 90)}
	clip := Paths64{MakePath64(0, 0, 100, 0, 100, 100, 0, 100)}

	c := NewClipper64()
	c.AddOpenSubject(openSubject)
	c.AddClip(clip)

	var closed, open Paths64
	require.True(t, c.Execute(Intersection, NonZero, &closed, &open))
	require.Empty(t, closed)
	require.NotEmpty(t, open)
	for _, path := range open {
		require.GreaterOrEqual(t, len(path), 2)
		require.False(t, samePoint(path[0], path[len(path)-1]), "open output must not close")
	}
}
