package polyclip

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var clipRect = Rect64{Left: 100, Top: 100, Right: 200, Bottom: 200}

func TestRectClipPassThroughPolygon(t *testing.T) {
	// a tall rectangle passing straight through the clip window
	paths := Paths64{MakePath64(140, 0, 160, 0, 160, 300, 140, 300)}
	result := RectClip(clipRect, paths)
	require.Len(t, result, 1)
	require.InDelta(t, 2000, absFloat(Area(result[0])), 1)
	require.Equal(t, Rect64{Left: 140, Top: 100, Right: 160, Bottom: 200}, GetBounds(result[0]))
}

func TestRectClipFullyInside(t *testing.T) {
	paths := Paths64{MakePath64(120, 120, 180, 120, 180, 180, 120, 180)}
	result := RectClip(clipRect, paths)
	requireSameRings(t, paths, result)
}

func TestRectClipDisjoint(t *testing.T) {
	paths := Paths64{MakePath64(300, 300, 400, 300, 400, 400, 300, 400)}
	require.Empty(t, RectClip(clipRect, paths))
}

func TestRectClipPathEnclosesRect(t *testing.T) {
	paths := Paths64{MakePath64(0, 0, 300, 0, 300, 300, 0, 300)}
	result := RectClip(clipRect, paths)
	require.Len(t, result, 1)
	require.InDelta(t, 10000, absFloat(Area(result[0])), 1)
	require.Equal(t, clipRect, GetBounds(result[0]))
}

func TestRectClipCornerOverlap(t *testing.T) {
	// a square overlapping only the rect's top-left corner
	paths := Paths64{MakePath64(50, 50, 150, 50, 150, 150, 50, 150)}
	result := RectClip(clipRect, paths)
	require.Len(t, result, 1)
	require.InDelta(t, 2500, absFloat(Area(result[0])), 1)
	require.Equal(t, Rect64{Left: 100, Top: 100, Right: 150, Bottom: 150}, GetBounds(result[0]))
}

func TestRectClipIdempotent(t *testing.T) {
	paths := Paths64{MakePath64(50, 50, 250, 80, 150, 250, 60, 180)}
	once := RectClip(clipRect, paths)
	twice := RectClip(clipRect, once)
	require.InDelta(t, AreaPaths(once), AreaPaths(twice), 2)
	require.Equal(t, GetBoundsPaths(once), GetBoundsPaths(twice))
}

func TestRectClipDiagonalThrough(t *testing.T) {
	// a diamond crossing all four sides: the result clips to the window with
	// every window corner cut off by a diamond side
	paths := Paths64{MakePath64(150, 70, 230, 150, 150, 230, 70, 150)}
	result := RectClip(clipRect, paths)
	require.Len(t, result, 1)
	require.Equal(t, clipRect, GetBounds(result[0]))
	require.InDelta(t, 9200, absFloat(Area(result[0])), 2)
}

func TestRectClipEdgeOnBoundary(t *testing.T) {
	// a polygon sharing the rect's left side: boundary contact is kept
	paths := Paths64{MakePath64(100, 120, 180, 120, 180, 180, 100, 180)}
	result := RectClip(clipRect, paths)
	require.Len(t, result, 1)
	require.InDelta(t, 80*60, absFloat(Area(result[0])), 1)
}

func TestRectClipMultiplePaths(t *testing.T) {
	paths := Paths64{
		MakePath64(120, 120, 180, 120, 180, 180, 120, 180), // inside
		MakePath64(300, 300, 400, 300, 400, 400, 300, 400), // outside
		MakePath64(140, 0, 160, 0, 160, 300, 140, 300),     // through
	}
	result := RectClip(clipRect, paths)
	require.Len(t, result, 2)
}

func TestRectClipEmptyRect(t *testing.T) {
	empty := Rect64{Left: 10, Top: 10, Right: 10, Bottom: 20}
	require.Empty(t, RectClip(empty, Paths64{MakePath64(0, 0, 5, 0, 5, 5)}))
}

func TestRectClipLinesSegments(t *testing.T) {
	// a horizontal line straight through the window
	lines := Paths64{MakePath64(0, 150, 300, 150)}
	result := RectClipLines(clipRect, lines)
	require.Len(t, result, 1)
	require.Len(t, result[0], 2)
	require.Equal(t, Rect64{Left: 100, Top: 150, Right: 200, Bottom: 150}, GetBounds(result[0]))
}

func TestRectClipLinesReentry(t *testing.T) {
	// a zig-zag that leaves and re-enters: two output segments
	lines := Paths64{MakePath64(80, 150, 150, 150, 150, 80, 150, 20, 180, 20, 180, 150, 250, 150)}
	result := RectClipLines(clipRect, lines)
	require.Len(t, result, 2)
	for _, seg := range result {
		for _, pt := range seg {
			require.GreaterOrEqual(t, pt.X, clipRect.Left)
			require.LessOrEqual(t, pt.X, clipRect.Right)
			require.GreaterOrEqual(t, pt.Y, clipRect.Top)
			require.LessOrEqual(t, pt.Y, clipRect.Bottom)
		}
	}
}

func TestRectClipLinesInsideAndOutside(t *testing.T) {
	inside := Paths64{MakePath64(110, 110, 190, 190)}
	require.Len(t, RectClipLines(clipRect, inside), 1)

	outside := Paths64{MakePath64(0, 0, 50, 50)}
	require.Empty(t, RectClipLines(clipRect, outside))
}
