package polyclip

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var offsetSquare = Paths64{MakePath64(0, 0, 50, 0, 50, 50, 0, 50)}

func TestInflateSquareMiter(t *testing.T) {
	result, err := InflatePaths64(offsetSquare, 10, JoinMiter, EndPolygon, 2)
	require.NoError(t, err)
	require.Len(t, result, 1)

	b := GetBounds(result[0])
	require.Equal(t, Rect64{Left: -10, Top: -10, Right: 60, Bottom: 60}, b)
	require.InDelta(t, 4900, absFloat(Area(result[0])), 2)

	// the result strictly contains the input
	for _, pt := range offsetSquare[0] {
		require.Equal(t, PointInside, PointInPolygon(pt, result[0]))
	}
}

func TestInflateSquareBevel(t *testing.T) {
	result, err := InflatePaths64(offsetSquare, 10, JoinBevel, EndPolygon, 2)
	require.NoError(t, err)
	require.Len(t, result, 1)
	// each corner loses a 10x10/2 triangle relative to the miter result
	require.InDelta(t, 4700, absFloat(Area(result[0])), 4)
}

func TestInflateSquareRound(t *testing.T) {
	result, err := InflatePaths64(offsetSquare, 10, JoinRound, EndPolygon, 2)
	require.NoError(t, err)
	require.Len(t, result, 1)
	area := absFloat(Area(result[0]))
	// 2500 + 4*50*10 + pi*100, with arc flattening pulling slightly under
	require.Greater(t, area, 4750.0)
	require.Less(t, area, 4820.0)
}

func TestInflateSquareSquareJoin(t *testing.T) {
	result, err := InflatePaths64(offsetSquare, 10, JoinSquare, EndPolygon, 2)
	require.NoError(t, err)
	require.Len(t, result, 1)
	area := absFloat(Area(result[0]))
	require.GreaterOrEqual(t, area, 4700.0)
	require.LessOrEqual(t, area, 4900.0)
}

func TestShrinkSquare(t *testing.T) {
	result, err := InflatePaths64(offsetSquare, -10, JoinMiter, EndPolygon, 2)
	require.NoError(t, err)
	require.Len(t, result, 1)
	require.InDelta(t, 900, absFloat(Area(result[0])), 2)
	require.Equal(t, Rect64{Left: 10, Top: 10, Right: 40, Bottom: 40}, GetBounds(result[0]))
}

func TestShrinkToNothing(t *testing.T) {
	result, err := InflatePaths64(offsetSquare, -30, JoinMiter, EndPolygon, 2)
	require.NoError(t, err)
	require.Empty(t, result)
}

func TestInflateRoundTrip(t *testing.T) {
	grown, err := InflatePaths64(offsetSquare, 10, JoinMiter, EndPolygon, 2)
	require.NoError(t, err)
	back, err := InflatePaths64(grown, -10, JoinMiter, EndPolygon, 2)
	require.NoError(t, err)
	require.Len(t, back, 1)
	require.InDelta(t, 2500, absFloat(Area(back[0])), 10)
	require.Equal(t, Rect64{Left: 0, Top: 0, Right: 50, Bottom: 50}, GetBounds(back[0]))
}

func TestInflateReversedInput(t *testing.T) {
	// a negatively wound square must inflate identically (the group delta is
	// negated rather than the vertices reversed)
	reversed := Paths64{ReversePath(offsetSquare[0])}
	result, err := InflatePaths64(reversed, 10, JoinMiter, EndPolygon, 2)
	require.NoError(t, err)
	require.Len(t, result, 1)
	require.Equal(t, Rect64{Left: -10, Top: -10, Right: 60, Bottom: 60}, GetBounds(result[0]))
	require.InDelta(t, 4900, absFloat(Area(result[0])), 2)
}

func TestInflateConcavePolygon(t *testing.T) {
	lShape := Paths64{MakePath64(0, 0, 100, 0, 100, 40, 40, 40, 40, 100, 0, 100)}
	inArea := absFloat(Area(lShape[0]))
	result, err := InflatePaths64(lShape, 5, JoinMiter, EndPolygon, 2)
	require.NoError(t, err)
	require.Len(t, result, 1)
	require.Greater(t, absFloat(Area(result[0])), inArea)
	// perimeter*delta plus a delta^2 square per convex corner, minus the
	// concave corner's delta^2
	require.InDelta(t, inArea+400*5+5*25-25, absFloat(Area(result[0])), 30)
}

func TestOffsetOpenPathButt(t *testing.T) {
	line := Paths64{MakePath64(0, 0, 100, 0)}
	result, err := InflatePaths64(line, 10, JoinMiter, EndButt, 2)
	require.NoError(t, err)
	require.Len(t, result, 1)
	require.InDelta(t, 2000, absFloat(Area(result[0])), 4)
	require.Equal(t, Rect64{Left: 0, Top: -10, Right: 100, Bottom: 10}, GetBounds(result[0]))
}

func TestOffsetOpenPathSquareCap(t *testing.T) {
	line := Paths64{MakePath64(0, 0, 100, 0)}
	result, err := InflatePaths64(line, 10, JoinMiter, EndSquare, 2)
	require.NoError(t, err)
	require.Len(t, result, 1)
	require.InDelta(t, 2400, absFloat(Area(result[0])), 8)
	require.Equal(t, Rect64{Left: -10, Top: -10, Right: 110, Bottom: 10}, GetBounds(result[0]))
}

func TestOffsetOpenPathRoundCap(t *testing.T) {
	line := Paths64{MakePath64(0, 0, 100, 0)}
	result, err := InflatePaths64(line, 10, JoinRound, EndRound, 2)
	require.NoError(t, err)
	require.Len(t, result, 1)
	area := absFloat(Area(result[0]))
	// 2000 plus two semicircle caps just under pi*100
	require.Greater(t, area, 2250.0)
	require.Less(t, area, 2330.0)
}

func TestOffsetJoinedEnds(t *testing.T) {
	line := Paths64{MakePath64(0, 0, 100, 0, 100, 100)}
	result, err := InflatePaths64(line, 5, JoinMiter, EndJoined, 2)
	require.NoError(t, err)
	// both sides offset and joined: an outer ring around a hole
	require.Len(t, result, 2)
	outer := AreaPaths(result)
	require.Greater(t, outer, 0.0)
}

func TestOffsetSinglePoint(t *testing.T) {
	pt := Paths64{MakePath64(50, 50)}

	round, err := InflatePaths64(pt, 10, JoinRound, EndRound, 2)
	require.NoError(t, err)
	require.Len(t, round, 1)
	require.InDelta(t, 314, absFloat(Area(round[0])), 25)

	square, err := InflatePaths64(pt, 10, JoinMiter, EndButt, 2)
	require.NoError(t, err)
	require.Len(t, square, 1)
	require.InDelta(t, 400, absFloat(Area(square[0])), 4)
}

func TestOffsetTinyDeltaPassThrough(t *testing.T) {
	result, err := InflatePaths64(offsetSquare, 0.2, JoinMiter, EndPolygon, 2)
	require.NoError(t, err)
	requireSameRings(t, offsetSquare, result)
}

func TestOffsetMiterLimitFallsBackToSquare(t *testing.T) {
	// a sharp spike exceeds miterLimit 2 and squares off instead of spiking
	spike := Paths64{MakePath64(0, 0, 100, 0, 200, 5, 0, 10)}
	mitered, err := InflatePaths64(spike, 8, JoinMiter, EndPolygon, 2)
	require.NoError(t, err)
	require.NotEmpty(t, mitered)
	b := GetBounds(mitered[0])
	// an unclamped miter at the spike tip would extend far past x=250
	require.Less(t, b.Right, int64(250))
}

func TestOffsetDeltaCallback(t *testing.T) {
	// the callback overrides the execute delta at every vertex
	co := NewClipperOffset()
	co.DeltaCallback = func(path Path64, norms []PointD, j, k int) float64 {
		return 10
	}
	co.AddPaths(offsetSquare, JoinMiter, EndPolygon)
	result, err := co.Execute(1.0)
	require.NoError(t, err)
	require.Len(t, result, 1)
	require.Equal(t, Rect64{Left: -10, Top: -10, Right: 60, Bottom: 60}, GetBounds(result[0]))
}

func TestOffsetMergeGroups(t *testing.T) {
	a := Paths64{MakePath64(0, 0, 60, 0, 60, 60, 0, 60)}
	b := Paths64{MakePath64(40, 0, 100, 0, 100, 60, 40, 60)}

	co := NewClipperOffset()
	co.AddPaths(a, JoinMiter, EndPolygon)
	co.AddPaths(b, JoinMiter, EndPolygon)
	merged, err := co.Execute(5)
	require.NoError(t, err)
	require.Len(t, merged, 1, "overlapping groups union into one ring")

	co2 := NewClipperOffset()
	co2.MergeGroups = false
	co2.AddPaths(a, JoinMiter, EndPolygon)
	co2.AddPaths(b, JoinMiter, EndPolygon)
	separate, err := co2.Execute(5)
	require.NoError(t, err)
	require.Len(t, separate, 2, "groups normalized independently stay apart")
}

func TestOffsetTreeOutput(t *testing.T) {
	// inflating a ring (outer plus hole) keeps the hole in the tree
	rings := Paths64{
		MakePath64(0, 0, 100, 0, 100, 100, 0, 100),
		ReversePath(MakePath64(30, 30, 70, 30, 70, 70, 30, 70)),
	}
	co := NewClipperOffset()
	co.AddPaths(rings, JoinMiter, EndPolygon)
	tree, err := co.ExecuteTree(5)
	require.NoError(t, err)
	require.Equal(t, 1, tree.Count())
	outer := tree.Child(0)
	require.Equal(t, 1, outer.Count(), "the hole survives as a child")
	// outer grows outward, hole shrinks inward
	require.InDelta(t, 110*110-30*30, tree.Area(), 20)
}

func TestInflatePathsValidation(t *testing.T) {
	_, err := InflatePaths64(offsetSquare, 10, JoinType(9), EndPolygon, 2)
	require.ErrorIs(t, err, ErrInvalidJoinType)
	_, err = InflatePaths64(offsetSquare, 10, JoinMiter, EndType(9), 2)
	require.ErrorIs(t, err, ErrInvalidEndType)
}
