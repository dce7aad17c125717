package polyclip

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPolyTreeOuterWithHole(t *testing.T) {
	subject := Paths64{
		MakePath64(0, 0, 200, 0, 200, 200, 0, 200),
		MakePath64(50, 50, 150, 50, 150, 150, 50, 150),
	}

	tree, err := Union64Tree(subject, nil, EvenOdd)
	require.NoError(t, err)

	require.Equal(t, 1, tree.Count(), "one outer polygon")
	outer := tree.Child(0)
	require.NotNil(t, outer)
	require.False(t, outer.IsHole())
	require.Equal(t, 1, outer.Count(), "one hole")

	hole := outer.Child(0)
	require.True(t, hole.IsHole())
	require.Equal(t, 0, hole.Count())
	require.Equal(t, 2, hole.Level())

	require.InDelta(t, 30000, tree.Area(), 1)
	require.InDelta(t, 40000, absFloat(Area(outer.Polygon())), 1)
	require.InDelta(t, 10000, absFloat(Area(hole.Polygon())), 1)
}

func TestPolyTreeMatchesFlatOutput(t *testing.T) {
	subject := Paths64{
		MakePath64(0, 0, 200, 0, 200, 200, 0, 200),
		MakePath64(50, 50, 150, 50, 150, 150, 50, 150),
	}

	tree, err := Union64Tree(subject, nil, EvenOdd)
	require.NoError(t, err)
	flat, err := Union64(subject, nil, EvenOdd)
	require.NoError(t, err)

	require.InDelta(t, AreaPaths(flat), tree.Area(), 1)
	require.InDelta(t, AreaPaths(PolyTreeToPaths64(tree)), tree.Area(), 1)
	require.Equal(t, len(flat), tree.TotalPolygonCount())
}

func TestPolyTreeNestedIslands(t *testing.T) {
	// outer, hole, island inside the hole
	subject := Paths64{
		MakePath64(0, 0, 300, 0, 300, 300, 0, 300),
		MakePath64(50, 50, 250, 50, 250, 250, 50, 250),
		MakePath64(100, 100, 200, 100, 200, 200, 100, 200),
	}

	tree, err := Union64Tree(subject, nil, EvenOdd)
	require.NoError(t, err)

	require.Equal(t, 1, tree.Count())
	outer := tree.Child(0)
	require.Equal(t, 1, outer.Count())
	hole := outer.Child(0)
	require.Equal(t, 1, hole.Count())
	island := hole.Child(0)
	require.False(t, island.IsHole())
	require.Equal(t, 0, island.Count())
	require.Equal(t, outer, hole.Parent())

	// 300^2 - 200^2 + 100^2
	require.InDelta(t, 60000, tree.Area(), 1)
	require.Equal(t, 3, tree.TotalPolygonCount())
	require.Equal(t, 12, tree.TotalVertexCount())
}

func TestPolyTreeIntersection(t *testing.T) {
	tree, err := Intersect64Tree(testSubject, testClip, NonZero)
	require.NoError(t, err)
	require.Equal(t, 1, tree.Count())
	require.InDelta(t, 2500, tree.Area(), 1)
}

func TestPolyTreeSeparateOuters(t *testing.T) {
	subject := Paths64{
		MakePath64(0, 0, 100, 0, 100, 100, 0, 100),
		MakePath64(200, 0, 300, 0, 300, 100, 200, 100),
	}
	tree, err := Union64Tree(subject, nil, NonZero)
	require.NoError(t, err)
	require.Equal(t, 2, tree.Count())
	for _, child := range tree.Children() {
		require.False(t, child.IsHole())
		require.Equal(t, 0, child.Count())
	}
	require.InDelta(t, 20000, tree.Area(), 1)
}
