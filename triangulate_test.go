package polyclip

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// requireTrianglePartition checks that every output triangle is a positive
// area triple of input-derived vertices and that the areas sum to the target.
func requireTrianglePartition(t *testing.T, tris Paths64, wantArea float64, tolerance float64) {
	t.Helper()
	var total float64
	for _, tri := range tris {
		require.Len(t, tri, 3)
		a := Area(tri)
		require.Greater(t, a, 0.0, "triangles must have positive area")
		total += a
	}
	require.InDelta(t, wantArea, total, tolerance)
}

func TestTriangulateSquare(t *testing.T) {
	square := Paths64{MakePath64(0, 0, 100, 0, 100, 100, 0, 100)}
	res, tris := Triangulate(square, true)
	require.Equal(t, TriangulateSuccess, res)
	require.Len(t, tris, 2)
	requireTrianglePartition(t, tris, 10000, 1)

	// the square's diagonal split is cocircular, so both diagonals are legal
	requireDelaunay(t, tris)
}

func TestTriangulateTriangle(t *testing.T) {
	tri := Paths64{MakePath64(0, 0, 100, 0, 50, 80)}
	res, tris := Triangulate(tri, true)
	require.Equal(t, TriangulateSuccess, res)
	require.Len(t, tris, 1)
	requireTrianglePartition(t, tris, 4000, 1)
}

func TestTriangulateConvexPolygon(t *testing.T) {
	pentagon := Paths64{MakePath64(0, 0, 100, 0, 130, 80, 50, 140, -30, 80)}
	res, tris := Triangulate(pentagon, true)
	require.Equal(t, TriangulateSuccess, res)
	require.Len(t, tris, 3, "n-2 triangles for a convex polygon")
	requireTrianglePartition(t, tris, Area(pentagon[0]), float64(len(pentagon[0])))
}

func TestTriangulateConcavePolygon(t *testing.T) {
	lShape := Paths64{MakePath64(0, 0, 100, 0, 100, 40, 40, 40, 40, 100, 0, 100)}
	res, tris := Triangulate(lShape, true)
	require.Equal(t, TriangulateSuccess, res)
	require.Len(t, tris, 4)
	requireTrianglePartition(t, tris, Area(lShape[0]), float64(len(lShape[0])))

	// no triangle may stray outside the concave input
	for _, tri := range tris {
		cx := (tri[0].X + tri[1].X + tri[2].X) / 3
		cy := (tri[0].Y + tri[1].Y + tri[2].Y) / 3
		require.NotEqual(t, PointOutside, PointInPolygon(Point64{X: cx, Y: cy}, lShape[0]))
	}
}

func TestTriangulatePolygonWithHole(t *testing.T) {
	paths := Paths64{
		MakePath64(0, 0, 100, 0, 100, 100, 0, 100),
		MakePath64(30, 30, 30, 70, 70, 70, 70, 30), // opposite winding
	}
	res, tris := Triangulate(paths, true)
	require.Equal(t, TriangulateSuccess, res)
	requireTrianglePartition(t, tris, 10000-1600, 8)

	// triangle interiors must avoid the hole
	hole := MakePath64(30, 30, 70, 30, 70, 70, 30, 70)
	for _, tri := range tris {
		cx := (tri[0].X + tri[1].X + tri[2].X) / 3
		cy := (tri[0].Y + tri[1].Y + tri[2].Y) / 3
		require.NotEqual(t, PointInside, PointInPolygon(Point64{X: cx, Y: cy}, hole))
	}
}

func TestTriangulateReversedInput(t *testing.T) {
	// globally flipped orientation is detected and fixed
	square := Paths64{ReversePath(MakePath64(0, 0, 100, 0, 100, 100, 0, 100))}
	res, tris := Triangulate(square, true)
	require.Equal(t, TriangulateSuccess, res)
	requireTrianglePartition(t, tris, 10000, 1)
}

func TestTriangulateSelfIntersecting(t *testing.T) {
	bowtie := Paths64{MakePath64(0, 0, 100, 100, 100, 0, 0, 100)}
	res, tris := Triangulate(bowtie, true)
	require.Equal(t, TriangulatePathsIntersect, res)
	require.Empty(t, tris)
}

func TestTriangulateCrossingRings(t *testing.T) {
	paths := Paths64{
		MakePath64(0, 0, 100, 0, 100, 100, 0, 100),
		MakePath64(50, 50, 150, 50, 150, 150, 50, 150),
	}
	res, _ := Triangulate(paths, true)
	require.Equal(t, TriangulatePathsIntersect, res)
}

func TestTriangulateNoPolygonInputs(t *testing.T) {
	res, tris := Triangulate(nil, true)
	require.Equal(t, TriangulateNoPolygons, res)
	require.Empty(t, tris)

	res, _ = Triangulate(Paths64{MakePath64(0, 0, 10, 10)}, true)
	require.Equal(t, TriangulateNoPolygons, res)

	res, _ = Triangulate(Paths64{MakePath64(0, 0, 10, 10, 20, 20)}, true)
	require.Equal(t, TriangulateNoPolygons, res, "zero area input")
}

func TestTriangulateWithoutDelaunay(t *testing.T) {
	pentagon := Paths64{MakePath64(0, 0, 100, 0, 130, 80, 50, 140, -30, 80)}
	res, tris := Triangulate(pentagon, false)
	require.Equal(t, TriangulateSuccess, res)
	requireTrianglePartition(t, tris, Area(pentagon[0]), float64(len(pentagon[0])))
}

// requireDelaunay checks the circumcircle property for every pair of
// triangles sharing an edge: the opposite vertex must not lie strictly
// inside the neighbour's circumcircle.
func requireDelaunay(t *testing.T, tris Paths64) {
	t.Helper()
	for i, t1 := range tris {
		for j, t2 := range tris {
			if i == j {
				continue
			}
			sharedCnt := 0
			var opposite Point64
			foundOpposite := false
			for _, pt := range t2 {
				shared := false
				for _, v := range t1 {
					if samePoint(v, pt) {
						shared = true
					}
				}
				if shared {
					sharedCnt++
				} else {
					opposite = pt
					foundOpposite = true
				}
			}
			if sharedCnt != 2 || !foundOpposite {
				continue
			}
			a, b, c := t1[0], t1[1], t1[2]
			if crossProductSign(a, b, c) < 0 {
				b, c = c, b
			}
			require.False(t, inCircle(a, b, c, opposite),
				"vertex %v lies strictly inside the circumcircle of %v", opposite, t1)
		}
	}
}

func TestTriangulateDelaunayLegal(t *testing.T) {
	// a skinny fan of points rewards flipping; legalization must leave every
	// interior edge legal
	shape := Paths64{MakePath64(0, 0, 100, 5, 200, 0, 210, 80, 100, 60, -10, 80)}
	res, tris := Triangulate(shape, true)
	require.Equal(t, TriangulateSuccess, res)
	requireTrianglePartition(t, tris, Area(shape[0]), float64(len(shape[0])))
	requireDelaunay(t, tris)
}
