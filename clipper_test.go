package polyclip

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// canonicalRing rotates a ring so its lexicographically smallest vertex
// comes first, normalizing orientation, so rings compare independent of
// starting vertex and winding.
func canonicalRing(path Path64) Path64 {
	if len(path) == 0 {
		return path
	}
	ring := path
	if Area128(ring).IsNegative() {
		ring = ReversePath(ring)
	}
	min := 0
	for i := 1; i < len(ring); i++ {
		if ring[i].X < ring[min].X || (ring[i].X == ring[min].X && ring[i].Y < ring[min].Y) {
			min = i
		}
	}
	out := make(Path64, 0, len(ring))
	out = append(out, ring[min:]...)
	out = append(out, ring[:min]...)
	return out
}

func requireSameRings(t *testing.T, want, got Paths64) {
	t.Helper()
	require.Equal(t, len(want), len(got))
	used := make([]bool, len(got))
	for _, w := range want {
		cw := canonicalRing(w)
		found := false
		for i, g := range got {
			if used[i] {
				continue
			}
			cg := canonicalRing(g)
			if len(cw) != len(cg) {
				continue
			}
			same := true
			for k := range cw {
				if !samePoint(cw[k], cg[k]) {
					same = false
					break
				}
			}
			if same {
				used[i] = true
				found = true
				break
			}
		}
		require.True(t, found, "missing ring %v in %v", w, got)
	}
}

var (
	testSubject = Paths64{MakePath64(0, 0, 100, 0, 100, 100, 0, 100)}
	testClip    = Paths64{MakePath64(50, 50, 150, 50, 150, 150, 50, 150)}
)

func TestIntersectOverlappingSquares(t *testing.T) {
	result, err := Intersect64(testSubject, testClip, NonZero)
	require.NoError(t, err)
	require.Len(t, result, 1)
	require.InDelta(t, 2500, Area(result[0]), 0.5)
	requireSameRings(t, Paths64{MakePath64(50, 50, 100, 50, 100, 100, 50, 100)}, result)
}

func TestUnionOverlappingSquares(t *testing.T) {
	result, err := Union64(testSubject, testClip, NonZero)
	require.NoError(t, err)
	require.Len(t, result, 1)
	require.InDelta(t, 17500, Area(result[0]), 0.5)
}

func TestDifferenceOverlappingSquares(t *testing.T) {
	result, err := Difference64(testSubject, testClip, NonZero)
	require.NoError(t, err)
	require.Len(t, result, 1)
	require.InDelta(t, 7500, Area(result[0]), 0.5)
}

func TestXorOverlappingSquares(t *testing.T) {
	result, err := Xor64(testSubject, testClip, NonZero)
	require.NoError(t, err)
	require.Len(t, result, 2)
	require.InDelta(t, 15000, AreaPaths(result), 1)
}

func TestBooleanOpsCommute(t *testing.T) {
	for _, op := range []ClipType{Intersection, Union, Xor} {
		ab, err := BooleanOp64(op, NonZero, testSubject, testClip)
		require.NoError(t, err)
		ba, err := BooleanOp64(op, NonZero, testClip, testSubject)
		require.NoError(t, err)
		requireSameRings(t, ab, ba)
	}
}

func TestDifferencePlusIntersectionRestoresSubject(t *testing.T) {
	diff, err := Difference64(testSubject, testClip, NonZero)
	require.NoError(t, err)
	inter, err := Intersect64(testSubject, testClip, NonZero)
	require.NoError(t, err)
	require.InDelta(t, Area(testSubject[0]), AreaPaths(diff)+AreaPaths(inter), 2)
}

func TestUnionIdempotentEvenOdd(t *testing.T) {
	once, err := Union64(testSubject, nil, EvenOdd)
	require.NoError(t, err)
	twice, err := Union64(once, nil, EvenOdd)
	require.NoError(t, err)
	requireSameRings(t, once, twice)
}

func TestUnionDisjointSquares(t *testing.T) {
	clip := Paths64{MakePath64(200, 200, 300, 200, 300, 300, 200, 300)}
	result, err := Union64(testSubject, clip, NonZero)
	require.NoError(t, err)
	require.Len(t, result, 2)
	require.InDelta(t, 20000, AreaPaths(result), 1)
}

func TestIntersectDisjointSquares(t *testing.T) {
	clip := Paths64{MakePath64(200, 200, 300, 200, 300, 300, 200, 300)}
	result, err := Intersect64(testSubject, clip, NonZero)
	require.NoError(t, err)
	require.Empty(t, result)
}

func TestSelfIntersectingUnionEvenOdd(t *testing.T) {
	// a bow-tie resolves into two triangles under EvenOdd
	bowtie := Paths64{MakePath64(0, 0, 100, 100, 100, 0, 0, 100)}
	result, err := Union64(bowtie, nil, EvenOdd)
	require.NoError(t, err)
	require.Len(t, result, 2)
	require.InDelta(t, 5000, AreaPaths(result), 2)
}

func TestFillRules(t *testing.T) {
	// two nested same-winding squares: NonZero fills the outer, EvenOdd
	// punches the inner out as a hole
	nested := Paths64{
		MakePath64(0, 0, 100, 0, 100, 100, 0, 100),
		MakePath64(25, 25, 75, 25, 75, 75, 25, 75),
	}

	nz, err := Union64(nested, nil, NonZero)
	require.NoError(t, err)
	require.InDelta(t, 10000, AreaPaths(nz), 1)

	eo, err := Union64(nested, nil, EvenOdd)
	require.NoError(t, err)
	require.Len(t, eo, 2)
	require.InDelta(t, 7500, AreaPaths(eo), 1)

	// under Positive the negatively wound square becomes a hole
	mixed := Paths64{
		nested[0],
		ReversePath(nested[1]),
	}
	pos, err := BooleanOp64(Union, Positive, mixed, nil)
	require.NoError(t, err)
	require.InDelta(t, 7500, AreaPaths(pos), 1)
}

func TestEmptyAndDegenerateInputs(t *testing.T) {
	result, err := Union64(nil, nil, NonZero)
	require.NoError(t, err)
	require.Empty(t, result)

	degenerate := Paths64{MakePath64(0, 0, 10, 0), MakePath64(5, 5)}
	result, err = Union64(degenerate, nil, NonZero)
	require.NoError(t, err)
	require.Empty(t, result)
}

func TestNoClipReturnsEmpty(t *testing.T) {
	var solution Paths64
	c := NewClipper64()
	c.AddSubject(testSubject)
	require.True(t, c.Execute(NoClip, NonZero, &solution, nil))
	require.Empty(t, solution)
}

func TestEngineReuse(t *testing.T) {
	c := NewClipper64()
	c.AddSubject(testSubject)
	c.AddClip(testClip)

	var first, second Paths64
	require.True(t, c.Execute(Intersection, NonZero, &first, nil))
	require.True(t, c.Execute(Intersection, NonZero, &second, nil))
	requireSameRings(t, first, second)

	c.Clear()
	var third Paths64
	require.True(t, c.Execute(Intersection, NonZero, &third, nil))
	require.Empty(t, third)
}

func TestPreserveCollinear(t *testing.T) {
	subject := Paths64{MakePath64(0, 0, 50, 0, 100, 0, 100, 100, 0, 100)}

	c := NewClipper64()
	c.AddSubject(subject)
	var solution Paths64
	require.True(t, c.Execute(Union, NonZero, &solution, nil))
	require.Len(t, solution, 1)
	require.Len(t, solution[0], 4, "collinear vertex dropped by default")

	c2 := NewClipper64()
	c2.PreserveCollinear = true
	c2.AddSubject(subject)
	require.True(t, c2.Execute(Union, NonZero, &solution, nil))
	require.Len(t, solution, 1)
	require.Len(t, solution[0], 5, "collinear vertex kept")
}

func TestReverseSolution(t *testing.T) {
	c := NewClipper64()
	c.ReverseSolution = true
	c.AddSubject(testSubject)
	var solution Paths64
	require.True(t, c.Execute(Union, NonZero, &solution, nil))
	require.Len(t, solution, 1)
	require.Less(t, Area(solution[0]), 0.0)
}

func TestZCallbackInvoked(t *testing.T) {
	calls := 0
	c := NewClipper64()
	c.SetZCallback(func(bot1, top1, bot2, top2 Point64, ip *Point64) {
		calls++
		ip.Z = 42
	})
	c.AddSubject(testSubject)
	c.AddClip(testClip)

	var solution Paths64
	require.True(t, c.Execute(Intersection, NonZero, &solution, nil))
	require.Greater(t, calls, 0)

	found := false
	for _, path := range solution {
		for _, pt := range path {
			if pt.Z == 42 {
				found = true
			}
		}
	}
	require.True(t, found, "computed intersections should carry the callback Z")
}

func TestZCarriedThroughVerbatim(t *testing.T) {
	subject := Paths64{{
		{X: 0, Y: 0, Z: 7}, {X: 100, Y: 0, Z: 7},
		{X: 100, Y: 100, Z: 7}, {X: 0, Y: 100, Z: 7},
	}}
	result, err := Union64(subject, nil, NonZero)
	require.NoError(t, err)
	require.Len(t, result, 1)
	for _, pt := range result[0] {
		require.Equal(t, int64(7), pt.Z)
	}
}

func TestBooleanOpValidation(t *testing.T) {
	_, err := BooleanOp64(ClipType(99), NonZero, testSubject, testClip)
	require.ErrorIs(t, err, ErrInvalidClipType)

	_, err = BooleanOp64(Union, FillRule(99), testSubject, testClip)
	require.ErrorIs(t, err, ErrInvalidFillRule)
}

func TestMaxCoordInputs(t *testing.T) {
	// near-limit coordinates must survive the exact kernel
	big := int64(MaxCoord / 2)
	subject := Paths64{MakePath64(-big, -big, big, -big, big, big, -big, big)}
	clip := Paths64{MakePath64(0, 0, big, 0, big, big, 0, big)}
	result, err := Intersect64(subject, clip, NonZero)
	require.NoError(t, err)
	require.Len(t, result, 1)
	want := float64(big) * float64(big)
	require.InDelta(t, want, Area(result[0]), want*1e-9)
}
