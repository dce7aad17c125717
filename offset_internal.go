package polyclip

import "math"

// Float helpers for the offsetter: unit normals, perpendicular points and
// the odd segment intersection in float space.

const (
	floatingPointTolerance = 1e-12
	arcConst               = 0.002 // 1/500 - default arc tolerance ratio
)

// negateD negates the coordinates of a PointD.
func (p *PointD) negate() {
	p.X = -p.X
	p.Y = -p.Y
}

func hypot(x, y float64) float64 {
	return math.Sqrt(x*x + y*y)
}

func almostZero(value, epsilon float64) bool {
	return math.Abs(value) < epsilon
}

// getUnitNormal calculates the perpendicular unit vector of the edge pt1->pt2
// (rotated 90 degrees clockwise).
func getUnitNormal(pt1, pt2 Point64) PointD {
	if samePoint(pt1, pt2) {
		return PointD{}
	}
	dx := float64(pt2.X - pt1.X)
	dy := float64(pt2.Y - pt1.Y)
	inverseHypot := 1.0 / hypot(dx, dy)
	dx *= inverseHypot
	dy *= inverseHypot
	return PointD{X: dy, Y: -dx}
}

// getPerpendic offsets pt by delta along the normal.
func getPerpendic(pt Point64, norm PointD, delta float64) Point64 {
	return Point64{
		X: pt.X + int64(math.Round(norm.X*delta)),
		Y: pt.Y + int64(math.Round(norm.Y*delta)),
		Z: pt.Z,
	}
}

// getPerpendicD offsets pt by delta along the normal, staying in float space.
func getPerpendicD(pt Point64, norm PointD, delta float64) PointD {
	return PointD{
		X: float64(pt.X) + norm.X*delta,
		Y: float64(pt.Y) + norm.Y*delta,
	}
}

// isClosedEndType reports whether the end type represents a closed path.
func isClosedEndType(et EndType) bool {
	return et == EndPolygon || et == EndJoined
}

// getLowestClosedPathInfo finds the path containing the overall lowest point
// and reports whether that path has negative area; this decides the group's
// effective orientation.
func getLowestClosedPathInfo(paths Paths64) (lowestIdx int, isNegArea bool) {
	lowestIdx = -1
	botPt := Point64{X: math.MaxInt64, Y: math.MinInt64}
	for i := range paths {
		a := math.MaxFloat64
		for _, pt := range paths[i] {
			if pt.Y < botPt.Y || (pt.Y == botPt.Y && pt.X >= botPt.X) {
				continue
			}
			if a == math.MaxFloat64 {
				a = Area(paths[i])
				if a == 0 {
					break // invalid closed path
				}
				isNegArea = a < 0
			}
			lowestIdx = i
			botPt.X = pt.X
			botPt.Y = pt.Y
		}
	}
	return lowestIdx, isNegArea
}

func normalizeVector(vec PointD) PointD {
	h := hypot(vec.X, vec.Y)
	if almostZero(h, 0.001) {
		return PointD{}
	}
	inverseHypot := 1.0 / h
	return PointD{X: vec.X * inverseHypot, Y: vec.Y * inverseHypot}
}

func getAvgUnitVector(vec1, vec2 PointD) PointD {
	return normalizeVector(PointD{X: vec1.X + vec2.X, Y: vec1.Y + vec2.Y})
}

func translatePointD(pt PointD, dx, dy float64) PointD {
	return PointD{X: pt.X + dx, Y: pt.Y + dy}
}

// reflectPointD reflects pt through pivot.
func reflectPointD(pt, pivot PointD) PointD {
	return PointD{
		X: pivot.X + (pivot.X - pt.X),
		Y: pivot.Y + (pivot.Y - pt.Y),
	}
}

// getSegmentIntersectPtD finds the intersection of two float segments,
// returning false when they are parallel or do not overlap.
func getSegmentIntersectPtD(ln1a, ln1b, ln2a, ln2b PointD) (PointD, bool) {
	ln1dy := ln1b.Y - ln1a.Y
	ln1dx := ln1a.X - ln1b.X
	ln2dy := ln2b.Y - ln2a.Y
	ln2dx := ln2a.X - ln2b.X
	det := ln2dy*ln1dx - ln1dy*ln2dx
	if det == 0 {
		return PointD{}, false
	}

	bb0minx := math.Min(ln1a.X, ln1b.X)
	bb0miny := math.Min(ln1a.Y, ln1b.Y)
	bb0maxx := math.Max(ln1a.X, ln1b.X)
	bb0maxy := math.Max(ln1a.Y, ln1b.Y)
	bb1minx := math.Min(ln2a.X, ln2b.X)
	bb1miny := math.Min(ln2a.Y, ln2b.Y)
	bb1maxx := math.Max(ln2a.X, ln2b.X)
	bb1maxy := math.Max(ln2a.Y, ln2b.Y)

	if bb0maxx < bb1minx || bb1maxx < bb0minx || bb0maxy < bb1miny || bb1maxy < bb0miny {
		return PointD{}, false
	}

	c1 := ln1dy*ln1a.X + ln1dx*ln1a.Y
	c2 := ln2dy*ln2a.X + ln2dx*ln2a.Y
	ip := PointD{
		X: (c2*ln1dx - c1*ln2dx) / det,
		Y: (c1*ln2dy - c2*ln1dy) / det,
	}

	if ip.X < bb0minx || ip.X > bb0maxx || ip.Y < bb0miny || ip.Y > bb0maxy {
		return PointD{}, false
	}
	if ip.X < bb1minx || ip.X > bb1maxx || ip.Y < bb1miny || ip.Y > bb1maxy {
		return PointD{}, false
	}
	return ip, true
}

// negatePath flips the direction of every normal.
func negatePath(norms []PointD) {
	for i := range norms {
		norms[i].X = -norms[i].X
		norms[i].Y = -norms[i].Y
	}
}
