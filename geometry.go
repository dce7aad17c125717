package polyclip

import "math"

// Geometric predicates and small path utilities shared by the engine, the
// offsetter, the rectangle clipper and the triangulator. All sign decisions
// use the exact 128-bit kernel; float64 appears only where a coordinate is
// interpolated and immediately rounded.

// IsCollinear checks if three points are collinear using the exact kernel.
func IsCollinear(p1, p2, p3 Point64) bool {
	return CrossProduct128(p1, p2, p3).IsZero()
}

// crossProductD calculates the z-component of the cross product of two
// float64 vectors.
func crossProductD(v1, v2 PointD) float64 {
	return v1.X*v2.Y - v1.Y*v2.X
}

// dotProductD calculates the dot product of two float64 vectors.
func dotProductD(v1, v2 PointD) float64 {
	return v1.X*v2.X + v1.Y*v2.Y
}

// getSegmentIntersectPt returns the point at which two segments intersect,
// projected onto segment 1 and rounded to integer coordinates. Returns false
// for parallel segments.
func getSegmentIntersectPt(ln1a, ln1b, ln2a, ln2b Point64) (Point64, bool) {
	dy1 := float64(ln1b.Y - ln1a.Y)
	dx1 := float64(ln1b.X - ln1a.X)
	dy2 := float64(ln2b.Y - ln2a.Y)
	dx2 := float64(ln2b.X - ln2a.X)

	det := dy1*dx2 - dy2*dx1
	if det == 0 {
		return Point64{}, false
	}
	t := (float64(ln1a.X-ln2a.X)*dy2 - float64(ln1a.Y-ln2a.Y)*dx2) / det
	switch {
	case t <= 0:
		return ln1a, true
	case t >= 1:
		return ln1b, true
	default:
		return Point64{
			X: ln1a.X + int64(math.Round(t*dx1)),
			Y: ln1a.Y + int64(math.Round(t*dy1)),
		}, true
	}
}

// segsIntersect reports whether two segments cross. When inclusive is true,
// segments that merely touch at a point also count, though fully collinear
// overlaps do not.
func segsIntersect(seg1a, seg1b, seg2a, seg2b Point64, inclusive bool) bool {
	if inclusive {
		res1 := crossProductSign(seg1a, seg2a, seg2b)
		res2 := crossProductSign(seg1b, seg2a, seg2b)
		if res1*res2 > 0 {
			return false
		}
		res3 := crossProductSign(seg2a, seg1a, seg1b)
		res4 := crossProductSign(seg2b, seg1a, seg1b)
		if res3*res4 > 0 {
			return false
		}
		return res1 != 0 || res2 != 0 || res3 != 0 || res4 != 0
	}
	return crossProductSign(seg1a, seg2a, seg2b)*crossProductSign(seg1b, seg2a, seg2b) < 0 &&
		crossProductSign(seg2a, seg1a, seg1b)*crossProductSign(seg2b, seg1a, seg1b) < 0
}

// perpendicDistFromLineSqrd returns the squared perpendicular distance of pt
// from the infinite line through ln1 and ln2.
func perpendicDistFromLineSqrd(pt, ln1, ln2 Point64) float64 {
	a := float64(pt.X - ln1.X)
	b := float64(pt.Y - ln1.Y)
	c := float64(ln2.X - ln1.X)
	d := float64(ln2.Y - ln1.Y)
	if c == 0 && d == 0 {
		return 0
	}
	e := a*d - c*b
	return e * e / (c*c + d*d)
}

// getClosestPtOnSegment projects offPt onto the segment seg1-seg2 and clamps
// to the segment's extent.
func getClosestPtOnSegment(offPt, seg1, seg2 Point64) Point64 {
	if seg1.X == seg2.X && seg1.Y == seg2.Y {
		return seg1
	}
	dx := float64(seg2.X - seg1.X)
	dy := float64(seg2.Y - seg1.Y)
	q := (float64(offPt.X-seg1.X)*dx + float64(offPt.Y-seg1.Y)*dy) / (dx*dx + dy*dy)
	if q < 0 {
		q = 0
	} else if q > 1 {
		q = 1
	}
	return Point64{
		X: seg1.X + int64(math.Round(q*dx)),
		Y: seg1.Y + int64(math.Round(q*dy)),
	}
}

// PointInPolygon determines if a point is inside, outside, or on the boundary
// of a polygon, independent of the polygon's orientation.
func PointInPolygon(pt Point64, polygon Path64) PointInPolygonResult {
	n := len(polygon)
	if n < 3 {
		return PointOutside
	}
	start := 0
	for start < n && polygon[start].Y == pt.Y {
		start++
	}
	if start == n {
		return PointOutside
	}

	isAbove := polygon[start].Y < pt.Y
	startingAbove := isAbove
	val := 0
	i := start + 1
	end := n
	for {
		if i == end {
			if end == 0 || start == 0 {
				break
			}
			end = start
			i = 0
		}
		if isAbove {
			for i < end && polygon[i].Y < pt.Y {
				i++
			}
		} else {
			for i < end && polygon[i].Y > pt.Y {
				i++
			}
		}
		if i == end {
			continue
		}

		curr := polygon[i]
		var prev Point64
		if i > 0 {
			prev = polygon[i-1]
		} else {
			prev = polygon[n-1]
		}

		if curr.Y == pt.Y {
			if curr.X == pt.X || (curr.Y == prev.Y && (pt.X < prev.X) != (pt.X < curr.X)) {
				return PointOnEdge
			}
			i++
			if i == start {
				break
			}
			continue
		}

		if pt.X < curr.X && pt.X < prev.X {
			// crossing is to the right of pt; not counted
		} else if pt.X > prev.X && pt.X > curr.X {
			val = 1 - val
		} else {
			d := crossProductSign(prev, curr, pt)
			if d == 0 {
				return PointOnEdge
			}
			if (d < 0) == isAbove {
				val = 1 - val
			}
		}
		isAbove = !isAbove
		i++
	}

	if isAbove != startingAbove {
		if i == n {
			i = 0
		}
		var d int
		if i == 0 {
			d = crossProductSign(polygon[n-1], polygon[0], pt)
		} else {
			d = crossProductSign(polygon[i-1], polygon[i], pt)
		}
		if d == 0 {
			return PointOnEdge
		}
		if (d < 0) == isAbove {
			val = 1 - val
		}
	}

	if val == 0 {
		return PointOutside
	}
	return PointInside
}

// ==============================================================================
// Path utilities
// ==============================================================================

// GetBounds returns the bounding rectangle of a path, or the zero Rect64 when
// the path is empty.
func GetBounds(path Path64) Rect64 {
	bounds := InvalidRect64
	for _, pt := range path {
		if pt.X < bounds.Left {
			bounds.Left = pt.X
		}
		if pt.X > bounds.Right {
			bounds.Right = pt.X
		}
		if pt.Y < bounds.Top {
			bounds.Top = pt.Y
		}
		if pt.Y > bounds.Bottom {
			bounds.Bottom = pt.Y
		}
	}
	if !bounds.IsValid() {
		return Rect64{}
	}
	return bounds
}

// GetBoundsPaths returns the bounding rectangle of multiple paths.
func GetBoundsPaths(paths Paths64) Rect64 {
	bounds := InvalidRect64
	for _, path := range paths {
		for _, pt := range path {
			if pt.X < bounds.Left {
				bounds.Left = pt.X
			}
			if pt.X > bounds.Right {
				bounds.Right = pt.X
			}
			if pt.Y < bounds.Top {
				bounds.Top = pt.Y
			}
			if pt.Y > bounds.Bottom {
				bounds.Bottom = pt.Y
			}
		}
	}
	if !bounds.IsValid() {
		return Rect64{}
	}
	return bounds
}

// ReversePath returns a new path with the points in reverse order.
func ReversePath(path Path64) Path64 {
	result := make(Path64, len(path))
	for i, pt := range path {
		result[len(path)-1-i] = pt
	}
	return result
}

// ReversePaths returns a new collection with every path reversed.
func ReversePaths(paths Paths64) Paths64 {
	result := make(Paths64, len(paths))
	for i, path := range paths {
		result[i] = ReversePath(path)
	}
	return result
}

// StripDuplicates removes consecutive duplicate points; for closed paths the
// implicit closing duplicate is also dropped.
func StripDuplicates(path Path64, isClosedPath bool) Path64 {
	if len(path) == 0 {
		return Path64{}
	}
	result := make(Path64, 0, len(path))
	result = append(result, path[0])
	for _, pt := range path[1:] {
		if !samePoint(pt, result[len(result)-1]) {
			result = append(result, pt)
		}
	}
	if isClosedPath && len(result) > 1 && samePoint(result[0], result[len(result)-1]) {
		result = result[:len(result)-1]
	}
	return result
}

// TranslatePath shifts every point of a path by (dx, dy).
func TranslatePath(path Path64, dx, dy int64) Path64 {
	result := make(Path64, len(path))
	for i, pt := range path {
		result[i] = Point64{X: pt.X + dx, Y: pt.Y + dy, Z: pt.Z}
	}
	return result
}

// TranslatePaths shifts every point of every path by (dx, dy).
func TranslatePaths(paths Paths64, dx, dy int64) Paths64 {
	result := make(Paths64, len(paths))
	for i, path := range paths {
		result[i] = TranslatePath(path, dx, dy)
	}
	return result
}

// Ellipse64 generates an elliptical path (a circle when radiusY <= 0 or the
// radii match). When steps <= 2 the step count is ceil(pi*sqrt(mean radius)).
func Ellipse64(center Point64, radiusX, radiusY float64, steps int) Path64 {
	if radiusX <= 0 {
		return Path64{}
	}
	if radiusY <= 0 {
		radiusY = radiusX
	}
	if steps <= 2 {
		steps = int(math.Ceil(math.Pi * math.Sqrt((radiusX+radiusY)/2)))
	}
	si := math.Sin(2 * math.Pi / float64(steps))
	co := math.Cos(2 * math.Pi / float64(steps))
	dx, dy := co, si
	result := make(Path64, 0, steps)
	result = append(result, Point64{X: center.X + int64(math.Round(radiusX)), Y: center.Y})
	for i := 1; i < steps; i++ {
		result = append(result, Point64{
			X: center.X + int64(math.Round(radiusX*dx)),
			Y: center.Y + int64(math.Round(radiusY*dy)),
		})
		dx, dy = dx*co-dy*si, dy*co+dx*si
	}
	return result
}
