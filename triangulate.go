package polyclip

import (
	"math"
	"sort"
)

// ==============================================================================
// Constrained triangulation
// ==============================================================================
// Triangulates a set of closed polygons (outer rings with oppositely wound
// holes) by a sweep over the shared integer vertex model: vertices are
// visited in sweep order, an active edge list tracks the open left-chain
// edges, and split/merge vertices (the inward-turning local extrema) emit
// diagonals that cut the input into y-monotone pieces. Each piece is
// triangulated with the usual two-chain stack walk. When requested, interior
// edges are then legalized by Delaunay flips driven by the in-circle
// determinant.

type triVertexKind uint8

const (
	triRegular triVertexKind = iota
	triStart
	triEnd
	triSplit // inward local extremum opening a cavity
	triMerge // inward local extremum closing a cavity
)

// triStatusEdge is an open edge in the sweep's active list.
type triStatusEdge struct {
	upper  int // vertex id at the edge's upper end (the edge's origin)
	lower  int
	helper int
}

type triangulator struct {
	pts    []Point64
	next   []int // ring successor per vertex
	prev   []int // ring predecessor per vertex
	order  []int // vertex ids in sweep order
	kinds  []triVertexKind
	status []triStatusEdge
	diags  [][2]int
	failed bool
}

// Triangulate triangulates closed polygons, optionally legalizing interior
// edges to the Delaunay criterion. Holes must wind opposite to outer rings.
// Output triangles are positive-area 3-point paths.
func Triangulate(paths Paths64, useDelaunay bool) (TriangulateResult, Paths64) {
	t := &triangulator{}
	if !t.build(paths) {
		return TriangulateNoPolygons, nil
	}
	if res := t.repairIntersections(); res != TriangulateSuccess {
		return res, nil
	}
	t.classify()

	faces := t.sweep()
	if t.failed {
		return TriangulateFail, nil
	}

	var tris [][3]int
	for _, face := range faces {
		ft := t.triangulateMonotone(face)
		if t.failed {
			return TriangulateFail, nil
		}
		tris = append(tris, ft...)
	}
	if len(tris) == 0 {
		return TriangulateFail, nil
	}

	if useDelaunay {
		tris = t.legalize(tris)
		if t.failed {
			return TriangulateFail, nil
		}
	}

	result := make(Paths64, 0, len(tris))
	for _, tri := range tris {
		a, b, c := t.pts[tri[0]], t.pts[tri[1]], t.pts[tri[2]]
		if crossProductSign(a, b, c) < 0 {
			b, c = c, b
		}
		result = append(result, Path64{a, b, c})
	}
	return TriangulateSuccess, result
}

// sweepBefore orders vertices top to bottom: larger Y first, ties by
// smaller X.
func sweepBefore(a, b Point64) bool {
	if a.Y != b.Y {
		return a.Y > b.Y
	}
	return a.X < b.X
}

// build strips degenerate rings, links vertex rings and normalizes the
// global orientation so outer rings wind positively.
func (t *triangulator) build(paths Paths64) bool {
	type ringInfo struct {
		first, last int
	}
	var rings []ringInfo
	for _, path := range paths {
		clean := StripDuplicates(path, true)
		if len(clean) < 3 || Area128(clean).IsZero() {
			continue
		}
		first := len(t.pts)
		for _, pt := range clean {
			t.pts = append(t.pts, pt)
		}
		rings = append(rings, ringInfo{first: first, last: len(t.pts) - 1})
	}
	if len(rings) == 0 {
		return false
	}

	t.next = make([]int, len(t.pts))
	t.prev = make([]int, len(t.pts))
	for _, r := range rings {
		for i := r.first; i <= r.last; i++ {
			n := i + 1
			if n > r.last {
				n = r.first
			}
			t.next[i] = n
			t.prev[n] = i
		}
	}

	// the ring holding the globally lowest vertex must be an outer ring; if
	// it winds negatively the caller's orientation convention is inverted,
	// so flip every ring
	lowest := 0
	for i := range t.pts {
		p, q := t.pts[i], t.pts[lowest]
		if p.Y < q.Y || (p.Y == q.Y && p.X < q.X) {
			lowest = i
		}
	}
	lowRing := rings[0]
	for _, r := range rings {
		if lowest >= r.first && lowest <= r.last {
			lowRing = r
			break
		}
	}
	ringPath := make(Path64, 0, lowRing.last-lowRing.first+1)
	for i := lowRing.first; i <= lowRing.last; i++ {
		ringPath = append(ringPath, t.pts[i])
	}
	if Area128(ringPath).IsNegative() {
		for i := range t.pts {
			t.next[i], t.prev[i] = t.prev[i], t.next[i]
		}
	}
	return true
}

// repairIntersections runs an exact pairwise crossing test over all ring
// edges. Crossings within one unit of an edge endpoint are treated as
// rounding damage and the endpoint is snapped onto the crossing; any other
// crossing aborts the triangulation.
func (t *triangulator) repairIntersections() TriangulateResult {
	type edgeRef struct {
		a, b int
		minX int64
		maxX int64
	}
	edges := make([]edgeRef, 0, len(t.pts))
	for i := range t.pts {
		j := t.next[i]
		e := edgeRef{a: i, b: j}
		e.minX = min64(t.pts[i].X, t.pts[j].X)
		e.maxX = max64(t.pts[i].X, t.pts[j].X)
		edges = append(edges, e)
	}
	sort.Slice(edges, func(i, j int) bool { return edges[i].minX < edges[j].minX })

	for pass := 0; pass < 2; pass++ {
		snapped := false
		for i := 0; i < len(edges); i++ {
			e1 := edges[i]
			p1, p2 := t.pts[e1.a], t.pts[e1.b]
			for j := i + 1; j < len(edges); j++ {
				e2 := edges[j]
				if e2.minX > e1.maxX {
					break
				}
				if e1.a == e2.a || e1.a == e2.b || e1.b == e2.a || e1.b == e2.b {
					continue
				}
				p3, p4 := t.pts[e2.a], t.pts[e2.b]
				if !segsIntersect(p1, p2, p3, p4, false) {
					continue
				}
				ip, ok := getSegmentIntersectPt(p1, p2, p3, p4)
				if !ok {
					return TriangulatePathsIntersect
				}
				// snap an endpoint within one unit of the crossing
				snapIdx := -1
				for _, idx := range []int{e1.a, e1.b, e2.a, e2.b} {
					d := DistanceSquared128(ip, t.pts[idx])
					if d.Hi == 0 && d.Lo <= 2 {
						snapIdx = idx
						break
					}
				}
				if snapIdx < 0 {
					return TriangulatePathsIntersect
				}
				t.pts[snapIdx] = Point64{X: ip.X, Y: ip.Y, Z: t.pts[snapIdx].Z}
				snapped = true
				p1, p2 = t.pts[e1.a], t.pts[e1.b]
			}
		}
		if !snapped {
			break
		}
	}
	return TriangulateSuccess
}

// classify tags every vertex and fixes the sweep order.
func (t *triangulator) classify() {
	n := len(t.pts)
	t.kinds = make([]triVertexKind, n)
	t.order = make([]int, n)
	for i := range t.order {
		t.order[i] = i
	}
	sort.SliceStable(t.order, func(i, j int) bool {
		return sweepBefore(t.pts[t.order[i]], t.pts[t.order[j]])
	})

	for v := range t.pts {
		pv := t.pts[t.prev[v]]
		nv := t.pts[t.next[v]]
		cv := t.pts[v]
		prevBelow := sweepBefore(cv, pv)
		nextBelow := sweepBefore(cv, nv)
		convex := crossProductSign(pv, cv, nv) >= 0
		switch {
		case prevBelow && nextBelow:
			if convex {
				t.kinds[v] = triStart
			} else {
				t.kinds[v] = triSplit
			}
		case !prevBelow && !nextBelow:
			if convex {
				t.kinds[v] = triEnd
			} else {
				t.kinds[v] = triMerge
			}
		default:
			t.kinds[v] = triRegular
		}
	}
}

// edgeXAt returns the status edge's X at the sweep position of pt.
func (t *triangulator) edgeXAt(e triStatusEdge, pt Point64) float64 {
	u, l := t.pts[e.upper], t.pts[e.lower]
	if u.Y == l.Y {
		return float64(min64(u.X, l.X))
	}
	f := float64(pt.Y-u.Y) / float64(l.Y-u.Y)
	return float64(u.X) + f*float64(l.X-u.X)
}

func (t *triangulator) insertStatus(upper, helper int) {
	t.status = append(t.status, triStatusEdge{upper: upper, lower: t.next[upper], helper: helper})
}

func (t *triangulator) removeStatusByUpper(upper int) {
	for i := range t.status {
		if t.status[i].upper == upper {
			t.status = append(t.status[:i], t.status[i+1:]...)
			return
		}
	}
}

// statusLeftOf finds the active edge directly left of v.
func (t *triangulator) statusLeftOf(v int) int {
	pt := t.pts[v]
	best := -1
	bestX := math.Inf(-1)
	for i := range t.status {
		x := t.edgeXAt(t.status[i], pt)
		if x <= float64(pt.X) && x > bestX {
			bestX = x
			best = i
		}
	}
	return best
}

func (t *triangulator) addDiagonal(a, b int) {
	if a == b || t.next[a] == b || t.next[b] == a {
		return
	}
	for _, d := range t.diags {
		if (d[0] == a && d[1] == b) || (d[0] == b && d[1] == a) {
			return
		}
	}
	t.diags = append(t.diags, [2]int{a, b})
}

// sweep partitions the input into y-monotone faces.
func (t *triangulator) sweep() [][]int {
	t.status = t.status[:0]
	t.diags = t.diags[:0]

	for _, v := range t.order {
		switch t.kinds[v] {
		case triStart:
			t.insertStatus(v, v)

		case triEnd:
			t.finishEdge(t.prev[v], v)

		case triSplit:
			i := t.statusLeftOf(v)
			if i < 0 {
				t.failed = true
				return nil
			}
			t.addDiagonal(v, t.status[i].helper)
			t.status[i].helper = v
			t.insertStatus(v, v)

		case triMerge:
			t.finishEdge(t.prev[v], v)
			i := t.statusLeftOf(v)
			if i < 0 {
				t.failed = true
				return nil
			}
			if t.kinds[t.status[i].helper] == triMerge {
				t.addDiagonal(v, t.status[i].helper)
			}
			t.status[i].helper = v

		default: // regular
			pv := t.pts[t.prev[v]]
			nv := t.pts[t.next[v]]
			cv := t.pts[v]
			interiorRight := !sweepBefore(cv, pv) && sweepBefore(cv, nv)
			if interiorRight {
				// descending chain: close the edge arriving from above and
				// open the one continuing below
				t.finishEdge(t.prev[v], v)
				t.insertStatus(v, v)
			} else {
				i := t.statusLeftOf(v)
				if i < 0 {
					t.failed = true
					return nil
				}
				if t.kinds[t.status[i].helper] == triMerge {
					t.addDiagonal(v, t.status[i].helper)
				}
				t.status[i].helper = v
			}
		}
	}
	return t.extractFaces()
}

// finishEdge closes the status edge originating at upper, emitting the
// pending merge diagonal when one is owed.
func (t *triangulator) finishEdge(upper, v int) {
	for i := range t.status {
		if t.status[i].upper == upper {
			if t.kinds[t.status[i].helper] == triMerge {
				t.addDiagonal(v, t.status[i].helper)
			}
			t.status = append(t.status[:i], t.status[i+1:]...)
			return
		}
	}
}

// extractFaces walks the planar subdivision formed by the ring edges plus
// both directions of every diagonal, returning each interior face.
func (t *triangulator) extractFaces() [][]int {
	type halfEdge struct {
		from, to int
	}
	var hes []halfEdge
	for v := range t.pts {
		hes = append(hes, halfEdge{from: v, to: t.next[v]})
	}
	for _, d := range t.diags {
		hes = append(hes, halfEdge{from: d[0], to: d[1]})
		hes = append(hes, halfEdge{from: d[1], to: d[0]})
	}

	// outgoing half-edges per vertex, sorted counter-clockwise by angle
	out := make(map[int][]int)
	for i, he := range hes {
		out[he.from] = append(out[he.from], i)
	}
	angle := func(from, to int) float64 {
		return math.Atan2(float64(t.pts[to].Y-t.pts[from].Y), float64(t.pts[to].X-t.pts[from].X))
	}
	for v, list := range out {
		sort.Slice(list, func(i, j int) bool {
			return angle(v, hes[list[i]].to) < angle(v, hes[list[j]].to)
		})
		out[v] = list
	}

	// nextHE: arriving at v along he, leave along the outgoing edge
	// immediately clockwise of the reversed arrival direction
	nextHE := func(heIdx int) int {
		he := hes[heIdx]
		v := he.to
		revAngle := angle(v, he.from)
		list := out[v]
		// find the outgoing edge with the largest angle strictly below
		// revAngle, wrapping cyclically; the exact reverse edge itself (a
		// diagonal twin) is stepped over
		best := -1
		var bestAngle float64
		for _, idx := range list {
			a := angle(v, hes[idx].to)
			if a < revAngle && (best < 0 || a > bestAngle) {
				best = idx
				bestAngle = a
			}
		}
		if best < 0 {
			// wrap: take the overall largest angle, skipping the exact twin
			for _, idx := range list {
				a := angle(v, hes[idx].to)
				if hes[idx].to == he.from && a == revAngle {
					continue
				}
				if best < 0 || a > bestAngle {
					best = idx
					bestAngle = a
				}
			}
		}
		return best
	}

	visited := make([]bool, len(hes))
	var faces [][]int
	for i := range hes {
		if visited[i] {
			continue
		}
		var face []int
		j := i
		for !visited[j] {
			visited[j] = true
			face = append(face, hes[j].from)
			j = nextHE(j)
			if j < 0 || len(face) > len(hes) {
				t.failed = true
				return nil
			}
		}
		if j != i {
			t.failed = true
			return nil
		}
		// keep interior (positively wound) faces only
		facePath := make(Path64, len(face))
		for k, v := range face {
			facePath[k] = t.pts[v]
		}
		if !Area128(facePath).IsNegative() && !Area128(facePath).IsZero() {
			faces = append(faces, face)
		}
	}
	return faces
}

// triangulateMonotone runs the two-chain stack walk over one y-monotone
// face.
func (t *triangulator) triangulateMonotone(face []int) [][3]int {
	n := len(face)
	if n < 3 {
		return nil
	}
	if n == 3 {
		return [][3]int{{face[0], face[1], face[2]}}
	}

	// locate the top and bottom of the face in sweep order
	top, bottom := 0, 0
	for i := 1; i < n; i++ {
		if sweepBefore(t.pts[face[i]], t.pts[face[top]]) {
			top = i
		}
		if sweepBefore(t.pts[face[bottom]], t.pts[face[i]]) {
			bottom = i
		}
	}

	// walking forward from the top descends the left chain
	type chainVertex struct {
		id   int
		left bool
	}
	var left, right []chainVertex
	for i := top; i != bottom; i = (i + 1) % n {
		left = append(left, chainVertex{id: face[i], left: true})
	}
	for i := top; i != bottom; i = (i - 1 + n) % n {
		if i != top {
			right = append(right, chainVertex{id: face[i], left: false})
		}
	}

	// merge both chains into sweep order
	merged := make([]chainVertex, 0, n)
	li, ri := 0, 0
	for li < len(left) || ri < len(right) {
		if ri == len(right) ||
			(li < len(left) && sweepBefore(t.pts[left[li].id], t.pts[right[ri].id])) {
			merged = append(merged, left[li])
			li++
		} else {
			merged = append(merged, right[ri])
			ri++
		}
	}
	merged = append(merged, chainVertex{id: face[bottom], left: true})

	var tris [][3]int
	emit := func(a, b, c int) {
		if crossProductSign(t.pts[a], t.pts[b], t.pts[c]) != 0 {
			tris = append(tris, [3]int{a, b, c})
		}
	}

	stack := []chainVertex{merged[0], merged[1]}
	for j := 2; j < n-1; j++ {
		u := merged[j]
		if u.left != stack[len(stack)-1].left {
			// opposite chain: fan to every stacked vertex
			for len(stack) > 1 {
				v1 := stack[len(stack)-1]
				v2 := stack[len(stack)-2]
				emit(u.id, v1.id, v2.id)
				stack = stack[:len(stack)-1]
			}
			stack = []chainVertex{merged[j-1], u}
		} else {
			v1 := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for len(stack) > 0 {
				v2 := stack[len(stack)-1]
				// the diagonal to v2 stays interior only while the chain
				// keeps turning toward it
				var ok bool
				if u.left {
					ok = crossProductSign(t.pts[u.id], t.pts[v1.id], t.pts[v2.id]) < 0
				} else {
					ok = crossProductSign(t.pts[u.id], t.pts[v1.id], t.pts[v2.id]) > 0
				}
				if !ok {
					break
				}
				emit(u.id, v1.id, v2.id)
				v1 = v2
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, v1, u)
		}
	}

	u := merged[n-1]
	for len(stack) > 1 {
		v1 := stack[len(stack)-1]
		v2 := stack[len(stack)-2]
		emit(u.id, v1.id, v2.id)
		stack = stack[:len(stack)-1]
	}
	return tris
}

// ==============================================================================
// Delaunay legalization
// ==============================================================================

type triEdgeKey struct {
	a, b int // a < b
}

func makeTriEdgeKey(a, b int) triEdgeKey {
	if a > b {
		a, b = b, a
	}
	return triEdgeKey{a: a, b: b}
}

// inCircle reports whether d lies strictly inside the circumcircle of the
// counter-clockwise triangle (a, b, c), via the sign of the 3x3 determinant.
func inCircle(a, b, c, d Point64) bool {
	ax := float64(a.X - d.X)
	ay := float64(a.Y - d.Y)
	bx := float64(b.X - d.X)
	by := float64(b.Y - d.Y)
	cx := float64(c.X - d.X)
	cy := float64(c.Y - d.Y)
	det := (ax*ax+ay*ay)*(bx*cy-cx*by) -
		(bx*bx+by*by)*(ax*cy-cx*ay) +
		(cx*cx+cy*cy)*(ax*by-bx*ay)
	return det > 0
}

// legalize flips interior edges until every edge satisfies the Delaunay
// criterion. Each flip strictly improves the triangulation, so the process
// terminates; a generous iteration cap guards the degenerate cases.
func (t *triangulator) legalize(tris [][3]int) [][3]int {
	// orient every triangle counter-clockwise
	for i := range tris {
		if crossProductSign(t.pts[tris[i][0]], t.pts[tris[i][1]], t.pts[tris[i][2]]) < 0 {
			tris[i][1], tris[i][2] = tris[i][2], tris[i][1]
		}
	}

	edgeTris := make(map[triEdgeKey][]int)
	for i, tri := range tris {
		for k := 0; k < 3; k++ {
			key := makeTriEdgeKey(tri[k], tri[(k+1)%3])
			edgeTris[key] = append(edgeTris[key], i)
		}
	}

	var stack []triEdgeKey
	for key, owners := range edgeTris {
		if len(owners) == 2 {
			stack = append(stack, key)
		}
	}

	third := func(tri [3]int, a, b int) int {
		for _, v := range tri {
			if v != a && v != b {
				return v
			}
		}
		return -1
	}

	maxFlips := 3 * len(tris) * len(tris)
	if maxFlips < 64 {
		maxFlips = 64
	}
	flips := 0
	for len(stack) > 0 {
		key := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		owners := edgeTris[key]
		if len(owners) != 2 {
			continue
		}
		t1, t2 := owners[0], owners[1]
		c := third(tris[t1], key.a, key.b)
		d := third(tris[t2], key.a, key.b)
		if c < 0 || d < 0 || c == d {
			continue
		}

		// triangles must sit on opposite sides of the shared edge
		s1 := crossProductSign(t.pts[key.a], t.pts[key.b], t.pts[c])
		s2 := crossProductSign(t.pts[key.a], t.pts[key.b], t.pts[d])
		if s1 == 0 || s2 == 0 || s1 == s2 {
			continue
		}

		var ca, cb, cc Point64
		if s1 > 0 {
			ca, cb, cc = t.pts[key.a], t.pts[key.b], t.pts[c]
		} else {
			ca, cb, cc = t.pts[key.b], t.pts[key.a], t.pts[c]
		}
		if !inCircle(ca, cb, cc, t.pts[d]) {
			continue
		}

		if flips++; flips > maxFlips {
			t.failed = true
			return tris
		}

		// flip: replace edge (a, b) with edge (c, d)
		remove := func(key triEdgeKey, tri int) {
			owners := edgeTris[key]
			for i, o := range owners {
				if o == tri {
					edgeTris[key] = append(owners[:i], owners[i+1:]...)
					break
				}
			}
		}
		for k := 0; k < 3; k++ {
			remove(makeTriEdgeKey(tris[t1][k], tris[t1][(k+1)%3]), t1)
			remove(makeTriEdgeKey(tris[t2][k], tris[t2][(k+1)%3]), t2)
		}

		tris[t1] = [3]int{c, key.a, d}
		tris[t2] = [3]int{c, d, key.b}
		for _, tri := range [2]int{t1, t2} {
			if crossProductSign(t.pts[tris[tri][0]], t.pts[tris[tri][1]], t.pts[tris[tri][2]]) < 0 {
				tris[tri][1], tris[tri][2] = tris[tri][2], tris[tri][1]
			}
			for k := 0; k < 3; k++ {
				key := makeTriEdgeKey(tris[tri][k], tris[tri][(k+1)%3])
				edgeTris[key] = append(edgeTris[key], tri)
			}
		}

		for _, e := range [][2]int{{key.a, c}, {c, key.b}, {key.b, d}, {d, key.a}, {c, d}} {
			k := makeTriEdgeKey(e[0], e[1])
			if len(edgeTris[k]) == 2 {
				stack = append(stack, k)
			}
		}
	}
	return tris
}
