package polyclip

// ==============================================================================
// Rectangle clipping
// ==============================================================================
// Clips closed paths against an axis-aligned rectangle in a single walk per
// path. Each point is classified by which of {left, top, right, bottom,
// inside} it occupies; every output point is an original vertex inside the
// rect, an intersection with a rect side, or a rect corner inserted between
// an exit and the next entry. A post-pass re-ties collinear segments lying
// exactly on the rect sides.
//
// Points exactly on a rect side are treated as inside, so a polygon edge
// lying along a side survives clipping.

// location identifies the region a point occupies relative to the rect.
// The first four values double as corner indices in clockwise order.
type location uint8

const (
	locLeft location = iota
	locTop
	locRight
	locBottom
	locInside
)

// outPt2 is a point in a rect-clip output ring.
type outPt2 struct {
	pt       Point64
	ownerIdx int
	edge     *[]*outPt2 // the rect-side edge list this point was filed under
	next     *outPt2
	prev     *outPt2
}

// RectClip64 clips closed paths to an axis-aligned rectangle.
// Not safe for concurrent use.
type RectClip64 struct {
	rect       Rect64
	rectPath   Path64
	rectMid    Point64
	pathBounds Rect64
	results    []*outPt2
	edges      [8][]*outPt2
	startLocs  []location
}

// NewRectClip64 creates a clipper for the given rectangle.
func NewRectClip64(rect Rect64) *RectClip64 {
	return &RectClip64{
		rect:     rect,
		rectPath: rect.AsPath(),
		rectMid:  rect.MidPoint(),
	}
}

// Execute clips every path, returning the clipped rings. Paths fully inside
// the rect pass through unchanged, disjoint paths are dropped, and paths
// enclosing the rect return the rect itself.
func (rc *RectClip64) Execute(paths Paths64) Paths64 {
	result := Paths64{}
	if rc.rect.IsEmpty() {
		return result
	}
	for _, path := range paths {
		if len(path) < 3 {
			continue
		}
		rc.pathBounds = GetBounds(path)
		if !rc.rect.Intersects(rc.pathBounds) {
			continue // the path is completely outside the rect
		}
		if rc.rect.ContainsRect(rc.pathBounds) {
			// the path is completely inside the rect
			result = append(result, path)
			continue
		}
		rc.executeInternal(path)
		rc.checkEdges()
		for i := 0; i < 4; i++ {
			rc.tidyEdgePair(i, &rc.edges[i*2], &rc.edges[i*2+1])
		}
		for _, op := range rc.results {
			if tmp := rc.getPath(op); len(tmp) > 0 {
				result = append(result, tmp)
			}
		}
		// clean up after every path
		rc.results = rc.results[:0]
		for i := range rc.edges {
			rc.edges[i] = rc.edges[i][:0]
		}
	}
	return result
}

// add appends pt to the current output ring (or opens a new ring).
func (rc *RectClip64) add(pt Point64, startingNewPath bool) *outPt2 {
	currIdx := len(rc.results)
	var result *outPt2
	if currIdx == 0 || startingNewPath {
		result = &outPt2{pt: pt, ownerIdx: currIdx}
		result.prev = result
		result.next = result
		rc.results = append(rc.results, result)
	} else {
		currIdx--
		prevOp := rc.results[currIdx]
		if samePoint(prevOp.pt, pt) {
			return prevOp
		}
		result = &outPt2{pt: pt, ownerIdx: currIdx, next: prevOp.next}
		prevOp.next.prev = result
		prevOp.next = result
		result.prev = prevOp
		rc.results[currIdx] = result
	}
	return result
}

// getLocation classifies pt; the bool result is false when pt lies exactly
// on a rect side (the location then names that side).
func getLocation(rect Rect64, pt Point64) (location, bool) {
	switch {
	case pt.X == rect.Left && pt.Y >= rect.Top && pt.Y <= rect.Bottom:
		return locLeft, false // pt on rect edge
	case pt.X == rect.Right && pt.Y >= rect.Top && pt.Y <= rect.Bottom:
		return locRight, false
	case pt.Y == rect.Top && pt.X >= rect.Left && pt.X <= rect.Right:
		return locTop, false
	case pt.Y == rect.Bottom && pt.X >= rect.Left && pt.X <= rect.Right:
		return locBottom, false
	case pt.X < rect.Left:
		return locLeft, true
	case pt.X > rect.Right:
		return locRight, true
	case pt.Y < rect.Top:
		return locTop, true
	case pt.Y > rect.Bottom:
		return locBottom, true
	default:
		return locInside, true
	}
}

func areOpposites(prev, curr location) bool {
	d := int(prev) - int(curr)
	return d == 2 || d == -2
}

func headingClockwise(prev, curr location) bool {
	return (int(prev)+1)%4 == int(curr)
}

func getAdjacentLocation(loc location, isClockwise bool) location {
	delta := 3
	if isClockwise {
		delta = 1
	}
	return location((int(loc) + delta) % 4)
}

func isClockwise(prev, curr location, prevPt, currPt, rectMid Point64) bool {
	if areOpposites(prev, curr) {
		return crossProductSign(prevPt, rectMid, currPt) < 0
	}
	return headingClockwise(prev, curr)
}

// getSegIntersection finds where segments p1-p2 and p3-p4 meet, including
// touching endpoints; collinear overlaps report false.
func getSegIntersection(p1, p2, p3, p4 Point64) (Point64, bool) {
	res1 := crossProductSign(p1, p3, p4)
	res2 := crossProductSign(p2, p3, p4)
	if res1 == 0 {
		switch {
		case res2 == 0:
			return Point64{}, false // segments are collinear
		case samePoint(p1, p3) || samePoint(p1, p4):
			return p1, true
		case p3.Y == p4.Y:
			return p1, (p1.X > p3.X) == (p1.X < p4.X)
		default:
			return p1, (p1.Y > p3.Y) == (p1.Y < p4.Y)
		}
	}
	if res2 == 0 {
		switch {
		case samePoint(p2, p3) || samePoint(p2, p4):
			return p2, true
		case p3.Y == p4.Y:
			return p2, (p2.X > p3.X) == (p2.X < p4.X)
		default:
			return p2, (p2.Y > p3.Y) == (p2.Y < p4.Y)
		}
	}
	if (res1 > 0) == (res2 > 0) {
		return Point64{}, false
	}

	res3 := crossProductSign(p3, p1, p2)
	res4 := crossProductSign(p4, p1, p2)
	if res3 == 0 {
		switch {
		case samePoint(p3, p1) || samePoint(p3, p2):
			return p3, true
		case p1.Y == p2.Y:
			return p3, (p3.X > p1.X) == (p3.X < p2.X)
		default:
			return p3, (p3.Y > p1.Y) == (p3.Y < p2.Y)
		}
	}
	if res4 == 0 {
		switch {
		case samePoint(p4, p1) || samePoint(p4, p2):
			return p4, true
		case p1.Y == p2.Y:
			return p4, (p4.X > p1.X) == (p4.X < p2.X)
		default:
			return p4, (p4.Y > p1.Y) == (p4.Y < p2.Y)
		}
	}
	if (res3 > 0) == (res4 > 0) {
		return Point64{}, false
	}
	// segments must intersect to get here
	return getSegmentIntersectPt(p1, p2, p3, p4)
}

// getIntersection finds where the segment p-p2 crosses the rect boundary on
// the way toward loc, updating loc when the crossing lands on a different
// side.
func getIntersection(rectPath Path64, p, p2 Point64, loc location) (Point64, location, bool) {
	switch loc {
	case locLeft:
		if ip, ok := getSegIntersection(p, p2, rectPath[0], rectPath[3]); ok {
			return ip, loc, true
		}
		if p.Y < rectPath[0].Y {
			if ip, ok := getSegIntersection(p, p2, rectPath[0], rectPath[1]); ok {
				return ip, locTop, true
			}
		}
		if ip, ok := getSegIntersection(p, p2, rectPath[2], rectPath[3]); ok {
			return ip, locBottom, true
		}
		return Point64{}, loc, false
	case locRight:
		if ip, ok := getSegIntersection(p, p2, rectPath[1], rectPath[2]); ok {
			return ip, loc, true
		}
		if p.Y < rectPath[0].Y {
			if ip, ok := getSegIntersection(p, p2, rectPath[0], rectPath[1]); ok {
				return ip, locTop, true
			}
		}
		if ip, ok := getSegIntersection(p, p2, rectPath[2], rectPath[3]); ok {
			return ip, locBottom, true
		}
		return Point64{}, loc, false
	case locTop:
		if ip, ok := getSegIntersection(p, p2, rectPath[0], rectPath[1]); ok {
			return ip, loc, true
		}
		if p.X < rectPath[0].X {
			if ip, ok := getSegIntersection(p, p2, rectPath[0], rectPath[3]); ok {
				return ip, locLeft, true
			}
		}
		if p.X > rectPath[1].X {
			if ip, ok := getSegIntersection(p, p2, rectPath[1], rectPath[2]); ok {
				return ip, locRight, true
			}
		}
		return Point64{}, loc, false
	case locBottom:
		if ip, ok := getSegIntersection(p, p2, rectPath[2], rectPath[3]); ok {
			return ip, loc, true
		}
		if p.X < rectPath[3].X {
			if ip, ok := getSegIntersection(p, p2, rectPath[0], rectPath[3]); ok {
				return ip, locLeft, true
			}
		}
		if p.X > rectPath[2].X {
			if ip, ok := getSegIntersection(p, p2, rectPath[1], rectPath[2]); ok {
				return ip, locRight, true
			}
		}
		return Point64{}, loc, false
	default: // inside
		if ip, ok := getSegIntersection(p, p2, rectPath[0], rectPath[3]); ok {
			return ip, locLeft, true
		}
		if ip, ok := getSegIntersection(p, p2, rectPath[0], rectPath[1]); ok {
			return ip, locTop, true
		}
		if ip, ok := getSegIntersection(p, p2, rectPath[1], rectPath[2]); ok {
			return ip, locRight, true
		}
		if ip, ok := getSegIntersection(p, p2, rectPath[2], rectPath[3]); ok {
			return ip, locBottom, true
		}
		return Point64{}, loc, false
	}
}

// getNextLocation skips ahead while the path stays in the same outside
// region, emitting inside vertices verbatim.
func (rc *RectClip64) getNextLocation(path Path64, loc *location, i *int, highI int) {
	switch *loc {
	case locLeft:
		for *i <= highI && path[*i].X <= rc.rect.Left {
			*i++
		}
		if *i > highI {
			return
		}
		switch {
		case path[*i].X >= rc.rect.Right:
			*loc = locRight
		case path[*i].Y <= rc.rect.Top:
			*loc = locTop
		case path[*i].Y >= rc.rect.Bottom:
			*loc = locBottom
		default:
			*loc = locInside
		}
	case locTop:
		for *i <= highI && path[*i].Y <= rc.rect.Top {
			*i++
		}
		if *i > highI {
			return
		}
		switch {
		case path[*i].Y >= rc.rect.Bottom:
			*loc = locBottom
		case path[*i].X <= rc.rect.Left:
			*loc = locLeft
		case path[*i].X >= rc.rect.Right:
			*loc = locRight
		default:
			*loc = locInside
		}
	case locRight:
		for *i <= highI && path[*i].X >= rc.rect.Right {
			*i++
		}
		if *i > highI {
			return
		}
		switch {
		case path[*i].X <= rc.rect.Left:
			*loc = locLeft
		case path[*i].Y <= rc.rect.Top:
			*loc = locTop
		case path[*i].Y >= rc.rect.Bottom:
			*loc = locBottom
		default:
			*loc = locInside
		}
	case locBottom:
		for *i <= highI && path[*i].Y >= rc.rect.Bottom {
			*i++
		}
		if *i > highI {
			return
		}
		switch {
		case path[*i].Y <= rc.rect.Top:
			*loc = locTop
		case path[*i].X <= rc.rect.Left:
			*loc = locLeft
		case path[*i].X >= rc.rect.Right:
			*loc = locRight
		default:
			*loc = locInside
		}
	default: // inside
		for *i <= highI {
			switch {
			case path[*i].X < rc.rect.Left:
				*loc = locLeft
			case path[*i].X > rc.rect.Right:
				*loc = locRight
			case path[*i].Y > rc.rect.Bottom:
				*loc = locBottom
			case path[*i].Y < rc.rect.Top:
				*loc = locTop
			default:
				rc.add(path[*i], false)
				*i++
				continue
			}
			return
		}
	}
}

func (rc *RectClip64) addCorner(prev, curr location) {
	if headingClockwise(prev, curr) {
		rc.add(rc.rectPath[prev], false)
	} else {
		rc.add(rc.rectPath[curr], false)
	}
}

func (rc *RectClip64) addCornerAdvance(loc *location, isClockwise bool) {
	if isClockwise {
		rc.add(rc.rectPath[*loc], false)
		*loc = getAdjacentLocation(*loc, true)
	} else {
		*loc = getAdjacentLocation(*loc, false)
		rc.add(rc.rectPath[*loc], false)
	}
}

// executeInternal walks one closed path, emitting vertices, boundary
// intersections and skipped corners.
func (rc *RectClip64) executeInternal(path Path64) {
	if len(path) < 3 || rc.rect.IsEmpty() {
		return
	}
	rc.startLocs = rc.startLocs[:0]
	firstCross := locInside
	crossingLoc := firstCross
	prev := firstCross

	highI := len(path) - 1
	loc, ok := getLocation(rc.rect, path[highI])
	if !ok {
		i := highI - 1
		for i >= 0 {
			if prev, ok = getLocation(rc.rect, path[i]); ok {
				break
			}
			i--
		}
		if i < 0 {
			// all of the path touches the rect boundary
			for _, pt := range path {
				rc.add(pt, false)
			}
			return
		}
		if prev == locInside {
			loc = locInside
		}
	}
	startingLoc := loc

	i := 0
	for i <= highI {
		prev = loc
		prevCrossLoc := crossingLoc
		rc.getNextLocation(path, &loc, &i, highI)
		if i > highI {
			break
		}

		var prevPt Point64
		if i == 0 {
			prevPt = path[highI]
		} else {
			prevPt = path[i-1]
		}
		crossingLoc = loc

		ip, newCross, found := getIntersection(rc.rectPath, path[i], prevPt, crossingLoc)
		if !found {
			// the path must be remaining outside; definitely no intersection
			if prevCrossLoc == locInside {
				isClockw := isClockwise(prev, loc, prevPt, path[i], rc.rectMid)
				for {
					rc.startLocs = append(rc.startLocs, prev)
					prev = getAdjacentLocation(prev, isClockw)
					if prev == loc {
						break
					}
				}
				crossingLoc = prevCrossLoc // still not crossed
			} else if prev != locInside && prev != loc {
				isClockw := isClockwise(prev, loc, prevPt, path[i], rc.rectMid)
				for prev != loc {
					rc.addCornerAdvance(&prev, isClockw)
				}
			}
			i++
			continue
		}
		crossingLoc = newCross

		// we must be crossing the rect boundary to get here
		if loc == locInside { // the path is entering the rect
			if firstCross == locInside {
				firstCross = crossingLoc
				rc.startLocs = append(rc.startLocs, prev)
			} else if prev != crossingLoc {
				isClockw := isClockwise(prev, crossingLoc, prevPt, path[i], rc.rectMid)
				for prev != crossingLoc {
					rc.addCornerAdvance(&prev, isClockw)
				}
			}
		} else if prev != locInside {
			// the path is passing right through the rect; ip is the second
			// intersect point, but we also need the first
			loc = prev
			ip2, newLoc, _ := getIntersection(rc.rectPath, prevPt, path[i], loc)
			loc = newLoc
			if prevCrossLoc != locInside && prevCrossLoc != loc {
				rc.addCorner(prevCrossLoc, loc)
			}
			if firstCross == locInside {
				firstCross = loc
				rc.startLocs = append(rc.startLocs, prev)
			}
			loc = crossingLoc
			rc.add(ip2, false)
			if samePoint(ip, ip2) {
				// the path touches the boundary at a single point
				loc, _ = getLocation(rc.rect, path[i])
				rc.addCorner(crossingLoc, loc)
				crossingLoc = loc
				continue
			}
		} else { // the path is exiting the rect
			loc = crossingLoc
			if firstCross == locInside {
				firstCross = crossingLoc
			}
		}
		rc.add(ip, false)
	}

	if firstCross == locInside {
		// the path never intersects the rect boundary
		if startingLoc != locInside {
			// the path is outside the rect, but the rect may be inside the
			// path
			if rc.pathBounds.ContainsRect(rc.rect) && path1ContainsPath2(path, rc.rectPath) {
				for j := 0; j < 4; j++ {
					rc.add(rc.rectPath[j], false)
					addToEdge(&rc.edges[j*2], rc.results[0])
				}
			}
		}
	} else if loc != locInside && (loc != firstCross || len(rc.startLocs) > 2) {
		if len(rc.startLocs) > 0 {
			prev = loc
			for _, loc2 := range rc.startLocs {
				if prev == loc2 {
					continue
				}
				rc.addCornerAdvance(&prev, headingClockwise(prev, loc2))
				prev = loc2
			}
			loc = prev
		}
		if loc != firstCross {
			rc.addCornerAdvance(&loc, headingClockwise(loc, firstCross))
		}
	}
}

func path1ContainsPath2(path1, path2 Path64) bool {
	ioCount := 0
	for _, pt := range path2 {
		switch PointInPolygon(pt, path1) {
		case PointInside:
			ioCount--
		case PointOutside:
			ioCount++
		}
		if ioCount > 1 || ioCount < -1 {
			break
		}
	}
	return ioCount <= 0
}

// ==============================================================================
// Edge tidying: merging and splitting runs lying on the rect sides
// ==============================================================================

// getEdgesForPt bit-encodes which rect sides pt lies on (left, top, right,
// bottom = bits 0..3).
func getEdgesForPt(pt Point64, rect Rect64) uint {
	var result uint
	if pt.X == rect.Left {
		result = 1
	} else if pt.X == rect.Right {
		result = 4
	}
	if pt.Y == rect.Top {
		result += 2
	} else if pt.Y == rect.Bottom {
		result += 8
	}
	return result
}

func isHeadingClockwiseAlongEdge(pt1, pt2 Point64, edgeIdx int) bool {
	switch edgeIdx {
	case 0:
		return pt2.Y < pt1.Y
	case 1:
		return pt2.X > pt1.X
	case 2:
		return pt2.Y > pt1.Y
	default:
		return pt2.X < pt1.X
	}
}

func hasHorzOverlap(left1, right1, left2, right2 Point64) bool {
	return left1.X < right2.X && right1.X > left2.X
}

func hasVertOverlap(top1, bottom1, top2, bottom2 Point64) bool {
	return top1.Y < bottom2.Y && bottom1.Y > top2.Y
}

func addToEdge(edge *[]*outPt2, op *outPt2) {
	if op.edge != nil {
		return
	}
	op.edge = edge
	*edge = append(*edge, op)
}

func unlinkOp(op *outPt2) *outPt2 {
	if op.next == op {
		return nil
	}
	op.prev.next = op.next
	op.next.prev = op.prev
	return op.next
}

func unlinkOpBack(op *outPt2) *outPt2 {
	if op.next == op {
		return nil
	}
	op.prev.next = op.next
	op.next.prev = op.prev
	return op.prev
}

func setNewOwner(op *outPt2, newIdx int) {
	op.ownerIdx = newIdx
	op2 := op.next
	for op2 != op {
		op2.ownerIdx = newIdx
		op2 = op2.next
	}
}

// checkEdges drops collinear points and files edge-aligned points under the
// per-side clockwise/counter-clockwise edge lists.
func (rc *RectClip64) checkEdges() {
	for i := range rc.results {
		op := rc.results[i]
		if op == nil {
			continue
		}
		op2 := op
		for {
			if IsCollinear(op2.prev.pt, op2.pt, op2.next.pt) {
				if op2 == op {
					op2 = unlinkOpBack(op2)
					if op2 == nil {
						break
					}
					op = op2.prev
				} else {
					op2 = unlinkOpBack(op2)
					if op2 == nil {
						break
					}
				}
			} else {
				op2 = op2.next
			}
			if op2 == op {
				break
			}
		}
		if op2 == nil {
			rc.results[i] = nil
			continue
		}
		rc.results[i] = op2

		edgeSet1 := getEdgesForPt(op.prev.pt, rc.rect)
		op2 = op
		for {
			edgeSet2 := getEdgesForPt(op2.pt, rc.rect)
			if edgeSet2 != 0 && op2.edge == nil {
				combinedSet := edgeSet1 & edgeSet2
				for j := 0; j < 4; j++ {
					if combinedSet&(1<<uint(j)) == 0 {
						continue
					}
					if isHeadingClockwiseAlongEdge(op2.prev.pt, op2.pt, j) {
						addToEdge(&rc.edges[j*2], op2)
					} else {
						addToEdge(&rc.edges[j*2+1], op2)
					}
				}
			}
			edgeSet1 = edgeSet2
			op2 = op2.next
			if op2 == op {
				break
			}
		}
	}
}

// tidyEdgePair merges overlapping clockwise and counter-clockwise runs along
// one rect side, splitting or rejoining rings as required.
func (rc *RectClip64) tidyEdgePair(idx int, cw, ccw *[]*outPt2) {
	if len(*ccw) == 0 {
		return
	}
	isHorz := idx == 1 || idx == 3
	cwIsTowardLarger := idx == 1 || idx == 2
	i, j := 0, 0

	for i < len(*cw) {
		if (*cw)[i] == nil || (*cw)[i].next == (*cw)[i].prev {
			(*cw)[i] = nil
			i++
			j = 0
			continue
		}
		jLim := len(*ccw)
		for j < jLim && ((*ccw)[j] == nil || (*ccw)[j].next == (*ccw)[j].prev) {
			j++
		}
		if j == jLim {
			i++
			j = 0
			continue
		}

		var p1, p1a, p2, p2a *outPt2
		if cwIsTowardLarger {
			// p1 >> | >> p1a
			// p2 << | << p2a
			p1 = (*cw)[i].prev
			p1a = (*cw)[i]
			p2 = (*ccw)[j]
			p2a = (*ccw)[j].prev
		} else {
			// p1 << | << p1a
			// p2 >> | >> p2a
			p1 = (*cw)[i]
			p1a = (*cw)[i].prev
			p2 = (*ccw)[j].prev
			p2a = (*ccw)[j]
		}

		if (isHorz && !hasHorzOverlap(p1.pt, p1a.pt, p2.pt, p2a.pt)) ||
			(!isHorz && !hasVertOverlap(p1.pt, p1a.pt, p2.pt, p2a.pt)) {
			j++
			continue
		}

		isRejoining := (*cw)[i].ownerIdx != (*ccw)[j].ownerIdx
		if isRejoining {
			rc.results[p2.ownerIdx] = nil
			setNewOwner(p2, p1.ownerIdx)
		}

		// do the split or re-join
		if cwIsTowardLarger {
			p1.next = p2
			p2.prev = p1
			p1a.prev = p2a
			p2a.next = p1a
		} else {
			p1.prev = p2
			p2.next = p1
			p1a.next = p2a
			p2a.prev = p1a
		}

		if !isRejoining {
			newIdx := len(rc.results)
			rc.results = append(rc.results, p1a)
			setNewOwner(p1a, newIdx)
		}

		var op, op2 *outPt2
		if cwIsTowardLarger {
			op = p2
			op2 = p1a
		} else {
			op = p1
			op2 = p2a
		}
		rc.results[op.ownerIdx] = op
		rc.results[op2.ownerIdx] = op2

		// and now lots of work to get ready for the next loop
		var opIsLarger, op2IsLarger bool
		if isHorz {
			opIsLarger = op.pt.X > op.prev.pt.X
			op2IsLarger = op2.pt.X > op2.prev.pt.X
		} else {
			opIsLarger = op.pt.Y > op.prev.pt.Y
			op2IsLarger = op2.pt.Y > op2.prev.pt.Y
		}

		switch {
		case op.next == op.prev || samePoint(op.pt, op.prev.pt):
			if op2IsLarger == cwIsTowardLarger {
				(*cw)[i] = op2
				(*ccw)[j] = nil
				j++
			} else {
				(*ccw)[j] = op2
				(*cw)[i] = nil
				i++
			}
		case op2.next == op2.prev || samePoint(op2.pt, op2.prev.pt):
			if opIsLarger == cwIsTowardLarger {
				(*cw)[i] = op
				(*ccw)[j] = nil
				j++
			} else {
				(*ccw)[j] = op
				(*cw)[i] = nil
				i++
			}
		case opIsLarger == op2IsLarger:
			if opIsLarger == cwIsTowardLarger {
				(*cw)[i] = op
				(*ccw)[j] = nil
				j++
				addToEdge(cw, op2)
			} else {
				(*ccw)[j] = op
				(*cw)[i] = nil
				i++
				addToEdge(ccw, op2)
			}
		default:
			if opIsLarger == cwIsTowardLarger {
				(*cw)[i] = op
			} else {
				(*ccw)[j] = op
			}
			if op2IsLarger == cwIsTowardLarger {
				(*cw)[i] = op2
			} else {
				(*ccw)[j] = op2
			}
		}
	}
}

// getPath walks a tidied ring into a Path64, dropping collinear points.
func (rc *RectClip64) getPath(op *outPt2) Path64 {
	if op == nil || op.prev == op.next {
		return nil
	}
	op2 := op.next
	for op2 != nil && op2 != op {
		if IsCollinear(op2.prev.pt, op2.pt, op2.next.pt) {
			op = op2.prev
			op2 = unlinkOp(op2)
		} else {
			op2 = op2.next
		}
	}
	if op2 == nil {
		return nil
	}
	result := Path64{op.pt}
	op2 = op.next
	for op2 != op {
		result = append(result, op2.pt)
		op2 = op2.next
	}
	return result
}
