package polyclip

import "math"

// ==============================================================================
// Vatti scanline machinery: active edges, winding counts and intersections
// ==============================================================================
// The engine sweeps the plane in descending Y. Edges enter the active edge
// list (AEL) in bound pairs at local minima, migrate leftward/rightward as
// scanlines advance, and retire at local maxima. Edges bounded by output
// ("hot" edges) carry a pointer to the OutRec ring they are building.

// JoinWith bonds an edge to a neighbour across a shared vertex.
type JoinWith uint8

const (
	JoinWithNone JoinWith = iota
	JoinWithLeft
	JoinWithRight
)

// Active represents a half-edge currently intersecting the sweep scanline.
type Active struct {
	bot Point64
	top Point64

	curX int64   // current X on the scanline
	dx   float64 // dx/dy; horizontals are +/-Inf

	windDx     int // 1 or -1 depending on winding direction
	windCount  int // winding count of this edge's path type
	windCount2 int // winding count of the other path type

	outrec *OutRec

	// AEL: linked list of all edges crossing the scanline, left to right
	prevInAEL *Active
	nextInAEL *Active

	// SEL: reused both as the sorted edge list for intersections and as a
	// stack of horizontal edges awaiting processing
	prevInSEL *Active
	nextInSEL *Active
	jump      *Active

	vertexTop   *Vertex
	localMin    *LocalMinima
	isLeftBound bool
	joinWith    JoinWith
}

// intersectNode captures a crossing of two AEL edges between two scanlines.
type intersectNode struct {
	pt    Point64
	edge1 *Active
	edge2 *Active
}

// ==============================================================================
// Small edge predicates
// ==============================================================================

func isOdd(v int) bool { return v&1 != 0 }

func isHotEdge(e *Active) bool { return e.outrec != nil }

func isOpen(e *Active) bool { return e.localMin.IsOpen }

func isOpenEndActive(e *Active) bool {
	return e.localMin.IsOpen && e.vertexTop.Flags&(VertexFlagsOpenStart|VertexFlagsOpenEnd) != 0
}

func isOpenEndVertex(v *Vertex) bool {
	return v.Flags&(VertexFlagsOpenStart|VertexFlagsOpenEnd) != 0
}

func getPrevHotEdge(e *Active) *Active {
	prev := e.prevInAEL
	for prev != nil && (isOpen(prev) || !isHotEdge(prev)) {
		prev = prev.prevInAEL
	}
	return prev
}

func isFront(e *Active) bool { return e == e.outrec.frontEdge }

func isHorizontal(e *Active) bool { return e.top.Y == e.bot.Y }

func isHeadingRightHorz(e *Active) bool { return math.IsInf(e.dx, -1) }

func isHeadingLeftHorz(e *Active) bool { return math.IsInf(e.dx, 1) }

func swapActives(e1, e2 **Active) { *e1, *e2 = *e2, *e1 }

func getPolyType(e *Active) PathType { return e.localMin.PathType }

func isSamePolyType(e1, e2 *Active) bool { return e1.localMin.PathType == e2.localMin.PathType }

func isJoined(e *Active) bool { return e.joinWith != JoinWithNone }

// getDx returns dx/dy for the edge from pt1 down to pt2. With the inverted Y
// axis, horizontals heading right return -Inf and heading left +Inf.
func getDx(pt1, pt2 Point64) float64 {
	dy := float64(pt2.Y - pt1.Y)
	if dy != 0 {
		return float64(pt2.X-pt1.X) / dy
	}
	if pt2.X > pt1.X {
		return math.Inf(-1)
	}
	return math.Inf(1)
}

func setDx(e *Active) { e.dx = getDx(e.bot, e.top) }

// topX returns the edge's X at the given scanline.
func topX(e *Active, currentY int64) int64 {
	if currentY == e.top.Y || e.top.X == e.bot.X {
		return e.top.X
	}
	if currentY == e.bot.Y {
		return e.bot.X
	}
	return e.bot.X + int64(math.Round(e.dx*float64(currentY-e.bot.Y)))
}

// nextVertex follows the bound upward from the edge's current top vertex.
func nextVertex(e *Active) *Vertex {
	if e.windDx > 0 {
		return e.vertexTop.Next
	}
	return e.vertexTop.Prev
}

// prevPrevVertex steps two vertices back against the bound direction.
func prevPrevVertex(e *Active) *Vertex {
	if e.windDx > 0 {
		return e.vertexTop.Prev.Prev
	}
	return e.vertexTop.Next.Next
}

func isMaximaVertex(v *Vertex) bool { return v.Flags&VertexFlagsLocalMax != 0 }

func isMaxima(e *Active) bool { return isMaximaVertex(e.vertexTop) }

// getCurrYMaximaVertex scans along horizontal vertices at the edge's top Y
// for a local maximum (closed path form).
func getCurrYMaximaVertex(e *Active) *Vertex {
	result := e.vertexTop
	if e.windDx > 0 {
		for result.Next.Pt.Y == result.Pt.Y {
			result = result.Next
		}
	} else {
		for result.Prev.Pt.Y == result.Pt.Y {
			result = result.Prev
		}
	}
	if !isMaximaVertex(result) {
		result = nil
	}
	return result
}

// getCurrYMaximaVertexOpen is the open-path variant, stopping at open ends.
func getCurrYMaximaVertexOpen(e *Active) *Vertex {
	result := e.vertexTop
	if e.windDx > 0 {
		for result.Next.Pt.Y == result.Pt.Y &&
			result.Flags&(VertexFlagsOpenEnd|VertexFlagsLocalMax) == 0 {
			result = result.Next
		}
	} else {
		for result.Prev.Pt.Y == result.Pt.Y &&
			result.Flags&(VertexFlagsOpenEnd|VertexFlagsLocalMax) == 0 {
			result = result.Prev
		}
	}
	if !isMaximaVertex(result) {
		result = nil
	}
	return result
}

// getMaximaPair finds the other AEL edge that terminates at the same local
// maximum vertex.
func getMaximaPair(e *Active) *Active {
	e2 := e.nextInAEL
	for e2 != nil {
		if e2.vertexTop == e.vertexTop {
			return e2
		}
		e2 = e2.nextInAEL
	}
	return nil
}

// findEdgeWithMatchingLocMin finds the AEL edge sharing e's local minimum.
func findEdgeWithMatchingLocMin(e *Active) *Active {
	result := e.nextInAEL
	for result != nil {
		if result.localMin == e.localMin {
			return result
		}
		if !isHorizontal(result) && !samePoint(e.bot, result.bot) {
			result = nil
		} else {
			result = result.nextInAEL
		}
	}
	result = e.prevInAEL
	for result != nil {
		if result.localMin == e.localMin {
			return result
		}
		if !isHorizontal(result) && !samePoint(e.bot, result.bot) {
			return nil
		}
		result = result.prevInAEL
	}
	return result
}

// ==============================================================================
// AEL order and insertion
// ==============================================================================

// isValidAelOrder decides whether newcomer belongs to the right of resident.
// Ties on curX are resolved by turning direction, then by bound geometry at
// a freshly inserted local minimum.
func isValidAelOrder(resident, newcomer *Active) bool {
	if newcomer.curX != resident.curX {
		return newcomer.curX > resident.curX
	}

	// same curX: get the turning direction of resident.top, newcomer.bot
	// and newcomer.top
	d := crossProductSign(resident.top, newcomer.bot, newcomer.top)
	if d != 0 {
		return d < 0
	}

	// the edges are collinear; if the residents's top is below the newcomer's
	// bot the edges aren't overlapping yet, so compare against its extension
	if !isMaxima(resident) && resident.top.Y > newcomer.top.Y {
		return crossProductSign(newcomer.bot, resident.top, nextVertex(resident).Pt) <= 0
	}
	if !isMaxima(newcomer) && newcomer.top.Y > resident.top.Y {
		return crossProductSign(newcomer.bot, newcomer.top, nextVertex(newcomer).Pt) >= 0
	}

	y := newcomer.bot.Y
	newcomerIsLeft := newcomer.isLeftBound
	if resident.bot.Y != y || resident.localMin.Vertex.Pt.Y != y {
		return newcomer.isLeftBound
	}
	// the resident must also have just been inserted
	if resident.isLeftBound != newcomerIsLeft {
		return newcomerIsLeft
	}
	if crossProductSign(prevPrevVertex(resident).Pt, resident.bot, resident.top) == 0 {
		return true
	}
	// compare turning direction of the alternate bound
	return (crossProductSign(prevPrevVertex(resident).Pt, newcomer.bot, prevPrevVertex(newcomer).Pt) > 0) == newcomerIsLeft
}

func (c *ClipperBase) insertLeftEdge(e *Active) {
	if c.actives == nil {
		e.prevInAEL = nil
		e.nextInAEL = nil
		c.actives = e
	} else if !isValidAelOrder(c.actives, e) {
		e.prevInAEL = nil
		e.nextInAEL = c.actives
		c.actives.prevInAEL = e
		c.actives = e
	} else {
		e2 := c.actives
		for e2.nextInAEL != nil && isValidAelOrder(e2.nextInAEL, e) {
			e2 = e2.nextInAEL
		}
		// don't separate joined edges
		if e2.joinWith == JoinWithRight {
			e2 = e2.nextInAEL
		}
		e.nextInAEL = e2.nextInAEL
		if e2.nextInAEL != nil {
			e2.nextInAEL.prevInAEL = e
		}
		e.prevInAEL = e2
		e2.nextInAEL = e
	}
}

func insertRightEdge(e, e2 *Active) {
	e2.nextInAEL = e.nextInAEL
	if e.nextInAEL != nil {
		e.nextInAEL.prevInAEL = e2
	}
	e2.prevInAEL = e
	e.nextInAEL = e2
}

func (c *ClipperBase) deleteFromAEL(e *Active) {
	prev := e.prevInAEL
	next := e.nextInAEL
	if prev == nil && next == nil && e != c.actives {
		return // already deleted
	}
	if prev != nil {
		prev.nextInAEL = next
	} else {
		c.actives = next
	}
	if next != nil {
		next.prevInAEL = prev
	}
	e.prevInAEL = nil
	e.nextInAEL = nil
}

func (c *ClipperBase) swapPositionsInAEL(e1, e2 *Active) {
	// preconditon: e1 must be immediately to the left of e2
	next := e2.nextInAEL
	if next != nil {
		next.prevInAEL = e1
	}
	prev := e1.prevInAEL
	if prev != nil {
		prev.nextInAEL = e2
	}
	e2.prevInAEL = prev
	e2.nextInAEL = e1
	e1.prevInAEL = e2
	e1.nextInAEL = next
	if e2.prevInAEL == nil {
		c.actives = e2
	}
}

// ==============================================================================
// Winding counts
// ==============================================================================

// setWindCountForClosedPathEdge derives the winding counts of a freshly
// inserted closed-path edge from its nearest same-type neighbour to the left.
func (c *ClipperBase) setWindCountForClosedPathEdge(e *Active) {
	// Winding counts refer to polygon regions not edges, so here an edge's
	// WindCnt indicates the higher of the wind counts for the two regions
	// touching the edge (and is adjusted by the winding direction).
	e2 := e.prevInAEL
	pt := getPolyType(e)
	for e2 != nil && (getPolyType(e2) != pt || isOpen(e2)) {
		e2 = e2.prevInAEL
	}

	if e2 == nil {
		e.windCount = e.windDx
		e2 = c.actives
	} else if c.fillRule == EvenOdd {
		e.windCount = e.windDx
		e.windCount2 = e2.windCount2
		e2 = e2.nextInAEL
	} else {
		// NonZero, Positive or Negative filling
		if e2.windCount*e2.windDx < 0 {
			// opposite directions so e is outside e2
			if abs(e2.windCount) > 1 {
				// outside prev poly but still inside another
				if e2.windDx*e.windDx < 0 {
					e.windCount = e2.windCount
				} else {
					e.windCount = e2.windCount + e.windDx
				}
			} else if isOpen(e) {
				e.windCount = 1
			} else {
				e.windCount = e.windDx
			}
		} else {
			// e must be inside e2
			if e2.windDx*e.windDx < 0 {
				e.windCount = e2.windCount
			} else {
				e.windCount = e2.windCount + e.windDx
			}
		}
		e.windCount2 = e2.windCount2
		e2 = e2.nextInAEL
	}

	// update windCount2 from e2 up to but not including e
	if c.fillRule == EvenOdd {
		for e2 != e {
			if getPolyType(e2) != pt && !isOpen(e2) {
				if e.windCount2 == 0 {
					e.windCount2 = 1
				} else {
					e.windCount2 = 0
				}
			}
			e2 = e2.nextInAEL
		}
	} else {
		for e2 != e {
			if getPolyType(e2) != pt && !isOpen(e2) {
				e.windCount2 += e2.windDx
			}
			e2 = e2.nextInAEL
		}
	}
}

func (c *ClipperBase) setWindCountForOpenPathEdge(e *Active) {
	e2 := c.actives
	if c.fillRule == EvenOdd {
		cnt1, cnt2 := 0, 0
		for e2 != e {
			if getPolyType(e2) == PathTypeClip {
				cnt2++
			} else if !isOpen(e2) {
				cnt1++
			}
			e2 = e2.nextInAEL
		}
		if isOdd(cnt1) {
			e.windCount = 1
		} else {
			e.windCount = 0
		}
		if isOdd(cnt2) {
			e.windCount2 = 1
		} else {
			e.windCount2 = 0
		}
	} else {
		for e2 != e {
			if getPolyType(e2) == PathTypeClip {
				e.windCount2 += e2.windDx
			} else if !isOpen(e2) {
				e.windCount += e2.windDx
			}
			e2 = e2.nextInAEL
		}
	}
}

// ==============================================================================
// Contribution predicates
// ==============================================================================

// isContributingClosed reports whether the region left of a closed-path edge
// belongs to the output under the current fill rule and clip type.
func (c *ClipperBase) isContributingClosed(e *Active) bool {
	switch c.fillRule {
	case Positive:
		if e.windCount != 1 {
			return false
		}
	case Negative:
		if e.windCount != -1 {
			return false
		}
	case NonZero:
		if abs(e.windCount) != 1 {
			return false
		}
	}

	switch c.clipType {
	case Intersection:
		switch c.fillRule {
		case Positive:
			return e.windCount2 > 0
		case Negative:
			return e.windCount2 < 0
		default:
			return e.windCount2 != 0
		}
	case Union:
		switch c.fillRule {
		case Positive:
			return e.windCount2 <= 0
		case Negative:
			return e.windCount2 >= 0
		default:
			return e.windCount2 == 0
		}
	case Difference:
		var result bool
		switch c.fillRule {
		case Positive:
			result = e.windCount2 <= 0
		case Negative:
			result = e.windCount2 >= 0
		default:
			result = e.windCount2 == 0
		}
		return (getPolyType(e) == PathTypeSubject) == result
	case Xor:
		return true
	default:
		return false
	}
}

func (c *ClipperBase) isContributingOpen(e *Active) bool {
	var isInSubj, isInClip bool
	switch c.fillRule {
	case Positive:
		isInSubj = e.windCount > 0
		isInClip = e.windCount2 > 0
	case Negative:
		isInSubj = e.windCount < 0
		isInClip = e.windCount2 < 0
	default:
		isInSubj = e.windCount != 0
		isInClip = e.windCount2 != 0
	}
	switch c.clipType {
	case Intersection:
		return isInClip
	case Union:
		return !isInSubj && !isInClip
	default:
		return !isInClip
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// ==============================================================================
// Inserting local minima into the AEL
// ==============================================================================

func (c *ClipperBase) hasLocMinAtY(y int64) bool {
	return c.currentLocMin < len(c.minimaList) &&
		c.minimaList[c.currentLocMin].Vertex.Pt.Y == y
}

func (c *ClipperBase) popLocalMinima() *LocalMinima {
	lm := c.minimaList[c.currentLocMin]
	c.currentLocMin++
	return lm
}

// insertLocalMinimaIntoAEL adds the left and right bound of every local
// minimum at botY into the AEL simultaneously, computing winding counts and
// opening output rings for contributing pairs.
func (c *ClipperBase) insertLocalMinimaIntoAEL(botY int64) {
	for c.hasLocMinAtY(botY) {
		localMinima := c.popLocalMinima()

		var leftBound *Active
		if localMinima.Vertex.Flags&VertexFlagsOpenStart == 0 {
			leftBound = &Active{
				bot:       localMinima.Vertex.Pt,
				curX:      localMinima.Vertex.Pt.X,
				windDx:    -1,
				vertexTop: localMinima.Vertex.Prev,
				top:       localMinima.Vertex.Prev.Pt,
				localMin:  localMinima,
			}
			setDx(leftBound)
		}

		var rightBound *Active
		if localMinima.Vertex.Flags&VertexFlagsOpenEnd == 0 {
			rightBound = &Active{
				bot:       localMinima.Vertex.Pt,
				curX:      localMinima.Vertex.Pt.X,
				windDx:    1,
				vertexTop: localMinima.Vertex.Next,
				top:       localMinima.Vertex.Next.Pt,
				localMin:  localMinima,
			}
			setDx(rightBound)
		}

		// Currently LeftB is just the descending bound and RightB is the
		// ascending bound, so swap them if needed so the bounds sit to the
		// correct sides of the local minimum.
		if leftBound != nil && rightBound != nil {
			if isHorizontal(leftBound) {
				if isHeadingRightHorz(leftBound) {
					swapActives(&leftBound, &rightBound)
				}
			} else if isHorizontal(rightBound) {
				if isHeadingLeftHorz(rightBound) {
					swapActives(&leftBound, &rightBound)
				}
			} else if leftBound.dx < rightBound.dx {
				swapActives(&leftBound, &rightBound)
			}
		} else if leftBound == nil {
			leftBound = rightBound
			rightBound = nil
		}

		var contributing bool
		leftBound.isLeftBound = true
		c.insertLeftEdge(leftBound)

		if isOpen(leftBound) {
			c.setWindCountForOpenPathEdge(leftBound)
			contributing = c.isContributingOpen(leftBound)
		} else {
			c.setWindCountForClosedPathEdge(leftBound)
			contributing = c.isContributingClosed(leftBound)
		}

		if rightBound != nil {
			rightBound.windCount = leftBound.windCount
			rightBound.windCount2 = leftBound.windCount2
			insertRightEdge(leftBound, rightBound)

			if contributing {
				c.addLocalMinPoly(leftBound, rightBound, leftBound.bot, true)
				if !isHorizontal(leftBound) {
					c.checkJoinLeft(leftBound, leftBound.bot, false)
				}
			}

			for rightBound.nextInAEL != nil && isValidAelOrder(rightBound.nextInAEL, rightBound) {
				c.intersectEdges(rightBound, rightBound.nextInAEL, rightBound.bot)
				c.swapPositionsInAEL(rightBound, rightBound.nextInAEL)
			}

			if isHorizontal(rightBound) {
				c.pushHorz(rightBound)
			} else {
				c.checkJoinRight(rightBound, rightBound.bot, false)
				c.scanlines.push(rightBound.top.Y)
			}
		} else if contributing {
			c.startOpenPath(leftBound, leftBound.bot)
		}

		if isHorizontal(leftBound) {
			c.pushHorz(leftBound)
		} else {
			c.scanlines.push(leftBound.top.Y)
		}
	}
}

// ==============================================================================
// Horizontal stack
// ==============================================================================

func (c *ClipperBase) pushHorz(e *Active) {
	if c.sel != nil {
		e.nextInSEL = c.sel
	} else {
		e.nextInSEL = nil
	}
	c.sel = e
}

func (c *ClipperBase) popHorz() (*Active, bool) {
	e := c.sel
	if e == nil {
		return nil, false
	}
	c.sel = e.nextInSEL
	return e, true
}

// ==============================================================================
// Updating an edge to the next vertex in its bound
// ==============================================================================

func (c *ClipperBase) updateEdgeIntoAEL(e *Active) {
	e.bot = e.top
	e.vertexTop = nextVertex(e)
	e.top = e.vertexTop.Pt
	e.curX = e.bot.X
	setDx(e)

	if isJoined(e) {
		c.split(e, e.bot)
	}

	if isHorizontal(e) {
		if !isOpen(e) {
			c.trimHorz(e, c.PreserveCollinear)
		}
		return
	}
	c.scanlines.push(e.top.Y)

	c.checkJoinLeft(e, e.bot, false)
	c.checkJoinRight(e, e.bot, true)
}

// ==============================================================================
// Edge intersection handling
// ==============================================================================

// setZ assigns the Z of a computed intersection point. A Z shared with one of
// the segment endpoints is inherited (subject endpoints take precedence), and
// then the user callback, if any, has the final say.
func (c *ClipperBase) setZ(e1, e2 *Active, pt *Point64) {
	if getPolyType(e1) != PathTypeSubject && getPolyType(e2) == PathTypeSubject {
		e1, e2 = e2, e1
	}
	switch {
	case samePoint(*pt, e1.bot):
		pt.Z = e1.bot.Z
	case samePoint(*pt, e2.bot):
		pt.Z = e2.bot.Z
	case samePoint(*pt, e1.top):
		pt.Z = e1.top.Z
	case samePoint(*pt, e2.top):
		pt.Z = e2.top.Z
	}
	if c.zCallback != nil {
		c.zCallback(e1.bot, e1.top, e2.bot, e2.top, pt)
	}
}

// intersectEdges emits output points for two crossing AEL edges, updating
// winding counts and opening, extending, joining or closing rings as the
// contribution state demands. e1 must precede e2 in the AEL.
func (c *ClipperBase) intersectEdges(e1, e2 *Active, pt Point64) {
	// managing open path intersections is quite different from closed paths
	if c.hasOpenPaths && (isOpen(e1) || isOpen(e2)) {
		if isOpen(e1) && isOpen(e2) {
			return
		}
		if isOpen(e2) {
			swapActives(&e1, &e2)
		}
		if isJoined(e2) {
			c.split(e2, pt)
		}

		if c.clipType == Union {
			if !isHotEdge(e2) {
				return
			}
		} else if e2.localMin.PathType == PathTypeSubject {
			return
		}

		switch c.fillRule {
		case Positive:
			if e2.windCount != 1 {
				return
			}
		case Negative:
			if e2.windCount != -1 {
				return
			}
		default:
			if abs(e2.windCount) != 1 {
				return
			}
		}

		// toggle contribution
		if isHotEdge(e1) {
			resultOp := c.addOutPt(e1, pt)
			c.setZ(e1, e2, &resultOp.pt)
			if isFront(e1) {
				e1.outrec.frontEdge = nil
			} else {
				e1.outrec.backEdge = nil
			}
			e1.outrec = nil
		} else if samePoint(pt, e1.localMin.Vertex.Pt) && !isOpenEndVertex(e1.localMin.Vertex) {
			// horizontal edges can pass under open paths at a local minimum,
			// so find the other side of the local minimum and if it's "hot"
			// join them
			e3 := findEdgeWithMatchingLocMin(e1)
			if e3 != nil && isHotEdge(e3) {
				e1.outrec = e3.outrec
				if e1.windDx > 0 {
					setSides(e3.outrec, e1, e3)
				} else {
					setSides(e3.outrec, e3, e1)
				}
				return
			}
			resultOp := c.startOpenPath(e1, pt)
			c.setZ(e1, e2, &resultOp.pt)
		} else {
			resultOp := c.startOpenPath(e1, pt)
			c.setZ(e1, e2, &resultOp.pt)
		}
		return
	}

	// managing closed paths from here on
	if isJoined(e1) {
		c.split(e1, pt)
	}
	if isJoined(e2) {
		c.split(e2, pt)
	}

	// update winding counts
	var oldE1WindCount, oldE2WindCount int
	if e1.localMin.PathType == e2.localMin.PathType {
		if c.fillRule == EvenOdd {
			oldE1WindCount = e1.windCount
			e1.windCount = e2.windCount
			e2.windCount = oldE1WindCount
		} else {
			if e1.windCount+e2.windDx == 0 {
				e1.windCount = -e1.windCount
			} else {
				e1.windCount += e2.windDx
			}
			if e2.windCount-e1.windDx == 0 {
				e2.windCount = -e2.windCount
			} else {
				e2.windCount -= e1.windDx
			}
		}
	} else {
		if c.fillRule != EvenOdd {
			e1.windCount2 += e2.windDx
		} else if e1.windCount2 == 0 {
			e1.windCount2 = 1
		} else {
			e1.windCount2 = 0
		}
		if c.fillRule != EvenOdd {
			e2.windCount2 -= e1.windDx
		} else if e2.windCount2 == 0 {
			e2.windCount2 = 1
		} else {
			e2.windCount2 = 0
		}
	}

	switch c.fillRule {
	case Positive:
		oldE1WindCount = e1.windCount
		oldE2WindCount = e2.windCount
	case Negative:
		oldE1WindCount = -e1.windCount
		oldE2WindCount = -e2.windCount
	default:
		oldE1WindCount = abs(e1.windCount)
		oldE2WindCount = abs(e2.windCount)
	}

	e1WindCountIs0or1 := oldE1WindCount == 0 || oldE1WindCount == 1
	e2WindCountIs0or1 := oldE2WindCount == 0 || oldE2WindCount == 1
	if (!isHotEdge(e1) && !e1WindCountIs0or1) || (!isHotEdge(e2) && !e2WindCountIs0or1) {
		return
	}

	// now process the intersection
	if isHotEdge(e1) && isHotEdge(e2) {
		if (oldE1WindCount != 0 && oldE1WindCount != 1) ||
			(oldE2WindCount != 0 && oldE2WindCount != 1) ||
			(e1.localMin.PathType != e2.localMin.PathType && c.clipType != Xor) {
			resultOp := c.addLocalMaxPoly(e1, e2, pt)
			if resultOp != nil {
				c.setZ(e1, e2, &resultOp.pt)
			}
		} else if isFront(e1) || e1.outrec == e2.outrec {
			// this else-if condition isn't strictly needed, but it's
			// sensible to split polygons that only touch at a common vertex
			// (not at common edges)
			resultOp := c.addLocalMaxPoly(e1, e2, pt)
			op2 := c.addLocalMinPoly(e1, e2, pt, false)
			if resultOp != nil {
				c.setZ(e1, e2, &resultOp.pt)
			}
			c.setZ(e1, e2, &op2.pt)
		} else {
			// can't treat as maxima & minima
			resultOp := c.addOutPt(e1, pt)
			op2 := c.addOutPt(e2, pt)
			c.setZ(e1, e2, &resultOp.pt)
			c.setZ(e1, e2, &op2.pt)
			swapOutrecs(e1, e2)
		}
	} else if isHotEdge(e1) {
		resultOp := c.addOutPt(e1, pt)
		c.setZ(e1, e2, &resultOp.pt)
		swapOutrecs(e1, e2)
	} else if isHotEdge(e2) {
		resultOp := c.addOutPt(e2, pt)
		c.setZ(e1, e2, &resultOp.pt)
		swapOutrecs(e1, e2)
	} else {
		// neither edge is hot
		var e1Wc2, e2Wc2 int
		switch c.fillRule {
		case Positive:
			e1Wc2 = e1.windCount2
			e2Wc2 = e2.windCount2
		case Negative:
			e1Wc2 = -e1.windCount2
			e2Wc2 = -e2.windCount2
		default:
			e1Wc2 = abs(e1.windCount2)
			e2Wc2 = abs(e2.windCount2)
		}

		if !isSamePolyType(e1, e2) {
			op := c.addLocalMinPoly(e1, e2, pt, false)
			c.setZ(e1, e2, &op.pt)
		} else if oldE1WindCount == 1 && oldE2WindCount == 1 {
			var resultOp *OutPt
			switch c.clipType {
			case Union:
				if e1Wc2 > 0 && e2Wc2 > 0 {
					return
				}
				resultOp = c.addLocalMinPoly(e1, e2, pt, false)
			case Difference:
				if (getPolyType(e1) == PathTypeClip && e1Wc2 > 0 && e2Wc2 > 0) ||
					(getPolyType(e1) == PathTypeSubject && e1Wc2 <= 0 && e2Wc2 <= 0) {
					resultOp = c.addLocalMinPoly(e1, e2, pt, false)
				}
			case Xor:
				resultOp = c.addLocalMinPoly(e1, e2, pt, false)
			default: // Intersection
				if e1Wc2 <= 0 || e2Wc2 <= 0 {
					return
				}
				resultOp = c.addLocalMinPoly(e1, e2, pt, false)
			}
			if resultOp != nil {
				c.setZ(e1, e2, &resultOp.pt)
			}
		}
	}
}

// ==============================================================================
// Intersection detection between scanlines
// ==============================================================================

// adjustCurrXAndCopyToSEL advances every active edge's X to topY and copies
// the AEL into the SEL in the same order, ready for the crossing merge sort.
func (c *ClipperBase) adjustCurrXAndCopyToSEL(topY int64) {
	e := c.actives
	c.sel = e
	for e != nil {
		e.prevInSEL = e.prevInAEL
		e.nextInSEL = e.nextInAEL
		e.jump = e.nextInSEL
		if e.joinWith == JoinWithLeft {
			e.curX = e.prevInAEL.curX // keeps joined edges together
		} else {
			e.curX = topX(e, topY)
		}
		e = e.nextInAEL
	}
}

func (c *ClipperBase) doIntersections(topY int64) {
	if c.buildIntersectList(topY) {
		c.processIntersectList()
		c.intersectList = c.intersectList[:0]
	}
}

// addNewIntersectNode records the crossing of two SEL-adjacent edges,
// clamping the computed point into the current scanbeam.
func (c *ClipperBase) addNewIntersectNode(e1, e2 *Active, topY int64) {
	ip, ok := getSegmentIntersectPt(e1.bot, e1.top, e2.bot, e2.top)
	if !ok {
		ip = Point64{X: e1.curX, Y: topY}
	}

	if ip.Y > c.currentBotY || ip.Y < topY {
		absDx1 := math.Abs(e1.dx)
		absDx2 := math.Abs(e2.dx)
		switch {
		case absDx1 > 100 && absDx2 > 100:
			if absDx1 > absDx2 {
				ip = getClosestPtOnSegment(ip, e1.bot, e1.top)
			} else {
				ip = getClosestPtOnSegment(ip, e2.bot, e2.top)
			}
		case absDx1 > 100:
			ip = getClosestPtOnSegment(ip, e1.bot, e1.top)
		case absDx2 > 100:
			ip = getClosestPtOnSegment(ip, e2.bot, e2.top)
		default:
			if ip.Y < topY {
				ip.Y = topY
			} else {
				ip.Y = c.currentBotY
			}
			if absDx1 < absDx2 {
				ip.X = topX(e1, ip.Y)
			} else {
				ip.X = topX(e2, ip.Y)
			}
		}
	}
	c.intersectList = append(c.intersectList, intersectNode{pt: ip, edge1: e1, edge2: e2})
}

func extractFromSEL(e *Active) *Active {
	res := e.nextInSEL
	if res != nil {
		res.prevInSEL = e.prevInSEL
	}
	e.prevInSEL.nextInSEL = res
	return res
}

func insert1Before2InSEL(e1, e2 *Active) {
	e1.prevInSEL = e2.prevInSEL
	if e1.prevInSEL != nil {
		e1.prevInSEL.nextInSEL = e1
	}
	e1.nextInSEL = e2
	e2.prevInSEL = e1
}

// buildIntersectList merge-sorts the SEL into its order at the top of the
// scanbeam, recording an intersect node for every adjacent swap.
func (c *ClipperBase) buildIntersectList(topY int64) bool {
	if c.actives == nil || c.actives.nextInAEL == nil {
		return false
	}
	c.adjustCurrXAndCopyToSEL(topY)

	left := c.sel
	for left.jump != nil {
		var prevBase *Active
		for left != nil && left.jump != nil {
			currBase := left
			right := left.jump
			lEnd := right
			rEnd := right.jump
			left.jump = rEnd
			for left != lEnd && right != rEnd {
				if right.curX < left.curX {
					tmp := right.prevInSEL
					for {
						c.addNewIntersectNode(tmp, right, topY)
						if tmp == left {
							break
						}
						tmp = tmp.prevInSEL
					}

					tmp = right
					right = extractFromSEL(tmp)
					lEnd = right
					insert1Before2InSEL(tmp, left)
					if left == currBase {
						currBase = tmp
						currBase.jump = rEnd
						if prevBase == nil {
							c.sel = currBase
						} else {
							prevBase.jump = currBase
						}
					}
				} else {
					left = left.nextInSEL
				}
			}
			prevBase = currBase
			left = rEnd
		}
		left = c.sel
	}
	return len(c.intersectList) > 0
}

// processIntersectList replays the recorded crossings bottom-up, keeping each
// swap between edges that are currently adjacent in the AEL.
func (c *ClipperBase) processIntersectList() {
	// Intersections have been sorted so the bottom-most are processed first,
	// but it's also crucial that intersections are made only between adjacent
	// edges, so the sorted order occasionally needs adjusting.
	sortIntersectNodes(c.intersectList)

	for i := range c.intersectList {
		if !edgesAdjacentInAEL(&c.intersectList[i]) {
			j := i + 1
			for !edgesAdjacentInAEL(&c.intersectList[j]) {
				j++
			}
			c.intersectList[i], c.intersectList[j] = c.intersectList[j], c.intersectList[i]
		}
		node := &c.intersectList[i]
		c.intersectEdges(node.edge1, node.edge2, node.pt)
		c.swapPositionsInAEL(node.edge1, node.edge2)
		node.edge1.curX = node.pt.X
		node.edge2.curX = node.pt.X
		c.checkJoinLeft(node.edge2, node.pt, true)
		c.checkJoinRight(node.edge1, node.pt, true)
	}
}

func edgesAdjacentInAEL(node *intersectNode) bool {
	return node.edge1.nextInAEL == node.edge2 || node.edge1.prevInAEL == node.edge2
}

// sortIntersectNodes orders nodes by descending Y, then ascending X.
func sortIntersectNodes(nodes []intersectNode) {
	// insertion sort keeps equal-point nodes in stable insertion order
	for i := 1; i < len(nodes); i++ {
		node := nodes[i]
		j := i - 1
		for j >= 0 && intersectNodeLess(node, nodes[j]) {
			nodes[j+1] = nodes[j]
			j--
		}
		nodes[j+1] = node
	}
}

func intersectNodeLess(a, b intersectNode) bool {
	if a.pt.Y != b.pt.Y {
		return a.pt.Y > b.pt.Y
	}
	return a.pt.X < b.pt.X
}

// ==============================================================================
// Top of scanbeam
// ==============================================================================

func (c *ClipperBase) doTopOfScanbeam(y int64) {
	c.sel = nil // reused to flag horizontals for later processing
	e := c.actives
	for e != nil {
		// nb: e will never be horizontal here
		if e.top.Y == y {
			e.curX = e.top.X
			if isMaxima(e) {
				e = c.doMaxima(e) // top of bound (maxima)
				continue
			}
			// intermediate vertex
			if isHotEdge(e) {
				c.addOutPt(e, e.top)
			}
			c.updateEdgeIntoAEL(e)
			if isHorizontal(e) {
				c.pushHorz(e)
			}
		} else {
			e.curX = topX(e, y)
		}
		e = e.nextInAEL
	}
}

func (c *ClipperBase) doMaxima(e *Active) *Active {
	prevE := e.prevInAEL
	nextE := e.nextInAEL

	if isOpenEndActive(e) {
		if isHotEdge(e) {
			c.addOutPt(e, e.top)
		}
		if !isHorizontal(e) {
			if isHotEdge(e) {
				if isFront(e) {
					e.outrec.frontEdge = nil
				} else {
					e.outrec.backEdge = nil
				}
				e.outrec = nil
			}
			c.deleteFromAEL(e)
		}
		return nextE
	}

	maxPair := getMaximaPair(e)
	if maxPair == nil {
		return nextE // eMaxPair is horizontal
	}

	if isJoined(e) {
		c.split(e, e.top)
	}
	if isJoined(maxPair) {
		c.split(maxPair, maxPair.top)
	}

	// only non-horizontal maxima here; process any edges between the maxima
	// pair
	for nextE != maxPair {
		c.intersectEdges(e, nextE, e.top)
		c.swapPositionsInAEL(e, nextE)
		nextE = e.nextInAEL
	}

	if isOpen(e) {
		if isHotEdge(e) {
			c.addLocalMaxPoly(e, maxPair, e.top)
		}
		c.deleteFromAEL(maxPair)
		c.deleteFromAEL(e)
	} else {
		// here e.nextInAEL == maxPair
		if isHotEdge(e) {
			c.addLocalMaxPoly(e, maxPair, e.top)
		}
		c.deleteFromAEL(e)
		c.deleteFromAEL(maxPair)
	}
	if prevE != nil {
		return prevE.nextInAEL
	}
	return c.actives
}

// ==============================================================================
// Trivial joins across shared vertices
// ==============================================================================

// checkJoinLeft bonds e to its AEL predecessor when both are hot, collinear
// and meeting at pt, splicing their rings immediately.
func (c *ClipperBase) checkJoinLeft(e *Active, pt Point64, checkCurrX bool) {
	prev := e.prevInAEL
	if prev == nil || !isHotEdge(e) || !isHotEdge(prev) ||
		isHorizontal(e) || isHorizontal(prev) ||
		isOpen(e) || isOpen(prev) {
		return
	}
	if (pt.Y < e.top.Y+2 || pt.Y < prev.top.Y+2) && // avoid trivial joins
		(e.bot.Y > pt.Y || prev.bot.Y > pt.Y) {
		return
	}

	if checkCurrX {
		if perpendicDistFromLineSqrd(pt, prev.bot, prev.top) > 0.25 {
			return
		}
	} else if e.curX != prev.curX {
		return
	}
	if crossProductSign(e.top, pt, prev.top) != 0 {
		return
	}

	if e.outrec.idx == prev.outrec.idx {
		c.addLocalMaxPoly(prev, e, pt)
	} else if e.outrec.idx < prev.outrec.idx {
		c.joinOutrecPaths(e, prev)
	} else {
		c.joinOutrecPaths(prev, e)
	}
	prev.joinWith = JoinWithRight
	e.joinWith = JoinWithLeft
}

// checkJoinRight is the mirror of checkJoinLeft for the AEL successor.
func (c *ClipperBase) checkJoinRight(e *Active, pt Point64, checkCurrX bool) {
	next := e.nextInAEL
	if next == nil || !isHotEdge(e) || !isHotEdge(next) ||
		isHorizontal(e) || isHorizontal(next) ||
		isOpen(e) || isOpen(next) {
		return
	}
	if (pt.Y < e.top.Y+2 || pt.Y < next.top.Y+2) &&
		(e.bot.Y > pt.Y || next.bot.Y > pt.Y) {
		return
	}

	if checkCurrX {
		if perpendicDistFromLineSqrd(pt, next.bot, next.top) > 0.25 {
			return
		}
	} else if e.curX != next.curX {
		return
	}
	if crossProductSign(e.top, pt, next.top) != 0 {
		return
	}

	if e.outrec.idx == next.outrec.idx {
		c.addLocalMaxPoly(e, next, pt)
	} else if e.outrec.idx < next.outrec.idx {
		c.joinOutrecPaths(e, next)
	} else {
		c.joinOutrecPaths(next, e)
	}
	e.joinWith = JoinWithRight
	next.joinWith = JoinWithLeft
}

// split undoes a join bond by restarting a ring at the current point.
func (c *ClipperBase) split(e *Active, currPt Point64) {
	if e.joinWith == JoinWithRight {
		e.joinWith = JoinWithNone
		e.nextInAEL.joinWith = JoinWithNone
		c.addLocalMinPoly(e, e.nextInAEL, currPt, true)
	} else {
		e.joinWith = JoinWithNone
		e.prevInAEL.joinWith = JoinWithNone
		c.addLocalMinPoly(e.prevInAEL, e, currPt, true)
	}
}
