package polyclip

// ==============================================================================
// Output rings: OutRec construction, joining, splitting and final cleanup
// ==============================================================================
// An OutRec is an emerging output polygon: a cyclic doubly linked ring of
// OutPts bounded, while still being built, by a front and a back active edge.
// Rings are spliced when two building polygons meet, split when a ring is
// found to self-intersect, and classified as outer or hole at the end.

// OutPt is a point in an output ring.
type OutPt struct {
	pt     Point64
	next   *OutPt
	prev   *OutPt
	outrec *OutRec
	horz   *horzSegment // back-pointer while horizontal joins are collected
}

func newOutPt(pt Point64, outrec *OutRec) *OutPt {
	op := &OutPt{pt: pt, outrec: outrec}
	op.next = op
	op.prev = op
	return op
}

// OutRec is an output polygon record.
type OutRec struct {
	idx       int
	owner     *OutRec
	frontEdge *Active
	backEdge  *Active
	pts       *OutPt
	polypath  *PolyPath64
	bounds    Rect64
	path      Path64
	isOpen    bool

	// splits records sibling rings carved off this one during the sweep;
	// they guide hole ownership when building a PolyTree
	splits         []int
	recursiveSplit *OutRec
}

func (c *ClipperBase) newOutRec() *OutRec {
	result := &OutRec{idx: len(c.outrecList)}
	c.outrecList = append(c.outrecList, result)
	return result
}

// getRealOutRec skips records whose rings were absorbed by joins.
func getRealOutRec(outRec *OutRec) *OutRec {
	for outRec != nil && outRec.pts == nil {
		outRec = outRec.owner
	}
	return outRec
}

func isValidOwner(outRec, testOwner *OutRec) bool {
	for testOwner != nil && testOwner != outRec {
		testOwner = testOwner.owner
	}
	return testOwner == nil
}

func setSides(outRec *OutRec, startEdge, endEdge *Active) {
	outRec.frontEdge = startEdge
	outRec.backEdge = endEdge
}

func setOwner(outRec, newOwner *OutRec) {
	// precondition: newOwner is never nil
	for newOwner.owner != nil && newOwner.owner.pts == nil {
		newOwner.owner = newOwner.owner.owner
	}
	// make sure that outRec isn't an owner of newOwner
	tmp := newOwner
	for tmp != nil && tmp != outRec {
		tmp = tmp.owner
	}
	if tmp != nil {
		newOwner.owner = outRec.owner
	}
	outRec.owner = newOwner
}

func swapOutrecs(e1, e2 *Active) {
	or1 := e1.outrec
	or2 := e2.outrec
	if or1 == or2 {
		or1.frontEdge, or1.backEdge = or1.backEdge, or1.frontEdge
		return
	}
	if or1 != nil {
		if e1 == or1.frontEdge {
			or1.frontEdge = e2
		} else {
			or1.backEdge = e2
		}
	}
	if or2 != nil {
		if e2 == or2.frontEdge {
			or2.frontEdge = e1
		} else {
			or2.backEdge = e1
		}
	}
	e1.outrec = or2
	e2.outrec = or1
}

func outrecIsAscending(hotEdge *Active) bool {
	return hotEdge == hotEdge.outrec.frontEdge
}

func swapFrontBackSides(outRec *OutRec) {
	// while this proc. is needed for open paths it's almost never needed for
	// closed paths
	outRec.frontEdge, outRec.backEdge = outRec.backEdge, outRec.frontEdge
	outRec.pts = outRec.pts.next
}

func uncoupleOutRec(e *Active) {
	outRec := e.outrec
	if outRec == nil {
		return
	}
	outRec.frontEdge.outrec = nil
	outRec.backEdge.outrec = nil
	outRec.frontEdge = nil
	outRec.backEdge = nil
}

// ==============================================================================
// Ring construction
// ==============================================================================

// addLocalMinPoly opens a new output ring at a contributing local minimum.
func (c *ClipperBase) addLocalMinPoly(e1, e2 *Active, pt Point64, isNew bool) *OutPt {
	outRec := c.newOutRec()
	e1.outrec = outRec
	e2.outrec = outRec

	if isOpen(e1) {
		outRec.owner = nil
		outRec.isOpen = true
		if e1.windDx > 0 {
			setSides(outRec, e1, e2)
		} else {
			setSides(outRec, e2, e1)
		}
	} else {
		outRec.isOpen = false
		prevHotEdge := getPrevHotEdge(e1)
		// e1.windDx is the winding direction of the **input** paths and unrelated
		// to the winding direction of output polygons, which is determined by
		// the orientation of the bounding edges at the time the ring starts.
		if prevHotEdge != nil {
			if c.usingPolytree {
				setOwner(outRec, prevHotEdge.outrec)
			} else {
				outRec.owner = prevHotEdge.outrec
			}
			if outrecIsAscending(prevHotEdge) == isNew {
				setSides(outRec, e2, e1)
			} else {
				setSides(outRec, e1, e2)
			}
		} else {
			outRec.owner = nil
			if isNew {
				setSides(outRec, e1, e2)
			} else {
				setSides(outRec, e2, e1)
			}
		}
	}

	op := newOutPt(pt, outRec)
	outRec.pts = op
	return op
}

// addLocalMaxPoly closes (or joins) rings where two bounds meet at a local
// maximum.
func (c *ClipperBase) addLocalMaxPoly(e1, e2 *Active, pt Point64) *OutPt {
	if isJoined(e1) {
		c.split(e1, pt)
	}
	if isJoined(e2) {
		c.split(e2, pt)
	}

	if isFront(e1) == isFront(e2) {
		if isOpenEndActive(e1) {
			swapFrontBackSides(e1.outrec)
		} else if isOpenEndActive(e2) {
			swapFrontBackSides(e2.outrec)
		} else {
			c.succeeded = false
			return nil
		}
	}

	result := c.addOutPt(e1, pt)
	if e1.outrec == e2.outrec {
		outRec := e1.outrec
		outRec.pts = result
		if c.usingPolytree {
			e := getPrevHotEdge(e1)
			if e == nil {
				outRec.owner = nil
			} else {
				setOwner(outRec, e.outrec)
			}
			// nb: outRec.owner here is likely NOT the real owner but this
			// is fixed in BuildTree
		}
		uncoupleOutRec(e1)
	} else if isOpen(e1) {
		// preserve the winding orientation of the open path
		if e1.windDx < 0 {
			c.joinOutrecPaths(e1, e2)
		} else {
			c.joinOutrecPaths(e2, e1)
		}
	} else if e1.outrec.idx < e2.outrec.idx {
		c.joinOutrecPaths(e1, e2)
	} else {
		c.joinOutrecPaths(e2, e1)
	}
	return result
}

// joinOutrecPaths splices e2's ring onto e1's: the back of one becomes the
// front of the other, and e2's record becomes an empty alias of e1's.
func (c *ClipperBase) joinOutrecPaths(e1, e2 *Active) {
	// join e2 outrec path onto e1 outrec path and then delete e2 outrec path
	// pointers. (NB: Only very rarely do the joining ends share the same
	// coordinates.)
	p1Start := e1.outrec.pts
	p2Start := e2.outrec.pts
	p1End := p1Start.next
	p2End := p2Start.next
	if isFront(e1) {
		p2End.prev = p1Start
		p1Start.next = p2End
		p2Start.next = p1End
		p1End.prev = p2Start
		e1.outrec.pts = p2Start
		// nb: if IsOpen(e1) then e1 & e2 must be a 'maximaPair'
		e1.outrec.frontEdge = e2.outrec.frontEdge
		if e1.outrec.frontEdge != nil {
			e1.outrec.frontEdge.outrec = e1.outrec
		}
	} else {
		p1End.prev = p2Start
		p2Start.next = p1End
		p1Start.next = p2End
		p2End.prev = p1Start
		e1.outrec.backEdge = e2.outrec.backEdge
		if e1.outrec.backEdge != nil {
			e1.outrec.backEdge.outrec = e1.outrec
		}
	}

	// after joining, the e2.outrec must contain no vertices
	e2.outrec.frontEdge = nil
	e2.outrec.backEdge = nil
	e2.outrec.pts = nil
	setOwner(e2.outrec, e1.outrec)

	if isOpenEndActive(e1) {
		e2.outrec.pts = e1.outrec.pts
		e1.outrec.pts = nil
	}

	// and e1 and e2 are maxima and are about to be dropped from the AEL
	e1.outrec = nil
	e2.outrec = nil
}

// addOutPt appends pt to the front or back of the edge's ring.
func (c *ClipperBase) addOutPt(e *Active, pt Point64) *OutPt {
	outRec := e.outrec
	toFront := isFront(e)
	opFront := outRec.pts
	opBack := opFront.next

	if toFront && samePoint(pt, opFront.pt) {
		return opFront
	}
	if !toFront && samePoint(pt, opBack.pt) {
		return opBack
	}

	newOp := &OutPt{pt: pt, outrec: outRec}
	opBack.prev = newOp
	newOp.prev = opFront
	newOp.next = opBack
	opFront.next = newOp
	if toFront {
		outRec.pts = newOp
	}
	return newOp
}

// startOpenPath begins an open-path ring bounded on a single side.
func (c *ClipperBase) startOpenPath(e *Active, pt Point64) *OutPt {
	outRec := c.newOutRec()
	outRec.isOpen = true
	if e.windDx > 0 {
		outRec.frontEdge = e
		outRec.backEdge = nil
	} else {
		outRec.frontEdge = nil
		outRec.backEdge = e
	}
	e.outrec = outRec

	op := newOutPt(pt, outRec)
	outRec.pts = op
	return op
}

func disposeOutPt(op *OutPt) *OutPt {
	result := op.next
	if result == op {
		result = nil
	}
	op.prev.next = op.next
	op.next.prev = op.prev
	return result
}

func isValidClosedPath(op *OutPt) bool {
	return op != nil && op.next != op && (op.next != op.prev || !isVerySmallTriangle(op))
}

func isVerySmallTriangle(op *OutPt) bool {
	return op.next.next == op.prev &&
		(ptsReallyClose(op.prev.pt, op.next.pt) ||
			ptsReallyClose(op.pt, op.next.pt) ||
			ptsReallyClose(op.pt, op.prev.pt))
}

func ptsReallyClose(pt1, pt2 Point64) bool {
	return abs64(pt1.X-pt2.X) < 2 && abs64(pt1.Y-pt2.Y) < 2
}

// outPtArea returns twice the signed area of the ring containing op.
func outPtArea(op *OutPt) float64 {
	var area float64
	op2 := op
	for {
		area += float64(op2.prev.pt.Y+op2.pt.Y) * float64(op2.prev.pt.X-op2.pt.X)
		op2 = op2.next
		if op2 == op {
			break
		}
	}
	return area * 0.5
}

func areaTriangle(pt1, pt2, pt3 Point64) float64 {
	return (float64(pt3.Y+pt1.Y)*float64(pt3.X-pt1.X) +
		float64(pt1.Y+pt2.Y)*float64(pt1.X-pt2.X) +
		float64(pt2.Y+pt3.Y)*float64(pt2.X-pt3.X)) * 0.5
}

// ==============================================================================
// Post-sweep cleanup
// ==============================================================================

// cleanCollinear removes zero-length segments and, unless preserveCollinear,
// unlinks any point collinear with its neighbours. 180-degree spikes are
// always removed.
func (c *ClipperBase) cleanCollinear(outRec *OutRec) {
	outRec = getRealOutRec(outRec)
	if outRec == nil || outRec.isOpen {
		return
	}
	if !isValidClosedPath(outRec.pts) {
		outRec.pts = nil
		return
	}

	startOp := outRec.pts
	op2 := startOp
	for {
		// nb: when preserveCollinear == true, only remove 180 deg. spikes
		if IsCollinear(op2.prev.pt, op2.pt, op2.next.pt) &&
			(samePoint(op2.pt, op2.prev.pt) || samePoint(op2.pt, op2.next.pt) ||
				!c.PreserveCollinear ||
				DotProduct128(op2.prev.pt, op2.pt, op2.next.pt).IsNegative()) {
			if op2 == outRec.pts {
				outRec.pts = op2.prev
			}
			op2 = disposeOutPt(op2)
			if !isValidClosedPath(op2) {
				outRec.pts = nil
				return
			}
			startOp = op2
			continue
		}
		op2 = op2.next
		if op2 == startOp {
			break
		}
	}
	c.fixSelfIntersects(outRec)
}

func (c *ClipperBase) fixSelfIntersects(outRec *OutRec) {
	op2 := outRec.pts
	if op2 == nil {
		return
	}
	for {
		if op2.prev == op2.next.next {
			break // triangles can't self-intersect
		}
		if segsIntersect(op2.prev.pt, op2.pt, op2.next.pt, op2.next.next.pt, false) {
			c.doSplitOp(outRec, op2)
			if outRec.pts == nil {
				return
			}
			op2 = outRec.pts
			continue
		}
		op2 = op2.next
		if op2 == outRec.pts {
			break
		}
	}
}

// doSplitOp resolves the self-intersection around splitOp by inserting the
// crossing point and carving the loop off into its own OutRec when it has
// meaningful area.
func (c *ClipperBase) doSplitOp(outRec *OutRec, splitOp *OutPt) {
	// splitOp.prev <=> splitOp and splitOp.next <=> splitOp.next.next are the
	// intersecting segments
	prevOp := splitOp.prev
	nextNextOp := splitOp.next.next
	outRec.pts = prevOp

	ip, _ := getSegmentIntersectPt(prevOp.pt, splitOp.pt, splitOp.next.pt, nextNextOp.pt)
	if c.zCallback != nil {
		c.zCallback(prevOp.pt, splitOp.pt, splitOp.next.pt, nextNextOp.pt, &ip)
	}

	area1 := outPtArea(prevOp)
	absArea1 := absFloat(area1)
	if absArea1 < 2 {
		outRec.pts = nil
		return
	}
	area2 := areaTriangle(ip, splitOp.pt, splitOp.next.pt)
	absArea2 := absFloat(area2)

	// delink splitOp and splitOp.next from the path while inserting the
	// intersection point
	if samePoint(ip, prevOp.pt) || samePoint(ip, nextNextOp.pt) {
		nextNextOp.prev = prevOp
		prevOp.next = nextNextOp
	} else {
		newOp2 := &OutPt{pt: ip, outrec: outRec, prev: prevOp, next: nextNextOp}
		nextNextOp.prev = newOp2
		prevOp.next = newOp2
	}

	// nb: area1 is the path's area *before* splitting, whereas area2 is the
	// area of the triangle containing splitOp & splitOp.next. So the only
	// way for these areas to have the same sign is if the split triangle is
	// larger than the path containing prevOp or if there's more than one
	// self-intersection.
	if absArea2 > 1 && (absArea2 > absArea1 || (area2 > 0) == (area1 > 0)) {
		newOutRec := c.newOutRec()
		newOutRec.owner = outRec.owner
		splitOp.outrec = newOutRec
		splitOp.next.outrec = newOutRec

		newOp := &OutPt{pt: ip, outrec: newOutRec, prev: splitOp.next, next: splitOp}
		newOutRec.pts = newOp
		splitOp.prev = newOp
		splitOp.next.next = newOp

		if c.usingPolytree {
			if path1InsidePath2(prevOp, newOp) {
				newOutRec.splits = append(newOutRec.splits, outRec.idx)
			} else {
				outRec.splits = append(outRec.splits, newOutRec.idx)
			}
		}
	}
	// else the split is discarded
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func fixOutRecPts(outRec *OutRec) {
	op := outRec.pts
	for {
		op.outrec = outRec
		op = op.next
		if op == outRec.pts {
			break
		}
	}
}

// getCleanPath returns op's ring as a path with collinear points skipped.
func getCleanPath(op *OutPt) Path64 {
	var result Path64
	op2 := op
	for op2.next != op &&
		((op2.pt.X == op2.next.pt.X && op2.pt.X == op2.prev.pt.X) ||
			(op2.pt.Y == op2.next.pt.Y && op2.pt.Y == op2.prev.pt.Y)) {
		op2 = op2.next
	}
	result = append(result, op2.pt)
	prevOp := op2
	op2 = op2.next
	for op2 != op {
		if (op2.pt.X != op2.next.pt.X || op2.pt.X != prevOp.pt.X) &&
			(op2.pt.Y != op2.next.pt.Y || op2.pt.Y != prevOp.pt.Y) {
			result = append(result, op2.pt)
			prevOp = op2
		}
		op2 = op2.next
	}
	return result
}

// path1InsidePath2 decides containment of one ring within another by voting
// over ring vertices and falling back to the midpoint when equivocal.
func path1InsidePath2(op1, op2 *OutPt) bool {
	// we need to make some accommodation for rounding errors, so we won't
	// jump if the first vertex is found outside
	outsideCnt := 0
	op := op1
	path2 := outPtPath(op2)
	for {
		switch PointInPolygon(op.pt, path2) {
		case PointOutside:
			outsideCnt++
		case PointInside:
			outsideCnt--
		}
		op = op.next
		if op == op1 || outsideCnt > 1 || outsideCnt < -1 {
			break
		}
	}
	if outsideCnt > 1 || outsideCnt < -1 {
		return outsideCnt < 0
	}
	// since path1's location is still equivocal, check its midpoint
	mp := GetBounds(getCleanPath(op1)).MidPoint()
	return PointInPolygon(mp, getCleanPath(op2)) != PointOutside
}

func outPtPath(op *OutPt) Path64 {
	var result Path64
	op2 := op
	for {
		result = append(result, op2.pt)
		op2 = op2.next
		if op2 == op {
			break
		}
	}
	return result
}

// ==============================================================================
// Building solutions
// ==============================================================================

// buildPath walks a ring into a Path64, dropping repeated points. Closed
// paths of fewer than three distinct points (or nearly zero area triangles)
// are rejected.
func buildPath(op *OutPt, reverse, isOpen bool) (Path64, bool) {
	if op == nil || op.next == op || (!isOpen && op.next == op.prev) {
		return nil, false
	}

	var path Path64
	var lastPt Point64
	var op2 *OutPt
	if reverse {
		lastPt = op.pt
		op2 = op.prev
	} else {
		op = op.next
		lastPt = op.pt
		op2 = op.next
	}
	path = append(path, lastPt)

	for op2 != op {
		if !samePoint(op2.pt, lastPt) {
			lastPt = op2.pt
			path = append(path, lastPt)
		}
		if reverse {
			op2 = op2.prev
		} else {
			op2 = op2.next
		}
	}

	if len(path) == 3 && !isOpen && isVerySmallTriangle(op2) {
		return nil, false
	}
	return path, true
}

// buildPaths materializes every OutRec into the closed or open solution.
func (c *ClipperBase) buildPaths(solutionClosed, solutionOpen *Paths64) {
	*solutionClosed = (*solutionClosed)[:0]
	*solutionOpen = (*solutionOpen)[:0]

	i := 0
	// outrecList.Count is not static here because cleanCollinear below can
	// indirectly add additional OutRec (via fixSelfIntersects)
	for i < len(c.outrecList) {
		outRec := c.outrecList[i]
		i++
		if outRec.pts == nil {
			continue
		}

		if outRec.isOpen {
			if path, ok := buildPath(outRec.pts, c.ReverseSolution, true); ok {
				*solutionOpen = append(*solutionOpen, path)
			}
			continue
		}
		c.cleanCollinear(outRec)
		// closed paths should always return a positive orientation except
		// when ReverseSolution == true
		if path, ok := buildPath(outRec.pts, c.ReverseSolution, false); ok {
			*solutionClosed = append(*solutionClosed, path)
		}
	}
}

// checkBounds lazily cleans and builds outRec.path and its bounds.
func (c *ClipperBase) checkBounds(outRec *OutRec) bool {
	if outRec.pts == nil {
		return false
	}
	if !outRec.bounds.IsEmpty() {
		return true
	}
	c.cleanCollinear(outRec)
	if outRec.pts == nil {
		return false
	}
	path, ok := buildPath(outRec.pts, c.ReverseSolution, false)
	if !ok {
		return false
	}
	outRec.path = path
	outRec.bounds = GetBounds(path)
	return !outRec.bounds.IsEmpty()
}

// checkSplitOwner looks through the splits of outRec's provisional owner for
// the ring that actually encloses it.
func (c *ClipperBase) checkSplitOwner(outRec *OutRec, splits []int) bool {
	for _, i := range splits {
		split := getRealOutRec(c.outrecList[i])
		if split == nil || split == outRec || split.recursiveSplit == outRec {
			continue
		}
		split.recursiveSplit = outRec // prevents infinite loops
		if split.splits != nil && c.checkSplitOwner(outRec, split.splits) {
			return true
		}
		if isValidOwner(outRec, split) && c.checkBounds(split) &&
			split.bounds.ContainsRect(outRec.bounds) &&
			path1InsidePath2(outRec.pts, split.pts) {
			outRec.owner = split
			return true
		}
	}
	return false
}

// recursiveCheckOwners settles outRec's owner chain and hangs its path on the
// polytree.
func (c *ClipperBase) recursiveCheckOwners(outRec *OutRec, polypath *PolyPath64) {
	// precondition: outRec will have valid bounds
	// postcondition: if a valid path, outRec will have a polypath
	if outRec.polypath != nil || outRec.bounds.IsEmpty() {
		return
	}

	for outRec.owner != nil {
		if outRec.owner.splits != nil && c.checkSplitOwner(outRec, outRec.owner.splits) {
			break
		}
		if outRec.owner.pts != nil && c.checkBounds(outRec.owner) &&
			outRec.owner.bounds.ContainsRect(outRec.bounds) &&
			path1InsidePath2(outRec.pts, outRec.owner.pts) {
			break
		}
		outRec.owner = outRec.owner.owner
	}

	if outRec.owner != nil {
		if outRec.owner.polypath == nil {
			c.recursiveCheckOwners(outRec.owner, polypath)
		}
		outRec.polypath = outRec.owner.polypath.AddChild(outRec.path)
	} else {
		outRec.polypath = polypath.AddChild(outRec.path)
	}
}

// buildTree materializes the OutRecs into a PolyTree plus open paths.
func (c *ClipperBase) buildTree(polytree *PolyPath64, solutionOpen *Paths64) {
	polytree.Clear()
	*solutionOpen = (*solutionOpen)[:0]

	i := 0
	for i < len(c.outrecList) {
		outRec := c.outrecList[i]
		i++
		if outRec.pts == nil {
			continue
		}

		if outRec.isOpen {
			if path, ok := buildPath(outRec.pts, c.ReverseSolution, true); ok {
				*solutionOpen = append(*solutionOpen, path)
			}
			continue
		}
		if c.checkBounds(outRec) {
			c.recursiveCheckOwners(outRec, polytree)
		}
	}
}
