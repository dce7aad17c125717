package polyclip

import "sort"

// ==============================================================================
// Horizontal edges
// ==============================================================================
// Horizontal edges need special treatment: they are processed immediately at
// their scanline rather than queued, their journey is split into sub-segments
// at every AEL edge within their span, and the output points they emit are
// collected into horizontal segments so that overlapping collinear runs can
// be stitched back together (or split apart) after the sweep.

// horzSegment records the span of output points a hot horizontal produced.
type horzSegment struct {
	leftOp      *OutPt
	rightOp     *OutPt
	leftToRight bool
}

// horzJoin is a pending splice between two overlapping horizontal segments.
type horzJoin struct {
	op1 *OutPt
	op2 *OutPt
}

// trimHorz removes 180-degree spikes from a horizontal run and, unless
// preserveCollinear, merges consecutive horizontals.
func (c *ClipperBase) trimHorz(horzEdge *Active, preserveCollinear bool) {
	wasTrimmed := false
	pt := nextVertex(horzEdge).Pt
	for pt.Y == horzEdge.top.Y {
		// always trim 180 deg. spikes (in closed paths), but otherwise break
		// if preserveCollinear = true
		if preserveCollinear && (pt.X < horzEdge.top.X) != (horzEdge.bot.X < horzEdge.top.X) {
			break
		}
		horzEdge.vertexTop = nextVertex(horzEdge)
		horzEdge.top = pt
		wasTrimmed = true
		if isMaxima(horzEdge) {
			break
		}
		pt = nextVertex(horzEdge).Pt
	}
	if wasTrimmed {
		setDx(horzEdge) // +/-infinity
	}
}

func (c *ClipperBase) addToHorzSegList(op *OutPt) {
	if op.outrec.isOpen {
		return
	}
	c.horzSegList = append(c.horzSegList, &horzSegment{leftOp: op, leftToRight: true})
}

func getLastOp(hotEdge *Active) *OutPt {
	outRec := hotEdge.outrec
	if hotEdge == outRec.frontEdge {
		return outRec.pts
	}
	return outRec.pts.next
}

// resetHorzDirection establishes the horizontal's sweep direction and span,
// accounting for "going nowhere" horizontals whose maxima pair lies ahead.
func resetHorzDirection(horz *Active, vertexMax *Vertex) (leftX, rightX int64, leftToRight bool) {
	if horz.bot.X == horz.top.X {
		// the horizontal edge is going nowhere
		leftX = horz.curX
		rightX = horz.curX
		e := horz.nextInAEL
		for e != nil && e.vertexTop != vertexMax {
			e = e.nextInAEL
		}
		return leftX, rightX, e != nil
	}
	if horz.curX < horz.top.X {
		return horz.curX, horz.top.X, true
	}
	return horz.top.X, horz.curX, false
}

// doHorizontal processes a horizontal edge (or a run of consecutive
// horizontals) at the current scanline, intersecting every AEL edge inside
// its span.
func (c *ClipperBase) doHorizontal(horz *Active) {
	// with closed paths, simplify consecutive horizontals into a 'single'
	// edge; with open paths, the respective local minima and maxima remain
	horzIsOpen := isOpen(horz)
	y := horz.bot.Y

	var vertexMax *Vertex
	if horzIsOpen {
		vertexMax = getCurrYMaximaVertexOpen(horz)
	} else {
		vertexMax = getCurrYMaximaVertex(horz)
	}

	// remove 180 deg. spikes and also simplify consecutive horizontals when
	// preserveCollinear = false
	if vertexMax != nil && !horzIsOpen && vertexMax != horz.vertexTop {
		c.trimHorz(horz, c.PreserveCollinear)
	}

	leftX, rightX, isLeftToRight := resetHorzDirection(horz, vertexMax)

	if isHotEdge(horz) {
		op := c.addOutPt(horz, Point64{X: horz.curX, Y: y, Z: horz.bot.Z})
		c.addToHorzSegList(op)
	}

	for {
		// loops through consecutive horizontal edges (if open)
		var e *Active
		if isLeftToRight {
			e = horz.nextInAEL
		} else {
			e = horz.prevInAEL
		}

		for e != nil {
			if e.vertexTop == vertexMax {
				// both bounds of the maxima are in the AEL
				if isHotEdge(horz) && isJoined(e) {
					c.split(e, e.top)
				}
				if isHotEdge(horz) {
					for horz.vertexTop != vertexMax {
						c.addOutPt(horz, horz.top)
						c.updateEdgeIntoAEL(horz)
					}
					if isLeftToRight {
						c.addLocalMaxPoly(horz, e, horz.top)
					} else {
						c.addLocalMaxPoly(e, horz, horz.top)
					}
				}
				c.deleteFromAEL(e)
				c.deleteFromAEL(horz)
				return
			}

			// if horz is a maxima, keep going until the maxima pair, otherwise
			// check for break conditions
			if vertexMax != horz.vertexTop || isOpenEndActive(horz) {
				// otherwise stop when e is beyond the end of the horizontal
				if (isLeftToRight && e.curX > rightX) || (!isLeftToRight && e.curX < leftX) {
					break
				}
				if e.curX == horz.top.X && !isHorizontal(e) {
					pt := nextVertex(horz).Pt
					// to maximize the possibility of putting open edges into
					// solutions, we'll only break if it's past horz's end
					if isOpen(e) && !isSamePolyType(e, horz) && !isHotEdge(e) {
						if (isLeftToRight && topX(e, pt.Y) > pt.X) ||
							(!isLeftToRight && topX(e, pt.Y) < pt.X) {
							break
						}
					} else if (isLeftToRight && topX(e, pt.Y) >= pt.X) ||
						(!isLeftToRight && topX(e, pt.Y) <= pt.X) {
						// for edges at horz's end, only stop when horz's
						// outslope is greater than e's (heading right) or less
						// than e's (heading left)
						break
					}
				}
			}

			pt := Point64{X: e.curX, Y: y}
			if isLeftToRight {
				c.intersectEdges(horz, e, pt)
				c.swapPositionsInAEL(horz, e)
				horz.curX = e.curX
				e = horz.nextInAEL
			} else {
				c.intersectEdges(e, horz, pt)
				c.swapPositionsInAEL(e, horz)
				horz.curX = e.curX
				e = horz.prevInAEL
			}
			if isHotEdge(horz) {
				c.addToHorzSegList(getLastOp(horz))
			}
		}
		// we've reached the end of this horizontal

		// check if we've finished looping through consecutive horizontals
		if horzIsOpen && isOpenEndActive(horz) { // ie open at top
			if isHotEdge(horz) {
				c.addOutPt(horz, horz.top)
				if isFront(horz) {
					horz.outrec.frontEdge = nil
				} else {
					horz.outrec.backEdge = nil
				}
				horz.outrec = nil
			}
			c.deleteFromAEL(horz)
			return
		}
		if nextVertex(horz).Pt.Y != horz.top.Y {
			break
		}

		// there must be a following (consecutive) horizontal
		if isHotEdge(horz) {
			c.addOutPt(horz, horz.top)
		}
		c.updateEdgeIntoAEL(horz)
		leftX, rightX, isLeftToRight = resetHorzDirection(horz, vertexMax)
	}

	if isHotEdge(horz) {
		op := c.addOutPt(horz, horz.top)
		c.addToHorzSegList(op)
	}
	c.updateEdgeIntoAEL(horz) // end of an intermediate horizontal
}

// ==============================================================================
// Horizontal segment joins
// ==============================================================================

func setHorzSegHeadingForward(hs *horzSegment, opP, opN *OutPt) bool {
	if opP.pt.X == opN.pt.X {
		return false
	}
	if opP.pt.X < opN.pt.X {
		hs.leftOp = opP
		hs.rightOp = opN
		hs.leftToRight = true
	} else {
		hs.leftOp = opN
		hs.rightOp = opP
		hs.leftToRight = false
	}
	return true
}

// updateHorzSegment extends a recorded segment to the full extent of its
// horizontal run and orients it; returns false for degenerate or duplicate
// segments.
func updateHorzSegment(hs *horzSegment) bool {
	op := hs.leftOp
	outRec := getRealOutRec(op.outrec)
	outrecHasEdges := outRec.frontEdge != nil
	currY := op.pt.Y
	opP, opN := op, op
	if outrecHasEdges {
		opA := outRec.pts
		opZ := opA.next
		for opP != opZ && opP.prev.pt.Y == currY {
			opP = opP.prev
		}
		for opN != opA && opN.next.pt.Y == currY {
			opN = opN.next
		}
	} else {
		for opP.prev != opN && opP.prev.pt.Y == currY {
			opP = opP.prev
		}
		for opN.next != opP && opN.next.pt.Y == currY {
			opN = opN.next
		}
	}
	result := setHorzSegHeadingForward(hs, opP, opN) && hs.leftOp.horz == nil
	if result {
		hs.leftOp.horz = hs
	} else {
		hs.rightOp = nil // (for sorting)
	}
	return result
}

func duplicateOp(op *OutPt, insertAfter bool) *OutPt {
	result := &OutPt{pt: op.pt, outrec: op.outrec}
	if insertAfter {
		result.next = op.next
		result.next.prev = result
		result.prev = op
		op.next = result
	} else {
		result.prev = op.prev
		result.prev.next = result
		result.next = op
		op.prev = result
	}
	return result
}

// convertHorzSegsToJoins pairs up overlapping opposite-direction horizontal
// segments and queues a join for each overlap.
func (c *ClipperBase) convertHorzSegsToJoins() {
	k := 0
	for _, hs := range c.horzSegList {
		if updateHorzSegment(hs) {
			k++
		}
	}
	if k < 2 {
		return
	}
	sort.SliceStable(c.horzSegList, func(i, j int) bool {
		hs1, hs2 := c.horzSegList[i], c.horzSegList[j]
		if hs1.rightOp == nil {
			return false
		}
		if hs2.rightOp == nil {
			return true
		}
		return hs1.leftOp.pt.X < hs2.leftOp.pt.X
	})

	for i := 0; i < k-1; i++ {
		hs1 := c.horzSegList[i]
		// for each HorzSegment, find others that overlap
		for j := i + 1; j < k; j++ {
			hs2 := c.horzSegList[j]
			if hs2.leftOp.pt.X >= hs1.rightOp.pt.X ||
				hs2.leftToRight == hs1.leftToRight ||
				hs2.rightOp.pt.X <= hs1.leftOp.pt.X {
				continue
			}
			currY := hs1.leftOp.pt.Y
			if hs1.leftToRight {
				for hs1.leftOp.next.pt.Y == currY && hs1.leftOp.next.pt.X <= hs2.leftOp.pt.X {
					hs1.leftOp = hs1.leftOp.next
				}
				for hs2.leftOp.prev.pt.Y == currY && hs2.leftOp.prev.pt.X <= hs1.leftOp.pt.X {
					hs2.leftOp = hs2.leftOp.prev
				}
				c.horzJoinList = append(c.horzJoinList, &horzJoin{
					op1: duplicateOp(hs1.leftOp, true),
					op2: duplicateOp(hs2.leftOp, false),
				})
			} else {
				for hs1.leftOp.prev.pt.Y == currY && hs1.leftOp.prev.pt.X <= hs2.leftOp.pt.X {
					hs1.leftOp = hs1.leftOp.prev
				}
				for hs2.leftOp.next.pt.Y == currY && hs2.leftOp.next.pt.X <= hs1.leftOp.pt.X {
					hs2.leftOp = hs2.leftOp.next
				}
				c.horzJoinList = append(c.horzJoinList, &horzJoin{
					op1: duplicateOp(hs2.leftOp, true),
					op2: duplicateOp(hs1.leftOp, false),
				})
			}
		}
	}
}

func moveSplits(fromOr, toOr *OutRec) {
	if fromOr.splits == nil {
		return
	}
	toOr.splits = append(toOr.splits, fromOr.splits...)
	fromOr.splits = nil
}

// processHorzJoins splices the queued horizontal joins, splitting a ring in
// two when a join connects a ring to itself.
func (c *ClipperBase) processHorzJoins() {
	for _, j := range c.horzJoinList {
		or1 := getRealOutRec(j.op1.outrec)
		or2 := getRealOutRec(j.op2.outrec)

		op1b := j.op1.next
		op2b := j.op2.prev
		j.op1.next = j.op2
		j.op2.prev = j.op1
		op1b.prev = op2b
		op2b.next = op1b

		if or1 == or2 { // the join is really a split
			or2 = c.newOutRec()
			or2.pts = op1b
			fixOutRecPts(or2)

			// if or1.pts has moved to or2 then update or1.pts
			if or1.pts.outrec == or2 {
				or1.pts = j.op1
				or1.pts.outrec = or1
			}

			if c.usingPolytree {
				if path1InsidePath2(or1.pts, or2.pts) {
					// swap or1's & or2's pts
					or1.pts, or2.pts = or2.pts, or1.pts
					fixOutRecPts(or1)
					fixOutRecPts(or2)
					// or2 is now inside or1
					or2.owner = or1
				} else if path1InsidePath2(or2.pts, or1.pts) {
					or2.owner = or1
				} else {
					or2.owner = or1.owner
				}
				or1.splits = append(or1.splits, or2.idx)
			} else {
				or2.owner = or1
			}
		} else {
			or2.pts = nil
			if c.usingPolytree {
				setOwner(or2, or1)
				moveSplits(or2, or1)
			} else {
				or2.owner = or1
			}
		}
	}
	c.horzJoinList = c.horzJoinList[:0]
}
