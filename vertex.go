package polyclip

// ==============================================================================
// Vertex chains and local minima
// ==============================================================================
// Every input path becomes a doubly linked (circular for closed paths) chain
// of vertices. The chains outlive Execute so the engine can be re-run with
// the same inputs. A "local minimum" is a vertex whose neighbours are both
// above it in sweep order (smaller Y), ie the start of a left and a right
// bound that ascend toward their local maxima.

// VertexFlags marks the role of a vertex within its chain.
type VertexFlags uint8

const (
	VertexFlagsEmpty     VertexFlags = 0
	VertexFlagsOpenStart VertexFlags = 1 << iota // first vertex of an open path
	VertexFlagsOpenEnd                           // last vertex of an open path
	VertexFlagsLocalMax                          // top of a pair of bounds
	VertexFlagsLocalMin                          // bottom of a pair of bounds
)

// Vertex is a node in a path's vertex chain.
type Vertex struct {
	Pt    Point64
	Next  *Vertex
	Prev  *Vertex
	Flags VertexFlags
}

// LocalMinima queues a local minimum vertex together with the type and
// openness of the path it came from.
type LocalMinima struct {
	Vertex   *Vertex
	PathType PathType
	IsOpen   bool
}

func (v *Vertex) isLocalMinimum() bool { return v.Flags&VertexFlagsLocalMin != 0 }
func (v *Vertex) isLocalMaximum() bool { return v.Flags&VertexFlagsLocalMax != 0 }
func (v *Vertex) isOpenStart() bool    { return v.Flags&VertexFlagsOpenStart != 0 }
func (v *Vertex) isOpenEnd() bool      { return v.Flags&VertexFlagsOpenEnd != 0 }

// addLocMin registers vert as a local minimum unless it already is one.
func (c *ClipperBase) addLocMin(vert *Vertex, pathType PathType, isOpen bool) {
	if vert.Flags&VertexFlagsLocalMin != 0 {
		return
	}
	vert.Flags |= VertexFlagsLocalMin
	c.minimaList = append(c.minimaList, &LocalMinima{Vertex: vert, PathType: pathType, IsOpen: isOpen})
	c.isSortedMinimaList = false
}

// addPathsToVertexList converts paths into vertex chains, marking open ends,
// local minima and local maxima, and queuing a LocalMinima for every
// ascending/descending pair that shares a low vertex. Duplicate consecutive
// points (and the closing duplicate of closed paths) are skipped.
func (c *ClipperBase) addPathsToVertexList(paths Paths64, pathType PathType, isOpen bool) {
	for _, path := range paths {
		var v0, prevV *Vertex
		for _, pt := range path {
			if v0 == nil {
				v0 = &Vertex{Pt: pt}
				prevV = v0
			} else if !samePoint(prevV.Pt, pt) {
				v := &Vertex{Pt: pt, Prev: prevV}
				prevV.Next = v
				prevV = v
			}
		}
		if prevV == nil || prevV.Prev == nil {
			continue
		}
		if !isOpen && samePoint(prevV.Pt, v0.Pt) {
			prevV = prevV.Prev
		}
		prevV.Next = v0
		v0.Prev = prevV
		if !isOpen && prevV.Next == prevV {
			continue
		}
		c.vertexList = append(c.vertexList, v0)

		// find the initial direction, skipping leading horizontals
		var goingUp bool
		if isOpen {
			currV := v0.Next
			for currV != v0 && currV.Pt.Y == v0.Pt.Y {
				currV = currV.Next
			}
			goingUp = currV.Pt.Y <= v0.Pt.Y
			if goingUp {
				v0.Flags = VertexFlagsOpenStart
				c.addLocMin(v0, pathType, true)
			} else {
				v0.Flags = VertexFlagsOpenStart | VertexFlagsLocalMax
			}
		} else {
			prevV = v0.Prev
			for prevV != v0 && prevV.Pt.Y == v0.Pt.Y {
				prevV = prevV.Prev
			}
			if prevV == v0 {
				continue // completely flat closed path
			}
			goingUp = prevV.Pt.Y > v0.Pt.Y
		}

		goingUp0 := goingUp
		prevV = v0
		currV := v0.Next
		for currV != v0 {
			if currV.Pt.Y > prevV.Pt.Y && goingUp {
				prevV.Flags |= VertexFlagsLocalMax
				goingUp = false
			} else if currV.Pt.Y < prevV.Pt.Y && !goingUp {
				goingUp = true
				c.addLocMin(prevV, pathType, isOpen)
			}
			prevV = currV
			currV = currV.Next
		}

		if isOpen {
			prevV.Flags |= VertexFlagsOpenEnd
			if goingUp {
				prevV.Flags |= VertexFlagsLocalMax
			} else {
				c.addLocMin(prevV, pathType, isOpen)
			}
		} else if goingUp != goingUp0 {
			if goingUp0 {
				c.addLocMin(prevV, pathType, false)
			} else {
				prevV.Flags |= VertexFlagsLocalMax
			}
		}
	}
}
