package polyclip

import "sort"

// ==============================================================================
// The clipping engine
// ==============================================================================
// ClipperBase owns all sweep state. Vertex chains and the local minima list
// survive Execute so an engine can be re-executed with the same inputs;
// everything else is rebuilt per run. Engines are single-threaded: distinct
// instances may run concurrently, a single instance may not.

// ClipperBase implements the Vatti sweep shared by Clipper64 and ClipperD.
type ClipperBase struct {
	// PreserveCollinear keeps exactly collinear output triplets (spikes are
	// still removed).
	PreserveCollinear bool
	// ReverseSolution negates the orientation of every output ring.
	ReverseSolution bool

	clipType ClipType
	fillRule FillRule

	scanlines scanlineStore
	actives   *Active
	sel       *Active

	minimaList    []*LocalMinima
	vertexList    []*Vertex
	outrecList    []*OutRec
	intersectList []intersectNode
	horzSegList   []*horzSegment
	horzJoinList  []*horzJoin

	currentLocMin      int
	currentBotY        int64
	isSortedMinimaList bool
	hasOpenPaths       bool
	usingPolytree      bool
	succeeded          bool

	zCallback ZCallback64
}

// SetZCallback registers a callback invoked at every computed intersection.
func (c *ClipperBase) SetZCallback(cb ZCallback64) { c.zCallback = cb }

// addPaths stages paths with the given type and openness.
func (c *ClipperBase) addPaths(paths Paths64, pathType PathType, isOpen bool) {
	if isOpen {
		c.hasOpenPaths = true
	}
	c.isSortedMinimaList = false
	c.addPathsToVertexList(paths, pathType, isOpen)
}

// clearSolutionOnly discards per-run state but keeps the staged inputs.
func (c *ClipperBase) clearSolutionOnly() {
	for c.actives != nil {
		c.deleteFromAEL(c.actives)
	}
	c.scanlines.reset()
	c.intersectList = c.intersectList[:0]
	c.horzSegList = c.horzSegList[:0]
	c.horzJoinList = c.horzJoinList[:0]
	c.outrecList = nil
	c.sel = nil
}

// Clear releases the staged inputs and all per-run state.
func (c *ClipperBase) Clear() {
	c.clearSolutionOnly()
	c.minimaList = nil
	c.vertexList = nil
	c.currentLocMin = 0
	c.isSortedMinimaList = false
	c.hasOpenPaths = false
}

// reset prepares the sweep: local minima sorted by descending Y (stable, so
// equal-Y minima keep insertion order) and their Y stops queued.
func (c *ClipperBase) reset() {
	if !c.isSortedMinimaList {
		sort.SliceStable(c.minimaList, func(i, j int) bool {
			return c.minimaList[i].Vertex.Pt.Y > c.minimaList[j].Vertex.Pt.Y
		})
		c.isSortedMinimaList = true
	}
	for i := len(c.minimaList) - 1; i >= 0; i-- {
		c.scanlines.push(c.minimaList[i].Vertex.Pt.Y)
	}
	c.currentBotY = 0
	c.currentLocMin = 0
	c.actives = nil
	c.sel = nil
	c.succeeded = true
}

// executeInternal runs the sweep loop to completion.
func (c *ClipperBase) executeInternal(clipType ClipType, fillRule FillRule, usingPolytree bool) {
	c.succeeded = true
	if clipType == NoClip {
		return
	}
	c.fillRule = fillRule
	c.clipType = clipType
	c.usingPolytree = usingPolytree
	c.reset()

	y, ok := c.scanlines.pop()
	if !ok {
		return
	}
	for c.succeeded {
		c.insertLocalMinimaIntoAEL(y)
		for {
			e, more := c.popHorz()
			if !more {
				break
			}
			c.doHorizontal(e)
		}
		if len(c.horzSegList) > 0 {
			c.convertHorzSegsToJoins()
			c.horzSegList = c.horzSegList[:0]
		}
		c.currentBotY = y // bottom of scanbeam

		y, ok = c.scanlines.pop()
		if !ok {
			break // y new top of scanbeam
		}
		c.doIntersections(y)
		c.doTopOfScanbeam(y)
		for {
			e, more := c.popHorz()
			if !more {
				break
			}
			c.doHorizontal(e)
		}
	}
	if c.succeeded {
		c.processHorzJoins()
	}
}

// ==============================================================================
// Clipper64 — the public integer-coordinate engine
// ==============================================================================

// Clipper64 performs boolean clipping operations on 64-bit integer paths.
// The zero value is ready for use. Not safe for concurrent use.
type Clipper64 struct {
	ClipperBase
}

// NewClipper64 returns a new engine instance.
func NewClipper64() *Clipper64 { return &Clipper64{} }

// AddSubject stages closed subject paths.
func (c *Clipper64) AddSubject(paths Paths64) {
	c.addPaths(paths, PathTypeSubject, false)
}

// AddOpenSubject stages open subject paths (polylines).
func (c *Clipper64) AddOpenSubject(paths Paths64) {
	c.addPaths(paths, PathTypeSubject, true)
}

// AddClip stages closed clip paths.
func (c *Clipper64) AddClip(paths Paths64) {
	c.addPaths(paths, PathTypeClip, false)
}

// Execute performs the boolean operation, writing closed output rings into
// solutionClosed and, when non-nil, open polylines into solutionOpen.
// It reports whether the operation completed; empty results return true.
func (c *Clipper64) Execute(clipType ClipType, fillRule FillRule, solutionClosed, solutionOpen *Paths64) bool {
	var discardOpen Paths64
	if solutionOpen == nil {
		solutionOpen = &discardOpen
	}
	c.executeInternal(clipType, fillRule, false)
	if c.succeeded {
		c.buildPaths(solutionClosed, solutionOpen)
	} else {
		*solutionClosed = (*solutionClosed)[:0]
		*solutionOpen = (*solutionOpen)[:0]
	}
	ok := c.succeeded
	c.clearSolutionOnly()
	return ok
}

// ExecuteTree performs the boolean operation, writing the nested outer/hole
// hierarchy into polytree and open polylines into solutionOpen (may be nil).
func (c *Clipper64) ExecuteTree(clipType ClipType, fillRule FillRule, polytree *PolyTree64, solutionOpen *Paths64) bool {
	var discardOpen Paths64
	if solutionOpen == nil {
		solutionOpen = &discardOpen
	}
	polytree.Clear()
	c.executeInternal(clipType, fillRule, true)
	if c.succeeded {
		c.buildTree(polytree, solutionOpen)
	}
	ok := c.succeeded
	c.clearSolutionOnly()
	return ok
}

// ==============================================================================
// ClipperD — decimal-coordinate convenience wrapper
// ==============================================================================

// ClipperD wraps Clipper64, scaling float64 paths by a decimal precision on
// the way in and back out. Inputs whose scaled coordinates leave the safe
// integer range are rejected with ErrCoordinateRange.
type ClipperD struct {
	Clipper64
	scale    float64
	invScale float64
}

// NewClipperD returns an engine working at the given decimal precision
// (digits after the point, in [-8, 8]).
func NewClipperD(precision int) (*ClipperD, error) {
	if err := CheckPrecision(precision); err != nil {
		return nil, err
	}
	scale := scaleForPrecision(precision)
	return &ClipperD{scale: scale, invScale: 1 / scale}, nil
}

// AddSubject stages closed subject paths.
func (c *ClipperD) AddSubject(paths PathsD) error {
	scaled, err := ScalePathsDToPaths64(paths, c.scale)
	if err != nil {
		return err
	}
	c.Clipper64.AddSubject(scaled)
	return nil
}

// AddOpenSubject stages open subject paths.
func (c *ClipperD) AddOpenSubject(paths PathsD) error {
	scaled, err := ScalePathsDToPaths64(paths, c.scale)
	if err != nil {
		return err
	}
	c.Clipper64.AddOpenSubject(scaled)
	return nil
}

// AddClip stages closed clip paths.
func (c *ClipperD) AddClip(paths PathsD) error {
	scaled, err := ScalePathsDToPaths64(paths, c.scale)
	if err != nil {
		return err
	}
	c.Clipper64.AddClip(scaled)
	return nil
}

// Execute performs the boolean operation on the scaled inputs and writes the
// unscaled results. solutionOpen may be nil.
func (c *ClipperD) Execute(clipType ClipType, fillRule FillRule, solutionClosed, solutionOpen *PathsD) bool {
	var closed64, open64 Paths64
	ok := c.Clipper64.Execute(clipType, fillRule, &closed64, &open64)
	if !ok {
		return false
	}
	*solutionClosed = ScalePaths64ToPathsD(closed64, c.invScale)
	if solutionOpen != nil {
		*solutionOpen = ScalePaths64ToPathsD(open64, c.invScale)
	}
	return true
}
