package polyclip

import "math"

// ==============================================================================
// Polygon offsetting (inflate / shrink)
// ==============================================================================
// Each staged group is offset vertex by vertex into a self-intersecting
// outline; concave vertices emit a reversed three-point wedge whose negative
// region is erased afterwards by a Union with a Positive (or Negative, when
// the group is reversed) fill.

// offsetGroup is a set of paths sharing a join and end type.
type offsetGroup struct {
	pathsIn       Paths64
	lowestPathIdx int
	isReversed    bool
	joinType      JoinType
	endType       EndType
}

func newOffsetGroup(paths Paths64, joinType JoinType, endType EndType) offsetGroup {
	group := offsetGroup{
		pathsIn:       make(Paths64, len(paths)),
		lowestPathIdx: -1,
		joinType:      joinType,
		endType:       endType,
	}

	isJoined := endType == EndPolygon || endType == EndJoined
	for i, path := range paths {
		group.pathsIn[i] = StripDuplicates(path, isJoined)
	}

	if endType == EndPolygon {
		var isNegArea bool
		group.lowestPathIdx, isNegArea = getLowestClosedPathInfo(group.pathsIn)
		// with negative areas the whole group is reversed; negating the
		// group delta is cheaper than (and equivalent to) reversing every
		// path
		group.isReversed = group.lowestPathIdx >= 0 && isNegArea
	}
	return group
}

// ClipperOffset performs polygon and polyline offsetting.
// The zero value is not ready for use; construct with NewClipperOffset.
// Not safe for concurrent use.
type ClipperOffset struct {
	// MiterLimit clamps miter joins; vertices exceeding it square off.
	// Values of 1 or less act as a limit of 1. The default is 2.
	MiterLimit float64
	// ArcTolerance bounds the deviation of arc approximations from a true
	// arc; 0 selects |delta|/500.
	ArcTolerance float64
	// PreserveCollinear is passed through to the normalizing Union.
	PreserveCollinear bool
	// ReverseSolution negates the orientation of the output rings.
	ReverseSolution bool
	// MergeGroups unions all staged groups together in one normalization
	// pass; when false every group is normalized independently.
	MergeGroups bool
	// DeltaCallback overrides the delta per vertex when set.
	DeltaCallback DeltaCallback64

	groups    []offsetGroup
	zCallback ZCallback64

	// working state, reset per execution
	norms      []PointD
	pathOut    Path64
	solution   Paths64
	delta      float64
	groupDelta float64
	absDelta   float64
	tempLim    float64

	stepsPerRad float64
	stepSin     float64
	stepCos     float64
}

// NewClipperOffset creates an offsetter with default options.
func NewClipperOffset() *ClipperOffset {
	return &ClipperOffset{
		MiterLimit:  2.0,
		MergeGroups: true,
	}
}

// SetZCallback registers a callback passed through to the normalizing Union.
func (co *ClipperOffset) SetZCallback(cb ZCallback64) { co.zCallback = cb }

// AddPath stages a single path.
func (co *ClipperOffset) AddPath(path Path64, joinType JoinType, endType EndType) {
	co.AddPaths(Paths64{path}, joinType, endType)
}

// AddPaths stages a group of paths sharing a join and end type.
func (co *ClipperOffset) AddPaths(paths Paths64, joinType JoinType, endType EndType) {
	if len(paths) == 0 {
		return
	}
	co.groups = append(co.groups, newOffsetGroup(paths, joinType, endType))
}

// Clear removes all staged paths.
func (co *ClipperOffset) Clear() {
	co.groups = nil
	co.norms = nil
}

// buildNormals calculates perpendicular unit normals for each path edge.
func (co *ClipperOffset) buildNormals(path Path64) {
	co.norms = co.norms[:0]
	for i := 0; i < len(path)-1; i++ {
		co.norms = append(co.norms, getUnitNormal(path[i], path[i+1]))
	}
	co.norms = append(co.norms, getUnitNormal(path[len(path)-1], path[0]))
}

// doBevel emits the two perpendicular points of a bevel join (or, for end
// caps with j == k, the two opposite perpendiculars of the endpoint).
func (co *ClipperOffset) doBevel(path Path64, j, k int) {
	var pt1, pt2 PointD
	if j == k {
		absDelta := math.Abs(co.groupDelta)
		pt1 = PointD{
			X: float64(path[j].X) - absDelta*co.norms[j].X,
			Y: float64(path[j].Y) - absDelta*co.norms[j].Y,
		}
		pt2 = PointD{
			X: float64(path[j].X) + absDelta*co.norms[j].X,
			Y: float64(path[j].Y) + absDelta*co.norms[j].Y,
		}
	} else {
		pt1 = PointD{
			X: float64(path[j].X) + co.groupDelta*co.norms[k].X,
			Y: float64(path[j].Y) + co.groupDelta*co.norms[k].Y,
		}
		pt2 = PointD{
			X: float64(path[j].X) + co.groupDelta*co.norms[j].X,
			Y: float64(path[j].Y) + co.groupDelta*co.norms[j].Y,
		}
	}
	co.pathOut = append(co.pathOut,
		Point64{X: int64(math.Round(pt1.X)), Y: int64(math.Round(pt1.Y)), Z: path[j].Z},
		Point64{X: int64(math.Round(pt2.X)), Y: int64(math.Round(pt2.Y)), Z: path[j].Z})
}

// doMiter emits the single miter point of a join.
func (co *ClipperOffset) doMiter(path Path64, j, k int, cosA float64) {
	// q is the distance along the averaged normal vector
	q := co.groupDelta / (cosA + 1)
	co.pathOut = append(co.pathOut, Point64{
		X: int64(math.Round(float64(path[j].X) + (co.norms[k].X+co.norms[j].X)*q)),
		Y: int64(math.Round(float64(path[j].Y) + (co.norms[k].Y+co.norms[j].Y)*q)),
		Z: path[j].Z,
	})
}

// doSquare emits the intersection of the two offset lines plus its
// reflection, forming a squared shoulder.
func (co *ClipperOffset) doSquare(path Path64, j, k int) {
	var vec PointD
	if j == k {
		vec = PointD{X: co.norms[j].Y, Y: -co.norms[j].X}
	} else {
		vec = getAvgUnitVector(
			PointD{X: -co.norms[k].Y, Y: co.norms[k].X},
			PointD{X: co.norms[j].Y, Y: -co.norms[j].X})
	}

	absDelta := math.Abs(co.groupDelta)

	// offset the original vertex delta units along the unit vector
	ptQ := PointD{X: float64(path[j].X), Y: float64(path[j].Y)}
	ptQ = translatePointD(ptQ, absDelta*vec.X, absDelta*vec.Y)

	// the perpendicular vertices
	pt1 := translatePointD(ptQ, co.groupDelta*vec.Y, co.groupDelta*-vec.X)
	pt2 := translatePointD(ptQ, co.groupDelta*-vec.Y, co.groupDelta*vec.X)
	// two vertices along one edge offset
	pt3 := getPerpendicD(path[k], co.norms[k], co.groupDelta)

	if j == k {
		pt4 := PointD{X: pt3.X + vec.X*co.groupDelta, Y: pt3.Y + vec.Y*co.groupDelta}
		pt := ptQ
		if ip, ok := getSegmentIntersectPtD(pt1, pt2, pt3, pt4); ok {
			pt = ip
		}
		// get the second intersect point through reflection
		refl := reflectPointD(pt, ptQ)
		co.pathOut = append(co.pathOut,
			Point64{X: int64(math.Round(refl.X)), Y: int64(math.Round(refl.Y)), Z: path[j].Z},
			Point64{X: int64(math.Round(pt.X)), Y: int64(math.Round(pt.Y)), Z: path[j].Z})
	} else {
		pt4 := getPerpendicD(path[j], co.norms[k], co.groupDelta)
		pt := ptQ
		if ip, ok := getSegmentIntersectPtD(pt1, pt2, pt3, pt4); ok {
			pt = ip
		}
		refl := reflectPointD(pt, ptQ)
		co.pathOut = append(co.pathOut,
			Point64{X: int64(math.Round(pt.X)), Y: int64(math.Round(pt.Y)), Z: path[j].Z},
			Point64{X: int64(math.Round(refl.X)), Y: int64(math.Round(refl.Y)), Z: path[j].Z})
	}
}

// doRound emits an arc of ceil(stepsPerRad*|angle|) segments between the two
// perpendicular points.
func (co *ClipperOffset) doRound(path Path64, j, k int, angle float64) {
	pt := path[j]
	offsetVec := PointD{
		X: co.norms[k].X * co.groupDelta,
		Y: co.norms[k].Y * co.groupDelta,
	}
	if j == k {
		// single point offset (open path end cap)
		offsetVec.negate()
	}

	co.pathOut = append(co.pathOut, Point64{
		X: pt.X + int64(math.Round(offsetVec.X)),
		Y: pt.Y + int64(math.Round(offsetVec.Y)),
		Z: pt.Z,
	})

	steps := int(math.Ceil(co.stepsPerRad * math.Abs(angle)))
	for i := 1; i < steps; i++ {
		offsetVec = PointD{
			X: offsetVec.X*co.stepCos - co.stepSin*offsetVec.Y,
			Y: offsetVec.X*co.stepSin + offsetVec.Y*co.stepCos,
		}
		co.pathOut = append(co.pathOut, Point64{
			X: pt.X + int64(math.Round(offsetVec.X)),
			Y: pt.Y + int64(math.Round(offsetVec.Y)),
			Z: pt.Z,
		})
	}
	co.pathOut = append(co.pathOut, getPerpendic(path[j], co.norms[j], co.groupDelta))
}

// offsetPoint emits the join geometry for the vertex j between the incoming
// edge k->j and the outgoing edge j->i.
func (co *ClipperOffset) offsetPoint(group *offsetGroup, path Path64, j, k int) {
	if samePoint(path[j], path[k]) {
		return
	}

	// sinA > 0 turns outward (convex) for positively wound groups
	sinA := crossProductD(co.norms[k], co.norms[j])
	cosA := dotProductD(co.norms[j], co.norms[k])
	if sinA > 1.0 {
		sinA = 1.0
	} else if sinA < -1.0 {
		sinA = -1.0
	}

	if co.DeltaCallback != nil {
		co.groupDelta = co.DeltaCallback(path, co.norms, j, k)
		if group.isReversed {
			co.groupDelta = -co.groupDelta
		}
	}
	if math.Abs(co.groupDelta) <= floatingPointTolerance {
		co.pathOut = append(co.pathOut, path[j])
		return
	}

	switch {
	case cosA > -0.999 && sinA*co.groupDelta < 0:
		// concave: insert the three-point wedge whose negative region the
		// final Union removes
		co.pathOut = append(co.pathOut,
			getPerpendic(path[j], co.norms[k], co.groupDelta),
			path[j],
			getPerpendic(path[j], co.norms[j], co.groupDelta))
	case cosA > 0.999 && group.joinType != JoinRound:
		// almost straight - less than 2.5 degrees
		co.doMiter(path, j, k, cosA)
	case group.joinType == JoinRound:
		co.doRound(path, j, k, math.Atan2(sinA, cosA))
	case group.joinType == JoinMiter:
		if cosA > co.tempLim-1 {
			co.doMiter(path, j, k, cosA)
		} else {
			// miter limit exceeded
			co.doSquare(path, j, k)
		}
	case group.joinType == JoinBevel:
		co.doBevel(path, j, k)
	default:
		co.doSquare(path, j, k)
	}
}

// offsetPolygon offsets a closed polygon path.
func (co *ClipperOffset) offsetPolygon(group *offsetGroup, path Path64) {
	co.pathOut = make(Path64, 0, len(path)*2)
	k := len(path) - 1
	for j := 0; j < len(path); j++ {
		co.offsetPoint(group, path, j, k)
		k = j
	}
	co.solution = append(co.solution, co.pathOut)
}

// offsetOpenJoined offsets an open path as if both sides were a polygon.
func (co *ClipperOffset) offsetOpenJoined(group *offsetGroup, path Path64) {
	co.offsetPolygon(group, path)

	reversed := ReversePath(path)

	// rebuild normals
	for i, j := 0, len(co.norms)-1; i < j; i, j = i+1, j-1 {
		co.norms[i], co.norms[j] = co.norms[j], co.norms[i]
	}
	if len(co.norms) > 0 {
		lastNorm := co.norms[len(co.norms)-1]
		copy(co.norms[1:], co.norms[:len(co.norms)-1])
		co.norms[0] = lastNorm
	}
	negatePath(co.norms)

	co.offsetPolygon(group, reversed)
}

// offsetOpenPath offsets an open path, capping both ends.
func (co *ClipperOffset) offsetOpenPath(group *offsetGroup, path Path64) {
	co.pathOut = make(Path64, 0, len(path)*2)
	highI := len(path) - 1

	if co.DeltaCallback != nil {
		co.groupDelta = co.DeltaCallback(path, co.norms, 0, 0)
	}

	// the line start cap
	if math.Abs(co.groupDelta) <= floatingPointTolerance {
		co.pathOut = append(co.pathOut, path[0])
	} else {
		switch group.endType {
		case EndButt:
			co.doBevel(path, 0, 0)
		case EndRound:
			co.doRound(path, 0, 0, math.Pi)
		default:
			co.doSquare(path, 0, 0)
		}
	}

	// offset the left side going forward
	for j := 1; j < highI; j++ {
		co.offsetPoint(group, path, j, j-1)
	}

	// reverse the normals for the return path
	for i := highI; i > 0; i-- {
		co.norms[i] = PointD{X: -co.norms[i-1].X, Y: -co.norms[i-1].Y}
	}
	co.norms[0] = co.norms[highI]

	if co.DeltaCallback != nil {
		co.groupDelta = co.DeltaCallback(path, co.norms, highI, highI)
	}

	// the line end cap
	if math.Abs(co.groupDelta) <= floatingPointTolerance {
		co.pathOut = append(co.pathOut, path[highI])
	} else {
		switch group.endType {
		case EndButt:
			co.doBevel(path, highI, highI)
		case EndRound:
			co.doRound(path, highI, highI, math.Pi)
		default:
			co.doSquare(path, highI, highI)
		}
	}

	// offset the right side going backward
	for j := highI - 1; j > 0; j-- {
		co.offsetPoint(group, path, j, j+1)
	}
	co.solution = append(co.solution, co.pathOut)
}

// doGroupOffset offsets every path of one group into co.solution.
func (co *ClipperOffset) doGroupOffset(group *offsetGroup) {
	if group.endType == EndPolygon {
		// a straight path (2 points) can neither be an outer polygon nor a
		// hole
		if group.lowestPathIdx < 0 {
			co.delta = math.Abs(co.delta)
		}
		if group.isReversed {
			co.groupDelta = -co.delta
		} else {
			co.groupDelta = co.delta
		}
	} else {
		co.groupDelta = math.Abs(co.delta)
	}
	co.absDelta = math.Abs(co.groupDelta)

	if group.joinType == JoinRound || group.endType == EndRound {
		// calculate the step density for arc approximations
		var arcTol float64
		if co.ArcTolerance > floatingPointTolerance {
			arcTol = math.Min(co.absDelta, co.ArcTolerance)
		} else {
			arcTol = co.absDelta * arcConst
		}
		stepsPer360 := math.Min(math.Pi/math.Acos(1-arcTol/co.absDelta), co.absDelta*math.Pi)
		co.stepSin = math.Sin(2 * math.Pi / stepsPer360)
		co.stepCos = math.Cos(2 * math.Pi / stepsPer360)
		if co.groupDelta < 0 {
			co.stepSin = -co.stepSin
		}
		co.stepsPerRad = stepsPer360 / (2 * math.Pi)
	}

	for _, path := range group.pathsIn {
		pathLen := len(path)
		if pathLen == 0 {
			continue
		}

		if pathLen == 1 {
			// single vertex: build a circle or a square of radius delta
			if co.groupDelta < 1 {
				continue
			}
			pt := path[0]
			if group.endType == EndRound {
				steps := 0
				if co.stepsPerRad > 0 {
					steps = int(math.Ceil(co.stepsPerRad * 2 * math.Pi))
				}
				co.pathOut = Ellipse64(pt, co.absDelta, co.absDelta, steps)
			} else {
				d := int64(math.Ceil(co.absDelta))
				r := Rect64{Left: pt.X - d, Top: pt.Y - d, Right: pt.X + d, Bottom: pt.Y + d}
				co.pathOut = r.AsPath()
			}
			co.solution = append(co.solution, co.pathOut)
			continue
		}

		endType := group.endType
		if pathLen == 2 && group.endType == EndJoined {
			if group.joinType == JoinRound {
				endType = EndRound
			} else {
				endType = EndSquare
			}
		}

		co.buildNormals(path)
		switch endType {
		case EndPolygon:
			co.offsetPolygon(group, path)
		case EndJoined:
			co.offsetOpenJoined(group, path)
		default:
			co.offsetOpenPath(group, path)
		}
	}
}

// executeInternal produces the raw (still self-intersecting) offset outlines
// for all staged groups.
func (co *ClipperOffset) executeInternal(delta float64) {
	co.solution = nil
	if len(co.groups) == 0 {
		return
	}

	if math.Abs(delta) < 0.5 {
		// an insignificant offset; return the inputs unchanged
		for _, group := range co.groups {
			co.solution = append(co.solution, group.pathsIn...)
		}
		return
	}

	co.delta = delta
	if co.MiterLimit <= 1 {
		co.tempLim = 2.0
	} else {
		co.tempLim = 2.0 / (co.MiterLimit * co.MiterLimit)
	}

	for i := range co.groups {
		co.doGroupOffset(&co.groups[i])
	}
}

// pathsReversed reports whether the first polygon group was reversed.
func (co *ClipperOffset) pathsReversed() bool {
	for _, group := range co.groups {
		if group.endType == EndPolygon {
			return group.isReversed
		}
	}
	return false
}

// normalize unions the raw outlines, erasing the negative wedge regions.
func (co *ClipperOffset) normalize(paths Paths64, reversed bool) Paths64 {
	c := NewClipper64()
	c.PreserveCollinear = co.PreserveCollinear
	// the solution should retain the orientation of the input
	c.ReverseSolution = co.ReverseSolution != reversed
	c.SetZCallback(co.zCallback)
	c.AddSubject(paths)

	var result Paths64
	if reversed {
		c.Execute(Union, Negative, &result, nil)
	} else {
		c.Execute(Union, Positive, &result, nil)
	}
	return result
}

// Execute offsets the staged paths by delta and returns the cleaned result.
// Positive deltas expand polygons, negative deltas shrink them.
func (co *ClipperOffset) Execute(delta float64) (Paths64, error) {
	if co.MergeGroups {
		co.executeInternal(delta)
		if len(co.solution) == 0 {
			return Paths64{}, nil
		}
		return co.normalize(co.solution, co.pathsReversed()), nil
	}

	// normalize each group independently
	var result Paths64
	allGroups := co.groups
	for i := range allGroups {
		co.groups = allGroups[i : i+1]
		co.executeInternal(delta)
		if len(co.solution) > 0 {
			result = append(result, co.normalize(co.solution, allGroups[i].isReversed)...)
		}
	}
	co.groups = allGroups
	return result, nil
}

// ExecuteTree offsets the staged paths by delta, returning the result as a
// polygon tree.
func (co *ClipperOffset) ExecuteTree(delta float64) (*PolyTree64, error) {
	co.executeInternal(delta)

	c := NewClipper64()
	c.PreserveCollinear = co.PreserveCollinear
	c.ReverseSolution = co.ReverseSolution != co.pathsReversed()
	c.SetZCallback(co.zCallback)
	c.AddSubject(co.solution)

	tree := NewPolyTree64()
	if co.pathsReversed() {
		c.ExecuteTree(Union, Negative, tree, nil)
	} else {
		c.ExecuteTree(Union, Positive, tree, nil)
	}
	return tree, nil
}
