package polyclip

// RectClipLines64 clips open paths (polylines) to an axis-aligned rectangle.
// It runs the same location walker as RectClip64 but never inserts rect
// corners: a polyline that leaves the rect simply ends at the boundary and a
// new output segment starts at the next entry.
// Not safe for concurrent use.
type RectClipLines64 struct {
	RectClip64
}

// NewRectClipLines64 creates a polyline clipper for the given rectangle.
func NewRectClipLines64(rect Rect64) *RectClipLines64 {
	return &RectClipLines64{RectClip64{
		rect:     rect,
		rectPath: rect.AsPath(),
		rectMid:  rect.MidPoint(),
	}}
}

// Execute clips every polyline, splitting paths that cross the rect boundary
// into multiple output segments.
func (rc *RectClipLines64) Execute(paths Paths64) Paths64 {
	result := Paths64{}
	if rc.rect.IsEmpty() {
		return result
	}
	for _, path := range paths {
		if len(path) < 2 {
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
		rc.executeInternalLines(path)
		for _, op := range rc.results {
			if tmp := rc.getOpenPath(op); len(tmp) > 0 {
				result = append(result, tmp)
			}
		}
		rc.results = rc.results[:0]
	}
	return result
}

func (rc *RectClipLines64) executeInternalLines(path Path64) {
	if rc.rect.IsEmpty() || len(path) < 2 {
		return
	}
	prev := locInside
	i := 1
	highI := len(path) - 1

	loc, ok := getLocation(rc.rect, path[0])
	if !ok {
		for i <= highI {
			if prev, ok = getLocation(rc.rect, path[i]); ok {
				break
			}
			i++
		}
		if i > highI {
			// all of the path touches the rect boundary
			for _, pt := range path {
				rc.add(pt, false)
			}
			return
		}
		if prev == locInside {
			loc = locInside
		}
		i = 1
	}
	if loc == locInside {
		rc.add(path[0], false)
	}

	for i <= highI {
		prev = loc
		rc.getNextLocation(path, &loc, &i, highI)
		if i > highI {
			break
		}
		prevPt := path[i-1]

		crossingLoc := loc
		ip, newCross, found := getIntersection(rc.rectPath, path[i], prevPt, crossingLoc)
		if !found {
			// the path must be remaining outside
			i++
			continue
		}
		crossingLoc = newCross

		if loc == locInside { // the path is entering the rect
			rc.add(ip, true)
		} else if prev != locInside {
			// the path is passing right through the rect; ip is the second
			// intersect point, but we also need the first
			crossingLoc = prev
			ip2, _, _ := getIntersection(rc.rectPath, prevPt, path[i], crossingLoc)
			rc.add(ip2, true)
			rc.add(ip, false)
		} else { // the path is exiting the rect
			rc.add(ip, false)
		}
		i++
	}
}

// getOpenPath walks one output segment into an open Path64.
func (rc *RectClipLines64) getOpenPath(op *outPt2) Path64 {
	if op == nil || op == op.next {
		return nil
	}
	op = op.next // starting at the path beginning
	result := Path64{op.pt}
	op2 := op.next
	for op2 != op {
		result = append(result, op2.pt)
		op2 = op2.next
	}
	return result
}
