package polyclip

// Minkowski sum and difference, reduced to a Union of the quadrilaterals
// swept between consecutive pattern placements along the path.

func minkowskiInternal(pattern, path Path64, isSum, isClosed bool) (Paths64, error) {
	if len(pattern) == 0 || len(path) == 0 {
		return nil, ErrEmptyPath
	}

	delta := 0
	if !isClosed {
		delta = 1
	}
	patLen := len(pattern)
	pathLen := len(path)

	// place the pattern at every path vertex
	placed := make(Paths64, 0, pathLen)
	for _, pt := range path {
		placement := make(Path64, patLen)
		if isSum {
			for i, pt2 := range pattern {
				placement[i] = Point64{X: pt.X + pt2.X, Y: pt.Y + pt2.Y, Z: pt.Z}
			}
		} else {
			for i, pt2 := range pattern {
				placement[i] = Point64{X: pt.X - pt2.X, Y: pt.Y - pt2.Y, Z: pt.Z}
			}
		}
		placed = append(placed, placement)
	}

	// stitch consecutive placements into quadrilaterals
	quads := make(Paths64, 0, (pathLen-delta)*patLen)
	for i := delta; i < pathLen; i++ {
		prev := (i + pathLen - 1) % pathLen
		for j := 0; j < patLen; j++ {
			k := (j + 1) % patLen
			quad := Path64{
				placed[prev][j],
				placed[i][j],
				placed[i][k],
				placed[prev][k],
			}
			if !IsPositive(quad) {
				quads = append(quads, ReversePath(quad))
			} else {
				quads = append(quads, quad)
			}
		}
	}

	return Union64(quads, nil, NonZero)
}

// MinkowskiSum64 returns the Minkowski sum of pattern and path: the union of
// the pattern translated to every path vertex, with the swept area between
// consecutive placements filled.
//
// Possible errors: ErrEmptyPath
func MinkowskiSum64(pattern, path Path64, isClosed bool) (Paths64, error) {
	return minkowskiInternal(pattern, path, true, isClosed)
}

// MinkowskiDiff64 returns the Minkowski difference of pattern and path.
//
// Possible errors: ErrEmptyPath
func MinkowskiDiff64(pattern, path Path64, isClosed bool) (Paths64, error) {
	return minkowskiInternal(pattern, path, false, isClosed)
}
