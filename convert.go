package polyclip

import "math"

// Conversion between the decimal (float64) surface and the integer engine
// model. Scaling uses round-half-to-even and validates every coordinate
// against the safe range; the engine itself never re-checks.

// CheckPrecision validates a decimal precision, which must be in [-8, 8].
func CheckPrecision(precision int) error {
	if precision < -8 || precision > 8 {
		return ErrPrecisionRange
	}
	return nil
}

// scaleForPrecision returns the multiplier for a decimal precision.
func scaleForPrecision(precision int) float64 {
	return math.Pow(10, float64(precision))
}

// ScalePathDToPath64 scales a float64 path into integer coordinates,
// rounding half to even. Returns ErrCoordinateRange if any scaled coordinate
// leaves the safe integer range.
func ScalePathDToPath64(path PathD, scale float64) (Path64, error) {
	result := make(Path64, len(path))
	for i, pt := range path {
		x := pt.X * scale
		y := pt.Y * scale
		if !checkCoordRange(x) || !checkCoordRange(y) {
			return nil, ErrCoordinateRange
		}
		result[i] = Point64{X: int64(math.RoundToEven(x)), Y: int64(math.RoundToEven(y))}
	}
	return result, nil
}

// ScalePathsDToPaths64 scales float64 paths into integer coordinates.
func ScalePathsDToPaths64(paths PathsD, scale float64) (Paths64, error) {
	result := make(Paths64, len(paths))
	for i, path := range paths {
		scaled, err := ScalePathDToPath64(path, scale)
		if err != nil {
			return nil, err
		}
		result[i] = scaled
	}
	return result, nil
}

// ScalePath64ToPathD scales an integer path into float64 coordinates.
func ScalePath64ToPathD(path Path64, scale float64) PathD {
	result := make(PathD, len(path))
	for i, pt := range path {
		result[i] = PointD{X: float64(pt.X) * scale, Y: float64(pt.Y) * scale}
	}
	return result
}

// ScalePaths64ToPathsD scales integer paths into float64 coordinates.
func ScalePaths64ToPathsD(paths Paths64, scale float64) PathsD {
	result := make(PathsD, len(paths))
	for i, path := range paths {
		result[i] = ScalePath64ToPathD(path, scale)
	}
	return result
}

// ScalePath64 scales an integer path by a float factor, rounding half to
// even. Returns ErrCoordinateRange when a scaled coordinate leaves the safe
// range.
func ScalePath64(path Path64, scale float64) (Path64, error) {
	result := make(Path64, len(path))
	for i, pt := range path {
		x := float64(pt.X) * scale
		y := float64(pt.Y) * scale
		if !checkCoordRange(x) || !checkCoordRange(y) {
			return nil, ErrCoordinateRange
		}
		result[i] = Point64{X: int64(math.RoundToEven(x)), Y: int64(math.RoundToEven(y)), Z: pt.Z}
	}
	return result, nil
}

// ScalePaths64 scales integer paths by a float factor.
func ScalePaths64(paths Paths64, scale float64) (Paths64, error) {
	result := make(Paths64, len(paths))
	for i, path := range paths {
		scaled, err := ScalePath64(path, scale)
		if err != nil {
			return nil, err
		}
		result[i] = scaled
	}
	return result, nil
}
