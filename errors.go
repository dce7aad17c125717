package polyclip

import "errors"

var (
	// ErrPrecisionRange indicates a decimal precision outside [-8, 8].
	ErrPrecisionRange = errors.New("polyclip: precision must be in the range [-8, 8]")

	// ErrCoordinateRange indicates a coordinate outside the safe integer range.
	ErrCoordinateRange = errors.New("polyclip: coordinate outside safe integer range")

	// ErrInvalidRectangle indicates a degenerate or inverted clipping rectangle.
	ErrInvalidRectangle = errors.New("polyclip: invalid rectangle")

	// ErrEmptyPath indicates a nil or empty path where a valid path is required.
	ErrEmptyPath = errors.New("polyclip: empty path")

	// ErrInvalidClipType indicates a clip type out of the valid range.
	ErrInvalidClipType = errors.New("polyclip: invalid clip type")

	// ErrInvalidFillRule indicates a fill rule out of the valid range.
	ErrInvalidFillRule = errors.New("polyclip: invalid fill rule")

	// ErrInvalidJoinType indicates a join type out of the valid range.
	ErrInvalidJoinType = errors.New("polyclip: invalid join type")

	// ErrInvalidEndType indicates an end type out of the valid range.
	ErrInvalidEndType = errors.New("polyclip: invalid end type")

	// ErrInvalidOptions indicates an out-of-range option value.
	ErrInvalidOptions = errors.New("polyclip: invalid option value")
)
