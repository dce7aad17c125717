package polyclip

import (
	"math"
	"math/bits"
)

// 128-bit integer arithmetic for exact geometric predicates. Coordinates are
// bounded by MaxCoord, so any product of two coordinate differences fits in
// 128 bits with room to accumulate.

// Int128 represents a signed 128-bit integer.
type Int128 struct {
	Hi int64  // high 64 bits (sign-extended)
	Lo uint64 // low 64 bits
}

// NewInt128 creates an Int128 from a 64-bit integer.
func NewInt128(val int64) Int128 {
	var hi int64
	if val < 0 {
		hi = -1
	}
	return Int128{Hi: hi, Lo: uint64(val)}
}

// mul128 multiplies two 64-bit integers into an exact 128-bit product.
// Operands that both fit in 32 bits take the native multiply fast path.
func mul128(a, b int64) Int128 {
	const fast = int64(1) << 31
	if a > -fast && a < fast && b > -fast && b < fast {
		return NewInt128(a * b)
	}
	negative := (a < 0) != (b < 0)
	ua, ub := uint64(abs64(a)), uint64(abs64(b))
	hi, lo := bits.Mul64(ua, ub)
	result := Int128{Hi: int64(hi), Lo: lo}
	if negative {
		result = result.Negate()
	}
	return result
}

// IsNegative returns true if the value is negative.
func (i Int128) IsNegative() bool { return i.Hi < 0 }

// IsZero returns true if the value is zero.
func (i Int128) IsZero() bool { return i.Hi == 0 && i.Lo == 0 }

// Sign returns -1, 0 or 1.
func (i Int128) Sign() int {
	if i.Hi < 0 {
		return -1
	}
	if i.Hi == 0 && i.Lo == 0 {
		return 0
	}
	return 1
}

// Negate returns the two's complement negation.
// Negate(MinInt128) wraps back to MinInt128.
func (i Int128) Negate() Int128 {
	lo := ^i.Lo + 1
	hi := ^i.Hi
	if lo == 0 {
		hi++
	}
	return Int128{Hi: hi, Lo: lo}
}

// Add adds two Int128 values.
func (i Int128) Add(other Int128) Int128 {
	lo, carry := bits.Add64(i.Lo, other.Lo, 0)
	hi, _ := bits.Add64(uint64(i.Hi), uint64(other.Hi), carry)
	return Int128{Hi: int64(hi), Lo: lo}
}

// Sub subtracts other from i.
func (i Int128) Sub(other Int128) Int128 {
	lo, borrow := bits.Sub64(i.Lo, other.Lo, 0)
	hi, _ := bits.Sub64(uint64(i.Hi), uint64(other.Hi), borrow)
	return Int128{Hi: int64(hi), Lo: lo}
}

// Cmp compares two Int128 values, returning -1, 0 or 1.
func (i Int128) Cmp(other Int128) int {
	if i.Hi != other.Hi {
		if i.Hi < other.Hi {
			return -1
		}
		return 1
	}
	if i.Lo == other.Lo {
		return 0
	}
	if i.Lo < other.Lo {
		return -1
	}
	return 1
}

// Equals reports exact equality.
func (i Int128) Equals(other Int128) bool {
	return i.Hi == other.Hi && i.Lo == other.Lo
}

// ToFloat64 converts to float64, losing precision beyond 53 bits.
func (i Int128) ToFloat64() float64 {
	if (i.Hi == 0 && i.Lo < 1<<63) || (i.Hi == -1 && i.Lo >= 1<<63) {
		return float64(int64(i.Lo))
	}
	const two64 = 18446744073709551616.0
	return float64(i.Hi)*two64 + float64(i.Lo)
}

// ==============================================================================
// Exact predicates over Point64
// ==============================================================================

// CrossProduct128 calculates the cross product of vectors (p2-p1) and (p3-p1)
// exactly in 128 bits.
func CrossProduct128(p1, p2, p3 Point64) Int128 {
	a := mul128(p2.X-p1.X, p3.Y-p1.Y)
	b := mul128(p2.Y-p1.Y, p3.X-p1.X)
	return a.Sub(b)
}

// crossProductSign returns the sign of the cross product of (p2-p1) and (p3-p1).
func crossProductSign(p1, p2, p3 Point64) int {
	return CrossProduct128(p1, p2, p3).Sign()
}

// DotProduct128 calculates the dot product of vectors (p2-p1) and (p3-p2)
// exactly in 128 bits.
func DotProduct128(p1, p2, p3 Point64) Int128 {
	a := mul128(p2.X-p1.X, p3.X-p2.X)
	b := mul128(p2.Y-p1.Y, p3.Y-p2.Y)
	return a.Add(b)
}

// ProductsAreEqual reports whether a*b == c*d without overflow.
func ProductsAreEqual(a, b, c, d int64) bool {
	return mul128(a, b).Equals(mul128(c, d))
}

// Area128 calculates twice the signed shoelace area of a polygon exactly.
func Area128(path Path64) Int128 {
	if len(path) < 3 {
		return Int128{}
	}
	var area Int128
	prev := path[len(path)-1]
	for _, pt := range path {
		// accumulate (prev.Y + pt.Y) * (prev.X - pt.X)
		area = area.Add(mul128(prev.Y+pt.Y, prev.X-pt.X))
		prev = pt
	}
	return area
}

// DistanceSquared128 calculates the squared distance between two points
// exactly in 128 bits.
func DistanceSquared128(p1, p2 Point64) Int128 {
	dx := p2.X - p1.X
	dy := p2.Y - p1.Y
	return mul128(dx, dx).Add(mul128(dy, dy))
}

// Area calculates the signed area of a path. Positive area means the path
// winds counter-clockwise in a Y-up coordinate system.
func Area(path Path64) float64 {
	if len(path) < 3 {
		return 0
	}
	return Area128(path).ToFloat64() * 0.5
}

// AreaPaths sums the signed areas of all paths.
func AreaPaths(paths Paths64) float64 {
	var a float64
	for _, path := range paths {
		a += Area(path)
	}
	return a
}

// IsPositive reports whether a path has positive orientation.
func IsPositive(path Path64) bool {
	return !Area128(path).IsNegative() && !Area128(path).IsZero()
}

// checkCoordRange reports whether the float coordinate is representable
// within the safe integer range.
func checkCoordRange(v float64) bool {
	return !math.IsNaN(v) && v >= float64(MinCoord) && v <= float64(MaxCoord)
}
