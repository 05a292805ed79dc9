package scalar

import (
	"math"
	"unsafe"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Float is the scalar constraint for vector components: any type whose
// underlying type is float32 or float64.
type Float interface {
	constraints.Float
}

const (
	// Epsilon32 is the relative tolerance used for 32-bit scalars.
	Epsilon32 = 1e-6
	// Epsilon64 is the relative tolerance used for 64-bit scalars.
	Epsilon64 = 1e-12
)

// Is32 reports whether F is a single precision type.
func Is32[F Float]() bool {
	var zero F
	return unsafe.Sizeof(zero) == 4
}

// Zero returns the additive identity.
func Zero[F Float]() F { return 0 }

// One returns the multiplicative identity.
func One[F Float]() F { return 1 }

// Epsilon returns the small positive constant used for approximate equality.
// It is a library constant, looser than the machine epsilon of F.
func Epsilon[F Float]() F {
	if Is32[F]() {
		return Epsilon32
	}
	return Epsilon64
}

// FromFloat64 converts a float64 into F.
func FromFloat64[F Float](v float64) F { return F(v) }

// ToFloat64 widens v to float64.
func ToFloat64[F Float](v F) float64 { return float64(v) }

// Sqrt returns the square root of x.
func Sqrt[F Float](x F) F {
	if Is32[F]() {
		return F(math32.Sqrt(float32(x)))
	}
	return F(math.Sqrt(float64(x)))
}

// Recip returns 1/x.
func Recip[F Float](x F) F { return 1 / x }

// Sin returns the sine of the radian argument x.
func Sin[F Float](x F) F {
	if Is32[F]() {
		return F(math32.Sin(float32(x)))
	}
	return F(math.Sin(float64(x)))
}

// Cos returns the cosine of the radian argument x.
func Cos[F Float](x F) F {
	if Is32[F]() {
		return F(math32.Cos(float32(x)))
	}
	return F(math.Cos(float64(x)))
}

// SinCos returns Sin(x), Cos(x).
func SinCos[F Float](x F) (sin, cos F) {
	if Is32[F]() {
		s, c := math32.Sincos(float32(x))
		return F(s), F(c)
	}
	s, c := math.Sincos(float64(x))
	return F(s), F(c)
}

// Atan2 returns the arc tangent of y/x, using the signs of the two to
// determine the quadrant of the return value.
func Atan2[F Float](y, x F) F {
	if Is32[F]() {
		return F(math32.Atan2(float32(y), float32(x)))
	}
	return F(math.Atan2(float64(y), float64(x)))
}

// Asin returns the arcsine, in radians, of x. It is NaN outside [-1, 1].
func Asin[F Float](x F) F {
	if Is32[F]() {
		return F(math32.Asin(float32(x)))
	}
	return F(math.Asin(float64(x)))
}

// Max returns the larger of a and b. When b is NaN, a is returned.
func Max[F Float](a, b F) F {
	if b > a {
		return b
	}
	return a
}
