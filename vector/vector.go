package vector

import (
	"fmt"

	"github.com/viant/vec3/scalar"
)

// Vector is a Euclidean vector in three dimensional space with x, y and z
// components of the same scalar type.
type Vector[F scalar.Float] struct {
	X, Y, Z F
}

// New creates a vector from its components.
func New[F scalar.Float](x, y, z F) Vector[F] {
	return Vector[F]{X: x, Y: y, Z: z}
}

// Zero returns a vector with all components set to 0.
func Zero[F scalar.Float]() Vector[F] {
	return Vector[F]{}
}

// One returns a vector with all components set to 1.
func One[F scalar.Float]() Vector[F] {
	one := scalar.One[F]()
	return Vector[F]{X: one, Y: one, Z: one}
}

// Default returns the zero vector.
func Default[F scalar.Float]() Vector[F] { return Zero[F]() }

// FromTuple builds a vector from an ordered (x, y, z) triple.
func FromTuple[F scalar.Float](x, y, z F) Vector[F] { return New(x, y, z) }

// Tuple returns the components in (x, y, z) order.
func (v Vector[F]) Tuple() (F, F, F) { return v.X, v.Y, v.Z }

// FromArray builds a vector from a fixed 3-element array.
func FromArray[F scalar.Float](a [3]F) Vector[F] {
	return Vector[F]{X: a[0], Y: a[1], Z: a[2]}
}

// Array returns the components as a fixed 3-element array.
func (v Vector[F]) Array() [3]F { return [3]F{v.X, v.Y, v.Z} }

// FromSlice builds a vector from a slice holding exactly three elements.
func FromSlice[F scalar.Float](s []F) (Vector[F], error) {
	if len(s) != 3 {
		return Vector[F]{}, fmt.Errorf("%w: slice has %d elements", ErrInvalidLength, len(s))
	}
	return Vector[F]{X: s[0], Y: s[1], Z: s[2]}, nil
}

// Slice returns the components as a newly allocated slice.
func (v Vector[F]) Slice() []F { return []F{v.X, v.Y, v.Z} }

// FromPolar creates a unit vector from its spherical angles: theta in the
// xy plane and phi the elevation above it.
// Use FromAngle to create a unit vector in the xy plane.
func FromPolar[F scalar.Float](theta, phi F) Vector[F] {
	sinTheta, cosTheta := scalar.SinCos(theta)
	sinPhi, cosPhi := scalar.SinCos(phi)
	return Vector[F]{
		X: cosTheta * cosPhi,
		Y: sinTheta * cosPhi,
		Z: sinPhi,
	}
}

// FromAngle creates a unit vector in the xy plane from its angle to the
// positive x axis.
func FromAngle[F scalar.Float](theta F) Vector[F] {
	sin, cos := scalar.SinCos(theta)
	return Vector[F]{X: cos, Y: sin}
}

// Convert changes the scalar type of v.
func Convert[T, F scalar.Float](v Vector[F]) Vector[T] {
	return Vector[T]{X: T(v.X), Y: T(v.Y), Z: T(v.Z)}
}

// Reset sets all components to 0.
func (v *Vector[F]) Reset() {
	*v = Vector[F]{}
}

// Abscissa returns a vector with only the x component of v.
func (v Vector[F]) Abscissa() Vector[F] { return Vector[F]{X: v.X} }

// Ordinate returns a vector with only the y component of v.
func (v Vector[F]) Ordinate() Vector[F] { return Vector[F]{Y: v.Y} }

// Applicate returns a vector with only the z component of v.
func (v Vector[F]) Applicate() Vector[F] { return Vector[F]{Z: v.Z} }

// Planar returns the projection of v onto the xy plane.
func (v Vector[F]) Planar() Vector[F] { return Vector[F]{X: v.X, Y: v.Y} }

// IsZero reports whether all components are exactly 0.
func (v Vector[F]) IsZero() bool { return v == Vector[F]{} }

// String formats v as (x, y, z).
func (v Vector[F]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", v.X, v.Y, v.Z)
}
