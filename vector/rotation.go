package vector

import "github.com/viant/vec3/scalar"

// Heading2D returns the angle in the xy plane between the positive x axis and v.
func (v Vector[F]) Heading2D() F {
	return scalar.Atan2(v.Y, v.X)
}

// Heading3D returns the spherical angles (theta, phi) of v, the inverse of
// FromPolar. Phi is NaN for the zero vector.
func (v Vector[F]) Heading3D() (theta, phi F) {
	theta = scalar.Atan2(v.Y, v.X)
	phi = scalar.Asin(v.Z / v.Length())
	return theta, phi
}

// AngleBetween returns the unsigned angle in [0, π] between v and o.
func (v Vector[F]) AngleBetween(o Vector[F]) F {
	dot := v.Dot(o)
	det := v.Cross(o).Length()
	return scalar.Atan2(det, dot)
}

// Rotated returns v rotated by angle radians around axis (Rodrigues' formula).
// The axis must be unit length; a non-unit axis scales the result.
func (v Vector[F]) Rotated(angle F, axis Vector[F]) Vector[F] {
	sin, cos := scalar.SinCos(angle)
	return v.MulScalar(cos).
		Add(axis.Cross(v).MulScalar(sin)).
		Add(axis.MulScalar(axis.Dot(v) * (1 - cos)))
}

// Rotate rotates v in place by angle radians around the unit axis.
func (v *Vector[F]) Rotate(angle F, axis Vector[F]) {
	*v = v.Rotated(angle, axis)
}

// RotateX rotates v around the x axis.
func (v *Vector[F]) RotateX(angle F) {
	v.Rotate(angle, One[F]().Abscissa())
}

// RotateY rotates v around the y axis.
func (v *Vector[F]) RotateY(angle F) {
	v.Rotate(angle, One[F]().Ordinate())
}

// RotateZ rotates v around the z axis.
func (v *Vector[F]) RotateZ(angle F) {
	v.Rotate(angle, One[F]().Applicate())
}

// Lerp linearly interpolates between v and o. t is not clamped, values
// outside [0, 1] extrapolate.
func (v Vector[F]) Lerp(o Vector[F], t F) Vector[F] {
	return v.Add(o.Sub(v).MulScalar(t))
}
